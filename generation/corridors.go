package generation

import (
	"math"
	"math/rand"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"ebiten-dungeon/delaunay"
	"ebiten-dungeon/geometry"
)

// Corridor joins the centres of two rooms, identified by room id with
// From < To. Loop marks corridors added on top of the spanning tree.
type Corridor struct {
	From   int
	To     int
	Length float64
	Loop   bool
}

// tieBreak separates equal-length edges by triangulation handle so the tree
// does not depend on map iteration order inside the graph.
const tieBreak = 1e-9

// PlanCorridors picks the corridors of a level from the triangulation over
// room centres: a minimum spanning tree by centre distance, plus each
// remaining triangulation edge with probability loopChance. Vertex inputs of
// tri must index rooms. The result is sorted by (From, To).
func PlanCorridors(rooms []*Room, tri *delaunay.Triangulation, rng *rand.Rand, loopChance float64) ([]Corridor, error) {
	if len(rooms) < 2 {
		return nil, nil
	}

	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := range rooms {
		g.AddNode(simple.Node(i))
	}

	edges := tri.Edges()
	ends := make([][2]int, len(edges))
	for i, e := range edges {
		a, err := roomIndex(tri, e.A, len(rooms))
		if err != nil {
			return nil, err
		}
		b, err := roomIndex(tri, e.B, len(rooms))
		if err != nil {
			return nil, err
		}
		ends[i] = [2]int{a, b}

		w := geometry.Distance(rooms[a].Center(), rooms[b].Center()) * (1 + tieBreak*float64(i))
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(a), simple.Node(b), w))
	}

	tree := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	path.Kruskal(tree, g)

	corridors := make([]Corridor, 0, len(rooms)-1)
	for _, end := range ends {
		a, b := end[0], end[1]
		inTree := tree.HasEdgeBetween(int64(a), int64(b))
		if !inTree && rng.Float64() >= loopChance {
			continue
		}
		corridors = append(corridors, newCorridor(rooms[a], rooms[b], !inTree))
	}

	sort.Slice(corridors, func(i, j int) bool {
		if corridors[i].From != corridors[j].From {
			return corridors[i].From < corridors[j].From
		}
		return corridors[i].To < corridors[j].To
	})
	return corridors, nil
}

func roomIndex(tri *delaunay.Triangulation, id delaunay.VertexID, rooms int) (int, error) {
	v, ok := tri.Vertex(id)
	if !ok || v.Input < 0 || v.Input >= rooms {
		return 0, errors.Errorf("generation: vertex %d does not map to a room", id)
	}
	return v.Input, nil
}

func newCorridor(a, b *Room, loop bool) Corridor {
	if a.ID > b.ID {
		a, b = b, a
	}
	return Corridor{
		From:   a.ID,
		To:     b.ID,
		Length: geometry.Distance(a.Center(), b.Center()),
		Loop:   loop,
	}
}
