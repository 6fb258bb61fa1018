package delaunay

import (
	"math"

	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"

	"ebiten-dungeon/geometry"
)

// DefaultSuperTriangleMargin is how far, in world units, the bootstrap
// triangle's incircle reaches past the furthest input point.
const DefaultSuperTriangleMargin = 30.0

type options struct {
	superTriangleMargin float64
}

// Option configures Triangulate.
type Option func(*options)

// WithSuperTriangleMargin sets the margin between the furthest input point
// and the bootstrap triangle. Scale it with the coordinate range.
func WithSuperTriangleMargin(margin float64) Option {
	return func(o *options) { o.superTriangleMargin = margin }
}

// Triangulate returns the Delaunay triangulation of points. Vertex.Input
// maps every vertex of the result back to its index in points.
//
// Fewer than three points produce no triangles: the result holds the
// vertices and, for exactly two points, the edge between them. Duplicate
// points, non-finite coordinates and three or more collinear points fail with
// a *DegenerateInputError.
func Triangulate(points []geometry.Vector2, opts ...Option) (*Triangulation, error) {
	o := options{superTriangleMargin: DefaultSuperTriangleMargin}
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.superTriangleMargin > 0) {
		return nil, ErrInvalidMargin
	}
	if err := checkPoints(points); err != nil {
		return nil, err
	}

	t := New()
	if len(points) < 3 {
		ids := make([]VertexID, len(points))
		for i, p := range points {
			ids[i] = t.addVertex(p, i)
		}
		if len(ids) == 2 {
			if _, err := t.AddEdge(ids[0], ids[1]); err != nil {
				return nil, err
			}
		}
		return t, nil
	}

	super, err := t.createSuperTriangle(furthestMagnitude(points) + o.superTriangleMargin)
	if err != nil {
		return nil, err
	}
	for i, p := range points {
		if err := t.insert(p, i); err != nil {
			return nil, errors.Wrapf(err, "insert point %d", i)
		}
	}
	t.removeSuperTriangle(super)

	return t, nil
}

// checkPoints rejects input no triangulation can be built from.
func checkPoints(points []geometry.Vector2) error {
	seen := make(map[geometry.Vector2]int, len(points))
	for i, p := range points {
		if !geometry.IsFinite(p) {
			return &DegenerateInputError{Reason: "non-finite coordinate", Points: []geometry.Vector2{p}}
		}
		if j, dup := seen[p]; dup {
			return &DegenerateInputError{
				Reason: "duplicate point",
				Points: []geometry.Vector2{points[j], p},
			}
		}
		seen[p] = i
	}

	if len(points) < 3 {
		return nil
	}
	for _, p := range points[2:] {
		if !geometry.IsCollinear(points[0], points[1], p) {
			return nil
		}
	}
	return &DegenerateInputError{Reason: "collinear points", Points: points}
}

func furthestMagnitude(points []geometry.Vector2) float64 {
	var furthest float64
	for _, p := range points {
		furthest = math.Max(furthest, geometry.Magnitude(p))
	}
	return furthest
}

// createSuperTriangle adds an equilateral triangle whose incircle, centred
// on the origin, has the given radius.
func (t *Triangulation) createSuperTriangle(radius float64) ([3]VertexID, error) {
	adjacent := math.Sqrt(3) * radius

	a := t.AddVertex(geometry.Vec(-adjacent, -radius))
	b := t.AddVertex(geometry.Vec(adjacent, -radius))
	c := t.AddVertex(geometry.Vec(0, 2*radius))
	super := [3]VertexID{a, b, c}

	ab, err := t.AddEdge(a, b)
	if err != nil {
		return super, err
	}
	bc, err := t.AddEdge(b, c)
	if err != nil {
		return super, err
	}
	ca, err := t.AddEdge(c, a)
	if err != nil {
		return super, err
	}
	if _, err := t.AddTriangle(a, b, c, ab, bc, ca); err != nil {
		return super, err
	}
	return super, nil
}

// insert adds one point: it removes every triangle whose circumcircle holds
// the point and fans new triangles from the point to the cavity boundary.
func (t *Triangulation) insert(p geometry.Vector2, input int) error {
	bad := mapset.New[TriangleID]()
	var order []TriangleID
	for i, tri := range t.triangles.items {
		if t.triangles.live[i] && geometry.IsPointInCircle(p, tri.Circumcenter, tri.Circumradius) {
			bad.Put(tri.ID)
			order = append(order, tri.ID)
		}
	}

	polygon, shared := t.cavity(order)
	if err := t.RemoveTrianglesAndEdges(bad, shared); err != nil {
		return err
	}

	v := t.addVertex(p, input)
	return t.fillCavity(v, polygon)
}

// cavity splits the sides of the bad triangles into the boundary polygon
// (sides used by one bad triangle, in encounter order) and the shared sides
// to delete.
func (t *Triangulation) cavity(bad []TriangleID) ([]EdgeID, mapset.Set[EdgeID]) {
	hits := make(map[EdgeID]int)
	var seen []EdgeID
	for _, id := range bad {
		for _, e := range t.triangles.items[id].Edges() {
			if hits[e] == 0 {
				seen = append(seen, e)
			}
			hits[e]++
		}
	}

	shared := mapset.New[EdgeID]()
	polygon := make([]EdgeID, 0, len(seen))
	for _, e := range seen {
		if hits[e] > 1 {
			shared.Put(e)
		} else {
			polygon = append(polygon, e)
		}
	}
	return polygon, shared
}

// fillCavity builds the triangle (v, p, q) for each boundary edge (p, q).
// The two new sides of each triangle are shared with its neighbours in the
// fan, so they are looked up before being created.
func (t *Triangulation) fillCavity(v VertexID, polygon []EdgeID) error {
	for _, id := range polygon {
		e := t.edges.items[id]

		va, err := t.findOrAddEdge(v, e.A)
		if err != nil {
			return err
		}
		bv, err := t.findOrAddEdge(e.B, v)
		if err != nil {
			return err
		}
		if _, err := t.AddTriangle(v, e.A, e.B, va, id, bv); err != nil {
			return err
		}
	}
	return nil
}

func (t *Triangulation) findOrAddEdge(a, b VertexID) (EdgeID, error) {
	if id, ok := t.FindEdge(a, b); ok {
		return id, nil
	}
	return t.AddEdge(a, b)
}
