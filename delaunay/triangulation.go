// Package delaunay builds Delaunay triangulations with the incremental
// Bowyer-Watson algorithm.
//
// A Triangulation owns its vertices, edges and triangles in three arenas.
// Elements refer to each other through integer handles that stay valid for
// the lifetime of the element: growing an arena never moves a handle, and
// removed slots are tombstoned rather than reused.
//
// A Triangulation is not safe for concurrent mutation.
package delaunay

import (
	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"

	"ebiten-dungeon/geometry"
)

// VertexID is a stable handle to a Vertex.
type VertexID int

// EdgeID is a stable handle to an Edge.
type EdgeID int

// TriangleID is a stable handle to a Triangle.
type TriangleID int

// Vertex wraps a position. Magnitude is its distance from the origin.
// Input is the index of the input point the vertex was built from, or -1.
type Vertex struct {
	ID        VertexID
	Position  geometry.Vector2
	Magnitude float64
	Input     int
}

// Edge joins two vertices. Edges are unordered: {A, B} equals {B, A}.
type Edge struct {
	ID   EdgeID
	A, B VertexID
}

// Equal reports whether both edges join the same pair of vertices.
func (e Edge) Equal(other Edge) bool {
	return (e.A == other.A && e.B == other.B) || (e.A == other.B && e.B == other.A)
}

// Joins reports whether the edge connects a and b in either direction.
func (e Edge) Joins(a, b VertexID) bool {
	return (e.A == a && e.B == b) || (e.A == b && e.B == a)
}

// Touches reports whether v is one of the edge's endpoints.
func (e Edge) Touches(v VertexID) bool {
	return e.A == v || e.B == v
}

// Triangle is three vertices, the three edges between them and the
// circumcircle through them. AB joins A and B, BC joins B and C, CA joins C
// and A.
type Triangle struct {
	ID           TriangleID
	A, B, C      VertexID
	AB, BC, CA   EdgeID
	Circumcenter geometry.Vector2
	Circumradius float64
}

// Vertices returns the triangle's corners.
func (t Triangle) Vertices() [3]VertexID {
	return [3]VertexID{t.A, t.B, t.C}
}

// Edges returns the triangle's sides.
func (t Triangle) Edges() [3]EdgeID {
	return [3]EdgeID{t.AB, t.BC, t.CA}
}

// Touches reports whether v is one of the triangle's corners.
func (t Triangle) Touches(v VertexID) bool {
	return t.A == v || t.B == v || t.C == v
}

// arena stores elements by index and tombstones removed slots.
type arena[T any] struct {
	items []T
	live  []bool
	count int
}

func (a *arena[T]) add(item T) int {
	a.items = append(a.items, item)
	a.live = append(a.live, true)
	a.count++
	return len(a.items) - 1
}

func (a *arena[T]) has(id int) bool {
	return id >= 0 && id < len(a.items) && a.live[id]
}

func (a *arena[T]) remove(id int) {
	if a.has(id) {
		a.live[id] = false
		a.count--
	}
}

func (a *arena[T]) all() []T {
	out := make([]T, 0, a.count)
	for i, item := range a.items {
		if a.live[i] {
			out = append(out, item)
		}
	}
	return out
}

// pairKey identifies an unordered vertex pair.
type pairKey struct {
	lo, hi VertexID
}

func keyOf(a, b VertexID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Triangulation is the graph store: vertices, edges and triangles.
type Triangulation struct {
	vertices  arena[Vertex]
	edges     arena[Edge]
	triangles arena[Triangle]

	// pairs indexes live edges by their unordered endpoint pair.
	pairs map[pairKey][]EdgeID
	// edgeUse counts the live triangles that reference each edge.
	edgeUse []int
}

// New returns an empty Triangulation.
func New() *Triangulation {
	return &Triangulation{pairs: make(map[pairKey][]EdgeID)}
}

// AddVertex inserts a vertex at position and returns its handle.
func (t *Triangulation) AddVertex(position geometry.Vector2) VertexID {
	return t.addVertex(position, -1)
}

func (t *Triangulation) addVertex(position geometry.Vector2, input int) VertexID {
	id := VertexID(len(t.vertices.items))
	t.vertices.add(Vertex{
		ID:        id,
		Position:  position,
		Magnitude: geometry.Magnitude(position),
		Input:     input,
	})
	return id
}

// AddEdge inserts an edge between a and b. It does not check for an existing
// edge between the same pair; use FindEdge first to avoid duplicates.
func (t *Triangulation) AddEdge(a, b VertexID) (EdgeID, error) {
	if !t.vertices.has(int(a)) {
		return 0, errors.Wrapf(ErrVertexNotFound, "add edge: vertex %d", a)
	}
	if !t.vertices.has(int(b)) {
		return 0, errors.Wrapf(ErrVertexNotFound, "add edge: vertex %d", b)
	}
	if a == b {
		return 0, errors.Wrapf(ErrSelfEdge, "add edge: vertex %d", a)
	}

	id := EdgeID(len(t.edges.items))
	t.edges.add(Edge{ID: id, A: a, B: b})
	t.edgeUse = append(t.edgeUse, 0)
	k := keyOf(a, b)
	t.pairs[k] = append(t.pairs[k], id)
	return id, nil
}

// FindEdge returns a live edge joining a and b, in either direction.
func (t *Triangulation) FindEdge(a, b VertexID) (EdgeID, bool) {
	for _, id := range t.pairs[keyOf(a, b)] {
		if t.edges.has(int(id)) {
			return id, true
		}
	}
	return 0, false
}

// AddTriangle inserts the triangle abc with sides ab, bc and ca. The sides
// must be live edges joining the matching corners. Collinear corners are
// rejected with a *DegenerateInputError.
func (t *Triangulation) AddTriangle(a, b, c VertexID, ab, bc, ca EdgeID) (TriangleID, error) {
	for _, v := range [3]VertexID{a, b, c} {
		if !t.vertices.has(int(v)) {
			return 0, errors.Wrapf(ErrVertexNotFound, "add triangle: vertex %d", v)
		}
	}
	sides := [3]struct {
		edge EdgeID
		p, q VertexID
	}{{ab, a, b}, {bc, b, c}, {ca, c, a}}
	for _, s := range sides {
		if !t.edges.has(int(s.edge)) {
			return 0, errors.Wrapf(ErrEdgeNotFound, "add triangle: edge %d", s.edge)
		}
		if !t.edges.items[s.edge].Joins(s.p, s.q) {
			return 0, errors.Wrapf(ErrEdgeMismatch, "add triangle: edge %d between %d and %d", s.edge, s.p, s.q)
		}
	}

	pa, pb, pc := t.vertices.items[a].Position, t.vertices.items[b].Position, t.vertices.items[c].Position
	center, radius, ok := geometry.Circumcircle(pa, pb, pc)
	if !ok {
		return 0, &DegenerateInputError{Reason: "zero-area triangle", Points: []geometry.Vector2{pa, pb, pc}}
	}

	id := TriangleID(len(t.triangles.items))
	t.triangles.add(Triangle{
		ID: id,
		A:  a, B: b, C: c,
		AB: ab, BC: bc, CA: ca,
		Circumcenter: center,
		Circumradius: radius,
	})
	t.edgeUse[ab]++
	t.edgeUse[bc]++
	t.edgeUse[ca]++
	return id, nil
}

// RemoveTrianglesAndEdges removes exactly the given triangles and edges.
// Vertices are left alone. The call fails without changing anything if a
// handle is not live or an edge would still be used by a surviving triangle.
func (t *Triangulation) RemoveTrianglesAndEdges(triangles mapset.Set[TriangleID], edges mapset.Set[EdgeID]) error {
	var err error
	released := make(map[EdgeID]int)
	triangles.Each(func(id TriangleID) {
		if err != nil {
			return
		}
		if !t.triangles.has(int(id)) {
			err = errors.Wrapf(ErrTriangleNotFound, "remove triangle %d", id)
			return
		}
		for _, e := range t.triangles.items[id].Edges() {
			released[e]++
		}
	})
	if err != nil {
		return err
	}
	edges.Each(func(id EdgeID) {
		if err != nil {
			return
		}
		if !t.edges.has(int(id)) {
			err = errors.Wrapf(ErrEdgeNotFound, "remove edge %d", id)
			return
		}
		if t.edgeUse[id]-released[id] > 0 {
			err = errors.Wrapf(ErrEdgeInUse, "remove edge %d", id)
		}
	})
	if err != nil {
		return err
	}

	triangles.Each(func(id TriangleID) {
		t.removeTriangle(id)
	})
	edges.Each(func(id EdgeID) {
		t.removeEdge(id)
	})
	return nil
}

func (t *Triangulation) removeTriangle(id TriangleID) {
	if !t.triangles.has(int(id)) {
		return
	}
	for _, e := range t.triangles.items[id].Edges() {
		t.edgeUse[e]--
	}
	t.triangles.remove(int(id))
}

func (t *Triangulation) removeEdge(id EdgeID) {
	if !t.edges.has(int(id)) {
		return
	}
	e := t.edges.items[id]
	k := keyOf(e.A, e.B)
	ids := t.pairs[k]
	for i, other := range ids {
		if other == id {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(t.pairs, k)
	} else {
		t.pairs[k] = ids
	}
	t.edges.remove(int(id))
}

// removeSuperTriangle drops the bootstrap vertices together with every edge
// and triangle that touches one of them.
func (t *Triangulation) removeSuperTriangle(super [3]VertexID) {
	for i, tri := range t.triangles.items {
		if t.triangles.live[i] && (tri.Touches(super[0]) || tri.Touches(super[1]) || tri.Touches(super[2])) {
			t.removeTriangle(tri.ID)
		}
	}
	for i, e := range t.edges.items {
		if t.edges.live[i] && (e.Touches(super[0]) || e.Touches(super[1]) || e.Touches(super[2])) {
			t.removeEdge(e.ID)
		}
	}
	for _, v := range super {
		t.vertices.remove(int(v))
	}
}

// Vertex returns the vertex behind id.
func (t *Triangulation) Vertex(id VertexID) (Vertex, bool) {
	if !t.vertices.has(int(id)) {
		return Vertex{}, false
	}
	return t.vertices.items[id], true
}

// Edge returns the edge behind id.
func (t *Triangulation) Edge(id EdgeID) (Edge, bool) {
	if !t.edges.has(int(id)) {
		return Edge{}, false
	}
	return t.edges.items[id], true
}

// Triangle returns the triangle behind id.
func (t *Triangulation) Triangle(id TriangleID) (Triangle, bool) {
	if !t.triangles.has(int(id)) {
		return Triangle{}, false
	}
	return t.triangles.items[id], true
}

// Vertices returns the live vertices in handle order.
func (t *Triangulation) Vertices() []Vertex { return t.vertices.all() }

// Edges returns the live edges in handle order.
func (t *Triangulation) Edges() []Edge { return t.edges.all() }

// Triangles returns the live triangles in handle order.
func (t *Triangulation) Triangles() []Triangle { return t.triangles.all() }

// VertexCount returns the number of live vertices.
func (t *Triangulation) VertexCount() int { return t.vertices.count }

// EdgeCount returns the number of live edges.
func (t *Triangulation) EdgeCount() int { return t.edges.count }

// TriangleCount returns the number of live triangles.
func (t *Triangulation) TriangleCount() int { return t.triangles.count }

// TrianglesOnEdge returns how many live triangles use the edge.
func (t *Triangulation) TrianglesOnEdge(id EdgeID) int {
	if !t.edges.has(int(id)) {
		return 0
	}
	return t.edgeUse[id]
}

// Segments returns one line per live edge, for debug drawing.
func (t *Triangulation) Segments() []geometry.Segment {
	out := make([]geometry.Segment, 0, t.edges.count)
	for i, e := range t.edges.items {
		if !t.edges.live[i] {
			continue
		}
		out = append(out, geometry.Segment{
			A: t.vertices.items[e.A].Position,
			B: t.vertices.items[e.B].Position,
		})
	}
	return out
}

// Validate checks the reference invariants: every triangle uses live
// vertices and live edges that join its corners, every edge joins live
// vertices, and no edge borders more than two triangles.
func (t *Triangulation) Validate() error {
	use := make(map[EdgeID]int)
	for _, tri := range t.Triangles() {
		for _, v := range tri.Vertices() {
			if !t.vertices.has(int(v)) {
				return errors.Wrapf(ErrVertexNotFound, "triangle %d references vertex %d", tri.ID, v)
			}
		}
		sides := [3][3]int{{int(tri.AB), int(tri.A), int(tri.B)}, {int(tri.BC), int(tri.B), int(tri.C)}, {int(tri.CA), int(tri.C), int(tri.A)}}
		for _, s := range sides {
			if !t.edges.has(s[0]) {
				return errors.Wrapf(ErrEdgeNotFound, "triangle %d references edge %d", tri.ID, s[0])
			}
			if !t.edges.items[s[0]].Joins(VertexID(s[1]), VertexID(s[2])) {
				return errors.Wrapf(ErrEdgeMismatch, "triangle %d side %d", tri.ID, s[0])
			}
			use[EdgeID(s[0])]++
		}
	}
	for _, e := range t.Edges() {
		if !t.vertices.has(int(e.A)) || !t.vertices.has(int(e.B)) {
			return errors.Wrapf(ErrVertexNotFound, "edge %d joins %d and %d", e.ID, e.A, e.B)
		}
		if use[e.ID] > 2 {
			return errors.Errorf("delaunay: edge %d borders %d triangles", e.ID, use[e.ID])
		}
		if use[e.ID] != t.edgeUse[e.ID] {
			return errors.Errorf("delaunay: edge %d use count %d, recounted %d", e.ID, t.edgeUse[e.ID], use[e.ID])
		}
	}
	return nil
}

// EdgeTriangleCounts returns, for every live edge, how many triangles use it.
func (t *Triangulation) EdgeTriangleCounts() map[EdgeID]int {
	out := make(map[EdgeID]int, t.edges.count)
	for i := range t.edges.items {
		if t.edges.live[i] {
			out[EdgeID(i)] = t.edgeUse[i]
		}
	}
	return out
}
