package delaunay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"ebiten-dungeon/geometry"
)

// buildQuad creates two triangles sharing the diagonal a-c:
//
//	d---c
//	|  /|
//	| / |
//	a---b
func buildQuad(t *testing.T) (*Triangulation, [4]VertexID, [5]EdgeID, [2]TriangleID) {
	t.Helper()
	tri := New()
	a := tri.AddVertex(geometry.Vec(0, 0))
	b := tri.AddVertex(geometry.Vec(4, 0))
	c := tri.AddVertex(geometry.Vec(4, 3))
	d := tri.AddVertex(geometry.Vec(0, 3))

	mustEdge := func(p, q VertexID) EdgeID {
		id, err := tri.AddEdge(p, q)
		require.NoError(t, err)
		return id
	}
	ab, bc, cd, da, ac := mustEdge(a, b), mustEdge(b, c), mustEdge(c, d), mustEdge(d, a), mustEdge(a, c)

	t1, err := tri.AddTriangle(a, b, c, ab, bc, ac)
	require.NoError(t, err)
	t2, err := tri.AddTriangle(a, c, d, ac, cd, da)
	require.NoError(t, err)

	return tri, [4]VertexID{a, b, c, d}, [5]EdgeID{ab, bc, cd, da, ac}, [2]TriangleID{t1, t2}
}

func TestAddVertex(t *testing.T) {
	tri := New()
	id := tri.AddVertex(geometry.Vec(3, 4))

	v, ok := tri.Vertex(id)
	require.True(t, ok)
	assert.Equal(t, geometry.Vec(3, 4), v.Position)
	assert.InDelta(t, 5.0, v.Magnitude, 1e-12)
	assert.Equal(t, -1, v.Input)
}

func TestAddEdgeErrors(t *testing.T) {
	tri := New()
	a := tri.AddVertex(geometry.Vec(0, 0))

	_, err := tri.AddEdge(a, VertexID(42))
	assert.ErrorIs(t, err, ErrVertexNotFound)

	_, err = tri.AddEdge(a, a)
	assert.ErrorIs(t, err, ErrSelfEdge)
}

func TestFindEdgeIsSymmetric(t *testing.T) {
	tri, v, e, _ := buildQuad(t)

	id, ok := tri.FindEdge(v[0], v[2])
	require.True(t, ok)
	assert.Equal(t, e[4], id)

	id, ok = tri.FindEdge(v[2], v[0])
	require.True(t, ok)
	assert.Equal(t, e[4], id)

	_, ok = tri.FindEdge(v[1], v[3])
	assert.False(t, ok)
}

func TestEdgeEquality(t *testing.T) {
	assert.True(t, Edge{A: 1, B: 2}.Equal(Edge{A: 2, B: 1}))
	assert.True(t, Edge{A: 1, B: 2}.Equal(Edge{A: 1, B: 2}))
	assert.False(t, Edge{A: 1, B: 2}.Equal(Edge{A: 1, B: 3}))

	assert.True(t, Edge{A: 1, B: 2}.Touches(2))
	assert.False(t, Edge{A: 1, B: 2}.Touches(3))
}

func TestAddTriangle(t *testing.T) {
	tri, _, e, tris := buildQuad(t)
	require.NoError(t, tri.Validate())

	tr, ok := tri.Triangle(tris[0])
	require.True(t, ok)
	assert.InDelta(t, 2.0, tr.Circumcenter.X, 1e-12)
	assert.InDelta(t, 1.5, tr.Circumcenter.Y, 1e-12)
	assert.InDelta(t, 2.5, tr.Circumradius, 1e-12)

	assert.Equal(t, 2, tri.TrianglesOnEdge(e[4]))
	assert.Equal(t, 1, tri.TrianglesOnEdge(e[0]))
	assert.Equal(t, map[EdgeID]int{e[0]: 1, e[1]: 1, e[2]: 1, e[3]: 1, e[4]: 2}, tri.EdgeTriangleCounts())
}

func TestAddTriangleRejectsBadSides(t *testing.T) {
	tri, v, e, _ := buildQuad(t)

	_, err := tri.AddTriangle(v[0], v[1], v[3], e[0], e[1], e[3])
	assert.ErrorIs(t, err, ErrEdgeMismatch)

	_, err = tri.AddTriangle(v[0], v[1], v[2], e[0], EdgeID(99), e[4])
	assert.ErrorIs(t, err, ErrEdgeNotFound)
}

func TestAddTriangleRejectsZeroArea(t *testing.T) {
	tri := New()
	a := tri.AddVertex(geometry.Vec(0, 0))
	b := tri.AddVertex(geometry.Vec(1, 1))
	c := tri.AddVertex(geometry.Vec(2, 2))
	ab, _ := tri.AddEdge(a, b)
	bc, _ := tri.AddEdge(b, c)
	ca, _ := tri.AddEdge(c, a)

	_, err := tri.AddTriangle(a, b, c, ab, bc, ca)
	assert.ErrorIs(t, err, ErrDegenerateInput)
	assert.Zero(t, tri.TriangleCount())
}

func TestRemoveTrianglesAndEdges(t *testing.T) {
	tri, v, e, tris := buildQuad(t)

	err := tri.RemoveTrianglesAndEdges(mapset.Of(tris[0], tris[1]), mapset.Of(e[4]))
	require.NoError(t, err)

	assert.Zero(t, tri.TriangleCount())
	assert.Equal(t, 4, tri.EdgeCount())
	assert.Equal(t, 4, tri.VertexCount(), "vertices are not pruned")
	_, ok := tri.FindEdge(v[0], v[2])
	assert.False(t, ok)
	require.NoError(t, tri.Validate())
}

func TestRemoveTrianglesAndEdgesRefusesDanglingEdge(t *testing.T) {
	tri, _, e, tris := buildQuad(t)

	// The diagonal is still used by the second triangle.
	err := tri.RemoveTrianglesAndEdges(mapset.Of(tris[0]), mapset.Of(e[4]))
	assert.ErrorIs(t, err, ErrEdgeInUse)

	// Nothing changed.
	assert.Equal(t, 2, tri.TriangleCount())
	assert.Equal(t, 5, tri.EdgeCount())
	require.NoError(t, tri.Validate())
}

func TestRemoveTrianglesAndEdgesUnknownHandles(t *testing.T) {
	tri, _, _, _ := buildQuad(t)

	err := tri.RemoveTrianglesAndEdges(mapset.Of(TriangleID(9)), mapset.New[EdgeID]())
	assert.ErrorIs(t, err, ErrTriangleNotFound)

	err = tri.RemoveTrianglesAndEdges(mapset.New[TriangleID](), mapset.Of(EdgeID(9)))
	assert.ErrorIs(t, err, ErrEdgeNotFound)
}

func TestHandlesSurviveGrowthAndRemoval(t *testing.T) {
	tri, v, e, tris := buildQuad(t)
	require.NoError(t, tri.RemoveTrianglesAndEdges(mapset.Of(tris[1]), mapset.Of(e[2], e[3])))

	for i := 0; i < 100; i++ {
		tri.AddVertex(geometry.Vec(float64(i), -10))
	}

	first, ok := tri.Triangle(tris[0])
	require.True(t, ok)
	assert.Equal(t, [3]VertexID{v[0], v[1], v[2]}, first.Vertices())
	_, ok = tri.Triangle(tris[1])
	assert.False(t, ok)
	_, ok = tri.Edge(e[2])
	assert.False(t, ok)
}

func TestRemoveSuperTriangle(t *testing.T) {
	tri := New()
	super, err := tri.createSuperTriangle(10)
	require.NoError(t, err)
	require.NoError(t, tri.insert(geometry.Vec(0, 0), 0))
	require.NoError(t, tri.insert(geometry.Vec(3, 1), 1))
	require.NoError(t, tri.Validate())

	tri.removeSuperTriangle(super)

	assert.Equal(t, 2, tri.VertexCount())
	assert.Zero(t, tri.TriangleCount())
	require.Equal(t, 1, tri.EdgeCount())
	assert.Len(t, tri.Segments(), 1)
	require.NoError(t, tri.Validate())
}
