package delaunay

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"ebiten-dungeon/geometry"
)

// Sentinel errors for store and triangulation operations.
var (
	// ErrDegenerateInput matches every *DegenerateInputError.
	ErrDegenerateInput = errors.New("delaunay: degenerate input")

	// ErrVertexNotFound indicates a handle to a vertex that is not live.
	ErrVertexNotFound = errors.New("delaunay: vertex not found")

	// ErrEdgeNotFound indicates a handle to an edge that is not live.
	ErrEdgeNotFound = errors.New("delaunay: edge not found")

	// ErrTriangleNotFound indicates a handle to a triangle that is not live.
	ErrTriangleNotFound = errors.New("delaunay: triangle not found")

	// ErrSelfEdge indicates an edge whose two endpoints are the same vertex.
	ErrSelfEdge = errors.New("delaunay: edge endpoints are the same vertex")

	// ErrEdgeMismatch indicates a triangle side that does not join the
	// vertices it is supposed to join.
	ErrEdgeMismatch = errors.New("delaunay: edge does not join triangle vertices")

	// ErrEdgeInUse indicates removing an edge a surviving triangle still uses.
	ErrEdgeInUse = errors.New("delaunay: edge still referenced by a triangle")

	// ErrInvalidMargin indicates a non-positive super triangle margin.
	ErrInvalidMargin = errors.New("delaunay: super triangle margin must be positive")
)

// DegenerateInputError reports input the triangulator refuses to process:
// duplicate or collinear points, non-finite coordinates, or a zero-area
// triangle produced along the way.
type DegenerateInputError struct {
	Reason string
	Points []geometry.Vector2
}

func (e *DegenerateInputError) Error() string {
	parts := make([]string, len(e.Points))
	for i, p := range e.Points {
		parts[i] = fmt.Sprintf("(%g, %g)", p.X, p.Y)
	}
	return fmt.Sprintf("delaunay: degenerate input: %s: %s", e.Reason, strings.Join(parts, " "))
}

// Is lets errors.Is match the error against ErrDegenerateInput.
func (e *DegenerateInputError) Is(target error) bool {
	return target == ErrDegenerateInput
}
