// Package geometry holds the value types and predicates the dungeon pipeline is
// built on: vectors, rectangles, segments and circumcircles.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vector2 is a 2D point or displacement.
type Vector2 = r2.Vec

// Segment is a line between two points, the unit of debug drawing.
type Segment struct {
	A, B Vector2
}

// Vec builds a Vector2.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns a+b.
func Add(a, b Vector2) Vector2 {
	return r2.Add(a, b)
}

// Sub returns a-b.
func Sub(a, b Vector2) Vector2 {
	return r2.Sub(a, b)
}

// Div divides both components by d.
func Div(v Vector2, d float64) Vector2 {
	return r2.Scale(1/d, v)
}

// Magnitude returns the distance of v from the origin.
func Magnitude(v Vector2) float64 {
	return r2.Norm(v)
}

// Distance returns |a-b|.
func Distance(a, b Vector2) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Normalize returns v scaled to unit length. The zero vector normalizes to
// itself rather than to NaN.
func Normalize(v Vector2) Vector2 {
	if v.X == 0 && v.Y == 0 {
		return v
	}
	return r2.Unit(v)
}

// IsFinite reports whether both components are neither NaN nor infinite.
func IsFinite(v Vector2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Snap rounds both components to the nearest multiple of step, halves away
// from zero. A non-positive step returns v unchanged.
func Snap(v Vector2, step float64) Vector2 {
	if step <= 0 {
		return v
	}
	return Vector2{X: math.Round(v.X/step) * step, Y: math.Round(v.Y/step) * step}
}

// SnapAway rounds each non-zero component away from zero to a multiple of
// step, so any displacement moves at least one step along its axes.
func SnapAway(v Vector2, step float64) Vector2 {
	if step <= 0 {
		return v
	}
	return Vector2{X: awayFromZero(v.X, step), Y: awayFromZero(v.Y, step)}
}

func awayFromZero(f, step float64) float64 {
	if f == 0 {
		return 0
	}
	return math.Copysign(math.Ceil(math.Abs(f)/step)*step, f)
}
