package geometry

import "math"

// collinearTolerance is the relative size below which an orientation
// determinant is treated as zero.
const collinearTolerance = 1e-12

// Orientation returns twice the signed area of triangle abc: positive when
// the points turn counter-clockwise, negative when clockwise.
func Orientation(a, b, c Vector2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// IsCollinear reports whether a, b and c span (numerically) zero area.
// Coincident points count as collinear.
func IsCollinear(a, b, c Vector2) bool {
	ab, ac := Sub(b, a), Sub(c, a)
	scale := (ab.X*ab.X + ab.Y*ab.Y) + (ac.X*ac.X + ac.Y*ac.Y)
	if scale == 0 {
		return true
	}
	return math.Abs(Orientation(a, b, c)) <= collinearTolerance*scale
}

// Circumcircle returns the centre and radius of the circle through a, b and
// c. ok is false when the points are collinear and no such circle exists.
func Circumcircle(a, b, c Vector2) (center Vector2, radius float64, ok bool) {
	if IsCollinear(a, b, c) {
		return Vector2{}, 0, false
	}

	// Work relative to a to keep the products small.
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	d := 2 * (bx*cy - by*cx)
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	ux := (cy*b2 - by*c2) / d
	uy := (bx*c2 - cx*b2) / d

	return Vector2{X: a.X + ux, Y: a.Y + uy}, math.Sqrt(ux*ux + uy*uy), true
}

// IsPointInCircle reports whether p lies inside or on the circle. Points on
// the boundary count as inside.
func IsPointInCircle(p, center Vector2, radius float64) bool {
	dx, dy := p.X-center.X, p.Y-center.Y
	return dx*dx+dy*dy <= radius*radius
}
