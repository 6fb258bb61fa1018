package geometry

// Rectangle is an axis-aligned box anchored at its top-left Position.
type Rectangle struct {
	Position Vector2
	Size     Vector2
}

// Rect builds a Rectangle from its corner and dimensions.
func Rect(x, y, width, height float64) Rectangle {
	return Rectangle{Position: Vec(x, y), Size: Vec(width, height)}
}

// Midpoint returns the centre of the rectangle.
func (r Rectangle) Midpoint() Vector2 {
	return Vector2{X: r.Position.X + r.Size.X/2, Y: r.Position.Y + r.Size.Y/2}
}

// Area returns width times height.
func (r Rectangle) Area() float64 {
	return r.Size.X * r.Size.Y
}

// Max returns the bottom-right corner.
func (r Rectangle) Max() Vector2 {
	return Add(r.Position, r.Size)
}

// IsOverlapping reports whether the interiors of r and other intersect.
// Rectangles that only share an edge do not overlap.
func (r Rectangle) IsOverlapping(other Rectangle) bool {
	return r.Position.X < other.Position.X+other.Size.X &&
		r.Position.X+r.Size.X > other.Position.X &&
		r.Position.Y < other.Position.Y+other.Size.Y &&
		r.Position.Y+r.Size.Y > other.Position.Y
}

// Translate returns r moved by delta.
func (r Rectangle) Translate(delta Vector2) Rectangle {
	r.Position = Add(r.Position, delta)
	return r
}
