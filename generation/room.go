package generation

import "ebiten-dungeon/geometry"

// Room is one candidate room. Rooms are identified by ID; Movement is the
// push accumulated during the current separation pass.
type Room struct {
	ID       int
	Rect     geometry.Rectangle
	Movement geometry.Vector2
}

// Center returns the midpoint of the room's rectangle.
func (r *Room) Center() geometry.Vector2 {
	return r.Rect.Midpoint()
}

// Area returns the room's area.
func (r *Room) Area() float64 {
	return r.Rect.Area()
}

// Overlaps reports whether the two rooms' rectangles overlap. Rooms that only
// share an edge do not overlap.
func (r *Room) Overlaps(other *Room) bool {
	return r.Rect.IsOverlapping(other.Rect)
}

// applyMovement moves the room by its accumulated push and clears it. With a
// positive grid, each non-zero push component grows to at least one grid step
// and the position is kept on the grid.
func (r *Room) applyMovement(grid float64) {
	if grid > 0 {
		move := geometry.SnapAway(r.Movement, grid)
		r.Rect.Position = geometry.Snap(geometry.Add(r.Rect.Position, move), grid)
	} else {
		r.Rect.Position = geometry.Add(r.Rect.Position, r.Movement)
	}
	r.Movement = geometry.Vector2{}
}
