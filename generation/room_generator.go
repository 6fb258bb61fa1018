package generation

import (
	"math"
	"math/rand"

	"ebiten-dungeon/geometry"
)

// RoomGenerator scatters candidate rooms and pushes them apart. All
// randomness comes from the rng it is given.
type RoomGenerator struct {
	config Config
	rng    *rand.Rand
}

// NewRoomGenerator creates a room generator drawing from rng.
func NewRoomGenerator(cfg Config, rng *rand.Rand) *RoomGenerator {
	return &RoomGenerator{config: cfg, rng: rng}
}

// GenerateRandomRooms creates count rooms with ids 0..count-1. Sizes are
// uniform in [MinRoomSize, MaxRoomSize]; the top-left corner of each room is
// uniform by area over a disk of SampleRadius around the origin.
func (g *RoomGenerator) GenerateRandomRooms(count int) []*Room {
	rooms := make([]*Room, 0, max(count, 0))
	for i := 0; i < count; i++ {
		size := geometry.Vec(
			g.between(g.config.MinRoomSize, g.config.MaxRoomSize),
			g.between(g.config.MinRoomSize, g.config.MaxRoomSize),
		)
		position := g.randomPointInCircle(g.config.SampleRadius)

		if grid := g.config.GridSnap; grid > 0 {
			size = geometry.Snap(size, grid)
			position = geometry.Snap(position, grid)
		}

		rooms = append(rooms, &Room{
			ID:   i,
			Rect: geometry.Rectangle{Position: position, Size: size},
		})
	}
	return rooms
}

// randomPointInCircle samples r as the square root of a uniform draw over
// [0, radius²) so points do not bunch up at the centre.
func (g *RoomGenerator) randomPointInCircle(radius float64) geometry.Vector2 {
	r := math.Sqrt(g.rng.Float64() * radius * radius)
	theta := g.rng.Float64() * 2 * math.Pi
	return geometry.Vec(r*math.Cos(theta), r*math.Sin(theta))
}

func (g *RoomGenerator) between(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// SeparateRooms pushes overlapping rooms apart until no pair overlaps and
// returns the number of passes that moved rooms.
//
// Each pass first computes every room's push from the rooms overlapping it,
// then moves all rooms at once. A room is pushed away from each overlapping
// room by the difference of their centres divided by SeparationFactor. When
// two overlapping rooms share a centre, the one with the higher id is pushed
// one unit directly away from the origin instead.
//
// After MaxSeparationIterations moving passes the rooms are left where they
// are and a *SeparationDidNotConvergeError is returned.
func (g *RoomGenerator) SeparateRooms(rooms []*Room) (int, error) {
	for pass := 0; ; pass++ {
		overlapping := g.accumulateMovement(rooms)
		if overlapping == 0 {
			return pass, nil
		}
		if pass >= g.config.MaxSeparationIterations {
			for _, room := range rooms {
				room.Movement = geometry.Vector2{}
			}
			return pass, &SeparationDidNotConvergeError{Iterations: pass, Overlapping: overlapping}
		}

		for _, room := range rooms {
			room.applyMovement(g.config.GridSnap)
		}
	}
}

// accumulateMovement fills in Movement for every room and returns how many
// rooms overlap at least one other room.
func (g *RoomGenerator) accumulateMovement(rooms []*Room) int {
	overlapping := 0
	for i, room := range rooms {
		center := room.Center()
		hit := false

		for j, other := range rooms {
			if i == j || !room.Overlaps(other) {
				continue
			}
			hit = true

			otherCenter := other.Center()
			if center != otherCenter {
				push := geometry.Div(geometry.Sub(center, otherCenter), g.config.SeparationFactor)
				room.Movement = geometry.Add(room.Movement, push)
			} else if room.ID > other.ID {
				// Coincident centres: only one room of the pair moves. The
				// same push applied to both would leave them coincident.
				room.Movement = geometry.Add(room.Movement, awayFromOrigin(center))
			}
		}

		if hit {
			overlapping++
		}
	}
	return overlapping
}

// awayFromOrigin is the unit vector from the origin towards p, or +X when p
// is the origin.
func awayFromOrigin(p geometry.Vector2) geometry.Vector2 {
	if p == (geometry.Vector2{}) {
		return geometry.Vec(1, 0)
	}
	return geometry.Normalize(p)
}

// ExtractSmallAreaRooms splits rooms into those with an area of at least
// minimumArea and those below it. Both keep their input order; kept reuses
// the backing array of rooms.
func (g *RoomGenerator) ExtractSmallAreaRooms(rooms []*Room, minimumArea float64) (kept, removed []*Room) {
	kept = rooms[:0]
	for _, room := range rooms {
		if room.Area() < minimumArea {
			removed = append(removed, room)
		} else {
			kept = append(kept, room)
		}
	}
	return kept, removed
}
