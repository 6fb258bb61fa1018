package generation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"ebiten-dungeon/dbg"
	"ebiten-dungeon/delaunay"
	"ebiten-dungeon/geometry"
)

// Dungeon is one generated level layout: the rooms that survived filtering,
// the Delaunay triangulation over their centres and the corridors picked
// from it.
type Dungeon struct {
	Seed int64

	// Rooms are the surviving rooms. Vertex.Input in Triangulation indexes
	// this slice.
	Rooms []*Room
	// Discarded are the rooms dropped for being too small. They have been
	// separated along with the rest.
	Discarded []*Room

	Triangulation *delaunay.Triangulation
	Corridors     []Corridor

	// SeparationPasses is the number of relaxation passes that moved rooms.
	SeparationPasses int
}

// RoomForVertex returns the room whose centre the vertex stands for.
func (d *Dungeon) RoomForVertex(id delaunay.VertexID) (*Room, bool) {
	v, ok := d.Triangulation.Vertex(id)
	if !ok || v.Input < 0 || v.Input >= len(d.Rooms) {
		return nil, false
	}
	return d.Rooms[v.Input], true
}

// Room returns the surviving room with the given id.
func (d *Dungeon) Room(id int) (*Room, bool) {
	for _, room := range d.Rooms {
		if room.ID == id {
			return room, true
		}
	}
	return nil, false
}

// Segments returns the triangulation edges shifted by origin, ready for a
// debug line drawer.
func (d *Dungeon) Segments(origin geometry.Vector2) []geometry.Segment {
	return offset(d.Triangulation.Segments(), origin)
}

// CorridorSegments returns the centre-to-centre line of every corridor
// shifted by origin.
func (d *Dungeon) CorridorSegments(origin geometry.Vector2) []geometry.Segment {
	segments := make([]geometry.Segment, 0, len(d.Corridors))
	for _, c := range d.Corridors {
		from, okFrom := d.Room(c.From)
		to, okTo := d.Room(c.To)
		if !okFrom || !okTo {
			continue
		}
		segments = append(segments, geometry.Segment{A: from.Center(), B: to.Center()})
	}
	return offset(segments, origin)
}

func offset(segments []geometry.Segment, origin geometry.Vector2) []geometry.Segment {
	for i := range segments {
		segments[i].A = geometry.Add(segments[i].A, origin)
		segments[i].B = geometry.Add(segments[i].B, origin)
	}
	return segments
}

// Bounds returns the smallest rectangle holding every surviving room.
func (d *Dungeon) Bounds() geometry.Rectangle {
	if len(d.Rooms) == 0 {
		return geometry.Rectangle{}
	}
	lo := d.Rooms[0].Rect.Position
	hi := d.Rooms[0].Rect.Max()
	for _, room := range d.Rooms[1:] {
		p, q := room.Rect.Position, room.Rect.Max()
		lo = geometry.Vec(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = geometry.Vec(max(hi.X, q.X), max(hi.Y, q.Y))
	}
	return geometry.Rectangle{Position: lo, Size: geometry.Sub(hi, lo)}
}

// DungeonGenerator handles procedural generation of dungeon layouts
type DungeonGenerator struct {
	config     Config
	seed       int64
	rng        *rand.Rand
	rooms      *RoomGenerator
	logMessage func(string) // Function for logging messages
}

// NewDungeonGenerator creates a generator for cfg, seeded from the clock.
// The configuration is validated here, before any generation work.
func NewDungeonGenerator(cfg Config, logFunc func(string)) (*DungeonGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &DungeonGenerator{
		config:     cfg,
		logMessage: logFunc,
	}
	g.SetSeed(time.Now().UnixNano())
	return g, nil
}

// SetSeed allows setting a specific seed for reproducible dungeons
func (g *DungeonGenerator) SetSeed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
	g.rooms = NewRoomGenerator(g.config, g.rng)
}

// Seed returns the seed last passed to SetSeed.
func (g *DungeonGenerator) Seed() int64 {
	return g.seed
}

// Config returns the generator's configuration.
func (g *DungeonGenerator) Config() Config {
	return g.config
}

// Generate lays out one level: scatter rooms, separate them, drop the small
// ones, triangulate the centres of the rest and pick corridors. Any failure
// is returned without a partial dungeon.
func (g *DungeonGenerator) Generate() (*Dungeon, error) {
	rooms := g.rooms.GenerateRandomRooms(g.config.RoomCount)

	passes, err := g.rooms.SeparateRooms(rooms)
	if err != nil {
		return nil, errors.Wrap(err, "generation: separate rooms")
	}
	g.log("Separated %d rooms in %d passes", len(rooms), passes)

	kept, removed := g.rooms.ExtractSmallAreaRooms(rooms, g.config.MinimumRoomArea)
	g.log("Discarded %d rooms smaller than %g", len(removed), g.config.MinimumRoomArea)

	centers := make([]geometry.Vector2, len(kept))
	for i, room := range kept {
		centers[i] = room.Center()
	}
	tri, err := delaunay.Triangulate(centers, delaunay.WithSuperTriangleMargin(g.config.SuperTriangleMargin))
	if err != nil {
		return nil, errors.Wrap(err, "generation: triangulate room centres")
	}
	g.log("Triangulated %d rooms: %d edges, %d triangles", len(kept), tri.EdgeCount(), tri.TriangleCount())

	corridors, err := PlanCorridors(kept, tri, g.rng, g.config.LoopEdgeChance)
	if err != nil {
		return nil, errors.Wrap(err, "generation: plan corridors")
	}
	loops := 0
	for _, c := range corridors {
		if c.Loop {
			loops++
		}
	}
	g.log("Planned %d corridors (%d loops)", len(corridors), loops)

	d := &Dungeon{
		Seed:             g.seed,
		Rooms:            kept,
		Discarded:        removed,
		Triangulation:    tri,
		Corridors:        corridors,
		SeparationPasses: passes,
	}
	if largest := largestRoom(kept); largest != nil {
		g.log("Largest room is %s (%gx%g)", dbg.Name(largest.ID), largest.Rect.Size.X, largest.Rect.Size.Y)
	}
	return d, nil
}

func (g *DungeonGenerator) log(format string, args ...interface{}) {
	if g.logMessage != nil {
		g.logMessage(fmt.Sprintf(format, args...))
	}
}

func largestRoom(rooms []*Room) *Room {
	var largest *Room
	for _, room := range rooms {
		if largest == nil || room.Area() > largest.Area() {
			largest = room
		}
	}
	return largest
}
