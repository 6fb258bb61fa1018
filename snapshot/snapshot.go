// Package snapshot exports a generated dungeon as a debug picture: rooms,
// the triangulation over their centres and the chosen corridors.
package snapshot

import (
	"image/color"
	"math"

	"ebiten-dungeon/generation"
	"ebiten-dungeon/geometry"
)

// Options selects what a snapshot draws and at what size.
type Options struct {
	// Scale is the number of pixels per world unit.
	Scale float64
	// Margin is the blank border around the layout, in pixels.
	Margin float64

	Discarded     bool
	Triangulation bool
	Corridors     bool
	Labels        bool
}

// DefaultOptions draws every layer at four pixels per unit.
func DefaultOptions() Options {
	return Options{
		Scale:         4,
		Margin:        16,
		Discarded:     true,
		Triangulation: true,
		Corridors:     true,
		Labels:        true,
	}
}

// Palette
var (
	Background    = color.RGBA{16, 16, 24, 255}
	RoomFill      = color.RGBA{70, 90, 120, 255}
	RoomOutline   = color.RGBA{150, 170, 200, 255}
	DiscardedFill = color.RGBA{45, 45, 50, 255}
	EdgeColor     = color.RGBA{90, 200, 120, 255}
	CorridorColor = color.RGBA{230, 180, 60, 255}
	LoopColor     = color.RGBA{230, 110, 60, 255}
	LabelColor    = color.RGBA{230, 230, 230, 255}
)

// frame maps world coordinates to image pixels.
type frame struct {
	origin geometry.Vector2
	scale  float64
	margin float64
	width  int
	height int
}

func newFrame(d *generation.Dungeon, opts Options) frame {
	lo, hi := bounds(d, opts.Discarded)
	return frame{
		origin: lo,
		scale:  opts.Scale,
		margin: opts.Margin,
		width:  int(math.Ceil((hi.X-lo.X)*opts.Scale + 2*opts.Margin)),
		height: int(math.Ceil((hi.Y-lo.Y)*opts.Scale + 2*opts.Margin)),
	}
}

func (f frame) point(p geometry.Vector2) (float64, float64) {
	return (p.X-f.origin.X)*f.scale + f.margin, (p.Y-f.origin.Y)*f.scale + f.margin
}

func (f frame) rect(r geometry.Rectangle) (x, y, w, h float64) {
	x, y = f.point(r.Position)
	return x, y, r.Size.X * f.scale, r.Size.Y * f.scale
}

func bounds(d *generation.Dungeon, withDiscarded bool) (geometry.Vector2, geometry.Vector2) {
	rooms := d.Rooms
	if withDiscarded {
		rooms = append(append([]*generation.Room{}, d.Rooms...), d.Discarded...)
	}
	if len(rooms) == 0 {
		return geometry.Vector2{}, geometry.Vector2{}
	}

	lo, hi := rooms[0].Rect.Position, rooms[0].Rect.Max()
	for _, room := range rooms[1:] {
		p, q := room.Rect.Position, room.Rect.Max()
		lo = geometry.Vec(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y))
		hi = geometry.Vec(math.Max(hi.X, q.X), math.Max(hi.Y, q.Y))
	}
	return lo, hi
}

// CorridorLine is one corridor drawn between two room centres.
type CorridorLine struct {
	Segment geometry.Segment
	Loop    bool
}

// CorridorLines returns a line per corridor of d whose rooms are both
// present, each carrying its own corridor's loop flag.
func CorridorLines(d *generation.Dungeon) []CorridorLine {
	lines := make([]CorridorLine, 0, len(d.Corridors))
	for _, c := range d.Corridors {
		from, okFrom := d.Room(c.From)
		to, okTo := d.Room(c.To)
		if !okFrom || !okTo {
			continue
		}
		lines = append(lines, CorridorLine{
			Segment: geometry.Segment{A: from.Center(), B: to.Center()},
			Loop:    c.Loop,
		})
	}
	return lines
}
