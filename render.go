package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/geometry"
	"ebiten-dungeon/snapshot"
	"ebiten-dungeon/systems"
)

// Layers selects what the viewer draws.
type Layers struct {
	Tiles         bool
	Discarded     bool
	Rooms         bool
	Triangulation bool
	Corridors     bool
	Messages      bool
}

// RenderSystem draws a generated dungeon with vector shapes.
type RenderSystem struct {
	camera      *Camera
	face        text.Face
	tileMapping *components.TileMappingComponent
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(camera *Camera) *RenderSystem {
	return &RenderSystem{
		camera:      camera,
		face:        text.NewGoXFace(basicfont.Face7x13),
		tileMapping: components.NewTileMappingComponent(),
	}
}

// Draw renders the enabled layers of d, then the message panel
func (s *RenderSystem) Draw(screen *ebiten.Image, d *generation.Dungeon, tiles *components.MapComponent, layers Layers) {
	screen.Fill(snapshot.Background)

	if d != nil {
		origin := s.camera.Origin()
		if layers.Tiles && tiles != nil {
			s.drawTiles(screen, tiles, origin)
		}
		if layers.Discarded {
			for _, room := range d.Discarded {
				s.fillRect(screen, room.Rect, origin, snapshot.DiscardedFill)
			}
		}
		if layers.Rooms {
			for _, room := range d.Rooms {
				s.fillRect(screen, room.Rect, origin, snapshot.RoomFill)
				s.strokeRect(screen, room.Rect, origin, snapshot.RoomOutline)
			}
		}
		if layers.Triangulation {
			for _, seg := range d.Segments(origin) {
				s.drawSegment(screen, seg, 1, snapshot.EdgeColor)
			}
		}
		if layers.Corridors {
			for _, line := range snapshot.CorridorLines(d) {
				clr := snapshot.CorridorColor
				if line.Loop {
					clr = snapshot.LoopColor
				}
				seg := geometry.Segment{A: geometry.Add(line.Segment.A, origin), B: geometry.Add(line.Segment.B, origin)}
				s.drawSegment(screen, seg, 2, clr)
			}
		}
	}

	if layers.Messages {
		s.drawMessagesPanel(screen)
	}
}

// drawTiles paints every non-rock tile of the carved map as a square in its
// tile colour.
func (s *RenderSystem) drawTiles(screen *ebiten.Image, tiles *components.MapComponent, origin geometry.Vector2) {
	size := float32(s.camera.Zoom)
	for y, row := range tiles.Tiles {
		for x, t := range row {
			if t == components.TileWall {
				continue
			}
			world := geometry.Vec(float64(x+tiles.OriginX), float64(y+tiles.OriginY))
			sx, sy := s.camera.Apply(geometry.Add(world, origin))
			vector.DrawFilledRect(screen, sx, sy, size, size, s.tileMapping.GetTileDefinition(t).FG, false)
		}
	}
}

func (s *RenderSystem) fillRect(screen *ebiten.Image, r geometry.Rectangle, origin geometry.Vector2, clr color.Color) {
	x, y := s.camera.Apply(geometry.Add(r.Position, origin))
	zoom := float32(s.camera.Zoom)
	vector.DrawFilledRect(screen, x, y, float32(r.Size.X)*zoom, float32(r.Size.Y)*zoom, clr, false)
}

func (s *RenderSystem) strokeRect(screen *ebiten.Image, r geometry.Rectangle, origin geometry.Vector2, clr color.Color) {
	x, y := s.camera.Apply(geometry.Add(r.Position, origin))
	zoom := float32(s.camera.Zoom)
	vector.StrokeRect(screen, x, y, float32(r.Size.X)*zoom, float32(r.Size.Y)*zoom, 1, clr, false)
}

func (s *RenderSystem) drawSegment(screen *ebiten.Image, seg geometry.Segment, width float32, clr color.Color) {
	x1, y1 := s.camera.Apply(seg.A)
	x2, y2 := s.camera.Apply(seg.B)
	vector.StrokeLine(screen, x1, y1, x2, y2, width, clr, true)
}

// drawMessagesPanel draws the most recent log messages, oldest at the top
func (s *RenderSystem) drawMessagesPanel(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, config.MessagePanelTop, config.WindowWidth,
		config.WindowHeight-config.MessagePanelTop, color.RGBA{0, 0, 0, 200}, false)

	messages := systems.GetMessageLog().RecentMessages(config.MessageLines)
	for i := range messages {
		msg := messages[len(messages)-1-i]

		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(config.MessagePanelTop+4+i*config.MessageLineHeight))
		op.ColorScale.ScaleWithColor(msg.GetColor())
		text.Draw(screen, msg.Text, s.face, op)
	}
}
