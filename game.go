package main

import (
	"fmt"
	"io"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/dbg"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/geometry"
	"ebiten-dungeon/snapshot"
	"ebiten-dungeon/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	generator    *generation.DungeonGenerator
	dungeon      *generation.Dungeon
	tiles        *components.MapComponent
	camera       *Camera
	renderSystem *RenderSystem
	layers       Layers
}

// NewGame creates the viewer showing d. A nil d is generated from seed.
func NewGame(generator *generation.DungeonGenerator, seed int64, d *generation.Dungeon) *Game {
	camera := NewCamera()
	g := &Game{
		generator:    generator,
		camera:       camera,
		renderSystem: NewRenderSystem(camera),
		layers: Layers{
			Discarded:     true,
			Rooms:         true,
			Triangulation: true,
			Corridors:     true,
			Messages:      true,
		},
	}
	if d != nil {
		g.show(d)
	} else {
		g.regenerate(seed)
	}

	systems.GetMessageLog().AddSystem("R: new seed  T/C/M/X: layers  +/-: zoom  0: reset view  P: save PNG  F1: log")
	return g
}

// regenerate replaces the current dungeon. A failed generation keeps the
// previous dungeon on screen.
func (g *Game) regenerate(seed int64) {
	log := systems.GetMessageLog()
	log.AddSystem(fmt.Sprintf("Seed %d", seed))

	g.generator.SetSeed(seed)
	d, err := g.generator.Generate()
	if err != nil {
		log.AddAlert("ERROR: " + err.Error())
		return
	}
	g.show(d)
}

func (g *Game) show(d *generation.Dungeon) {
	g.dungeon = d
	g.tiles = g.generator.Carve(d)
}

// Update updates the viewer state.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.layers.Triangulation = !g.layers.Triangulation
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.layers.Corridors = !g.layers.Corridors
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.layers.Tiles = !g.layers.Tiles
		g.layers.Rooms = !g.layers.Tiles
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.layers.Discarded = !g.layers.Discarded
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.layers.Messages = !g.layers.Messages
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.camera.ZoomBy(config.ZoomStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.camera.ZoomBy(1 / config.ZoomStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		g.camera.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.saveSnapshot()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.describeRoomAt(ebiten.CursorPosition())
	}

	g.camera.Update()
	return nil
}

// describeRoomAt logs the room under the given screen position
func (g *Game) describeRoomAt(sx, sy int) {
	if g.dungeon == nil {
		return
	}
	origin := g.camera.Origin()
	for _, room := range g.dungeon.Rooms {
		x0, y0 := g.camera.Apply(geometry.Add(room.Rect.Position, origin))
		x1, y1 := g.camera.Apply(geometry.Add(room.Rect.Max(), origin))
		if float32(sx) >= x0 && float32(sx) < x1 && float32(sy) >= y0 && float32(sy) < y1 {
			c := room.Center()
			systems.GetMessageLog().AddTyped(fmt.Sprintf("Room %d %s: %gx%g at (%g, %g)",
				room.ID, dbg.Name(room.ID), room.Rect.Size.X, room.Rect.Size.Y, c.X, c.Y), systems.MessageTypeRoom)
			return
		}
	}
}

func (g *Game) saveSnapshot() {
	if g.dungeon == nil {
		return
	}
	log := systems.GetMessageLog()
	path := fmt.Sprintf("dungeon-%d.png", g.dungeon.Seed)

	err := writeFile(path, func(w io.Writer) error {
		return snapshot.WritePNG(w, g.dungeon, snapshot.DefaultOptions())
	})
	if err != nil {
		log.AddAlert("ERROR: " + err.Error())
		return
	}
	log.AddSystem("Saved " + path)
}

// Draw draws the viewer screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(screen, g.dungeon, g.tiles, g.layers)

	status := fmt.Sprintf("FPS: %.1f  zoom %.2f", ebiten.ActualFPS(), g.camera.Zoom)
	if g.dungeon != nil {
		status += fmt.Sprintf("  seed %d  rooms %d  corridors %d", g.dungeon.Seed, len(g.dungeon.Rooms), len(g.dungeon.Corridors))
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
