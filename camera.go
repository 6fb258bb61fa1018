package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-dungeon/config"
	"ebiten-dungeon/geometry"
)

// Camera pans and zooms the debug drawing. Points it transforms are already
// shifted by the debug origin, and zoom scales about that origin.
type Camera struct {
	Pan  geometry.Vector2
	Zoom float64
}

// NewCamera returns a camera showing the layout at its natural scale.
func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// Origin is the screen position of world (0, 0) before panning.
func (c *Camera) Origin() geometry.Vector2 {
	return geometry.Vec(config.OriginX, config.OriginY)
}

// Apply maps an origin-shifted world point to the screen.
func (c *Camera) Apply(p geometry.Vector2) (float32, float32) {
	o := c.Origin()
	x := o.X + (p.X-o.X)*c.Zoom + c.Pan.X
	y := o.Y + (p.Y-o.Y)*c.Zoom + c.Pan.Y
	return float32(x), float32(y)
}

// Update handles the pan and zoom keys
func (c *Camera) Update() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		c.Pan.X += config.PanSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		c.Pan.X -= config.PanSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		c.Pan.Y += config.PanSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		c.Pan.Y -= config.PanSpeed
	}

	if _, wheel := ebiten.Wheel(); wheel != 0 {
		c.ZoomBy(math.Pow(config.ZoomStep, wheel))
	}
}

// ZoomBy multiplies the zoom, keeping it within the configured limits
func (c *Camera) ZoomBy(factor float64) {
	c.Zoom = math.Max(config.MinZoom, math.Min(config.MaxZoom, c.Zoom*factor))
}

// Reset returns to the natural scale with no panning
func (c *Camera) Reset() {
	c.Pan = geometry.Vector2{}
	c.Zoom = 1
}
