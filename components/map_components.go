package components

import (
	"image/color"
	"strings"
)

// MapComponent is a carved dungeon level. Tile (0, 0) sits at world
// coordinate (OriginX, OriginY); one tile covers one world unit.
type MapComponent struct {
	Width   int
	Height  int
	OriginX int
	OriginY int
	Tiles   [][]int
}

// Tile types
const (
	TileWall = iota
	TileFloor
	TileCorridor

	// Box drawing wall tiles
	TileWallHorizontal  // ─
	TileWallVertical    // │
	TileWallTopLeft     // ┌
	TileWallTopRight    // ┐
	TileWallBottomLeft  // └
	TileWallBottomRight // ┘
	TileWallTeeLeft     // ├
	TileWallTeeRight    // ┤
	TileWallTeeTop      // ┬
	TileWallTeeBottom   // ┴
	TileWallCross       // ┼
)

// TileDefinition describes how a tile type is drawn.
type TileDefinition struct {
	Glyph rune
	FG    color.Color
}

// NewTileDefinition creates a tile definition using a character code
func NewTileDefinition(glyph rune, fg color.Color) TileDefinition {
	return TileDefinition{Glyph: glyph, FG: fg}
}

// TileMappingComponent maps tile types to their visual representation
type TileMappingComponent struct {
	Definitions map[int]TileDefinition
}

// NewTileMappingComponent creates the default tile mapping. Solid rock is
// drawn blank so only the walls bordering open tiles show.
func NewTileMappingComponent() *TileMappingComponent {
	mapping := &TileMappingComponent{
		Definitions: make(map[int]TileDefinition),
	}
	mapping.Definitions[TileWall] = NewTileDefinition(' ', color.RGBA{40, 40, 40, 255})
	mapping.Definitions[TileFloor] = NewTileDefinition('.', color.RGBA{96, 96, 96, 255})
	mapping.Definitions[TileCorridor] = NewTileDefinition('░', color.RGBA{139, 105, 20, 255})

	wallColor := color.RGBA{160, 160, 160, 255}
	mapping.Definitions[TileWallHorizontal] = NewTileDefinition('─', wallColor)
	mapping.Definitions[TileWallVertical] = NewTileDefinition('│', wallColor)
	mapping.Definitions[TileWallTopLeft] = NewTileDefinition('┌', wallColor)
	mapping.Definitions[TileWallTopRight] = NewTileDefinition('┐', wallColor)
	mapping.Definitions[TileWallBottomLeft] = NewTileDefinition('└', wallColor)
	mapping.Definitions[TileWallBottomRight] = NewTileDefinition('┘', wallColor)
	mapping.Definitions[TileWallTeeLeft] = NewTileDefinition('├', wallColor)
	mapping.Definitions[TileWallTeeRight] = NewTileDefinition('┤', wallColor)
	mapping.Definitions[TileWallTeeTop] = NewTileDefinition('┬', wallColor)
	mapping.Definitions[TileWallTeeBottom] = NewTileDefinition('┴', wallColor)
	mapping.Definitions[TileWallCross] = NewTileDefinition('┼', wallColor)

	return mapping
}

// GetTileDefinition returns the visual definition for a given tile type
func (t *TileMappingComponent) GetTileDefinition(tileType int) TileDefinition {
	if def, exists := t.Definitions[tileType]; exists {
		return def
	}

	// Return a default if the tile type isn't defined
	return TileDefinition{
		Glyph: '?',
		FG:    color.RGBA{255, 0, 255, 255}, // Magenta for undefined tiles
	}
}

// NewMapComponent creates a map of solid rock with tile (0, 0) at the given
// world coordinate.
func NewMapComponent(width, height, originX, originY int) *MapComponent {
	m := &MapComponent{
		Width:   width,
		Height:  height,
		OriginX: originX,
		OriginY: originY,
		Tiles:   make([][]int, height),
	}
	for y := 0; y < height; y++ {
		m.Tiles[y] = make([]int, width)
		for x := 0; x < width; x++ {
			m.Tiles[y][x] = TileWall
		}
	}
	return m
}

// InBounds reports whether (x, y) is a tile of the map.
func (m *MapComponent) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Tile returns the tile at (x, y). Out of bounds reads as rock.
func (m *MapComponent) Tile(x, y int) int {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y][x]
}

// IsWall returns true if the tile at (x, y) is a wall
func (m *MapComponent) IsWall(x, y int) bool {
	return IsWallType(m.Tile(x, y))
}

// SetTile sets the tile at the given position
func (m *MapComponent) SetTile(x, y, tileType int) {
	if m.InBounds(x, y) {
		m.Tiles[y][x] = tileType
	}
}

// WorldToTile converts a world coordinate to tile coordinates.
func (m *MapComponent) WorldToTile(wx, wy int) (int, int) {
	return wx - m.OriginX, wy - m.OriginY
}

// Count returns how many tiles have the given type.
func (m *MapComponent) Count(tileType int) int {
	n := 0
	for _, row := range m.Tiles {
		for _, t := range row {
			if t == tileType {
				n++
			}
		}
	}
	return n
}

// String renders the map with the default glyphs, one line per row.
func (m *MapComponent) String() string {
	mapping := NewTileMappingComponent()

	var sb strings.Builder
	for y, row := range m.Tiles {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range row {
			sb.WriteRune(mapping.GetTileDefinition(t).Glyph)
		}
	}
	return sb.String()
}

// IsWallType checks if a tile is rock or any box drawing wall
func IsWallType(tileType int) bool {
	return tileType == TileWall || (tileType >= TileWallHorizontal && tileType <= TileWallCross)
}

// IsOpenType checks if a tile can be walked on
func IsOpenType(tileType int) bool {
	return tileType == TileFloor || tileType == TileCorridor
}
