package generation

import (
	"math"

	"ebiten-dungeon/components"
)

// Wall connection constants used for box drawing walls
const (
	WallConnectTop    = 1
	WallConnectRight  = 2
	WallConnectBottom = 4
	WallConnectLeft   = 8
)

// WallTileLookup maps a wall connection mask to its box drawing tile.
var WallTileLookup = [16]int{
	0:  components.TileWallCross, // isolated pillar between two openings
	1:  components.TileWallVertical,
	2:  components.TileWallHorizontal,
	3:  components.TileWallBottomLeft,
	4:  components.TileWallVertical,
	5:  components.TileWallVertical,
	6:  components.TileWallTopLeft,
	7:  components.TileWallTeeLeft,
	8:  components.TileWallHorizontal,
	9:  components.TileWallBottomRight,
	10: components.TileWallHorizontal,
	11: components.TileWallTeeBottom,
	12: components.TileWallTopRight,
	13: components.TileWallTeeRight,
	14: components.TileWallTeeTop,
	15: components.TileWallCross,
}

// Carve rasterises d onto a tile map one world unit per tile. Each room's
// rectangle becomes a wall ring around a floor interior, each corridor an
// L-shaped one-tile path between room centres, and the walls bordering open
// tiles get box drawing tiles. Corridor bends come from the generator's rng.
func (g *DungeonGenerator) Carve(d *Dungeon) *components.MapComponent {
	bounds := d.Bounds()
	x0 := int(math.Floor(bounds.Position.X)) - 1
	y0 := int(math.Floor(bounds.Position.Y)) - 1
	x1 := int(math.Ceil(bounds.Max().X)) + 1
	y1 := int(math.Ceil(bounds.Max().Y)) + 1
	mapComp := components.NewMapComponent(x1-x0, y1-y0, x0, y0)

	for _, room := range d.Rooms {
		carveRoom(mapComp, room)
	}
	for _, c := range d.Corridors {
		from, okFrom := d.Room(c.From)
		to, okTo := d.Room(c.To)
		if !okFrom || !okTo {
			continue
		}
		fx, fy := centerTile(mapComp, from)
		tx, ty := centerTile(mapComp, to)
		g.CreateCorridor(mapComp, fx, fy, tx, ty)
	}

	ApplyBoxDrawingWalls(mapComp)
	return mapComp
}

// carveRoom opens the interior of the room, leaving its outermost ring of
// tiles as wall so touching rooms stay apart.
func carveRoom(mapComp *components.MapComponent, room *Room) {
	left, top := mapComp.WorldToTile(int(math.Floor(room.Rect.Position.X)), int(math.Floor(room.Rect.Position.Y)))
	right, bottom := mapComp.WorldToTile(int(math.Ceil(room.Rect.Max().X)), int(math.Ceil(room.Rect.Max().Y)))

	for y := top + 1; y < bottom-1; y++ {
		for x := left + 1; x < right-1; x++ {
			mapComp.SetTile(x, y, components.TileFloor)
		}
	}
}

func centerTile(mapComp *components.MapComponent, room *Room) (int, int) {
	c := room.Center()
	return mapComp.WorldToTile(int(math.Floor(c.X)), int(math.Floor(c.Y)))
}

// CreateCorridor digs an L-shaped corridor between two tiles, choosing at
// random whether to go horizontally or vertically first. Room floors are
// left as they are.
func (g *DungeonGenerator) CreateCorridor(mapComp *components.MapComponent, x1, y1, x2, y2 int) {
	if g.rng.Intn(2) == 0 {
		createHorizontalCorridor(mapComp, x1, x2, y1)
		createVerticalCorridor(mapComp, y1, y2, x2)
	} else {
		createVerticalCorridor(mapComp, y1, y2, x1)
		createHorizontalCorridor(mapComp, x1, x2, y2)
	}
}

// createHorizontalCorridor creates a horizontal corridor from x1 to x2 at y
func createHorizontalCorridor(mapComp *components.MapComponent, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		digCorridor(mapComp, x, y)
	}
}

// createVerticalCorridor creates a vertical corridor from y1 to y2 at x
func createVerticalCorridor(mapComp *components.MapComponent, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		digCorridor(mapComp, x, y)
	}
}

func digCorridor(mapComp *components.MapComponent, x, y int) {
	if mapComp.InBounds(x, y) && mapComp.Tiles[y][x] != components.TileFloor {
		mapComp.SetTile(x, y, components.TileCorridor)
	}
}

// ApplyBoxDrawingWalls replaces every rock tile that borders an open tile,
// diagonals included, with the box drawing tile joining it to its
// neighbouring border walls.
func ApplyBoxDrawingWalls(mapComp *components.MapComponent) {
	// First pass: find the border walls
	border := make([][]bool, mapComp.Height)
	for y := 0; y < mapComp.Height; y++ {
		border[y] = make([]bool, mapComp.Width)
		for x := 0; x < mapComp.Width; x++ {
			if mapComp.Tiles[y][x] == components.TileWall && HasAdjacentOpen(mapComp, x, y) {
				border[y][x] = true
			}
		}
	}

	// Second pass: join each border wall to the border walls around it
	for y := 0; y < mapComp.Height; y++ {
		for x := 0; x < mapComp.Width; x++ {
			if border[y][x] {
				mapComp.Tiles[y][x] = WallTileLookup[CalculateWallMask(border, x, y)]
			}
		}
	}
}

// HasAdjacentOpen checks the eight neighbours of (x, y) for a floor or
// corridor tile.
func HasAdjacentOpen(mapComp *components.MapComponent, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && components.IsOpenType(mapComp.Tile(x+dx, y+dy)) {
				return true
			}
		}
	}
	return false
}

// CalculateWallMask calculates the bitmask value for a border wall based on
// which of its four neighbours are border walls too.
func CalculateWallMask(border [][]bool, x, y int) int {
	at := func(x, y int) bool {
		return y >= 0 && y < len(border) && x >= 0 && x < len(border[y]) && border[y][x]
	}

	mask := 0
	if at(x, y-1) {
		mask |= WallConnectTop
	}
	if at(x+1, y) {
		mask |= WallConnectRight
	}
	if at(x, y+1) {
		mask |= WallConnectBottom
	}
	if at(x-1, y) {
		mask |= WallConnectLeft
	}
	return mask
}
