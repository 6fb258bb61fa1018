package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-dungeon/components"
	"ebiten-dungeon/geometry"
)

// twoRoomDungeon is two 6x6 rooms on one row joined by a corridor.
func twoRoomDungeon() *Dungeon {
	return &Dungeon{
		Rooms: makeRooms(
			geometry.Rect(0, 0, 6, 6),
			geometry.Rect(10, 0, 6, 6),
		),
		Corridors: []Corridor{{From: 0, To: 1, Length: 10}},
	}
}

func TestCarve(t *testing.T) {
	g := newTestGenerator(t, DefaultConfig(), 1, nil)

	m := g.Carve(twoRoomDungeon())

	assert.Equal(t, 18, m.Width)
	assert.Equal(t, 8, m.Height)
	assert.Equal(t, -1, m.OriginX)
	assert.Equal(t, -1, m.OriginY)

	// A 6x6 room keeps a one tile wall ring around a 4x4 floor.
	assert.Equal(t, 32, m.Count(components.TileFloor))
	// The corridor cuts through both facing walls and the gap between them.
	assert.Equal(t, 6, m.Count(components.TileCorridor))

	assert.Equal(t, components.TileWallTopLeft, m.Tiles[1][1])
	assert.Equal(t, components.TileWallBottomRight, m.Tiles[6][16])
	assert.Equal(t, components.TileWall, m.Tiles[0][0], "rock away from open tiles stays plain")

	lines := strings.Split(m.String(), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, " │....░░░░░░....│ ", lines[4])
	assert.Equal(t, " ┌────┐    ┌────┐ ", lines[1])
}

func TestCarveGeneratedDungeonIsConnected(t *testing.T) {
	g := newTestGenerator(t, DefaultConfig(), 21, nil)
	d, err := g.Generate()
	require.NoError(t, err)

	m := g.Carve(d)

	// Flood fill the open tiles from the first room's centre.
	sx, sy := centerTile(m, d.Rooms[0])
	require.Equal(t, components.TileFloor, m.Tile(sx, sy))
	seen := map[[2]int]bool{{sx, sy}: true}
	queue := [][2]int{{sx, sy}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, step := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := [2]int{p[0] + step[0], p[1] + step[1]}
			if !seen[n] && components.IsOpenType(m.Tile(n[0], n[1])) {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}

	for _, room := range d.Rooms {
		x, y := centerTile(m, room)
		assert.True(t, seen[[2]int{x, y}], "room %d is cut off", room.ID)
	}
}

func TestCreateCorridorShapes(t *testing.T) {
	g := newTestGenerator(t, DefaultConfig(), 1, nil)

	for i := 0; i < 8; i++ {
		m := components.NewMapComponent(10, 10, 0, 0)
		g.CreateCorridor(m, 1, 1, 7, 5)

		// Either bend digs the same number of tiles.
		assert.Equal(t, 11, m.Count(components.TileCorridor))
		assert.Equal(t, components.TileCorridor, m.Tile(1, 1))
		assert.Equal(t, components.TileCorridor, m.Tile(7, 5))
		bend := m.Tile(7, 1) == components.TileCorridor || m.Tile(1, 5) == components.TileCorridor
		assert.True(t, bend)
	}
}

func TestCalculateWallMask(t *testing.T) {
	border := [][]bool{
		{false, true, false},
		{true, true, true},
		{false, false, false},
	}
	assert.Equal(t, WallConnectTop|WallConnectLeft|WallConnectRight, CalculateWallMask(border, 1, 1))
	assert.Equal(t, components.TileWallTeeBottom, WallTileLookup[CalculateWallMask(border, 1, 1)])
	assert.Equal(t, WallConnectRight, CalculateWallMask(border, 0, 1))
	assert.Equal(t, WallConnectTop, CalculateWallMask(border, 2, 2))
}

func TestCalculateWallMaskIsolatedPillar(t *testing.T) {
	border := [][]bool{
		{false, false, false},
		{false, true, false},
		{false, false, false},
	}
	assert.Zero(t, CalculateWallMask(border, 1, 1))
	assert.Equal(t, components.TileWallCross, WallTileLookup[CalculateWallMask(border, 1, 1)])
}
