package snapshot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-dungeon/delaunay"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/geometry"
)

// testDungeon is three 10x10 rooms in an L with one discarded room in the
// empty corner.
func testDungeon(t *testing.T) *generation.Dungeon {
	t.Helper()
	rooms := []*generation.Room{
		{ID: 0, Rect: geometry.Rect(0, 0, 10, 10)},
		{ID: 1, Rect: geometry.Rect(20, 0, 10, 10)},
		{ID: 2, Rect: geometry.Rect(0, 20, 10, 10)},
	}
	centers := make([]geometry.Vector2, len(rooms))
	for i, room := range rooms {
		centers[i] = room.Center()
	}
	tri, err := delaunay.Triangulate(centers)
	require.NoError(t, err)
	corridors, err := generation.PlanCorridors(rooms, tri, rand.New(rand.NewSource(1)), 0)
	require.NoError(t, err)

	return &generation.Dungeon{
		Rooms:         rooms,
		Discarded:     []*generation.Room{{ID: 3, Rect: geometry.Rect(20, 20, 5, 5)}},
		Triangulation: tri,
		Corridors:     corridors,
	}
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestWritePNG(t *testing.T) {
	d := testDungeon(t)
	opts := DefaultOptions()
	opts.Triangulation = false
	opts.Corridors = false
	opts.Labels = false

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, d, opts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	// 30 units at 4px plus a 16px margin on each side.
	assert.Equal(t, 152, img.Bounds().Dx())
	assert.Equal(t, 152, img.Bounds().Dy())

	assert.Equal(t, Background, rgbaAt(img, 2, 2))
	assert.Equal(t, RoomFill, rgbaAt(img, 30, 40))
	assert.Equal(t, DiscardedFill, rgbaAt(img, 106, 106))
}

func TestWritePNGAllLayers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, testDungeon(t), DefaultOptions()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	// The corridor from room 0 to room 1 runs along y = 5.
	assert.Equal(t, CorridorColor, rgbaAt(img, 86, 36))
}

func TestWriteSVG(t *testing.T) {
	d := testDungeon(t)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, d, DefaultOptions()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<svg`)
	assert.Contains(t, out, `id="triangulation"`)
	assert.Contains(t, out, `id="corridors"`)

	// Background, three rooms and one discarded room.
	assert.Equal(t, 5, strings.Count(out, "<rect"))
	assert.Equal(t, d.Triangulation.EdgeCount()+len(d.Corridors), strings.Count(out, "<line"))
	assert.Equal(t, 3, strings.Count(out, "<title>"))
}

func TestWriteSVGWithoutLayers(t *testing.T) {
	opts := Options{Scale: 2}

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, testDungeon(t), opts))
	out := buf.String()

	assert.Equal(t, 4, strings.Count(out, "<rect"))
	assert.Zero(t, strings.Count(out, "<line"))
	assert.Contains(t, out, `width="60"`)
}

func TestCorridorLinesSkipMissingRooms(t *testing.T) {
	d := &generation.Dungeon{
		Rooms: []*generation.Room{
			{ID: 0, Rect: geometry.Rect(0, 0, 10, 10)},
			{ID: 1, Rect: geometry.Rect(20, 0, 10, 10)},
		},
		Corridors: []generation.Corridor{
			{From: 0, To: 9},
			{From: 0, To: 1, Loop: true},
		},
	}

	lines := CorridorLines(d)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Loop, "the loop flag belongs to the corridor that was drawn")
	assert.Equal(t, geometry.Segment{A: geometry.Vec(5, 5), B: geometry.Vec(25, 5)}, lines[0].Segment)
}
