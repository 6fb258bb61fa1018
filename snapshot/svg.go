package snapshot

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"

	"ebiten-dungeon/dbg"
	"ebiten-dungeon/generation"
)

func rgb(c interface{ RGBA() (r, g, b, a uint32) }) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}

// WriteSVG draws d and writes it to w as an SVG document. Each room carries
// its debug name as a title.
func WriteSVG(w io.Writer, d *generation.Dungeon, opts Options) error {
	f := newFrame(d, opts)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(f.width, f.height)
	canvas.Rect(0, 0, f.width, f.height, "fill:"+rgb(Background))

	if opts.Discarded {
		canvas.Gid("discarded")
		for _, room := range d.Discarded {
			x, y, rw, rh := f.rect(room.Rect)
			canvas.Rect(round(x), round(y), round(rw), round(rh), "fill:"+rgb(DiscardedFill))
		}
		canvas.Gend()
	}

	canvas.Gid("rooms")
	roomStyle := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", rgb(RoomFill), rgb(RoomOutline))
	for _, room := range d.Rooms {
		x, y, rw, rh := f.rect(room.Rect)
		canvas.Group()
		canvas.Title(dbg.Name(room.ID))
		canvas.Rect(round(x), round(y), round(rw), round(rh), roomStyle)
		if opts.Labels {
			canvas.Text(round(x)+2, round(y)+12, strconv.Itoa(room.ID), "font-size:10px;fill:"+rgb(LabelColor))
		}
		canvas.Gend()
	}
	canvas.Gend()

	if opts.Triangulation {
		canvas.Gid("triangulation")
		for _, s := range d.Triangulation.Segments() {
			x1, y1 := f.point(s.A)
			x2, y2 := f.point(s.B)
			canvas.Line(round(x1), round(y1), round(x2), round(y2), "stroke-width:1;stroke:"+rgb(EdgeColor))
		}
		canvas.Gend()
	}

	if opts.Corridors {
		canvas.Gid("corridors")
		for _, line := range CorridorLines(d) {
			x1, y1 := f.point(line.Segment.A)
			x2, y2 := f.point(line.Segment.B)
			stroke := rgb(CorridorColor)
			if line.Loop {
				stroke = rgb(LoopColor)
			}
			canvas.Line(round(x1), round(y1), round(x2), round(y2), "stroke-width:3;stroke:"+stroke)
		}
		canvas.Gend()
	}
	canvas.End()

	if _, err := buf.WriteTo(w); err != nil {
		return errors.Wrap(err, "snapshot: write svg")
	}
	return nil
}

func round(v float64) int {
	return int(math.Round(v))
}
