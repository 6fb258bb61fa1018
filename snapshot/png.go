package snapshot

import (
	"io"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"ebiten-dungeon/generation"
)

// WritePNG draws d and writes it to w as a PNG image.
func WritePNG(w io.Writer, d *generation.Dungeon, opts Options) error {
	f := newFrame(d, opts)
	ctx := gg.NewContext(f.width, f.height)

	ctx.DrawRectangle(0, 0, float64(f.width), float64(f.height))
	ctx.SetColor(Background)
	ctx.Fill()

	if opts.Discarded {
		for _, room := range d.Discarded {
			ctx.DrawRectangle(f.rect(room.Rect))
			ctx.SetColor(DiscardedFill)
			ctx.Fill()
		}
	}

	ctx.SetLineWidth(1)
	for _, room := range d.Rooms {
		ctx.DrawRectangle(f.rect(room.Rect))
		ctx.SetColor(RoomFill)
		ctx.FillPreserve()
		ctx.SetColor(RoomOutline)
		ctx.Stroke()
	}

	if opts.Triangulation {
		ctx.SetColor(EdgeColor)
		ctx.SetLineWidth(1)
		for _, s := range d.Triangulation.Segments() {
			x1, y1 := f.point(s.A)
			x2, y2 := f.point(s.B)
			ctx.DrawLine(x1, y1, x2, y2)
			ctx.Stroke()
		}
	}

	if opts.Corridors {
		ctx.SetLineWidth(3)
		for _, line := range CorridorLines(d) {
			x1, y1 := f.point(line.Segment.A)
			x2, y2 := f.point(line.Segment.B)
			if line.Loop {
				ctx.SetColor(LoopColor)
			} else {
				ctx.SetColor(CorridorColor)
			}
			ctx.DrawLine(x1, y1, x2, y2)
			ctx.Stroke()
		}
	}

	if opts.Labels {
		ctx.SetFontFace(basicfont.Face7x13)
		ctx.SetColor(LabelColor)
		for _, room := range d.Rooms {
			x, y := f.point(room.Rect.Position)
			ctx.DrawString(strconv.Itoa(room.ID), x+2, y+12)
		}
	}

	if err := ctx.EncodePNG(w); err != nil {
		return errors.Wrap(err, "snapshot: encode png")
	}
	return nil
}
