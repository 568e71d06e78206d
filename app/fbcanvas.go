package app

import (
	"image/color"

	"github.com/fgreil/mitzi-karl-eido/hal"
	"github.com/fgreil/mitzi-karl-eido/trigrid"

	"tinygo.org/x/tinyfont"
)

// Canvas draws into a hal.Framebuffer, implementing trigrid.Canvas.
// Text is rendered with tinyfont through a Displayer adapter.
type Canvas struct {
	fb    hal.Framebuffer
	color trigrid.Color
	font  tinyfont.Fonter
}

func NewCanvas(fb hal.Framebuffer) *Canvas {
	return &Canvas{
		fb:    fb,
		color: trigrid.ColorSet,
		font:  &tinyfont.TomThumb,
	}
}

func (c *Canvas) Size() (w, h int) {
	return c.fb.Width(), c.fb.Height()
}

func (c *Canvas) SetColor(col trigrid.Color) { c.color = col }

func (c *Canvas) Clear() { c.fb.Clear() }

func (c *Canvas) DrawPoint(x, y int) {
	if c.fb.Format() != hal.PixelFormatMono8 {
		return
	}
	w := c.fb.Width()
	h := c.fb.Height()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	buf := c.fb.Buffer()
	off := y*c.fb.StrideBytes() + x
	if off < 0 || off >= len(buf) {
		return
	}
	buf[off] = byte(c.color)
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	trigrid.WalkLine(x0, y0, x1, y1, c.DrawPoint)
}

func (c *Canvas) FillDisc(cx, cy, r int) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.DrawPoint(cx+dx, cy+dy)
			}
		}
	}
}

func (c *Canvas) FillRect(x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.DrawPoint(xx, yy)
		}
	}
}

func (c *Canvas) DrawText(x, y int, s string) {
	d := &fbDisplayer{c: c}
	tinyfont.WriteLine(d, c.font, int16(x), int16(y), s, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
}

// fbDisplayer adapts the canvas to drivers.Displayer for tinyfont. Every
// glyph pixel lands in the canvas's current color.
type fbDisplayer struct {
	c *Canvas
}

func (d *fbDisplayer) Size() (x, y int16) {
	w, h := d.c.Size()
	return int16(w), int16(h)
}

func (d *fbDisplayer) SetPixel(x, y int16, _ color.RGBA) {
	d.c.DrawPoint(int(x), int(y))
}

func (d *fbDisplayer) Display() error { return nil }
