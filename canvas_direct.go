package ggpaint

import (
	"image"

	"github.com/gogpu/gg"
)

// directCanvas draws straight into the helper's shared context.
type directCanvas struct {
	dc    *gg.Context
	units Units
}

var _ Canvas = (*directCanvas)(nil)

func (c *directCanvas) Units() Units { return c.units }

func (c *directCanvas) Push() { c.dc.Push() }
func (c *directCanvas) Pop()  { c.dc.Pop() }

func (c *directCanvas) Translate(x, y float64) { c.dc.Translate(x, y) }
func (c *directCanvas) Scale(sx, sy float64)   { c.dc.Scale(sx, sy) }
func (c *directCanvas) Rotate(angle float64)   { c.dc.Rotate(angle) }

func (c *directCanvas) SetColor(col gg.RGBA)         { c.dc.SetRGBA(col.R, col.G, col.B, col.A) }
func (c *directCanvas) SetRGB(r, g, b float64)       { c.dc.SetRGB(r, g, b) }
func (c *directCanvas) SetRGBA(r, g, b, a float64)   { c.dc.SetRGBA(r, g, b, a) }
func (c *directCanvas) SetLineWidth(w float64)       { c.dc.SetLineWidth(w) }
func (c *directCanvas) SetLineCap(lc gg.LineCap)     { c.dc.SetLineCap(lc) }
func (c *directCanvas) SetLineJoin(lj gg.LineJoin)   { c.dc.SetLineJoin(lj) }
func (c *directCanvas) SetFillRule(rule gg.FillRule) { c.dc.SetFillRule(rule) }
func (c *directCanvas) SetDash(lengths ...float64)   { c.dc.SetDash(lengths...) }
func (c *directCanvas) ClearDash()                   { c.dc.ClearDash() }

func (c *directCanvas) MoveTo(x, y float64)              { c.dc.MoveTo(x, y) }
func (c *directCanvas) LineTo(x, y float64)              { c.dc.LineTo(x, y) }
func (c *directCanvas) QuadraticTo(cx, cy, x, y float64) { c.dc.QuadraticTo(cx, cy, x, y) }
func (c *directCanvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}
func (c *directCanvas) ClosePath() { c.dc.ClosePath() }
func (c *directCanvas) ClearPath() { c.dc.ClearPath() }

func (c *directCanvas) DrawLine(x1, y1, x2, y2 float64) { c.dc.DrawLine(x1, y1, x2, y2) }

func (c *directCanvas) DrawRectangle(x, y, w, h float64) {
	c.dc.DrawRectangle(x, y, w, h)
}
func (c *directCanvas) DrawRoundedRectangle(x, y, w, h, r float64) {
	c.dc.DrawRoundedRectangle(x, y, w, h, r)
}
func (c *directCanvas) DrawCircle(x, y, r float64)       { c.dc.DrawCircle(x, y, r) }
func (c *directCanvas) DrawEllipse(x, y, rx, ry float64) { c.dc.DrawEllipse(x, y, rx, ry) }
func (c *directCanvas) DrawArc(x, y, r, a1, a2 float64)  { c.dc.DrawArc(x, y, r, a1, a2) }

func (c *directCanvas) DrawImage(img image.Image, x, y int) {
	if img == nil {
		return
	}
	c.dc.DrawImage(gg.ImageBufFromImage(img), float64(x), float64(y))
}

func (c *directCanvas) Fill() error           { return c.dc.Fill() }
func (c *directCanvas) FillPreserve() error   { return c.dc.FillPreserve() }
func (c *directCanvas) Stroke() error         { return c.dc.Stroke() }
func (c *directCanvas) StrokePreserve() error { return c.dc.StrokePreserve() }

func (c *directCanvas) ClipRect(x, y, w, h float64) { c.dc.ClipRect(x, y, w, h) }
func (c *directCanvas) Clip()                       { c.dc.Clip() }
