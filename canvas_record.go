package ggpaint

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// recordCanvas captures drawing into a Surface's recorder.
type recordCanvas struct {
	rec   *recording.Recorder
	units Units
}

var _ Canvas = (*recordCanvas)(nil)

func (c *recordCanvas) Units() Units { return c.units }

func (c *recordCanvas) Push() { c.rec.Push() }
func (c *recordCanvas) Pop()  { c.rec.Pop() }

func (c *recordCanvas) Translate(x, y float64) { c.rec.Translate(x, y) }
func (c *recordCanvas) Scale(sx, sy float64)   { c.rec.Scale(sx, sy) }
func (c *recordCanvas) Rotate(angle float64)   { c.rec.Rotate(angle) }

func (c *recordCanvas) SetColor(col gg.RGBA)         { c.rec.SetColor(col) }
func (c *recordCanvas) SetRGB(r, g, b float64)       { c.rec.SetRGB(r, g, b) }
func (c *recordCanvas) SetRGBA(r, g, b, a float64)   { c.rec.SetRGBA(r, g, b, a) }
func (c *recordCanvas) SetLineWidth(w float64)       { c.rec.SetLineWidth(w) }
func (c *recordCanvas) SetLineCap(lc gg.LineCap)     { c.rec.SetLineCapGG(lc) }
func (c *recordCanvas) SetLineJoin(lj gg.LineJoin)   { c.rec.SetLineJoinGG(lj) }
func (c *recordCanvas) SetFillRule(rule gg.FillRule) { c.rec.SetFillRuleGG(rule) }
func (c *recordCanvas) SetDash(lengths ...float64)   { c.rec.SetDash(lengths...) }
func (c *recordCanvas) ClearDash()                   { c.rec.ClearDash() }

func (c *recordCanvas) MoveTo(x, y float64)              { c.rec.MoveTo(x, y) }
func (c *recordCanvas) LineTo(x, y float64)              { c.rec.LineTo(x, y) }
func (c *recordCanvas) QuadraticTo(cx, cy, x, y float64) { c.rec.QuadraticTo(cx, cy, x, y) }
func (c *recordCanvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.rec.CubicTo(c1x, c1y, c2x, c2y, x, y)
}
func (c *recordCanvas) ClosePath() { c.rec.ClosePath() }
func (c *recordCanvas) ClearPath() { c.rec.ClearPath() }

func (c *recordCanvas) DrawLine(x1, y1, x2, y2 float64) { c.rec.DrawLine(x1, y1, x2, y2) }

func (c *recordCanvas) DrawRectangle(x, y, w, h float64) {
	c.rec.DrawRectangle(x, y, w, h)
}
func (c *recordCanvas) DrawRoundedRectangle(x, y, w, h, r float64) {
	c.rec.DrawRoundedRectangle(x, y, w, h, r)
}
func (c *recordCanvas) DrawCircle(x, y, r float64)       { c.rec.DrawCircle(x, y, r) }
func (c *recordCanvas) DrawEllipse(x, y, rx, ry float64) { c.rec.DrawEllipse(x, y, rx, ry) }
func (c *recordCanvas) DrawArc(x, y, r, a1, a2 float64)  { c.rec.DrawArc(x, y, r, a1, a2) }

func (c *recordCanvas) DrawImage(img image.Image, x, y int) { c.rec.DrawImage(img, x, y) }

// The recorder never fails; errors surface at playback instead.
func (c *recordCanvas) Fill() error           { c.rec.Fill(); return nil }
func (c *recordCanvas) FillPreserve() error   { c.rec.FillPreserve(); return nil }
func (c *recordCanvas) Stroke() error         { c.rec.Stroke(); return nil }
func (c *recordCanvas) StrokePreserve() error { c.rec.StrokePreserve(); return nil }

// ClipRect records an axis-aligned clip in page coordinates. Like
// gg.Context.ClipRect it maps the two corners through the current transform
// and leaves the path under construction untouched.
func (c *recordCanvas) ClipRect(x, y, w, h float64) {
	x1, y1 := c.rec.TransformPoint(x, y)
	x2, y2 := c.rec.TransformPoint(x+w, y+h)
	c.rec.ClipRoundRect(math.Min(x1, x2), math.Min(y1, y2), math.Abs(x2-x1), math.Abs(y2-y1), 0)
}

func (c *recordCanvas) Clip() { c.rec.Clip() }
