package ggpaint

import (
	"image"

	"github.com/gogpu/gg"
)

// Units carries the physical parameters of the page a widget draws on, so
// drawing code can convert points and other physical lengths to pixels.
type Units struct {
	// Scale is the helper's scale factor.
	Scale float64
	// PixPerPt is the number of device pixels per typographic point (1/72in)
	// at the vertical resolution, before scaling.
	PixPerPt float64
	// Width and Height are the page size in device pixels.
	Width, Height int
	// DPIX and DPIY are the page resolution.
	DPIX, DPIY float64
}

// MaxDim returns the larger page dimension in pixels.
func (u Units) MaxDim() int {
	return max(u.Width, u.Height)
}

// Pt converts a length in points to device pixels, including the scale
// factor.
func (u Units) Pt(pt float64) float64 {
	return pt * u.PixPerPt * u.Scale
}

// Inch converts a length in inches to device pixels, including the scale
// factor.
func (u Units) Inch(in float64) float64 {
	return in * u.DPIY * u.Scale
}

// Canvas is the drawing handle returned by Helper.RequestContext.
//
// Its methods mirror gg.Context. In layered mode commands are captured
// into the widget's Surface; in direct mode they go straight to the shared
// context. Widgets must not keep a Canvas beyond their draw call.
type Canvas interface {
	// Units returns the page parameters of the pass.
	Units() Units

	// Push saves the transform and clip; Pop restores them.
	Push()
	Pop()

	Translate(x, y float64)
	Scale(sx, sy float64)
	Rotate(angle float64)

	SetColor(c gg.RGBA)
	SetRGB(r, g, b float64)
	SetRGBA(r, g, b, a float64)
	SetLineWidth(w float64)
	SetLineCap(lc gg.LineCap)
	SetLineJoin(lj gg.LineJoin)
	SetFillRule(rule gg.FillRule)
	SetDash(lengths ...float64)
	ClearDash()

	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	ClearPath()

	DrawLine(x1, y1, x2, y2 float64)
	DrawRectangle(x, y, w, h float64)
	DrawRoundedRectangle(x, y, w, h, r float64)
	DrawCircle(x, y, r float64)
	DrawEllipse(x, y, rx, ry float64)
	DrawArc(x, y, r, angle1, angle2 float64)

	Fill() error
	FillPreserve() error
	Stroke() error
	StrokePreserve() error

	// ClipRect intersects the clip region with the given rectangle.
	ClipRect(x, y, w, h float64)
	// Clip intersects the clip region with the current path and clears it.
	Clip()

	// DrawImage draws img with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y int)
}
