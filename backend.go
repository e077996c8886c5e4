package ggpaint

import (
	"image"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// contextBackend replays a recording into an existing gg.Context.
//
// Recorded geometry is already in page coordinates, so the recording's own
// SetTransform commands are ignored and every primitive is emitted under
// base instead. Composite passes the target's transform as base; the pick
// probe passes a translation that centres the probe point. Primitive
// failures go to log, since the Backend interface cannot return them.
type contextBackend struct {
	dc    *gg.Context
	base  gg.Matrix
	log   *slog.Logger
	depth int
}

var _ recording.Backend = (*contextBackend)(nil)

func newContextBackend(dc *gg.Context, base gg.Matrix, log *slog.Logger) *contextBackend {
	if log == nil {
		log = Logger()
	}
	return &contextBackend{dc: dc, base: base, log: log}
}

// Begin is a no-op: the target context already exists.
func (b *contextBackend) Begin(_, _ int) error {
	return nil
}

// End unwinds saves the recording left open.
func (b *contextBackend) End() error {
	for ; b.depth > 0; b.depth-- {
		b.dc.Pop()
	}
	return nil
}

func (b *contextBackend) Save() {
	b.dc.Push()
	b.depth++
}

func (b *contextBackend) Restore() {
	if b.depth == 0 {
		return
	}
	b.dc.Pop()
	b.depth--
}

func (b *contextBackend) SetTransform(recording.Matrix) {}

func (b *contextBackend) SetClip(path *gg.Path, rule recording.FillRule) {
	if path == nil {
		return
	}
	b.dc.SetFillRule(convertFillRule(rule))
	b.setPath(path)
	b.dc.Clip()
}

func (b *contextBackend) ClearClip() {
	b.dc.ResetClip()
}

func (b *contextBackend) FillPath(path *gg.Path, brush recording.Brush, rule recording.FillRule) {
	if path == nil {
		return
	}
	b.applyBrush(brush)
	b.dc.SetFillRule(convertFillRule(rule))
	b.setPath(path)
	if err := b.dc.Fill(); err != nil {
		b.log.Warn("ggpaint: fill failed during playback", "err", err)
	}
}

func (b *contextBackend) StrokePath(path *gg.Path, brush recording.Brush, stroke recording.Stroke) {
	if path == nil {
		return
	}
	b.applyBrush(brush)
	b.applyStroke(stroke)
	b.setPath(path)
	if err := b.dc.Stroke(); err != nil {
		b.log.Warn("ggpaint: stroke failed during playback", "err", err)
	}
}

func (b *contextBackend) FillRect(rect recording.Rect, brush recording.Brush) {
	b.applyBrush(brush)
	b.dc.ClearPath()
	b.dc.SetTransform(b.base)
	b.dc.DrawRectangle(rect.MinX, rect.MinY, rect.Width(), rect.Height())
	if err := b.dc.Fill(); err != nil {
		b.log.Warn("ggpaint: fill failed during playback", "err", err)
	}
}

func (b *contextBackend) DrawImage(img image.Image, src, dst recording.Rect, opts recording.ImageOptions) {
	if img == nil || dst.IsEmpty() {
		return
	}
	b.dc.SetTransform(b.base)
	o := gg.DrawImageOptions{
		X:         dst.MinX,
		Y:         dst.MinY,
		DstWidth:  dst.Width(),
		DstHeight: dst.Height(),
		Opacity:   opts.Alpha,
	}
	if !src.IsEmpty() {
		sr := image.Rect(int(src.MinX), int(src.MinY), int(src.MaxX), int(src.MaxY))
		o.SrcRect = &sr
	}
	b.dc.DrawImageEx(gg.ImageBufFromImage(img), o)
}

// DrawText is not replayed: text shaping happens outside the paint engine.
func (b *contextBackend) DrawText(string, float64, float64, text.Face, recording.Brush) {}

// setPath loads path into the context under the base transform.
func (b *contextBackend) setPath(path *gg.Path) {
	b.dc.ClearPath()
	b.dc.SetTransform(b.base)
	path.Iterate(func(verb gg.PathVerb, c []float64) {
		switch verb {
		case gg.MoveTo:
			b.dc.MoveTo(c[0], c[1])
		case gg.LineTo:
			b.dc.LineTo(c[0], c[1])
		case gg.QuadTo:
			b.dc.QuadraticTo(c[0], c[1], c[2], c[3])
		case gg.CubicTo:
			b.dc.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
		case gg.Close:
			b.dc.ClosePath()
		}
	})
}

// applyBrush sets the context colour. Canvas only records solid colours;
// anything else falls back to black.
func (b *contextBackend) applyBrush(brush recording.Brush) {
	if sb, ok := brush.(recording.SolidBrush); ok {
		b.dc.SetFillBrush(gg.Solid(sb.Color))
		return
	}
	b.dc.SetFillBrush(gg.Solid(gg.Black))
}

func (b *contextBackend) applyStroke(stroke recording.Stroke) {
	b.dc.SetLineWidth(stroke.Width)
	b.dc.SetLineCap(convertLineCap(stroke.Cap))
	b.dc.SetLineJoin(convertLineJoin(stroke.Join))
	b.dc.SetMiterLimit(stroke.MiterLimit)
	if len(stroke.DashPattern) > 0 {
		b.dc.SetDash(stroke.DashPattern...)
		b.dc.SetDashOffset(stroke.DashOffset)
	} else {
		b.dc.ClearDash()
	}
}

func convertFillRule(rule recording.FillRule) gg.FillRule {
	if rule == recording.FillRuleEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}

func convertLineCap(lc recording.LineCap) gg.LineCap {
	switch lc {
	case recording.LineCapRound:
		return gg.LineCapRound
	case recording.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func convertLineJoin(lj recording.LineJoin) gg.LineJoin {
	switch lj {
	case recording.LineJoinRound:
		return gg.LineJoinRound
	case recording.LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}
