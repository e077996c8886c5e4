package widget

import (
	"github.com/gogpu/ggpaint"
)

// ShapeKind selects the outline a Shape draws within its bounds.
type ShapeKind uint8

const (
	Rectangle ShapeKind = iota
	Ellipse
)

// Shape draws a rectangle or an ellipse filling its bounds.
type Shape struct {
	Base
	Kind ShapeKind
	// Rounding is the corner radius of rectangles, in points.
	Rounding float64
	Style    Style
}

// Draw implements Node.
func (s *Shape) Draw(h *ggpaint.Helper) error {
	c, err := s.open(h, s)
	if err != nil {
		return err
	}
	b := s.Bounds
	switch s.Kind {
	case Ellipse:
		c.DrawEllipse((b.X1+b.X2)/2, (b.Y1+b.Y2)/2, b.Width()/2, b.Height()/2)
	default:
		if s.Rounding > 0 {
			c.DrawRoundedRectangle(b.X1, b.Y1, b.Width(), b.Height(), c.Units().Pt(s.Rounding))
		} else {
			c.DrawRectangle(b.X1, b.Y1, b.Width(), b.Height())
		}
	}
	if err := s.Style.apply(c); err != nil {
		return err
	}
	return h.AttachControls(s, ResizeBox{Widget: s.ID, Bounds: b})
}

// Point is a vertex of a Line in page coordinates.
type Point struct {
	X, Y float64
}

// Line draws an open polyline through Points. Its bounds are the box of
// the points unless set explicitly.
type Line struct {
	Base
	Points []Point
	// Axes lists the axes the points are plotted against.
	Axes  []ggpaint.ID
	Style Style
}

// PointBounds returns the bounding box of the line's vertices.
func (l *Line) PointBounds() ggpaint.Rect {
	if len(l.Points) == 0 {
		return ggpaint.Rect{}
	}
	r := ggpaint.R(l.Points[0].X, l.Points[0].Y, l.Points[0].X, l.Points[0].Y)
	for _, p := range l.Points[1:] {
		r = r.Union(ggpaint.R(p.X, p.Y, p.X, p.Y))
	}
	return r
}

// Draw implements Node.
func (l *Line) Draw(h *ggpaint.Helper) error {
	if l.Bounds == (ggpaint.Rect{}) {
		l.Bounds = l.PointBounds()
	}
	c, err := l.open(h, l)
	if err != nil {
		return err
	}
	for _, a := range l.Axes {
		h.LinkAxis(a, l)
	}
	if len(l.Points) < 2 {
		return nil
	}
	st := l.Style
	st.Fill.A = 0

	c.MoveTo(l.Points[0].X, l.Points[0].Y)
	for _, p := range l.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	if err := st.apply(c); err != nil {
		return err
	}

	first, last := l.Points[0], l.Points[len(l.Points)-1]
	return h.AttachControls(l,
		MovePoint{Widget: l.ID, Index: 0, X: first.X, Y: first.Y},
		MovePoint{Widget: l.ID, Index: len(l.Points) - 1, X: last.X, Y: last.Y},
	)
}
