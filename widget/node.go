// Package widget provides the document side of a ggpaint pass: a Node
// interface for drawable widgets, a pre-order Render driver and a small set
// of plot widgets (page, graph, axis, shapes, lines and box plots).
package widget

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ggpaint"
)

// Node is a drawable widget. Draw requests exactly one context from the
// helper, draws into it and may attach controls. It must not draw its
// children; Render visits them.
type Node interface {
	ggpaint.Widget
	Children() []Node
	Draw(h *ggpaint.Helper) error
}

// Base holds the fields shared by all widgets in this package.
type Base struct {
	ID     ggpaint.ID
	Parent ggpaint.ID
	// Bounds is the widget's box in page coordinates.
	Bounds ggpaint.Rect
	// Clip optionally restricts drawing.
	Clip *ggpaint.Rect

	children []Node
}

// WidgetID implements ggpaint.Widget.
func (b *Base) WidgetID() ggpaint.ID { return b.ID }

// ParentID implements ggpaint.Widget.
func (b *Base) ParentID() (ggpaint.ID, bool) {
	return b.Parent, b.Parent != ""
}

// Children returns the child widgets in paint order.
func (b *Base) Children() []Node { return b.children }

// Add appends children to b and sets their parent to b.
func (b *Base) Add(children ...Node) {
	for _, c := range children {
		if p, ok := c.(interface{ setParent(ggpaint.ID) }); ok {
			p.setParent(b.ID)
		}
		b.children = append(b.children, c)
	}
}

func (b *Base) setParent(id ggpaint.ID) { b.Parent = id }

// open requests b's context from h.
func (b *Base) open(h *ggpaint.Helper, w ggpaint.Widget) (ggpaint.Canvas, error) {
	return h.RequestContext(w, b.Bounds, b.Clip)
}

// Style is the fill and stroke of a widget. A zero alpha disables the
// corresponding operation.
type Style struct {
	Fill      gg.RGBA
	Stroke    gg.RGBA
	LineWidth float64 // in points
}

// apply fills and/or strokes the current path of c.
func (s Style) apply(c ggpaint.Canvas) error {
	if s.Fill.A > 0 {
		c.SetColor(s.Fill)
		if s.Stroke.A > 0 {
			if err := c.FillPreserve(); err != nil {
				return err
			}
		} else if err := c.Fill(); err != nil {
			return err
		}
	}
	if s.Stroke.A > 0 {
		c.SetColor(s.Stroke)
		c.SetLineWidth(c.Units().Pt(s.lineWidth()))
		return c.Stroke()
	}
	c.ClearPath()
	return nil
}

func (s Style) lineWidth() float64 {
	if s.LineWidth <= 0 {
		return 1
	}
	return s.LineWidth
}
