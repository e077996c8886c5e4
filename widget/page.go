package widget

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ggpaint"
)

// Page is the root of a document. It fills its bounds with Background
// when Background is not transparent.
type Page struct {
	Base
	Background gg.RGBA
}

// NewPage returns a root page covering width x height pixels.
func NewPage(id ggpaint.ID, width, height int) *Page {
	return &Page{Base: Base{
		ID:     id,
		Bounds: ggpaint.R(0, 0, float64(width), float64(height)),
	}}
}

// Draw implements Node.
func (p *Page) Draw(h *ggpaint.Helper) error {
	c, err := p.open(h, p)
	if err != nil {
		return err
	}
	if p.Background.A == 0 {
		return nil
	}
	c.SetColor(p.Background)
	c.DrawRectangle(p.Bounds.X1, p.Bounds.Y1, p.Bounds.Width(), p.Bounds.Height())
	return c.Fill()
}

// Graph is a plotting area: a filled and framed rectangle that parents
// axes and data widgets.
type Graph struct {
	Base
	Style Style
}

// Draw implements Node.
func (g *Graph) Draw(h *ggpaint.Helper) error {
	c, err := g.open(h, g)
	if err != nil {
		return err
	}
	c.DrawRectangle(g.Bounds.X1, g.Bounds.Y1, g.Bounds.Width(), g.Bounds.Height())
	if err := g.Style.apply(c); err != nil {
		return err
	}
	return h.AttachControls(g, ResizeBox{Widget: g.ID, Bounds: g.Bounds})
}
