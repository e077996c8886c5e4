package ggpaint

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// paintMode is the rendering strategy of a Helper, chosen once by New.
type paintMode interface {
	// surface returns the recording for a new state, or nil.
	surface(h *Helper) *Surface
	// open returns the Canvas a widget draws with.
	open(h *Helper, st *DrawState) Canvas
	// finish ends the drawing phase.
	finish()
	// composite draws the recorded tree onto dc, logging primitive
	// failures to log.
	composite(root *DrawState, dc *gg.Context, log *slog.Logger) error
	String() string
}

// layeredMode gives each widget its own Surface and composites later.
type layeredMode struct{}

func (layeredMode) surface(h *Helper) *Surface {
	return newSurface(h.width, h.height, h.dpiX, h.dpiY)
}

func (layeredMode) open(h *Helper, st *DrawState) Canvas {
	return &recordCanvas{rec: st.surface.rec, units: h.Units()}
}

func (layeredMode) finish() {}

func (m layeredMode) composite(st *DrawState, dc *gg.Context, log *slog.Logger) error {
	dc.Push()
	defer dc.Pop()
	if err := st.surface.replay(dc, dc.GetTransform(), log); err != nil {
		return err
	}
	for _, child := range st.children {
		if err := m.composite(child, dc, log); err != nil {
			return err
		}
	}
	return nil
}

func (layeredMode) String() string { return "layered" }

// directMode shares one live context between all widgets. Each widget's
// drawing is bracketed by a Push on open and a Pop when the next widget
// opens or the pass finishes.
type directMode struct {
	dc     *gg.Context
	active bool
}

func (*directMode) surface(*Helper) *Surface { return nil }

func (m *directMode) open(h *Helper, _ *DrawState) Canvas {
	if m.active {
		m.dc.Pop()
	}
	m.dc.Push()
	m.active = true
	return &directCanvas{dc: m.dc, units: h.Units()}
}

func (m *directMode) finish() {
	if m.active {
		m.dc.Pop()
		m.active = false
	}
}

// composite is a no-op: drawing already happened on the shared context.
func (*directMode) composite(*DrawState, *gg.Context, *slog.Logger) error { return nil }

func (*directMode) String() string { return "direct" }
