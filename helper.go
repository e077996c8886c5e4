package ggpaint

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gg"
)

// Helper records one paint pass over a widget tree and answers spatial
// queries about it.
//
// The caller visits widgets in pre-order (parent before children, siblings
// in paint order). Each widget calls RequestContext once, draws with the
// returned Canvas and may attach controls. Afterwards the tree can be
// composited any number of times and queried without calling back into the
// widgets. The first composite or query ends the drawing phase.
//
// A Helper is not safe for concurrent use.
type Helper struct {
	width, height int
	scale         float64
	dpiX, dpiY    float64
	pickRadius    int
	logger        *slog.Logger

	mode   paintMode
	states map[ID]*DrawState
	root   *DrawState
	sealed bool

	// axisPlotters maps an axis to the plotters drawn against it.
	axisPlotters map[ID][]Widget
}

// New creates a Helper for a page of width x height device pixels.
// Without WithDirect the helper is layered: every widget records into its
// own Surface and Composite draws them later.
func New(width, height int, opts ...Option) *Helper {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	h := &Helper{
		width:      width,
		height:     height,
		scale:      o.scale,
		dpiX:       o.dpiX,
		dpiY:       o.dpiY,
		pickRadius: o.pickRadius,
		logger:     o.logger,
		states:     make(map[ID]*DrawState),

		axisPlotters: make(map[ID][]Widget),
	}
	if o.direct != nil {
		h.mode = &directMode{dc: o.direct}
	} else {
		h.mode = layeredMode{}
	}
	return h
}

func (h *Helper) log() *slog.Logger {
	if h.logger != nil {
		return h.logger
	}
	return Logger()
}

// Size returns the page size in device pixels.
func (h *Helper) Size() (width, height int) {
	return h.width, h.height
}

// SizeAtDPI returns the page size in pixels it would have at dpi, keeping
// its physical size.
func (h *Helper) SizeAtDPI(dpi float64) (width, height int) {
	return int(float64(h.width) / h.dpiX * dpi), int(float64(h.height) / h.dpiY * dpi)
}

// Units returns the page parameters handed to every Canvas.
func (h *Helper) Units() Units {
	return Units{
		Scale:    h.scale,
		PixPerPt: h.dpiY / 72,
		Width:    h.width,
		Height:   h.height,
		DPIX:     h.dpiX,
		DPIY:     h.dpiY,
	}
}

// Direct reports whether the helper draws into a shared live context.
func (h *Helper) Direct() bool {
	_, ok := h.mode.(*directMode)
	return ok
}

// RequestContext registers w for this pass and returns the Canvas it must
// draw with. bounds is w's bounding box in page coordinates; a non-nil clip
// restricts drawing immediately.
//
// The widget's parent must already have requested a context. A widget
// without a parent becomes the root; only one root is allowed per pass.
func (h *Helper) RequestContext(w Widget, bounds Rect, clip *Rect) (Canvas, error) {
	id := w.WidgetID()
	if h.sealed {
		return nil, fmt.Errorf("%w: widget %q", ErrPassFinished, id)
	}
	if _, dup := h.states[id]; dup {
		return nil, fmt.Errorf("%w: widget %q", ErrAlreadyDrawn, id)
	}

	st := newDrawState(w, bounds, clip, h.mode.surface(h))

	if pid, ok := w.ParentID(); ok {
		parent, found := h.states[pid]
		if !found {
			return nil, fmt.Errorf("%w: widget %q, parent %q", ErrParentNotDrawn, id, pid)
		}
		parent.children = append(parent.children, st)
	} else {
		if h.root != nil {
			return nil, fmt.Errorf("%w: widget %q, root %q",
				ErrDuplicateRoot, id, h.root.widget.WidgetID())
		}
		h.root = st
	}
	h.states[id] = st

	c := h.mode.open(h, st)
	if clip != nil {
		c.ClipRect(clip.X1, clip.Y1, clip.Width(), clip.Height())
	}

	h.log().Debug("ggpaint: context requested",
		"widget", string(id), "mode", h.mode.String(), "bounds", bounds.String())
	return c, nil
}

// AttachControls replaces the control handles of w's draw state.
func (h *Helper) AttachControls(w Widget, controls ...Control) error {
	st, err := h.State(w)
	if err != nil {
		return err
	}
	st.controls = append([]Control(nil), controls...)
	return nil
}

// Controls returns the control handles attached to w.
func (h *Helper) Controls(w Widget) ([]Control, error) {
	st, err := h.State(w)
	if err != nil {
		return nil, err
	}
	return st.controls, nil
}

// State returns w's draw state, or ErrNotDrawn.
func (h *Helper) State(w Widget) (*DrawState, error) {
	st, ok := h.states[w.WidgetID()]
	if !ok {
		return nil, fmt.Errorf("%w: widget %q", ErrNotDrawn, w.WidgetID())
	}
	return st, nil
}

// Root returns the root draw state, or nil if nothing was drawn.
func (h *Helper) Root() *DrawState {
	return h.root
}

// Len returns the number of widgets drawn in this pass.
func (h *Helper) Len() int {
	return len(h.states)
}

// LinkAxis records that plotter draws its data against the axis with the
// given id. Plotters call it while drawing; repeated links are ignored.
func (h *Helper) LinkAxis(axis ID, plotter Widget) {
	id := plotter.WidgetID()
	for _, p := range h.axisPlotters[axis] {
		if p.WidgetID() == id {
			return
		}
	}
	h.axisPlotters[axis] = append(h.axisPlotters[axis], plotter)
}

// AxisPlotters returns the plotters linked to axis, in link order.
func (h *Helper) AxisPlotters(axis ID) []Widget {
	return h.axisPlotters[axis]
}

// Reset discards the recorded tree and starts a new pass.
func (h *Helper) Reset() {
	h.mode.finish()
	clear(h.states)
	clear(h.axisPlotters)
	h.root = nil
	h.sealed = false
}

// seal ends the drawing phase. Surfaces become immutable and, in direct
// mode, the last widget's context state is restored.
func (h *Helper) seal() {
	if h.sealed {
		return
	}
	h.sealed = true
	h.mode.finish()
	for _, st := range h.states {
		if st.surface != nil {
			st.surface.Recording()
		}
	}
	h.log().Debug("ggpaint: pass finished", "widgets", len(h.states), "mode", h.mode.String())
}

// Finish ends the drawing phase explicitly. Composite and the queries call
// it implicitly; direct-mode callers use it to pop the last widget's state
// from the shared context before using the context themselves.
func (h *Helper) Finish() {
	h.seal()
}

// Composite draws every recorded surface onto dc in paint order, each
// subtree bracketed by Push and Pop. In direct mode it does nothing.
func (h *Helper) Composite(dc *gg.Context) error {
	h.seal()
	if h.root == nil {
		return nil
	}
	if err := h.mode.composite(h.root, dc, h.log()); err != nil {
		return fmt.Errorf("ggpaint: composite: %w", err)
	}
	return nil
}

// Image composites the pass onto a fresh transparent page and returns it.
func (h *Helper) Image() (image.Image, error) {
	dc := gg.NewContext(h.width, h.height)
	defer dc.Close()
	if err := h.Composite(dc); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}
