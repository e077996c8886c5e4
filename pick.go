package ggpaint

// TopmostWidgetAt returns the widget whose drawing is visually on top at
// page point (x, y), or nil if nothing was drawn there.
//
// Every surface is replayed into a small probe buffer centred on the point,
// in paint order. Each surface that changes a probe pixel becomes the
// answer, so the last widget to paint there wins. Each surface's own clip
// applies. antialias controls whether the probe rasterizes with
// anti-aliasing; without it a pixel counts only when at least half covered.
//
// Direct-mode helpers keep no surfaces and always return nil.
func (h *Helper) TopmostWidgetAt(x, y float64, antialias bool) Widget {
	h.seal()
	if h.root == nil || h.Direct() {
		return nil
	}

	p := newProbe(defaultProbeCache, x, y, h.pickRadius, antialias, h.log())
	var found Widget
	h.root.walk(func(st *DrawState) bool {
		if st.surface == nil {
			return true
		}
		hit, err := p.hit(st.surface)
		if err != nil {
			h.log().Warn("ggpaint: probe playback failed",
				"widget", string(st.widget.WidgetID()), "err", err)
			return true
		}
		if hit {
			found = st.widget
		}
		return true
	})

	if found != nil {
		h.log().Debug("ggpaint: pick", "x", x, "y", y, "widget", string(found.WidgetID()))
	} else {
		h.log().Debug("ggpaint: pick", "x", x, "y", y, "widget", nil)
	}
	return found
}

// PointInWidget reports whether w's own drawing touches the probe around
// (x, y). Children of w are not considered.
func (h *Helper) PointInWidget(w Widget, x, y float64, antialias bool) (bool, error) {
	st, err := h.State(w)
	if err != nil {
		return false, err
	}
	h.seal()
	if st.surface == nil {
		return false, nil
	}
	p := newProbe(defaultProbeCache, x, y, h.pickRadius, antialias, h.log())
	return p.hit(st.surface)
}
