package ggpaint

import "iter"

// WidgetAtPoint returns the last widget, in pre-order, that is selected by
// match and whose bounds contain (x, y). Bounds are tested inclusively and
// nothing is rendered, so this is cheaper and coarser than
// TopmostWidgetAt. A nil match accepts every widget. It returns nil when no
// widget qualifies.
func (h *Helper) WidgetAtPoint(x, y float64, match Matcher) Widget {
	h.seal()
	if h.root == nil {
		return nil
	}
	var found Widget
	h.root.walk(func(st *DrawState) bool {
		if match.match(st.widget) && st.bounds.Contains(x, y) {
			found = st.widget
		}
		return true
	})
	return found
}

// WidgetAtPointOfType is WidgetAtPoint restricted to widgets of type T,
// returned as T.
func WidgetAtPointOfType[T Widget](h *Helper, x, y float64) (T, bool) {
	w := h.WidgetAtPoint(x, y, OfType[T]())
	t, ok := w.(T)
	return t, ok
}

// BoundsOf returns the bounds w was drawn with, or ErrNotDrawn.
func (h *Helper) BoundsOf(w Widget) (Rect, error) {
	st, err := h.State(w)
	if err != nil {
		return Rect{}, err
	}
	return st.bounds, nil
}

// IterBounds returns a pre-order sequence of (widget, bounds) pairs for the
// widgets selected by match; nil selects all. The sequence is computed
// lazily from the tree as it is when iteration starts.
func (h *Helper) IterBounds(match Matcher) iter.Seq2[Widget, Rect] {
	return func(yield func(Widget, Rect) bool) {
		h.seal()
		if h.root == nil {
			return
		}
		h.root.walk(func(st *DrawState) bool {
			if !match.match(st.widget) {
				return true
			}
			return yield(st.widget, st.bounds)
		})
	}
}
