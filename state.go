package ggpaint

// Control is an opaque descriptor of an interactive overlay (a resize
// handle, a movable point, ...) attached to a widget after it has drawn.
// The paint engine stores controls and hands them back; it never renders
// them.
type Control any

// DrawState is the per-widget node of a paint pass. Children are kept in
// the order their contexts were requested, which is also their paint order:
// later children are on top.
type DrawState struct {
	widget   Widget
	bounds   Rect
	clip     *Rect
	surface  *Surface
	controls []Control
	children []*DrawState
}

func newDrawState(w Widget, bounds Rect, clip *Rect, s *Surface) *DrawState {
	st := &DrawState{
		widget:  w,
		bounds:  bounds,
		surface: s,
	}
	if clip != nil {
		c := *clip
		st.clip = &c
	}
	return st
}

// Widget returns the widget that owns this state.
func (st *DrawState) Widget() Widget { return st.widget }

// Bounds returns the widget's bounding rectangle.
func (st *DrawState) Bounds() Rect { return st.bounds }

// Clip returns the clip rectangle and whether one was set.
func (st *DrawState) Clip() (Rect, bool) {
	if st.clip == nil {
		return Rect{}, false
	}
	return *st.clip, true
}

// Surface returns the widget's recording, or nil in direct mode.
func (st *DrawState) Surface() *Surface { return st.surface }

// Controls returns the attached control handles.
func (st *DrawState) Controls() []Control { return st.controls }

// Children returns the child states in paint order.
func (st *DrawState) Children() []*DrawState { return st.children }

// walk visits st and its descendants in pre-order with an explicit stack.
// A visited node is replaced on the stack by its children, pushed in reverse
// so the leftmost child comes next. Returning false from fn stops the walk.
func (st *DrawState) walk(fn func(*DrawState) bool) {
	stack := []*DrawState{st}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}
