package ggpaint

// ID is the stable identity of a widget within a document.
// DrawStates are keyed by ID, never by pointer.
type ID string

// Widget is the view of a document widget the paint engine needs: its
// identity and the identity of its parent. A widget without a parent is the
// root of the pass.
//
// The engine keeps a non-owning reference to each Widget in its DrawState.
// Widgets never reference their DrawState.
type Widget interface {
	WidgetID() ID
	ParentID() (ID, bool)
}

// Matcher selects widgets for the type-filtered queries.
// A nil Matcher matches every widget.
type Matcher func(Widget) bool

// OfType returns a Matcher selecting widgets whose dynamic type is, or
// implements, T. T is typically a concrete widget type or a capability
// interface such as an axis.
func OfType[T any]() Matcher {
	return func(w Widget) bool {
		_, ok := w.(T)
		return ok
	}
}

// Any returns a Matcher selecting widgets matched by at least one of ms.
func Any(ms ...Matcher) Matcher {
	return func(w Widget) bool {
		for _, m := range ms {
			if m == nil || m(w) {
				return true
			}
		}
		return false
	}
}

func (m Matcher) match(w Widget) bool {
	return m == nil || m(w)
}
