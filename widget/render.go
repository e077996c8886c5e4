package widget

import (
	"fmt"

	"github.com/gogpu/ggpaint"
)

// Render runs a paint pass: it draws root and all its descendants in
// pre-order into h and then finishes the pass.
//
// The first failing Draw aborts the pass; the helper should then be
// discarded or Reset.
func Render(h *ggpaint.Helper, root Node) error {
	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := n.Draw(h); err != nil {
			return fmt.Errorf("widget: draw %q: %w", n.WidgetID(), err)
		}

		children := n.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	h.Finish()
	return nil
}

// Walk calls fn for root and its descendants in pre-order until fn
// returns false.
func Walk(root Node, fn func(Node) bool) {
	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		children := n.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// Find returns the node with the given id below root, or nil.
func Find(root Node, id ggpaint.ID) Node {
	var found Node
	Walk(root, func(n Node) bool {
		if n.WidgetID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}
