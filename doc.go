// Package ggpaint records the drawing of a widget tree, composites it onto
// a gg.Context and answers spatial queries about what was drawn where.
//
// # Overview
//
// A plot document is a tree of widgets (page, graphs, axes, data series).
// During a paint pass every widget asks a [Helper] for a drawing [Canvas],
// draws into it and optionally attaches interactive [Control] handles. The
// helper keeps one [DrawState] per widget, linked into a tree that mirrors
// the document. After the pass the tree can be composited any number of
// times, or queried for the widget under the cursor, without running any
// widget drawing code again.
//
// # Quick Start
//
//	h := ggpaint.New(800, 600)
//
//	c, err := h.RequestContext(page, ggpaint.R(0, 0, 800, 600), nil)
//	if err != nil {
//	    return err
//	}
//	c.SetRGB(1, 1, 1)
//	c.DrawRectangle(0, 0, 800, 600)
//	_ = c.Fill()
//
//	// ... children of page, in pre-order ...
//
//	dc := gg.NewContext(800, 600)
//	if err := h.Composite(dc); err != nil {
//	    return err
//	}
//	picked := h.TopmostWidgetAt(120, 80, true)
//
// # Modes
//
// A layered helper (the default) gives each widget its own [Surface], a
// replayable recording built on gg's recording package. Compositing is a
// separate step and pixel-exact picking is available.
//
// A direct helper, created with [WithDirect], lets every widget draw
// straight into one shared gg.Context. Composite does nothing and
// TopmostWidgetAt always reports no widget; the bounds queries still work.
//
// # Traversal Order
//
// Widgets must request contexts in pre-order: a parent before its
// children, siblings in paint order. Later siblings paint on top of earlier
// ones, and every query walks the tree in the same order.
//
// # Coordinate System
//
// Bounds, clips and query points are in page (device pixel) coordinates:
// origin top-left, X right, Y down. [Units] converts physical lengths to
// pixels using the helper's scale factor and resolution.
package ggpaint
