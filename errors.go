package ggpaint

import "errors"

// Errors returned while building a paint pass. They describe broken caller
// contracts rather than transient conditions; a pass that produced one of
// them should be discarded or Reset.
var (
	// ErrParentNotDrawn is returned by RequestContext when the widget's parent
	// has not requested a context yet. Widgets must be visited in pre-order.
	ErrParentNotDrawn = errors.New("ggpaint: parent widget has no draw state")

	// ErrDuplicateRoot is returned by RequestContext for a second parentless
	// widget in the same pass.
	ErrDuplicateRoot = errors.New("ggpaint: pass already has a root widget")

	// ErrAlreadyDrawn is returned by RequestContext when the widget already
	// has a draw state in this pass.
	ErrAlreadyDrawn = errors.New("ggpaint: widget already drawn in this pass")

	// ErrPassFinished is returned by RequestContext after the pass has been
	// sealed by a composite or query. Call Reset to start a new pass.
	ErrPassFinished = errors.New("ggpaint: paint pass finished")
)

// ErrNotDrawn is the lookup failure for widgets that have no draw state in
// the current pass. Spatial queries never return it; they report no match
// with a nil Widget instead.
var ErrNotDrawn = errors.New("ggpaint: widget not drawn in this pass")
