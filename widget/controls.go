package widget

import "github.com/gogpu/ggpaint"

// ResizeBox is a control that lets the user move or resize a widget's
// bounding box.
type ResizeBox struct {
	Widget ggpaint.ID
	Bounds ggpaint.Rect
}

// MovePoint is a control for a single draggable point, such as the end of
// a line. Index identifies the point within its widget.
type MovePoint struct {
	Widget ggpaint.ID
	Index  int
	X, Y   float64
}
