package ggpaint

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle in plotter (device pixel) coordinates.
// X1,Y1 is the top-left corner and X2,Y2 the bottom-right one. Callers are
// expected to pass X1 <= X2 and Y1 <= Y2; use Canon when that is not known.
type Rect struct {
	X1, Y1 float64
	X2, Y2 float64
}

// R is shorthand for Rect{x1, y1, x2, y2}.
func R(x1, y1, x2, y2 float64) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns X2 - X1.
func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

// Height returns Y2 - Y1.
func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// Canon returns r with its corners ordered so that X1 <= X2 and Y1 <= Y2.
func (r Rect) Canon() Rect {
	return Rect{
		X1: math.Min(r.X1, r.X2),
		Y1: math.Min(r.Y1, r.Y2),
		X2: math.Max(r.X1, r.X2),
		Y2: math.Max(r.Y1, r.Y2),
	}
}

// Contains reports whether (x, y) lies inside r. Edges are inclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.X2 <= r.X1 || r.Y2 <= r.Y1
}

// Intersect returns the overlap of r and s, or the zero Rect if they
// do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		X1: math.Max(r.X1, s.X1),
		Y1: math.Max(r.Y1, s.Y1),
		X2: math.Min(r.X2, s.X2),
		Y2: math.Min(r.Y2, s.Y2),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		X1: math.Min(r.X1, s.X1),
		Y1: math.Min(r.Y1, s.Y1),
		X2: math.Max(r.X2, s.X2),
		Y2: math.Max(r.Y2, s.Y2),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X1, r.Y1, r.X2, r.Y2)
}
