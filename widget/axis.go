package widget

import (
	"math"

	"github.com/gogpu/ggpaint"
)

// Direction is the orientation of an axis or box plot.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

// Axis maps data values onto one side of its bounds and draws a baseline
// with evenly spaced ticks. A horizontal axis runs along the top edge of
// its bounds with ticks pointing down; a vertical axis runs along the right
// edge with ticks pointing left.
type Axis struct {
	Base
	Direction Direction
	Min, Max  float64
	// Ticks is the number of intervals between major ticks.
	Ticks int
	// TickLength is in points.
	TickLength float64
	Style      Style
}

// Project converts a data value to a page coordinate along the axis.
// Vertical axes grow upwards.
func (a *Axis) Project(v float64) float64 {
	span := a.Max - a.Min
	if span == 0 {
		span = 1
	}
	t := (v - a.Min) / span
	if a.Direction == Vertical {
		return a.Bounds.Y2 - t*a.Bounds.Height()
	}
	return a.Bounds.X1 + t*a.Bounds.Width()
}

// TickValues returns the data values of the major ticks, ends included.
func (a *Axis) TickValues() []float64 {
	n := max(a.Ticks, 1)
	vals := make([]float64, n+1)
	for i := range vals {
		vals[i] = a.Min + (a.Max-a.Min)*float64(i)/float64(n)
	}
	return vals
}

// Draw implements Node.
func (a *Axis) Draw(h *ggpaint.Helper) error {
	c, err := a.open(h, a)
	if err != nil {
		return err
	}
	st := a.Style
	if st.Stroke.A == 0 {
		return nil
	}
	st.Fill.A = 0

	tick := c.Units().Pt(a.TickLength)
	if tick == 0 {
		tick = c.Units().Pt(4)
	}

	b := a.Bounds
	if a.Direction == Vertical {
		c.DrawLine(b.X2, b.Y1, b.X2, b.Y2)
		for _, v := range a.TickValues() {
			y := a.Project(v)
			c.DrawLine(b.X2, y, b.X2-tick, y)
		}
	} else {
		c.DrawLine(b.X1, b.Y1, b.X2, b.Y1)
		for _, v := range a.TickValues() {
			x := a.Project(v)
			c.DrawLine(x, b.Y1, x, b.Y1+tick)
		}
	}
	return st.apply(c)
}

// Nearest returns the tick value closest to the page coordinate pos.
func (a *Axis) Nearest(pos float64) float64 {
	best, dist := a.Min, math.Inf(1)
	for _, v := range a.TickValues() {
		if d := math.Abs(a.Project(v) - pos); d < dist {
			best, dist = v, d
		}
	}
	return best
}
