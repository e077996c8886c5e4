package widget

import (
	"slices"
	"testing"

	"github.com/gogpu/ggpaint"
)

func TestAxisProject(t *testing.T) {
	h := &Axis{Base: Base{Bounds: ggpaint.R(100, 0, 300, 20)}, Min: 0, Max: 10}
	v := &Axis{Base: Base{Bounds: ggpaint.R(0, 50, 20, 150)}, Direction: Vertical, Min: 0, Max: 100}

	tests := []struct {
		name string
		a    *Axis
		in   float64
		want float64
	}{
		{"horizontal min", h, 0, 100},
		{"horizontal mid", h, 5, 200},
		{"horizontal max", h, 10, 300},
		{"vertical min at bottom", v, 0, 150},
		{"vertical max at top", v, 100, 50},
		{"vertical quarter", v, 25, 125},
	}
	for _, tt := range tests {
		if got := tt.a.Project(tt.in); got != tt.want {
			t.Errorf("%s: Project(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestAxisTickValues(t *testing.T) {
	a := &Axis{Min: 0, Max: 10, Ticks: 5}
	if got, want := a.TickValues(), []float64{0, 2, 4, 6, 8, 10}; !slices.Equal(got, want) {
		t.Errorf("TickValues() = %v, want %v", got, want)
	}
	a.Ticks = 0
	if got := a.TickValues(); len(got) != 2 {
		t.Errorf("TickValues() with no ticks = %v, want both ends", got)
	}
}

func TestAxisNearest(t *testing.T) {
	a := &Axis{Base: Base{Bounds: ggpaint.R(0, 0, 100, 10)}, Min: 0, Max: 10, Ticks: 5}
	tests := []struct {
		pos, want float64
	}{
		{0, 0},
		{19, 2},
		{31, 4},
		{100, 10},
	}
	for _, tt := range tests {
		if got := a.Nearest(tt.pos); got != tt.want {
			t.Errorf("Nearest(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}
