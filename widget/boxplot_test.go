package widget

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggpaint"
)

func TestComputeStats(t *testing.T) {
	s, err := ComputeStats([]float64{7, 1, 3, 5, 9}, WhiskerIQR)
	if err != nil {
		t.Fatalf("ComputeStats() = %v", err)
	}
	want := BoxStats{
		Count: 5, Mean: 5, Median: 5, Q1: 3, Q3: 7, IQR: 4,
		WhiskerLo: 1, WhiskerHi: 9, Min: 1, Max: 9,
	}
	if !statsEqual(s, want) {
		t.Errorf("ComputeStats() = %+v, want %+v", s, want)
	}
}

func TestComputeStatsInterpolates(t *testing.T) {
	s, err := ComputeStats([]float64{1, 2, 3, 4}, WhiskerIQR)
	if err != nil {
		t.Fatalf("ComputeStats() = %v", err)
	}
	if s.Median != 2.5 || s.Q1 != 1.75 || s.Q3 != 3.25 {
		t.Errorf("quartiles = %v/%v/%v, want 1.75/2.5/3.25", s.Q1, s.Median, s.Q3)
	}
}

func TestComputeStatsOutliers(t *testing.T) {
	s, err := ComputeStats([]float64{10, 11, 12, 13, 14, 100, math.NaN(), math.Inf(1)}, WhiskerIQR)
	if err != nil {
		t.Fatalf("ComputeStats() = %v", err)
	}
	if s.Count != 6 {
		t.Errorf("Count = %d, want 6", s.Count)
	}
	if !slices.Equal(s.Outliers, []float64{100}) {
		t.Errorf("Outliers = %v, want [100]", s.Outliers)
	}
	if s.WhiskerHi != 14 || s.WhiskerLo != 10 {
		t.Errorf("whiskers = %v..%v, want 10..14", s.WhiskerLo, s.WhiskerHi)
	}
}

func TestComputeStatsSingle(t *testing.T) {
	s, err := ComputeStats([]float64{4}, WhiskerIQR)
	if err != nil {
		t.Fatalf("ComputeStats() = %v", err)
	}
	if s.Median != 4 || s.Q1 != 4 || s.Q3 != 4 || s.IQR != 0 {
		t.Errorf("ComputeStats([4]) = %+v", s)
	}
}

func TestComputeStatsNoData(t *testing.T) {
	for _, in := range [][]float64{nil, {math.NaN()}} {
		if _, err := ComputeStats(in, WhiskerIQR); !errors.Is(err, ErrNoData) {
			t.Errorf("ComputeStats(%v) error = %v, want ErrNoData", in, err)
		}
	}
}

func TestComputeStatsWhiskerModes(t *testing.T) {
	// Mean 5, population standard deviation 2, quartiles 4 and 5.5.
	data := []float64{9, 4, 2, 5, 4, 7, 5, 4}

	tests := []struct {
		mode     WhiskerMode
		lo, hi   float64
		outliers []float64
	}{
		{WhiskerIQR, 2, 7, []float64{9}},
		{WhiskerMinMax, 2, 9, nil},
		{WhiskerStdDev, 3, 7, []float64{2, 9}},
		{Whisker9To91, 3.26, 7.74, []float64{2, 9}},
		{Whisker2To98, 2.28, 8.72, []float64{2, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			s, err := ComputeStats(data, tt.mode)
			if err != nil {
				t.Fatalf("ComputeStats() = %v", err)
			}
			if s.Mean != 5 || s.Q1 != 4 || s.Q3 != 5.5 {
				t.Errorf("mean/quartiles = %v/%v/%v, want 5/4/5.5", s.Mean, s.Q1, s.Q3)
			}
			if !near(s.WhiskerLo, tt.lo) || !near(s.WhiskerHi, tt.hi) {
				t.Errorf("whiskers = %v..%v, want %v..%v", s.WhiskerLo, s.WhiskerHi, tt.lo, tt.hi)
			}
			if !slices.Equal(s.Outliers, tt.outliers) {
				t.Errorf("Outliers = %v, want %v", s.Outliers, tt.outliers)
			}
		})
	}
}

func TestComputeStatsBadWhiskerMode(t *testing.T) {
	if _, err := ComputeStats([]float64{1, 2}, WhiskerMode(99)); !errors.Is(err, ErrWhiskerMode) {
		t.Errorf("ComputeStats() error = %v, want ErrWhiskerMode", err)
	}
}

func TestParseWhiskerMode(t *testing.T) {
	tests := []struct {
		in   string
		want WhiskerMode
	}{
		{"", WhiskerIQR},
		{"1.5IQR", WhiskerIQR},
		{"min/max", WhiskerMinMax},
		{"1 Stddev", WhiskerStdDev},
		{"9/91 percentile", Whisker9To91},
		{"2/98 percentile", Whisker2To98},
	}
	for _, tt := range tests {
		got, err := ParseWhiskerMode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseWhiskerMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseWhiskerMode("3 sigma"); !errors.Is(err, ErrWhiskerMode) {
		t.Errorf("ParseWhiskerMode(bad) error = %v, want ErrWhiskerMode", err)
	}
}

func TestBoxPlotDirection(t *testing.T) {
	// Range 0..20 over 100px puts the box at 25..28.75 along the value
	// axis and the outlier 10 at 50.
	values := []float64{4, 5, 5, 5, 6, 10}
	tests := []struct {
		dir        Direction
		bounds     ggpaint.Rect
		box        [2]float64
		outlier    [2]float64
		notPainted [2]float64
	}{
		{Vertical, ggpaint.R(0, 0, 40, 100), [2]float64{15, 73}, [2]float64{20, 50}, [2]float64{20, 95}},
		{Horizontal, ggpaint.R(0, 0, 100, 40), [2]float64{27, 15}, [2]float64{50, 20}, [2]float64{5, 20}},
	}
	for _, tt := range tests {
		h := ggpaint.New(100, 100)
		bp := &BoxPlot{
			Base:      Base{ID: "box", Bounds: tt.bounds},
			Values:    values,
			Range:     [2]float64{0, 20},
			Direction: tt.dir,
			Style:     Style{Fill: gg.Blue, Stroke: gg.Black},
		}
		if err := Render(h, bp); err != nil {
			t.Fatalf("Render() = %v", err)
		}
		for _, p := range [][2]float64{tt.box, tt.outlier} {
			if got := h.TopmostWidgetAt(p[0], p[1], true); got == nil {
				t.Errorf("direction %v: nothing drawn at %v", tt.dir, p)
			}
		}
		if got := h.TopmostWidgetAt(tt.notPainted[0], tt.notPainted[1], true); got != nil {
			t.Errorf("direction %v: %v painted, want empty", tt.dir, tt.notPainted)
		}
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func statsEqual(a, b BoxStats) bool {
	return a.Count == b.Count && a.Mean == b.Mean && a.Median == b.Median &&
		a.Q1 == b.Q1 && a.Q3 == b.Q3 && a.IQR == b.IQR &&
		a.WhiskerLo == b.WhiskerLo && a.WhiskerHi == b.WhiskerHi &&
		a.Min == b.Min && a.Max == b.Max && slices.Equal(a.Outliers, b.Outliers)
}
