package widget

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/gogpu/ggpaint"
)

// ErrNoData is returned by ComputeStats for an empty or all-NaN sample.
var ErrNoData = errors.New("widget: no finite values")

// ErrWhiskerMode is returned for an unknown WhiskerMode.
var ErrWhiskerMode = errors.New("widget: invalid whisker mode")

// WhiskerMode selects where box plot whiskers end. Values beyond the
// whiskers are outliers.
type WhiskerMode uint8

const (
	// WhiskerIQR ends the whiskers at the most extreme values within
	// WhiskerRange inter-quartile ranges of the box.
	WhiskerIQR WhiskerMode = iota
	// WhiskerMinMax ends the whiskers at the sample extremes.
	WhiskerMinMax
	// WhiskerStdDev ends the whiskers one population standard deviation
	// either side of the mean.
	WhiskerStdDev
	// Whisker9To91 ends the whiskers at the 9th and 91st percentiles.
	Whisker9To91
	// Whisker2To98 ends the whiskers at the 2nd and 98th percentiles.
	Whisker2To98
)

var whiskerNames = [...]string{
	WhiskerIQR:    "1.5IQR",
	WhiskerMinMax: "min/max",
	WhiskerStdDev: "1 stddev",
	Whisker9To91:  "9/91 percentile",
	Whisker2To98:  "2/98 percentile",
}

func (m WhiskerMode) String() string {
	if int(m) < len(whiskerNames) {
		return whiskerNames[m]
	}
	return fmt.Sprintf("WhiskerMode(%d)", uint8(m))
}

// ParseWhiskerMode converts a mode name as returned by String. The empty
// string is WhiskerIQR.
func ParseWhiskerMode(s string) (WhiskerMode, error) {
	if s == "" {
		return WhiskerIQR, nil
	}
	for m, name := range whiskerNames {
		if strings.EqualFold(s, name) {
			return WhiskerMode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrWhiskerMode, s)
}

// BoxStats summarises a sample for a box plot.
type BoxStats struct {
	Count     int
	Mean      float64
	Median    float64
	Q1, Q3    float64
	IQR       float64
	WhiskerLo float64
	WhiskerHi float64
	Min, Max  float64
	Outliers  []float64
}

// WhiskerRange is the whisker reach of WhiskerIQR in inter-quartile ranges.
const WhiskerRange = 1.5

// ComputeStats computes box plot statistics for values with whiskers
// placed by mode. NaN and infinite values are ignored. Quartiles and
// percentiles use linear interpolation between order statistics.
func ComputeStats(values []float64, mode WhiskerMode) (BoxStats, error) {
	if int(mode) >= len(whiskerNames) {
		return BoxStats{}, fmt.Errorf("%w: %v", ErrWhiskerMode, mode)
	}
	data := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			data = append(data, v)
		}
	}
	if len(data) == 0 {
		return BoxStats{}, ErrNoData
	}
	slices.Sort(data)

	var sum float64
	for _, v := range data {
		sum += v
	}

	s := BoxStats{
		Count:  len(data),
		Mean:   sum / float64(len(data)),
		Median: percentile(data, 50),
		Q1:     percentile(data, 25),
		Q3:     percentile(data, 75),
		Min:    data[0],
		Max:    data[len(data)-1],
	}
	s.IQR = s.Q3 - s.Q1

	switch mode {
	case WhiskerIQR:
		s.WhiskerLo, s.WhiskerHi = iqrWhiskers(data, s.Q1, s.Q3)
	case WhiskerMinMax:
		s.WhiskerLo, s.WhiskerHi = s.Min, s.Max
	case WhiskerStdDev:
		var ss float64
		for _, v := range data {
			ss += (v - s.Mean) * (v - s.Mean)
		}
		sd := math.Sqrt(ss / float64(len(data)))
		s.WhiskerLo, s.WhiskerHi = s.Mean-sd, s.Mean+sd
	case Whisker9To91:
		s.WhiskerLo, s.WhiskerHi = percentile(data, 9), percentile(data, 91)
	case Whisker2To98:
		s.WhiskerLo, s.WhiskerHi = percentile(data, 2), percentile(data, 98)
	}

	for _, v := range data {
		if v < s.WhiskerLo || v > s.WhiskerHi {
			s.Outliers = append(s.Outliers, v)
		}
	}
	return s, nil
}

// iqrWhiskers returns the smallest value no lower than q1 - 1.5 IQR and the
// largest value no higher than q3 + 1.5 IQR.
func iqrWhiskers(sorted []float64, q1, q3 float64) (lo, hi float64) {
	iqr := q3 - q1
	lim := q1 - WhiskerRange*iqr
	lo = sorted[sort.SearchFloat64s(sorted, lim)]

	lim = q3 + WhiskerRange*iqr
	j := sort.Search(len(sorted), func(k int) bool { return sorted[k] > lim })
	hi = sorted[j-1]
	return lo, hi
}

// percentile returns the p-th percentile of sorted data.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p / 100 * float64(len(sorted)-1)
	i := int(math.Floor(pos))
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(i)
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}

// BoxPlot draws a box-and-whisker summary of Values centred in its bounds.
// Direction is the direction the values run: Vertical draws an upright box
// mapped onto the bounds' height, Horizontal a lying box mapped onto the
// width. Range gives the values at the two ends of the bounds; a zero Range
// uses the sample's minimum and maximum.
type BoxPlot struct {
	Base
	Values    []float64
	Range     [2]float64
	Direction Direction
	Whiskers  WhiskerMode
	// Axes lists the axes the plot is drawn against.
	Axes []ggpaint.ID
	// BoxWidth is the fraction of the bounds' cross extent the box occupies.
	BoxWidth float64
	// MarkerSize is the outlier and mean marker radius, in points.
	MarkerSize float64
	Style      Style
}

// project returns the page coordinate of a value along the box direction.
func (bp *BoxPlot) project(stats BoxStats) func(float64) float64 {
	lo, hi := bp.Range[0], bp.Range[1]
	if lo == hi {
		lo, hi = stats.Min, stats.Max
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	b := bp.Bounds
	if bp.Direction == Horizontal {
		return func(v float64) float64 {
			return b.X1 + (v-lo)/(hi-lo)*b.Width()
		}
	}
	return func(v float64) float64 {
		return b.Y2 - (v-lo)/(hi-lo)*b.Height()
	}
}

// point maps a position across the box and a value to page coordinates.
func (bp *BoxPlot) point(proj func(float64) float64) func(pos, v float64) (x, y float64) {
	if bp.Direction == Horizontal {
		return func(pos, v float64) (float64, float64) { return proj(v), pos }
	}
	return func(pos, v float64) (float64, float64) { return pos, proj(v) }
}

// Draw implements Node. An empty sample draws nothing.
func (bp *BoxPlot) Draw(h *ggpaint.Helper) error {
	c, err := bp.open(h, bp)
	if err != nil {
		return err
	}
	for _, a := range bp.Axes {
		h.LinkAxis(a, bp)
	}
	stats, err := ComputeStats(bp.Values, bp.Whiskers)
	if errors.Is(err, ErrNoData) {
		return nil
	}
	if err != nil {
		return err
	}

	pt := bp.point(bp.project(stats))
	b := bp.Bounds
	centre, across := (b.X1+b.X2)/2, b.Width()
	if bp.Direction == Horizontal {
		centre, across = (b.Y1+b.Y2)/2, b.Height()
	}
	frac := bp.BoxWidth
	if frac <= 0 || frac > 1 {
		frac = 0.5
	}
	half := across * frac / 2
	marker := c.Units().Pt(bp.MarkerSize)
	if marker <= 0 {
		marker = c.Units().Pt(2)
	}

	segment := func(p1, v1, p2, v2 float64) {
		x1, y1 := pt(p1, v1)
		x2, y2 := pt(p2, v2)
		c.DrawLine(x1, y1, x2, y2)
	}
	line := bp.Style
	line.Fill.A = 0

	// Whiskers with end caps.
	segment(centre, stats.WhiskerLo, centre, stats.Q1)
	segment(centre, stats.Q3, centre, stats.WhiskerHi)
	segment(centre-half/2, stats.WhiskerLo, centre+half/2, stats.WhiskerLo)
	segment(centre-half/2, stats.WhiskerHi, centre+half/2, stats.WhiskerHi)
	if err := line.apply(c); err != nil {
		return err
	}

	// Box, then the median across it.
	x1, y1 := pt(centre-half, stats.Q1)
	x2, y2 := pt(centre+half, stats.Q3)
	box := ggpaint.R(x1, y1, x2, y2).Canon()
	c.DrawRectangle(box.X1, box.Y1, box.Width(), box.Height())
	if err := bp.Style.apply(c); err != nil {
		return err
	}
	segment(centre-half, stats.Median, centre+half, stats.Median)
	if err := line.apply(c); err != nil {
		return err
	}

	// Mean as a cross, outliers as circles.
	mx, my := pt(centre, stats.Mean)
	c.DrawLine(mx-marker, my-marker, mx+marker, my+marker)
	c.DrawLine(mx-marker, my+marker, mx+marker, my-marker)
	if err := line.apply(c); err != nil {
		return err
	}
	for _, v := range stats.Outliers {
		ox, oy := pt(centre, v)
		c.DrawCircle(ox, oy, marker)
		if err := line.apply(c); err != nil {
			return err
		}
	}
	return nil
}
