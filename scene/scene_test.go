package scene

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/widget"
)

const plotTOML = `
[page]
width = 300
height = 200
background = "white"
dpi = [144, 144]
scale = 2

[[widget]]
id = "graph"
kind = "graph"
bounds = [20, 20, 280, 180]
fill = "#eeeeee"
stroke = "black"

[[widget]]
id = "xaxis"
parent = "graph"
kind = "axis"
bounds = [20, 180, 280, 195]
stroke = "black"
min = 0
max = 5
ticks = 5

[[widget]]
id = "trend"
parent = "graph"
kind = "line"
points = [[30, 170], [150, 60], [270, 30]]
stroke = "crimson"
line_width = 1.5

[[widget]]
id = "spot"
kind = "ellipse"
bounds = [250, 5, 290, 15]
fill = "#0f08"
clip = [250, 5, 270, 15]
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(plotTOML))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if s.Page.ID != "page" {
		t.Errorf("Page.ID = %q, want default page", s.Page.ID)
	}
	if s.Page.Width != 300 || s.Page.Height != 200 {
		t.Errorf("page size = %dx%d, want 300x200", s.Page.Width, s.Page.Height)
	}
	if len(s.Widgets) != 4 {
		t.Fatalf("len(Widgets) = %d, want 4", len(s.Widgets))
	}
	if w := s.Widgets[2]; w.LineWidth != 1.5 || len(w.Points) != 3 {
		t.Errorf("trend = %+v", w)
	}
	if got := len(s.Options()); got != 2 {
		t.Errorf("len(Options()) = %d, want 2", got)
	}
}

func TestBuild(t *testing.T) {
	s, err := Parse([]byte(plotTOML))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	page, err := s.Build()
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}

	var ids []ggpaint.ID
	widget.Walk(page, func(n widget.Node) bool {
		ids = append(ids, n.WidgetID())
		return true
	})
	want := []ggpaint.ID{"page", "graph", "xaxis", "trend", "spot"}
	if len(ids) != len(want) {
		t.Fatalf("tree = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("tree[%d] = %q, want %q", i, ids[i], want[i])
		}
	}

	spot, ok := widget.Find(page, "spot").(*widget.Shape)
	if !ok {
		t.Fatalf("spot is %T, want *widget.Shape", widget.Find(page, "spot"))
	}
	if spot.Kind != widget.Ellipse || spot.Clip == nil {
		t.Errorf("spot = %+v, want clipped ellipse", spot)
	}
	if pid, _ := spot.ParentID(); pid != "page" {
		t.Errorf("spot parent = %q, want page", pid)
	}

	h := ggpaint.New(s.Page.Width, s.Page.Height, s.Options()...)
	if err := widget.Render(h, page); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if h.Len() != 5 {
		t.Errorf("Len() = %d, want 5", h.Len())
	}
	if u := h.Units(); u.Scale != 2 || u.PixPerPt != 2 {
		t.Errorf("Units() = %+v, want scale 2 and 2 px/pt", u)
	}
}

func TestBuildBoxPlot(t *testing.T) {
	const doc = `[page]
width = 100
height = 100

[[widget]]
id = "upright"
kind = "boxplot"
bounds = [0, 0, 40, 100]
values = [1, 2, 3]
axes = ["y"]

[[widget]]
id = "lying"
kind = "boxplot"
bounds = [0, 0, 100, 40]
direction = "horizontal"
whisker_mode = "9/91 percentile"
values = [1, 2, 3]
`
	s, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	page, err := s.Build()
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}

	tests := []struct {
		id   ggpaint.ID
		dir  widget.Direction
		mode widget.WhiskerMode
	}{
		{"upright", widget.Vertical, widget.WhiskerIQR},
		{"lying", widget.Horizontal, widget.Whisker9To91},
	}
	for _, tt := range tests {
		bp, ok := widget.Find(page, tt.id).(*widget.BoxPlot)
		if !ok {
			t.Fatalf("%s is %T, want *widget.BoxPlot", tt.id, widget.Find(page, tt.id))
		}
		if bp.Direction != tt.dir || bp.Whiskers != tt.mode {
			t.Errorf("%s: direction %v whiskers %v, want %v %v",
				tt.id, bp.Direction, bp.Whiskers, tt.dir, tt.mode)
		}
	}
	if bp := widget.Find(page, "upright").(*widget.BoxPlot); !slices.Equal(bp.Axes, []ggpaint.ID{"y"}) {
		t.Errorf("upright axes = %v, want [y]", bp.Axes)
	}
}

func TestBuildErrors(t *testing.T) {
	const page = "[page]\nwidth = 10\nheight = 10\n"
	tests := []struct {
		name string
		body string
		want error
	}{
		{"unknown kind", `[[widget]]
id = "a"
kind = "sprocket"
bounds = [0, 0, 1, 1]`, ErrUnknownKind},
		{"short bounds", `[[widget]]
id = "a"
kind = "rect"
bounds = [0, 0, 1]`, ErrBadBounds},
		{"bad clip", `[[widget]]
id = "a"
kind = "rect"
bounds = [0, 0, 1, 1]
clip = [1, 2]`, ErrBadBounds},
		{"unknown parent", `[[widget]]
id = "a"
parent = "nowhere"
kind = "rect"
bounds = [0, 0, 1, 1]`, ErrUnknownParent},
		{"duplicate id", `[[widget]]
id = "a"
kind = "rect"
bounds = [0, 0, 1, 1]
[[widget]]
id = "a"
kind = "ellipse"
bounds = [0, 0, 1, 1]`, ErrDuplicateID},
		{"page id reused", `[[widget]]
id = "page"
kind = "rect"
bounds = [0, 0, 1, 1]`, ErrDuplicateID},
		{"bad colour", `[[widget]]
id = "a"
kind = "rect"
bounds = [0, 0, 1, 1]
fill = "ultraviolet"`, ErrBadColor},
		{"bad whisker mode", `[[widget]]
id = "a"
kind = "boxplot"
bounds = [0, 0, 1, 1]
whisker_mode = "3 sigma"`, widget.ErrWhiskerMode},
		{"bad direction", `[[widget]]
id = "a"
kind = "axis"
bounds = [0, 0, 1, 1]
direction = "diagonal"`, ErrBadDirection},
		{"cycle", `[[widget]]
id = "a"
parent = "b"
kind = "rect"
bounds = [0, 0, 1, 1]
[[widget]]
id = "b"
parent = "a"
kind = "rect"
bounds = [0, 0, 1, 1]`, ErrUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(page + tt.body))
			if err != nil {
				t.Fatalf("Parse() = %v", err)
			}
			if _, err := s.Build(); !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("[page]\nwidth = 0\nheight = 10\n")); !errors.Is(err, ErrBadPage) {
		t.Errorf("Parse(zero width) = %v, want ErrBadPage", err)
	}
	if _, err := Parse([]byte("[page\nwidth = ")); err == nil {
		t.Error("Parse(malformed) = nil, want error")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gg.RGBA
	}{
		{"", gg.Transparent},
		{"none", gg.Transparent},
		{"black", gg.RGBA{A: 1}},
		{"White", gg.RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"#f00", gg.RGBA{R: 1, A: 1}},
		{"#0000ff", gg.RGBA{B: 1, A: 1}},
		{"#00000000", gg.RGBA{}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"#12", "#ggg", "chartreuse-ish"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrBadColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrBadColor", bad, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.toml")
	if err := os.WriteFile(path, []byte(plotTOML), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if len(s.Widgets) != 4 {
		t.Errorf("len(Widgets) = %d, want 4", len(s.Widgets))
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load(missing) = nil, want error")
	}
}

func TestLoadDemoScene(t *testing.T) {
	s, err := Load(filepath.Join("..", "cmd", "paintdemo", "testdata", "plot.toml"))
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	page, err := s.Build()
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	h := ggpaint.New(s.Page.Width, s.Page.Height, s.Options()...)
	if err := widget.Render(h, page); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if w := h.TopmostWidgetAt(270, 195, true); w == nil || w.WidgetID() != "marker" {
		t.Errorf("TopmostWidgetAt(270, 195) = %v, want marker", w)
	}
	// The marker's lower half is clipped away.
	if w := h.TopmostWidgetAt(270, 225, true); w == nil || w.WidgetID() != "graph" {
		t.Errorf("TopmostWidgetAt(270, 225) = %v, want graph", w)
	}

	var plotters []ggpaint.ID
	for _, p := range h.AxisPlotters("yaxis") {
		plotters = append(plotters, p.WidgetID())
	}
	if want := []ggpaint.ID{"box", "trend"}; !slices.Equal(plotters, want) {
		t.Errorf("AxisPlotters(yaxis) = %v, want %v", plotters, want)
	}
}
