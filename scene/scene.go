// Package scene loads plot documents described in TOML and builds the
// corresponding widget trees.
//
// A scene has one [page] table and any number of [[widget]] tables:
//
//	[page]
//	id = "page"
//	width = 400
//	height = 300
//	background = "white"
//
//	[[widget]]
//	id = "graph1"
//	parent = "page"
//	kind = "graph"
//	bounds = [20, 20, 380, 280]
//	fill = "whitesmoke"
//	stroke = "black"
//
// Widgets are painted in file order within their parent. Colours are SVG
// colour names or #rrggbb / #rrggbbaa hex strings; "none" or an empty
// string is transparent.
package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/ggpaint"
)

// Errors reported while validating a scene.
var (
	ErrUnknownKind   = errors.New("scene: unknown widget kind")
	ErrBadBounds     = errors.New("scene: bounds need 4 values")
	ErrUnknownParent = errors.New("scene: unknown parent")
	ErrDuplicateID   = errors.New("scene: duplicate widget id")
	ErrBadColor      = errors.New("scene: bad colour")
	ErrUnreachable   = errors.New("scene: widget not reachable from page")
	ErrBadPage       = errors.New("scene: page needs a positive size")
	ErrBadDirection  = errors.New("scene: direction must be horizontal or vertical")
)

// Scene is the decoded form of a scene file.
type Scene struct {
	Page    PageConfig     `toml:"page"`
	Widgets []WidgetConfig `toml:"widget"`
}

// PageConfig describes the root page.
type PageConfig struct {
	ID         string     `toml:"id"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	Background string     `toml:"background"`
	DPI        [2]float64 `toml:"dpi"`
	Scale      float64    `toml:"scale"`
}

// WidgetConfig describes one widget. Fields that do not apply to a kind
// are ignored.
type WidgetConfig struct {
	ID     string    `toml:"id"`
	Parent string    `toml:"parent"`
	Kind   string    `toml:"kind"`
	Bounds []float64 `toml:"bounds"`
	Clip   []float64 `toml:"clip"`

	// Style
	Fill      string  `toml:"fill"`
	Stroke    string  `toml:"stroke"`
	LineWidth float64 `toml:"line_width"`
	Rounding  float64 `toml:"rounding"`

	// Axis and box plot
	Direction string `toml:"direction"`

	// Axis
	Min        float64 `toml:"min"`
	Max        float64 `toml:"max"`
	Ticks      int     `toml:"ticks"`
	TickLength float64 `toml:"tick_length"`

	// Line and box plot
	Axes []string `toml:"axes"`

	// Line
	Points [][2]float64 `toml:"points"`

	// Box plot
	Values      []float64  `toml:"values"`
	Range       [2]float64 `toml:"range"`
	BoxWidth    float64    `toml:"box_width"`
	WhiskerMode string     `toml:"whisker_mode"`
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene from TOML. Missing page fields get defaults: id
// "page" and the package's default resolution and scale.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if s.Page.ID == "" {
		s.Page.ID = "page"
	}
	if s.Page.Width <= 0 || s.Page.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadPage, s.Page.Width, s.Page.Height)
	}
	return &s, nil
}

// Options returns the helper options implied by the page settings.
func (s *Scene) Options() []ggpaint.Option {
	var opts []ggpaint.Option
	if s.Page.DPI[0] > 0 || s.Page.DPI[1] > 0 {
		opts = append(opts, ggpaint.WithDPI(s.Page.DPI[0], s.Page.DPI[1]))
	}
	if s.Page.Scale > 0 {
		opts = append(opts, ggpaint.WithScale(s.Page.Scale))
	}
	return opts
}
