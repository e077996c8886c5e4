package scene

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/widget"
)

// Build constructs the widget tree of s and returns its root page.
func (s *Scene) Build() (*widget.Page, error) {
	page := widget.NewPage(ggpaint.ID(s.Page.ID), s.Page.Width, s.Page.Height)
	bg, err := ParseColor(s.Page.Background)
	if err != nil {
		return nil, fmt.Errorf("scene: page background: %w", err)
	}
	page.Background = bg

	type entry struct {
		node   widget.Node
		parent string
		add    func(...widget.Node)
	}
	nodes := map[string]*entry{
		s.Page.ID: {node: page, add: page.Add},
	}
	order := make([]string, 0, len(s.Widgets))

	for i := range s.Widgets {
		wc := &s.Widgets[i]
		if _, dup := nodes[wc.ID]; dup || wc.ID == "" {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, wc.ID)
		}
		n, add, err := buildWidget(wc)
		if err != nil {
			return nil, fmt.Errorf("scene: widget %q: %w", wc.ID, err)
		}
		parent := wc.Parent
		if parent == "" {
			parent = s.Page.ID
		}
		nodes[wc.ID] = &entry{node: n, parent: parent, add: add}
		order = append(order, wc.ID)
	}

	for _, id := range order {
		e := nodes[id]
		p, ok := nodes[e.parent]
		if !ok {
			return nil, fmt.Errorf("%w: widget %q, parent %q", ErrUnknownParent, id, e.parent)
		}
		if p.add == nil {
			return nil, fmt.Errorf("%w: widget %q, parent %q cannot have children",
				ErrUnknownParent, id, e.parent)
		}
		p.add(e.node)
	}

	reached := 0
	widget.Walk(page, func(widget.Node) bool {
		reached++
		return true
	})
	if reached != len(nodes) {
		return nil, fmt.Errorf("%w: %d of %d widgets", ErrUnreachable, len(nodes)-reached, len(nodes))
	}
	return page, nil
}

// buildWidget creates the widget for wc and returns its Add method.
func buildWidget(wc *WidgetConfig) (widget.Node, func(...widget.Node), error) {
	base, err := baseOf(wc)
	if err != nil {
		return nil, nil, err
	}
	style, err := styleOf(wc)
	if err != nil {
		return nil, nil, err
	}

	switch strings.ToLower(wc.Kind) {
	case "graph":
		g := &widget.Graph{Base: base, Style: style}
		return g, g.Add, nil
	case "axis":
		dir, err := directionOf(wc.Direction, widget.Horizontal)
		if err != nil {
			return nil, nil, err
		}
		a := &widget.Axis{
			Base:       base,
			Direction:  dir,
			Min:        wc.Min,
			Max:        wc.Max,
			Ticks:      wc.Ticks,
			TickLength: wc.TickLength,
			Style:      style,
		}
		return a, a.Add, nil
	case "rect", "rectangle":
		sh := &widget.Shape{Base: base, Kind: widget.Rectangle, Rounding: wc.Rounding, Style: style}
		return sh, sh.Add, nil
	case "ellipse":
		sh := &widget.Shape{Base: base, Kind: widget.Ellipse, Style: style}
		return sh, sh.Add, nil
	case "line":
		l := &widget.Line{Base: base, Axes: idsOf(wc.Axes), Style: style}
		for _, p := range wc.Points {
			l.Points = append(l.Points, widget.Point{X: p[0], Y: p[1]})
		}
		return l, l.Add, nil
	case "boxplot":
		dir, err := directionOf(wc.Direction, widget.Vertical)
		if err != nil {
			return nil, nil, err
		}
		mode, err := widget.ParseWhiskerMode(wc.WhiskerMode)
		if err != nil {
			return nil, nil, err
		}
		bp := &widget.BoxPlot{
			Base:      base,
			Values:    wc.Values,
			Range:     wc.Range,
			Direction: dir,
			Whiskers:  mode,
			Axes:      idsOf(wc.Axes),
			BoxWidth:  wc.BoxWidth,
			Style:     style,
		}
		return bp, bp.Add, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownKind, wc.Kind)
	}
}

func baseOf(wc *WidgetConfig) (widget.Base, error) {
	b := widget.Base{ID: ggpaint.ID(wc.ID)}
	switch {
	case len(wc.Bounds) == 4:
		b.Bounds = rectOf(wc.Bounds)
	case len(wc.Bounds) == 0 && strings.EqualFold(wc.Kind, "line"):
		// Lines default to the box of their points.
	default:
		return b, fmt.Errorf("%w, got %d", ErrBadBounds, len(wc.Bounds))
	}
	switch len(wc.Clip) {
	case 0:
	case 4:
		c := rectOf(wc.Clip)
		b.Clip = &c
	default:
		return b, fmt.Errorf("clip: %w, got %d", ErrBadBounds, len(wc.Clip))
	}
	return b, nil
}

// directionOf parses "horizontal" or "vertical"; empty yields def.
func directionOf(s string, def widget.Direction) (widget.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case "horizontal":
		return widget.Horizontal, nil
	case "vertical":
		return widget.Vertical, nil
	}
	return def, fmt.Errorf("%w, got %q", ErrBadDirection, s)
}

func idsOf(s []string) []ggpaint.ID {
	if len(s) == 0 {
		return nil
	}
	ids := make([]ggpaint.ID, len(s))
	for i, v := range s {
		ids[i] = ggpaint.ID(v)
	}
	return ids
}

func rectOf(v []float64) ggpaint.Rect {
	return ggpaint.R(v[0], v[1], v[2], v[3]).Canon()
}

func styleOf(wc *WidgetConfig) (widget.Style, error) {
	fill, err := ParseColor(wc.Fill)
	if err != nil {
		return widget.Style{}, fmt.Errorf("fill: %w", err)
	}
	stroke, err := ParseColor(wc.Stroke)
	if err != nil {
		return widget.Style{}, fmt.Errorf("stroke: %w", err)
	}
	return widget.Style{Fill: fill, Stroke: stroke, LineWidth: wc.LineWidth}, nil
}

// ParseColor converts an SVG colour name or a #rgb, #rrggbb or #rrggbbaa
// string to a colour. "" and "none" are transparent.
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "none":
		return gg.Transparent, nil
	case strings.HasPrefix(s, "#"):
		if !validHex(s[1:]) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		return gg.Hex(s), nil
	}
	c, ok := colornames.Map[s]
	if !ok {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return gg.FromColor(c), nil
}

func validHex(h string) bool {
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
