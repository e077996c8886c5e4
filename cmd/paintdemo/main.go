// Command paintdemo renders a TOML scene with ggpaint and reports which
// widget lies under given page points.
//
// Usage:
//
//	paintdemo -scene plot.toml -output plot.png -pick 120,80 -pick 300,40
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/scene"
	"github.com/gogpu/ggpaint/widget"
)

// points collects repeated -pick x,y flags.
type points [][2]float64

func (p *points) String() string {
	parts := make([]string, len(*p))
	for i, pt := range *p {
		parts[i] = fmt.Sprintf("%g,%g", pt[0], pt[1])
	}
	return strings.Join(parts, " ")
}

func (p *points) Set(s string) error {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want x,y, got %q", s)
	}
	fx, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
	if err != nil {
		return err
	}
	fy, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
	if err != nil {
		return err
	}
	*p = append(*p, [2]float64{fx, fy})
	return nil
}

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (TOML)")
		output    = flag.String("output", "paint.png", "output file")
		direct    = flag.Bool("direct", false, "draw straight into the output context")
		aliased   = flag.Bool("aliased", false, "pick without anti-aliasing")
		verbose   = flag.Bool("v", false, "log paint pass details")
	)
	var picks points
	flag.Var(&picks, "pick", "page point `x,y` to pick (repeatable)")
	flag.Parse()

	if *verbose {
		ggpaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *scenePath == "" {
		log.Fatal("missing -scene")
	}

	sc, err := scene.Load(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	page, err := sc.Build()
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	w, h := sc.Page.Width, sc.Page.Height
	dc := gg.NewContext(w, h)
	defer dc.Close()

	opts := sc.Options()
	if *direct {
		opts = append(opts, ggpaint.WithDirect(dc))
	}
	helper := ggpaint.New(w, h, opts...)

	if err := widget.Render(helper, page); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := helper.Composite(dc); err != nil {
		log.Fatalf("Failed to composite: %v", err)
	}
	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Scene saved to %s (%dx%d, %d widgets)\n", *output, w, h, helper.Len())

	for _, pt := range picks {
		report(helper, pt[0], pt[1], !*aliased)
	}
}

func report(h *ggpaint.Helper, x, y float64, antialias bool) {
	top := "none"
	if w := h.TopmostWidgetAt(x, y, antialias); w != nil {
		top = string(w.WidgetID())
	}
	box := "none"
	if w := h.WidgetAtPoint(x, y, nil); w != nil {
		box = string(w.WidgetID())
	}
	fmt.Printf("(%g,%g): topmost=%s bounds=%s", x, y, top, box)

	if a, ok := ggpaint.WidgetAtPointOfType[*widget.Axis](h, x, y); ok {
		pos := x
		if a.Direction == widget.Vertical {
			pos = y
		}
		fmt.Printf(" axis=%s tick=%g", a.ID, a.Nearest(pos))
		for _, p := range h.AxisPlotters(a.ID) {
			fmt.Printf(" plotter=%s", p.WidgetID())
		}
	}
	fmt.Println()
}
