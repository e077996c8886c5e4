package ggpaint

import (
	"bytes"
	"log/slog"
	"sync"

	"github.com/gogpu/gg"
)

// probeSentinel is the RGBA byte pattern a pick probe is filled with before
// a surface is replayed into it. Any drawing that leaves a probe byte
// different from this pattern counts as a hit.
//
// Drawing that produces exactly this colour at full coverage is
// indistinguishable from no drawing at all.
var probeSentinel = [4]byte{0x01, 0xfe, 0x03, 0xfc}

// probeCache holds sentinel-filled reference buffers keyed by probe side.
// It is read-through: a buffer is built on first use and shared afterwards.
// Buffers handed out must be treated as read-only.
type probeCache struct {
	mu   sync.Mutex
	refs map[int][]byte
}

func newProbeCache() *probeCache {
	return &probeCache{refs: make(map[int][]byte)}
}

// defaultProbeCache is shared by every Helper.
var defaultProbeCache = newProbeCache()

// reference returns the sentinel buffer for a side x side probe.
func (c *probeCache) reference(side int) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ref, ok := c.refs[side]; ok {
		return ref
	}
	ref := make([]byte, side*side*4)
	for i := 0; i < len(ref); i += 4 {
		copy(ref[i:i+4], probeSentinel[:])
	}
	c.refs[side] = ref
	return ref
}

// len returns the number of cached buffers.
func (c *probeCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.refs)
}

// aliasedRenderer rasterizes without anti-aliasing. Each operation is
// first rendered as opaque white into a scratch pixmap; a pixel is painted
// with the paint colour only where that coverage reaches one half. Clip and
// mask coverage set by the context apply to the scratch pass.
type aliasedRenderer struct {
	sr      *gg.SoftwareRenderer
	scratch *gg.Pixmap
}

func newAliasedRenderer(width, height int) *aliasedRenderer {
	return &aliasedRenderer{
		sr:      gg.NewSoftwareRenderer(width, height),
		scratch: gg.NewPixmap(width, height),
	}
}

func (r *aliasedRenderer) Fill(pm *gg.Pixmap, p *gg.Path, paint *gg.Paint) error {
	return r.threshold(pm, paint, func(cov *gg.Paint) error {
		return r.sr.Fill(r.scratch, p, cov)
	})
}

func (r *aliasedRenderer) Stroke(pm *gg.Pixmap, p *gg.Path, paint *gg.Paint) error {
	return r.threshold(pm, paint, func(cov *gg.Paint) error {
		return r.sr.Stroke(r.scratch, p, cov)
	})
}

func (r *aliasedRenderer) threshold(pm *gg.Pixmap, paint *gg.Paint, draw func(*gg.Paint) error) error {
	r.scratch.Clear(gg.Transparent)
	cov := paint.Clone()
	cov.SetBrush(gg.Solid(gg.White))
	cov.TransformScale = paint.TransformScale
	cov.ClipCoverage = paint.ClipCoverage
	cov.MaskCoverage = paint.MaskCoverage
	if err := draw(cov); err != nil {
		return err
	}

	col := gg.Black
	if sb, ok := paint.GetBrush().(gg.SolidBrush); ok {
		col = sb.Color
	}
	w, h := min(pm.Width(), r.scratch.Width()), min(pm.Height(), r.scratch.Height())
	for y := range h {
		start := -1
		for x := 0; x <= w; x++ {
			in := x < w && r.scratch.GetPixel(x, y).A >= 0.5
			switch {
			case in && start < 0:
				start = x
			case !in && start >= 0:
				pm.FillSpanBlend(start, x, y, col)
				start = -1
			}
		}
	}
	return nil
}

// probe is a small pixel buffer centred on a page point.
type probe struct {
	radius    int
	side      int
	x, y      float64
	antialias bool
	ref       []byte
	log       *slog.Logger
}

func newProbe(cache *probeCache, x, y float64, radius int, antialias bool, log *slog.Logger) *probe {
	side := 2*radius + 1
	return &probe{
		radius:    radius,
		side:      side,
		x:         x,
		y:         y,
		antialias: antialias,
		ref:       cache.reference(side),
		log:       log,
	}
}

// hit replays s into a fresh sentinel-filled buffer and reports whether any
// pixel changed.
func (p *probe) hit(s *Surface) (bool, error) {
	pm := gg.NewPixmap(p.side, p.side)
	copy(pm.Data(), p.ref)

	opts := []gg.ContextOption{gg.WithPixmap(pm)}
	if !p.antialias {
		opts = append(opts, gg.WithRenderer(newAliasedRenderer(p.side, p.side)))
	}
	dc := gg.NewContext(p.side, p.side, opts...)
	defer dc.Close()

	r := float64(p.radius)
	if err := s.replay(dc, gg.Translate(r-p.x, r-p.y), p.log); err != nil {
		return false, err
	}
	return !bytes.Equal(pm.Data(), p.ref), nil
}
