package ggpaint

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// Option configures a Helper during creation.
//
// Example:
//
//	// Layered helper for a 100 dpi page
//	h := ggpaint.New(800, 600)
//
//	// Direct helper drawing straight into an existing context
//	dc := gg.NewContext(800, 600)
//	h := ggpaint.New(800, 600, ggpaint.WithDirect(dc), ggpaint.WithScale(2))
type Option func(*options)

// options holds optional configuration for Helper creation.
type options struct {
	scale      float64
	dpiX, dpiY float64
	direct     *gg.Context
	pickRadius int
	logger     *slog.Logger
}

// Defaults used when the corresponding option is not given.
const (
	DefaultDPI        = 100
	DefaultPickRadius = 3
)

func defaultOptions() options {
	return options{
		scale:      1,
		dpiX:       DefaultDPI,
		dpiY:       DefaultDPI,
		pickRadius: DefaultPickRadius,
	}
}

// WithScale sets the scale factor reported to widgets through Units.
// Values <= 0 are ignored.
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

// WithDPI sets the horizontal and vertical resolution of the page.
// Values <= 0 are ignored.
func WithDPI(x, y float64) Option {
	return func(o *options) {
		if x > 0 {
			o.dpiX = x
		}
		if y > 0 {
			o.dpiY = y
		}
	}
}

// WithDirect selects direct mode: every widget draws into dc, which the
// caller owns. Compositing happens while drawing and no surfaces are kept,
// so pixel picking is unavailable. A nil dc leaves the helper layered.
func WithDirect(dc *gg.Context) Option {
	return func(o *options) {
		o.direct = dc
	}
}

// WithPickRadius sets the radius r of the (2r+1)-pixel probe used by
// TopmostWidgetAt. Negative values are ignored.
func WithPickRadius(r int) Option {
	return func(o *options) {
		if r >= 0 {
			o.pickRadius = r
		}
	}
}

// WithLogger sets a helper-specific logger instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
