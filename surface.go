package ggpaint

import (
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// Surface is a replayable recording of one widget's drawing, bound to the
// page size and resolution of the pass that created it.
//
// While its widget draws, a Surface accepts commands through a Canvas. The
// first playback seals it: the commands become an immutable
// recording.Recording and later playbacks reuse it unchanged.
type Surface struct {
	width, height int
	dpiX, dpiY    float64

	rec    *recording.Recorder
	sealed *recording.Recording
}

func newSurface(width, height int, dpiX, dpiY float64) *Surface {
	return &Surface{
		width:  width,
		height: height,
		dpiX:   dpiX,
		dpiY:   dpiY,
		rec:    recording.NewRecorder(width, height),
	}
}

// Size returns the page size in device pixels.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// DPI returns the horizontal and vertical resolution.
func (s *Surface) DPI() (x, y float64) {
	return s.dpiX, s.dpiY
}

// Recording seals the surface if needed and returns its commands.
func (s *Surface) Recording() *recording.Recording {
	if s.sealed == nil {
		s.sealed = s.rec.FinishRecording()
	}
	return s.sealed
}

// Sealed reports whether the surface no longer accepts drawing.
func (s *Surface) Sealed() bool {
	return s.sealed != nil
}

// Len returns the number of recorded commands.
func (s *Surface) Len() int {
	return len(s.Recording().Commands())
}

// Replay draws the surface into dc under dc's current transform.
// The transform and clip of dc are unchanged on return. Primitives that
// fail during playback are reported to the package Logger.
func (s *Surface) Replay(dc *gg.Context) error {
	return s.replay(dc, dc.GetTransform(), Logger())
}

func (s *Surface) replay(dc *gg.Context, base gg.Matrix, log *slog.Logger) error {
	dc.Push()
	defer dc.Pop()
	b := newContextBackend(dc, base, log)
	return s.Recording().Playback(b)
}
