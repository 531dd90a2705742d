package app

import (
	"time"

	"github.com/dextero/evil-android/eyes"
	"github.com/dextero/evil-android/face"
	"github.com/dextero/evil-android/gfx"
	"github.com/dextero/evil-android/hal"
)

// EyesScene runs the eye pair: director advance, face render, forever.
type EyesScene struct {
	dir *eyes.Director
	ren *face.Renderer
}

// NewEyesScene wires a director and renderer over one random stream. The
// configs must have passed Validate.
func NewEyesScene(ecfg eyes.Config, fcfg face.Config, rng eyes.Rand) *EyesScene {
	return &EyesScene{
		dir: eyes.NewDirector(ecfg, rng),
		ren: face.NewRenderer(fcfg),
	}
}

func (s *EyesScene) Step(dt time.Duration, fb hal.Framebuffer) ([2]hal.LEDCommand, bool) {
	cmds := s.dir.Advance(dt)
	t := targetFor(fb)
	s.ren.Render(s.dir.Left(), s.dir.Right(), &t)
	return cmds, false
}

// targetFor wraps a framebuffer in a drawing target. The value borrows
// the buffer; rebuilding it every call allocates nothing.
func targetFor(fb hal.Framebuffer) gfx.RGB565 {
	return gfx.RGB565{
		Buf:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		W:      fb.Width(),
		H:      fb.Height(),
	}
}
