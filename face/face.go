// Package face composes eye states into pixels. It knows the screen
// layout and colors; it performs no device I/O and owns no state beyond
// its configuration, so rendering is a pure function of the eye states.
package face

import (
	"github.com/dextero/evil-android/eyes"
	"github.com/dextero/evil-android/gfx"
)

// Renderer paints a face for a fixed geometry.
type Renderer struct {
	cfg Config
}

// NewRenderer returns a renderer for cfg. cfg must have passed Validate.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render repaints the whole frame from the two eye states, back to front:
// background, sclera, pupil, then eyelids. Every pixel is written on every
// call, so no stale pixels survive an eye getting smaller between frames,
// and identical states always produce byte-identical buffers.
func (r *Renderer) Render(left, right eyes.State, dst gfx.Target) {
	dst.Clear(r.cfg.Palette.Background)
	r.renderEye(left, r.cfg.LeftX, r.cfg.LeftY, dst)
	r.renderEye(right, r.cfg.RightX, r.cfg.RightY, dst)
}

func (r *Renderer) renderEye(st eyes.State, cx, cy float32, dst gfx.Target) {
	cfg := r.cfg

	gfx.FillEllipse(dst, cx, cy, cfg.EyeRX, cfg.EyeRY, cfg.Palette.Sclera)

	px, py := pupilCenter(st, cx, cy, cfg.EyeRX, cfg.EyeRY, cfg.PupilR)
	gfx.FillCircle(dst, px, py, cfg.PupilR, cfg.Palette.Pupil)

	top, bottom := lidRects(st.Openness, cx, cy, cfg.EyeRX, cfg.EyeRY)
	gfx.FillRect(dst, top.X, top.Y, top.W, top.H, cfg.Palette.Background)
	gfx.FillRect(dst, bottom.X, bottom.Y, bottom.W, bottom.H, cfg.Palette.Background)
}
