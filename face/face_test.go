package face

import (
	"bytes"
	"testing"

	"github.com/dextero/evil-android/eyes"
	"github.com/dextero/evil-android/gfx"
)

func newTarget(cfg Config) *gfx.RGB565 {
	return &gfx.RGB565{
		Buf:    make([]byte, cfg.Width*cfg.Height*2),
		Stride: cfg.Width * 2,
		W:      cfg.Width,
		H:      cfg.Height,
	}
}

// stored reduces a palette color to what a 16bpp readback reports.
func stored(c gfx.Color) gfx.Color {
	return gfx.FromRGB565(c.RGB565())
}

func TestRenderDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	r := NewRenderer(cfg)
	open := eyes.State{Openness: 1, Phase: eyes.PhaseOpen}
	half := eyes.State{Openness: 0.5, Phase: eyes.PhaseClosing}

	a := newTarget(cfg)
	b := newTarget(cfg)
	r.Render(open, half, a)
	r.Render(open, half, b)
	if !bytes.Equal(a.Buf, b.Buf) {
		t.Fatalf("identical states rendered different frames")
	}

	r.Render(half, half, b)
	if bytes.Equal(a.Buf, b.Buf) {
		t.Fatalf("different states rendered identical frames")
	}
}

func TestRenderOverwritesStalePixels(t *testing.T) {
	cfg := DefaultConfig()
	r := NewRenderer(cfg)
	open := eyes.State{Openness: 1, Phase: eyes.PhaseOpen}

	fresh := newTarget(cfg)
	dirty := newTarget(cfg)
	for i := range dirty.Buf {
		dirty.Buf[i] = 0xA5
	}

	r.Render(open, open, fresh)
	r.Render(open, open, dirty)
	if !bytes.Equal(fresh.Buf, dirty.Buf) {
		t.Fatalf("stale buffer contents leaked through a full repaint")
	}
}

func TestClosedEyeFullyCovered(t *testing.T) {
	cfg := DefaultConfig()
	r := NewRenderer(cfg)
	closed := eyes.State{Openness: 0, Phase: eyes.PhaseClosed}

	dst := newTarget(cfg)
	r.Render(closed, closed, dst)

	bg := stored(cfg.Palette.Background)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if got := dst.Pixel(x, y); got != bg {
				t.Fatalf("pixel (%d, %d) = %+v with closed eyes, want background %+v", x, y, got, bg)
			}
		}
	}
}

func TestOpenEyeShowsScleraAndPupil(t *testing.T) {
	cfg := DefaultConfig()
	r := NewRenderer(cfg)
	open := eyes.State{Openness: 1, Phase: eyes.PhaseOpen}

	dst := newTarget(cfg)
	r.Render(open, open, dst)

	sclera := stored(cfg.Palette.Sclera)
	pupil := stored(cfg.Palette.Pupil)

	cx, cy := int(cfg.LeftX), int(cfg.LeftY)
	if got := dst.Pixel(cx, cy); got != pupil {
		t.Fatalf("eye center = %+v, want pupil %+v", got, pupil)
	}
	if got := dst.Pixel(cx+int(cfg.EyeRX)-5, cy); got != sclera {
		t.Fatalf("inner sclera = %+v, want sclera %+v", got, sclera)
	}
	if got := dst.Pixel(cx, cy-int(cfg.EyeRY)); got != sclera {
		t.Fatalf("top of open eye = %+v, want sclera %+v", got, sclera)
	}

	rcx := int(cfg.RightX)
	if got := dst.Pixel(rcx, cy); got != pupil {
		t.Fatalf("right eye center = %+v, want pupil %+v", got, pupil)
	}
}

func TestHalfOpenEyeCoversAboveAperture(t *testing.T) {
	cfg := DefaultConfig()
	r := NewRenderer(cfg)
	half := eyes.State{Openness: 0.5, Phase: eyes.PhaseClosing}

	dst := newTarget(cfg)
	r.Render(half, half, dst)

	bg := stored(cfg.Palette.Background)
	sclera := stored(cfg.Palette.Sclera)

	cx := int(cfg.LeftX)
	// Row 40 sits under the half-closed upper lid; row 50 is inside the
	// aperture and clear of the pupil.
	if got := dst.Pixel(cx, 40); got != bg {
		t.Fatalf("lid-covered pixel = %+v, want background %+v", got, bg)
	}
	if got := dst.Pixel(cx, 50); got != sclera {
		t.Fatalf("aperture pixel = %+v, want sclera %+v", got, sclera)
	}
}

func TestPupilFollowsGaze(t *testing.T) {
	cfg := DefaultConfig()
	r := NewRenderer(cfg)
	right := eyes.State{Openness: 1, Phase: eyes.PhaseOpen, GazeX: 20}

	dst := newTarget(cfg)
	r.Render(right, right, dst)

	sclera := stored(cfg.Palette.Sclera)
	pupil := stored(cfg.Palette.Pupil)

	// A gaze of 20 px is pulled back to the 17 px pupil travel bound.
	cx, cy := int(cfg.LeftX), int(cfg.LeftY)
	if got := dst.Pixel(cx+17, cy); got != pupil {
		t.Fatalf("shifted pupil pixel = %+v, want pupil %+v", got, pupil)
	}
	if got := dst.Pixel(cx+17-12, cy); got != sclera {
		t.Fatalf("vacated center = %+v, want sclera %+v", got, sclera)
	}
}

func TestPupilStaysInsideSclera(t *testing.T) {
	cfg := DefaultConfig()
	r := NewRenderer(cfg)

	gazes := []eyes.State{
		{Openness: 1, Phase: eyes.PhaseOpen, GazeX: 100, GazeY: 0},
		{Openness: 1, Phase: eyes.PhaseOpen, GazeX: 0, GazeY: -100},
		{Openness: 1, Phase: eyes.PhaseOpen, GazeX: -40, GazeY: 40},
		{Openness: 0.3, Phase: eyes.PhaseOpening, GazeX: 0, GazeY: 50},
	}
	pupil := stored(cfg.Palette.Pupil)
	for i, st := range gazes {
		dst := newTarget(cfg)
		r.Render(st, st, dst)

		for y := 0; y < cfg.Height; y++ {
			for x := 0; x < cfg.Width; x++ {
				if dst.Pixel(x, y) != pupil {
					continue
				}
				inLeft := insideEye(cfg, float32(x), float32(y), cfg.LeftX, cfg.LeftY)
				inRight := insideEye(cfg, float32(x), float32(y), cfg.RightX, cfg.RightY)
				if !inLeft && !inRight {
					t.Fatalf("case %d: pupil pixel (%d, %d) outside both eyes", i, x, y)
				}
			}
		}
	}
}

// insideEye allows one pixel of slack over the sclera ellipse; the pupil
// travel clamp bounds the overshoot well below that.
func insideEye(cfg Config, x, y, cx, cy float32) bool {
	return gfx.InsideEllipse(x+0.5-cx, y+0.5-cy, cfg.EyeRX+1, cfg.EyeRY+1)
}

func TestConfigValidate(t *testing.T) {
	mutations := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Height = -1 }, true},
		{"zero eye radius", func(c *Config) { c.EyeRX = 0 }, true},
		{"zero pupil", func(c *Config) { c.PupilR = 0 }, true},
		{"pupil too large", func(c *Config) { c.PupilR = c.EyeRX }, true},
	}
	for _, tc := range mutations {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if tc.wantErr && err == nil {
			t.Fatalf("%s: Validate() = nil, want error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: Validate() = %v, want nil", tc.name, err)
		}
	}
}
