package face

import (
	"errors"

	"github.com/dextero/evil-android/gfx"
)

// Palette is the fixed color scheme of a face.
type Palette struct {
	Background gfx.Color
	Sclera     gfx.Color
	Pupil      gfx.Color
}

// Config fixes the face geometry for a given screen. All values are in
// pixels; nothing here changes at runtime.
type Config struct {
	Width  int
	Height int

	// Eye centers.
	LeftX, LeftY   float32
	RightX, RightY float32

	// Sclera half-axes and pupil radius.
	EyeRX, EyeRY float32
	PupilR       float32

	Palette Palette
}

// DefaultConfig is the layout for the 160x128 panel.
func DefaultConfig() Config {
	return Config{
		Width:  160,
		Height: 128,
		LeftX:  50, LeftY: 64,
		RightX: 110, RightY: 64,
		EyeRX:  28,
		EyeRY:  36,
		PupilR: 11,
		Palette: Palette{
			Background: gfx.RGB(0, 0, 0),
			Sclera:     gfx.RGB(255, 255, 255),
			Pupil:      gfx.RGB(200, 16, 16),
		},
	}
}

// Validate reports geometry contract violations; errors are fatal at
// startup.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.New("face: screen size must be positive")
	}
	if c.EyeRX <= 0 || c.EyeRY <= 0 {
		return errors.New("face: eye radii must be positive")
	}
	if c.PupilR <= 0 {
		return errors.New("face: pupil radius must be positive")
	}
	if c.PupilR >= c.EyeRX || c.PupilR >= c.EyeRY {
		return errors.New("face: pupil radius exceeds eye radius")
	}
	return nil
}
