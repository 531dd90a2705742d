package eyes

import (
	"errors"
	"time"
)

// Config is the compile-time tunable parameter set for one eye pair.
type Config struct {
	// Blink transition timing.
	BlinkClose time.Duration // eyelid travel, open to closed
	BlinkHold  time.Duration // dwell fully closed
	BlinkOpen  time.Duration // eyelid travel, closed to open

	// Pause between blinks, sampled uniformly per blink.
	BlinkIntervalMin time.Duration
	BlinkIntervalMax time.Duration

	// Pause between gaze retargets, sampled uniformly per saccade. Kept
	// slower-paced than blinking.
	GazeIntervalMin time.Duration
	GazeIntervalMax time.Duration

	// GazeBoundX and GazeBoundY are the half-axes of the ellipse the gaze
	// offset is confined to, in pixels.
	GazeBoundX float32
	GazeBoundY float32

	// GazeSpeed is the saccade travel speed in pixels per second.
	GazeSpeed float32

	// IndependentBlink lets each eye run its own blink schedule instead of
	// mirroring the left eye.
	IndependentBlink bool

	// IndependentGaze lets each eye pick its own gaze targets.
	IndependentGaze bool
}

// DefaultConfig returns the stock personality.
func DefaultConfig() Config {
	return Config{
		BlinkClose:       120 * time.Millisecond,
		BlinkHold:        40 * time.Millisecond,
		BlinkOpen:        120 * time.Millisecond,
		BlinkIntervalMin: 2 * time.Second,
		BlinkIntervalMax: 7 * time.Second,
		GazeIntervalMin:  3 * time.Second,
		GazeIntervalMax:  9 * time.Second,
		GazeBoundX:       10,
		GazeBoundY:       12,
		GazeSpeed:        90,
	}
}

// Validate reports configuration contract violations. Any error here is a
// programming mistake and fatal at startup, not a per-tick condition.
func (c Config) Validate() error {
	if c.BlinkClose <= 0 || c.BlinkHold <= 0 || c.BlinkOpen <= 0 {
		return errors.New("eyes: blink phase durations must be positive")
	}
	if c.BlinkIntervalMin <= 0 || c.BlinkIntervalMax <= 0 {
		return errors.New("eyes: blink interval bounds must be positive")
	}
	if c.BlinkIntervalMin > c.BlinkIntervalMax {
		return errors.New("eyes: blink interval min exceeds max")
	}
	if c.GazeIntervalMin <= 0 || c.GazeIntervalMax <= 0 {
		return errors.New("eyes: gaze interval bounds must be positive")
	}
	if c.GazeIntervalMin > c.GazeIntervalMax {
		return errors.New("eyes: gaze interval min exceeds max")
	}
	if c.GazeBoundX < 0 || c.GazeBoundY < 0 {
		return errors.New("eyes: gaze bounds must not be negative")
	}
	if c.GazeSpeed <= 0 {
		return errors.New("eyes: gaze speed must be positive")
	}
	return nil
}
