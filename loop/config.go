package loop

import "errors"

// Config fixes the engine timing and failure policy.
type Config struct {
	// TickHz is the frame rate Run paces at.
	TickHz int

	// PresentRetryLimit is how many consecutive present failures are
	// tolerated before the engine gives up. A single dropped frame is
	// acceptable; a stuck bus is not.
	PresentRetryLimit int

	// MaxTicks stops the engine after that many ticks; 0 runs forever.
	MaxTicks uint64
}

// DefaultConfig is the hardware rate; the windowed simulator paces at its
// own fixed timestep instead of Run.
func DefaultConfig() Config {
	return Config{
		TickHz:            30,
		PresentRetryLimit: 5,
	}
}

// Validate reports contract violations; errors are fatal at startup.
func (c Config) Validate() error {
	if c.TickHz <= 0 {
		return errors.New("loop: tick rate must be positive")
	}
	if c.PresentRetryLimit <= 0 {
		return errors.New("loop: present retry limit must be positive")
	}
	return nil
}
