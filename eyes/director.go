package eyes

import (
	"time"

	"github.com/dextero/evil-android/hal"
)

// Director owns the two eye machines, keeps them coupled, and derives the
// LED drive from the same state.
type Director struct {
	cfg   Config
	left  *Machine
	right *Machine
}

// NewDirector builds the eye pair over one shared random stream. cfg must
// have passed Validate.
func NewDirector(cfg Config, rng Rand) *Director {
	return &Director{
		cfg:   cfg,
		left:  NewMachine(cfg, rng),
		right: NewMachine(cfg, rng),
	}
}

func (d *Director) Left() State  { return d.left.State() }
func (d *Director) Right() State { return d.right.State() }

// Advance moves both eyes forward by dt and returns the derived LED
// commands, left then right.
//
// The left eye is authoritative: aspects not configured independent are
// copied from the left machine onto the right after every advance, so the
// eyes cannot drift apart.
func (d *Director) Advance(dt time.Duration) [2]hal.LEDCommand {
	if dt > 0 {
		d.left.Advance(dt)
		if d.cfg.IndependentBlink {
			d.right.advanceBlink(dt)
		} else {
			d.right.copyBlinkFrom(d.left)
		}
		if d.cfg.IndependentGaze {
			d.right.advanceGaze(dt)
		} else {
			d.right.copyGazeFrom(d.left)
		}
	}
	return [2]hal.LEDCommand{
		LEDCommandFor(d.left.State()),
		LEDCommandFor(d.right.State()),
	}
}

// LEDCommandFor maps eye state to LED drive: closed eyes go dark, steady
// open eyes run full on, and transitional phases dim with the eyelid. The
// mapping is part of the visible behavior and must stay identical across
// backends.
func LEDCommandFor(st State) hal.LEDCommand {
	switch st.Phase {
	case PhaseClosed:
		return hal.LEDCommand{Mode: hal.LEDOff}
	case PhaseOpen:
		return hal.LEDCommand{Mode: hal.LEDOn}
	default:
		return hal.LEDCommand{Mode: hal.LEDLevel, Level: uint8(st.Openness * 255)}
	}
}

func (m *Machine) copyBlinkFrom(src *Machine) {
	m.st.Phase = src.st.Phase
	m.st.Openness = src.st.Openness
	m.phaseLeft = src.phaseLeft
	m.blinkIn = src.blinkIn
}

func (m *Machine) copyGazeFrom(src *Machine) {
	m.st.GazeX = src.st.GazeX
	m.st.GazeY = src.st.GazeY
	m.targetX = src.targetX
	m.targetY = src.targetY
	m.gazeIn = src.gazeIn
}
