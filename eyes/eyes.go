// Package eyes implements the animated eye pair: a per-eye blink and gaze
// state machine and the director that couples the two eyes and derives the
// LED drive from their state.
package eyes

import (
	"math"
	"time"

	"github.com/dextero/evil-android/gfx"
)

// BlinkPhase identifies where an eye is in its blink cycle.
type BlinkPhase uint8

const (
	PhaseOpen BlinkPhase = iota
	PhaseClosing
	PhaseClosed
	PhaseOpening
)

func (p BlinkPhase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	case PhaseClosed:
		return "closed"
	case PhaseOpening:
		return "opening"
	}
	return "invalid"
}

// State is the drawable state of one eye.
//
// Openness is 1 for a fully open eye and 0 for a fully closed one; it is a
// pure function of the blink phase and the time spent inside it. GazeX and
// GazeY are the pupil offset from the eye center in pixels, confined to the
// configured bound ellipse. Gaze evolves independently of blinking.
type State struct {
	Openness float32
	GazeX    float32
	GazeY    float32
	Phase    BlinkPhase
}

// Machine advances one eye's state over time. It is a fixed-size value
// mutated in place; nothing is allocated after construction.
type Machine struct {
	cfg Config
	rng Rand

	st        State
	phaseLeft time.Duration // remaining time in a transitional phase
	blinkIn   time.Duration // countdown to the next blink
	gazeIn    time.Duration // countdown to the next gaze retarget
	targetX   float32
	targetY   float32
}

// NewMachine returns a machine in the steady open state with a centered
// gaze and freshly sampled schedules. cfg must have passed Validate.
func NewMachine(cfg Config, rng Rand) *Machine {
	m := &Machine{cfg: cfg, rng: rng}
	m.st = State{Openness: 1, Phase: PhaseOpen}
	m.blinkIn = randDuration(rng, cfg.BlinkIntervalMin, cfg.BlinkIntervalMax)
	m.gazeIn = randDuration(rng, cfg.GazeIntervalMin, cfg.GazeIntervalMax)
	return m
}

// State returns the current drawable state.
func (m *Machine) State() State { return m.st }

// Advance consumes dt. Oversized steps are split at phase boundaries and
// the remainder flows into the next phase within the same call, so a stall
// can never skip a phase of the blink cycle.
func (m *Machine) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	m.advanceBlink(dt)
	m.advanceGaze(dt)
}

func (m *Machine) advanceBlink(dt time.Duration) {
	for {
		switch m.st.Phase {
		case PhaseOpen:
			if m.blinkIn > dt {
				m.blinkIn -= dt
				return
			}
			wait := m.blinkIn
			if wait < 0 {
				wait = 0
			}
			dt -= wait
			// The next blink is scheduled now, decoupled from how long
			// this blink takes; the countdown keeps running through it.
			m.blinkIn = randDuration(m.rng, m.cfg.BlinkIntervalMin, m.cfg.BlinkIntervalMax)
			m.st.Phase = PhaseClosing
			m.phaseLeft = m.cfg.BlinkClose

		case PhaseClosing:
			if m.phaseLeft > dt {
				m.phaseLeft -= dt
				m.blinkIn -= dt
				m.st.Openness = float32(m.phaseLeft) / float32(m.cfg.BlinkClose)
				return
			}
			dt -= m.phaseLeft
			m.blinkIn -= m.phaseLeft
			m.st.Phase = PhaseClosed
			m.phaseLeft = m.cfg.BlinkHold
			m.st.Openness = 0

		case PhaseClosed:
			if m.phaseLeft > dt {
				m.phaseLeft -= dt
				m.blinkIn -= dt
				return
			}
			dt -= m.phaseLeft
			m.blinkIn -= m.phaseLeft
			m.st.Phase = PhaseOpening
			m.phaseLeft = m.cfg.BlinkOpen

		case PhaseOpening:
			if m.phaseLeft > dt {
				m.phaseLeft -= dt
				m.blinkIn -= dt
				m.st.Openness = 1 - float32(m.phaseLeft)/float32(m.cfg.BlinkOpen)
				return
			}
			dt -= m.phaseLeft
			m.blinkIn -= m.phaseLeft
			m.st.Phase = PhaseOpen
			m.st.Openness = 1
		}
	}
}

func (m *Machine) advanceGaze(dt time.Duration) {
	for dt > 0 {
		if m.gazeIn > dt {
			m.gazeIn -= dt
			m.moveGaze(dt)
			return
		}
		step := m.gazeIn
		if step < 0 {
			step = 0
		}
		dt -= step
		m.moveGaze(step)
		m.retarget()
		m.gazeIn = randDuration(m.rng, m.cfg.GazeIntervalMin, m.cfg.GazeIntervalMax)
	}
}

// moveGaze drifts the gaze toward the current target at bounded speed.
// Saccades travel, they never teleport.
func (m *Machine) moveGaze(d time.Duration) {
	if d <= 0 {
		return
	}
	dx := m.targetX - m.st.GazeX
	dy := m.targetY - m.st.GazeY
	dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if dist == 0 {
		return
	}
	step := m.cfg.GazeSpeed * float32(d.Seconds())
	if step >= dist {
		m.st.GazeX = m.targetX
		m.st.GazeY = m.targetY
	} else {
		m.st.GazeX += dx / dist * step
		m.st.GazeY += dy / dist * step
	}
	m.st.GazeX, m.st.GazeY = gfx.ClampToEllipse(m.st.GazeX, m.st.GazeY, m.cfg.GazeBoundX, m.cfg.GazeBoundY)
}

// retarget samples a uniform point inside the gaze bound ellipse. The
// polar form draws exactly twice per retarget, which keeps the shared
// random stream alignment independent of where the gaze happens to be.
func (m *Machine) retarget() {
	a := randFloat32(m.rng) * 2 * math.Pi
	r := float32(math.Sqrt(float64(randFloat32(m.rng))))
	m.targetX = float32(math.Cos(float64(a))) * r * m.cfg.GazeBoundX
	m.targetY = float32(math.Sin(float64(a))) * r * m.cfg.GazeBoundY
}
