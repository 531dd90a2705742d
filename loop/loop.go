// Package loop drives the engine tick: scene advance and render, present,
// LED apply, pacing. The present-failure policy lives here and nowhere
// else; scenes and backends stay policy-free.
package loop

import (
	"errors"
	"strconv"
	"time"

	"github.com/dextero/evil-android/hal"
)

// Scene is one stage of the program. Step advances the scene's own state
// by dt and draws into the framebuffer; the returned LED commands mirror
// the new state. done hands control to the next scene.
type Scene interface {
	Step(dt time.Duration, fb hal.Framebuffer) (leds [2]hal.LEDCommand, done bool)
}

// ExitReason says why the engine stopped.
type ExitReason int

const (
	// ExitStopped is the clean end: scenes ran out, MaxTicks was reached,
	// or the caller asked to quit.
	ExitStopped ExitReason = iota
	// ExitWindowClosed reports the simulator window closing, also clean.
	ExitWindowClosed
	// ExitDisplayFatal means presents failed PresentRetryLimit ticks in a
	// row and rendering cannot continue.
	ExitDisplayFatal
)

func (r ExitReason) String() string {
	switch r {
	case ExitStopped:
		return "stopped"
	case ExitWindowClosed:
		return "window closed"
	case ExitDisplayFatal:
		return "display fatal"
	}
	return "unknown"
}

// Engine ties scenes, display and LEDs together at a fixed tick. It is
// strictly sequential: one tick completes before the next begins, and the
// end-of-tick sleep in Run is the only suspension point.
type Engine struct {
	cfg     Config
	display hal.Display
	leds    [2]hal.LED
	log     hal.Logger
	scenes  []Scene

	scene    int
	failures int
	ticks    uint64
}

// New assembles an engine. cfg must have passed Validate.
func New(cfg Config, display hal.Display, led0, led1 hal.LED, log hal.Logger, scenes ...Scene) *Engine {
	return &Engine{
		cfg:     cfg,
		display: display,
		leds:    [2]hal.LED{led0, led1},
		log:     log,
		scenes:  scenes,
	}
}

// Step runs one tick: scene advance and render, present, LED apply.
//
// A failed present never re-runs the scene advance for the same buffer;
// the frame is dropped and the next tick advances normally. ErrWindowClosed
// ends the run cleanly; PresentRetryLimit consecutive other failures end
// it fatally, reported exactly once.
func (e *Engine) Step(dt time.Duration) (ExitReason, bool) {
	if e.scene >= len(e.scenes) {
		return ExitStopped, true
	}
	cmds, sceneDone := e.scenes[e.scene].Step(dt, e.display.Framebuffer())

	if err := e.display.Present(); err != nil {
		if errors.Is(err, hal.ErrWindowClosed) {
			return ExitWindowClosed, true
		}
		e.failures++
		if e.log != nil {
			e.log.WriteLineString("present failed (" + strconv.Itoa(e.failures) +
				"/" + strconv.Itoa(e.cfg.PresentRetryLimit) + "): " + err.Error())
		}
		if e.failures >= e.cfg.PresentRetryLimit {
			return ExitDisplayFatal, true
		}
	} else {
		e.failures = 0
	}

	if e.leds[0] != nil {
		e.leds[0].Apply(cmds[0])
	}
	if e.leds[1] != nil {
		e.leds[1].Apply(cmds[1])
	}

	if sceneDone {
		e.scene++
		if e.scene >= len(e.scenes) {
			return ExitStopped, true
		}
	}

	e.ticks++
	if e.cfg.MaxTicks > 0 && e.ticks >= e.cfg.MaxTicks {
		return ExitStopped, true
	}
	return ExitStopped, false
}

// Run paces Step at TickHz against the supplied clock, measuring real
// elapsed time between ticks as dt. quit, when non-nil, stops the engine
// cleanly at the next tick boundary; hardware passes nil.
func (e *Engine) Run(clock hal.Clock, quit <-chan struct{}) ExitReason {
	period := time.Second / time.Duration(e.cfg.TickHz)
	last := clock.Now()
	for {
		if quit != nil {
			select {
			case <-quit:
				return ExitStopped
			default:
			}
		}
		now := clock.Now()
		dt := now.Sub(last)
		last = now
		if dt < 0 {
			dt = 0
		}
		if reason, done := e.Step(dt); done {
			return reason
		}
		elapsed := clock.Now().Sub(now)
		if sleep := period - elapsed; sleep > 0 {
			clock.Sleep(sleep)
		}
	}
}
