// Package app assembles the program: the boot splash, the eye animation
// scene and the fatal screen, wired into a loop engine over whichever
// backend main provides.
package app

import (
	"github.com/dextero/evil-android/eyes"
	"github.com/dextero/evil-android/face"
	"github.com/dextero/evil-android/hal"
	"github.com/dextero/evil-android/loop"
)

// Config carries the full parameter set of the program. Everything is
// fixed at compile time; main only picks the backend and the seed.
type Config struct {
	Eyes eyes.Config
	Face face.Config
	Loop loop.Config

	// SkipSplash starts straight at the eyes. Headless runs use it to
	// keep tick counts meaningful.
	SkipSplash bool
}

// DefaultConfig matches the 160x128 panel on both targets.
func DefaultConfig() Config {
	return Config{
		Eyes: eyes.DefaultConfig(),
		Face: face.DefaultConfig(),
		Loop: loop.DefaultConfig(),
	}
}

// Validate checks every component config. Errors are fatal at startup;
// nothing here is recoverable at tick time.
func (c Config) Validate() error {
	if err := c.Eyes.Validate(); err != nil {
		return err
	}
	if err := c.Face.Validate(); err != nil {
		return err
	}
	return c.Loop.Validate()
}

// New wires the scenes into an engine over the given display and LEDs.
func New(cfg Config, display hal.Display, led0, led1 hal.LED, log hal.Logger, rng eyes.Rand) *loop.Engine {
	scenes := make([]loop.Scene, 0, 2)
	if !cfg.SkipSplash {
		scenes = append(scenes, NewSplash(rng))
	}
	scenes = append(scenes, NewEyesScene(cfg.Eyes, cfg.Face, rng))
	return loop.New(cfg.Loop, display, led0, led1, log, scenes...)
}
