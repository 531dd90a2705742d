//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dextero/evil-android/app"
	"github.com/dextero/evil-android/eyes"
	"github.com/dextero/evil-android/hal"
	"github.com/dextero/evil-android/internal/buildinfo"
	"github.com/dextero/evil-android/loop"
)

// The simulator runs at the usual desktop frame rate; hardware keeps the
// slower default from loop.DefaultConfig.
const hostTickHz = 60

func main() {
	var (
		headless   bool
		hz         int
		ticks      uint64
		seed       uint64
		scale      int
		skipSplash bool
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hz, "hz", 0, "Tick rate override (0 = default).")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks (0 = run forever).")
	flag.Uint64Var(&seed, "seed", 0, "Animation seed (0 = derive from the clock).")
	flag.IntVar(&scale, "scale", 3, "Window scale factor.")
	flag.BoolVar(&skipSplash, "no-splash", false, "Skip the boot sequence.")
	flag.Parse()

	cfg := app.DefaultConfig()
	cfg.Loop.TickHz = hostTickHz
	if hz > 0 {
		cfg.Loop.TickHz = hz
	}
	cfg.Loop.MaxTicks = ticks
	cfg.SkipSplash = skipSplash || headless
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	host := hal.NewHost(cfg.Face.Width, cfg.Face.Height)
	host.Log.WriteLineString(buildinfo.Line())

	engine := app.New(cfg, host.Display, host.LED0, host.LED1, host.Log, eyes.NewXorShift(uint32(seed)))

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if reason := engine.Run(host.Clock, ctx.Done()); reason == loop.ExitDisplayFatal {
			os.Exit(1)
		}
		return
	}

	reason := loop.ExitStopped
	err := hal.RunWindow(host.Display, hal.WindowConfig{
		Title: "evil-android (" + buildinfo.Short() + ")",
		Scale: scale,
		TPS:   cfg.Loop.TickHz,
	}, func(dt time.Duration) bool {
		r, done := engine.Step(dt)
		if done {
			reason = r
		}
		return done
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if reason == loop.ExitDisplayFatal {
		os.Exit(1)
	}
}
