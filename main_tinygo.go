//go:build tinygo

package main

import (
	"time"

	"github.com/dextero/evil-android/app"
	"github.com/dextero/evil-android/eyes"
	"github.com/dextero/evil-android/hal"
	"github.com/dextero/evil-android/internal/buildinfo"
	"github.com/dextero/evil-android/loop"
)

func main() {
	// Give the USB serial console a moment to enumerate.
	time.Sleep(500 * time.Millisecond)

	board := hal.OpenBoard()
	board.Log.WriteLineString(buildinfo.Line())

	// Panics end up on the screen instead of a silent reset loop.
	defer func() {
		if r := recover(); r != nil {
			msg := "panic"
			switch v := r.(type) {
			case string:
				msg = "panic: " + v
			case error:
				msg = "panic: " + v.Error()
			}
			board.Log.WriteLineString(msg)
			app.ShowFatal(board.Display, msg)
			select {}
		}
	}()

	cfg := app.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		board.Log.WriteLineString("config: " + err.Error())
		app.ShowFatal(board.Display, "config: "+err.Error())
		select {}
	}

	seed := uint32(board.Clock.Now().UnixNano())
	engine := app.New(cfg, board.Display, board.LEDLeft, board.LEDRight, board.Log, eyes.NewXorShift(seed))

	reason := engine.Run(board.Clock, nil)
	board.Log.WriteLineString("engine stopped: " + reason.String())
	if reason == loop.ExitDisplayFatal {
		app.ShowFatal(board.Display, "display bus failed")
	}
	select {}
}
