package app

import (
	"testing"

	"github.com/dextero/evil-android/eyes"
	"github.com/dextero/evil-android/face"
	"github.com/dextero/evil-android/hal"
)

func TestEyesSceneRendersAndNeverFinishes(t *testing.T) {
	fcfg := face.DefaultConfig()
	s := NewEyesScene(eyes.DefaultConfig(), fcfg, eyes.NewXorShift(1))
	fb := hal.NewHostDisplay(fcfg.Width, fcfg.Height).Framebuffer()

	cmds, done := s.Step(tick, fb)
	if done {
		t.Fatalf("Step() done = true, want the eyes to run forever")
	}
	// 16ms is far below the shortest blink countdown, so both eyes are
	// still open.
	if cmds[0].Mode != hal.LEDOn || cmds[1].Mode != hal.LEDOn {
		t.Fatalf("leds = %v, %v, want both on with open eyes", cmds[0], cmds[1])
	}

	buf := fb.Buffer()
	// The gaze starts at origin, so the pupil sits on the left eye centre.
	pupil := fcfg.Palette.Pupil.RGB565()
	off := int(fcfg.LeftY)*fb.StrideBytes() + int(fcfg.LeftX)*2
	if buf[off] != byte(pupil) || buf[off+1] != byte(pupil>>8) {
		t.Fatalf("left eye centre = %#02x %#02x, want pupil %#04x", buf[off], buf[off+1], pupil)
	}
	bg := fcfg.Palette.Background.RGB565()
	if buf[0] != byte(bg) || buf[1] != byte(bg>>8) {
		t.Fatalf("corner = %#02x %#02x, want background %#04x", buf[0], buf[1], bg)
	}

	for i := 0; i < 64; i++ {
		if _, done := s.Step(tick, fb); done {
			t.Fatalf("Step() done = true on tick %d", i+2)
		}
	}
}
