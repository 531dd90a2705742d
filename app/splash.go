package app

import (
	"image/color"
	"time"

	"github.com/dextero/evil-android/eyes"
	"github.com/dextero/evil-android/hal"
	"github.com/dextero/evil-android/sprite"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	splashText           = "Analyzing Android.bp..."
	splashShades         = 32
	splashFramesPerShade = 10
	splashFrames         = splashShades * splashFramesPerShade
	splashMaxShake       = 3
)

// Splash is the boot scene: the screen ramps through the 32 raw red
// shades while the banner shakes harder and harder, the dumpster fire
// fades in half-way, and the LEDs ease up on a cubic curve. It runs a
// fixed number of frames, then hands over to the eyes.
type Splash struct {
	rng   eyes.Rand
	fire  *sprite.Sprite
	frame int
}

// NewSplash builds the scene; rng drives the screen-shake jitter.
func NewSplash(rng eyes.Rand) *Splash {
	return &Splash{rng: rng, fire: fireSprite()}
}

func (s *Splash) Step(dt time.Duration, fb hal.Framebuffer) ([2]hal.LEDCommand, bool) {
	_ = dt // the ramp counts frames, not wall time
	if s.frame >= splashFrames {
		return ledPair(hal.LEDCommand{Mode: hal.LEDLevel, Level: 255}), true
	}

	shade := uint8(s.frame / splashFramesPerShade)

	// Raw 5-bit red shade: v<<3 survives the RGB565 conversion exactly.
	fb.ClearRGB(shade<<3, 0, 0)

	if s.fire != nil && int(shade) >= splashShades/2 {
		fw, fh := s.fire.Size()
		t := targetFor(fb)
		s.fire.Draw(&t, (fb.Width()-fw)/2, fb.Height()*3/4-fh/2)
	}

	d := fbDisplayer{fb: fb}
	font := &proggy.TinySZ8pt7b
	_, tw := tinyfont.LineWidth(font, splashText)
	shake := int16(shade) / (splashShades / splashMaxShake)
	x := (int16(fb.Width())-int16(tw))/2 + shakeOffset(s.rng, shake)
	y := int16(fb.Height())/2 + shakeOffset(s.rng, shake)
	tinyfont.WriteLine(d, font, x, y, splashText, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	s.frame++
	p := float32(s.frame) / splashFrames
	level := uint8(p * p * p * 255)
	return ledPair(hal.LEDCommand{Mode: hal.LEDLevel, Level: level}), s.frame >= splashFrames
}

func ledPair(cmd hal.LEDCommand) [2]hal.LEDCommand {
	return [2]hal.LEDCommand{cmd, cmd}
}

func shakeOffset(r eyes.Rand, amp int16) int16 {
	if r == nil || amp <= 0 {
		return 0
	}
	span := uint32(2*amp + 1)
	return int16(r.Uint32()%span) - amp
}
