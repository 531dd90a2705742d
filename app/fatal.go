package app

import (
	"image/color"
	"strings"

	"github.com/dextero/evil-android/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// ShowFatal paints a dead-end error screen: red field, white text wrapped
// to the display width. It is the last thing drawn before the runtime
// halts, so the present error is ignored; there is nobody left to report
// it to.
func ShowFatal(display hal.Display, lines ...string) {
	if display == nil {
		return
	}
	fb := display.Framebuffer()
	if fb == nil {
		return
	}

	fb.ClearRGB(160, 0, 0)

	d := fbDisplayer{fb: fb}
	font := &proggy.TinySZ8pt7b
	_, glyphW := tinyfont.LineWidth(font, "0")
	if glyphW == 0 {
		_ = display.Present()
		return
	}
	cols := fb.Width() / int(glyphW)
	if cols <= 0 {
		cols = 1
	}

	const lineH = 12
	fg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	y := int16(lineH)
	for _, line := range lines {
		for len(line) > 0 && int(y) < fb.Height() {
			chunk := line
			if len(chunk) > cols {
				chunk = line[:cols]
			}
			tinyfont.WriteLine(d, font, 2, y, chunk, fg)
			line = strings.TrimLeft(line[len(chunk):], " ")
			y += lineH
		}
	}
	_ = display.Present()
}
