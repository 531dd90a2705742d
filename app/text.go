package app

import (
	"image/color"

	"github.com/dextero/evil-android/hal"
)

// fbDisplayer adapts a framebuffer to the displayer interface tinyfont
// draws through.
type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	p := (uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | uint16(c.B>>3)&0x1F
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

func (d fbDisplayer) Display() error { return nil }
