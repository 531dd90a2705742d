// Package sprite loads and draws the flat binary sprite format produced
// by cmd/mksprite: big-endian RGB565 pixels row-major, plus a 1bpp
// transparency mask, MSB first within a byte, each row padded to a whole
// byte.
package sprite

import (
	"errors"
	"strconv"

	"github.com/dextero/evil-android/gfx"
)

// Sprite is a decoded sprite ready to blit. The pixel and mask slices are
// referenced, not copied, so embedded assets draw without allocation.
type Sprite struct {
	w, h int
	pix  []byte
	mask []byte
}

// New wraps raw sprite data, validating the lengths against the
// dimensions.
func New(w, h int, pix, mask []byte) (*Sprite, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New("sprite: dimensions must be positive")
	}
	if len(pix) != w*h*2 {
		return nil, errors.New("sprite: pixel data is " + strconv.Itoa(len(pix)) +
			" bytes, want " + strconv.Itoa(w*h*2))
	}
	if want := maskStride(w) * h; len(mask) != want {
		return nil, errors.New("sprite: mask is " + strconv.Itoa(len(mask)) +
			" bytes, want " + strconv.Itoa(want))
	}
	return &Sprite{w: w, h: h, pix: pix, mask: mask}, nil
}

func (s *Sprite) Size() (w, h int) { return s.w, s.h }

// Draw blits the sprite with its top-left corner at (x, y). Pixels whose
// mask bit is clear are left untouched in dst.
func (s *Sprite) Draw(dst gfx.Target, x, y int) {
	stride := maskStride(s.w)
	for row := 0; row < s.h; row++ {
		for col := 0; col < s.w; col++ {
			if s.mask[row*stride+col/8]&(0x80>>uint(col%8)) == 0 {
				continue
			}
			off := (row*s.w + col) * 2
			p := uint16(s.pix[off])<<8 | uint16(s.pix[off+1])
			dst.SetPixel(x+col, y+row, gfx.FromRGB565(p))
		}
	}
}

func maskStride(w int) int { return (w + 7) / 8 }
