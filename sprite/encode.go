//go:build !tinygo

package sprite

import "image"

// Encode converts an image into the sprite wire format. Pixels with alpha
// below 128 are masked out; their pixel slots are zeroed so the output is
// deterministic.
func Encode(img image.Image) (w, h int, pix, mask []byte) {
	b := img.Bounds()
	w = b.Dx()
	h = b.Dy()
	pix = make([]byte, w*h*2)
	mask = make([]byte, maskStride(w)*h)

	stride := maskStride(w)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			r, g, bb, a := img.At(b.Min.X+col, b.Min.Y+row).RGBA()
			if a>>8 < 128 {
				continue
			}
			p := (uint16(r>>11) << 11) | (uint16(g>>10) << 5) | uint16(bb>>11)
			off := (row*w + col) * 2
			pix[off] = byte(p >> 8)
			pix[off+1] = byte(p)
			mask[row*stride+col/8] |= 0x80 >> uint(col%8)
		}
	}
	return w, h, pix, mask
}
