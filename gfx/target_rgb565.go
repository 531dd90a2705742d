package gfx

// RGB565 renders into a little-endian RGB565 framebuffer.
//
// Callers provide the backing buffer and layout (stride); the type holds no
// other state and a value can be rebuilt around the same buffer every frame
// without allocating.
type RGB565 struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565) Size() (w, h int) { return t.W, t.H }

func (t *RGB565) Clear(c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 || t.W <= 0 || t.H <= 0 {
		return
	}
	p := c.RGB565()
	lo := byte(p)
	hi := byte(p >> 8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func (t *RGB565) SetPixel(x, y int, c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 || t.W <= 0 || t.H <= 0 {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := c.RGB565()
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// Pixel reads back a pixel, for tests and tools. Out-of-bounds reads
// return the zero color.
func (t *RGB565) Pixel(x, y int) Color {
	if t == nil || t.Buf == nil || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return Color{}
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return Color{}
	}
	return FromRGB565(uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8)
}
