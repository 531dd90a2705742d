package hal

// memFramebuffer is the in-memory RGB565 backing store shared by both
// display backends. It is allocated once and lives for the process.
type memFramebuffer struct {
	width  int
	height int
	stride int
	buf    []byte
}

func newMemFramebuffer(width, height int) *memFramebuffer {
	stride := width * 2
	return &memFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *memFramebuffer) Width() int          { return f.width }
func (f *memFramebuffer) Height() int         { return f.height }
func (f *memFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int    { return f.stride }
func (f *memFramebuffer) Buffer() []byte      { return f.buf }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	lo, hi := rgb565LE(r, g, b)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}
