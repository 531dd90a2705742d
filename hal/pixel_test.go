package hal

import "testing"

func TestRGB565Packing(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xFFFF},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
		{128, 0, 0, 0x8000},
		// Below one quantization step per channel.
		{7, 3, 7, 0x0000},
	}
	for _, c := range cases {
		if got := rgb565(c.r, c.g, c.b); got != c.want {
			t.Fatalf("rgb565(%d, %d, %d) = %#04x, want %#04x", c.r, c.g, c.b, got, c.want)
		}
	}
}

func TestRGB565LEByteOrder(t *testing.T) {
	lo, hi := rgb565LE(255, 0, 0)
	if lo != 0x00 || hi != 0xF8 {
		t.Fatalf("rgb565LE(red) = %#02x %#02x, want 0x00 0xf8", lo, hi)
	}
	lo, hi = rgb565LE(0, 0, 255)
	if lo != 0x1F || hi != 0x00 {
		t.Fatalf("rgb565LE(blue) = %#02x %#02x, want 0x1f 0x00", lo, hi)
	}
}

func TestRGB888From565(t *testing.T) {
	// Channel extremes expand back exactly.
	for _, c := range []struct{ r, g, b uint8 }{
		{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255},
	} {
		r, g, b := rgb888From565(rgb565(c.r, c.g, c.b))
		if r != c.r || g != c.g || b != c.b {
			t.Fatalf("round trip (%d, %d, %d) = (%d, %d, %d)", c.r, c.g, c.b, r, g, b)
		}
	}

	r, g, b := rgb888From565(0x8000)
	if r != 131 || g != 0 || b != 0 {
		t.Fatalf("rgb888From565(0x8000) = (%d, %d, %d), want (131, 0, 0)", r, g, b)
	}
}
