package gfx

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// RGB565 returns the pixel value a 16bpp target stores for this color.
func (c Color) RGB565() uint16 {
	return (uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | uint16(c.B>>3)&0x1F
}

// FromRGB565 expands a 16bpp pixel back to 8-bit channels.
func FromRGB565(p uint16) Color {
	return Color{
		R: uint8(((p >> 11) & 0x1F) * 255 / 31),
		G: uint8(((p >> 5) & 0x3F) * 255 / 63),
		B: uint8((p & 0x1F) * 255 / 31),
		A: 0xFF,
	}
}
