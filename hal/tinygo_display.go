//go:build tinygo

package hal

import (
	"tinygo.org/x/drivers/st7735"
)

// panelDisplay pushes the in-memory framebuffer to the ST7735 over SPI.
//
// The framebuffer stores RGB565 little-endian while the panel wants
// big-endian pixels, so Present byte-swaps into a persistent transmit
// buffer before handing the frame to the driver.
type panelDisplay struct {
	dev st7735.Device
	fb  *memFramebuffer
	tx  []byte
}

func newPanelDisplay(dev st7735.Device) *panelDisplay {
	w, h := dev.Size()
	return &panelDisplay{
		dev: dev,
		fb:  newMemFramebuffer(int(w), int(h)),
		tx:  make([]byte, int(w)*int(h)*2),
	}
}

func (d *panelDisplay) Framebuffer() Framebuffer { return d.fb }

func (d *panelDisplay) Present() error {
	src := d.fb.buf
	for i := 0; i+1 < len(src); i += 2 {
		d.tx[i] = src[i+1]
		d.tx[i+1] = src[i]
	}
	err := d.dev.DrawRGBBitmap8(0, 0, d.tx, int16(d.fb.width), int16(d.fb.height))
	if err != nil {
		return ErrBusFailure
	}
	return nil
}
