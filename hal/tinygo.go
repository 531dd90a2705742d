//go:build tinygo

package hal

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/st7735"
)

// Pico wiring. SPI1 runs the panel, GP6/GP7 drive the eyelid LEDs.
const (
	pinPanelSCK = machine.GP10
	pinPanelSDO = machine.GP11
	pinPanelSDI = machine.GP12
	pinPanelCS  = machine.GP13
	pinPanelDC  = machine.GP14
	pinPanelRST = machine.GP15
	pinPanelBL  = machine.GP8

	pinLEDLeft  = machine.GP6
	pinLEDRight = machine.GP7
)

// Panel limit per the module datasheet.
const panelSPIHz = 26_000_000

// Board bundles the Pico peripherals used by the firmware.
type Board struct {
	Display  Display
	LEDLeft  LED
	LEDRight LED
	Log      Logger
	Clock    Clock
}

// OpenBoard brings up SPI1, the ST7735 panel and the LED PWM slices.
//
// The panel is a 128x160 module mounted sideways, so it is configured
// rotated to land on the 160x128 layout the renderer expects.
func OpenBoard() *Board {
	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       pinPanelSCK,
		SDO:       pinPanelSDO,
		SDI:       pinPanelSDI,
		Frequency: panelSPIHz,
	})

	dev := st7735.New(machine.SPI1, pinPanelRST, pinPanelDC, pinPanelCS, pinPanelBL)
	dev.Configure(st7735.Config{Rotation: drivers.Rotation90})
	dev.EnableBacklight(true)

	return &Board{
		Display:  newPanelDisplay(dev),
		LEDLeft:  newBoardLED(pinLEDLeft),
		LEDRight: newBoardLED(pinLEDRight),
		Log:      serialLogger{},
		Clock:    SystemClock{},
	}
}

// serialLogger writes CRLF-terminated lines to the default serial
// console (USB CDC or UART0, whichever the build selects).
type serialLogger struct{}

func (serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		machine.Serial.WriteByte(s[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}

func (serialLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		machine.Serial.WriteByte(b[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}
