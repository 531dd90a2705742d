package hal

import (
	"errors"
	"strconv"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LEDMode selects how an indicator LED is driven.
type LEDMode uint8

const (
	LEDOff LEDMode = iota
	LEDOn
	// LEDLevel drives the LED at Level/255 of full brightness.
	LEDLevel
)

// LEDCommand is a per-tick LED drive command. It is a value, not state.
type LEDCommand struct {
	Mode  LEDMode
	Level uint8
}

func (c LEDCommand) String() string {
	switch c.Mode {
	case LEDOff:
		return "off"
	case LEDOn:
		return "on"
	case LEDLevel:
		return "level " + strconv.Itoa(int(c.Level))
	}
	return "invalid"
}

// LED accepts drive commands.
//
// Apply is infallible: a GPIO write or a simulator stand-in has no
// meaningful failure mode at this layer.
type LED interface {
	Apply(cmd LEDCommand)
}

// ErrWindowClosed reports that the simulator window was asked to close.
// It is a shutdown signal, not a failure.
var ErrWindowClosed = errors.New("display: window closed")

// ErrBusFailure reports a transient display bus fault. Hardware backends
// wrap it with detail; callers match it with errors.Is.
var ErrBusFailure = errors.New("display: bus failure")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a fixed-size pixel buffer matching the display resolution.
//
// The buffer is borrowed by the renderer for the duration of a tick; it is
// never reallocated after construction.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
}

// Display owns a framebuffer and transfers it to the screen.
type Display interface {
	Framebuffer() Framebuffer

	// Present pushes the current framebuffer contents to the device.
	// Hardware backends report transient faults wrapping ErrBusFailure;
	// the windowed backend reports ErrWindowClosed once the user asks
	// the window to close.
	Present() error
}

// Clock provides wall time and frame pacing.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}
