//go:build !tinygo

package hal

import (
	"errors"
	"testing"
)

type lineRecorder struct {
	lines []string
}

func (r *lineRecorder) WriteLineString(s string) { r.lines = append(r.lines, s) }
func (r *lineRecorder) WriteLineBytes(b []byte)  { r.lines = append(r.lines, string(b)) }

func TestHostLEDLogsChangesOnly(t *testing.T) {
	log := &lineRecorder{}
	led := &HostLED{name: "led.left", log: log}

	if _, seen := led.Last(); seen {
		t.Fatalf("Last() seen = true before any Apply")
	}

	led.Apply(LEDCommand{Mode: LEDOn})
	led.Apply(LEDCommand{Mode: LEDOn})
	led.Apply(LEDCommand{Mode: LEDLevel, Level: 127})
	led.Apply(LEDCommand{Mode: LEDLevel, Level: 127})
	led.Apply(LEDCommand{Mode: LEDOff})

	want := []string{"led.left: on", "led.left: level 127", "led.left: off"}
	if len(log.lines) != len(want) {
		t.Fatalf("logged %d lines, want %d: %v", len(log.lines), len(want), log.lines)
	}
	for i := range want {
		if log.lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, log.lines[i], want[i])
		}
	}

	last, seen := led.Last()
	if !seen || last.Mode != LEDOff {
		t.Fatalf("Last() = %v seen=%v, want off", last, seen)
	}
}

func TestHostDisplaySnapshotIsACopy(t *testing.T) {
	d := NewHostDisplay(4, 2)
	fb := d.Framebuffer()

	fb.ClearRGB(0, 0, 255)
	if err := d.Present(); err != nil {
		t.Fatalf("Present() error = %v, want nil", err)
	}

	snap := make([]byte, len(fb.Buffer()))
	d.snapshotRGB565(snap)
	if snap[0] != 0x1F || snap[1] != 0x00 {
		t.Fatalf("snapshot pixel = %#02x %#02x, want 0x1f 0x00", snap[0], snap[1])
	}

	// Repainting without a present must not leak into the snapshot.
	fb.ClearRGB(0, 0, 0)
	d.snapshotRGB565(snap)
	if snap[0] != 0x1F {
		t.Fatalf("snapshot followed the live framebuffer without a present")
	}
}

func TestHostDisplayRequestClose(t *testing.T) {
	d := NewHostDisplay(4, 2)
	if err := d.Present(); err != nil {
		t.Fatalf("Present() error = %v, want nil", err)
	}

	d.RequestClose()
	if err := d.Present(); !errors.Is(err, ErrWindowClosed) {
		t.Fatalf("Present() after close = %v, want ErrWindowClosed", err)
	}
	if err := d.Present(); !errors.Is(err, ErrWindowClosed) {
		t.Fatalf("second Present() after close = %v, want ErrWindowClosed", err)
	}
}

func TestLEDCommandString(t *testing.T) {
	cases := []struct {
		cmd  LEDCommand
		want string
	}{
		{LEDCommand{Mode: LEDOff}, "off"},
		{LEDCommand{Mode: LEDOn}, "on"},
		{LEDCommand{Mode: LEDLevel, Level: 42}, "level 42"},
		{LEDCommand{Mode: 99}, "invalid"},
	}
	for _, c := range cases {
		if got := c.cmd.String(); got != c.want {
			t.Fatalf("String() = %q, want %q", got, c.want)
		}
	}
}
