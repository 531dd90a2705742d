//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// Host bundles the simulator backend handles main wires into the engine.
type Host struct {
	Display *HostDisplay
	LED0    *HostLED
	LED1    *HostLED
	Log     Logger
	Clock   Clock
}

// NewHost assembles the simulator backend for a w x h screen.
func NewHost(w, h int) *Host {
	log := &hostLogger{w: os.Stdout}
	return &Host{
		Display: NewHostDisplay(w, h),
		LED0:    &HostLED{name: "led.left", log: log},
		LED1:    &HostLED{name: "led.right", log: log},
		Log:     log,
		Clock:   SystemClock{},
	}
}

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// HostLED is the simulator LED stand-in: it records the last command and
// logs changes, mirroring what the physical LED would show.
type HostLED struct {
	mu   sync.Mutex
	name string
	log  Logger
	last LEDCommand
	seen bool
}

func (l *HostLED) Apply(cmd LEDCommand) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.seen && cmd == l.last {
		return
	}
	l.seen = true
	l.last = cmd
	if l.log != nil {
		l.log.WriteLineString(l.name + ": " + cmd.String())
	}
}

// Last returns the most recent command, for tests and debugging.
func (l *HostLED) Last() (LEDCommand, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last, l.seen
}
