package hal

import "time"

// SystemClock is the stdlib-backed Clock used on both targets. TinyGo
// implements time.Now as monotonic ticks since reset, which is all the
// frame pacer needs.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
