package eyes

import "time"

// Rand is the pseudo-random source behind blink and gaze timing. It is
// injected at construction, never a package global, so a fixed-seed
// generator reproduces the exact same animation timeline.
type Rand interface {
	Uint32() uint32
}

// XorShift is a small xorshift32 generator, plenty for animation jitter.
type XorShift struct {
	state uint32
}

// NewXorShift seeds a generator. A zero seed is replaced with a fixed
// nonzero constant; xorshift never escapes the all-zero state.
func NewXorShift(seed uint32) *XorShift {
	if seed == 0 {
		seed = 0x6d2b79f5
	}
	return &XorShift{state: seed}
}

func (r *XorShift) Uint32() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// randFloat32 returns a uniform value in [0, 1).
func randFloat32(r Rand) float32 {
	return float32(r.Uint32()>>8) / (1 << 24)
}

// randDuration returns a uniform duration in [min, max], quantized to
// milliseconds. Millisecond resolution is far below tick granularity.
func randDuration(r Rand, min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	spanMs := uint32((max-min)/time.Millisecond) + 1
	return min + time.Duration(r.Uint32()%spanMs)*time.Millisecond
}
