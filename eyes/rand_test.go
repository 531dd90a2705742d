package eyes

import (
	"testing"
	"time"
)

func TestXorShiftZeroSeed(t *testing.T) {
	r := NewXorShift(0)
	for i := 0; i < 16; i++ {
		if v := r.Uint32(); v == 0 {
			t.Fatalf("Uint32() = 0 at draw %d with zero seed", i)
		}
	}
}

func TestXorShiftDeterminism(t *testing.T) {
	a := NewXorShift(42)
	b := NewXorShift(42)
	for i := 0; i < 1000; i++ {
		va, vb := a.Uint32(), b.Uint32()
		if va != vb {
			t.Fatalf("Uint32() diverged at draw %d: %d != %d", i, va, vb)
		}
	}
}

func TestXorShiftSeedsDiffer(t *testing.T) {
	a := NewXorShift(42)
	b := NewXorShift(43)
	same := true
	for i := 0; i < 16; i++ {
		if a.Uint32() != b.Uint32() {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("seeds 42 and 43 produced identical streams")
	}
}

func TestRandFloat32Range(t *testing.T) {
	r := NewXorShift(7)
	for i := 0; i < 10000; i++ {
		v := randFloat32(r)
		if v < 0 || v >= 1 {
			t.Fatalf("randFloat32() = %v, want [0, 1)", v)
		}
	}
}

func TestRandDurationBounds(t *testing.T) {
	r := NewXorShift(1)
	const min = 2 * time.Second
	const max = 7 * time.Second
	for i := 0; i < 10000; i++ {
		d := randDuration(r, min, max)
		if d < min || d > max {
			t.Fatalf("randDuration() = %v, want within [%v, %v]", d, min, max)
		}
		if (d-min)%time.Millisecond != 0 {
			t.Fatalf("randDuration() = %v, not millisecond aligned", d)
		}
	}
}

func TestRandDurationDegenerateRange(t *testing.T) {
	r := NewXorShift(1)
	const want = 3 * time.Second
	for i := 0; i < 10; i++ {
		if d := randDuration(r, want, want); d != want {
			t.Fatalf("randDuration(min == max) = %v, want %v", d, want)
		}
	}
}

func TestRandDurationCoversRange(t *testing.T) {
	r := NewXorShift(99)
	const min = 10 * time.Millisecond
	const max = 13 * time.Millisecond
	seen := make(map[time.Duration]bool)
	for i := 0; i < 1000; i++ {
		seen[randDuration(r, min, max)] = true
	}
	if len(seen) != 4 {
		t.Fatalf("randDuration() hit %d distinct values in [10ms, 13ms], want 4", len(seen))
	}
}
