//go:build !tinygo

package hal

import "sync"

// HostDisplay is the simulator display backend: an in-memory framebuffer
// plus a snapshot the window painter reads on its own schedule. The
// mutex guards only the snapshot and the closing flag; the tick path
// never contends with drawing for more than a memcpy.
type HostDisplay struct {
	fb *memFramebuffer

	mu      sync.Mutex
	snap    []byte
	closing bool
}

func NewHostDisplay(w, h int) *HostDisplay {
	fb := newMemFramebuffer(w, h)
	return &HostDisplay{
		fb:   fb,
		snap: make([]byte, len(fb.buf)),
	}
}

func (d *HostDisplay) Framebuffer() Framebuffer { return d.fb }

// Present publishes the framebuffer to the window painter. Once the user
// has asked the window to close it reports ErrWindowClosed instead; the
// frame is dropped because the window is already on its way out.
func (d *HostDisplay) Present() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closing {
		return ErrWindowClosed
	}
	copy(d.snap, d.fb.buf)
	return nil
}

// RequestClose latches the closing state; every Present from now on
// reports ErrWindowClosed.
func (d *HostDisplay) RequestClose() {
	d.mu.Lock()
	d.closing = true
	d.mu.Unlock()
}

func (d *HostDisplay) snapshotRGB565(dst []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(dst, d.snap)
}
