// Package gfx provides minimal, predictable software 2D rasterization.
//
// Everything draws into a caller-provided Target; the package performs no
// device I/O and allocates nothing in the draw path, so the same calls
// produce the same bytes on the microcontroller and in the simulator.
// Coordinates are sampled at pixel centers and all primitives clip to the
// target bounds.
package gfx
