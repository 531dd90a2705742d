package gfx

// InsideEllipse reports whether (x, y) lies inside the axis-aligned
// ellipse with half-axes rx, ry centered at the origin. The test uses the
// normalized squared distance, so no square root is needed.
func InsideEllipse(x, y, rx, ry float32) bool {
	if rx <= 0 || ry <= 0 {
		return x == 0 && y == 0
	}
	nx := x / rx
	ny := y / ry
	return nx*nx+ny*ny <= 1
}

// ClampToEllipse pulls (x, y) radially back onto the boundary of the
// ellipse with half-axes rx, ry when it lies outside. Degenerate axes
// collapse everything to the center.
func ClampToEllipse(x, y, rx, ry float32) (float32, float32) {
	if rx <= 0 || ry <= 0 {
		return 0, 0
	}
	nx := x / rx
	ny := y / ry
	d2 := nx*nx + ny*ny
	if d2 <= 1 {
		return x, y
	}
	inv := 1 / sqrt32(d2)
	return x * inv, y * inv
}
