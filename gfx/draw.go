package gfx

import "math"

// HLine fills the pixel run [x0, x1] on row y.
func HLine(t Target, x0, x1, y int, c Color) {
	w, h := t.Size()
	if y < 0 || y >= h {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= w {
		x1 = w - 1
	}
	for x := x0; x <= x1; x++ {
		t.SetPixel(x, y, c)
	}
}

// FillRect fills the w x h rectangle whose top-left corner is (x, y).
func FillRect(t Target, x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	for row := y; row < y+h; row++ {
		HLine(t, x, x+w-1, row, c)
	}
}

// FillEllipse fills the axis-aligned ellipse centered at (cx, cy) with
// half-axes rx and ry. A pixel is covered when its center lies inside the
// ellipse, so repeated calls with equal arguments touch identical pixels.
func FillEllipse(t Target, cx, cy, rx, ry float32, c Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	y0 := int(math.Ceil(float64(cy - ry - 0.5)))
	y1 := int(math.Floor(float64(cy + ry - 0.5)))
	for y := y0; y <= y1; y++ {
		dy := (float32(y) + 0.5 - cy) / ry
		rem := 1 - dy*dy
		if rem < 0 {
			continue
		}
		dx := rx * sqrt32(rem)
		x0 := int(math.Ceil(float64(cx - dx - 0.5)))
		x1 := int(math.Floor(float64(cx + dx - 0.5)))
		HLine(t, x0, x1, y, c)
	}
}

// FillCircle fills the circle of radius r centered at (cx, cy).
func FillCircle(t Target, cx, cy, r float32, c Color) {
	FillEllipse(t, cx, cy, r, r, c)
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
