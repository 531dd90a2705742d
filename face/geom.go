package face

import (
	"math"

	"github.com/dextero/evil-android/eyes"
	"github.com/dextero/evil-android/gfx"
)

type rect struct {
	X, Y, W, H int
}

// pupilCenter places the pupil at the gaze offset, pulled back so the
// pupil circle never crosses the sclera boundary nor the eyelid aperture.
func pupilCenter(st eyes.State, cx, cy, rx, ry, pr float32) (float32, float32) {
	gx, gy := gfx.ClampToEllipse(st.GazeX, st.GazeY, rx-pr, ry-pr)
	px := cx + gx
	py := cy + gy

	limit := st.Openness*ry - pr
	if limit < 0 {
		limit = 0
	}
	if py < cy-limit {
		py = cy - limit
	}
	if py > cy+limit {
		py = cy + limit
	}
	return px, py
}

// lidRects computes the two eyelid occlusion rectangles for an eye at
// (cx, cy). The aperture shrinks linearly with openness; at zero the
// rectangles meet at the centerline and the eye is fully covered.
func lidRects(openness float32, cx, cy, rx, ry float32) (top, bottom rect) {
	x0 := int(math.Ceil(float64(cx-rx-0.5))) - 1
	x1 := int(math.Floor(float64(cx+rx-0.5))) + 1
	w := x1 - x0 + 1

	ap := openness * ry
	eyeTop := int(math.Ceil(float64(cy-ry-0.5))) - 1
	eyeBottom := int(math.Floor(float64(cy+ry-0.5))) + 1

	topEnd := int(math.Ceil(float64(cy-ap-0.5))) - 1
	bottomStart := int(math.Floor(float64(cy+ap-0.5))) + 1

	top = rect{X: x0, Y: eyeTop, W: w, H: topEnd - eyeTop + 1}
	bottom = rect{X: x0, Y: bottomStart, W: w, H: eyeBottom - bottomStart + 1}
	return top, bottom
}
