package mirror

import (
	stdmath "math"

	"github.com/Faultbox/helios/pkg/math"
)

// Rect is a window-space pixel rectangle with its origin at the bottom left,
// matching glScissor.
type Rect struct {
	X, Y, W, H int32
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether pixel (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Footprint returns the screen rectangle covered by the mirror quad under mvp
// (projection * view) on a width x height viewport. It reports false when the
// quad is entirely off screen. If any corner is behind the camera the whole
// viewport is returned.
func Footprint(corners [4]math.Vec3, mvp math.Mat4, width, height int32) (Rect, bool) {
	full := Rect{W: width, H: height}
	if full.Empty() {
		return Rect{}, false
	}

	minX, minY := float32(stdmath.MaxFloat32), float32(stdmath.MaxFloat32)
	maxX, maxY := -minX, -minY
	for _, c := range corners {
		clip := mvp.MulVec4(math.Vec4{c.X, c.Y, c.Z, 1})
		if clip[3] <= 0 {
			return full, true
		}
		x := (clip[0]/clip[3]*0.5 + 0.5) * float32(width)
		y := (clip[1]/clip[3]*0.5 + 0.5) * float32(height)
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}

	// Edges within snapEps of a pixel boundary are treated as on it, so
	// float noise does not grow the rectangle by a whole pixel.
	x0 := clampPixel(stdmath.Floor(float64(minX)+snapEps), width)
	y0 := clampPixel(stdmath.Floor(float64(minY)+snapEps), height)
	x1 := clampPixel(stdmath.Ceil(float64(maxX)-snapEps), width)
	y1 := clampPixel(stdmath.Ceil(float64(maxY)-snapEps), height)

	r := Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
	if r.Empty() {
		return Rect{}, false
	}
	return r, true
}

const snapEps = 1e-3

func clampPixel(v float64, limit int32) int32 {
	if v < 0 {
		return 0
	}
	if v > float64(limit) {
		return limit
	}
	return int32(v)
}
