// Package camera provides the viewpoints of the scene.
package camera

import (
	gomath "math"

	"github.com/Faultbox/helios/pkg/math"
)

// View is a resolved viewpoint: a look-at triple.
type View struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3
}

// Matrix returns the view matrix.
func (v View) Matrix() math.Mat4 {
	return math.LookAt(v.Eye, v.Target, v.Up)
}

// Forward returns the unit viewing direction.
func (v View) Forward() math.Vec3 {
	return v.Target.Sub(v.Eye).Normalize()
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Radians per second of automatic yaw.
	Spin            float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera framing the whole system.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        22,
		RotationX:       0.5,
		MinDistance:     5,
		MaxDistance:     60,
		MinPitch:        0.05,
		MaxPitch:        1.5,
		Spin:            0.1,
		ZoomSensitivity: 0.5,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// View returns the viewpoint looking at the center.
func (c *OrbitCamera) View() View {
	return View{Eye: c.Position(), Target: c.Center, Up: math.Up}
}

// Advance spins the camera and applies zoom and pitch input. zoom > 0 moves
// closer.
func (c *OrbitCamera) Advance(dt, zoom, pitch float32) {
	c.RotationY += c.Spin * dt
	c.RotationX = clamp(c.RotationX+pitch*dt, c.MinPitch, c.MaxPitch)
	c.Distance = clamp(c.Distance-zoom*c.Distance*c.ZoomSensitivity*dt, c.MinDistance, c.MaxDistance)
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

// Chase places the camera behind and above a moving target, looking ahead
// of it.
type Chase struct {
	Back   float32
	Height float32
	Ahead  float32
}

// DefaultChase is the ship camera.
var DefaultChase = Chase{Back: 4, Height: 3, Ahead: 5}

// View returns the chase viewpoint for a target at pos heading along forward.
func (c Chase) View(pos, forward math.Vec3) View {
	return View{
		Eye:    pos.Sub(forward.Scale(c.Back)).Add(math.Vec3{Y: c.Height}),
		Target: pos.Add(forward.Scale(c.Ahead)),
		Up:     math.Up,
	}
}

// Follow returns a viewpoint at target+offset looking at target.
func Follow(target, offset math.Vec3) View {
	return View{Eye: target.Add(offset), Target: target, Up: math.Up}
}

// Fixed returns a viewpoint at eye tracking target.
func Fixed(eye, target math.Vec3) View {
	return View{Eye: eye, Target: target, Up: math.Up}
}
