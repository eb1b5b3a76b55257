package camera

import (
	"github.com/Faultbox/helios/internal/engine/input"
	"github.com/Faultbox/helios/pkg/math"
)

// FreeCamera flies on keyboard input. Arrows move in the horizontal plane
// relative to the heading; PageUp and PageDown move vertically.
type FreeCamera struct {
	Position math.Vec3
	Yaw      float32 // radians, 0 looks down -Z
	Pitch    float32 // radians
	Speed    float32 // units per second
}

// NewFreeCamera returns a camera at pos looking down -Z.
func NewFreeCamera(pos math.Vec3) *FreeCamera {
	return &FreeCamera{Position: pos, Speed: 5}
}

// Forward returns the unit look direction.
func (c *FreeCamera) Forward() math.Vec3 {
	cp := math.Cos(c.Pitch)
	return math.Vec3{
		X: -math.Sin(c.Yaw) * cp,
		Y: math.Sin(c.Pitch),
		Z: -math.Cos(c.Yaw) * cp,
	}
}

// Update moves the camera from the held keys.
func (c *FreeCamera) Update(dt float32, in *input.State) {
	forward := math.Vec3{X: -math.Sin(c.Yaw), Z: -math.Cos(c.Yaw)}
	right := forward.Cross(math.Up)

	step := c.Speed * dt
	move := forward.Scale(in.Axis(input.KeyUp, input.KeyDown)).
		Add(right.Scale(in.Axis(input.KeyRight, input.KeyLeft))).
		Add(math.Up.Scale(in.Axis(input.KeyPageUp, input.KeyPageDown)))

	c.Position = c.Position.Add(move.Scale(step))
}

// View returns the current viewpoint.
func (c *FreeCamera) View() View {
	return View{Eye: c.Position, Target: c.Position.Add(c.Forward()), Up: math.Up}
}
