package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/helios/internal/engine/input"
	"github.com/Faultbox/helios/pkg/math"
)

func TestRigCycles(t *testing.T) {
	r := NewRig()
	assert.Equal(t, ModeFree, r.Mode())

	want := []Mode{ModePlanet, ModeStatic, ModeShip, ModeOverview, ModeFree}
	for _, m := range want {
		assert.Equal(t, m, r.Cycle())
	}
	assert.Equal(t, "ship", ModeShip.String())
}

func TestRigViews(t *testing.T) {
	r := NewRig()
	targets := Targets{
		Planet:      math.Vec3{X: 4},
		Watched:     math.Vec3{X: -10},
		ShipPos:     math.Vec3{Z: -5},
		ShipForward: math.Vec3{Z: -1},
	}

	v := r.View(targets)
	assert.Equal(t, math.Vec3{Y: 2, Z: 10}, v.Eye)
	assert.True(t, v.Forward().ApproxEqual(math.Vec3{Z: -1}, 1e-6))

	r.Cycle()
	v = r.View(targets)
	assert.Equal(t, math.Vec3{X: 4, Y: 2, Z: 5}, v.Eye)
	assert.Equal(t, targets.Planet, v.Target)

	r.Cycle()
	v = r.View(targets)
	assert.Equal(t, math.Vec3{X: 15, Y: 10, Z: 15}, v.Eye)
	assert.Equal(t, targets.Watched, v.Target)

	r.Cycle()
	v = r.View(targets)
	assert.Equal(t, math.Vec3{Y: 3, Z: -1}, v.Eye)
	assert.Equal(t, math.Vec3{Z: -10}, v.Target)
}

func TestFreeCameraMoves(t *testing.T) {
	c := NewFreeCamera(math.Vec3{})
	in := input.NewState()

	in.Apply(input.Event{Type: input.EventKeyDown, Key: input.KeyUp})
	c.Update(1, in)
	assert.True(t, c.Position.ApproxEqual(math.Vec3{Z: -5}, 1e-5), "at %v", c.Position)

	in.Apply(input.Event{Type: input.EventKeyUp, Key: input.KeyUp})
	in.Apply(input.Event{Type: input.EventKeyDown, Key: input.KeyRight})
	in.Apply(input.Event{Type: input.EventKeyDown, Key: input.KeyPageUp})
	c.Update(0.5, in)
	assert.True(t, c.Position.ApproxEqual(math.Vec3{X: 2.5, Y: 2.5, Z: -5}, 1e-5), "at %v", c.Position)
}

func TestOnlyActiveCameraTakesInput(t *testing.T) {
	r := NewRig()
	r.Cycle()
	in := input.NewState()
	in.Apply(input.Event{Type: input.EventKeyDown, Key: input.KeyUp})

	before := r.Free.Position
	r.Update(1, in)
	assert.Equal(t, before, r.Free.Position)
}

func TestOrbitAdvanceClamps(t *testing.T) {
	c := NewOrbitCamera()
	c.Advance(100, 1, 1)

	assert.Equal(t, c.MinDistance, c.Distance)
	assert.Equal(t, c.MaxPitch, c.RotationX)
	assert.InDelta(t, c.Distance, c.Position().Distance(c.Center), 1e-4)
}
