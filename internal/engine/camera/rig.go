package camera

import (
	"fmt"

	"github.com/Faultbox/helios/internal/engine/input"
	"github.com/Faultbox/helios/pkg/math"
)

// Mode is the active viewpoint of a Rig.
type Mode int

const (
	ModeFree Mode = iota
	ModePlanet
	ModeStatic
	ModeShip
	ModeOverview

	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModePlanet:
		return "planet"
	case ModeStatic:
		return "static"
	case ModeShip:
		return "ship"
	case ModeOverview:
		return "overview"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Targets are the moving things the rig's cameras track.
type Targets struct {
	Planet      math.Vec3 // followed by the planet camera
	Watched     math.Vec3 // tracked by the static camera
	ShipPos     math.Vec3
	ShipForward math.Vec3
}

// Rig owns every camera and cycles between them.
type Rig struct {
	mode Mode

	Free         *FreeCamera
	Orbit        *OrbitCamera
	PlanetOffset math.Vec3
	StaticEye    math.Vec3
	Chase        Chase
}

// NewRig returns a rig in free mode.
func NewRig() *Rig {
	return &Rig{
		Free:         NewFreeCamera(math.Vec3{Y: 2, Z: 10}),
		Orbit:        NewOrbitCamera(),
		PlanetOffset: math.Vec3{Y: 2, Z: 5},
		StaticEye:    math.Vec3{X: 15, Y: 10, Z: 15},
		Chase:        DefaultChase,
	}
}

// Mode returns the active mode.
func (r *Rig) Mode() Mode {
	return r.mode
}

// Cycle switches to the next camera and returns it.
func (r *Rig) Cycle() Mode {
	r.mode = (r.mode + 1) % modeCount
	return r.mode
}

// Update advances the cameras that take input. Only the active camera
// reacts to keys.
func (r *Rig) Update(dt float32, in *input.State) {
	switch r.mode {
	case ModeFree:
		r.Free.Update(dt, in)
	case ModeOverview:
		r.Orbit.Advance(dt, in.Axis(input.KeyPageUp, input.KeyPageDown), in.Axis(input.KeyUp, input.KeyDown))
	}
}

// View resolves the active viewpoint.
func (r *Rig) View(t Targets) View {
	switch r.mode {
	case ModePlanet:
		return Follow(t.Planet, r.PlanetOffset)
	case ModeStatic:
		return Fixed(r.StaticEye, t.Watched)
	case ModeShip:
		return r.Chase.View(t.ShipPos, t.ShipForward)
	case ModeOverview:
		return r.Orbit.View()
	default:
		return r.Free.View()
	}
}
