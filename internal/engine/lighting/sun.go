package lighting

import "github.com/Faultbox/helios/pkg/math"

// Preset is a named set of global light colors.
type Preset struct {
	Name     string
	Sun      math.Vec3
	TopLight math.Vec3
	Ambient  math.Vec3
}

// SunPosition is where the sun light sits: the center of the system.
var SunPosition = math.Vec3{}

// TopLightPosition is the fill light above the orbital plane.
var TopLightPosition = math.Vec3{Y: 8}

// DayPreset is the default warm sunlight.
func DayPreset() Preset {
	return Preset{
		Name:     "day",
		Sun:      math.Vec3{X: 1, Y: 0.95, Z: 0.8},
		TopLight: math.Vec3{X: 0.4, Y: 0.4, Z: 0.5},
		Ambient:  math.Vec3{X: 0.15, Y: 0.15, Z: 0.2},
	}
}

// NightPreset dims the sun and ambient so the ship's spotlights dominate.
func NightPreset() Preset {
	return Preset{
		Name:     "night",
		Sun:      math.Vec3{X: 0.25, Y: 0.25, Z: 0.4},
		TopLight: math.Vec3{X: 0.05, Y: 0.05, Z: 0.1},
		Ambient:  math.Vec3{X: 0.03, Y: 0.03, Z: 0.06},
	}
}

// Ship spotlight cones and colors.
const (
	FrontSpotInner = 8
	FrontSpotOuter = 12
	BackSpotInner  = 15
	BackSpotOuter  = 25

	spotOffset = 0.6
)

var (
	frontSpotColor = math.Vec3{X: 1, Y: 1, Z: 0.9}
	backSpotColor  = math.Vec3{X: 1}
)

// ShipSpots returns the headlight, shining along forward from just ahead of
// the ship, and the red tail light shining backward from just behind it.
func ShipSpots(pos, forward math.Vec3) (front, back SpotLight) {
	forward = forward.Normalize()
	front = NewSpotLight(pos.Add(forward.Scale(spotOffset)), forward, frontSpotColor, FrontSpotInner, FrontSpotOuter)
	back = NewSpotLight(pos.Sub(forward.Scale(spotOffset)), forward.Negate(), backSpotColor, BackSpotInner, BackSpotOuter)
	return front, back
}

// Build assembles the world-space light set for one frame.
func Build(p Preset, eye, shipPos, shipForward math.Vec3, fog Fog, blinn bool) Uniforms {
	front, back := ShipSpots(shipPos, shipForward)
	return Uniforms{
		Sun:       PointLight{Position: SunPosition, Color: p.Sun},
		TopLight:  PointLight{Position: TopLightPosition, Color: p.TopLight},
		Ambient:   p.Ambient,
		FrontSpot: front,
		BackSpot:  back,
		Fog:       fog,
		UseBlinn:  blinn,
		ViewPos:   eye,
	}
}
