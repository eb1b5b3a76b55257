// Package entity defines the things that move in the solar system.
package entity

import (
	"github.com/Faultbox/helios/internal/engine/input"
	"github.com/Faultbox/helios/internal/engine/lighting"
	"github.com/Faultbox/helios/pkg/math"
)

// Orbit is a circular orbit in the XZ plane around the origin.
type Orbit struct {
	Radius float32
	Speed  float32 // radians per second
}

// Position returns the point on the orbit at angle radians.
func (o Orbit) Position(angle float32) math.Vec3 {
	return math.Vec3{X: math.Cos(angle) * o.Radius, Z: math.Sin(angle) * o.Radius}
}

// Body is a sphere: the sun or a planet.
type Body struct {
	Name     string
	Material lighting.Material
	Scale    float32
	Orbit    Orbit
	Angle    float32
}

// Advance moves the body along its orbit.
func (b *Body) Advance(dt, speedScale float32) {
	b.Angle += b.Orbit.Speed * speedScale * dt
}

// Position returns the current world position.
func (b *Body) Position() math.Vec3 {
	return b.Orbit.Position(b.Angle)
}

// Sun returns the emissive central body.
func Sun() Body {
	return Body{
		Name:     "sun",
		Material: lighting.Material{Color: math.Vec3{X: 1, Y: 0.9, Z: 0.6}, Shininess: 64, Emissive: true},
		Scale:    1.5,
	}
}

// Planets returns the three orbiting planets, innermost first.
func Planets() []Body {
	return []Body{
		{
			Name:     "planet1",
			Material: lighting.Material{Color: math.Vec3{X: 0.4, Y: 0.6, Z: 1}, Shininess: 32},
			Scale:    0.4,
			Orbit:    Orbit{Radius: 4, Speed: 0.5},
		},
		{
			Name:     "planet2",
			Material: lighting.Material{Color: math.Vec3{X: 0.8, Y: 0.4, Z: 0.4}, Shininess: 16},
			Scale:    0.6,
			Orbit:    Orbit{Radius: 7, Speed: 0.3},
		},
		{
			Name:     "planet3",
			Material: lighting.Material{Color: math.Vec3{X: 0.4, Y: 0.8, Z: 0.5}, Shininess: 8},
			Scale:    0.3,
			Orbit:    Orbit{Radius: 10, Speed: 0.8},
		},
	}
}

// Ship is the player-controlled spaceship. It turns about Y only.
type Ship struct {
	Position  math.Vec3
	Yaw       float32 // radians
	MoveSpeed float32 // units per second
	TurnSpeed float32 // radians per second
	Scale     float32
	Material  lighting.Material

	// Throttle is how hard the engines worked during the last update, 0 to 1.
	Throttle float32
}

// turnThrottle is the engine load of turning on the spot.
const turnThrottle = 0.35

// NewShip returns the ship at its starting point.
func NewShip() *Ship {
	return &Ship{
		Position:  math.Vec3{Z: -5},
		MoveSpeed: 5,
		TurnSpeed: math.Radians(90),
		Scale:     0.2,
		Material:  lighting.Material{Color: math.Vec3{X: 0.8, Y: 0.8, Z: 0.85}, Shininess: 32},
	}
}

// Forward returns the unit heading on the XZ plane.
func (s *Ship) Forward() math.Vec3 {
	return math.Vec3{X: -math.Sin(s.Yaw), Z: -math.Cos(s.Yaw)}
}

// Update turns with A/D and moves with W/S. The turn applies before the move.
func (s *Ship) Update(dt float32, in *input.State) {
	turn := in.Axis(input.KeyA, input.KeyD)
	move := in.Axis(input.KeyW, input.KeyS)
	s.Yaw += turn * s.TurnSpeed * dt
	s.Position = s.Position.Add(s.Forward().Scale(move * s.MoveSpeed * dt))

	switch {
	case move != 0:
		s.Throttle = 1
	case turn != 0:
		s.Throttle = turnThrottle
	default:
		s.Throttle = 0
	}
}

// Rotation returns the Euler rotation for the ship's transform.
func (s *Ship) Rotation() math.Vec3 {
	return math.Vec3{Y: s.Yaw}
}
