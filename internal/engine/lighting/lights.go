// Package lighting holds the typed light set uploaded to the lit shader.
//
// Lighting is evaluated in camera space. A Uniforms value is built in world
// space once per frame and converted with InCameraSpace for every view it is
// drawn with, including the reflected view of the mirror pass.
package lighting

import (
	stdmath "math"

	"github.com/Faultbox/helios/pkg/math"
)

// Setter is the uniform surface the light set writes to.
type Setter interface {
	SetFloat(name string, v float32)
	SetBool(name string, v bool)
	SetVec3(name string, v math.Vec3)
}

// PointLight is an omnidirectional light.
type PointLight struct {
	Position math.Vec3
	Color    math.Vec3
}

// SpotLight is a cone light. CutOff and OuterCutOff are cosines of the inner
// and outer half angles; CutOff >= OuterCutOff.
type SpotLight struct {
	Position    math.Vec3
	Direction   math.Vec3
	Color       math.Vec3
	CutOff      float32
	OuterCutOff float32
}

// NewSpotLight builds a spot light from cone angles in degrees.
func NewSpotLight(pos, dir, color math.Vec3, innerDeg, outerDeg float32) SpotLight {
	if outerDeg < innerDeg {
		innerDeg, outerDeg = outerDeg, innerDeg
	}
	return SpotLight{
		Position:    pos,
		Direction:   dir.Normalize(),
		Color:       color,
		CutOff:      math.Cos(math.Radians(innerDeg)),
		OuterCutOff: math.Cos(math.Radians(outerDeg)),
	}
}

// Intensity returns the cone falloff at p, matching the shader: 1 inside the
// inner cone, 0 outside the outer cone, linear in cosine between.
func (s SpotLight) Intensity(p math.Vec3) float32 {
	l := s.Position.Sub(p).Normalize()
	theta := l.Dot(s.Direction.Negate().Normalize())
	span := max(s.CutOff-s.OuterCutOff, 1e-4)
	return min(max((theta-s.OuterCutOff)/span, 0), 1)
}

// Fog is exponential-squared distance fog.
type Fog struct {
	Enabled bool
	Density float32
	Color   math.Vec3
}

// Factor returns how much of the surface color survives at distance d
// (1 means no fog).
func (f Fog) Factor(d float32) float32 {
	if !f.Enabled {
		return 1
	}
	x := float64(f.Density * d)
	return float32(stdmath.Exp(-x * x))
}

// Uniforms is the full light set of one frame.
type Uniforms struct {
	Sun       PointLight
	TopLight  PointLight
	Ambient   math.Vec3
	FrontSpot SpotLight
	BackSpot  SpotLight
	Fog       Fog
	UseBlinn  bool
	ViewPos   math.Vec3
}

// InCameraSpace returns a copy with positions and directions transformed by
// view. The eye sits at the camera-space origin.
func (u Uniforms) InCameraSpace(view math.Mat4) Uniforms {
	out := u
	out.Sun.Position = view.TransformPoint(u.Sun.Position)
	out.TopLight.Position = view.TransformPoint(u.TopLight.Position)
	out.FrontSpot = spotInCameraSpace(u.FrontSpot, view)
	out.BackSpot = spotInCameraSpace(u.BackSpot, view)
	out.ViewPos = math.Vec3{}
	return out
}

func spotInCameraSpace(s SpotLight, view math.Mat4) SpotLight {
	s.Position = view.TransformPoint(s.Position)
	s.Direction = view.TransformDirection(s.Direction).Normalize()
	return s
}

// Apply writes every light uniform.
func (u Uniforms) Apply(s Setter) {
	s.SetVec3("viewPos", u.ViewPos)
	s.SetVec3("ambientLight", u.Ambient)

	s.SetVec3("lightPos", u.Sun.Position)
	s.SetVec3("lightColor", u.Sun.Color)
	s.SetVec3("topLightPos", u.TopLight.Position)
	s.SetVec3("topLightColor", u.TopLight.Color)

	s.SetVec3("spotLightPos", u.FrontSpot.Position)
	s.SetVec3("spotLightDir", u.FrontSpot.Direction)
	s.SetVec3("spotLightColor", u.FrontSpot.Color)
	s.SetFloat("cutOff", u.FrontSpot.CutOff)
	s.SetFloat("outerCutOff", u.FrontSpot.OuterCutOff)

	s.SetVec3("backLightPos", u.BackSpot.Position)
	s.SetVec3("backLightDir", u.BackSpot.Direction)
	s.SetVec3("backLightColor", u.BackSpot.Color)
	s.SetFloat("backCutOff", u.BackSpot.CutOff)
	s.SetFloat("backOuterCutOff", u.BackSpot.OuterCutOff)

	s.SetBool("useBlinn", u.UseBlinn)
	s.SetBool("useFog", u.Fog.Enabled)
	s.SetFloat("fogDensity", u.Fog.Density)
	s.SetVec3("fogColor", u.Fog.Color)
}

// RequiredNames lists the uniforms Apply and Material.Apply write. The lit
// program is validated against it at load time.
func RequiredNames() []string {
	return []string{
		"model", "view", "projection", "clipPlane",
		"objectColor", "shininess", "emissive",
		"viewPos", "ambientLight",
		"lightPos", "lightColor", "topLightPos", "topLightColor",
		"spotLightPos", "spotLightDir", "spotLightColor", "cutOff", "outerCutOff",
		"backLightPos", "backLightDir", "backLightColor", "backCutOff", "backOuterCutOff",
		"useBlinn", "useFog", "fogDensity", "fogColor",
	}
}

// Material is the per-object surface description.
type Material struct {
	Color     math.Vec3
	Shininess float32
	// Emissive surfaces ignore lighting (the sun).
	Emissive bool
}

// Apply writes the material uniforms.
func (m Material) Apply(s Setter) {
	s.SetVec3("objectColor", m.Color)
	s.SetFloat("shininess", m.Shininess)
	s.SetBool("emissive", m.Emissive)
}
