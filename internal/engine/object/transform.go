package object

import "github.com/Faultbox/helios/pkg/math"

// Transform is a position, Euler rotation (radians, applied X then Y then Z)
// and scale.
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

// IdentityTransform returns a transform at the origin with unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: math.Splat(1)}
}

// Model returns translate(P) * rotX * rotY * rotZ * scale(S).
func (t Transform) Model() math.Mat4 {
	return math.TranslateVec(t.Position).
		Mul(math.RotateX(t.Rotation.X)).
		Mul(math.RotateY(t.Rotation.Y)).
		Mul(math.RotateZ(t.Rotation.Z)).
		Mul(math.ScaleVec(t.Scale))
}
