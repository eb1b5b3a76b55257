package mirror

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/helios/internal/engine/mesh"
	"github.com/Faultbox/helios/internal/engine/object"
	"github.com/Faultbox/helios/internal/engine/reflection"
	"github.com/Faultbox/helios/pkg/math"
)

// Program is the uniform surface the mirror shader needs.
type Program interface {
	object.Program
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
	SetBool(name string, v bool)
	SetVec2(name string, x, y float32)
	SetVec3(name string, v math.Vec3)
}

// Plane is a rectangular mirror: a unit quad in the local XY plane facing +Z,
// scaled to its width and height.
type Plane struct {
	obj     *object.Object
	program Program

	Tint  math.Vec3
	Alpha float32

	bindTexture func(unit int32, tex uint32)
}

// NewPlane wraps uploaded unit-quad geometry.
func NewPlane(geometry object.Geometry, program Program, width, height float32) *Plane {
	p := &Plane{
		obj:         object.New(geometry, program),
		program:     program,
		Tint:        math.Vec3{X: 0.6, Y: 0.7, Z: 0.8},
		Alpha:       0.25,
		bindTexture: bindTexture2D,
	}
	p.SetSize(width, height)
	return p
}

// Load uploads a textured unit quad and returns a plane of the given size.
func Load(program Program, width, height float32) (*Plane, error) {
	data, err := mesh.Quad(1, 1, mesh.LayoutTextured)
	if err != nil {
		return nil, fmt.Errorf("mirror quad: %w", err)
	}
	buf, err := mesh.Upload(data)
	if err != nil {
		return nil, fmt.Errorf("mirror quad: %w", err)
	}
	return NewPlane(buf, program, width, height), nil
}

func bindTexture2D(unit int32, tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

// SetPosition moves the mirror center.
func (p *Plane) SetPosition(pos math.Vec3) {
	p.obj.SetPosition(pos)
}

// SetRotation sets the Euler rotation in radians.
func (p *Plane) SetRotation(rot math.Vec3) {
	p.obj.SetRotation(rot)
}

// SetSize sets the mirror width and height in world units.
func (p *Plane) SetSize(width, height float32) {
	p.obj.SetScale(math.Vec3{X: width, Y: height, Z: 1})
}

// Object exposes the underlying scene object.
func (p *Plane) Object() *object.Object {
	return p.obj
}

// Center returns the world position of the mirror center.
func (p *Plane) Center() math.Vec3 {
	return p.obj.Position()
}

// Normal returns the unit world-space normal (local +Z rotated).
func (p *Plane) Normal() math.Vec3 {
	r := p.obj.Rotation()
	rot := math.RotateX(r.X).Mul(math.RotateY(r.Y)).Mul(math.RotateZ(r.Z))
	return rot.TransformDirection(math.Vec3{Z: 1}).Normalize()
}

// Corners returns the world-space corners, counter-clockwise seen from the
// front.
func (p *Plane) Corners() [4]math.Vec3 {
	model := p.obj.Model()
	return [4]math.Vec3{
		model.TransformPoint(math.Vec3{X: -0.5, Y: -0.5}),
		model.TransformPoint(math.Vec3{X: 0.5, Y: -0.5}),
		model.TransformPoint(math.Vec3{X: 0.5, Y: 0.5}),
		model.TransformPoint(math.Vec3{X: -0.5, Y: 0.5}),
	}
}

// ReflectedView returns view * reflection across the mirror plane. For an
// unrotated mirror this is view * T(P) * S(1,1,-1) * T(-P). The result flips
// triangle winding.
func (p *Plane) ReflectedView(view math.Mat4) math.Mat4 {
	return view.Mul(math.Reflection(p.Center(), p.Normal()))
}

// ReflectionCamera returns a reflection camera for the mirror's current
// world transform.
func (p *Plane) ReflectionCamera() *reflection.Camera {
	return reflection.New(p.Center(), p.Normal())
}

// Draw draws the tinted glass.
func (p *Plane) Draw(view, projection math.Mat4) {
	p.program.Use()
	p.program.SetVec3("tint", p.Tint)
	p.program.SetFloat("alpha", p.Alpha)
	p.program.SetBool("useReflection", false)
	p.obj.Draw(view, projection)
}

// DrawTextured draws the mirror sampling tex, a reflection rendered at the
// given viewport size by a reflection camera.
func (p *Plane) DrawTextured(view, projection math.Mat4, tex uint32, width, height int32) {
	p.program.Use()
	p.program.SetVec3("tint", p.Tint)
	p.program.SetFloat("alpha", p.Alpha)
	p.program.SetBool("useReflection", true)
	p.program.SetBool("flipX", true)
	p.program.SetVec2("viewportSize", float32(width), float32(height))

	p.bindTexture(0, tex)
	p.program.SetInt("reflectionTex", 0)

	p.obj.Draw(view, projection)
}

// Destroy releases the quad geometry.
func (p *Plane) Destroy() {
	p.obj.Destroy()
}
