// Package object couples a mesh to a transform and a shader program.
package object

import (
	"fmt"

	"github.com/Faultbox/helios/internal/engine/mesh"
	"github.com/Faultbox/helios/pkg/math"
)

// Program is the part of a shader program an object needs to draw itself.
type Program interface {
	Use()
	SetMat4(name string, m math.Mat4)
}

// Geometry is an uploaded mesh that can be bound and drawn.
type Geometry interface {
	Bind()
	DrawElements()
}

// releaser is geometry holding GPU resources.
type releaser interface {
	Destroy()
}

// upload is replaced in tests to run without a GL context.
var upload = func(data *mesh.Data) (Geometry, error) {
	buf, err := mesh.Upload(data)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Object is a drawable scene entity.
//
// The geometry is owned by exactly one object and released by its Destroy;
// never hand the same geometry to two objects. The program is shared and
// must outlive every object that references it.
type Object struct {
	geometry  Geometry
	program   Program
	transform Transform
}

// New wraps already uploaded geometry.
func New(geometry Geometry, program Program) *Object {
	return &Object{
		geometry:  geometry,
		program:   program,
		transform: IdentityTransform(),
	}
}

// NewFromData uploads data and wraps the resulting buffer. The data is
// consumed by the upload.
func NewFromData(data *mesh.Data, program Program) (*Object, error) {
	geometry, err := upload(data)
	if err != nil {
		return nil, fmt.Errorf("uploading mesh: %w", err)
	}
	return New(geometry, program), nil
}

// SetPosition sets the world position.
func (o *Object) SetPosition(p math.Vec3) {
	o.transform.Position = p
}

// SetRotation sets the Euler rotation in radians.
func (o *Object) SetRotation(r math.Vec3) {
	o.transform.Rotation = r
}

// SetScale sets the per-axis scale.
func (o *Object) SetScale(s math.Vec3) {
	o.transform.Scale = s
}

// Position returns the world position.
func (o *Object) Position() math.Vec3 {
	return o.transform.Position
}

// Rotation returns the Euler rotation.
func (o *Object) Rotation() math.Vec3 {
	return o.transform.Rotation
}

// Scale returns the per-axis scale.
func (o *Object) Scale() math.Vec3 {
	return o.transform.Scale
}

// Transform returns a copy of the object's transform.
func (o *Object) Transform() Transform {
	return o.transform
}

// Model returns the model matrix of the current transform.
func (o *Object) Model() math.Mat4 {
	return o.transform.Model()
}

// Program returns the shared program.
func (o *Object) Program() Program {
	return o.program
}

// Draw activates the program, uploads model/view/projection and issues the
// indexed draw. The program and vertex array stay bound afterwards.
func (o *Object) Draw(view, projection math.Mat4) {
	o.program.Use()
	o.program.SetMat4("model", o.transform.Model())
	o.program.SetMat4("view", view)
	o.program.SetMat4("projection", projection)

	o.geometry.Bind()
	o.geometry.DrawElements()
}

// Destroy releases the geometry. Calling it again does nothing.
func (o *Object) Destroy() {
	if r, ok := o.geometry.(releaser); ok {
		r.Destroy()
	}
	o.geometry = nil
}
