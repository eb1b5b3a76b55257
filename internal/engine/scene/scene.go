// Package scene draws the solar system and its mirror.
//
// The scene owns every GL resource of a frame: the lit and mirror programs,
// the shared sphere and ship meshes, the mirror plane and the offscreen
// target of the texture technique. What to draw comes from a Snapshot built
// by the game each frame.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/helios/internal/engine/camera"
	"github.com/Faultbox/helios/internal/engine/framebuffer"
	"github.com/Faultbox/helios/internal/engine/lighting"
	"github.com/Faultbox/helios/internal/engine/mesh"
	"github.com/Faultbox/helios/internal/engine/mirror"
	"github.com/Faultbox/helios/internal/engine/object"
	"github.com/Faultbox/helios/internal/engine/renderer"
	"github.com/Faultbox/helios/internal/engine/shader"
	"github.com/Faultbox/helios/internal/logger"
	"github.com/Faultbox/helios/pkg/math"
)

// Sphere tessellation of the sun and planets.
const (
	sphereSectors = 48
	sphereStacks  = 24
)

// bodyCount is the sun plus three planets.
const bodyCount = 4

// Config contains scene configuration options.
type Config struct {
	Width  int32
	Height int32

	FOVDegrees float32
	Near       float32
	Far        float32

	MirrorPosition math.Vec3
	MirrorRotation math.Vec3
	MirrorWidth    float32
	MirrorHeight   float32
	MirrorAlpha    float32

	ShaderDir     string
	UniformChecks bool
}

// Body is one drawable of a snapshot.
type Body struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    float32
	Material lighting.Material
}

// Snapshot is everything the scene needs to draw one frame.
type Snapshot struct {
	Bodies    []Body // spheres: the sun first, then the planets
	Ship      Body
	View      camera.View
	Lights    lighting.Uniforms // world space
	Technique mirror.Technique
}

// LitProgram is the uniform surface of the lit shader.
type LitProgram interface {
	object.Program
	lighting.Setter
	SetVec4(name string, v math.Vec4)
}

// Scene renders snapshots.
type Scene struct {
	config Config
	log    *zap.Logger

	lit   LitProgram
	glass mirror.Program

	spheres []*object.Object
	ship    *object.Object
	mirror  *mirror.Plane

	target  *framebuffer.Target
	state   mirror.StateDriver
	stencil *mirror.StencilProtocol

	projection math.Mat4
	frame      Snapshot

	// programs owned by the scene; nil when injected
	owned []*shader.Program
}

// New compiles the programs, uploads the meshes and creates the offscreen
// target. Any failure is returned and nothing is leaked.
func New(cfg Config) (*Scene, error) {
	lit, err := shader.Load(cfg.ShaderDir, "lit")
	if err != nil {
		return nil, err
	}
	glass, err := shader.Load(cfg.ShaderDir, "mirror")
	if err != nil {
		lit.Destroy()
		return nil, err
	}
	owned := []*shader.Program{lit, glass}
	destroyPrograms := func() {
		for _, p := range owned {
			p.Destroy()
		}
	}

	for _, p := range owned {
		p.SetUniformChecks(cfg.UniformChecks)
	}
	if err := lit.Validate(lighting.RequiredNames()...); err != nil {
		destroyPrograms()
		return nil, err
	}
	if err := glass.Validate(mirrorUniforms...); err != nil {
		destroyPrograms()
		return nil, err
	}

	// One upload per body: every object owns its geometry.
	var created []*object.Object
	destroyAll := func() {
		for _, o := range created {
			o.Destroy()
		}
		destroyPrograms()
	}

	spheres := make([]*object.Object, 0, bodyCount)
	for range bodyCount {
		data, err := mesh.Sphere(1, sphereSectors, sphereStacks)
		if err != nil {
			destroyAll()
			return nil, fmt.Errorf("sphere mesh: %w", err)
		}
		o, err := object.NewFromData(data, lit)
		if err != nil {
			destroyAll()
			return nil, fmt.Errorf("sphere mesh: %w", err)
		}
		created = append(created, o)
		spheres = append(spheres, o)
	}

	shipData, err := mesh.Box(0.5, 0.5, 1)
	if err != nil {
		destroyAll()
		return nil, fmt.Errorf("ship mesh: %w", err)
	}
	ship, err := object.NewFromData(shipData, lit)
	if err != nil {
		destroyAll()
		return nil, fmt.Errorf("ship mesh: %w", err)
	}
	created = append(created, ship)

	plane, err := mirror.Load(glass, cfg.MirrorWidth, cfg.MirrorHeight)
	if err != nil {
		destroyAll()
		return nil, err
	}

	target, err := framebuffer.New(cfg.Width, cfg.Height)
	if err != nil {
		plane.Destroy()
		destroyAll()
		return nil, err
	}

	s := newScene(cfg, lit, glass, spheres, ship, plane, renderer.GLState{})
	s.target = target
	s.owned = owned
	s.log.Info("scene ready",
		zap.Int("spheres", len(s.spheres)),
		zap.Int32("width", cfg.Width),
		zap.Int32("height", cfg.Height))
	return s, nil
}

var mirrorUniforms = []string{
	"model", "view", "projection",
	"tint", "alpha", "useReflection", "reflectionTex", "viewportSize", "flipX",
}

// newScene wires already created resources. The scene takes ownership of
// the objects and the plane.
func newScene(cfg Config, lit LitProgram, glass mirror.Program, spheres []*object.Object, ship *object.Object, plane *mirror.Plane, state mirror.StateDriver) *Scene {
	s := &Scene{
		config:  cfg,
		log:     logger.Named("scene"),
		lit:     lit,
		glass:   glass,
		spheres: spheres,
		ship:    ship,
		mirror:  plane,
		state:   state,
		stencil: mirror.NewStencilProtocol(state),
	}

	plane.SetPosition(cfg.MirrorPosition)
	plane.SetRotation(cfg.MirrorRotation)
	plane.Alpha = cfg.MirrorAlpha
	s.updateProjection()
	return s
}

func (s *Scene) updateProjection() {
	aspect := float32(1)
	if s.config.Height > 0 {
		aspect = float32(s.config.Width) / float32(s.config.Height)
	}
	s.projection = math.Perspective(math.Radians(s.config.FOVDegrees), aspect, s.config.Near, s.config.Far)
}

// Projection returns the current projection matrix.
func (s *Scene) Projection() math.Mat4 {
	return s.projection
}

// Mirror returns the mirror plane.
func (s *Scene) Mirror() *mirror.Plane {
	return s.mirror
}

// ReflectionPixels reads back the offscreen reflection of the last texture
// frame, bottom row first. ok is false when there is no target.
func (s *Scene) ReflectionPixels() (pixels []byte, width, height int32, ok bool) {
	if s.target == nil {
		return nil, 0, 0, false
	}
	width, height = s.target.Size()
	return s.target.ReadPixels(), width, height, true
}

// Resize updates the projection and recreates the offscreen target.
func (s *Scene) Resize(width, height int32) error {
	if width == s.config.Width && height == s.config.Height {
		return nil
	}
	s.config.Width = width
	s.config.Height = height
	s.updateProjection()

	if s.target != nil {
		if err := s.target.Recreate(width, height); err != nil {
			return err
		}
	}
	return nil
}

// Render draws one frame into the bound framebuffer.
func (s *Scene) Render(snap Snapshot) {
	s.frame = snap
	view := snap.View.Matrix()

	switch snap.Technique {
	case mirror.TextureComposited:
		s.renderTextured(view)
	default:
		s.stencil.Run(s.mirror, mirror.Frame{
			View:       view,
			Projection: s.projection,
			Eye:        snap.View.Eye,
			Width:      s.config.Width,
			Height:     s.config.Height,
		}, s)
	}
}

// renderTextured draws the reflection offscreen with the reflection camera,
// then the real scene, then the mirror sampling the reflection.
func (s *Scene) renderTextured(view math.Mat4) {
	if s.target != nil {
		cam := s.mirror.ReflectionCamera()
		v := s.frame.View
		reflected := cam.ReflectedView(v.Eye, v.Target, v.Up)
		clip := cam.ClipPlane(v.Eye)

		restore := s.target.BindWithViewport()
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		s.state.SetClipPlane(true)
		s.drawBodies(reflected, s.projection, clip)
		s.state.SetClipPlane(false)
		restore()
	}

	s.DrawScene(view, s.projection)

	if s.target != nil {
		w, h := s.target.Size()
		s.mirror.DrawTextured(view, s.projection, s.target.ColorTexture(), w, h)
	} else {
		s.mirror.Draw(view, s.projection)
	}
}

// DrawReflected draws the bodies through a reflected view. Lights are moved
// into the reflected camera space so lighting matches the mirrored geometry.
func (s *Scene) DrawReflected(view, projection math.Mat4, clip math.Vec4) {
	s.drawBodies(view, projection, clip)
}

// DrawScene draws the bodies normally.
func (s *Scene) DrawScene(view, projection math.Mat4) {
	s.drawBodies(view, projection, math.Vec4{})
}

func (s *Scene) drawBodies(view, projection math.Mat4, clip math.Vec4) {
	s.lit.Use()
	s.frame.Lights.InCameraSpace(view).Apply(s.lit)
	s.lit.SetVec4("clipPlane", clip)

	for i, body := range s.frame.Bodies {
		if i >= len(s.spheres) {
			break
		}
		s.drawBody(s.spheres[i], body, view, projection)
	}
	s.drawBody(s.ship, s.frame.Ship, view, projection)
}

func (s *Scene) drawBody(obj *object.Object, body Body, view, projection math.Mat4) {
	obj.SetPosition(body.Position)
	obj.SetRotation(body.Rotation)
	obj.SetScale(math.Splat(body.Scale))
	body.Material.Apply(s.lit)
	obj.Draw(view, projection)
}

// Destroy releases all resources.
func (s *Scene) Destroy() {
	for _, o := range s.spheres {
		o.Destroy()
	}
	if s.ship != nil {
		s.ship.Destroy()
	}
	if s.mirror != nil {
		s.mirror.Destroy()
	}
	if s.target != nil {
		s.target.Destroy()
	}
	for _, p := range s.owned {
		p.Destroy()
	}
}
