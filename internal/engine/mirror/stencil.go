package mirror

import (
	"github.com/Faultbox/helios/pkg/math"
)

// StateDriver is the pipeline state the stencil protocol manipulates. The
// renderer implements it on top of OpenGL.
type StateDriver interface {
	ClearStencil()
	ClearDepth()
	SetStencilTest(enabled bool)
	// StencilReplace makes every drawn fragment write ref (func ALWAYS, op
	// REPLACE, write mask 0xFF).
	StencilReplace(ref int32)
	// StencilEqual passes fragments where the buffer holds ref and freezes
	// the stencil buffer (func EQUAL, write mask 0).
	StencilEqual(ref int32)
	SetColorWrites(enabled bool)
	SetDepthWrites(enabled bool)
	SetFrontFaceCW(cw bool)
	SetBlend(enabled bool)
	SetClipPlane(enabled bool)
	SetScissor(r Rect, enabled bool)
}

// SceneDrawer draws everything except the mirror.
type SceneDrawer interface {
	// DrawReflected draws the scene through a reflected view. Fragments on
	// the negative side of clip must be discarded.
	DrawReflected(view, projection math.Mat4, clip math.Vec4)
	// DrawScene draws the scene normally.
	DrawScene(view, projection math.Mat4)
}

// Frame is the per-frame camera input of the protocol.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	Eye        math.Vec3
	Width      int32
	Height     int32
}

const mirrorRef = 1

// StencilProtocol renders a stencil-masked mirror in four passes: mask,
// reflected scene, glass blend, real scene.
type StencilProtocol struct {
	state StateDriver
}

// NewStencilProtocol returns a protocol driving state.
func NewStencilProtocol(state StateDriver) *StencilProtocol {
	return &StencilProtocol{state: state}
}

// Mask marks the mirror's pixels with 1 in a freshly cleared stencil buffer.
// Nothing reaches the color buffer.
func (s *StencilProtocol) Mask(drawMirror func()) {
	s.state.SetStencilTest(true)
	s.state.StencilReplace(mirrorRef)
	s.state.ClearStencil()
	s.state.SetColorWrites(false)
	s.state.SetDepthWrites(true)

	drawMirror()

	s.state.SetColorWrites(true)
}

// Reflected draws the reflected scene only where the mask is set. The
// reflected view flips winding, so the front face is CW for the duration of
// the pass.
func (s *StencilProtocol) Reflected(drawScene func(), scissor Rect, useScissor bool) {
	s.state.StencilEqual(mirrorRef)
	s.state.SetColorWrites(true)
	if useScissor {
		s.state.SetScissor(scissor, true)
	}
	s.state.ClearDepth()
	s.state.SetFrontFaceCW(true)
	s.state.SetClipPlane(true)

	drawScene()

	s.state.SetClipPlane(false)
	s.state.SetFrontFaceCW(false)
	if useScissor {
		s.state.SetScissor(Rect{}, false)
	}
}

// Blend draws the glass over the reflection with alpha blending. The glass
// writes depth so the real scene behind the mirror is hidden.
func (s *StencilProtocol) Blend(drawMirror func()) {
	s.state.SetStencilTest(false)
	s.state.ClearDepth()
	s.state.SetBlend(true)

	drawMirror()

	s.state.SetBlend(false)
}

// Run renders the mirror and the scene for one frame.
func (s *StencilProtocol) Run(plane *Plane, f Frame, scene SceneDrawer) {
	drawMirror := func() { plane.Draw(f.View, f.Projection) }

	s.Mask(drawMirror)

	corners := plane.Corners()
	rect, visible := Footprint(corners, f.Projection.Mul(f.View), f.Width, f.Height)
	if visible {
		reflectedView := plane.ReflectedView(f.View)
		clip := plane.ReflectionCamera().ClipPlane(f.Eye)
		s.Reflected(func() {
			scene.DrawReflected(reflectedView, f.Projection, clip)
		}, rect, true)
	}

	s.Blend(drawMirror)
	scene.DrawScene(f.View, f.Projection)
}
