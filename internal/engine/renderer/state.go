package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/helios/internal/engine/mirror"
)

// GLState drives the OpenGL pipeline state for the stencil mirror.
type GLState struct{}

var _ mirror.StateDriver = GLState{}

func (GLState) ClearStencil() {
	gl.ClearStencil(0)
	gl.Clear(gl.STENCIL_BUFFER_BIT)
}

func (GLState) ClearDepth() {
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

func (GLState) SetStencilTest(enabled bool) {
	toggle(gl.STENCIL_TEST, enabled)
}

func (GLState) StencilReplace(ref int32) {
	gl.StencilFunc(gl.ALWAYS, ref, 0xFF)
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.REPLACE)
	gl.StencilMask(0xFF)
}

func (GLState) StencilEqual(ref int32) {
	gl.StencilFunc(gl.EQUAL, ref, 0xFF)
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.KEEP)
	gl.StencilMask(0x00)
}

func (GLState) SetColorWrites(enabled bool) {
	gl.ColorMask(enabled, enabled, enabled, enabled)
}

func (GLState) SetDepthWrites(enabled bool) {
	gl.DepthMask(enabled)
}

func (GLState) SetFrontFaceCW(cw bool) {
	if cw {
		gl.FrontFace(gl.CW)
		return
	}
	gl.FrontFace(gl.CCW)
}

func (GLState) SetBlend(enabled bool) {
	if enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		return
	}
	gl.Disable(gl.BLEND)
}

func (GLState) SetClipPlane(enabled bool) {
	toggle(gl.CLIP_DISTANCE0, enabled)
}

func (GLState) SetScissor(r mirror.Rect, enabled bool) {
	if enabled {
		gl.Scissor(r.X, r.Y, r.W, r.H)
	}
	toggle(gl.SCISSOR_TEST, enabled)
}

func toggle(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}
