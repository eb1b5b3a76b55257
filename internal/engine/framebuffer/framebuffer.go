// Package framebuffer provides the offscreen render target used for
// texture-composited reflections.
package framebuffer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/helios/internal/logger"
)

// ErrIncomplete is returned when the driver rejects the attachment set.
var ErrIncomplete = errors.New("framebuffer incomplete")

// Target is an offscreen render target with an RGB color texture and a
// combined depth/stencil renderbuffer.
type Target struct {
	fbo          uint32
	colorTexture uint32
	depthStencil uint32
	width        int32
	height       int32
}

// New creates a target of the given size. Sizes below one pixel are clamped.
// The default framebuffer is bound again on return.
func New(width, height int32) (*Target, error) {
	width, height = clampSize(width, height)
	t := &Target{
		width:  width,
		height: height,
	}

	if err := t.create(); err != nil {
		logger.Error("offscreen target failed", zap.Int32("width", width), zap.Int32("height", height), zap.Error(err))
		return nil, fmt.Errorf("creating offscreen target: %w", err)
	}

	logger.Debug("offscreen target created",
		zap.Uint32("fbo", t.fbo),
		zap.Uint32("color", t.colorTexture),
		zap.Uint32("depthStencil", t.depthStencil),
		zap.Int32("width", width),
		zap.Int32("height", height))
	return t, nil
}

func clampSize(width, height int32) (int32, int32) {
	return max(width, 1), max(height, 1)
}

func statusError(status uint32) error {
	return fmt.Errorf("%w: status 0x%x", ErrIncomplete, status)
}

func (t *Target) create() error {
	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)

	gl.GenTextures(1, &t.colorTexture)
	gl.BindTexture(gl.TEXTURE_2D, t.colorTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, t.width, t.height, 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.colorTexture, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenRenderbuffers(1, &t.depthStencil)
	gl.BindRenderbuffer(gl.RENDERBUFFER, t.depthStencil)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, t.width, t.height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, t.depthStencil)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		t.Destroy()
		return statusError(status)
	}
	return nil
}

// Bind makes the target current and sets the viewport to its size.
func (t *Target) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.Viewport(0, 0, t.width, t.height)
}

// BindWithViewport binds the target and returns a function restoring the
// previous framebuffer and viewport.
func (t *Target) BindWithViewport() func() {
	var prevFBO int32
	var prevViewport [4]int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])

	t.Bind()

	return func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
		gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
	}
}

// ColorTexture returns the color attachment texture.
func (t *Target) ColorTexture() uint32 {
	return t.colorTexture
}

// Size returns the target dimensions.
func (t *Target) Size() (width, height int32) {
	return t.width, t.height
}

// Recreate rebuilds the target at a new size. Nothing happens when the size is
// unchanged. On failure the target is left destroyed.
func (t *Target) Recreate(width, height int32) error {
	width, height = clampSize(width, height)
	if width == t.width && height == t.height && t.fbo != 0 {
		return nil
	}

	t.Destroy()
	t.width, t.height = width, height
	if err := t.create(); err != nil {
		return fmt.Errorf("recreating offscreen target: %w", err)
	}

	logger.Debug("offscreen target recreated", zap.Int32("width", width), zap.Int32("height", height))
	return nil
}

// ReadPixels reads the color attachment as RGBA rows, bottom row first.
func (t *Target) ReadPixels() []byte {
	pixels := make([]byte, t.width*t.height*4)

	var prevFBO int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)

	gl.ReadPixels(0, 0, t.width, t.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
	return pixels
}

// Destroy releases all GL objects. It is safe to call more than once.
func (t *Target) Destroy() {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
	if t.colorTexture != 0 {
		gl.DeleteTextures(1, &t.colorTexture)
		t.colorTexture = 0
	}
	if t.depthStencil != 0 {
		gl.DeleteRenderbuffers(1, &t.depthStencil)
		t.depthStencil = 0
	}
}
