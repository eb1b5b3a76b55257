package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/helios/internal/logger"
)

// Buffer owns the VAO, VBO and EBO of one uploaded mesh.
type Buffer struct {
	vao uint32
	vbo uint32
	ebo uint32

	layout     Layout
	indexCount int32
}

// Upload moves data to the GPU and consumes it. Attribute 0 is the position
// (3 floats); attribute 1 is the normal (3 floats) or uv (2 floats) depending
// on the layout.
func Upload(data *Data) (*Buffer, error) {
	layout := data.Layout()
	vertices, indices, err := data.take()
	if err != nil {
		return nil, err
	}

	b := &Buffer{
		layout:     layout,
		indexCount: int32(len(indices)),
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.ebo)
	if b.vao == 0 || b.vbo == 0 || b.ebo == 0 {
		b.Destroy()
		return nil, fmt.Errorf("allocating buffers: vao=%d vbo=%d ebo=%d", b.vao, b.vbo, b.ebo)
	}

	gl.BindVertexArray(b.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	stride := int32(layout.Stride() * 4)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal or UV (location 1)
	gl.VertexAttribPointerWithOffset(1, int32(layout.SecondAttribSize()), gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", b.vao),
		zap.Stringer("layout", layout),
		zap.Int("vertices", len(vertices)/layout.Stride()),
		zap.Int32("indices", b.indexCount),
	)

	return b, nil
}

// Layout returns the vertex layout the buffer was built with.
func (b *Buffer) Layout() Layout {
	return b.layout
}

// IndexCount returns the number of indices drawn per call.
func (b *Buffer) IndexCount() int32 {
	return b.indexCount
}

// Bind makes the buffer's VAO current. It is left bound after the call.
func (b *Buffer) Bind() {
	gl.BindVertexArray(b.vao)
}

// DrawElements issues the indexed triangle draw for the bound VAO.
func (b *Buffer) DrawElements() {
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, 0)
}

// Destroy releases all GPU handles. Safe to call more than once.
func (b *Buffer) Destroy() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
}
