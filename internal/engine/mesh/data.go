// Package mesh holds static triangle geometry and its GPU buffers.
//
// Geometry is built on the CPU as Data, then handed to Upload which moves it
// into a Buffer. Once uploaded the Data is consumed and can no longer be read
// or uploaded a second time.
package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLayout is returned when vertex data does not match the layout stride.
	ErrInvalidLayout = errors.New("vertex data does not match layout")
	// ErrIndexOutOfRange is returned when an index references a missing vertex.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrConsumed is returned when Data is used after it was uploaded.
	ErrConsumed = errors.New("mesh data already uploaded")
)

// Layout describes the interleaved attributes of a vertex.
type Layout int

const (
	// LayoutLit is position[3] + normal[3].
	LayoutLit Layout = iota
	// LayoutTextured is position[3] + uv[2].
	LayoutTextured
)

// Stride returns the number of floats per vertex.
func (l Layout) Stride() int {
	return 3 + l.SecondAttribSize()
}

// SecondAttribSize returns the float count of attribute slot 1.
func (l Layout) SecondAttribSize() int {
	if l == LayoutTextured {
		return 2
	}
	return 3
}

func (l Layout) String() string {
	switch l {
	case LayoutLit:
		return "lit"
	case LayoutTextured:
		return "textured"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Data is validated, immutable triangle-list geometry with a single owner.
type Data struct {
	vertices []float32
	indices  []uint32
	layout   Layout
	consumed bool
}

// NewData copies vertices and indices and validates them against layout.
// The caller keeps ownership of its slices; later changes to them do not
// affect the returned Data.
func NewData(vertices []float32, indices []uint32, layout Layout) (*Data, error) {
	if layout != LayoutLit && layout != LayoutTextured {
		return nil, fmt.Errorf("%w: unknown layout %d", ErrInvalidLayout, int(layout))
	}
	stride := layout.Stride()
	if len(vertices) == 0 || len(vertices)%stride != 0 {
		return nil, fmt.Errorf("%w: %d floats is not a multiple of stride %d", ErrInvalidLayout, len(vertices), stride)
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices is not a triangle list", ErrInvalidLayout, len(indices))
	}

	vertexCount := uint32(len(vertices) / stride)
	for i, idx := range indices {
		if idx >= vertexCount {
			return nil, fmt.Errorf("%w: indices[%d]=%d, vertex count %d", ErrIndexOutOfRange, i, idx, vertexCount)
		}
	}

	return &Data{
		vertices: append([]float32(nil), vertices...),
		indices:  append([]uint32(nil), indices...),
		layout:   layout,
	}, nil
}

// Layout returns the vertex layout.
func (d *Data) Layout() Layout {
	return d.layout
}

// VertexCount returns the number of vertices.
func (d *Data) VertexCount() int {
	return len(d.vertices) / d.layout.Stride()
}

// IndexCount returns the number of indices.
func (d *Data) IndexCount() int {
	return len(d.indices)
}

// Vertices returns a copy of the interleaved vertex floats.
func (d *Data) Vertices() []float32 {
	return append([]float32(nil), d.vertices...)
}

// Indices returns a copy of the index list.
func (d *Data) Indices() []uint32 {
	return append([]uint32(nil), d.indices...)
}

// Position returns the position of vertex i.
func (d *Data) Position(i int) [3]float32 {
	o := i * d.layout.Stride()
	return [3]float32{d.vertices[o], d.vertices[o+1], d.vertices[o+2]}
}

// Centroid returns the average vertex position.
func (d *Data) Centroid() [3]float32 {
	var c [3]float32
	n := d.VertexCount()
	for i := 0; i < n; i++ {
		p := d.Position(i)
		c[0] += p[0]
		c[1] += p[1]
		c[2] += p[2]
	}
	inv := 1 / float32(n)
	return [3]float32{c[0] * inv, c[1] * inv, c[2] * inv}
}

// Consumed reports whether the data has been moved into a Buffer.
func (d *Data) Consumed() bool {
	return d.consumed
}

// take hands the backing slices to the uploader and marks the data consumed.
func (d *Data) take() ([]float32, []uint32, error) {
	if d.consumed {
		return nil, nil, ErrConsumed
	}
	v, i := d.vertices, d.indices
	d.vertices, d.indices = nil, nil
	d.consumed = true
	return v, i, nil
}
