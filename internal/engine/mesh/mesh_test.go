package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutStride(t *testing.T) {
	assert.Equal(t, 6, LayoutLit.Stride())
	assert.Equal(t, 5, LayoutTextured.Stride())
	assert.Equal(t, 3, LayoutLit.SecondAttribSize())
	assert.Equal(t, 2, LayoutTextured.SecondAttribSize())
}

func TestNewDataValidation(t *testing.T) {
	tri := []float32{
		0, 0, 0, 0, 0, 1,
		1, 0, 0, 0, 0, 1,
		0, 1, 0, 0, 0, 1,
	}

	tests := []struct {
		name     string
		vertices []float32
		indices  []uint32
		layout   Layout
		wantErr  error
	}{
		{"valid", tri, []uint32{0, 1, 2}, LayoutLit, nil},
		{"stride mismatch", tri[:17], []uint32{0, 1, 2}, LayoutLit, ErrInvalidLayout},
		{"not triangles", tri, []uint32{0, 1}, LayoutLit, ErrInvalidLayout},
		{"empty", nil, nil, LayoutLit, ErrInvalidLayout},
		{"index out of range", tri, []uint32{0, 1, 3}, LayoutLit, ErrIndexOutOfRange},
		{"unknown layout", tri, []uint32{0, 1, 2}, Layout(7), ErrInvalidLayout},
		// 18 floats are not a multiple of the textured stride.
		{"wrong layout", tri, []uint32{0, 1, 2}, LayoutTextured, ErrInvalidLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewData(tt.vertices, tt.indices, tt.layout)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewDataCopiesInput(t *testing.T) {
	vertices := []float32{0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 1}
	indices := []uint32{0, 1, 2}

	d, err := NewData(vertices, indices, LayoutLit)
	require.NoError(t, err)

	vertices[0] = 99
	indices[0] = 2
	assert.Equal(t, float32(0), d.Vertices()[0])
	assert.Equal(t, uint32(0), d.Indices()[0])

	// Accessors hand out copies too.
	d.Vertices()[0] = 42
	assert.Equal(t, float32(0), d.Position(0)[0])
}

func TestTakeConsumesData(t *testing.T) {
	d, err := Quad(2, 2, LayoutTextured)
	require.NoError(t, err)

	v, i, err := d.take()
	require.NoError(t, err)
	assert.Len(t, v, 20)
	assert.Len(t, i, 6)
	assert.True(t, d.Consumed())

	_, _, err = d.take()
	assert.ErrorIs(t, err, ErrConsumed)
}

func TestSphere(t *testing.T) {
	d, err := Sphere(1, 48, 24)
	require.NoError(t, err)

	assert.Equal(t, LayoutLit, d.Layout())
	assert.Equal(t, 49*25, d.VertexCount())
	// Pole rows contribute one triangle per sector, the rest two.
	assert.Equal(t, (48*24*2-2*48)*3, d.IndexCount())

	v := d.Vertices()
	for i := 0; i < d.VertexCount(); i++ {
		o := i * 6
		r := math.Sqrt(float64(v[o]*v[o] + v[o+1]*v[o+1] + v[o+2]*v[o+2]))
		assert.InDelta(t, 1.0, r, 1e-5, "vertex %d radius", i)
		n := math.Sqrt(float64(v[o+3]*v[o+3] + v[o+4]*v[o+4] + v[o+5]*v[o+5]))
		assert.InDelta(t, 1.0, n, 1e-5, "vertex %d normal length", i)
	}

	// The duplicated seam column biases X slightly; Y and Z stay symmetric.
	c := d.Centroid()
	assert.InDelta(t, 0, c[0], 5e-2)
	assert.InDelta(t, 0, c[1], 1e-4)
	assert.InDelta(t, 0, c[2], 1e-4)
}

// windingNormal returns the geometric normal of triangle t from its CCW order.
func windingNormal(d *Data, tri int) [3]float32 {
	idx := d.Indices()
	a, b, c := d.Position(int(idx[tri*3])), d.Position(int(idx[tri*3+1])), d.Position(int(idx[tri*3+2]))
	e1 := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	e2 := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	return [3]float32{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
}

func TestBoxWindsOutward(t *testing.T) {
	d, err := Box(0.5, 0.25, 1)
	require.NoError(t, err)

	assert.Equal(t, 24, d.VertexCount())
	assert.Equal(t, 36, d.IndexCount())

	v := d.Vertices()
	idx := d.Indices()
	for tri := 0; tri < len(idx)/3; tri++ {
		g := windingNormal(d, tri)
		o := int(idx[tri*3]) * 6
		n := [3]float32{v[o+3], v[o+4], v[o+5]}
		dot := g[0]*n[0] + g[1]*n[1] + g[2]*n[2]
		assert.Greater(t, dot, float32(0), "triangle %d winds against its normal", tri)
	}

	for i := 0; i < d.VertexCount(); i++ {
		p := d.Position(i)
		assert.InDelta(t, 0.5, math.Abs(float64(p[0])), 1e-6)
		assert.InDelta(t, 0.25, math.Abs(float64(p[1])), 1e-6)
		assert.InDelta(t, 1, math.Abs(float64(p[2])), 1e-6)
	}
}

func TestQuadFacesPositiveZ(t *testing.T) {
	for _, layout := range []Layout{LayoutLit, LayoutTextured} {
		t.Run(layout.String(), func(t *testing.T) {
			d, err := Quad(4, 2, layout)
			require.NoError(t, err)
			assert.Equal(t, 4, d.VertexCount())

			for tri := 0; tri < 2; tri++ {
				g := windingNormal(d, tri)
				assert.Greater(t, g[2], float32(0))
			}
			assert.Equal(t, [3]float32{2, 1, 0}, d.Position(2))
			assert.Equal(t, [3]float32{0, 0, 0}, d.Centroid())
		})
	}
}
