package mesh

import "math"

// Sphere builds a UV sphere with per-vertex normals (LayoutLit).
// The poles lie on the local Z axis. Triangles wind counter-clockwise
// seen from outside.
func Sphere(radius float32, sectors, stacks int) (*Data, error) {
	if sectors < 3 {
		sectors = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	vertices := make([]float32, 0, (stacks+1)*(sectors+1)*6)
	lengthInv := 1 / radius
	sectorStep := 2 * math.Pi / float64(sectors)
	stackStep := math.Pi / float64(stacks)

	for i := 0; i <= stacks; i++ {
		stackAngle := math.Pi/2 - float64(i)*stackStep
		xy := float64(radius) * math.Cos(stackAngle)
		z := float32(float64(radius) * math.Sin(stackAngle))

		for j := 0; j <= sectors; j++ {
			sectorAngle := float64(j) * sectorStep
			x := float32(xy * math.Cos(sectorAngle))
			y := float32(xy * math.Sin(sectorAngle))

			vertices = append(vertices,
				x, y, z,
				x*lengthInv, y*lengthInv, z*lengthInv,
			)
		}
	}

	indices := make([]uint32, 0, stacks*sectors*6)
	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors) + 1

		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				indices = append(indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				indices = append(indices, k1+1, k2, k2+1)
			}
		}
	}

	return NewData(vertices, indices, LayoutLit)
}

// Box builds an axis-aligned box centered on the origin with flat face
// normals (LayoutLit). Used for the ship hull.
func Box(halfX, halfY, halfZ float32) (*Data, error) {
	type face struct {
		n, u, v [3]float32
	}
	faces := []face{
		{n: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
		{n: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
		{n: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
	}
	half := [3]float32{halfX, halfY, halfZ}

	vertices := make([]float32, 0, len(faces)*4*6)
	indices := make([]uint32, 0, len(faces)*6)
	for fi, f := range faces {
		for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			for axis := 0; axis < 3; axis++ {
				p := (f.n[axis] + c[0]*f.u[axis] + c[1]*f.v[axis]) * half[axis]
				vertices = append(vertices, p)
			}
			vertices = append(vertices, f.n[0], f.n[1], f.n[2])
		}
		base := uint32(fi * 4)
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return NewData(vertices, indices, LayoutLit)
}

// Quad builds a width x height rectangle in the local XY plane facing +Z.
// LayoutLit carries the +Z normal; LayoutTextured carries uvs spanning 0..1.
func Quad(width, height float32, layout Layout) (*Data, error) {
	hw, hh := width/2, height/2
	corners := [4][2]float32{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]float32, 0, 4*layout.Stride())
	for i, c := range corners {
		vertices = append(vertices, c[0], c[1], 0)
		if layout == LayoutTextured {
			vertices = append(vertices, uvs[i][0], uvs[i][1])
		} else {
			vertices = append(vertices, 0, 0, 1)
		}
	}

	return NewData(vertices, []uint32{0, 1, 2, 2, 3, 0}, layout)
}
