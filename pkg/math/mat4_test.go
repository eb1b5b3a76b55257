package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func vecToMgl(v Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestMulMatchesMathgl(t *testing.T) {
	a := Translate(1, -2, 3).Mul(RotateY(0.7))
	b := Scale(2, 3, 4).Mul(RotateX(-1.1))

	want := mgl32.Mat4(a).Mul4(mgl32.Mat4(b))
	got := a.Mul(b)
	if !got.ApproxEqual(Mat4(want), 1e-5) {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
}

func TestRotationsMatchMathgl(t *testing.T) {
	angle := float32(0.42)
	tests := []struct {
		name string
		got  Mat4
		want mgl32.Mat4
	}{
		{"x", RotateX(angle), mgl32.HomogRotate3DX(angle)},
		{"y", RotateY(angle), mgl32.HomogRotate3DY(angle)},
		{"z", RotateZ(angle), mgl32.HomogRotate3DZ(angle)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.ApproxEqual(Mat4(tt.want), 1e-6) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformDirection(Vec3{0, 0, -1})
	if got != (Vec3{0, 0, -1}) {
		t.Errorf("TransformDirection: got %v", got)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	got := m.TransformPoint(Vec3{1, 0, 0})

	// (1,0,0) rotated 90 degrees about Y ends on -Z
	if !got.ApproxEqual(Vec3{0, 0, -1}, 1e-3) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestPerspectiveMatchesMathgl(t *testing.T) {
	got := Perspective(Radians(45), 4.0/3.0, 0.1, 100)
	want := mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 100)
	if !got.ApproxEqual(Mat4(want), 1e-5) {
		t.Errorf("Perspective: got %v, want %v", got, want)
	}
}

func TestOrthoMatchesMathgl(t *testing.T) {
	got := Ortho(-2, 2, -1, 1, 0.1, 10)
	want := mgl32.Ortho(-2, 2, -1, 1, 0.1, 10)
	if !got.ApproxEqual(Mat4(want), 1e-6) {
		t.Errorf("Ortho: got %v, want %v", got, want)
	}
}

func TestLookAtMatchesMathgl(t *testing.T) {
	eye := Vec3{3, 4, 5}
	center := Vec3{0, 1, -2}
	up := Vec3{0, 1, 0}

	got := LookAt(eye, center, up)
	want := mgl32.LookAtV(vecToMgl(eye), vecToMgl(center), vecToMgl(up))
	if !got.ApproxEqual(Mat4(want), 1e-5) {
		t.Errorf("LookAt: got %v, want %v", got, want)
	}

	// The eye maps to the camera-space origin.
	if p := got.TransformPoint(eye); !p.ApproxEqual(Vec3{}, 1e-5) {
		t.Errorf("LookAt eye in camera space = %v, want origin", p)
	}
}

func TestReflection(t *testing.T) {
	tests := []struct {
		name   string
		point  Vec3
		normal Vec3
		in     Vec3
		want   Vec3
	}{
		{"xy plane", Vec3{}, Vec3{0, 0, 1}, Vec3{1, 2, 3}, Vec3{1, 2, -3}},
		{"offset xy plane", Vec3{0, 0, -3}, Vec3{0, 0, 1}, Vec3{0, 0, 5}, Vec3{0, 0, -11}},
		{"unnormalized normal", Vec3{0, 2, 0}, Vec3{0, 10, 0}, Vec3{4, 5, 6}, Vec3{4, -1, 6}},
		{"point on plane", Vec3{1, 1, 1}, Vec3{1, 1, 0}, Vec3{1, 1, 7}, Vec3{1, 1, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflection(tt.point, tt.normal).TransformPoint(tt.in)
			if !got.ApproxEqual(tt.want, 1e-5) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReflectionFlipsWinding(t *testing.T) {
	r := Reflection(Vec3{0, 0, -3}, Vec3{0, 0, 1})
	if d := r.Determinant3x3(); d >= 0 {
		t.Errorf("reflection determinant = %f, want negative", d)
	}
	if d := RotateY(1).Determinant3x3(); d <= 0 {
		t.Errorf("rotation determinant = %f, want positive", d)
	}
}

func TestInverse(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateZ(0.3)).Mul(Scale(2, 2, 2))
	if got := m.Mul(m.Inverse()); !got.ApproxEqual(Identity(), 1e-5) {
		t.Errorf("M * inverse(M) = %v, want identity", got)
	}
}
