package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 0}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector normalized to %v", z)
	}
}

func TestVec3Reflect(t *testing.T) {
	tests := []struct {
		v, n, want Vec3
	}{
		{Vec3{0, 1, 0}, Vec3{0, 0, 1}, Vec3{0, 1, 0}},
		{Vec3{0, 0, -1}, Vec3{0, 0, 1}, Vec3{0, 0, 1}},
		{Vec3{1, -1, 0}, Vec3{0, 1, 0}, Vec3{1, 1, 0}},
	}
	for _, tt := range tests {
		if got := tt.v.Reflect(tt.n); !got.ApproxEqual(tt.want, Epsilon) {
			t.Errorf("%v.Reflect(%v) = %v, want %v", tt.v, tt.n, got, tt.want)
		}
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); absf(got-3.1415927) > 1e-6 {
		t.Errorf("Radians(180) = %v", got)
	}
}
