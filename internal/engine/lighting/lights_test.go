package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/helios/pkg/math"
)

type recordingSetter struct {
	values map[string]any
}

func newRecordingSetter() *recordingSetter {
	return &recordingSetter{values: make(map[string]any)}
}

func (r *recordingSetter) SetFloat(name string, v float32)  { r.values[name] = v }
func (r *recordingSetter) SetBool(name string, v bool)      { r.values[name] = v }
func (r *recordingSetter) SetVec3(name string, v math.Vec3) { r.values[name] = v }

func TestNewSpotLightCosines(t *testing.T) {
	s := NewSpotLight(math.Vec3{}, math.Vec3{Z: -3}, math.Splat(1), 12, 8)

	assert.InDelta(t, 0.990268, s.CutOff, 1e-5, "inner 8 degrees")
	assert.InDelta(t, 0.978148, s.OuterCutOff, 1e-5, "outer 12 degrees")
	assert.Equal(t, math.Vec3{Z: -1}, s.Direction)
}

func TestSpotIntensity(t *testing.T) {
	s := NewSpotLight(math.Vec3{}, math.Vec3{Z: -1}, math.Splat(1), 8, 12)

	assert.Equal(t, float32(1), s.Intensity(math.Vec3{Z: -10}))
	assert.Equal(t, float32(0), s.Intensity(math.Vec3{X: 10, Z: -1}))

	// 10 degrees off axis sits between the cones.
	p := math.Vec3{X: math.Sin(math.Radians(10)), Z: -math.Cos(math.Radians(10))}
	i := s.Intensity(p)
	assert.Greater(t, i, float32(0))
	assert.Less(t, i, float32(1))
}

func TestShipSpots(t *testing.T) {
	pos := math.Vec3{Z: -5}
	forward := math.Vec3{Z: -1}
	front, back := ShipSpots(pos, forward)

	assert.True(t, front.Position.ApproxEqual(math.Vec3{Z: -5.6}, 1e-6))
	assert.True(t, back.Position.ApproxEqual(math.Vec3{Z: -4.4}, 1e-6))
	assert.Equal(t, forward, front.Direction)
	assert.Equal(t, forward.Negate(), back.Direction)
	assert.Greater(t, front.CutOff, back.CutOff, "headlight cone is narrower")
}

func TestFogFactor(t *testing.T) {
	fog := Fog{Enabled: true, Density: 0.04}
	assert.Equal(t, float32(1), fog.Factor(0))
	assert.InDelta(t, 0.7710, fog.Factor(12.75), 1e-3)
	assert.Less(t, fog.Factor(50), fog.Factor(10))

	fog.Enabled = false
	assert.Equal(t, float32(1), fog.Factor(50))
}

func TestInCameraSpaceMovesEyeToOrigin(t *testing.T) {
	eye := math.Vec3{Y: 2, Z: 10}
	view := math.LookAt(eye, math.Vec3{}, math.Up)
	u := Build(DayPreset(), eye, math.Vec3{Z: -5}, math.Vec3{Z: -1}, Fog{}, true)

	cs := u.InCameraSpace(view)

	assert.Equal(t, math.Vec3{}, cs.ViewPos)
	assert.True(t, cs.Sun.Position.ApproxEqual(view.TransformPoint(math.Vec3{}), 1e-6))
	assert.InDelta(t, 1, cs.FrontSpot.Direction.Length(), 1e-6)
	assert.Equal(t, u.Sun.Color, cs.Sun.Color)
	assert.Equal(t, u.FrontSpot.CutOff, cs.FrontSpot.CutOff)
}

func TestReflectedViewPreservesSpotCone(t *testing.T) {
	// A spot lighting a point must light it equally when both are seen
	// through a mirror: the reflected view is an isometry.
	eye := math.Vec3{Y: 2, Z: 10}
	view := math.LookAt(eye, math.Vec3{}, math.Up)
	reflected := view.Mul(math.Reflection(math.Vec3{Z: -14}, math.Vec3{Z: 1}))

	u := Build(NightPreset(), eye, math.Vec3{X: 1, Z: -5}, math.Vec3{X: 0.2, Z: -1}, Fog{}, false)
	cs := u.InCameraSpace(reflected)

	for _, p := range []math.Vec3{{X: 1.1, Z: -9}, {X: 2, Z: -8}, {X: -3, Y: 1, Z: -12}} {
		want := u.FrontSpot.Intensity(p)
		got := cs.FrontSpot.Intensity(reflected.TransformPoint(p))
		assert.InDelta(t, want, got, 1e-4, "point %v", p)

		wantDist := u.Sun.Position.Distance(p)
		gotDist := cs.Sun.Position.Distance(reflected.TransformPoint(p))
		assert.InDelta(t, wantDist, gotDist, 1e-4)
	}
}

func TestApplyWritesOnlyRequiredNames(t *testing.T) {
	rec := newRecordingSetter()
	u := Build(DayPreset(), math.Vec3{Z: 10}, math.Vec3{}, math.Vec3{Z: -1}, Fog{Enabled: true, Density: 0.04}, true)
	u.Apply(rec)
	Material{Color: math.Splat(1), Shininess: 32}.Apply(rec)

	required := RequiredNames()
	for name := range rec.values {
		assert.Contains(t, required, name)
	}
	require.Contains(t, rec.values, "useFog")
	assert.Equal(t, true, rec.values["useFog"])
	assert.Equal(t, float32(32), rec.values["shininess"])
}

func TestPresetsDiffer(t *testing.T) {
	day, night := DayPreset(), NightPreset()
	assert.Greater(t, day.Sun.Length(), night.Sun.Length())
	assert.Greater(t, day.Ambient.Length(), night.Ambient.Length())
}
