package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/helios/internal/engine/camera"
	"github.com/Faultbox/helios/internal/engine/lighting"
	"github.com/Faultbox/helios/internal/engine/mirror"
	"github.com/Faultbox/helios/internal/engine/object"
	"github.com/Faultbox/helios/pkg/math"
)

type fakeProgram struct {
	vec3  map[string]math.Vec3
	vec4  map[string]math.Vec4
	mats  map[string]math.Mat4
	draws int
}

func newFakeProgram() *fakeProgram {
	return &fakeProgram{
		vec3: make(map[string]math.Vec3),
		vec4: make(map[string]math.Vec4),
		mats: make(map[string]math.Mat4),
	}
}

func (p *fakeProgram) Use()                             {}
func (p *fakeProgram) SetMat4(name string, m math.Mat4) { p.mats[name] = m }
func (p *fakeProgram) SetFloat(string, float32)         {}
func (p *fakeProgram) SetInt(string, int32)             {}
func (p *fakeProgram) SetBool(string, bool)             {}
func (p *fakeProgram) SetVec2(string, float32, float32) {}
func (p *fakeProgram) SetVec3(name string, v math.Vec3) { p.vec3[name] = v }
func (p *fakeProgram) SetVec4(name string, v math.Vec4) { p.vec4[name] = v }

type countingGeometry struct {
	draws    int
	destroys int
}

func (g *countingGeometry) Bind()         {}
func (g *countingGeometry) DrawElements() { g.draws++ }
func (g *countingGeometry) Destroy()      { g.destroys++ }

type nopState struct {
	clip []bool
}

func (nopState) ClearStencil()                {}
func (nopState) ClearDepth()                  {}
func (nopState) SetStencilTest(bool)          {}
func (nopState) StencilReplace(int32)         {}
func (nopState) StencilEqual(int32)           {}
func (nopState) SetColorWrites(bool)          {}
func (nopState) SetDepthWrites(bool)          {}
func (nopState) SetFrontFaceCW(bool)          {}
func (nopState) SetBlend(bool)                {}
func (s *nopState) SetClipPlane(on bool)      { s.clip = append(s.clip, on) }
func (nopState) SetScissor(mirror.Rect, bool) {}

type fixture struct {
	scene   *Scene
	lit     *fakeProgram
	spheres []*countingGeometry
	ship    *countingGeometry
	glass   *countingGeometry
	state   *nopState
}

// sphereDraws sums draws over every body geometry.
func (f fixture) sphereDraws() int {
	n := 0
	for _, g := range f.spheres {
		n += g.draws
	}
	return n
}

func newFixture() fixture {
	cfg := Config{
		Width:          800,
		Height:         600,
		FOVDegrees:     45,
		Near:           0.1,
		Far:            100,
		MirrorPosition: math.Vec3{Y: 1, Z: -14},
		MirrorWidth:    10,
		MirrorHeight:   6,
		MirrorAlpha:    0.25,
	}
	f := fixture{
		lit:   newFakeProgram(),
		ship:  &countingGeometry{},
		glass: &countingGeometry{},
		state: &nopState{},
	}
	var spheres []*object.Object
	for range bodyCount {
		g := &countingGeometry{}
		f.spheres = append(f.spheres, g)
		spheres = append(spheres, object.New(g, f.lit))
	}
	plane := mirror.NewPlane(f.glass, newFakeProgram(), cfg.MirrorWidth, cfg.MirrorHeight)
	f.scene = newScene(cfg, f.lit, newFakeProgram(), spheres, object.New(f.ship, f.lit), plane, f.state)
	return f
}

func snapshot(technique mirror.Technique) Snapshot {
	eye := math.Vec3{Y: 2, Z: 10}
	bodies := []Body{
		{Scale: 1.5, Material: lighting.Material{Emissive: true}},
		{Position: math.Vec3{X: 4}, Scale: 0.4},
		{Position: math.Vec3{X: 7}, Scale: 0.6},
		{Position: math.Vec3{X: 10}, Scale: 0.3},
	}
	return Snapshot{
		Bodies:    bodies,
		Ship:      Body{Position: math.Vec3{Z: -5}, Scale: 0.2},
		View:      camera.Fixed(eye, math.Vec3{}),
		Lights:    lighting.Build(lighting.DayPreset(), eye, math.Vec3{Z: -5}, math.Vec3{Z: -1}, lighting.Fog{}, true),
		Technique: technique,
	}
}

func TestNewScenePlacesMirror(t *testing.T) {
	f := newFixture()
	assert.Equal(t, math.Vec3{Y: 1, Z: -14}, f.scene.Mirror().Center())
	assert.Equal(t, float32(0.25), f.scene.Mirror().Alpha)
}

func TestStencilFrameDrawsSceneTwice(t *testing.T) {
	f := newFixture()
	f.scene.Render(snapshot(mirror.StencilMasked))

	assert.Equal(t, 8, f.sphereDraws(), "four spheres, reflected and real")
	for i, g := range f.spheres {
		assert.Equal(t, 2, g.draws, "body %d", i)
	}
	assert.Equal(t, 2, f.ship.draws)
	assert.Equal(t, 2, f.glass.draws, "mask and glass")

	// The real pass runs last: its lights are in the real camera space.
	view := snapshot(mirror.StencilMasked).View.Matrix()
	assert.Equal(t, math.Vec3{}, f.lit.vec3["viewPos"])
	assert.True(t, f.lit.vec3["lightPos"].ApproxEqual(view.TransformPoint(math.Vec3{}), 1e-5))
	assert.Equal(t, math.Vec4{}, f.lit.vec4["clipPlane"])
}

func TestDrawReflectedUsesReflectedLights(t *testing.T) {
	f := newFixture()
	snap := snapshot(mirror.StencilMasked)
	f.scene.frame = snap

	reflected := f.scene.Mirror().ReflectedView(snap.View.Matrix())
	clip := math.Vec4{0, 0, 1, 14}
	f.scene.DrawReflected(reflected, f.scene.Projection(), clip)

	assert.Equal(t, clip, f.lit.vec4["clipPlane"])
	assert.Equal(t, reflected, f.lit.mats["view"])

	wantSun := reflected.TransformPoint(math.Vec3{})
	assert.True(t, f.lit.vec3["lightPos"].ApproxEqual(wantSun, 1e-5))
	wantSpot := reflected.TransformDirection(snap.Lights.FrontSpot.Direction).Normalize()
	assert.True(t, f.lit.vec3["spotLightDir"].ApproxEqual(wantSpot, 1e-5))
}

func TestTextureFrameWithoutTargetFallsBackToGlass(t *testing.T) {
	f := newFixture()
	f.scene.Render(snapshot(mirror.TextureComposited))

	assert.Equal(t, 4, f.sphereDraws())
	assert.Equal(t, 1, f.glass.draws)
	assert.Empty(t, f.state.clip)
}

func TestResizeUpdatesProjection(t *testing.T) {
	f := newFixture()
	before := f.scene.Projection()

	require.NoError(t, f.scene.Resize(1600, 600))
	after := f.scene.Projection()

	assert.NotEqual(t, before, after)
	assert.InDelta(t, before[0]/2, after[0], 1e-6, "x scale halves when aspect doubles")
	assert.Equal(t, before[5], after[5])
}

func TestDestroyReleasesEveryBodyOnce(t *testing.T) {
	f := newFixture()
	f.scene.Destroy()

	for i, g := range f.spheres {
		assert.Equal(t, 1, g.destroys, "body %d", i)
	}
	assert.Equal(t, 1, f.ship.destroys)
	assert.Equal(t, 1, f.glass.destroys)
}

func TestReflectionPixelsWithoutTarget(t *testing.T) {
	f := newFixture()
	pixels, w, h, ok := f.scene.ReflectionPixels()
	assert.False(t, ok)
	assert.Nil(t, pixels)
	assert.Zero(t, w)
	assert.Zero(t, h)
}
