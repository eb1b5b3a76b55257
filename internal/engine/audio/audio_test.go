package audio

import (
	stdmath "math"
	"testing"
	"time"

	"github.com/gopxl/beep/v2/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyLevel(t *testing.T) {
	tests := []struct {
		level  float64
		silent bool
	}{
		{1.0, false},
		{0.5, false},
		{0.25, false},
		{0.0, true},
	}

	for _, tt := range tests {
		v := &effects.Volume{Base: 10}
		applyLevel(v, tt.level)
		assert.Equal(t, tt.silent, v.Silent, "level %g", tt.level)
		if !tt.silent {
			assert.InDelta(t, tt.level, stdmath.Pow(v.Base, v.Volume), 1e-9)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, clamp(tt.v, tt.lo, tt.hi))
	}
}

func TestNewManager(t *testing.T) {
	m := New()
	require.NotNil(t, m)

	assert.Equal(t, 1.0, m.MasterVolume())
	assert.Equal(t, 0.5, m.EngineVolume())
	assert.Equal(t, 0.7, m.EffectsVolume())
	assert.False(t, m.IsInitialized())
}

func TestSetVolume(t *testing.T) {
	m := New()

	m.SetMasterVolume(0.5)
	assert.Equal(t, 0.5, m.MasterVolume())

	m.SetMasterVolume(2.0)
	assert.Equal(t, 1.0, m.MasterVolume(), "clamped")

	m.SetMasterVolume(-1.0)
	assert.Equal(t, 0.0, m.MasterVolume(), "clamped")
	assert.True(t, m.humVolume.Silent)

	m.SetMasterVolume(1)
	m.SetEngineVolume(0.1)
	assert.InDelta(t, 0.1, stdmath.Pow(10, m.humVolume.Volume), 1e-9)
}

func TestUninitializedManager(t *testing.T) {
	m := New()
	m.SetThrottle(0.8)
	assert.Equal(t, 0.8, m.hum.Throttle())
	assert.ErrorIs(t, m.PlayBlip(BlipOn), ErrNotInitialized)
	m.Close()
}

func TestHumIsSilentAtIdle(t *testing.T) {
	h := NewHum(DefaultSampleRate)
	buf := make([][2]float64, 512)

	n, ok := h.Stream(buf)
	assert.Equal(t, len(buf), n)
	assert.True(t, ok)
	for _, s := range buf {
		assert.Zero(t, s[0])
	}
}

func TestHumRampsToThrottle(t *testing.T) {
	h := NewHum(DefaultSampleRate)
	h.SetThrottle(3)
	assert.Equal(t, 1.0, h.Throttle(), "clamped")

	buf := make([][2]float64, 256)
	h.Stream(buf)
	assert.Greater(t, h.Level(), 0.0)
	assert.Less(t, h.Level(), 1.0, "ramp takes longer than one buffer")

	// Run past the ramp.
	for i := 0; i < DefaultSampleRate.N(humRamp)/len(buf)+2; i++ {
		h.Stream(buf)
	}
	assert.Equal(t, 1.0, h.Level())

	for _, s := range buf {
		assert.LessOrEqual(t, stdmath.Abs(s[0]), 1.0)
		assert.Equal(t, s[0], s[1])
	}

	h.SetThrottle(0)
	h.Stream(buf)
	assert.Less(t, h.Level(), 1.0)
}

func TestBlipDrains(t *testing.T) {
	b := NewBlip(DefaultSampleRate, BlipOn, 10*time.Millisecond)
	require.Equal(t, 441, b.Len())

	buf := make([][2]float64, 300)
	n, ok := b.Stream(buf)
	assert.Equal(t, 300, n)
	assert.True(t, ok)

	n, ok = b.Stream(buf)
	assert.Equal(t, 141, n)
	assert.True(t, ok)

	n, ok = b.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestBlipDecays(t *testing.T) {
	b := NewBlip(DefaultSampleRate, BlipOff, 20*time.Millisecond)
	buf := make([][2]float64, b.Len())
	b.Stream(buf)

	peak := func(s [][2]float64) float64 {
		p := 0.0
		for _, v := range s {
			p = max(p, stdmath.Abs(v[0]))
		}
		return p
	}
	head := peak(buf[:len(buf)/4])
	tail := peak(buf[3*len(buf)/4:])
	assert.Greater(t, head, tail)
	assert.LessOrEqual(t, head, 0.5)
}
