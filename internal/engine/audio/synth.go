package audio

import (
	stdmath "math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
)

const (
	humBaseHz  = 55.0
	humRangeHz = 45.0
	// humRamp is how long the hum takes to go from idle to full throttle.
	humRamp = 150 * time.Millisecond
)

// Hum is an endless engine tone. Pitch and loudness follow the throttle,
// ramping so that key presses do not click.
type Hum struct {
	sampleRate beep.SampleRate
	target     atomic.Uint64 // float64 bits, written from the game loop

	level float64
	phase float64
}

// NewHum returns a silent hum.
func NewHum(sr beep.SampleRate) *Hum {
	return &Hum{sampleRate: sr}
}

// SetThrottle sets the target load, clamped to [0, 1].
func (h *Hum) SetThrottle(t float64) {
	h.target.Store(stdmath.Float64bits(clamp(t, 0, 1)))
}

// Throttle returns the target load.
func (h *Hum) Throttle() float64 {
	return stdmath.Float64frombits(h.target.Load())
}

// Level returns the current, ramped load.
func (h *Hum) Level() float64 {
	return h.level
}

// Stream implements beep.Streamer. It never drains.
func (h *Hum) Stream(samples [][2]float64) (int, bool) {
	target := h.Throttle()
	step := 1 / float64(h.sampleRate.N(humRamp))
	rate := float64(h.sampleRate)

	for i := range samples {
		if h.level < target {
			h.level = min(h.level+step, target)
		} else if h.level > target {
			h.level = max(h.level-step, target)
		}

		h.phase += (humBaseHz + humRangeHz*h.level) / rate
		h.phase -= stdmath.Floor(h.phase)

		v := h.level * (0.7*stdmath.Sin(2*stdmath.Pi*h.phase) + 0.3*stdmath.Sin(4*stdmath.Pi*h.phase))
		samples[i][0], samples[i][1] = v, v
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (h *Hum) Err() error {
	return nil
}

// Blip is a sine tone with a linear decay. It drains after its duration.
type Blip struct {
	sampleRate beep.SampleRate
	freq       float64
	pos, total int
}

// NewBlip returns a tone of freq Hz lasting d.
func NewBlip(sr beep.SampleRate, freq float64, d time.Duration) *Blip {
	return &Blip{sampleRate: sr, freq: freq, total: sr.N(d)}
}

// Len returns the length in samples.
func (b *Blip) Len() int {
	return b.total
}

// Stream implements beep.Streamer.
func (b *Blip) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= b.total {
		return 0, false
	}
	rate := float64(b.sampleRate)
	n := 0
	for n < len(samples) && b.pos < b.total {
		env := 1 - float64(b.pos)/float64(b.total)
		v := 0.5 * env * stdmath.Sin(2*stdmath.Pi*b.freq*float64(b.pos)/rate)
		samples[n][0], samples[n][1] = v, v
		b.pos++
		n++
	}
	return n, true
}

// Err implements beep.Streamer.
func (b *Blip) Err() error {
	return nil
}
