// Package audio synthesizes the ship's engine hum and the short blips played
// when a scene toggle flips. Nothing is loaded from disk.
package audio

import (
	"errors"
	"fmt"
	stdmath "math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"

	"github.com/Faultbox/helios/internal/logger"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Blip pitches in Hz.
const (
	BlipOn     = 880.0
	BlipOff    = 440.0
	BlipSwitch = 660.0
)

const blipLength = 80 * time.Millisecond

// ErrNotInitialized is returned when playing before Init succeeded.
var ErrNotInitialized = errors.New("audio not initialized")

// Manager owns the speaker and mixes the hum with the blips.
//
// All methods are safe to call before Init or after a failed Init; they
// then only record settings.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	// Volume settings (0.0 to 1.0)
	masterVolume  float64
	engineVolume  float64
	effectsVolume float64

	hum       *Hum
	humVolume *effects.Volume
	mixer     *beep.Mixer

	log *zap.Logger
}

// New creates a new audio manager.
func New() *Manager {
	m := &Manager{
		sampleRate:    DefaultSampleRate,
		masterVolume:  1.0,
		engineVolume:  0.5,
		effectsVolume: 0.7,
		hum:           NewHum(DefaultSampleRate),
		mixer:         &beep.Mixer{},
		log:           logger.Named("audio"),
	}
	m.humVolume = &effects.Volume{Streamer: m.hum, Base: 10}
	applyLevel(m.humVolume, m.masterVolume*m.engineVolume)
	return m
}

// Init opens the speaker and starts the hum at zero throttle.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	m.mixer.Add(m.humVolume)
	speaker.Play(m.mixer)

	m.initialized = true
	m.log.Info("speaker ready", zap.Int("sample_rate", int(m.sampleRate)))
	return nil
}

// Close stops playback and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.updateEngineVolume()
}

// SetEngineVolume sets the hum volume (0.0 to 1.0).
func (m *Manager) SetEngineVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.engineVolume = clamp(vol, 0, 1)
	m.updateEngineVolume()
}

// SetEffectsVolume sets the blip volume (0.0 to 1.0).
func (m *Manager) SetEffectsVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.effectsVolume = clamp(vol, 0, 1)
}

// MasterVolume returns the master volume.
func (m *Manager) MasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// EngineVolume returns the hum volume.
func (m *Manager) EngineVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.engineVolume
}

// EffectsVolume returns the blip volume.
func (m *Manager) EffectsVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.effectsVolume
}

// SetThrottle sets the engine load the hum glides toward.
func (m *Manager) SetThrottle(t float64) {
	m.hum.SetThrottle(t)
}

// PlayBlip mixes a short decaying tone at freq Hz over the hum.
func (m *Manager) PlayBlip(freq float64) error {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.masterVolume * m.effectsVolume
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}

	v := &effects.Volume{Streamer: NewBlip(m.sampleRate, freq, blipLength), Base: 10}
	applyLevel(v, vol)

	speaker.Lock()
	m.mixer.Add(v)
	speaker.Unlock()
	return nil
}

func (m *Manager) updateEngineVolume() {
	if m.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	applyLevel(m.humVolume, m.masterVolume*m.engineVolume)
}

// applyLevel maps a linear 0-1 level onto v. With Base 10 the gain is
// 10^Volume, so Volume = log10(level) reproduces the level exactly.
func applyLevel(v *effects.Volume, level float64) {
	if level <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = stdmath.Log10(level)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
