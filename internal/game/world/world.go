// Package world holds the simulated solar system: orbiting bodies, the
// ship, the camera rig and the runtime toggles.
package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/helios/internal/config"
	"github.com/Faultbox/helios/internal/engine/camera"
	"github.com/Faultbox/helios/internal/engine/input"
	"github.com/Faultbox/helios/internal/engine/lighting"
	"github.com/Faultbox/helios/internal/engine/mirror"
	"github.com/Faultbox/helios/internal/game/entity"
	"github.com/Faultbox/helios/internal/logger"
	"github.com/Faultbox/helios/pkg/math"
)

// Toggles are the switches flipped from the keyboard.
type Toggles struct {
	Night     bool
	Fog       bool
	Blinn     bool
	Paused    bool
	Technique mirror.Technique
}

// World is the simulation state of one frame. It owns no GL resources.
type World struct {
	Sun     entity.Body
	Planets []entity.Body
	Ship    *entity.Ship
	Cameras *camera.Rig
	Toggles Toggles

	OrbitSpeed float32
	FogDensity float32
	FogColor   math.Vec3

	log *zap.Logger
}

// New builds the world from the scene settings.
func New(cfg config.SceneConfig) (*World, error) {
	technique, err := mirror.ParseTechnique(cfg.Technique)
	if err != nil {
		return nil, err
	}

	return &World{
		Sun:     entity.Sun(),
		Planets: entity.Planets(),
		Ship:    entity.NewShip(),
		Cameras: camera.NewRig(),
		Toggles: Toggles{
			Night:     cfg.Night,
			Fog:       cfg.Fog,
			Blinn:     cfg.Blinn,
			Technique: technique,
		},
		OrbitSpeed: cfg.OrbitSpeed,
		FogDensity: cfg.FogDensity,
		FogColor:   math.Vec3{X: cfg.FogColor[0], Y: cfg.FogColor[1], Z: cfg.FogColor[2]},
		log:        logger.Named("world"),
	}, nil
}

// Update handles toggles, then advances the orbits, the ship and the
// active camera by dt seconds.
func (w *World) Update(dt float32, in *input.State) {
	w.handleToggles(in)

	if !w.Toggles.Paused {
		for i := range w.Planets {
			w.Planets[i].Advance(dt, w.OrbitSpeed)
		}
	}
	w.Ship.Update(dt, in)
	w.Cameras.Update(dt, in)
}

func (w *World) handleToggles(in *input.State) {
	if in.Pressed(input.KeyC) {
		w.log.Info("camera", zap.Stringer("mode", w.Cameras.Cycle()))
	}
	if in.Pressed(input.KeyN) {
		w.Toggles.Night = !w.Toggles.Night
		w.log.Info("night", zap.Bool("on", w.Toggles.Night))
	}
	if in.Pressed(input.KeyF) {
		w.Toggles.Fog = !w.Toggles.Fog
		w.log.Info("fog", zap.Bool("on", w.Toggles.Fog))
	}
	if in.Pressed(input.KeyB) {
		w.Toggles.Blinn = !w.Toggles.Blinn
		w.log.Info("specular", zap.Bool("blinn", w.Toggles.Blinn))
	}
	if in.Pressed(input.KeyM) {
		w.Toggles.Technique = w.Toggles.Technique.Next()
		w.log.Info("mirror technique", zap.Stringer("technique", w.Toggles.Technique))
	}
	if in.Pressed(input.KeyP) {
		w.Toggles.Paused = !w.Toggles.Paused
	}
}

// View resolves the active camera.
func (w *World) View() camera.View {
	return w.Cameras.View(camera.Targets{
		Planet:      w.Planets[0].Position(),
		Watched:     w.Planets[len(w.Planets)-1].Position(),
		ShipPos:     w.Ship.Position,
		ShipForward: w.Ship.Forward(),
	})
}

// Preset returns the light colors for the current time of day.
func (w *World) Preset() lighting.Preset {
	if w.Toggles.Night {
		return lighting.NightPreset()
	}
	return lighting.DayPreset()
}

// Lights returns the world-space light set seen from eye.
func (w *World) Lights(eye math.Vec3) lighting.Uniforms {
	fog := lighting.Fog{Enabled: w.Toggles.Fog, Density: w.FogDensity, Color: w.FogColor}
	return lighting.Build(w.Preset(), eye, w.Ship.Position, w.Ship.Forward(), fog, w.Toggles.Blinn)
}

// Apply writes the runtime toggles back into cfg so they can be saved.
func (w *World) Apply(cfg *config.SceneConfig) {
	cfg.Night = w.Toggles.Night
	cfg.Fog = w.Toggles.Fog
	cfg.Blinn = w.Toggles.Blinn
	cfg.Technique = w.Toggles.Technique.String()
}
