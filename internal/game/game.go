// Package game implements the main loop: input, simulation, rendering.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/helios/internal/config"
	"github.com/Faultbox/helios/internal/engine/audio"
	"github.com/Faultbox/helios/internal/engine/camera"
	"github.com/Faultbox/helios/internal/engine/debug"
	"github.com/Faultbox/helios/internal/engine/input"
	"github.com/Faultbox/helios/internal/engine/renderer"
	"github.com/Faultbox/helios/internal/engine/scene"
	"github.com/Faultbox/helios/internal/engine/window"
	"github.com/Faultbox/helios/internal/game/world"
	"github.com/Faultbox/helios/internal/logger"
	"github.com/Faultbox/helios/pkg/math"
)

// Title is the window title.
const Title = "Helios"

// maxFrameTime caps dt so a stall (window drag, breakpoint) does not fling
// the ship across the system.
const maxFrameTime = 0.1

// Game is the main application instance.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	state    *input.State
	scene    *scene.Scene
	world    *world.World
	audio    *audio.Manager
	shots    *debug.ScreenshotCapture
	dumps    *debug.ScreenshotCapture
	log      *zap.Logger

	clearColor math.Vec3
}

// New creates the window, GL state and scene.
func New(cfg *config.Config) (*Game, error) {
	log := logger.Named("game")
	log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("technique", cfg.Scene.Technique),
	)

	g := &Game{
		config:     cfg,
		log:        log,
		input:      input.New(),
		state:      input.NewState(),
		audio:      audio.New(),
		shots:      debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "helios"),
		dumps:      debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "reflection"),
		clearColor: math.Vec3{X: 0.02, Y: 0.02, Z: 0.06},
	}

	var err error
	g.world, err = world.New(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	// Window first: it creates the GL context.
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := g.window.GetSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:     width,
		Height:    height,
		CullFaces: cfg.Graphics.CullFaces,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.scene, err = scene.New(sceneConfig(cfg, width, height))
	if err != nil {
		g.renderer.Close()
		g.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	g.audio.SetMasterVolume(cfg.Audio.MasterVolume)
	g.audio.SetEngineVolume(cfg.Audio.EngineVolume)
	g.audio.SetEffectsVolume(cfg.Audio.EffectsVolume)
	if cfg.Audio.Enabled {
		// A missing sound device is not fatal; the manager stays silent.
		if err := g.audio.Init(); err != nil {
			log.Warn("audio unavailable", zap.Error(err))
		}
	}

	g.state.Width, g.state.Height = width, height
	log.Info("initialized")
	return g, nil
}

func sceneConfig(cfg *config.Config, width, height int) scene.Config {
	s := cfg.Scene
	return scene.Config{
		Width:          int32(width),
		Height:         int32(height),
		FOVDegrees:     cfg.Graphics.FOVDegrees,
		Near:           cfg.Graphics.Near,
		Far:            cfg.Graphics.Far,
		MirrorPosition: math.Vec3{X: s.MirrorPosition[0], Y: s.MirrorPosition[1], Z: s.MirrorPosition[2]},
		MirrorRotation: math.Vec3{X: s.MirrorRotation[0], Y: s.MirrorRotation[1], Z: s.MirrorRotation[2]},
		MirrorWidth:    s.MirrorWidth,
		MirrorHeight:   s.MirrorHeight,
		MirrorAlpha:    s.MirrorAlpha,
		ShaderDir:      cfg.Shaders.Dir,
		UniformChecks:  cfg.Debug.UniformChecks,
	}
}

// Run executes the main loop until quit.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := min(now.Sub(lastTime).Seconds(), maxFrameTime)
		lastTime = now

		if g.input.Update(g.state) {
			g.running = false
			break
		}

		if g.state.Resized {
			if err := g.resize(g.window.GetSize()); err != nil {
				return fmt.Errorf("resize error: %w", err)
			}
		}

		toggles, mode := g.world.Toggles, g.world.Cameras.Mode()
		g.world.Update(float32(dt), g.state)
		g.handleHotkeys()
		g.updateAudio(toggles, mode)

		g.renderer.BeginFrame(g.clearColor)
		g.scene.Render(Snapshot(g.world))

		if g.state.Pressed(input.KeyF12) {
			g.screenshot()
		}
		if g.state.Pressed(input.KeyF11) {
			g.dumpReflection()
		}

		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Stringer("camera", g.world.Cameras.Mode()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) resize(width, height int) error {
	g.renderer.Resize(width, height)
	return g.scene.Resize(int32(width), int32(height))
}

func (g *Game) handleHotkeys() {
	if g.state.Pressed(input.KeyF5) {
		g.world.Apply(&g.config.Scene)
		path, err := g.config.Save()
		if err != nil {
			g.log.Error("saving config", zap.Error(err))
		} else {
			g.log.Info("config saved", zap.String("path", path))
		}
	}
}

func (g *Game) updateAudio(toggles world.Toggles, mode camera.Mode) {
	g.audio.SetThrottle(float64(g.world.Ship.Throttle))
	if tone, ok := feedbackTone(toggles, g.world.Toggles, mode, g.world.Cameras.Mode()); ok {
		if err := g.audio.PlayBlip(tone); err != nil && g.audio.IsInitialized() {
			g.log.Debug("blip", zap.Error(err))
		}
	}
}

// dumpReflection saves the offscreen reflection. It only holds an image
// while the texture technique is active.
func (g *Game) dumpReflection() {
	pixels, w, h, ok := g.scene.ReflectionPixels()
	if !ok {
		g.log.Warn("no reflection target")
		return
	}
	name, err := g.dumps.CaptureFromPixels(pixels, int(w), int(h))
	if err != nil {
		g.log.Error("reflection dump failed", zap.Error(err))
		return
	}
	g.log.Info("reflection saved", zap.String("file", name), zap.Stringer("technique", g.world.Toggles.Technique))
}

func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadScreen()
	name, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		g.log.Error("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("file", name))
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.scene != nil {
		g.scene.Destroy()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
