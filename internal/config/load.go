package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/helios/internal/engine/mirror"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the renderer cannot start with. The technique
// name is rewritten to its canonical spelling.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		return fmt.Errorf("invalid depth range near=%g far=%g", c.Graphics.Near, c.Graphics.Far)
	}
	technique, err := mirror.ParseTechnique(c.Scene.Technique)
	if err != nil {
		return err
	}
	c.Scene.Technique = technique.String()
	if c.Scene.MirrorWidth <= 0 || c.Scene.MirrorHeight <= 0 {
		return fmt.Errorf("invalid mirror size %gx%g", c.Scene.MirrorWidth, c.Scene.MirrorHeight)
	}
	for _, v := range []float64{c.Audio.MasterVolume, c.Audio.EngineVolume, c.Audio.EffectsVolume} {
		if v < 0 || v > 1 {
			return fmt.Errorf("audio volume %g outside [0, 1]", v)
		}
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Helios")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Helios")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "helios")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "helios")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
