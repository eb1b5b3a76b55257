// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Shaders  ShadersConfig  `yaml:"shaders"`
	Audio    AudioConfig    `yaml:"audio"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOVDegrees float32 `yaml:"fov_degrees"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
	CullFaces  bool    `yaml:"cull_faces"`
}

// SceneConfig holds the initial scene toggles and mirror placement.
type SceneConfig struct {
	Technique      string     `yaml:"technique"` // "stencil" or "texture"
	MirrorPosition [3]float32 `yaml:"mirror_position"`
	MirrorRotation [3]float32 `yaml:"mirror_rotation"` // radians
	MirrorWidth    float32    `yaml:"mirror_width"`
	MirrorHeight   float32    `yaml:"mirror_height"`
	MirrorAlpha    float32    `yaml:"mirror_alpha"`
	Fog            bool       `yaml:"fog"`
	FogDensity     float32    `yaml:"fog_density"`
	FogColor       [3]float32 `yaml:"fog_color"`
	Night          bool       `yaml:"night"`
	Blinn          bool       `yaml:"blinn"`
	OrbitSpeed     float32    `yaml:"orbit_speed"` // multiplier on the per-planet speeds
}

// ShadersConfig points at an optional directory overriding the embedded GLSL.
type ShadersConfig struct {
	Dir string `yaml:"dir"`
}

// AudioConfig holds the ship sound settings. Volumes are 0 to 1.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	MasterVolume  float64 `yaml:"master_volume"`
	EngineVolume  float64 `yaml:"engine_volume"`
	EffectsVolume float64 `yaml:"effects_volume"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	UniformChecks bool   `yaml:"uniform_checks"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FOVDegrees: 45,
			Near:       0.1,
			Far:        100,
			CullFaces:  true,
		},
		Scene: SceneConfig{
			Technique:      "stencil",
			MirrorPosition: [3]float32{0, 1, -14},
			MirrorWidth:    10,
			MirrorHeight:   6,
			MirrorAlpha:    0.25,
			Fog:            false,
			FogDensity:     0.04,
			FogColor:       [3]float32{0.02, 0.02, 0.06},
			Night:          false,
			Blinn:          true,
			OrbitSpeed:     1,
		},
		Audio: AudioConfig{
			Enabled:       true,
			MasterVolume:  0.8,
			EngineVolume:  0.5,
			EffectsVolume: 0.7,
		},
		Debug: DebugConfig{
			UniformChecks: false,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
