// Package config handles renderer configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Renderer RendererConfig `yaml:"renderer"`
	Demo     DemoConfig     `yaml:"demo"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// RendererConfig holds pipeline settings.
type RendererConfig struct {
	FOV      float32  `yaml:"fov"`       // horizontal field of view, degrees
	Mode     string   `yaml:"mode"`      // solid, solid+wireframe or wireframe
	SkyColor [3]uint8 `yaml:"sky_color"` // frame clear color
	ShowHUD  bool     `yaml:"show_hud"`
}

// DemoConfig holds settings for the terrain demo.
type DemoConfig struct {
	GridSize      int     `yaml:"grid_size"`      // cells per side
	GridSpacing   float32 `yaml:"grid_spacing"`   // world units per cell
	WaveAmplitude float32 `yaml:"wave_amplitude"` // terrain wave height
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
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
		},
		Renderer: RendererConfig{
			FOV:      60,
			Mode:     "solid",
			SkyColor: [3]uint8{240, 240, 255},
			ShowHUD:  true,
		},
		Demo: DemoConfig{
			GridSize:      20,
			GridSpacing:   20,
			WaveAmplitude: 20,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
