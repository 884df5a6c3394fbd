// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Lighting LightingConfig `yaml:"lighting"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds orbit camera limits. Angles are in degrees here;
// the camera package works in radians.
type CameraConfig struct {
	FOV          float32 `yaml:"fov"`
	MarginFactor float32 `yaml:"margin_factor"`
	MinDistance  float32 `yaml:"min_distance"`
	MaxDistance  float32 `yaml:"max_distance"`
	MinElevation float32 `yaml:"min_elevation"`
	MaxElevation float32 `yaml:"max_elevation"`
	OrbitSpeed   float32 `yaml:"orbit_speed"` // radians per pixel
	ZoomStep     float32 `yaml:"zoom_step"`   // wheel multiplier
	PanSpeed     float32 `yaml:"pan_speed"`   // target units per pixel, scaled by distance
}

// LightingConfig holds the fixed light rig.
type LightingConfig struct {
	KeyLongitude float32    `yaml:"key_longitude"` // degrees around Y
	KeyLatitude  float32    `yaml:"key_latitude"`  // degrees above horizon
	Ambient      [3]float32 `yaml:"ambient"`
	Diffuse      [3]float32 `yaml:"diffuse"`
}

// SceneConfig holds startup scene settings.
type SceneConfig struct {
	Family string `yaml:"family"`
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
		},
		Camera: CameraConfig{
			FOV:          45,
			MarginFactor: 1.2,
			MinDistance:  0.5,
			MaxDistance:  500,
			MinElevation: -85,
			MaxElevation: 85,
			OrbitSpeed:   0.008,
			ZoomStep:     1.1,
			PanSpeed:     0.002,
		},
		Lighting: LightingConfig{
			KeyLongitude: -30,
			KeyLatitude:  60,
			Ambient:      [3]float32{0.3, 0.3, 0.35},
			Diffuse:      [3]float32{0.9, 0.9, 0.9},
		},
		Scene: SceneConfig{
			Family: "vase",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
