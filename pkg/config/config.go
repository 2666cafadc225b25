package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatPPM = "ppm"
	FormatPNG = "png"
)

// Scene names
const (
	SceneCover        = "cover"
	SceneThreeSpheres = "three-spheres"
)

// CameraOverrides optionally replaces camera intrinsics of the selected
// scene. Zero values leave the scene's defaults untouched.
type CameraOverrides struct {
	VFov          float64 `yaml:"vfov"`
	Aperture      float64 `yaml:"aperture"`
	FocusDistance float64 `yaml:"focus_distance"`
	AspectRatio   float64 `yaml:"aspect_ratio"`
}

// Config holds the render settings. It configures rendering parameters
// only; scenes themselves are constructed in code.
type Config struct {
	Scene           string          `yaml:"scene"`
	Width           int             `yaml:"width"`
	SamplesPerPixel int             `yaml:"samples_per_pixel"`
	MaxDepth        int             `yaml:"max_depth"`
	Seed            int64           `yaml:"seed"`
	Workers         int             `yaml:"workers"`
	Output          string          `yaml:"output"`
	Format          string          `yaml:"format"`
	Camera          CameraOverrides `yaml:"camera"`
}

// Default returns the default render settings
func Default() Config {
	return Config{
		Scene:           SceneCover,
		Width:           400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
		Workers:         0,
		Output:          "result/image.ppm",
		Format:          FormatPPM,
	}
}

// Load reads a YAML render-settings file layered over the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings before any rendering work starts
func (c Config) Validate() error {
	switch c.Scene {
	case SceneCover, SceneThreeSpheres:
	default:
		return fmt.Errorf("unknown scene %q (want %q or %q)", c.Scene, SceneCover, SceneThreeSpheres)
	}
	switch c.Format {
	case FormatPPM, FormatPNG:
	default:
		return fmt.Errorf("unknown format %q (want %q or %q)", c.Format, FormatPPM, FormatPNG)
	}
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples_per_pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}
