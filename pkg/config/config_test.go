package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, SceneCover, cfg.Scene)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 100, cfg.SamplesPerPixel)
	assert.Equal(t, 50, cfg.MaxDepth)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, "result/image.ppm", cfg.Output)
	assert.Equal(t, FormatPPM, cfg.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scene: three-spheres
width: 1200
samples_per_pixel: 500
format: png
camera:
  vfov: 25
  aperture: 0.6
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, SceneThreeSpheres, cfg.Scene)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 500, cfg.SamplesPerPixel)
	assert.Equal(t, FormatPNG, cfg.Format)
	assert.Equal(t, 25.0, cfg.Camera.VFov)
	assert.Equal(t, 0.6, cfg.Camera.Aperture)

	// Unset keys keep the defaults
	assert.Equal(t, 50, cfg.MaxDepth)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "result/image.ppm", cfg.Output)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "reading config")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [not an int"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown scene", func(c *Config) { c.Scene = "cornell-box" }, "unknown scene"},
		{"unknown format", func(c *Config) { c.Format = "jpeg" }, "unknown format"},
		{"zero width", func(c *Config) { c.Width = 0 }, "width must be positive"},
		{"negative samples", func(c *Config) { c.SamplesPerPixel = -1 }, "samples_per_pixel must be positive"},
		{"zero depth", func(c *Config) { c.MaxDepth = 0 }, "max_depth must be positive"},
		{"negative workers", func(c *Config) { c.Workers = -2 }, "workers must not be negative"},
		{"empty output", func(c *Config) { c.Output = "" }, "output path must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}
