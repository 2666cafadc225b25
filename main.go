package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tdegroot/go-pathtracer/pkg/config"
	"github.com/tdegroot/go-pathtracer/pkg/core"
	"github.com/tdegroot/go-pathtracer/pkg/geometry"
	"github.com/tdegroot/go-pathtracer/pkg/renderer"
	"github.com/tdegroot/go-pathtracer/pkg/scene"
)

const logFileName = "pathtracer.log"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "pathtracer",
		Short: "Offline Monte Carlo path tracer",
		Long: `Renders a scene of spheres with diffuse, metal, and glass materials
by stochastic path tracing and writes the result as plain PPM or PNG.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				fileCfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				// Explicit flags take precedence over the config file
				mergeFileConfig(cmd, &cfg, fileCfg)
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to a YAML render-settings file")
	flags.StringVar(&cfg.Scene, "scene", cfg.Scene,
		fmt.Sprintf("scene to render: %q or %q", config.SceneCover, config.SceneThreeSpheres))
	flags.IntVar(&cfg.Width, "width", cfg.Width, "image width in pixels")
	flags.IntVar(&cfg.SamplesPerPixel, "samples", cfg.SamplesPerPixel, "samples per pixel")
	flags.IntVar(&cfg.MaxDepth, "depth", cfg.MaxDepth, "maximum ray bounce depth")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed; a fixed seed reproduces the image exactly")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel workers (0 = CPU count)")
	flags.StringVar(&cfg.Output, "output", cfg.Output, "output file path")
	flags.StringVar(&cfg.Format, "format", cfg.Format,
		fmt.Sprintf("output format: %q or %q", config.FormatPPM, config.FormatPNG))

	return cmd
}

// mergeFileConfig applies the config file under any flags the user set
// explicitly on the command line
func mergeFileConfig(cmd *cobra.Command, cfg *config.Config, file config.Config) {
	changed := cmd.Flags().Changed
	if !changed("scene") {
		cfg.Scene = file.Scene
	}
	if !changed("width") {
		cfg.Width = file.Width
	}
	if !changed("samples") {
		cfg.SamplesPerPixel = file.SamplesPerPixel
	}
	if !changed("depth") {
		cfg.MaxDepth = file.MaxDepth
	}
	if !changed("seed") {
		cfg.Seed = file.Seed
	}
	if !changed("workers") {
		cfg.Workers = file.Workers
	}
	if !changed("output") {
		cfg.Output = file.Output
	}
	if !changed("format") {
		cfg.Format = file.Format
	}
	cfg.Camera = file.Camera
}

func run(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	selected, err := buildScene(cfg)
	if err != nil {
		return err
	}
	if err := selected.Validate(); err != nil {
		return fmt.Errorf("invalid scene: %w", err)
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	bar := progressbar.NewOptions(selected.Camera.ImageHeight(),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	r := renderer.NewRenderer(selected, renderer.Config{
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
		Seed:            cfg.Seed,
		NumWorkers:      cfg.Workers,
		Progress: func(done, total int) {
			_ = bar.Set(done)
		},
	}, logger)

	frame, stats, err := r.RenderFrame(ctx)
	if err != nil {
		return err
	}
	_ = bar.Finish()

	file, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cfg.Output, err)
	}
	defer file.Close()

	switch cfg.Format {
	case config.FormatPNG:
		err = renderer.WritePNG(file, frame)
	default:
		err = renderer.WritePPM(file, frame)
	}
	if err != nil {
		return err
	}

	logger.Printf("Wrote %s (%d pixels, %d samples, %v)\n",
		cfg.Output, stats.TotalPixels, stats.TotalSamples, stats.Elapsed)
	return nil
}

// buildScene constructs the selected scene with camera and sampling
// parameters from the settings applied on top of the scene defaults
func buildScene(cfg config.Config) (*scene.Scene, error) {
	overrides := geometry.CameraConfig{
		Width:         cfg.Width,
		VFov:          cfg.Camera.VFov,
		Aperture:      cfg.Camera.Aperture,
		FocusDistance: cfg.Camera.FocusDistance,
		AspectRatio:   cfg.Camera.AspectRatio,
	}

	var s *scene.Scene
	switch cfg.Scene {
	case config.SceneCover:
		s = scene.NewCoverScene(cfg.Seed, overrides)
	case config.SceneThreeSpheres:
		s = scene.NewThreeSphereScene(overrides)
	default:
		return nil, fmt.Errorf("unknown scene %q", cfg.Scene)
	}

	s.SamplingConfig.SamplesPerPixel = cfg.SamplesPerPixel
	s.SamplingConfig.MaxDepth = cfg.MaxDepth
	return s, nil
}

// newLogger sets up a logger writing timestamped lines to stderr and to the
// log file next to the binary
func newLogger() core.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.WithError(err).Warn("could not open log file, logging to stderr only")
		return log
	}
	log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	return log
}
