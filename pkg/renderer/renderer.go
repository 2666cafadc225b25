package renderer

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/tdegroot/go-pathtracer/pkg/core"
	"github.com/tdegroot/go-pathtracer/pkg/geometry"
)

// Shadow acne guard: rays re-intersecting their own origin surface due to
// floating-point round-off are rejected by this lower parameter bound.
const hitEpsilon = 0.001

// Scene interface to avoid circular imports with the scene package
type Scene interface {
	GetCamera() *geometry.Camera
	GetWorld() *geometry.World
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Config contains rendering configuration
type Config struct {
	SamplesPerPixel int                        // Number of rays per pixel
	MaxDepth        int                        // Maximum ray bounce depth
	Seed            int64                      // Base seed; each row derives its own RNG from it
	NumWorkers      int                        // Number of parallel workers (0 = CPU count)
	Progress        func(rowsDone, totalRows int) // Optional per-row progress callback
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Renderer traces one frame of a scene. The scene is read-only for the
// duration of the render.
type Renderer struct {
	scene  Scene
	config Config
	logger core.Logger
}

// NewRenderer creates a new renderer
func NewRenderer(scene Scene, config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:  scene,
		config: config,
		logger: logger,
	}
}

// Render traces the frame and streams it to out as plain P3 PPM. This is
// the single operation the renderer exposes to its caller; write failures
// abort the render and surface the underlying cause.
func (r *Renderer) Render(ctx context.Context, out io.Writer) error {
	frame, _, err := r.RenderFrame(ctx)
	if err != nil {
		return err
	}
	return WritePPM(out, frame)
}

// RenderFrame traces every pixel of the frame, parallelized across rows.
// Rows are statically seeded from the base seed, so output is byte-identical
// for a fixed seed regardless of worker count.
func (r *Renderer) RenderFrame(ctx context.Context) (*Frame, RenderStats, error) {
	camera := r.scene.GetCamera()
	width, height := camera.ImageWidth(), camera.ImageHeight()
	frame := NewFrame(width, height)

	start := time.Now()
	r.logger.Printf("Rendering %dx%d, %d samples/pixel, depth %d\n",
		width, height, r.config.SamplesPerPixel, r.config.MaxDepth)

	pool := newWorkerPool(r.config.NumWorkers, height)
	pool.start(ctx, func(row int) {
		sampler := core.NewSeededSampler(r.config.Seed + int64(row))
		r.renderRow(row, frame, sampler)
	})
	pool.submitRows(height)

	rowsDone := 0
	var renderErr error
	for result := range pool.results() {
		if result.Err != nil && renderErr == nil {
			renderErr = result.Err
		}
		rowsDone++
		if r.config.Progress != nil {
			r.config.Progress(rowsDone, height)
		}
		if rowsDone == height {
			break
		}
	}
	pool.stop()

	stats := RenderStats{
		TotalPixels:  width * height,
		TotalSamples: width * height * r.config.SamplesPerPixel,
		Elapsed:      time.Since(start),
	}
	if renderErr != nil {
		return nil, stats, renderErr
	}

	r.logger.Printf("Render completed in %v\n", stats.Elapsed)
	return frame, stats, nil
}

// renderRow traces every pixel of one scanline with a row-owned sampler
func (r *Renderer) renderRow(j int, frame *Frame, sampler core.Sampler) {
	camera := r.scene.GetCamera()
	sampleScale := 1.0 / float64(r.config.SamplesPerPixel)

	for i := 0; i < frame.Width; i++ {
		accum := core.Vec3{}
		for s := 0; s < r.config.SamplesPerPixel; s++ {
			ray := camera.GetRay(i, j, sampler)
			accum = accum.Add(r.rayColor(ray, r.config.MaxDepth, sampler))
		}
		frame.Set(i, j, accum.Multiply(sampleScale))
	}
}

// rayColor evaluates the light transported along a ray. The recursion of
// the rendering equation is carried as an explicit loop over (ray,
// throughput, remaining bounces): each scatter multiplies the throughput by
// the material attenuation and continues with the scattered ray.
func (r *Renderer) rayColor(ray core.Ray, maxDepth int, sampler core.Sampler) core.Vec3 {
	world := r.scene.GetWorld()
	throughput := core.NewVec3(1, 1, 1)

	for bounce := 0; bounce < maxDepth; bounce++ {
		hit, isHit := world.Hit(ray, core.NewInterval(hitEpsilon, math.Inf(1)))
		if !isHit {
			return throughput.MultiplyVec(r.backgroundGradient(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			// Material absorbed the ray
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce budget exhausted; no more light is gathered
	return core.Vec3{}
}

// backgroundGradient interpolates between the scene's bottom and top colors
// based on the vertical component of the ray direction
func (r *Renderer) backgroundGradient(ray core.Ray) core.Vec3 {
	topColor, bottomColor := r.scene.GetBackgroundColors()
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return bottomColor.Multiply(1.0 - a).Add(topColor.Multiply(a))
}
