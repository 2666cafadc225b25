package scene

import (
	"fmt"
	"math"

	"github.com/tdegroot/go-pathtracer/pkg/core"
	"github.com/tdegroot/go-pathtracer/pkg/geometry"
	"github.com/tdegroot/go-pathtracer/pkg/material"
)

// SamplingConfig contains per-scene rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// Scene contains all the elements needed for rendering. Once handed to the
// renderer it is read-only.
type Scene struct {
	Camera           *geometry.Camera
	CameraConfig     geometry.CameraConfig
	World            *geometry.World
	SamplingConfig   SamplingConfig
	BackgroundTop    core.Vec3 // Sky color at the zenith
	BackgroundBottom core.Vec3 // Sky color at the horizon
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() *geometry.World {
	return s.World
}

// GetBackgroundColors implements renderer.Scene
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.BackgroundTop, s.BackgroundBottom
}

// Validate rejects configurations that would feed NaN or Inf into the
// intersection and normalization math instead of letting them corrupt
// pixels. It must pass before the scene is rendered.
func (s *Scene) Validate() error {
	if err := s.validateCamera(); err != nil {
		return err
	}
	if s.SamplingConfig.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", s.SamplingConfig.SamplesPerPixel)
	}
	if s.SamplingConfig.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", s.SamplingConfig.MaxDepth)
	}
	if s.World == nil {
		return fmt.Errorf("scene has no world")
	}
	for i, object := range s.World.Objects {
		sphere, ok := object.(*geometry.Sphere)
		if !ok {
			continue
		}
		if err := validateSphere(sphere); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	return nil
}

func (s *Scene) validateCamera() error {
	cfg := s.CameraConfig
	if cfg.Width <= 0 {
		return fmt.Errorf("camera width must be positive, got %d", cfg.Width)
	}
	if cfg.AspectRatio <= 0 {
		return fmt.Errorf("camera aspect ratio must be positive, got %g", cfg.AspectRatio)
	}
	if cfg.VFov <= 0 || cfg.VFov >= 180 {
		return fmt.Errorf("camera vertical fov must be in (0, 180), got %g", cfg.VFov)
	}
	if !cfg.Center.IsFinite() || !cfg.LookAt.IsFinite() || !cfg.Up.IsFinite() {
		return fmt.Errorf("camera vectors must be finite")
	}
	view := cfg.LookAt.Subtract(cfg.Center)
	if view.NearZero() {
		return fmt.Errorf("camera look-at point coincides with camera center")
	}
	if view.Cross(cfg.Up).NearZero() {
		return fmt.Errorf("camera up vector is parallel to the view direction")
	}
	return nil
}

func validateSphere(sphere *geometry.Sphere) error {
	// Negative radius is legal; it flips the normal inward for hollow shells
	if sphere.Radius == 0 {
		return fmt.Errorf("sphere radius must be nonzero")
	}
	if math.IsNaN(sphere.Radius) || math.IsInf(sphere.Radius, 0) {
		return fmt.Errorf("sphere radius must be finite, got %g", sphere.Radius)
	}
	if !sphere.Center.IsFinite() {
		return fmt.Errorf("sphere center must be finite, got %v", sphere.Center)
	}
	return validateMaterial(sphere.Material)
}

func validateMaterial(mat material.Material) error {
	switch m := mat.(type) {
	case *material.Lambertian:
		if !m.Albedo.IsFinite() {
			return fmt.Errorf("lambertian albedo must be finite, got %v", m.Albedo)
		}
	case *material.Metal:
		if !m.Albedo.IsFinite() {
			return fmt.Errorf("metal albedo must be finite, got %v", m.Albedo)
		}
		if m.Fuzz < 0 || m.Fuzz > 1 {
			return fmt.Errorf("metal fuzz must be in [0, 1], got %g", m.Fuzz)
		}
	case *material.Dielectric:
		if !m.Albedo.IsFinite() {
			return fmt.Errorf("dielectric albedo must be finite, got %v", m.Albedo)
		}
		if m.RefractiveIndex <= 0 || math.IsNaN(m.RefractiveIndex) || math.IsInf(m.RefractiveIndex, 0) {
			return fmt.Errorf("dielectric refractive index must be positive and finite, got %g", m.RefractiveIndex)
		}
	case nil:
		return fmt.Errorf("missing material")
	}
	return nil
}
