package geometry

import (
	"math"

	"github.com/tdegroot/go-pathtracer/pkg/core"
)

// CameraConfig holds the intrinsic parameters a camera is derived from
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Camera-relative up direction
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Defocus (lens opening) angle in degrees; 0 disables depth of field
	FocusDistance float64   // Distance to the plane of perfect focus; 0 = distance to LookAt
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	zero := core.Vec3{}
	if override.Center != zero {
		merged.Center = override.Center
	}
	if override.LookAt != zero {
		merged.LookAt = override.LookAt
	}
	if override.Up != zero {
		merged.Up = override.Up
	}
	if override.Width != 0 {
		merged.Width = override.Width
	}
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if override.Aperture != 0 {
		merged.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		merged.FocusDistance = override.FocusDistance
	}
	return merged
}

// Camera maps a pixel coordinate plus sub-pixel and lens jitter into a
// world-space ray. All geometry is derived once at construction; the camera
// is immutable afterwards.
type Camera struct {
	config        CameraConfig
	imageHeight   int
	center        core.Vec3
	u, v, w       core.Vec3 // Orthonormal basis; w points from LookAt back to the camera
	pixel00       core.Vec3 // Center of the upper-left pixel
	pixelDeltaU   core.Vec3 // Offset to the pixel to the right
	pixelDeltaV   core.Vec3 // Offset to the pixel below
	defocusDiskU  core.Vec3 // Defocus disk horizontal radius vector
	defocusDiskV  core.Vec3 // Defocus disk vertical radius vector
	defocusRadius float64
}

// NewCamera derives a camera from its intrinsic parameters
func NewCamera(config CameraConfig) *Camera {
	imageHeight := int(float64(config.Width) / config.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	focusDist := config.FocusDistance
	if focusDist <= 0 {
		focusDist = config.LookAt.Subtract(config.Center).Length()
	}

	// Viewport dimensions from the vertical field of view, measured on the
	// focus plane so defocus blur is zero exactly there
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDist
	viewportWidth := viewportHeight * float64(config.Width) / float64(imageHeight)

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport edge vectors; v runs down the image
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := config.Center.
		Subtract(w.Multiply(focusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDist * math.Tan(config.Aperture*math.Pi/180.0/2)

	return &Camera{
		config:        config,
		imageHeight:   imageHeight,
		center:        config.Center,
		u:             u,
		v:             v,
		w:             w,
		pixel00:       pixel00,
		pixelDeltaU:   pixelDeltaU,
		pixelDeltaV:   pixelDeltaV,
		defocusDiskU:  u.Multiply(defocusRadius),
		defocusDiskV:  v.Multiply(defocusRadius),
		defocusRadius: defocusRadius,
	}
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int {
	return c.config.Width
}

// ImageHeight returns the image height in pixels
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// Config returns the configuration the camera was derived from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetCameraForward returns the unit view direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// GetRay generates a ray through pixel (i, j) with a uniform sub-pixel
// jitter in [-0.5, 0.5]². With a nonzero aperture the ray origin is a random
// point on the defocus disk in the camera's (u, v) plane.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	origin := c.center
	if c.defocusRadius > 0 {
		p := core.RandomInUnitDisk(sampler)
		origin = c.center.
			Add(c.defocusDiskU.Multiply(p.X)).
			Add(c.defocusDiskV.Multiply(p.Y))
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}
