package renderer

import (
	"github.com/tdegroot/go-pathtracer/pkg/core"
)

// Frame is a framebuffer of linear-light colors, row-major with the origin
// at the top left. It is the only shared mutable resource during rendering;
// each pixel is written exactly once, by the worker that owns its row.
type Frame struct {
	Width, Height int
	pixels        []core.Vec3
}

// NewFrame creates an all-black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color at pixel (i, j)
func (f *Frame) At(i, j int) core.Vec3 {
	return f.pixels[j*f.Width+i]
}

// Set stores the color at pixel (i, j)
func (f *Frame) Set(i, j int, c core.Vec3) {
	f.pixels[j*f.Width+i] = c
}
