package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// ToImage converts the frame to an image.RGBA using the same gamma and
// clamping transform as the PPM path
func ToImage(frame *Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for j := 0; j < frame.Height; j++ {
		for i := 0; i < frame.Width; i++ {
			ir, ig, ib := quantize(frame.At(i, j))
			img.SetRGBA(i, j, color.RGBA{
				R: uint8(ir),
				G: uint8(ig),
				B: uint8(ib),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG writes the frame to w as PNG
func WritePNG(w io.Writer, frame *Frame) error {
	if err := png.Encode(w, ToImage(frame)); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
