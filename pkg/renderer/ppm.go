package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/tdegroot/go-pathtracer/pkg/core"
)

// Channels are clamped just below 1 before quantization so that multiplying
// by 256 and truncating can never overflow to 256.
var intensity = core.NewInterval(0.000, 0.999)

// linearToGamma converts a linear-light channel to display space with the
// inverse gamma-2 transform
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// quantize converts a linear-light color to [0,255] display channels
func quantize(c core.Vec3) (ir, ig, ib int) {
	ir = int(256 * intensity.Clamp(linearToGamma(c.X)))
	ig = int(256 * intensity.Clamp(linearToGamma(c.Y)))
	ib = int(256 * intensity.Clamp(linearToGamma(c.Z)))
	return ir, ig, ib
}

// WritePPM writes the frame to w as plain-text PPM (P3): the header, then
// one "r g b" line per pixel in row-major, top-left-origin order.
// See: https://netpbm.sourceforge.net/doc/ppm.html
func WritePPM(w io.Writer, frame *Frame) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	for j := 0; j < frame.Height; j++ {
		for i := 0; i < frame.Width; i++ {
			ir, ig, ib := quantize(frame.At(i, j))
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", ir, ig, ib); err != nil {
				return fmt.Errorf("writing pixel (%d,%d): %w", i, j, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing ppm output: %w", err)
	}
	return nil
}
