package loaders

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rciliberto/ray-tracer/pkg/renderer"
)

// WritePPM encodes the raster as plain-text PPM (P3). Rows are written
// top to bottom as the format expects; the raster is read-only input.
func WritePPM(w io.Writer, raster *renderer.Raster) error {
	buffered := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buffered, "P3\n%d %d\n%d\n", raster.Width, raster.Height, raster.MaxValue); err != nil {
		return err
	}

	maxValue := float64(raster.MaxValue)
	for y := raster.Height - 1; y >= 0; y-- {
		for x := 0; x < raster.Width; x++ {
			p := raster.At(x, y).Clamp(0, 1).Multiply(maxValue)
			if _, err := fmt.Fprintf(buffered, "%d %d %d\n", int(p.X), int(p.Y), int(p.Z)); err != nil {
				return err
			}
		}
	}

	return buffered.Flush()
}
