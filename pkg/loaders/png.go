package loaders

import (
	"image/png"
	"io"

	"github.com/rciliberto/ray-tracer/pkg/renderer"
)

// WritePNG encodes the raster as PNG; the raster is read-only input
func WritePNG(w io.Writer, raster *renderer.Raster) error {
	return png.Encode(w, raster.Image())
}
