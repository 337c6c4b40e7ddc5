package renderer

import (
	"image"
	"image/color"

	"github.com/rciliberto/ray-tracer/pkg/core"
)

// Raster is a row-major 2D grid of colors produced by a render, with row 0
// at the bottom of the image. MaxValue declares the channel range for
// later encoding.
type Raster struct {
	Width    int
	Height   int
	MaxValue int
	pixels   []core.Vec3
}

// NewRaster creates a zeroed raster with an 8-bit channel range
func NewRaster(width, height int) *Raster {
	return &Raster{
		Width:    width,
		Height:   height,
		MaxValue: 255,
		pixels:   make([]core.Vec3, width*height),
	}
}

// Set writes the color of the pixel at (x, y)
func (r *Raster) Set(x, y int, c core.Vec3) {
	r.pixels[y*r.Width+x] = c
}

// At returns the color of the pixel at (x, y)
func (r *Raster) At(x, y int) core.Vec3 {
	return r.pixels[y*r.Width+x]
}

// GammaCorrect applies gamma correction to every pixel in place
func (r *Raster) GammaCorrect(gamma float64) {
	for i, p := range r.pixels {
		r.pixels[i] = p.GammaCorrect(gamma)
	}
}

// DrawCircle overlays a circle outline centered at (cx, cy) using the
// midpoint circle algorithm, skipping points outside the raster
func (r *Raster) DrawCircle(cx, cy, radius int, c core.Vec3) {
	x, y := radius, 0
	err := 1 - radius

	for x >= y {
		r.setIfInside(cx+x, cy+y, c)
		r.setIfInside(cx+y, cy+x, c)
		r.setIfInside(cx-y, cy+x, c)
		r.setIfInside(cx-x, cy+y, c)
		r.setIfInside(cx-x, cy-y, c)
		r.setIfInside(cx-y, cy-x, c)
		r.setIfInside(cx+y, cy-x, c)
		r.setIfInside(cx+x, cy-y, c)

		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func (r *Raster) setIfInside(x, y int, c core.Vec3) {
	if x >= 0 && x < r.Width && y >= 0 && y < r.Height {
		r.Set(x, y, c)
	}
}

// Image converts the raster to an image.RGBA, flipping vertically so that
// row 0 ends up at the top as image consumers expect
func (r *Raster) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			p := r.At(x, y).Clamp(0, 1).Multiply(float64(r.MaxValue))
			img.SetRGBA(x, r.Height-1-y, color.RGBA{
				R: uint8(p.X),
				G: uint8(p.Y),
				B: uint8(p.Z),
				A: 255,
			})
		}
	}

	return img
}
