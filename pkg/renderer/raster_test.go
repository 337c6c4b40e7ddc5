package renderer

import (
	"math"
	"testing"

	"github.com/rciliberto/ray-tracer/pkg/core"
)

func TestRaster_SetAt(t *testing.T) {
	raster := NewRaster(4, 3)

	red := core.NewVec3(1, 0, 0)
	raster.Set(2, 1, red)

	if raster.At(2, 1) != red {
		t.Errorf("Expected %v, got %v", red, raster.At(2, 1))
	}
	if raster.At(1, 2) != (core.Vec3{}) {
		t.Errorf("Expected untouched pixel to stay zero, got %v", raster.At(1, 2))
	}
}

func TestRaster_GammaCorrect(t *testing.T) {
	raster := NewRaster(2, 1)
	raster.Set(0, 0, core.NewVec3(0.25, 0.25, 0.25))
	raster.Set(1, 0, core.NewVec3(1, 1, 1))

	raster.GammaCorrect(2.0)

	if math.Abs(raster.At(0, 0).X-0.5) > 1e-9 {
		t.Errorf("Expected 0.25 to correct to 0.5, got %f", raster.At(0, 0).X)
	}
	if math.Abs(raster.At(1, 0).X-1.0) > 1e-9 {
		t.Errorf("Expected 1.0 to stay 1.0, got %f", raster.At(1, 0).X)
	}
}

func TestRaster_Image_FlipsVertically(t *testing.T) {
	raster := NewRaster(2, 2)
	// Bottom-left pixel in raster space
	raster.Set(0, 0, core.NewVec3(1, 0, 0))

	img := raster.Image()

	// It must land at the bottom of the image, which is image row height-1
	bottom := img.RGBAAt(0, 1)
	if bottom.R != 255 || bottom.G != 0 || bottom.B != 0 {
		t.Errorf("Expected red at image (0, 1), got %+v", bottom)
	}
	top := img.RGBAAt(0, 0)
	if top.R != 0 {
		t.Errorf("Expected black at image (0, 0), got %+v", top)
	}
}

func TestRaster_Image_ClampsRange(t *testing.T) {
	raster := NewRaster(1, 1)
	raster.Set(0, 0, core.NewVec3(2.0, -1.0, 0.5))

	p := raster.Image().RGBAAt(0, 0)
	if p.R != 255 {
		t.Errorf("Expected overbright channel to clamp to 255, got %d", p.R)
	}
	if p.G != 0 {
		t.Errorf("Expected negative channel to clamp to 0, got %d", p.G)
	}
}

func TestRaster_DrawCircle(t *testing.T) {
	raster := NewRaster(11, 11)
	white := core.NewVec3(1, 1, 1)

	raster.DrawCircle(5, 5, 3, white)

	// The four axis-aligned extremes are always part of the outline
	for _, p := range [][2]int{{8, 5}, {2, 5}, {5, 8}, {5, 2}} {
		if raster.At(p[0], p[1]) != white {
			t.Errorf("Expected outline pixel at (%d, %d)", p[0], p[1])
		}
	}
	if raster.At(5, 5) != (core.Vec3{}) {
		t.Error("Expected the center to stay unset")
	}
}

func TestRaster_DrawCircle_ClipsAtEdges(t *testing.T) {
	raster := NewRaster(4, 4)

	// Must not panic when the outline leaves the raster
	raster.DrawCircle(0, 0, 10, core.NewVec3(1, 1, 1))
}
