package renderer

import "time"

// RenderStats summarizes a completed render for diagnostics
type RenderStats struct {
	Width           int           // Raster width in pixels
	Height          int           // Raster height in pixels
	SamplesPerPixel int           // Configured samples per pixel
	TotalSamples    int64         // Total pixel samples taken
	RaysTraced      int64         // Rays traced including bounces
	Workers         int           // Workers used (1 for sequential renders)
	Duration        time.Duration // Wall-clock render time
}
