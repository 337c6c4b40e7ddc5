package renderer

import (
	"runtime"

	"github.com/rciliberto/ray-tracer/pkg/geometry"
)

// Options is the configuration surface consumed by the renderer and by
// scene construction. It is passed explicitly to everything that needs it;
// there is no process-wide state.
type Options struct {
	Width         int     // Image width in pixels
	AspectRatio   float64 // Width over height
	VerticalFov   float64 // Vertical field of view in degrees
	Aperture      float64 // Lens aperture diameter (0 disables depth of field)
	FocusDistance float64 // Distance to the focus plane

	SamplesPerPixel int // Independent sample rays averaged per pixel
	MaxDepth        int // Maximum bounces before a path counts as absorbed

	Accelerate       bool // Test mesh bounding volumes before triangles
	AccelerateMeshes bool // Build per-mesh octrees

	SingleThread bool // Render sequentially instead of using the worker pool
	Workers      int  // Worker count for parallel rendering, 0 = NumCPU
}

// DefaultOptions returns the default render configuration
func DefaultOptions() Options {
	return Options{
		Width:            400,
		AspectRatio:      16.0 / 9.0,
		VerticalFov:      40,
		Aperture:         0,
		FocusDistance:    1,
		SamplesPerPixel:  100,
		MaxDepth:         50,
		Accelerate:       true,
		AccelerateMeshes: true,
		Workers:          runtime.NumCPU(),
	}
}

// Height derives the image height from the width and aspect ratio
func (o Options) Height() int {
	height := int(float64(o.Width) / o.AspectRatio)
	if height < 1 {
		height = 1
	}
	return height
}

// MeshOptions translates the acceleration toggles for mesh construction
func (o Options) MeshOptions() geometry.MeshOptions {
	return geometry.MeshOptions{
		BoundingVolume: o.Accelerate,
		Octree:         o.AccelerateMeshes,
	}
}
