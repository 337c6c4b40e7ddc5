package scene

import (
	"github.com/rciliberto/ray-tracer/pkg/core"
)

// GradientEnvironment colors escaping rays with a vertical gradient
// parameterized by the normalized direction's Y component
type GradientEnvironment struct {
	Horizon core.Vec3 // Color at the horizon (direction Y = -1)
	Zenith  core.Vec3 // Color at the zenith (direction Y = +1)
}

// NewSkyEnvironment creates the default environment: white at the horizon
// blending into light blue at the zenith
func NewSkyEnvironment() *GradientEnvironment {
	return &GradientEnvironment{
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
		Zenith:  core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns the environment color for a ray direction
func (g *GradientEnvironment) Color(direction core.Vec3) core.Vec3 {
	unit := direction.Normalize()

	// Map Y from [-1, 1] to [0, 1]
	t := 0.5 * (unit.Y + 1.0)

	return g.Horizon.Multiply(1.0 - t).Add(g.Zenith.Multiply(t))
}
