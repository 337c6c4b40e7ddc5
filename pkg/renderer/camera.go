package renderer

import (
	"math"
	"math/rand"

	"github.com/rciliberto/ray-tracer/pkg/core"
)

// Camera converts normalized viewport coordinates into sample rays, with
// optional thin-lens depth of field. It owns only its projection
// parameters; the viewport basis is derived on demand and never cached,
// so the camera can be repositioned between renders without stale state.
type Camera struct {
	LookFrom      core.Vec3 // Camera origin
	LookAt        core.Vec3 // Point the camera faces
	VUp           core.Vec3 // World up used to orient the viewport
	VerticalFov   float64   // Vertical field of view in degrees
	AspectRatio   float64   // Viewport width over height
	Aperture      float64   // Lens diameter, 0 for a pinhole camera
	FocusDistance float64   // Distance to the plane in perfect focus
}

// NewCamera creates a camera from a pose and the render options
func NewCamera(lookFrom, lookAt, vup core.Vec3, opts Options) *Camera {
	return &Camera{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		VUp:           vup,
		VerticalFov:   opts.VerticalFov,
		AspectRatio:   opts.AspectRatio,
		Aperture:      opts.Aperture,
		FocusDistance: opts.FocusDistance,
	}
}

// viewport holds the orthonormal basis and focus-plane rectangle derived
// from the camera parameters
type viewport struct {
	u, v, w         core.Vec3 // Right, up, backward
	horizontal      core.Vec3
	vertical        core.Vec3
	lowerLeftCorner core.Vec3
}

// derive recomputes the viewport from the owned parameters
func (c *Camera) derive() viewport {
	theta := c.VerticalFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2.0 * halfHeight
	viewportWidth := c.AspectRatio * viewportHeight

	w := c.LookFrom.Subtract(c.LookAt).Normalize()
	u := c.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth * c.FocusDistance)
	vertical := v.Multiply(viewportHeight * c.FocusDistance)
	lowerLeftCorner := c.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(c.FocusDistance))

	return viewport{
		u: u, v: v, w: w,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// Ray generates a sample ray for normalized viewport coordinates
// (s, t) in [0,1]², offset by a random point on the lens disk when the
// aperture is open
func (c *Camera) Ray(s, t float64, random *rand.Rand) core.Ray {
	vp := c.derive()

	origin := c.LookFrom
	if c.Aperture > 0 {
		lens := core.RandomInUnitDisk(random).Multiply(c.Aperture / 2)
		origin = origin.Add(vp.u.Multiply(lens.X)).Add(vp.v.Multiply(lens.Y))
	}

	direction := vp.lowerLeftCorner.
		Add(vp.horizontal.Multiply(s)).
		Add(vp.vertical.Multiply(t)).
		Subtract(origin).
		Normalize()

	return core.NewRay(origin, direction)
}
