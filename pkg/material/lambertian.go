package material

import (
	"math/rand"

	"github.com/rciliberto/ray-tracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements diffuse scattering: the outgoing direction is the
// surface normal plus a random unit vector. Always scatters.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(random))

	// Degenerate case: the random vector nearly cancelled the normal
	if direction.NearZero() {
		direction = hit.Normal
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: l.Albedo,
	}, true
}

// CullBackFaces reports that diffuse surfaces may skip back faces
func (l *Lambertian) CullBackFaces() bool {
	return true
}
