package core

import "math/rand"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at intersection, facing the incoming ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the outward-facing side
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// The stored normal always satisfies dot(ray.Direction, Normal) <= 0.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The outgoing scattered ray
	Attenuation Vec3 // Color attenuation applied for this bounce
}

// Material is implemented by surfaces that respond to an incoming ray by
// either scattering it or absorbing it
type Material interface {
	// Scatter produces an attenuation and an outgoing ray for a hit, or
	// returns false when the ray is absorbed
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)

	// CullBackFaces reports whether intersection tests may skip back faces
	// for surfaces using this material. Transmissive materials must return
	// false so rays can exit a solid volume.
	CullBackFaces() bool
}

// Hittable is implemented by anything a ray can intersect. Hit returns the
// nearest intersection within [tMin, tMax], or false if there is none.
// Implementations must not mutate their own geometry.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// Environment supplies the color seen by rays that escape the scene
type Environment interface {
	Color(direction Vec3) Vec3
}
