package core

import "math/rand"

// RandomInUnitSphere generates a uniformly distributed random point inside
// the unit sphere using rejection sampling
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a random unit-length vector, uniformly
// distributed over the surface of the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInUnitDisk generates a random point in the unit disk on the XY
// plane (for depth of field lens sampling)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
