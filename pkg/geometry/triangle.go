package geometry

import (
	"math"

	"github.com/rciliberto/ray-tracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   core.Material
	normal     core.Vec3 // Cached face normal
}

// NewTriangle creates a new triangle from three vertices. The face normal
// is the cross product of the edge vectors; it is left unnormalized since
// it is only used to orient hit records.
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   edge1.Cross(edge2),
	}
}

// Hit tests if a ray intersects with the triangle
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	dist, _, _, ok := intersectTriangle(ray, t.V0, t.V1, t.V2, t.Material.CullBackFaces(), tMin, tMax)
	if !ok {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        dist,
		Point:    ray.At(dist),
		Material: t.Material,
	}
	hit.SetFaceNormal(ray, t.normal)

	return hit, true
}

// Normal returns the triangle's face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// intersectTriangle runs the Möller-Trumbore intersection test against a
// single triangle. It is the single source of truth for both standalone
// triangles and mesh triangles. On a hit it returns the ray parameter and
// the barycentric coordinates (u, v); on a miss every output is zero.
// tMin doubles as the determinant threshold below which the ray counts as
// parallel to the triangle plane (or, when culling, as hitting the back
// face).
func intersectTriangle(ray core.Ray, v0, v1, v2 core.Vec3, cullBackFaces bool, tMin, tMax float64) (t, u, v float64, ok bool) {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	if cullBackFaces {
		// A negative determinant means the ray approaches from behind
		if det < tMin {
			return 0, 0, 0, false
		}
	} else if math.Abs(det) < tMin {
		// Ray is parallel to the triangle plane
		return 0, 0, 0, false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(v0)
	u = invDet * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = invDet * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, 0, 0, false
	}

	t = invDet * edge2.Dot(q)
	if t < tMin || t > tMax {
		return 0, 0, 0, false
	}

	return t, u, v, true
}
