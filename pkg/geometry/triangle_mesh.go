package geometry

import (
	"fmt"

	"github.com/rciliberto/ray-tracer/pkg/core"
)

// MeshOptions selects the acceleration structures a mesh builds and uses
type MeshOptions struct {
	BoundingVolume bool // Test the mesh's enclosing box before any triangle
	Octree         bool // Build an octree over the triangle set
}

// TriangleMesh represents an immutable set of triangles over a shared
// vertex buffer, with one precomputed face normal per triangle and a
// single material shared by every triangle
type TriangleMesh struct {
	vertices  []core.Vec3
	triangles [][3]int
	normals   []core.Vec3 // One per triangle
	material  core.Material
	bounds    core.AABB
	octree    *Octree // nil when octree acceleration is disabled
	opts      MeshOptions
}

// NewTriangleMesh creates a triangle mesh. normals may be nil, in which
// case face normals are computed from the edge cross products; when
// provided it must hold one normal per triangle. Construction fails if any
// triangle references a vertex outside the vertex buffer.
func NewTriangleMesh(vertices []core.Vec3, triangles [][3]int, normals []core.Vec3, material core.Material, opts MeshOptions) (*TriangleMesh, error) {
	for i, tri := range triangles {
		for _, vi := range tri {
			if vi < 0 || vi >= len(vertices) {
				return nil, fmt.Errorf("triangle %d: vertex index %d out of range [0, %d)", i, vi, len(vertices))
			}
		}
	}

	if normals != nil && len(normals) != len(triangles) {
		return nil, fmt.Errorf("got %d normals for %d triangles", len(normals), len(triangles))
	}

	if normals == nil {
		normals = make([]core.Vec3, len(triangles))
		for i, tri := range triangles {
			edge1 := vertices[tri[1]].Subtract(vertices[tri[0]])
			edge2 := vertices[tri[2]].Subtract(vertices[tri[0]])
			normals[i] = edge1.Cross(edge2)
		}
	}

	mesh := &TriangleMesh{
		vertices:  vertices,
		triangles: triangles,
		normals:   normals,
		material:  material,
		bounds:    core.NewAABBFromPoints(vertices...).Expand(boundsPadding),
		opts:      opts,
	}

	if opts.Octree {
		mesh.octree = NewOctree(vertices, triangles)
	}

	return mesh, nil
}

// Hit tests if a ray intersects any triangle in the mesh, returning the
// nearest hit. Depending on the mesh options it either brute-force scans
// every triangle or only the candidate sets of the octree buds the ray
// passes through.
func (m *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if m.opts.BoundingVolume && !m.bounds.Hit(ray, tMin, tMax) {
		return nil, false
	}

	cull := m.material.CullBackFaces()

	var closest *core.HitRecord
	closestSoFar := tMax

	if m.octree != nil {
		for _, bud := range m.octree.IntersectingBuds(ray, tMin, tMax) {
			for _, ti := range m.octree.Triangles(bud) {
				if hit, ok := m.hitTriangle(ti, ray, tMin, closestSoFar, cull); ok {
					closest = hit
					closestSoFar = hit.T
				}
			}
		}
	} else {
		for ti := range m.triangles {
			if hit, ok := m.hitTriangle(ti, ray, tMin, closestSoFar, cull); ok {
				closest = hit
				closestSoFar = hit.T
			}
		}
	}

	return closest, closest != nil
}

// hitTriangle tests a single triangle by index
func (m *TriangleMesh) hitTriangle(ti int, ray core.Ray, tMin, tMax float64, cull bool) (*core.HitRecord, bool) {
	tri := m.triangles[ti]

	dist, _, _, ok := intersectTriangle(ray, m.vertices[tri[0]], m.vertices[tri[1]], m.vertices[tri[2]], cull, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        dist,
		Point:    ray.At(dist),
		Material: m.material,
	}
	hit.SetFaceNormal(ray, m.normals[ti])

	return hit, true
}

// Bounds returns the mesh's enclosing box
func (m *TriangleMesh) Bounds() core.AABB {
	return m.bounds
}

// TriangleCount returns the number of triangles in the mesh
func (m *TriangleMesh) TriangleCount() int {
	return len(m.triangles)
}
