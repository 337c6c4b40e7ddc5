package geometry

import (
	"fmt"

	"github.com/rciliberto/ray-tracer/pkg/core"
)

// FaceVertex addresses one corner of a polygonal face. TexCoord and Normal
// are -1 when the face does not reference those attributes.
type FaceVertex struct {
	Vertex   int
	TexCoord int
	Normal   int
}

// Face is an ordered list of corners. Faces with more than three corners
// must be convex and planar; they are fan-triangulated from the first
// corner.
type Face []FaceVertex

// FaceVertexMesh adapts face-vertex geometry (vertices plus optional
// per-vertex texture coordinates and normals) into a TriangleMesh. It is a
// thin delegating wrapper, not an acceleration structure of its own.
type FaceVertexMesh struct {
	texCoords []core.Vec3
	normals   []core.Vec3
	faces     []Face
	mesh      *TriangleMesh
}

// NewFaceVertexMesh creates a mesh from face-vertex data. Each face is
// fan-triangulated; a triangle's normal is the mean of its three vertex
// normals when all corners reference one, otherwise the geometric face
// normal. Construction fails if any face references an index outside the
// corresponding buffer.
func NewFaceVertexMesh(vertices, texCoords, normals []core.Vec3, faces []Face, material core.Material, opts MeshOptions) (*FaceVertexMesh, error) {
	var triangles [][3]int
	var triNormals []core.Vec3

	for fi, face := range faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("face %d: need at least 3 vertices, got %d", fi, len(face))
		}
		for _, corner := range face {
			if corner.Vertex < 0 || corner.Vertex >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range [0, %d)", fi, corner.Vertex, len(vertices))
			}
			if corner.TexCoord >= len(texCoords) {
				return nil, fmt.Errorf("face %d: texture index %d out of range [0, %d)", fi, corner.TexCoord, len(texCoords))
			}
			if corner.Normal >= len(normals) {
				return nil, fmt.Errorf("face %d: normal index %d out of range [0, %d)", fi, corner.Normal, len(normals))
			}
		}

		// Fan triangulation from the face's first corner
		for i := 1; i+1 < len(face); i++ {
			corners := [3]FaceVertex{face[0], face[i], face[i+1]}
			triangles = append(triangles, [3]int{corners[0].Vertex, corners[1].Vertex, corners[2].Vertex})
			triNormals = append(triNormals, triangleNormal(vertices, normals, corners))
		}
	}

	mesh, err := NewTriangleMesh(vertices, triangles, triNormals, material, opts)
	if err != nil {
		return nil, err
	}

	return &FaceVertexMesh{
		texCoords: texCoords,
		normals:   normals,
		faces:     faces,
		mesh:      mesh,
	}, nil
}

// triangleNormal averages the corner vertex normals, falling back to the
// geometric face normal when any corner lacks one
func triangleNormal(vertices, normals []core.Vec3, corners [3]FaceVertex) core.Vec3 {
	if corners[0].Normal >= 0 && corners[1].Normal >= 0 && corners[2].Normal >= 0 {
		sum := normals[corners[0].Normal].
			Add(normals[corners[1].Normal]).
			Add(normals[corners[2].Normal])
		return sum.Divide(3.0)
	}

	edge1 := vertices[corners[1].Vertex].Subtract(vertices[corners[0].Vertex])
	edge2 := vertices[corners[2].Vertex].Subtract(vertices[corners[0].Vertex])
	return edge1.Cross(edge2)
}

// Hit delegates to the underlying triangle mesh
func (m *FaceVertexMesh) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return m.mesh.Hit(ray, tMin, tMax)
}

// Bounds returns the mesh's enclosing box
func (m *FaceVertexMesh) Bounds() core.AABB {
	return m.mesh.Bounds()
}

// TriangleCount returns the number of triangles after fan triangulation
func (m *FaceVertexMesh) TriangleCount() int {
	return m.mesh.TriangleCount()
}
