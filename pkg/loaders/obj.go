// Package loaders handles the renderer's external data handoffs: mesh
// ingestion from Wavefront OBJ files and raster encoding. The core never
// performs file I/O itself.
package loaders

import (
	"fmt"

	"github.com/udhos/gwob"

	"github.com/rciliberto/ray-tracer/log"
	"github.com/rciliberto/ray-tracer/pkg/core"
	"github.com/rciliberto/ray-tracer/pkg/geometry"
)

var logger = log.New("loaders")

// LoadOBJ reads a Wavefront OBJ file into a face-vertex mesh using the
// given material for every face
func LoadOBJ(path string, material core.Material, opts geometry.MeshOptions) (*geometry.FaceVertexMesh, error) {
	obj, err := gwob.NewObjFromFile(path, parserOptions())
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return meshFromObj(obj, material, opts)
}

// ParseOBJ parses OBJ data from a buffer; name is used in diagnostics only
func ParseOBJ(name string, data []byte, material core.Material, opts geometry.MeshOptions) (*geometry.FaceVertexMesh, error) {
	obj, err := gwob.NewObjFromBuf(name, data, parserOptions())
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return meshFromObj(obj, material, opts)
}

func parserOptions() *gwob.ObjParserOptions {
	return &gwob.ObjParserOptions{
		Logger: func(msg string) { logger.Debug(msg) },
	}
}

// meshFromObj de-interleaves the parser's strided coordinate buffer into
// vertex, texture and normal arrays and rebuilds the face list. The OBJ
// parser triangulates faces, so every face here has exactly three corners.
func meshFromObj(obj *gwob.Obj, material core.Material, opts geometry.MeshOptions) (*geometry.FaceVertexMesh, error) {
	stride := obj.StrideSize / 4
	positionOffset := obj.StrideOffsetPosition / 4
	textureOffset := obj.StrideOffsetTexture / 4
	normalOffset := obj.StrideOffsetNormal / 4

	if stride == 0 {
		return nil, fmt.Errorf("mesh has no vertex data")
	}
	elements := len(obj.Coord) / stride

	vertices := make([]core.Vec3, 0, elements)
	var texCoords, normals []core.Vec3

	for i := 0; i < elements; i++ {
		base := i * stride

		vertices = append(vertices, core.NewVec3(
			obj.Coord64(base+positionOffset),
			obj.Coord64(base+positionOffset+1),
			obj.Coord64(base+positionOffset+2),
		))

		if obj.TextCoordFound {
			texCoords = append(texCoords, core.NewVec3(
				obj.Coord64(base+textureOffset),
				obj.Coord64(base+textureOffset+1),
				0,
			))
		}

		if obj.NormCoordFound {
			normals = append(normals, core.NewVec3(
				obj.Coord64(base+normalOffset),
				obj.Coord64(base+normalOffset+1),
				obj.Coord64(base+normalOffset+2),
			))
		}
	}

	faces := make([]geometry.Face, 0, len(obj.Indices)/3)
	for i := 0; i+2 < len(obj.Indices); i += 3 {
		face := make(geometry.Face, 0, 3)
		for k := 0; k < 3; k++ {
			index := obj.Indices[i+k]
			corner := geometry.FaceVertex{Vertex: index, TexCoord: -1, Normal: -1}
			if obj.TextCoordFound {
				corner.TexCoord = index
			}
			if obj.NormCoordFound {
				corner.Normal = index
			}
			face = append(face, corner)
		}
		faces = append(faces, face)
	}

	logger.Debugf("loaded mesh: %d vertices, %d faces", len(vertices), len(faces))

	return geometry.NewFaceVertexMesh(vertices, texCoords, normals, faces, material, opts)
}
