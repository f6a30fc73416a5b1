package adapters

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hschendel/stl"

	"urdf2kin/internal/ports"
	"urdf2kin/internal/types"
)

// MeshLoaderAdapter reads collision meshes. STL files (ASCII or binary)
// are supported; shared vertices are welded so the mesh is indexed.
type MeshLoaderAdapter struct{}

func NewMeshLoaderAdapter() MeshLoaderAdapter {
	return MeshLoaderAdapter{}
}

func (a MeshLoaderAdapter) LoadTriMesh(path string) (*types.TriMesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported mesh format %s", filepath.Ext(path)))
	}
	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read mesh " + path).
			WithCause(err)
	}
	return triMeshFromSolid(solid), nil
}

func triMeshFromSolid(solid *stl.Solid) *types.TriMesh {
	mesh := &types.TriMesh{}
	welded := map[stl.Vec3]int{}
	for _, triangle := range solid.Triangles {
		for _, vertex := range triangle.Vertices {
			idx, ok := welded[vertex]
			if !ok {
				idx = len(mesh.Vertices)
				welded[vertex] = idx
				mesh.Vertices = append(mesh.Vertices, mgl64.Vec3{
					float64(vertex[0]), float64(vertex[1]), float64(vertex[2]),
				})
			}
			mesh.Indices = append(mesh.Indices, idx)
		}
	}
	return mesh
}

var _ ports.MeshLoaderPort = MeshLoaderAdapter{}
