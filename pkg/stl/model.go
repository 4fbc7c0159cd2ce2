package stl

import (
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// Model is a parsed STL solid: its name and an indexed mesh of its facets
type Model struct {
	Name string
	Mesh *mesh.Mesh

	// index maps each distinct vertex to its position in Mesh
	index map[geometry.Vector3]int
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:  name,
		Mesh:  mesh.New(),
		index: make(map[geometry.Vector3]int),
	}
}

// AddTriangle adds a facet, sharing vertices that are exactly equal to ones
// already in the model. The stored facet normal is not kept; the mesh derives
// normals from the vertex order.
func (m *Model) AddTriangle(v1, v2, v3 geometry.Vector3) {
	m.Mesh.AddTri(m.vertex(v1), m.vertex(v2), m.vertex(v3), mesh.NoStyle)
}

func (m *Model) vertex(v geometry.Vector3) int {
	if i, ok := m.index[v]; ok {
		return i
	}
	i := m.Mesh.AddVertexForce(v)
	m.index[v] = i
	return i
}

// TriangleCount returns the number of facets in the model
func (m *Model) TriangleCount() int {
	return m.Mesh.FaceCount()
}
