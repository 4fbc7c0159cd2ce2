package stl

import (
	"bytes"
	"encoding/binary"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const asciiSquare = `solid square
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 0 1 0
      vertex 1 1 0
    endloop
  endfacet
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 1 1 0
      vertex 1 0 0
    endloop
  endfacet
endsolid square
`

func binarySTL(t *testing.T, header string, facets [][3][3]float32) []byte {
	t.Helper()
	var buf bytes.Buffer
	h := make([]byte, binaryHeaderSize)
	copy(h, header)
	buf.Write(h)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(len(facets))))
	for _, f := range facets {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, binaryFacet{Vertices: f}))
	}
	return buf.Bytes()
}

var squareFacets = [][3][3]float32{
	{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
	{{0, 0, 0}, {1, 1, 0}, {1, 0, 0}},
}

func TestParseASCIISharesVertices(t *testing.T) {
	model, err := ParseBytes([]byte(asciiSquare))
	require.NoError(t, err)

	assert.Equal(t, "square", model.Name)
	assert.Equal(t, 2, model.TriangleCount())
	assert.Equal(t, 4, model.Mesh.VertexCount())

	faces := model.Mesh.Faces()
	assert.Equal(t, faces[0].A, faces[1].A)
	assert.Equal(t, faces[0].C, faces[1].B)
}

func TestParseBinary(t *testing.T) {
	model, err := ParseBytes(binarySTL(t, "exported", squareFacets))
	require.NoError(t, err)

	assert.Equal(t, "exported", model.Name)
	assert.Equal(t, 2, model.TriangleCount())
	assert.Equal(t, 4, model.Mesh.VertexCount())
	assert.Equal(t, geometry.NewVector3(1, 1, 0), model.Mesh.Vertices()[2])
}

func TestParseBinaryWithSolidHeader(t *testing.T) {
	model, err := ParseBytes(binarySTL(t, "solid but binary", squareFacets))
	require.NoError(t, err)
	assert.Equal(t, 2, model.TriangleCount())
}

func TestParseKeepsWinding(t *testing.T) {
	model, err := ParseBytes([]byte(asciiSquare))
	require.NoError(t, err)

	tri, err := model.Mesh.CompileFace(0)
	require.NoError(t, err)
	assert.Equal(t, geometry.NewVector3(0, 0, -1), tri.Normal())
}

func TestParseMalformed(t *testing.T) {
	tests := map[string]string{
		"garbage":        "not an stl file at all",
		"bad coordinate": "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 a 0\n",
		"short facet":    "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nendloop\nendfacet\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseBytes([]byte(input))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "square.stl")
	require.NoError(t, os.WriteFile(path, []byte(asciiSquare), 0o644))

	model, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, 2, model.TriangleCount())

	_, err = Parse(filepath.Join(dir, "missing.stl"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
