package shape

import (
	"math"
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShape(t *testing.T) func(*mesh.Mesh, error) *mesh.Mesh {
	return func(m *mesh.Mesh, err error) *mesh.Mesh {
		t.Helper()
		require.NoError(t, err)
		return m
	}
}

// vertexMean is an interior point of any convex generator output
func vertexMean(m *mesh.Mesh) geometry.Vector3 {
	var sum geometry.Vector3
	verts := m.Vertices()
	for _, v := range verts {
		sum = sum.Add(v)
	}
	return sum.Mul(1 / float64(len(verts)))
}

func assertOutward(t *testing.T, m *mesh.Mesh) {
	t.Helper()
	inside := vertexMean(m)
	for i := 0; i < m.FaceCount(); i++ {
		tri, err := m.CompileFace(i)
		require.NoError(t, err)
		n := tri.Cross()
		assert.Greater(t, n.Length(), 1e-12, "face %d is degenerate", i)
		assert.Greater(t, n.Dot(tri.Center().Sub(inside)), 0.0, "face %d points inward", i)
	}
}

func TestCounts(t *testing.T) {
	must := mustShape(t)
	tests := []struct {
		name     string
		mesh     *mesh.Mesh
		vertices int
		faces    int
	}{
		{"square", Square(2), 4, 2},
		{"triangle", Triangle(2, 3), 3, 1},
		{"tetrahedron", Tetrahedron(geometry.Diagonal(1)), 4, 4},
		{"cube", Cube(1), 8, 12},
		{"cuboid", Cuboid(geometry.NewVector3(1, 2, 3)), 8, 12},
		{"prism", Prism(geometry.Diagonal(1)), 6, 8},
		{"disc quarter", must(Disc(1, math.Pi/2)), 5, 4},
		{"disc uneven", must(Disc(1, 1)), 8, 7},
		{"sphere", must(Sphere(1, 8, 4)), 2 + 8*3, 2 * 8 * 3},
		{"sphere single ring", must(Sphere(1, 8, 2)), 10, 16},
		{"cylinder", must(Cylinder(1, 2, math.Pi/2)), 10, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.vertices, tt.mesh.VertexCount())
			assert.Equal(t, tt.faces, tt.mesh.FaceCount())
		})
	}
}

func TestClosedShapesFaceOutward(t *testing.T) {
	must := mustShape(t)
	tests := map[string]*mesh.Mesh{
		"tetrahedron": Tetrahedron(geometry.NewVector3(2, 3, 1)),
		"cuboid":      Cuboid(geometry.NewVector3(1, 2, 3)),
		"prism":       Prism(geometry.NewVector3(3, 1, 2)),
		"sphere":      must(Sphere(2, 12, 6)),
		"cylinder":    must(Cylinder(1, 3, math.Pi/8)),
	}
	for name, m := range tests {
		t.Run(name, func(t *testing.T) {
			assertOutward(t, m)
		})
	}
}

func TestFlatShapesFaceNegativeZ(t *testing.T) {
	must := mustShape(t)
	tests := map[string]*mesh.Mesh{
		"square":   Square(2),
		"triangle": Triangle(2, 1),
		"disc":     must(Disc(1, 0.3)),
	}
	for name, m := range tests {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < m.FaceCount(); i++ {
				tri, err := m.CompileFace(i)
				require.NoError(t, err)
				n := tri.Normal()
				assert.InDelta(t, -1.0, n.Z, 1e-9, "face %d", i)
			}
		})
	}
}

func TestSquareCorners(t *testing.T) {
	bounds := Square(4).Bounds()
	assert.Equal(t, geometry.NewVector3(-2, -2, 0), bounds.Min)
	assert.Equal(t, geometry.NewVector3(2, 2, 0), bounds.Max)
}

func TestDiscClosesExactlyAtFullTurn(t *testing.T) {
	m, err := Disc(2, 1)
	require.NoError(t, err)

	faces := m.Faces()
	first, last := faces[0], faces[len(faces)-1]
	assert.Equal(t, first.B, last.C, "last wedge ends on the first rim vertex")
	for i := range faces {
		tri, err := m.CompileFace(i)
		require.NoError(t, err)
		assert.Greater(t, tri.Area(), 0.0)
	}

	verts := m.Vertices()
	assert.Equal(t, geometry.Vector3{}, verts[0])
	for _, p := range verts[1:] {
		assert.InDelta(t, 2.0, p.Length(), 1e-12)
	}
}

func TestFansWithEvenStepsHaveNoSlivers(t *testing.T) {
	for _, n := range []int{3, 5, 6, 7, 10, 12, 20, 30, 100} {
		dTheta := twoPi / float64(n)

		disc, err := Disc(1, dTheta)
		require.NoError(t, err)
		assert.Equal(t, n, disc.FaceCount(), "disc with %d wedges", n)
		assert.Equal(t, n+1, disc.VertexCount(), "disc with %d wedges", n)

		cylinder, err := Cylinder(1, 1, dTheta)
		require.NoError(t, err)
		assert.Equal(t, 4*n, cylinder.FaceCount(), "cylinder with %d wedges", n)

		for _, m := range []*mesh.Mesh{disc, cylinder} {
			for i := 0; i < m.FaceCount(); i++ {
				tri, err := m.CompileFace(i)
				require.NoError(t, err)
				assert.Greater(t, tri.Area(), 1e-9, "n=%d face %d", n, i)
			}
		}
	}
}

func TestSphereVerticesOnSurface(t *testing.T) {
	m, err := Sphere(3, 10, 5)
	require.NoError(t, err)

	verts := m.Vertices()
	assert.Equal(t, geometry.NewVector3(0, 3, 0), verts[0])
	assert.Equal(t, geometry.NewVector3(0, -3, 0), verts[len(verts)-1])
	for _, p := range verts {
		assert.InDelta(t, 3.0, p.Length(), 1e-12)
	}
}

func TestInvalidParameters(t *testing.T) {
	tests := map[string]func() (*mesh.Mesh, error){
		"disc zero step":       func() (*mesh.Mesh, error) { return Disc(1, 0) },
		"disc negative step":   func() (*mesh.Mesh, error) { return Disc(1, -0.1) },
		"disc NaN step":        func() (*mesh.Mesh, error) { return Disc(1, math.NaN()) },
		"disc zero radius":     func() (*mesh.Mesh, error) { return Disc(0, 0.1) },
		"sphere few slices":    func() (*mesh.Mesh, error) { return Sphere(1, 2, 4) },
		"sphere few stacks":    func() (*mesh.Mesh, error) { return Sphere(1, 8, 1) },
		"sphere zero radius":   func() (*mesh.Mesh, error) { return Sphere(0, 8, 4) },
		"cylinder zero depth":  func() (*mesh.Mesh, error) { return Cylinder(1, 0, 0.1) },
		"cylinder zero step":   func() (*mesh.Mesh, error) { return Cylinder(1, 1, 0) },
		"cylinder zero radius": func() (*mesh.Mesh, error) { return Cylinder(0, 1, 0.1) },
	}
	for name, build := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := build()
			assert.ErrorIs(t, err, ErrInvalidParameter)
			assert.Nil(t, m)
		})
	}
}

func TestNamed(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			m, err := Named(kind, 2)
			require.NoError(t, err)
			assert.False(t, m.IsEmpty())
			assert.InDelta(t, 2.0, m.Bounds().MaxDimension(), 1e-9)
		})
	}
}

func TestNamedErrors(t *testing.T) {
	_, err := Named("dodecahedron", 1)
	assert.ErrorIs(t, err, ErrUnknownShape)

	_, err = Named("cube", 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	m, err := Named("CUBE", 1)
	require.NoError(t, err)
	assert.Equal(t, 12, m.FaceCount())
}
