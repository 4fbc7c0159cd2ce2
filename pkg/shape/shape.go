// Package shape builds primitive meshes centered on the origin.
//
// Every face is wound clockwise as seen from outside, so the cross product
// of its first two edges points out of the solid.
package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// ErrInvalidParameter is returned for parameters that cannot produce a valid mesh
var ErrInvalidParameter = errors.New("invalid shape parameter")

const twoPi = 2 * math.Pi

// stepTolerance absorbs rounding in 2π/dTheta for steps that divide a full turn
const stepTolerance = 1e-9

// Square creates a quad in the z=0 plane with corners at (±side/2, ±side/2, 0)
func Square(side float64) *mesh.Mesh {
	m := mesh.New()
	h := side / 2
	m.AddQuad(
		m.AddVertexForce(geometry.NewVector3(-h, -h, 0)),
		m.AddVertexForce(geometry.NewVector3(-h, h, 0)),
		m.AddVertexForce(geometry.NewVector3(h, h, 0)),
		m.AddVertexForce(geometry.NewVector3(h, -h, 0)),
		mesh.NoStyle,
	)
	return m
}

// Triangle creates an isosceles triangle with base w and height h
func Triangle(w, h float64) *mesh.Mesh {
	m := mesh.New()
	hw, hh := w/2, h/2
	m.AddTri(
		m.AddVertexForce(geometry.NewVector3(-hw, -hh, 0)),
		m.AddVertexForce(geometry.NewVector3(0, hh, 0)),
		m.AddVertexForce(geometry.NewVector3(hw, -hh, 0)),
		mesh.NoStyle,
	)
	return m
}

// rim returns the point on the circle of radius r at angle theta in plane z.
// A full turn maps back onto the start so closing wedges share its vertex.
func rim(r, theta, z float64) geometry.Vector3 {
	if theta >= twoPi {
		theta = 0
	}
	s, c := math.Sincos(theta)
	return geometry.NewVector3(-r*c, r*s, z)
}

// steps calls fn for each wedge [theta, next] of a full turn in dTheta steps.
// The wedge count is fixed up front so rounding cannot add a sliver, and the
// last wedge is clamped so the fan closes exactly at 2π.
func steps(dTheta float64, fn func(theta, next float64)) {
	n := int(math.Ceil(twoPi/dTheta - stepTolerance))
	if n < 1 {
		n = 1
	}
	for k := 0; k < n; k++ {
		next := float64(k+1) * dTheta
		if k == n-1 {
			next = twoPi
		}
		fn(float64(k)*dTheta, next)
	}
}

func checkFan(radius, dTheta float64) error {
	if radius <= 0 {
		return fmt.Errorf("radius %v: %w", radius, ErrInvalidParameter)
	}
	if !(dTheta > 0) || math.IsInf(dTheta, 0) {
		return fmt.Errorf("angle step %v: %w", dTheta, ErrInvalidParameter)
	}
	return nil
}

// Disc creates a fan of triangles from the center to the circle of the given
// radius, one wedge per dTheta radians.
func Disc(radius, dTheta float64) (*mesh.Mesh, error) {
	if err := checkFan(radius, dTheta); err != nil {
		return nil, err
	}
	m := mesh.New()
	center := m.AddVertexForce(geometry.Vector3{})
	steps(dTheta, func(theta, next float64) {
		a := m.AddVertex(rim(radius, theta, 0))
		b := m.AddVertex(rim(radius, next, 0))
		m.AddTri(center, a, b, mesh.NoStyle)
	})
	return m, nil
}

// Tetrahedron creates a tetrahedron inside the box of dimensions dim:
// three base corners on y=-dim.Y/2 and an apex at (0, dim.Y/2, 0).
func Tetrahedron(dim geometry.Vector3) *mesh.Mesh {
	m := mesh.New()
	d := dim.Mul(0.5)
	v0 := m.AddVertexForce(geometry.NewVector3(-d.X, -d.Y, -d.Z))
	v1 := m.AddVertexForce(geometry.NewVector3(d.X, -d.Y, d.Z))
	v2 := m.AddVertexForce(geometry.NewVector3(d.X, -d.Y, -d.Z))
	v3 := m.AddVertexForce(geometry.NewVector3(0, d.Y, 0))

	m.AddTri(v0, v2, v1, mesh.NoStyle) // bottom
	m.AddTri(v0, v3, v2, mesh.NoStyle) // front
	m.AddTri(v2, v3, v1, mesh.NoStyle) // right
	m.AddTri(v1, v3, v0, mesh.NoStyle) // back-left
	return m
}

// Cube creates a cube with sides of length side
func Cube(side float64) *mesh.Mesh {
	return Cuboid(geometry.Diagonal(side))
}

// Cuboid creates an axis-aligned box of dimensions dim
func Cuboid(dim geometry.Vector3) *mesh.Mesh {
	m := mesh.New()
	h := dim.Mul(0.5)
	corners := [8]int{
		m.AddVertex(geometry.NewVector3(-h.X, -h.Y, -h.Z)),
		m.AddVertex(geometry.NewVector3(-h.X, h.Y, -h.Z)),
		m.AddVertex(geometry.NewVector3(h.X, h.Y, -h.Z)),
		m.AddVertex(geometry.NewVector3(h.X, -h.Y, -h.Z)),
		m.AddVertex(geometry.NewVector3(-h.X, -h.Y, h.Z)),
		m.AddVertex(geometry.NewVector3(-h.X, h.Y, h.Z)),
		m.AddVertex(geometry.NewVector3(h.X, h.Y, h.Z)),
		m.AddVertex(geometry.NewVector3(h.X, -h.Y, h.Z)),
	}
	faces := [6][4]int{
		{0, 1, 2, 3}, // front
		{3, 2, 6, 7}, // right
		{7, 6, 5, 4}, // back
		{4, 5, 1, 0}, // left
		{1, 5, 6, 2}, // top
		{4, 0, 3, 7}, // bottom
	}
	for _, f := range faces {
		m.AddQuad(corners[f[0]], corners[f[1]], corners[f[2]], corners[f[3]], mesh.NoStyle)
	}
	return m
}

// Prism creates a triangular prism extruded along z: a front and back
// triangle joined by three quads.
func Prism(dim geometry.Vector3) *mesh.Mesh {
	m := mesh.New()
	d := dim.Mul(0.5)
	v0 := m.AddVertexForce(geometry.NewVector3(-d.X, -d.Y, -d.Z))
	v1 := m.AddVertexForce(geometry.NewVector3(0, d.Y, -d.Z))
	v2 := m.AddVertexForce(geometry.NewVector3(d.X, -d.Y, -d.Z))
	v3 := m.AddVertexForce(geometry.NewVector3(-d.X, -d.Y, d.Z))
	v4 := m.AddVertexForce(geometry.NewVector3(0, d.Y, d.Z))
	v5 := m.AddVertexForce(geometry.NewVector3(d.X, -d.Y, d.Z))

	m.AddTri(v0, v1, v2, mesh.NoStyle)      // front
	m.AddQuad(v2, v1, v4, v5, mesh.NoStyle) // right
	m.AddTri(v5, v4, v3, mesh.NoStyle)      // back
	m.AddQuad(v3, v4, v1, v0, mesh.NoStyle) // left
	m.AddQuad(v3, v0, v2, v5, mesh.NoStyle) // bottom
	return m
}

// Sphere creates a UV sphere: a pole at (0, radius, 0), stacks-1 rings of
// slices vertices, and a pole at (0, -radius, 0). Ring j occupies indices
// [1+j*slices, 1+(j+1)*slices).
func Sphere(radius float64, slices, stacks int) (*mesh.Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("radius %v: %w", radius, ErrInvalidParameter)
	}
	if slices < 3 || stacks < 2 {
		return nil, fmt.Errorf("%d slices, %d stacks: need at least 3 and 2: %w", slices, stacks, ErrInvalidParameter)
	}

	m := mesh.New()
	top := m.AddVertexForce(geometry.NewVector3(0, radius, 0))
	for j := 0; j < stacks-1; j++ {
		phi := math.Pi * float64(j+1) / float64(stacks)
		sinPhi, cosPhi := math.Sincos(phi)
		for i := 0; i < slices; i++ {
			sinTheta, cosTheta := math.Sincos(twoPi * float64(i) / float64(slices))
			m.AddVertexForce(geometry.NewVector3(sinPhi*cosTheta, cosPhi, sinPhi*sinTheta).Mul(radius))
		}
	}
	bottom := m.AddVertexForce(geometry.NewVector3(0, -radius, 0))

	ring := func(j, i int) int {
		return 1 + j*slices + i%slices
	}
	last := stacks - 2
	for i := 0; i < slices; i++ {
		m.AddTri(top, ring(0, i+1), ring(0, i), mesh.NoStyle)
		m.AddTri(bottom, ring(last, i), ring(last, i+1), mesh.NoStyle)
	}
	for j := 0; j < last; j++ {
		for i := 0; i < slices; i++ {
			m.AddQuad(ring(j, i), ring(j, i+1), ring(j+1, i+1), ring(j+1, i), mesh.NoStyle)
		}
	}
	return m, nil
}

// Cylinder creates a closed cylinder along z with the given radius and depth,
// one side quad and two cap wedges per dTheta radians.
func Cylinder(radius, depth, dTheta float64) (*mesh.Mesh, error) {
	if err := checkFan(radius, dTheta); err != nil {
		return nil, err
	}
	if depth <= 0 {
		return nil, fmt.Errorf("depth %v: %w", depth, ErrInvalidParameter)
	}

	m := mesh.New()
	d := depth / 2
	front := m.AddVertexForce(geometry.NewVector3(0, 0, -d))
	back := m.AddVertexForce(geometry.NewVector3(0, 0, d))
	steps(dTheta, func(theta, next float64) {
		fa := m.AddVertex(rim(radius, theta, -d))
		fb := m.AddVertex(rim(radius, next, -d))
		ba := m.AddVertex(rim(radius, theta, d))
		bb := m.AddVertex(rim(radius, next, d))

		m.AddTri(front, fa, fb, mesh.NoStyle)
		m.AddQuad(fa, ba, bb, fb, mesh.NoStyle)
		m.AddTri(back, bb, ba, mesh.NoStyle)
	})
	return m, nil
}
