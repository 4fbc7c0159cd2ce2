package render

import (
	"math"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// Point2 is a position in screen pixels
type Point2 struct {
	X, Y float64
}

// Projection maps view space to screen pixels with a perspective divide
type Projection struct {
	Width  float64
	Height float64
	Matrix geometry.Matrix4
}

// NewProjection builds the perspective matrix for a screen of width x height
// pixels, a field of view in degrees and the near and far planes.
// Arguments are not checked; use Options.Validate first.
func NewProjection(width, height int, fov, near, far float64) Projection {
	w, h := float64(width), float64(height)
	aspect := h / w
	f := 1 / math.Tan(fov*0.5*math.Pi/180)
	q := far / (far - near)

	var m geometry.Matrix4
	m[0][0] = aspect * f
	m[1][1] = f
	m[2][2] = q
	m[2][3] = 1
	m[3][2] = -near * q

	return Projection{Width: w, Height: h, Matrix: m}
}

// Project applies the perspective matrix, leaving x and y in [-1, 1] for
// points inside the view
func (p Projection) Project(v geometry.Vector3) geometry.Vector3 {
	return p.Matrix.Transform(v)
}

// ToScreen maps a projected point to pixels. x grows right and y grows
// with view-space y; there is no flip.
func (p Projection) ToScreen(v geometry.Vector3) Point2 {
	return Point2{
		X: (v.X + 1) * 0.5 * p.Width,
		Y: (v.Y + 1) * 0.5 * p.Height,
	}
}
