package mesh

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gomesh/pkg/geometry"
)

// nearWhite is the per-channel threshold above which a fill counts as white
const nearWhite = 200

// Triangle is a compiled face: concrete vertices, resolved colours and the
// luminance computed by lighting. It is a short-lived value.
type Triangle struct {
	Vertices  [3]geometry.Vector3
	Fill      *color.RGBA
	Stroke    *color.RGBA
	Luminance float64
}

// Transform applies m to all three vertices
func (t Triangle) Transform(m geometry.Matrix4) Triangle {
	for i, v := range t.Vertices {
		t.Vertices[i] = m.Transform(v)
	}
	return t
}

// Translate moves all three vertices by v
func (t Triangle) Translate(v geometry.Vector3) Triangle {
	for i, p := range t.Vertices {
		t.Vertices[i] = p.Add(v)
	}
	return t
}

// Cross returns (v1-v0)×(v2-v0), pointing out of a clockwise face
func (t Triangle) Cross() geometry.Vector3 {
	e1 := t.Vertices[1].Sub(t.Vertices[0])
	e2 := t.Vertices[2].Sub(t.Vertices[0])
	return e1.Cross(e2)
}

// Normal returns the unit face normal. Degenerate triangles give NaN.
func (t Triangle) Normal() geometry.Vector3 {
	return t.Cross().Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.Cross().Length() / 2.0
}

// Center returns the centroid of the triangle
func (t Triangle) Center() geometry.Vector3 {
	return t.Vertices[0].Add(t.Vertices[1]).Add(t.Vertices[2]).Mul(1.0 / 3.0)
}

// MidZ returns the mean z of the three vertices
func (t Triangle) MidZ() float64 {
	return (t.Vertices[0].Z + t.Vertices[1].Z + t.Vertices[2].Z) / 3.0
}

// EdgeLengths returns the lengths of the edges v0-v1, v1-v2 and v2-v0
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.Vertices[0].Distance(t.Vertices[1]),
		t.Vertices[1].Distance(t.Vertices[2]),
		t.Vertices[2].Distance(t.Vertices[0]),
	}
}

// ShadedFill returns the fill colour with its HSL lightness replaced by the
// luminance: the full luminance for near-white fills, half of it otherwise.
// A nil fill stays nil.
func (t Triangle) ShadedFill() *color.RGBA {
	if t.Fill == nil {
		return nil
	}
	base := *t.Fill
	h, s, _ := colorful.Color{
		R: float64(base.R) / 255,
		G: float64(base.G) / 255,
		B: float64(base.B) / 255,
	}.Hsl()

	lightness := t.Luminance * 0.5
	if base.R > nearWhite && base.G > nearWhite && base.B > nearWhite {
		lightness = t.Luminance
	}

	r, g, b := colorful.Hsl(h, s, lightness).Clamped().RGB255()
	return &color.RGBA{R: r, G: g, B: b, A: base.A}
}
