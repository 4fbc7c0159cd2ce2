package mesh

import (
	"image/color"
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func rightTriangle() Triangle {
	return Triangle{
		Vertices:  [3]geometry.Vector3{v(0, 0, 0), v(0, 4, 0), v(3, 0, 0)},
		Luminance: 1,
	}
}

func TestTriangleArea(t *testing.T) {
	assert.InDelta(t, 6.0, rightTriangle().Area(), 1e-10)
}

func TestTriangleEdgeLengths(t *testing.T) {
	lengths := rightTriangle().EdgeLengths()

	assert.InDelta(t, 4.0, lengths[0], 1e-10)
	assert.InDelta(t, 5.0, lengths[1], 1e-10)
	assert.InDelta(t, 3.0, lengths[2], 1e-10)
}

func TestTriangleCenterAndMidZ(t *testing.T) {
	tri := Triangle{Vertices: [3]geometry.Vector3{v(0, 0, 1), v(3, 0, 2), v(0, 3, 6)}}

	center := tri.Center()
	assert.InDelta(t, 1.0, center.X, 1e-12)
	assert.InDelta(t, 1.0, center.Y, 1e-12)
	assert.InDelta(t, 3.0, tri.MidZ(), 1e-12)
}

func TestTriangleNormalFollowsClockwiseWinding(t *testing.T) {
	// Clockwise in the z=0 plane as seen from -z: normal faces -z
	assert.Equal(t, v(0, 0, -1), rightTriangle().Normal())
}

func TestTriangleTransformAndTranslate(t *testing.T) {
	tri := rightTriangle()

	moved := tri.Translate(v(0, 0, 3))
	assert.Equal(t, v(0, 4, 3), moved.Vertices[1])
	assert.Equal(t, v(0, 4, 0), tri.Vertices[1], "original is a value")

	scale := geometry.Identity()
	scale[0][0] = 2
	assert.Equal(t, v(6, 0, 0), tri.Transform(scale).Vertices[2])
}

func TestShadedFillWhite(t *testing.T) {
	tri := rightTriangle()
	tri.Fill = &color.RGBA{R: 255, G: 255, B: 255, A: 255}

	tri.Luminance = 1
	assert.Equal(t, &color.RGBA{R: 255, G: 255, B: 255, A: 255}, tri.ShadedFill())

	tri.Luminance = 0.5
	shaded := tri.ShadedFill()
	assert.InDelta(t, 128, int(shaded.R), 1)
	assert.Equal(t, shaded.R, shaded.G)
	assert.Equal(t, shaded.R, shaded.B)
}

func TestShadedFillColoured(t *testing.T) {
	tri := rightTriangle()
	tri.Fill = &color.RGBA{R: 255, A: 255}

	// Pure red has lightness 0.5; full luminance keeps it
	tri.Luminance = 1
	assert.Equal(t, &color.RGBA{R: 255, A: 255}, tri.ShadedFill())

	tri.Luminance = 0.5
	shaded := tri.ShadedFill()
	assert.InDelta(t, 128, int(shaded.R), 1)
	assert.Zero(t, shaded.G)
	assert.Zero(t, shaded.B)
}

func TestShadedFillNone(t *testing.T) {
	assert.Nil(t, rightTriangle().ShadedFill())
}
