package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3Arithmetic(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)

	assert.Equal(t, NewVector3(5, 7, 9), v1.Add(v2))
	assert.Equal(t, NewVector3(-3, -3, -3), v1.Sub(v2))
	assert.Equal(t, NewVector3(4, 10, 18), v1.MulVec(v2))
	assert.Equal(t, NewVector3(2, 4, 6), v1.Mul(2))
	assert.Equal(t, NewVector3(1.5, 2.5, 3.5), v1.AddScalar(0.5))
	assert.Equal(t, NewVector3(7, 7, 7), Diagonal(7))
}

func TestVector3IsImmutable(t *testing.T) {
	v := NewVector3(1, 2, 3)
	_ = v.Add(NewVector3(1, 1, 1))
	_ = v.Mul(10)
	_ = v.Normalize()

	assert.Equal(t, NewVector3(1, 2, 3), v)
}

func TestVector3Length(t *testing.T) {
	assert.InDelta(t, 5.0, NewVector3(3, 4, 0).Length(), 1e-10)
	assert.InDelta(t, 5.0, NewVector3(0, 0, 0).Distance(NewVector3(3, 4, 0)), 1e-10)
}

func TestVector3Dot(t *testing.T) {
	// 1*4 + 2*5 + 3*6
	assert.InDelta(t, 32.0, NewVector3(1, 2, 3).Dot(NewVector3(4, 5, 6)), 1e-10)
}

func TestVector3Cross(t *testing.T) {
	assert.Equal(t, NewVector3(0, 0, 1), NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0)))
	assert.Equal(t, NewVector3(0, 0, -1), NewVector3(0, 1, 0).Cross(NewVector3(1, 0, 0)))
}

func TestNormalizeHasUnitLength(t *testing.T) {
	vectors := []Vector3{
		NewVector3(3, 4, 0),
		NewVector3(-1, -1, -1),
		NewVector3(1e-6, 0, 0),
		NewVector3(1e6, -2e6, 3e5),
		NewVector3(0.1, 0.2, -0.3),
	}
	for _, v := range vectors {
		assert.InDelta(t, 1.0, v.Normalize().Length(), 1e-9, "normalize(%v)", v)
	}
}

func TestNormalizeZeroIsNaN(t *testing.T) {
	n := Vector3{}.Normalize()
	assert.True(t, math.IsNaN(n.X))
	assert.True(t, Vector3{}.IsZero())
}

func TestCrossIsOrthogonalToInputs(t *testing.T) {
	pairs := [][2]Vector3{
		{NewVector3(1, 2, 3), NewVector3(4, 5, 6)},
		{NewVector3(-2, 0.5, 7), NewVector3(3, -1, 0.25)},
		{NewVector3(0, 0, 1), NewVector3(1, 1, 0)},
		{NewVector3(10, -3, 2), NewVector3(10, -3, 2.5)},
	}
	for _, p := range pairs {
		n := p[0].Cross(p[1])
		assert.InDelta(t, 0, n.Dot(p[0]), 1e-9)
		assert.InDelta(t, 0, n.Dot(p[1]), 1e-9)
	}
}

func TestVector3MinMax(t *testing.T) {
	a := NewVector3(1, 5, -3)
	b := NewVector3(2, -5, 0)

	assert.Equal(t, NewVector3(1, -5, -3), a.Min(b))
	assert.Equal(t, NewVector3(2, 5, 0), a.Max(b))
}
