package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVectorInDelta(t *testing.T, expected, actual Vector3, delta float64) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, "x")
	assert.InDelta(t, expected.Y, actual.Y, delta, "y")
	assert.InDelta(t, expected.Z, actual.Z, delta, "z")
}

func TestIdentityTransform(t *testing.T) {
	v := NewVector3(1.5, -2, 7)
	assert.Equal(t, v, Identity().Transform(v))
	assert.Equal(t, RotationZ(0.3), Identity().Mul(RotationZ(0.3)))
}

func TestRotationsPreserveLength(t *testing.T) {
	v := NewVector3(1, 2, 3)
	for _, m := range []Matrix4{RotationX(0.7), RotationY(-1.3), RotationZ(2.1)} {
		assert.InDelta(t, v.Length(), m.Transform(v).Length(), 1e-9)
	}
}

func TestRotationQuarterTurns(t *testing.T) {
	// Row-vector convention: v·M
	assertVectorInDelta(t, NewVector3(0, -1, 0), RotationZ(math.Pi/2).Transform(NewVector3(1, 0, 0)), 1e-12)
	assertVectorInDelta(t, NewVector3(0, 0, -1), RotationX(math.Pi/2).Transform(NewVector3(0, 1, 0)), 1e-12)
	assertVectorInDelta(t, NewVector3(0, 0, 1), RotationY(math.Pi/2).Transform(NewVector3(1, 0, 0)), 1e-12)
}

func TestMulAppliesLeftOperandFirst(t *testing.T) {
	rz := RotationZ(0.4)
	rx := RotationX(1.1)
	v := NewVector3(0.3, -0.2, 1.7)

	composed := rz.Mul(rx).Transform(v)
	sequential := rx.Transform(rz.Transform(v))

	assertVectorInDelta(t, sequential, composed, 1e-12)
	assert.NotEqual(t, rz.Mul(rx), rx.Mul(rz))
}

func TestTransformDividesByW(t *testing.T) {
	m := Identity()
	m[3][3] = 2
	assert.Equal(t, NewVector3(1, 2, 3), m.Transform(NewVector3(2, 4, 6)))
}

func TestTransformZeroWSkipsDivide(t *testing.T) {
	m := Identity()
	m[3][3] = 0
	assert.Equal(t, NewVector3(2, 4, 6), m.Transform(NewVector3(2, 4, 6)))
}
