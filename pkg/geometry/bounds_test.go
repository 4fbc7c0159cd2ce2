package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	assert.True(t, bbox.IsEmpty())

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	assert.False(t, bbox.IsEmpty())
	assert.Equal(t, NewVector3(-1, 0, 2), bbox.Min)
	assert.Equal(t, NewVector3(4, 5, 6), bbox.Max)
}

func TestBoundingBoxSizeAndCenter(t *testing.T) {
	bbox := BoundsOf([]Vector3{NewVector3(0, 0, 0), NewVector3(10, 20, 30)})

	assert.Equal(t, NewVector3(10, 20, 30), bbox.Size())
	assert.Equal(t, NewVector3(5, 10, 15), bbox.Center())
	assert.Equal(t, 30.0, bbox.MaxDimension())
}

func TestBoundingBoxVolume(t *testing.T) {
	bbox := BoundsOf([]Vector3{NewVector3(0, 0, 0), NewVector3(2, 3, 4)})

	assert.InDelta(t, 24.0, bbox.Volume(), 1e-10)
}

func TestEmptyBoundingBoxHasZeroSize(t *testing.T) {
	bbox := NewBoundingBox()

	assert.Equal(t, Vector3{}, bbox.Size())
	assert.Equal(t, Vector3{}, bbox.Center())
	assert.Zero(t, bbox.Volume())
}
