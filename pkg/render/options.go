package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// ErrInvalidOptions is returned by New and Validate for unusable options
var ErrInvalidOptions = errors.New("invalid render options")

// Options configures a Pipeline. Screen and projection values are fixed for
// the lifetime of the pipeline; light and angle can change between frames.
type Options struct {
	Width  int
	Height int

	// FOV is the field of view in degrees
	FOV  float64
	Near float64
	Far  float64

	// Offset moves the rotated model in front of the camera
	Offset geometry.Vector3
	Camera geometry.Vector3
	Light  geometry.Vector3

	// Step is the rotation added by each Advance, in radians
	Step float64

	// Workers bounds the goroutines shading faces; 0 uses GOMAXPROCS
	Workers int
}

// DefaultOptions returns a 1440x960 view with a 90 degree field of view,
// the model 3 units in front of a camera at the origin and light shining
// along -z.
func DefaultOptions() Options {
	return Options{
		Width:  1440,
		Height: 960,
		FOV:    90,
		Near:   1,
		Far:    1000,
		Offset: geometry.NewVector3(0, 0, 3),
		Light:  geometry.NewVector3(0, 0, -1),
		Step:   0.02,
	}
}

// Validate checks that the options describe a finite, non-degenerate view
func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("screen %dx%d: %w", o.Width, o.Height, ErrInvalidOptions)
	case !(o.FOV > 0 && o.FOV < 180):
		return fmt.Errorf("fov %v must be in (0, 180): %w", o.FOV, ErrInvalidOptions)
	case !(o.Near > 0):
		return fmt.Errorf("near %v must be positive: %w", o.Near, ErrInvalidOptions)
	case !(o.Far > o.Near) || math.IsInf(o.Far, 0):
		return fmt.Errorf("far %v must be finite and beyond near %v: %w", o.Far, o.Near, ErrInvalidOptions)
	case o.Light.IsZero():
		return fmt.Errorf("light direction is zero: %w", ErrInvalidOptions)
	case math.IsNaN(o.Step) || math.IsInf(o.Step, 0):
		return fmt.Errorf("rotation step %v: %w", o.Step, ErrInvalidOptions)
	case o.Workers < 0:
		return fmt.Errorf("workers %d: %w", o.Workers, ErrInvalidOptions)
	}
	return nil
}
