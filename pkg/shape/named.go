package shape

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// ErrUnknownShape is returned by Named for kinds it does not know
var ErrUnknownShape = errors.New("unknown shape")

// Resolution of the curved shapes built by Named
const (
	namedStep   = math.Pi / 16
	namedSlices = 24
	namedStacks = 12
)

var builders = map[string]func(size float64) (*mesh.Mesh, error){
	"square":   func(s float64) (*mesh.Mesh, error) { return Square(s), nil },
	"triangle": func(s float64) (*mesh.Mesh, error) { return Triangle(s, s), nil },
	"disc":     func(s float64) (*mesh.Mesh, error) { return Disc(s/2, namedStep) },
	"tetrahedron": func(s float64) (*mesh.Mesh, error) {
		return Tetrahedron(geometry.Diagonal(s)), nil
	},
	"cube": func(s float64) (*mesh.Mesh, error) { return Cube(s), nil },
	"cuboid": func(s float64) (*mesh.Mesh, error) {
		return Cuboid(geometry.NewVector3(s, s/2, s/4)), nil
	},
	"prism":    func(s float64) (*mesh.Mesh, error) { return Prism(geometry.Diagonal(s)), nil },
	"sphere":   func(s float64) (*mesh.Mesh, error) { return Sphere(s/2, namedSlices, namedStacks) },
	"cylinder": func(s float64) (*mesh.Mesh, error) { return Cylinder(s/2, s, namedStep) },
}

// Kinds returns the shape names accepted by Named, sorted
func Kinds() []string {
	kinds := make([]string, 0, len(builders))
	for k := range builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Named builds the shape called kind whose largest extent is size
func Named(kind string, size float64) (*mesh.Mesh, error) {
	build, ok := builders[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownShape, kind, strings.Join(Kinds(), ", "))
	}
	if !(size > 0) {
		return nil, fmt.Errorf("size %v: %w", size, ErrInvalidParameter)
	}
	return build(size)
}
