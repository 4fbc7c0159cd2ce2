// Package loader opens model files of any supported format as meshes.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/obj"
	"github.com/philipparndt/gomesh/pkg/openscad"
	"github.com/philipparndt/gomesh/pkg/stl"
)

// ErrUnsupported is returned for file extensions without a reader
var ErrUnsupported = errors.New("unsupported file type")

// Extensions lists the supported model file extensions
var Extensions = []string{".obj", ".stl", ".scad"}

func extension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// Load reads the model at path, choosing the reader by file extension.
// OpenSCAD sources are rendered with the openscad binary first.
func Load(ctx context.Context, path string) (*mesh.Mesh, error) {
	var (
		m   *mesh.Mesh
		err error
	)

	switch ext := extension(path); ext {
	case ".obj":
		m, err = obj.Parse(path)
	case ".stl":
		var model *stl.Model
		if model, err = stl.Parse(path); err == nil {
			m = model.Mesh
		}
	case ".scad":
		slog.Info("rendering OpenSCAD file", "path", path)
		m, err = openscad.NewRenderer(filepath.Dir(path)).Load(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %q (expected one of %s)", ErrUnsupported, ext, strings.Join(Extensions, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	slog.Info("loaded model", "path", path, "vertices", m.VertexCount(), "faces", m.FaceCount())
	return m, nil
}

// Dependencies returns every file whose change affects the model at path:
// the file itself plus, for OpenSCAD sources, everything it uses or includes.
func Dependencies(path string) ([]string, error) {
	if extension(path) != ".scad" {
		return []string{path}, nil
	}
	deps, err := openscad.NewRenderer(filepath.Dir(path)).ResolveDependencies(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}
	return deps, nil
}
