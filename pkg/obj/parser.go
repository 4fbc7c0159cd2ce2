// Package obj reads and writes the vertex/face subset of the Wavefront OBJ
// text format.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

var (
	// ErrSyntax reports a missing field or a token that is not a number
	ErrSyntax = errors.New("syntax error")
	// ErrIndexRange reports a face index that does not name a declared vertex
	ErrIndexRange = errors.New("vertex index out of range")
)

// ParseError locates a parse failure on a 1-based line
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a model file. Either the whole file parses or no mesh is returned.
func Parse(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	m, err := ParseReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return m, nil
}

// ParseReader reads a model from r.
//
// Lines starting with "v" declare a vertex from the next three numbers, lines
// starting with "f" declare a face from 1-based vertex indices. Faces with
// more than three indices are split into a fan around the first one, and
// "a/b/c" references use only a. Comments, blank lines and other keywords
// are skipped. Vertices are never deduplicated.
func ParseReader(r io.Reader) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(r)
	m := mesh.New()

	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			err = parseVertex(m, fields[1:])
		case "f":
			err = parseFace(m, fields[1:])
		}
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading model: %w", err)
	}

	return m, nil
}

func parseVertex(m *mesh.Mesh, fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("vertex needs 3 coordinates, got %d: %w", len(fields), ErrSyntax)
	}
	var c [3]float64
	for i := range c {
		value, err := strconv.ParseFloat(fields[i], 64)
		// Only finite decimal coordinates are valid; ParseFloat also takes hex, NaN and Inf
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || strings.ContainsAny(fields[i], "xX") {
			return fmt.Errorf("coordinate %q: %w", fields[i], ErrSyntax)
		}
		c[i] = value
	}
	m.AddVertexForce(geometry.NewVector3(c[0], c[1], c[2]))
	return nil
}

func parseFace(m *mesh.Mesh, fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("face needs at least 3 vertices, got %d: %w", len(fields), ErrSyntax)
	}

	indices := make([]int, len(fields))
	for i, field := range fields {
		ref, _, _ := strings.Cut(field, "/")
		n, err := strconv.Atoi(ref)
		if err != nil {
			return fmt.Errorf("vertex reference %q: %w", field, ErrSyntax)
		}
		if n < 1 || n > m.VertexCount() {
			return fmt.Errorf("index %d with %d vertices declared: %w", n, m.VertexCount(), ErrIndexRange)
		}
		indices[i] = n - 1
	}

	for i := 1; i+1 < len(indices); i++ {
		m.AddTri(indices[0], indices[i], indices[i+1], mesh.NoStyle)
	}
	return nil
}
