package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/philipparndt/gomesh/pkg/mesh"
)

// Write encodes the vertices and faces of m in the format read by ParseReader.
// Styles are not part of the format and are dropped.
func Write(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d faces\n", m.VertexCount(), m.FaceCount())
	for _, v := range m.Vertices() {
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
	}
	for _, f := range m.Faces() {
		fmt.Fprintf(bw, "f %d %d %d\n", f.A+1, f.B+1, f.C+1)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write model: %w", err)
	}
	return nil
}

// WriteFile writes m to filename, replacing any existing file
func WriteFile(filename string, m *mesh.Mesh) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Write(file, m); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// formatFloat uses the shortest representation that parses back to f
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
