package mesh

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// NoStyle marks a face that uses the mesh's default fill and stroke
const NoStyle = -1

var (
	// ErrFaceNotFound is returned when a face index is out of range
	ErrFaceNotFound = errors.New("face not found")
	// ErrVertexNotFound is returned when a vertex index is out of range
	ErrVertexNotFound = errors.New("vertex not found")
)

// Default colours of a new mesh
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{A: 255}
)

// FaceSettings is a fill/stroke pair. A nil colour means that aspect is not drawn.
type FaceSettings struct {
	Fill   *color.RGBA
	Stroke *color.RGBA
}

// Face is a triangle over three vertex indices, wound clockwise as seen
// from outside, with an index into the style palette or NoStyle.
type Face struct {
	A, B, C int
	Style   int
}

// Mesh is an indexed triangle soup with a palette of face styles
type Mesh struct {
	vertices      []geometry.Vector3
	faces         []Face
	styles        []FaceSettings
	DefaultFill   *color.RGBA
	DefaultStroke *color.RGBA
}

// New creates an empty mesh drawn white with black outlines by default
func New() *Mesh {
	fill, stroke := White, Black
	return &Mesh{
		vertices:      make([]geometry.Vector3, 0),
		faces:         make([]Face, 0),
		styles:        make([]FaceSettings, 0),
		DefaultFill:   &fill,
		DefaultStroke: &stroke,
	}
}

// String implements fmt.Stringer
func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh(%d vertices, %d faces)", len(m.vertices), len(m.faces))
}

// AddVertex returns the index of a vertex exactly equal to v, appending it
// when none exists. The search is linear and the comparison is exact:
// coordinates that differ in the last bit are distinct vertices.
func (m *Mesh) AddVertex(v geometry.Vector3) int {
	for i, existing := range m.vertices {
		if existing == v {
			return i
		}
	}
	return m.AddVertexForce(v)
}

// AddVertexForce appends v without looking for an existing copy
func (m *Mesh) AddVertexForce(v geometry.Vector3) int {
	m.vertices = append(m.vertices, v)
	return len(m.vertices) - 1
}

// AddStyle appends a style to the palette and returns its index
func (m *Mesh) AddStyle(style FaceSettings) int {
	m.styles = append(m.styles, style)
	return len(m.styles) - 1
}

// ClearStyles empties the palette; every face falls back to the defaults
func (m *Mesh) ClearStyles() {
	m.styles = m.styles[:0]
	for i := range m.faces {
		m.faces[i].Style = NoStyle
	}
}

// SetGlobalStyle points every face at the given style (or NoStyle)
func (m *Mesh) SetGlobalStyle(style int) {
	m.checkStyle(style)
	for i := range m.faces {
		m.faces[i].Style = style
	}
}

// AddTri appends the triangle (a, b, c). It panics if an index does not
// refer to an existing vertex or style.
func (m *Mesh) AddTri(a, b, c, style int) {
	m.checkVertex(a)
	m.checkVertex(b)
	m.checkVertex(c)
	m.checkStyle(style)
	m.faces = append(m.faces, Face{A: a, B: b, C: c, Style: style})
}

// AddQuad appends the planar quad a-b-c-d as the triangles (a, b, c) and (a, c, d)
func (m *Mesh) AddQuad(a, b, c, d, style int) {
	m.AddTri(a, b, c, style)
	m.AddTri(a, c, d, style)
}

func (m *Mesh) checkVertex(i int) {
	if i < 0 || i >= len(m.vertices) {
		panic(fmt.Sprintf("mesh: vertex index %d out of range [0,%d)", i, len(m.vertices)))
	}
}

func (m *Mesh) checkStyle(i int) {
	if i != NoStyle && (i < 0 || i >= len(m.styles)) {
		panic(fmt.Sprintf("mesh: style index %d out of range [0,%d)", i, len(m.styles)))
	}
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// FaceCount returns the number of triangular faces
func (m *Mesh) FaceCount() int {
	return len(m.faces)
}

// StyleCount returns the size of the style palette
func (m *Mesh) StyleCount() int {
	return len(m.styles)
}

// IsEmpty reports whether the mesh has no faces
func (m *Mesh) IsEmpty() bool {
	return len(m.faces) == 0
}

// Vertices returns a copy of the vertex list
func (m *Mesh) Vertices() []geometry.Vector3 {
	return append([]geometry.Vector3(nil), m.vertices...)
}

// Faces returns a copy of the face list
func (m *Mesh) Faces() []Face {
	return append([]Face(nil), m.faces...)
}

// Styles returns a copy of the style palette
func (m *Mesh) Styles() []FaceSettings {
	return append([]FaceSettings(nil), m.styles...)
}

// CompileVertex returns the vertex at index i
func (m *Mesh) CompileVertex(i int) (geometry.Vector3, error) {
	if i < 0 || i >= len(m.vertices) {
		return geometry.Vector3{}, fmt.Errorf("vertex %d: %w", i, ErrVertexNotFound)
	}
	return m.vertices[i], nil
}

// CompileFace resolves face i into a concrete triangle with its colours
func (m *Mesh) CompileFace(i int) (Triangle, error) {
	if i < 0 || i >= len(m.faces) {
		return Triangle{}, fmt.Errorf("face %d: %w", i, ErrFaceNotFound)
	}
	face := m.faces[i]
	tri := Triangle{
		Vertices:  [3]geometry.Vector3{m.vertices[face.A], m.vertices[face.B], m.vertices[face.C]},
		Luminance: 1,
	}
	if face.Style != NoStyle {
		style := m.styles[face.Style]
		tri.Fill, tri.Stroke = style.Fill, style.Stroke
	} else {
		tri.Fill, tri.Stroke = m.DefaultFill, m.DefaultStroke
	}
	return tri, nil
}

// Merge appends other's vertices, styles and faces to m; other is not modified.
// Faces of other without a style are pointed at one new style carrying
// other's default colours, so they keep their look inside m. This includes
// absent defaults: an unfilled mesh stays unfilled after the merge.
func (m *Mesh) Merge(other *Mesh) {
	if other.IsEmpty() {
		return
	}

	vertexBase := len(m.vertices)
	styleBase := len(m.styles)

	m.vertices = append(m.vertices, other.vertices...)
	m.styles = append(m.styles, other.styles...)

	// Synthesized even when both defaults are nil, so such faces stay undrawn
	defaultStyle := m.AddStyle(FaceSettings{Fill: other.DefaultFill, Stroke: other.DefaultStroke})

	for _, face := range other.faces {
		merged := Face{
			A:     vertexBase + face.A,
			B:     vertexBase + face.B,
			C:     vertexBase + face.C,
			Style: defaultStyle,
		}
		if face.Style != NoStyle {
			merged.Style = styleBase + face.Style
		}
		m.faces = append(m.faces, merged)
	}
}

// Bounds returns the bounding box of all vertices
func (m *Mesh) Bounds() geometry.BoundingBox {
	return geometry.BoundsOf(m.vertices)
}
