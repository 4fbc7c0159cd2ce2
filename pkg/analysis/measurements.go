// Package analysis measures meshes: extent, surface area and edge statistics.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// EdgeInfo describes one edge shared by one or more faces
type EdgeInfo struct {
	A, B   int
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	// Faces counts the faces using this edge: 2 on a closed surface
	Faces int
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	VertexCount   int
	TriangleCount int
	StyleCount    int
	EdgeCount     int
	BoundaryEdges int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// Closed reports whether every edge is shared by exactly two faces
func (r *MeasurementResult) Closed() bool {
	if r.EdgeCount == 0 {
		return false
	}
	for _, e := range r.AllEdges {
		if e.Faces != 2 {
			return false
		}
	}
	return true
}

type edgeKey struct {
	a, b int
}

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// AnalyzeModel performs comprehensive analysis on a mesh.
// Edges are identified by vertex index, so only shared vertices join faces.
func AnalyzeModel(m *mesh.Mesh) *MeasurementResult {
	vertices := m.Vertices()
	faces := m.Faces()

	result := &MeasurementResult{
		BoundingBox:   m.Bounds(),
		VertexCount:   len(vertices),
		TriangleCount: len(faces),
		StyleCount:    m.StyleCount(),
		AllEdges:      make([]EdgeInfo, 0),
	}
	result.Dimensions = result.BoundingBox.Size()
	result.Volume = result.BoundingBox.Volume()

	index := make(map[edgeKey]int)
	for i := range faces {
		tri, err := m.CompileFace(i)
		if err != nil {
			continue
		}
		result.SurfaceArea += tri.Area()

		f := faces[i]
		for _, e := range [3]edgeKey{newEdgeKey(f.A, f.B), newEdgeKey(f.B, f.C), newEdgeKey(f.C, f.A)} {
			if j, ok := index[e]; ok {
				result.AllEdges[j].Faces++
				continue
			}
			index[e] = len(result.AllEdges)
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				A:      e.a,
				B:      e.b,
				Start:  vertices[e.a],
				End:    vertices[e.b],
				Length: vertices[e.a].Distance(vertices[e.b]),
				Faces:  1,
			})
		}
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	for _, e := range result.AllEdges {
		totalLength += e.Length
		minLength = math.Min(minLength, e.Length)
		maxLength = math.Max(maxLength, e.Length)
		if e.Faces == 1 {
			result.BoundaryEdges++
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	count = max(0, min(count, len(edges)))
	return edges[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
