package main

import (
	"fmt"

	"github.com/philipparndt/gomesh/internal/loader"
	"github.com/philipparndt/gomesh/pkg/analysis"
	"github.com/spf13/cobra"
)

var edgeCount int

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a model file",
	Long:  "Show counts, bounding box, dimensions, surface area and edge statistics of an OBJ, STL or OpenSCAD model.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().IntVarP(&edgeCount, "edges", "e", 0, "also list the N longest and shortest edges")
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	m, err := loader.Load(cmd.Context(), filename)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeModel(m)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Model Information")
	fmt.Fprintln(out, "=================")
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Mesh Statistics:")
	fmt.Fprintf(out, "  Vertices: %d\n", result.VertexCount)
	fmt.Fprintf(out, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(out, "  Styles: %d\n", result.StyleCount)
	fmt.Fprintf(out, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "  Boundary Edges: %d\n", result.BoundaryEdges)
	fmt.Fprintf(out, "  Closed: %t\n", result.Closed())
	fmt.Fprintf(out, "  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %s\n", analysis.FormatMeasurement(result.Dimensions.X, ""))
	fmt.Fprintf(out, "  Height (Y): %s\n", analysis.FormatMeasurement(result.Dimensions.Y, ""))
	fmt.Fprintf(out, "  Depth (Z): %s\n", analysis.FormatMeasurement(result.Dimensions.Z, ""))
	fmt.Fprintf(out, "  Diagonal: %s\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), ""))
	fmt.Fprintf(out, "  Volume: %.6f cubic units\n\n", result.Volume)

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, ""))
	fmt.Fprintf(out, "  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, ""))
	fmt.Fprintf(out, "  Average: %s\n", analysis.FormatMeasurement(result.AvgEdgeLength, ""))

	if edgeCount > 0 {
		printEdges := func(title string, edges []analysis.EdgeInfo) {
			fmt.Fprintf(out, "\n%s:\n", title)
			for i, e := range edges {
				fmt.Fprintf(out, "  %d. %s -> %s  %s\n", i+1,
					analysis.FormatVector(e.Start), analysis.FormatVector(e.End),
					analysis.FormatMeasurement(e.Length, ""))
			}
		}
		printEdges("Longest Edges", analysis.FindLongestEdges(result, edgeCount))
		printEdges("Shortest Edges", analysis.FindShortestEdges(result, edgeCount))
	}

	return nil
}
