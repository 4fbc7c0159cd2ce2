package main

import (
	"log/slog"

	"github.com/philipparndt/gomesh/pkg/obj"
	"github.com/philipparndt/gomesh/pkg/shape"
	"github.com/spf13/cobra"
)

var (
	shapeSize   float64
	shapeOutput string
)

var shapeCmd = &cobra.Command{
	Use:       "shape <kind>",
	Short:     "Generate a primitive shape as an OBJ model",
	Long:      "Generate a primitive centered on the origin and write its vertices and faces in OBJ format, to a file or standard output.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: shape.Kinds(),
	RunE:      runShape,
}

func init() {
	rootCmd.AddCommand(shapeCmd)

	shapeCmd.Flags().Float64Var(&shapeSize, "size", 1, "largest extent of the shape")
	shapeCmd.Flags().StringVarP(&shapeOutput, "output", "o", "", "output file (default standard output)")
}

func runShape(cmd *cobra.Command, args []string) error {
	m, err := shape.Named(args[0], shapeSize)
	if err != nil {
		return err
	}

	if shapeOutput == "" {
		return obj.Write(cmd.OutOrStdout(), m)
	}
	if err := obj.WriteFile(shapeOutput, m); err != nil {
		return err
	}
	slog.Info("wrote shape", "path", shapeOutput, "vertices", m.VertexCount(), "faces", m.FaceCount())
	return nil
}
