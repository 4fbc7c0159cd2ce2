package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/philipparndt/gomesh/pkg/raster"
	"github.com/philipparndt/gomesh/pkg/render"
	"github.com/spf13/cobra"
)

var (
	renderScene  sceneFlags
	renderFrames int
	renderOut    string
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render animation frames to PNG files",
	Long: `Run the pipeline headless and write frame_0000.png, frame_0001.png, ...
Without a file the shape chosen with --shape is rendered.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderScene.register(renderCmd)
	renderCmd.Flags().IntVarP(&renderFrames, "frames", "n", 1, "number of frames to render")
	renderCmd.Flags().StringVar(&renderOut, "out", ".", "output directory")
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderFrames < 1 {
		return fmt.Errorf("--frames must be at least 1, got %d", renderFrames)
	}
	opts, err := renderScene.options(cmd)
	if err != nil {
		return err
	}
	m, _, err := renderScene.load(cmd.Context(), args)
	if err != nil {
		return err
	}

	pipeline, err := render.New(opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(renderOut, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	canvas := raster.New(opts.Width, opts.Height)
	for frame := 0; frame < renderFrames; frame++ {
		if err := cmd.Context().Err(); err != nil {
			return err
		}

		canvas.Clear()
		if err := pipeline.Draw(m, canvas); err != nil {
			return err
		}

		path := filepath.Join(renderOut, fmt.Sprintf("frame_%04d.png", frame))
		if err := canvas.SavePNG(path); err != nil {
			return err
		}
		slog.Debug("wrote frame", "path", path, "angle", pipeline.Angle())
		pipeline.Advance()
	}

	slog.Info("rendered frames", "count", renderFrames, "dir", renderOut)
	return nil
}
