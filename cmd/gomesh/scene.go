package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/philipparndt/gomesh/internal/loader"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/render"
	"github.com/philipparndt/gomesh/pkg/shape"
	"github.com/spf13/cobra"
)

// sceneFlags are shared by the commands that run the pipeline
type sceneFlags struct {
	shape  string
	size   float64
	fit    float64
	width  int
	height int
	fov    float64
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.shape, "shape", "cube", "shape to show without a model file ("+strings.Join(shape.Kinds(), ", ")+")")
	flags.Float64Var(&f.size, "size", 1, "size of the generated shape")
	flags.Float64Var(&f.fit, "fit", 1.5, "scale loaded models to this size, 0 keeps their units")
	flags.IntVar(&f.width, "width", 0, "screen width in pixels (overrides config)")
	flags.IntVar(&f.height, "height", 0, "screen height in pixels (overrides config)")
	flags.Float64Var(&f.fov, "fov", 0, "field of view in degrees (overrides config)")
}

// options merges the configuration with flags set on the command line
func (f *sceneFlags) options(cmd *cobra.Command) (render.Options, error) {
	opts := cfg.Options()
	if cmd.Flags().Changed("width") {
		opts.Width = f.width
	}
	if cmd.Flags().Changed("height") {
		opts.Height = f.height
	}
	if cmd.Flags().Changed("fov") {
		opts.FOV = f.fov
	}
	return opts, opts.Validate()
}

// load returns the model named in args, or the generated shape without args
func (f *sceneFlags) load(ctx context.Context, args []string) (*mesh.Mesh, string, error) {
	if len(args) == 0 {
		m, err := shape.Named(f.shape, f.size)
		if err != nil {
			return nil, "", err
		}
		f.style(m)
		return m, "", nil
	}

	m, err := loader.Load(ctx, args[0])
	if err != nil {
		return nil, "", err
	}
	if m.IsEmpty() {
		return nil, "", fmt.Errorf("%s has no faces", args[0])
	}
	f.prepare(m)
	return m, args[0], nil
}

// prepare fits a loaded model into view and applies the configured style
func (f *sceneFlags) prepare(m *mesh.Mesh) {
	if f.fit > 0 {
		m.Fit(f.fit)
	}
	f.style(m)
}

func (f *sceneFlags) style(m *mesh.Mesh) {
	// Colours were validated when the configuration was loaded
	fill, stroke, _ := cfg.Colors()
	m.DefaultFill, m.DefaultStroke = fill, stroke
}
