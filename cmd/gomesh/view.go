package main

import (
	"github.com/philipparndt/gomesh/internal/app"
	"github.com/spf13/cobra"
)

var viewScene sceneFlags

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Show the rotating model in a window",
	Long:  "Open a window that animates the model and reloads it whenever the file, or an OpenSCAD dependency, changes.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewScene.register(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	opts, err := viewScene.options(cmd)
	if err != nil {
		return err
	}
	m, source, err := viewScene.load(cmd.Context(), args)
	if err != nil {
		return err
	}

	return app.Run(cmd.Context(), app.Options{
		Source:  source,
		Mesh:    m,
		Render:  opts,
		Prepare: viewScene.prepare,
	})
}
