package main

import (
	"os"

	"github.com/philipparndt/gomesh/internal/config"
	"github.com/philipparndt/gomesh/internal/logging"
	"github.com/philipparndt/gomesh/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	debug      bool
	quiet      bool

	// cfg is loaded before any subcommand runs
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gomesh",
	Short: "A small software renderer for triangle meshes",
	Long: `gomesh builds, loads and renders triangle meshes without a GPU.
It reads OBJ, STL and OpenSCAD models, generates primitive shapes and
animates them with a perspective pipeline, either to PNG frames or in a window.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(os.Stderr, logging.LevelFromFlags(debug, verbose, quiet))

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "scene configuration file (TOML)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log progress")
	flags.BoolVar(&debug, "debug", false, "log everything")
	flags.BoolVarP(&quiet, "quiet", "q", false, "log errors only")
}
