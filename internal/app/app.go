// Package app is the windowed host: it drives the render pipeline once per
// frame and draws the result with raylib.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/render"
)

// App is the state of one window
type App struct {
	Pipeline  *render.Pipeline
	Model     ModelData
	View      ViewSettings
	Stats     FrameStats
	FileWatch FileWatchState

	prepare func(*mesh.Mesh)
}

// Run opens a window and animates opts.Mesh until the window is closed or
// ctx is done. When opts.Source is set the file is reloaded on change.
func Run(ctx context.Context, opts Options) error {
	if opts.Mesh == nil {
		return errors.New("no mesh to show")
	}
	pipeline, err := render.New(opts.Render)
	if err != nil {
		return err
	}

	app := &App{
		Pipeline: pipeline,
		Model:    ModelData{mesh: opts.Mesh, faces: opts.Mesh.FaceCount()},
		View: ViewSettings{
			showFill: true,
			showEdge: true,
			showHUD:  true,
		},
		FileWatch: FileWatchState{sourceFile: opts.Source},
		prepare:   opts.Prepare,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.Source != "" {
		if err := app.setupFileWatcher(ctx); err != nil {
			slog.Warn("auto-reload will not be available", "err", err)
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	rl.SetConfigFlags(rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(opts.Render.Width), int32(opts.Render.Height), "gomesh")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	surface := raylibSurface{view: &app.View}

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		app.reloadModel(ctx)
		app.applyLoadedModel()
		app.handleInput()

		if !app.View.paused {
			app.Pipeline.Advance()
		}

		start := time.Now()
		drawables, err := app.Pipeline.Render(app.Model.mesh)
		if err != nil {
			return err
		}
		app.Stats = FrameStats{drawn: len(drawables), duration: time.Since(start)}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		for _, d := range drawables {
			surface.DrawTriangle(d)
		}
		app.drawUI()
		rl.EndDrawing()
	}

	return nil
}
