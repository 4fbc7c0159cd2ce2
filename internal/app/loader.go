package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/philipparndt/gomesh/internal/loader"
	"github.com/philipparndt/gomesh/pkg/watcher"
)

// setupFileWatcher watches the source file and its dependencies
func (app *App) setupFileWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	filesToWatch, err := loader.Dependencies(app.FileWatch.sourceFile)
	if err != nil {
		fw.Close()
		return err
	}
	slog.Info("watching for changes", "files", filesToWatch)

	callback := func(changedFile string) {
		slog.Info("file changed", "path", changedFile)
		app.FileWatch.mu.Lock()
		app.FileWatch.needsReload = true
		app.FileWatch.mu.Unlock()
	}

	if err := fw.Watch(filesToWatch, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start(ctx)
	app.FileWatch.fileWatcher = fw

	return nil
}

// reloadModel loads the source file in the background if a change is
// pending and no load is running
func (app *App) reloadModel(ctx context.Context) {
	fs := &app.FileWatch
	fs.mu.Lock()
	if !fs.needsReload || fs.isLoading {
		fs.mu.Unlock()
		return
	}
	fs.needsReload = false
	fs.isLoading = true
	fs.loadingStartTime = time.Now()
	fs.mu.Unlock()

	go func() {
		m, err := loader.Load(ctx, fs.sourceFile)

		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.isLoading = false
		if err != nil {
			// Keep drawing the previous mesh
			slog.Error("failed to reload model", "path", fs.sourceFile, "err", err)
			fs.lastError = err
			return
		}
		fs.lastError = nil
		fs.loadedMesh = m
	}()
}

// applyLoadedModel swaps in a mesh finished by reloadModel
func (app *App) applyLoadedModel() {
	fs := &app.FileWatch
	fs.mu.Lock()
	m := fs.loadedMesh
	fs.loadedMesh = nil
	started := fs.loadingStartTime
	fs.mu.Unlock()

	if m == nil {
		return
	}
	if app.prepare != nil {
		app.prepare(m)
	}
	app.Model.mesh = m
	app.Model.faces = m.FaceCount()
	slog.Info("model reloaded", "faces", app.Model.faces, "elapsed", time.Since(started).Round(time.Millisecond))
}
