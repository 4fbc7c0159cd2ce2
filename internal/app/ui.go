package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gomesh/version"
)

// drawUI draws the statistics overlay and the reload status
func (app *App) drawUI() {
	if !app.View.showHUD {
		return
	}

	const (
		x          = 10
		lineHeight = 20
		fontSize   = 16
	)
	y := int32(10)
	line := func(text string, col rl.Color) {
		rl.DrawText(text, x, y, fontSize, col)
		y += lineHeight
	}

	line(fmt.Sprintf("gomesh %s", version.GetVersion()), rl.RayWhite)
	line(fmt.Sprintf("Faces: %d  Drawn: %d", app.Model.faces, app.Stats.drawn), rl.LightGray)
	line(fmt.Sprintf("Angle: %.2f rad", app.Pipeline.Angle()), rl.LightGray)
	line(fmt.Sprintf("Frame: %.2f ms  FPS: %d", float64(app.Stats.duration.Microseconds())/1000, rl.GetFPS()), rl.LightGray)
	if app.View.paused {
		line("Paused", rl.Yellow)
	}

	fs := &app.FileWatch
	fs.mu.Lock()
	loading, started, lastErr := fs.isLoading, fs.loadingStartTime, fs.lastError
	fs.mu.Unlock()

	screenHeight := int32(rl.GetScreenHeight())
	switch {
	case loading:
		text := fmt.Sprintf("Loading... (%.1fs)", time.Since(started).Seconds())
		rl.DrawText(text, x, screenHeight-30, fontSize, rl.Yellow)
	case lastErr != nil:
		rl.DrawText(fmt.Sprintf("Reload failed: %v", lastErr), x, screenHeight-30, fontSize, rl.Red)
	default:
		rl.DrawText("[Space] pause  [R] reset  [F] fill  [E] edges  [H] overlay", x, screenHeight-30, fontSize, rl.Gray)
	}
}
