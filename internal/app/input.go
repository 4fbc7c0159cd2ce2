package app

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput applies keyboard toggles:
// space pauses rotation, R rewinds it, F and E toggle fill and edges,
// H hides the overlay and L forces a reload of the source file.
func (app *App) handleInput() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		app.View.paused = !app.View.paused
	case rl.IsKeyPressed(rl.KeyR):
		app.Pipeline.SetAngle(0)
	case rl.IsKeyPressed(rl.KeyF):
		app.View.showFill = !app.View.showFill
	case rl.IsKeyPressed(rl.KeyE):
		app.View.showEdge = !app.View.showEdge
	case rl.IsKeyPressed(rl.KeyH):
		app.View.showHUD = !app.View.showHUD
	case rl.IsKeyPressed(rl.KeyL) && app.FileWatch.sourceFile != "":
		app.FileWatch.mu.Lock()
		app.FileWatch.needsReload = true
		app.FileWatch.mu.Unlock()
	}
}
