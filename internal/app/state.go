package app

import (
	"sync"
	"time"

	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/render"
	"github.com/philipparndt/gomesh/pkg/watcher"
)

// ModelData holds the mesh being drawn
type ModelData struct {
	mesh  *mesh.Mesh
	faces int
}

// ViewSettings holds display settings toggled from the keyboard
type ViewSettings struct {
	paused   bool
	showFill bool
	showEdge bool
	showHUD  bool
}

// FrameStats describes the last rendered frame
type FrameStats struct {
	drawn    int
	duration time.Duration
}

// FileWatchState holds file watching and reload state.
// Fields below mu are written by loader goroutines.
type FileWatchState struct {
	sourceFile  string
	fileWatcher *watcher.FileWatcher

	mu               sync.Mutex
	needsReload      bool
	isLoading        bool
	loadingStartTime time.Time
	loadedMesh       *mesh.Mesh
	lastError        error
}

// Options configures the windowed host
type Options struct {
	// Source is the model file to follow; empty for generated meshes
	Source string
	Mesh   *mesh.Mesh
	Render render.Options
	// Prepare is applied to every mesh loaded from Source
	Prepare func(*mesh.Mesh)
}
