package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/goroom/internal/config"
	"github.com/philipparndt/goroom/pkg/furniture"
	"github.com/philipparndt/goroom/pkg/placement"
	"github.com/philipparndt/goroom/pkg/room"
	"github.com/philipparndt/goroom/pkg/stl"
	"github.com/philipparndt/goroom/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera   rl.Camera3D
	distance float32
	angleX   float32
	angleY   float32
	target   rl.Vector3 // Current camera target (can be panned)

	defaultDist   float32 // Defaults for reset
	defaultAngleX float32
	defaultAngleY float32
	defaultTarget rl.Vector3
}

// RoomData holds the loaded room scan and its GPU resources
type RoomData struct {
	mesh     *room.Mesh
	rlMesh   rl.Mesh
	material rl.Material
	center   rl.Vector3
	size     float32 // Max dimension, for camera framing
}

// CatalogState holds the furniture catalog and loaded model geometry
type CatalogState struct {
	catalog *furniture.Catalog
	// models caches placement geometry per entry id
	models map[string]*furniture.Model
	// renderModels caches raylib models per entry id
	renderModels map[string]rl.Model
	// armedIndex is the catalog entry the next placement uses
	armedIndex int
}

// PlacementState wires the placement engine together
type PlacementState struct {
	scene   *placement.Scene
	history *placement.CommandStack
	sampler *placement.SurfaceSampler
	drag    *placement.DragController
}

// ViewSettings holds display toggles
type ViewSettings struct {
	showGrid bool
	showHelp bool
}

// FileWatchState holds room scan watching and reload state
type FileWatchState struct {
	sourceFile       string
	fileWatcher      *watcher.FileWatcher
	needsReload      bool
	isLoading        bool
	loadingStartTime time.Time
	loadedModel      *stl.Model // Parsed in background, applied on main thread
}

// App is the interactive placement application
type App struct {
	Camera    CameraState
	Room      RoomData
	Catalog   CatalogState
	Placement PlacementState
	View      ViewSettings
	FileWatch FileWatchState
	Prefs     config.Prefs

	layoutFile string
	status     string // Last status line shown in the UI
}
