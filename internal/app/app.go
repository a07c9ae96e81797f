// Package app hosts the interactive furniture placement viewer: window
// and render loop, camera, input mapping onto the placement engine, and
// layout persistence.
package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/goroom/internal/config"
	"github.com/philipparndt/goroom/pkg/furniture"
	"github.com/philipparndt/goroom/pkg/placement"
)

// Options selects the input files for a session
type Options struct {
	RoomFile    string
	CatalogFile string
	// LayoutFile is where Ctrl+S/Ctrl+L persist the arrangement.
	// Defaults to the room file with a .layout.json suffix.
	LayoutFile string
}

// Run starts the placement application and blocks until the window
// closes
func Run(opts Options) error {
	prefs, err := config.Load()
	if err != nil {
		return err
	}

	mesh, err := loadRoom(opts.RoomFile)
	if err != nil {
		return err
	}
	fmt.Printf("Room scan: %d triangles\n", mesh.TriangleCount())

	catalog, err := furniture.LoadCatalog(opts.CatalogFile)
	if err != nil {
		return err
	}

	layoutFile := opts.LayoutFile
	if layoutFile == "" {
		layoutFile = opts.RoomFile + ".layout.json"
	}

	app := &App{
		Room: RoomData{mesh: mesh},
		Catalog: CatalogState{
			catalog:      catalog,
			models:       make(map[string]*furniture.Model),
			renderModels: make(map[string]rl.Model),
		},
		View: ViewSettings{
			showGrid: prefs.ShowGrid,
			showHelp: prefs.ShowHelp,
		},
		FileWatch:  FileWatchState{sourceFile: opts.RoomFile},
		Prefs:      prefs,
		layoutFile: layoutFile,
		status:     "ready",
	}

	scene := placement.NewScene()
	history := placement.NewCommandStack(scene, prefs.HistoryDepth)
	meshRef := roomRef{app: app}
	camera := worldCamera{app: app}

	sampler := placement.NewSurfaceSampler(meshRef)
	sampler.SampleCount = prefs.SampleCount
	sampler.AveragingRadius = prefs.AveragingRadius

	drag := placement.NewDragController(scene, camera, meshRef, history)
	drag.Threshold = prefs.DragThresholdPx

	app.Placement = PlacementState{
		scene:   scene,
		history: history,
		sampler: sampler,
		drag:    drag,
	}

	if err := app.setupFileWatcher(); err != nil {
		fmt.Printf("Warning: auto-reload unavailable: %v\n", err)
	} else {
		defer app.FileWatch.fileWatcher.Close()
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(prefs.WindowWidth, prefs.WindowHeight, "goroom")
	rl.SetTargetFPS(prefs.TargetFPS)

	app.Room.rlMesh = roomToRaylibMesh(mesh)
	app.Room.material = rl.LoadMaterialDefault()
	app.loadCatalogModels()
	app.frameRoom()

	for {
		if rl.WindowShouldClose() && !rl.IsKeyPressed(rl.KeyEscape) {
			break
		}
		if rl.IsKeyPressed(rl.KeyEscape) {
			// Escape abandons an active drag before it can close the
			// window
			if app.Placement.drag.State() != placement.StateIdle {
				app.Placement.drag.Cancel()
			} else {
				app.Placement.scene.ClearSelection()
			}
		}

		if app.FileWatch.needsReload && !app.FileWatch.isLoading {
			app.FileWatch.needsReload = false
			app.reloadRoom()
		}
		app.applyLoadedRoom()

		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		app.drawScene()
		app.drawUI()

		rl.EndDrawing()
	}

	app.Prefs.ShowGrid = app.View.showGrid
	app.Prefs.ShowHelp = app.View.showHelp
	if err := config.Save(app.Prefs); err != nil {
		fmt.Printf("Warning: failed to save preferences: %v\n", err)
	}

	for _, model := range app.Catalog.renderModels {
		rl.UnloadModel(model)
	}
	rl.UnloadMesh(&app.Room.rlMesh)
	rl.CloseWindow()

	return nil
}
