package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/goroom/pkg/furniture"
	"github.com/philipparndt/goroom/pkg/geometry"
	"github.com/philipparndt/goroom/pkg/room"
	"github.com/philipparndt/goroom/pkg/stl"
	"github.com/philipparndt/goroom/pkg/watcher"
)

// loadFurnitureModel loads placement geometry for a catalog entry.
// Catalogs mostly reference glTF/GLB exports; STL is accepted for
// hand-made test furniture.
func loadFurnitureModel(path string) (*furniture.Model, error) {
	if strings.EqualFold(filepath.Ext(path), ".stl") {
		model, err := stl.Parse(path)
		if err != nil {
			return nil, err
		}
		if model.TriangleCount() == 0 {
			return nil, fmt.Errorf("%s contains no triangle geometry", path)
		}
		return &furniture.Model{
			Name:          path,
			Bounds:        model.BoundingBox(),
			VertexCount:   model.TriangleCount() * 3,
			TriangleCount: model.TriangleCount(),
		}, nil
	}
	return furniture.LoadGLB(path)
}

// roomRef answers ray queries against whichever room mesh is currently
// loaded, so the sampler and drag controller survive scan reloads
type roomRef struct {
	app *App
}

func (r roomRef) Raycast(ray geometry.Ray) (geometry.SurfaceHit, bool) {
	return r.app.Room.mesh.Raycast(ray)
}

// loadRoom parses the scan file into a room mesh
func loadRoom(path string) (*room.Mesh, error) {
	model, err := stl.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse room scan: %w", err)
	}
	mesh := room.FromModel(model)
	if mesh.TriangleCount() == 0 {
		return nil, fmt.Errorf("room scan %s contains no triangles", path)
	}
	return mesh, nil
}

// loadCatalogModels loads the geometry of every catalog entry. Entries
// whose model fails to load stay in the catalog but cannot be placed.
func (app *App) loadCatalogModels() {
	for _, entry := range app.Catalog.catalog.Entries {
		model, err := loadFurnitureModel(entry.ModelPath)
		if err != nil {
			fmt.Printf("Warning: model for %q unavailable: %v\n", entry.ID, err)
			continue
		}
		app.Catalog.models[entry.ID] = model

		rlModel := rl.LoadModel(entry.ModelPath)
		if rlModel.MeshCount > 0 {
			app.Catalog.renderModels[entry.ID] = rlModel
		}
	}
	fmt.Printf("Catalog: %d entries, %d models loaded\n",
		len(app.Catalog.catalog.Entries), len(app.Catalog.models))
}

// setupFileWatcher watches the room scan for on-disk changes
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		fmt.Printf("\nRoom scan changed: %s\n", changedFile)
		app.FileWatch.needsReload = true
	}

	if err := fw.Watch([]string{app.FileWatch.sourceFile}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch room scan: %w", err)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	fmt.Printf("Watching room scan for changes: %s\n", app.FileWatch.sourceFile)

	return nil
}

// reloadRoom parses the changed scan in the background. The mesh upload
// happens later on the main thread.
func (app *App) reloadRoom() {
	if app.FileWatch.isLoading {
		return
	}

	app.FileWatch.isLoading = true
	app.FileWatch.loadingStartTime = time.Now()
	fmt.Println("Reloading room scan...")

	go func() {
		model, err := stl.Parse(app.FileWatch.sourceFile)
		if err != nil {
			fmt.Printf("Error reloading room scan: %v\n", err)
			app.FileWatch.isLoading = false
			return
		}
		app.FileWatch.loadedModel = model
	}()
}

// applyLoadedRoom swaps in a reloaded scan (must run on the main thread
// for raylib). Placed furniture and the camera are preserved.
func (app *App) applyLoadedRoom() {
	if app.FileWatch.loadedModel == nil {
		return
	}

	model := app.FileWatch.loadedModel
	newMesh := room.FromModel(model)
	newRLMesh := roomToRaylibMesh(newMesh)

	oldMesh := app.Room.rlMesh
	app.Room.mesh = newMesh
	app.Room.rlMesh = newRLMesh

	bounds := newMesh.Bounds()
	center := bounds.Center()
	app.Room.center = toRaylibVector3(center)

	rl.UnloadMesh(&oldMesh)

	elapsed := time.Since(app.FileWatch.loadingStartTime)
	fmt.Printf("Room scan reloaded in %.2fs (%d triangles)\n", elapsed.Seconds(), newMesh.TriangleCount())
	app.status = fmt.Sprintf("room reloaded (%d triangles)", newMesh.TriangleCount())

	app.FileWatch.loadedModel = nil
	app.FileWatch.isLoading = false
}
