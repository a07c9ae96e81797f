package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/goroom/pkg/placement"
)

const rotateStep = 15.0 * math.Pi / 180.0

// handleInput maps mouse and keyboard events onto the placement engine
// and the camera
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)
	drag := app.Placement.drag

	// Left button drives selection and dragging
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		drag.PointerDown(0, x, y)
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		drag.PointerMove(0, x, y)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		drag.PointerUp(0, x, y)
	}

	// Right drag orbits, middle drag pans
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
			app.doOrbit(delta)
		}
	}
	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
			app.doPan(delta)
		}
	}

	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)

	// Wheel zooms the camera; with Shift it scales the selection
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		if shiftPressed && app.Placement.scene.Selected() != nil {
			if drag.BeginScale() {
				factor := 1.0 + float64(wheel)*0.05
				drag.ScaleBy(factor)
				drag.EndScale()
			}
		} else {
			app.doZoom(wheel)
		}
	}

	// Undo / redo
	if ctrlPressed && rl.IsKeyPressed(rl.KeyZ) {
		if shiftPressed {
			app.redo()
		} else {
			app.undo()
		}
	}
	if ctrlPressed && rl.IsKeyPressed(rl.KeyY) {
		app.redo()
	}

	// Layout persistence
	if ctrlPressed && rl.IsKeyPressed(rl.KeyS) {
		if err := app.saveLayout(); err != nil {
			fmt.Printf("Error saving layout: %v\n", err)
			app.status = "save failed"
		} else {
			app.status = "layout saved"
		}
	}
	if ctrlPressed && rl.IsKeyPressed(rl.KeyL) {
		if err := app.loadLayout(); err != nil {
			fmt.Printf("Error loading layout: %v\n", err)
			app.status = "load failed"
		} else {
			app.status = "layout loaded"
		}
	}

	// Delete selection
	if rl.IsKeyPressed(rl.KeyDelete) || rl.IsKeyPressed(rl.KeyBackspace) {
		if drag.DeleteSelected() {
			app.status = "deleted"
		}
	}

	// Rotate selection around its surface normal in 15 degree steps
	if rl.IsKeyPressed(rl.KeyQ) {
		app.rotateSelected(rotateStep)
	}
	if rl.IsKeyPressed(rl.KeyE) {
		app.rotateSelected(-rotateStep)
	}

	// Catalog browsing and placement
	if rl.IsKeyPressed(rl.KeyTab) {
		app.cycleArmedEntry(shiftPressed)
	}
	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter) {
		app.placeArmedEntry(x, y)
	}

	// View toggles
	if rl.IsKeyPressed(rl.KeyG) {
		app.View.showGrid = !app.View.showGrid
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
}

func (app *App) undo() {
	if app.Placement.history.Undo() {
		app.status = "undo"
	} else {
		app.status = "nothing to undo"
	}
}

func (app *App) redo() {
	if app.Placement.history.Redo() {
		app.status = "redo"
	} else {
		app.status = "nothing to redo"
	}
}

func (app *App) rotateSelected(angle float64) {
	drag := app.Placement.drag
	if !drag.BeginRotate() {
		return
	}
	drag.RotateBy(angle)
	drag.EndRotate()
}

// cycleArmedEntry moves the catalog cursor forward or backward
func (app *App) cycleArmedEntry(backward bool) {
	n := len(app.Catalog.catalog.Entries)
	if n == 0 {
		return
	}
	if backward {
		app.Catalog.armedIndex = (app.Catalog.armedIndex + n - 1) % n
	} else {
		app.Catalog.armedIndex = (app.Catalog.armedIndex + 1) % n
	}
	app.status = "armed: " + app.Catalog.catalog.Entries[app.Catalog.armedIndex].Name
}

// placedCount returns how many instances of an entry are in the scene
func (app *App) placedCount(entryID string) int {
	count := 0
	for _, obj := range app.Placement.scene.Objects() {
		if obj.EntryID == entryID {
			count++
		}
	}
	return count
}

// placeArmedEntry places the armed catalog entry under the pointer,
// sampling the room scan and falling back to the ground plane when the
// pointer misses the scan
func (app *App) placeArmedEntry(x, y float64) {
	entries := app.Catalog.catalog.Entries
	if len(entries) == 0 {
		return
	}
	entry := entries[app.Catalog.armedIndex]

	model, ok := app.Catalog.models[entry.ID]
	if !ok {
		app.status = fmt.Sprintf("%s: model unavailable", entry.Name)
		return
	}
	if app.placedCount(entry.ID) >= entry.Quantity {
		app.status = fmt.Sprintf("%s: none left", entry.Name)
		return
	}

	camera := worldCamera{app: app}
	hit, ok := app.Placement.sampler.Sample(camera, x, y)
	if !ok {
		hit, ok = placement.GroundFallback(camera, x, y)
		if !ok {
			app.status = "no surface under pointer"
			return
		}
	}

	obj := app.Placement.drag.PlaceFurniture(entry.ID, model.Bounds, entry.BaseScaleFor(model.Bounds), hit)
	if obj == nil {
		app.status = fmt.Sprintf("%s: no geometry to place", entry.Name)
		return
	}
	app.status = "placed " + entry.Name
}
