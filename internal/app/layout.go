package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/philipparndt/goroom/pkg/geometry"
	"github.com/philipparndt/goroom/pkg/placement"
)

// LayoutFile is a persisted room arrangement: the scan it was placed
// against and every furniture record
type LayoutFile struct {
	RoomMesh  string             `json:"roomMesh"`
	Furniture []placement.Record `json:"furniture"`
}

// saveLayout writes the current arrangement to the layout file
func (app *App) saveLayout() error {
	layout := LayoutFile{
		RoomMesh:  app.FileWatch.sourceFile,
		Furniture: app.Placement.scene.Snapshot(),
	}

	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	if err := os.WriteFile(app.layoutFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}

	fmt.Printf("Saved %d placements to %s\n", len(layout.Furniture), app.layoutFile)
	return nil
}

// loadLayout replaces the scene with the persisted arrangement. The undo
// history is reset because its commands reference the replaced objects.
func (app *App) loadLayout() error {
	data, err := os.ReadFile(app.layoutFile)
	if err != nil {
		return fmt.Errorf("failed to read layout: %w", err)
	}

	var layout LayoutFile
	if err := json.Unmarshal(data, &layout); err != nil {
		return fmt.Errorf("failed to parse layout: %w", err)
	}

	if layout.RoomMesh != "" && layout.RoomMesh != app.FileWatch.sourceFile {
		fmt.Printf("Warning: layout was placed against %s, current room is %s\n",
			layout.RoomMesh, app.FileWatch.sourceFile)
	}

	restored, skipped := app.Placement.scene.Restore(layout.Furniture, func(entryID string) (geometry.BoundingBox, bool) {
		model, ok := app.Catalog.models[entryID]
		if !ok {
			return geometry.BoundingBox{}, false
		}
		return model.Bounds, true
	})
	app.Placement.history.Reset()

	fmt.Printf("Restored %d placements from %s\n", restored, app.layoutFile)
	for _, id := range skipped {
		fmt.Printf("Warning: skipped %q, entry not in catalog\n", id)
	}
	return nil
}
