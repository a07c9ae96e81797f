package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var helpLines = []string{
	"left drag      move furniture",
	"left click     select / deselect",
	"right drag     orbit camera",
	"middle drag    pan camera",
	"wheel          zoom",
	"shift+wheel    scale selection",
	"tab            next catalog entry",
	"space/enter    place armed entry at pointer",
	"q / e          rotate selection 15 deg",
	"del            delete selection",
	"ctrl+z / y     undo / redo",
	"ctrl+s / l     save / load layout",
	"g              toggle grid",
	"h              toggle this help",
}

// drawUI renders the catalog panel, the status bar and the help overlay
func (app *App) drawUI() {
	app.drawCatalogPanel()
	app.drawStatusBar()

	if app.View.showHelp {
		app.drawHelp()
	}

	rl.DrawFPS(int32(rl.GetScreenWidth())-100, 10)
}

// drawCatalogPanel lists the catalog entries with remaining counts, the
// armed entry highlighted
func (app *App) drawCatalogPanel() {
	x := int32(10)
	y := int32(10)

	rl.DrawText("catalog", x, y, 18, rl.LightGray)
	y += 26

	for i, entry := range app.Catalog.catalog.Entries {
		remaining := entry.Quantity - app.placedCount(entry.ID)
		line := fmt.Sprintf("%s  %d/%d", entry.Name, remaining, entry.Quantity)

		color := rl.Gray
		if i == app.Catalog.armedIndex {
			color = rl.NewColor(255, 200, 60, 255)
			line = "> " + line
		}
		if _, ok := app.Catalog.models[entry.ID]; !ok {
			color = rl.NewColor(120, 70, 70, 255)
		}

		rl.DrawText(line, x, y, 16, color)
		y += 20
	}
}

// drawStatusBar shows the last action, the selection and the history
// depth at the bottom of the window
func (app *App) drawStatusBar() {
	height := int32(rl.GetScreenHeight())
	y := height - 28

	line := app.status
	if selected := app.Placement.scene.Selected(); selected != nil {
		line = fmt.Sprintf("%s   [%s on %s]", line, selected.EntryID, selected.ContactAxis)
	}
	line = fmt.Sprintf("%s   undo:%d", line, app.Placement.history.UndoDepth())

	rl.DrawText(line, 10, y, 16, rl.LightGray)
}

// drawHelp renders the key binding overlay
func (app *App) drawHelp() {
	width := int32(rl.GetScreenWidth())
	x := width - 340
	y := int32(40)

	rl.DrawRectangle(x-10, y-10, 330, int32(len(helpLines))*20+20, rl.NewColor(15, 18, 25, 220))
	for _, line := range helpLines {
		rl.DrawText(line, x, y, 16, rl.LightGray)
		y += 20
	}
}
