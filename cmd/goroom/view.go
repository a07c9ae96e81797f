package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/goroom/internal/app"
)

var (
	catalogFile string
	layoutFile  string
)

var viewCmd = &cobra.Command{
	Use:   "view [room.stl]",
	Short: "Open the interactive placement viewer",
	Long: `Open a scanned room mesh in the interactive viewer. Furniture from the
catalog can be placed under the pointer, dragged across floors and
walls, rotated and scaled. Ctrl+S saves the arrangement to a layout
file next to the scan.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(app.Options{
			RoomFile:    args[0],
			CatalogFile: catalogFile,
			LayoutFile:  layoutFile,
		})
	},
}

func init() {
	viewCmd.Flags().StringVarP(&catalogFile, "catalog", "c", "catalog.json", "furniture catalog file")
	viewCmd.Flags().StringVarP(&layoutFile, "layout", "l", "", "layout file (default: <room>.layout.json)")
	rootCmd.AddCommand(viewCmd)
}
