package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goroom/pkg/room"
	"github.com/philipparndt/goroom/pkg/stl"
)

var infoCmd = &cobra.Command{
	Use:   "info [room.stl]",
	Short: "Display information about a room scan",
	Long:  "Show the triangle count, bounds and dimensions of a scanned room mesh.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing room scan: %v\n", err)
		os.Exit(1)
	}

	mesh := room.FromModel(model)
	bounds := mesh.Bounds()
	size := bounds.Size()

	fmt.Println("Room Scan Information")
	fmt.Println("=====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Printf("Triangles: %d\n\n", mesh.TriangleCount())

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: (%.3f, %.3f, %.3f)\n", bounds.Min.X, bounds.Min.Y, bounds.Min.Z)
	fmt.Printf("  Max: (%.3f, %.3f, %.3f)\n", bounds.Max.X, bounds.Max.Y, bounds.Max.Z)

	fmt.Println("\nDimensions:")
	fmt.Printf("  Width  (X): %.3f m\n", size.X)
	fmt.Printf("  Height (Y): %.3f m\n", size.Y)
	fmt.Printf("  Depth  (Z): %.3f m\n", size.Z)
	fmt.Printf("  Diagonal:   %.3f m\n", bounds.Diagonal())
}
