package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goroom/version"
)

var rootCmd = &cobra.Command{
	Use:   "goroom",
	Short: "Surface-aware furniture placement for scanned rooms",
	Long: `goroom loads a scanned room mesh and lets you place, drag, rotate and
scale furniture from a catalog across its surfaces. Objects keep their
contact face on the surface they rest on, stay upright on tilted
surfaces, and every change is undoable.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
