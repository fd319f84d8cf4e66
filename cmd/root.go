package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "imgseq2stl",
	Short: "Turns a stack of binary raster layers into a watertight STL mesh",
	Long: `imgseq2stl — converts an ordered stack of binary (black/white) layer
images into a triangulated, watertight STL surface mesh, treating each
"on" pixel as a unit voxel and emitting only the faces on the boundary
of the voxel union.

Includes a checkerboard preprocessing filter to eliminate non-manifold
2x2 voxel arrangements, and tools to validate and inspect the
resulting mesh.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"imgseq2stl %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[imgseq2stl] "+format+"\n", args...)
	}
}
