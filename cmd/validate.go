package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgust/imgseq2stl/internal/meshcheck"
	"github.com/sgust/imgseq2stl/internal/meshreader"
)

var validateCmd = &cobra.Command{
	Use:   "validate <mesh.stl>",
	Short: "Check an ASCII STL mesh for watertightness and winding consistency",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	path := args[0]

	buf, err := meshreader.ReadASCII(path)
	if err != nil {
		return fmt.Errorf("read mesh: %w", err)
	}

	var errs []string
	errs = append(errs, meshcheck.WindingConsistent(buf)...)
	errs = append(errs, meshcheck.Watertight(buf)...)

	if len(errs) == 0 {
		fmt.Println("  ✓ Mesh is valid")
		fmt.Printf("  ✓ %d triangles, watertight, winding consistent\n", buf.ValidCount())
		return nil
	}

	fmt.Printf("  ✗ Mesh has %d error(s):\n", len(errs))
	for i, e := range errs {
		if i >= 20 {
			fmt.Printf("    … and %d more\n", len(errs)-i)
			break
		}
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}
