package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sgust/imgseq2stl/internal/lattice"
	"github.com/sgust/imgseq2stl/internal/meshreader"
	"github.com/sgust/imgseq2stl/internal/report"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <mesh.stl>",
	Short: "Display summary statistics for an ASCII STL mesh",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	path := args[0]

	buf, err := meshreader.ReadASCII(path)
	if err != nil {
		return fmt.Errorf("read mesh: %w", err)
	}

	counts := map[string]int{}
	names := map[lattice.Normal]string{
		lattice.Front: "front", lattice.Back: "back",
		lattice.Left: "left", lattice.Right: "right",
		lattice.Up: "up", lattice.Down: "down",
	}
	minX, minY, minZ := int(^uint(0)>>1), int(^uint(0)>>1), int(^uint(0)>>1)
	maxX, maxY, maxZ := 0, 0, 0

	for t := range buf.All() {
		counts[names[t.Normal]]++
		for _, p := range [3]lattice.Point{t.A, t.B, t.C} {
			x, y, z := p.Unpack()
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if z < minZ {
				minZ = z
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
			if z > maxZ {
				maxZ = z
			}
		}
	}

	fmt.Println()
	fmt.Printf("  Mesh:        %s\n", path)
	fmt.Printf("  Triangles:   %d\n", buf.ValidCount())
	fmt.Printf("  Bounds:      (%d,%d,%d) - (%d,%d,%d)\n", minX, minY, minZ, maxX, maxY, maxZ)
	fmt.Printf("  Mesh hash:   %s\n", report.MeshHash(buf))
	fmt.Println("  Per-normal facet counts:")

	var keys []string
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("    %-6s %8d\n", k, counts[k])
	}
	fmt.Println()
	return nil
}
