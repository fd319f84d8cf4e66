package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sgust/imgseq2stl/internal/imagefilter"
)

var (
	filterInput  string
	filterOutput string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Blank 2x2 checkerboard pixel patterns in a layer image",
	Long: `Reads --input and, for every (x, y) with x < W-1 and y < H-1, if
pixel(x,y) == pixel(x+1,y+1) and pixel(x+1,y) == pixel(x,y+1), blanks
all four pixels. Run this over every layer before "generate" to
guarantee a manifold mesh.`,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVar(&filterInput, "input", "", "input image path (required)")
	filterCmd.Flags().StringVar(&filterOutput, "output", "", "output image path (required)")
	_ = filterCmd.MarkFlagRequired("input")
	_ = filterCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(_ *cobra.Command, _ []string) error {
	blanked, err := imagefilter.Apply(filterInput, filterOutput)
	if err != nil {
		return err
	}
	logVerbose("blanked %d checkerboard pattern(s)", blanked)
	return nil
}
