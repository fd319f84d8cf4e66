package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sgust/imgseq2stl/internal/lattice"
	"github.com/sgust/imgseq2stl/internal/meshwriter"
	"github.com/sgust/imgseq2stl/internal/pipeline"
	"github.com/sgust/imgseq2stl/internal/profile"
	"github.com/sgust/imgseq2stl/internal/report"
)

var (
	genInput    string
	genOutput   string
	genFirst    int
	genLast     int
	genThreads  int
	genProfile  string
	genFormat   string
	genReport   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build an STL mesh from a stack of binary layer images",
	Long: `Loads layers first..last from --input (a printf-style path pattern
with one integer conversion, e.g. "layers/slice_%04d.png"), extracts
the boundary surface of the voxel union, and writes an STL (or OBJ)
mesh to --output.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genInput, "input", "", "input path pattern, e.g. \"layers/slice_%04d.png\" (required)")
	generateCmd.Flags().StringVar(&genOutput, "output", "", "output mesh path (required)")
	generateCmd.Flags().IntVar(&genFirst, "first", 0, "first layer index")
	generateCmd.Flags().IntVar(&genLast, "last", 0, "last layer index")
	generateCmd.Flags().IntVar(&genThreads, "threads", 1, "worker threads (1-200)")
	generateCmd.Flags().StringVar(&genProfile, "profile", "default", "memory profile: default, large-model, low-memory")
	generateCmd.Flags().StringVar(&genFormat, "format", meshwriter.DefaultFormat, "output format: stl-ascii, stl-binary, obj")
	generateCmd.Flags().StringVar(&genReport, "report", "", "write a JSON build report to this path")
	_ = generateCmd.MarkFlagRequired("input")
	_ = generateCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	start := time.Now()

	if genThreads < 1 || genThreads > 200 {
		return fmt.Errorf("--threads must be in [1, 200], got %d", genThreads)
	}

	writerReg := meshwriter.NewRegistry()
	w := writerReg.Get(strings.ToLower(genFormat))
	if w == nil {
		return fmt.Errorf("unknown --format %q, available: %s", genFormat, strings.Join(writerReg.Available(), ", "))
	}

	absOutput, err := filepath.Abs(genOutput)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	// Verify the output path is writable before any layer is touched: spec §7
	// requires OutputOpenFailed to be caught before any work, the same reason
	// the source calls fopen(para_output,"w") ahead of its layer loop.
	outFile, err := os.Create(absOutput)
	if err != nil {
		return fmt.Errorf("create %s: %w: %w", absOutput, err, lattice.ErrOutputOpen)
	}
	outFile.Close()

	logVerbose("input:   %s", genInput)
	logVerbose("output:  %s", absOutput)
	logVerbose("layers:  %d..%d", genFirst, genLast)
	logVerbose("threads: %d", genThreads)
	logVerbose("profile: %s", genProfile)
	logVerbose("format:  %s", w.Format())

	p := pipeline.New(pipeline.Config{
		InputPattern: genInput,
		OutputPath:   absOutput,
		First:        genFirst,
		Last:         genLast,
		Threads:      genThreads,
		Profile:      profile.Get(genProfile),
		Verbose:      verbose,
	})

	mesh, rep, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	if err := w.Write(mesh, absOutput); err != nil {
		return fmt.Errorf("write mesh: %w", err)
	}

	if genReport != "" {
		if err := report.WriteJSON(rep, genReport); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	printGenerateReport(rep, time.Since(start))
	return nil
}

func printGenerateReport(r *report.Report, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("  imgseq2stl build complete")
	fmt.Printf("  Layers:      %d..%d\n", r.FirstLayer, r.LastLayer)
	fmt.Printf("  Triangles:   %d\n", r.Stats.TriangleCount)
	for _, name := range []string{"front", "back", "left", "right", "up", "down"} {
		if n, ok := r.Stats.PerNormal[name]; ok && n > 0 {
			fmt.Printf("    %-6s %8d\n", name, n)
		}
	}
	fmt.Printf("  Mesh hash:   %s\n", r.Stats.MeshHash)
	if len(r.Warnings) > 0 {
		fmt.Printf("  Warnings:    %d\n", len(r.Warnings))
	}
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Println()
}
