// Package pipeline implements the layer loop and worker pool (spec §4.4,
// §5): for each layer z it schedules an fblrxy job (all single-image
// facets) and, for z > first, a z-job against layer z-1, merges per-job
// buffers into the global mesh on a single collector goroutine, and
// manages image lifetime across the overlap of consecutive layers.
//
// Where the original source polls a fixed worker-slot table at
// 1-second granularity, this implementation uses an errgroup.Group with
// a concurrency limit plus a results channel as its completion queue —
// the same fan-out shape the teacher's own internal/pipeline.Run uses
// for parallel image processing, and the pattern the pack's
// gioui-gio/cmd/gogio build uses an errgroup.Group for (parallel image
// resizes). Observable behavior is unchanged per spec §9.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sgust/imgseq2stl/internal/extract"
	"github.com/sgust/imgseq2stl/internal/layersrc"
	"github.com/sgust/imgseq2stl/internal/lattice"
	"github.com/sgust/imgseq2stl/internal/meshbuf"
	"github.com/sgust/imgseq2stl/internal/profile"
	"github.com/sgust/imgseq2stl/internal/raster"
	"github.com/sgust/imgseq2stl/internal/report"
)

// Config holds all parameters for a pipeline run.
type Config struct {
	InputPattern string
	OutputPath   string
	First, Last  int
	Threads      int
	Profile      profile.Profile
	Verbose      bool
}

// Pipeline orchestrates voxel-stack surface extraction.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline. Threads <= 0 defaults to 1 (spec §6
// default), never to NumCPU — unlike the teacher's image pipeline, this
// engine's parallelism is an explicit, validated CLI parameter (1..200).
func New(cfg Config) *Pipeline {
	if cfg.Threads <= 0 {
		cfg.Threads = 1
	}
	return &Pipeline{cfg: cfg}
}

type refMark struct {
	ref *raster.Ref
	use raster.Use
}

type jobResult struct {
	buf  *meshbuf.Buffer
	refs []refMark
}

// Run executes the full layer pipeline, returning the assembled global
// mesh and a build report.
func (p *Pipeline) Run() (*meshbuf.Buffer, *report.Report, error) {
	start := time.Now()
	cfg := p.cfg

	sources, err := layersrc.Resolve(cfg.InputPattern, cfg.First, cfg.Last)
	if err != nil {
		return nil, nil, err
	}

	global := meshbuf.New(cfg.Profile.GlobalInitialCapacity)
	rep := report.New(cfg.Profile.Name, cfg.InputPattern, cfg.OutputPath, cfg.First, cfg.Last, cfg.Threads)

	results := make(chan jobResult, 2*cfg.Threads)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for res := range results {
			global.Concat(res.buf)
			for _, rm := range res.refs {
				rm.ref.Mark(rm.use)
			}
		}
	}()

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.Threads)

	var prevRef *raster.Ref
	var loopErr error
	for _, src := range sources {
		select {
		case <-ctx.Done():
			loopErr = ctx.Err()
		default:
		}
		if loopErr != nil {
			break
		}

		z := src.Z
		if cfg.Verbose {
			fmt.Fprintf(os.Stderr, "[imgseq2stl] layer %d/%d\n", z, cfg.Last)
		}

		layer, err := raster.Load(src.Path, z)
		if err != nil {
			loopErr = err
			break
		}
		for _, a := range layer.Anomalies {
			msg := fmt.Sprintf("layer %d: anomalous pixel value %d at (%d,%d), treated as on", z, a.Value, a.X, a.Y)
			fmt.Fprintln(os.Stderr, "[imgseq2stl] warning:", msg)
			rep.Warnings = append(rep.Warnings, msg)
		}

		wanted := wantedUses(z, cfg.First, cfg.Last)
		ref := raster.NewRef(layer, wanted...)

		if z == cfg.First {
			capBuf := meshbuf.New(cfg.Profile.JobInitialCapacity)
			extract.AddBottom(capBuf, layer, z)
			results <- jobResult{buf: capBuf, refs: []refMark{{ref, raster.UseCap}}}
		}

		if z > cfg.First {
			belowRef := prevRef
			aboveRef := ref
			g.Go(func() error {
				jobBuf := meshbuf.New(cfg.Profile.JobInitialCapacity)
				if err := extract.AddZ(jobBuf, belowRef.Layer(), aboveRef.Layer(), z); err != nil {
					return fmt.Errorf("layer %d z-facets: %w", z, err)
				}
				results <- jobResult{buf: jobBuf, refs: []refMark{
					{belowRef, raster.UseBelow},
					{aboveRef, raster.UseAbove},
				}}
				return nil
			})
		}

		currentRef := ref
		g.Go(func() error {
			jobBuf := meshbuf.New(cfg.Profile.JobInitialCapacity)
			l := currentRef.Layer()
			extract.AddFront(jobBuf, l, z)
			extract.AddBack(jobBuf, l, z)
			extract.AddLeft(jobBuf, l, z)
			extract.AddRight(jobBuf, l, z)
			extract.AddX(jobBuf, l, z)
			extract.AddY(jobBuf, l, z)
			results <- jobResult{buf: jobBuf, refs: []refMark{{currentRef, raster.UseFblrxy}}}
			return nil
		})

		if z == cfg.Last {
			capBuf := meshbuf.New(cfg.Profile.JobInitialCapacity)
			extract.AddTop(capBuf, layer, z)
			results <- jobResult{buf: capBuf, refs: []refMark{{ref, raster.UseCap}}}
		}

		prevRef = ref
	}

	waitErr := g.Wait()
	close(results)
	<-done

	if loopErr != nil {
		return nil, nil, loopErr
	}
	if waitErr != nil {
		return nil, nil, waitErr
	}

	rep.Stats = report.Stats{
		TriangleCount: global.ValidCount(),
		PerNormal:     countPerNormal(global),
		MeshHash:      report.MeshHash(global),
		Elapsed:       time.Since(start).Round(time.Millisecond).String(),
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[imgseq2stl] %d triangles\n", rep.Stats.TriangleCount)
	}

	return global, rep, nil
}

// wantedUses determines which lifecycle uses a layer at z must see
// completed before its pixel buffer can be released (spec §9's
// recommended flag-set form, replacing the source's "release at refcount
// 3" arithmetic): every layer gets UseFblrxy; boundary layers substitute
// UseCap for the z-job use they don't have.
func wantedUses(z, first, last int) []raster.Use {
	wanted := []raster.Use{raster.UseFblrxy}
	if z == first || z == last {
		wanted = append(wanted, raster.UseCap)
	}
	if z < last {
		wanted = append(wanted, raster.UseBelow)
	}
	if z > first {
		wanted = append(wanted, raster.UseAbove)
	}
	return wanted
}

func countPerNormal(buf *meshbuf.Buffer) map[string]int {
	counts := map[string]int{}
	names := map[lattice.Normal]string{
		lattice.Front: "front", lattice.Back: "back",
		lattice.Left: "left", lattice.Right: "right",
		lattice.Up: "up", lattice.Down: "down",
	}
	for t := range buf.All() {
		counts[names[t.Normal]]++
	}
	return counts
}

// DefaultThreads returns a reasonable default worker count for callers
// that want one (the CLI itself defaults --threads to 1 per spec §6;
// this helper exists for tooling that wants a NumCPU-based suggestion).
func DefaultThreads() int {
	return runtime.NumCPU()
}
