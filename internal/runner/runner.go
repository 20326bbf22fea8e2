// Package runner processes batches of percolation input sources. Every
// source gets its own grid, and a failing source yields a failed report
// without stopping the rest of the batch.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/report"
	"github.com/katalvlaran/percolation/sitefile"
)

// ErrVerifyMismatch indicates the union-find engine and the BFS cross-check
// disagree on whether a grid percolates.
var ErrVerifyMismatch = errors.New("runner: percolation cross-check mismatch")

// Options configures a Runner.
type Options struct {
	// Workers bounds how many sources are processed at once.
	Workers int
	// Pattern selects directory entries whose name contains it.
	Pattern string
	// PathHalving enables path halving in every grid.
	PathHalving bool
	// Verify re-derives percolation with a BFS over the open sites.
	Verify bool
	// MaxSideLength rejects sources declaring a larger grid before any
	// allocation. Zero leaves only the engine's own overflow check.
	MaxSideLength int
}

// Runner turns input sources into reports.
type Runner struct {
	opts   Options
	parser *sitefile.Parser
	log    logrus.FieldLogger
}

// New builds a Runner. A nil logger discards log output.
func New(opts Options, log logrus.FieldLogger) (*Runner, error) {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	parser, err := sitefile.NewParser()
	if err != nil {
		return nil, err
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Runner{opts: opts, parser: parser, log: log}, nil
}

// Matches reports whether a file name selects it as a source.
func (r *Runner) Matches(name string) bool {
	return strings.Contains(filepath.Base(name), r.opts.Pattern)
}

// Expand resolves paths into an ordered list of sources. Directories are
// listed non-recursively and filtered by Pattern; anything else, including
// paths that do not exist, is kept as-is so that it fails on its own.
func (r *Runner) Expand(paths []string) []string {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			out = append(out, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			out = append(out, p)
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !r.Matches(e.Name()) {
				continue
			}
			out = append(out, filepath.Join(p, e.Name()))
		}
	}
	return out
}

// Run processes every source named by paths and returns one report per
// source in input order. The error is non-nil only when ctx is cancelled;
// per-source failures live in the reports.
func (r *Runner) Run(ctx context.Context, paths []string) ([]report.Report, error) {
	sources := r.Expand(paths)
	reports := make([]report.Report, len(sources))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)
	for i, src := range sources {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			reports[i] = r.Process(src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}

	failed := 0
	for _, rep := range reports {
		if rep.Failed() {
			failed++
		}
	}
	r.log.WithFields(logrus.Fields{
		"sources": len(reports),
		"failed":  failed,
	}).Info("batch complete")
	return reports, nil
}

// Process parses and replays a single source.
func (r *Runner) Process(path string) report.Report {
	start := time.Now()
	rep := report.Report{Source: path}
	log := r.log.WithField("source", path)

	fail := func(err error) report.Report {
		rep.Err = err
		rep.Duration = time.Since(start)
		log.WithError(err).Warn("source failed")
		return rep
	}

	src, err := r.parser.ParseFile(path)
	if err != nil {
		return fail(err)
	}
	rep.SideLength = src.SideLength
	rep.Requests = len(src.Requests)
	rep.SkippedZeros = src.SkippedZeros

	if limit := r.opts.MaxSideLength; limit > 0 && src.SideLength > limit {
		return fail(fmt.Errorf("%s: %w: %d exceeds limit %d", path, percolation.ErrTooLarge, src.SideLength, limit))
	}

	if oor := src.OutOfRange(); len(oor) > 0 {
		rep.OutOfRange = len(oor)
		log.WithFields(logrus.Fields{
			"count": len(oor),
			"first": fmt.Sprintf("(%d,%d)", oor[0].Row, oor[0].Col),
		}).Debug("ignoring out-of-range requests")
	}

	grid, err := src.Grid(r.gridOptions()...)
	if err != nil {
		return fail(fmt.Errorf("%s: %w", path, err))
	}
	rep.MaxComponentSize = grid.MaxComponentSize()
	rep.Percolates = grid.Percolates()
	rep.OpenSites = grid.NumberOfOpenSites()

	if r.opts.Verify {
		if err := crossCheck(grid); err != nil {
			return fail(fmt.Errorf("%s: %w", path, err))
		}
	}

	rep.Duration = time.Since(start)
	log.WithFields(logrus.Fields{
		"side_length":        rep.SideLength,
		"percolates":         rep.Percolates,
		"max_component_size": rep.MaxComponentSize,
		"duration":           rep.Duration,
	}).Info("source processed")
	return rep
}

func (r *Runner) gridOptions() []percolation.Option {
	if r.opts.PathHalving {
		return []percolation.Option{percolation.WithPathHalving()}
	}
	return nil
}

// crossCheck compares the engine's answer with a BFS over the open mask.
func crossCheck(grid *percolation.Grid) error {
	gg, err := gridgraph.From2D(grid.OpenMask(), gridgraph.Conn4)
	if err != nil {
		return err
	}
	_, spans := gg.SpanningComponent()
	if spans != grid.Percolates() {
		return fmt.Errorf("%w: union-find=%t bfs=%t", ErrVerifyMismatch, grid.Percolates(), spans)
	}
	return nil
}
