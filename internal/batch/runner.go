package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/dusk-indust/splicepath/internal/simplepath"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one Job. Exactly one of Match, Path and Entries
// is set on success; Error is set on failure.
type Result struct {
	ID      string                      `json:"id,omitempty"`
	Op      Op                          `json:"op"`
	Match   *bool                       `json:"match,omitempty"`
	Path    simplepath.Path             `json:"path,omitempty"`
	Entries []simplepath.AnnotatedEntry `json:"entries,omitempty"`
	Error   string                      `json:"error,omitempty"`

	// Err is the underlying error, kept for errors.Is matching.
	Err error `json:"-"`
}

// Runner evaluates jobs in parallel against one coordinate lookup.
// The lookup must be safe for concurrent use.
type Runner struct {
	lookup  simplepath.CoordLookup
	workers int
	logger  *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds the number of jobs evaluated at once. Values <= 0 mean
// runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a Runner. lookup may be nil when no job uses
// OpMergeSpacers.
func NewRunner(lookup simplepath.CoordLookup, opts ...Option) *Runner {
	r := &Runner{
		lookup:  lookup,
		workers: runtime.NumCPU(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every job and returns results in job order. A failing job
// records its error in its Result and does not stop the others; only
// context cancellation aborts the run.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := r.eval(job)
			if res.Err != nil {
				r.logger.Debug("job failed", "id", job.ID, "index", i, "op", job.Op, "err", res.Err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("batch: %w", err)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	r.logger.Info("batch complete", "jobs", len(jobs), "failed", failed, "workers", r.workers)
	return results, nil
}

// eval runs a single job.
func (r *Runner) eval(job Job) Result {
	res := Result{ID: job.ID, Op: job.Op}
	a, b := job.Paths()

	switch job.Op {
	case OpContains:
		ok := simplepath.Contains(a, b)
		res.Match = &ok
	case OpOverlap:
		ok := simplepath.OverlapCompatible(a, b)
		res.Match = &ok
	case OpMerge:
		res.Path, res.Err = simplepath.Merge(a, b)
	case OpMergeSpacers:
		if r.lookup == nil {
			res.Err = fmt.Errorf("batch: %s needs a node registry", job.Op)
			break
		}
		res.Entries, res.Err = simplepath.MergeWithSpacers(r.lookup, a, b)
	default:
		res.Err = fmt.Errorf("batch: unknown op %q", job.Op)
	}

	if res.Err != nil {
		res.Error = res.Err.Error()
	}
	return res
}
