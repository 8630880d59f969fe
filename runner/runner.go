// Package runner solves batches of SMT-LIB scripts concurrently.
package runner // import "github.com/bernborgess/carcara/runner"

import (
	"context"
	"go/token"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bernborgess/carcara/smtlib"
	"github.com/bernborgess/carcara/solver"
)

// Outcome is the result of solving one script file.
type Outcome struct {
	Path    string
	Summary *solver.Summary
	Cached  bool
	Err     error
}

// Runner solves script files with a bounded worker pool. Each file gets
// its own solver; files never share declarations.
type Runner struct {
	Jobs    int           // concurrent workers, minimum 1
	Timeout time.Duration // per-file bound, 0 for none
	Cache   *Cache        // optional verdict cache
	Log     zerolog.Logger
}

// Run solves every path and returns one outcome per path, in order.
// Per-file failures land in the outcome; the returned error is only a
// cancelled context.
func (r *Runner) Run(ctx context.Context, paths []string) ([]Outcome, error) {
	jobs := r.Jobs
	if jobs < 1 {
		jobs = 1
	}
	outcomes := make([]Outcome, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.solve(ctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

func (r *Runner) solve(ctx context.Context, path string) Outcome {
	log := r.Log.With().Str("file", path).Logger()
	start := time.Now()

	if r.Cache != nil {
		if summary, ok := r.Cache.Get(path); ok {
			log.Debug().Msg("verdict from cache")
			return Outcome{Path: path, Summary: summary, Cached: true}
		}
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	fset := token.NewFileSet()
	script, err := smtlib.ParseFile(fset, path)
	if err != nil {
		log.Error().Err(err).Msg("parse failed")
		return Outcome{Path: path, Err: err}
	}

	summary, err := solver.New(nil).Execute(ctx, script)
	if err != nil {
		log.Error().Err(err).Msg("solve failed")
		return Outcome{Path: path, Summary: summary, Err: err}
	}

	log.Info().
		Int("checks", summary.Stats.Checks).
		Int("terms", summary.Stats.Terms).
		Bool("conforms", summary.Conforms()).
		Dur("elapsed", time.Since(start)).
		Msg("solved")

	if r.Cache != nil {
		if err := r.Cache.Put(path, summary); err != nil {
			log.Warn().Err(err).Msg("cache update failed")
		}
	}
	return Outcome{Path: path, Summary: summary}
}
