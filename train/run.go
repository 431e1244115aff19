// SPDX-License-Identifier: MIT

package train

import (
	"context"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/numcell/config"
)

// DefaultWorkers bounds the number of jobs running at once.
const DefaultWorkers = 4

// Job is one independent training run.
type Job struct {
	Name   string
	Config *config.Config
}

// Result reports a finished job. History holds Σ|error| of every epoch,
// measured before each update; FinalErrors holds the residual of every
// example after the last epoch. Errors are in 1/S units.
type Result struct {
	RunID       uuid.UUID
	Name        string
	Steps       uint64
	History     []*big.Int
	FinalErrors []map[string]*big.Int
}

// Option configures Run.
type Option func(*options)

type options struct {
	workers int
	logger  *zap.Logger
}

// WithWorkers caps concurrent jobs; n ≤ 0 keeps DefaultWorkers.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Replicate returns n jobs named name-0 … name-(n-1) sharing cfg.
func Replicate(name string, cfg *config.Config, n int) []Job {
	jobs := make([]Job, n)
	for i := range jobs {
		jobs[i] = Job{Name: fmt.Sprintf("%s-%d", name, i), Config: cfg}
	}
	return jobs
}

// Run executes jobs in parallel and returns their results in job order.
// Each job builds its own layer from its configuration; configurations are
// only read. The first failure cancels the remaining jobs and is returned.
func Run(ctx context.Context, jobs []Job, opts ...Option) ([]Result, error) {
	o := options{workers: DefaultWorkers, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	for i, j := range jobs {
		if j.Config == nil {
			return nil, trainErrorf(fmt.Sprintf("Run: job %d", i), ErrInvalidJob)
		}
	}

	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, j := range jobs {
		g.Go(func() error {
			r, err := runJob(gctx, j, o.logger)
			if err != nil {
				return trainErrorf(fmt.Sprintf("Run: job %q", j.Name), err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runJob(ctx context.Context, j Job, logger *zap.Logger) (Result, error) {
	id := uuid.New()
	log := logger.With(zap.String("job", j.Name), zap.Stringer("run_id", id))
	cfg := j.Config

	l, err := cfg.Layer.Build(log)
	if err != nil {
		return Result{}, err
	}
	s := NewSession(l, log)
	res := Result{RunID: id, Name: j.Name}
	for epoch := 0; epoch < cfg.Train.Steps; epoch++ {
		errs, err := s.Epoch(ctx, cfg.Train.Examples, cfg.Train.LearningRate)
		if err != nil {
			return Result{}, err
		}
		res.History = append(res.History, TotalAbs(errs...))
	}
	if res.FinalErrors, err = s.Residuals(cfg.Train.Examples); err != nil {
		return Result{}, err
	}
	res.Steps = l.Steps()
	log.Info("job finished",
		zap.Uint64("steps", res.Steps),
		zap.Stringer("abs_error", TotalAbs(res.FinalErrors...)))
	return res, nil
}
