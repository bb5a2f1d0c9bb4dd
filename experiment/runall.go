// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jgerrish/tapestry-analysis/checksum"
	"github.com/jgerrish/tapestry-analysis/distribution"
)

// A Job is one experiment to run with RunAll. A Job exclusively owns
// its Distribution and Checksum: no two jobs in the same RunAll may
// share either.
type Job struct {
	Name         string
	Distribution distribution.Distribution
	Checksum     checksum.Checksum
	MessageSize  int
	Trials       int
}

// A RunOption configures RunAll.
type RunOption func(*runConfig)

type runConfig struct {
	limit  int
	logger *slog.Logger
}

// WithConcurrency limits the number of jobs running at once. n <= 0
// means no limit.
func WithConcurrency(n int) RunOption {
	return func(c *runConfig) {
		c.limit = n
	}
}

// WithLogger sets the logger RunAll reports progress to.
func WithLogger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		c.logger = l
	}
}

// RunAll runs jobs concurrently and returns their experiments in job
// order. It stops early and returns the first error if ctx is
// canceled; cancellation is checked between trials.
func RunAll(ctx context.Context, jobs []Job, opts ...RunOption) ([]Experiment[uint32], error) {
	cfg := runConfig{
		limit:  runtime.GOMAXPROCS(0),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, job := range jobs {
		if job.Distribution == nil || job.Checksum == nil {
			return nil, fmt.Errorf("experiment: job %q: missing distribution or checksum", job.Name)
		}
	}

	out := make([]Experiment[uint32], len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.limit > 0 {
		g.SetLimit(cfg.limit)
	} else {
		g.SetLimit(-1)
	}
	for i, job := range jobs {
		g.Go(func() error {
			cfg.logger.Debug("running experiment", "job", job.Name, "trials", job.Trials, "message_size", job.MessageSize)
			e, err := run(ctx, job.Distribution, job.Checksum, job.MessageSize, job.Trials)
			if err != nil {
				return fmt.Errorf("experiment: job %q: %w", job.Name, err)
			}
			out[i] = e
			cfg.logger.Debug("finished experiment", "job", job.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
