// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jgerrish/tapestry-analysis/checksum"
	"github.com/jgerrish/tapestry-analysis/distribution"
	"github.com/jgerrish/tapestry-analysis/experiment"
	"github.com/jgerrish/tapestry-analysis/histogram"
	"github.com/jgerrish/tapestry-analysis/internal/config"
	"github.com/jgerrish/tapestry-analysis/internal/report"
	"github.com/jgerrish/tapestry-analysis/ks"
	"github.com/jgerrish/tapestry-analysis/samplefmt"
)

type runOptions struct {
	out          string
	stats        bool
	noHistogram  bool
	failOnReject bool
}

func newRunCommand(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run checksum experiments and test their outputs for uniformity",
		Long: "run draws random messages from a generator bounded by --min and --max, reduces\n" +
			"them with each algorithm, and tests the outputs against a uniform distribution\n" +
			"over all 32-bit values.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), cmd.OutOrStdout(), root)
		},
	}

	d := config.Default()
	fs := cmd.Flags()
	fs.Int("trials", d.Trials, "number of messages per algorithm")
	fs.Int("message-size", d.MessageSize, "bytes per message")
	fs.Int("bins", d.Bins, "number of histogram bins")
	fs.String("level", d.Level, "significance level (10%, 5% or 1%)")
	fs.String("generator", d.Generator, "message generator (crc or rand)")
	fs.StringSlice("algorithm", d.Algorithms, "algorithms to analyze: "+strings.Join(checksum.Names(), ", "))
	fs.Uint32("min", d.A, "smallest generated value")
	fs.Uint32("max", d.B, "largest generated value")
	fs.Int("concurrency", d.Concurrency, "experiments to run at once (0 for GOMAXPROCS)")
	fs.StringVarP(&opts.out, "out", "o", "", "also write outputs to `file` in the sample format")
	fs.BoolVar(&opts.stats, "stats", false, "print summary statistics and chi-square tests")
	fs.BoolVar(&opts.noHistogram, "no-histogram", false, "do not draw histograms")
	fs.BoolVar(&opts.failOnReject, "fail-on-reject", false, "exit with status 1 if any output is not uniform")
	return cmd
}

func (o *runOptions) run(ctx context.Context, w io.Writer, root *rootOptions) error {
	cfg := root.cfg

	algs := make([]checksum.Algorithm, len(cfg.Algorithms))
	jobs := make([]experiment.Job, len(cfg.Algorithms))
	seeds := make([]string, len(cfg.Algorithms))
	for i, name := range cfg.Algorithms {
		alg, err := checksum.Lookup(name)
		if err != nil {
			return wrapExit(exitError, "run", err)
		}
		d, err := distribution.New(cfg.Generator, cfg.Parameters(),
			distribution.WithClock(offsetClock{root.clock, i}),
			distribution.WithLogger(root.logger))
		if err != nil {
			return wrapExit(exitError, "run", err)
		}
		if s, ok := d.(interface{ Seed() uint32 }); ok {
			seeds[i] = strconv.FormatUint(uint64(s.Seed()), 10)
		}
		algs[i] = alg
		jobs[i] = experiment.Job{
			Name:         alg.Label,
			Distribution: d,
			Checksum:     alg.New(),
			MessageSize:  cfg.MessageSize,
			Trials:       cfg.Trials,
		}
	}

	exps, err := experiment.RunAll(ctx, jobs,
		experiment.WithConcurrency(cfg.Concurrency),
		experiment.WithLogger(root.logger))
	if err != nil {
		return err
	}

	if !o.noHistogram {
		for i, e := range exps {
			fmt.Fprintf(w, "%s Histogram\n", algs[i].Label)
			if err := histogram.New(e, cfg.Bins).Draw(w); err != nil {
				return err
			}
			fmt.Fprintln(w)
		}
	}

	rows := make([]report.Row, len(exps))
	for i, e := range exps {
		rows[i] = report.Row{
			Name:   algs[i].Label,
			Result: ks.Test(experiment.ToFloat64(e).Samples, distribution.Full(), root.level),
		}
	}
	if err := report.WriteKSTable(w, rows); err != nil {
		return err
	}

	if o.stats {
		if err := writeStats(w, root, labels(algs), exps); err != nil {
			return err
		}
	}

	if o.out != "" {
		if err := o.save(algs, seeds, cfg, exps); err != nil {
			return wrapExit(exitError, "writing "+o.out, err)
		}
		root.logger.Info("wrote samples", "file", o.out)
	}

	if o.failOnReject {
		return rejectError(rows)
	}
	return nil
}

func labels(algs []checksum.Algorithm) []string {
	out := make([]string, len(algs))
	for i, a := range algs {
		out[i] = a.Label
	}
	return out
}

func (o *runOptions) save(algs []checksum.Algorithm, seeds []string, cfg *config.Config, exps []experiment.Experiment[uint32]) (err error) {
	f, err := os.Create(o.out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	sw := samplefmt.NewWriter(f)
	for i, e := range exps {
		run := &samplefmt.Run{
			Config: []samplefmt.Config{
				{Key: "algorithm", Value: algs[i].Name},
				{Key: "generator", Value: cfg.Generator},
				{Key: "message-size", Value: strconv.Itoa(cfg.MessageSize)},
			},
			Samples: e.Samples,
		}
		if seeds[i] != "" {
			run.Config = append(run.Config, samplefmt.Config{Key: "seed", Value: seeds[i]})
		}
		if err := sw.WriteRun(run); err != nil {
			return err
		}
	}
	return nil
}

// writeStats prints descriptive statistics and chi-square results for
// each experiment.
func writeStats(w io.Writer, root *rootOptions, names []string, exps []experiment.Experiment[uint32]) error {
	rows := make([]report.StatsRow, 0, len(exps))
	for i, e := range exps {
		sum, err := experiment.Summarize(e)
		if err != nil {
			root.logger.Warn("skipping statistics", "name", names[i], "err", err)
			continue
		}
		row := report.StatsRow{Name: names[i], Summary: sum}
		row.ChiSquare, err = histogram.New(e, root.cfg.Bins).ChiSquare()
		if err != nil {
			root.logger.Warn("skipping chi-square test", "name", names[i], "err", err)
		} else {
			row.HasChiSquare = true
		}
		rows = append(rows, row)
	}
	fmt.Fprintln(w)
	return report.WriteStatsTable(w, rows)
}

// rejectError returns an error with exit code exitReject naming every
// rejected row, or nil if none was rejected.
func rejectError(rows []report.Row) error {
	var rejected []string
	for _, r := range rows {
		if r.Result.Decision == ks.Reject {
			rejected = append(rejected, r.Name)
		}
	}
	if len(rejected) == 0 {
		return nil
	}
	return wrapExit(exitReject, "not uniform: "+strings.Join(rejected, ", "), nil)
}
