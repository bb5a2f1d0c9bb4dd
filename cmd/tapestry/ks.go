// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/jgerrish/tapestry-analysis/checksum"
	"github.com/jgerrish/tapestry-analysis/internal/config"
	"github.com/jgerrish/tapestry-analysis/internal/report"
	"github.com/jgerrish/tapestry-analysis/ks"
	"github.com/jgerrish/tapestry-analysis/sample"
	"github.com/jgerrish/tapestry-analysis/samplefmt"
)

func newKSCommand(root *rootOptions) *cobra.Command {
	var failOnReject bool
	var filter string
	cmd := &cobra.Command{
		Use:   "ks [inputs...]",
		Short: "Test saved outputs for uniformity",
		Long: "ks reads outputs in the sample format from the input files, or stdin if there\n" +
			"are none, and tests each run against a uniform distribution over [--min, --max].",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := readRuns(root, args, filter)
			if err != nil {
				return err
			}
			rows := make([]report.Row, len(runs))
			for i, run := range runs {
				rows[i] = report.Row{
					Name:   runLabel(run),
					Result: ks.Test(sample.Convert[float64](run.Samples), root.cfg.Parameters(), root.level),
				}
			}
			if err := report.WriteKSTable(cmd.OutOrStdout(), rows); err != nil {
				return err
			}
			if failOnReject {
				return rejectError(rows)
			}
			return nil
		},
	}

	d := config.Default()
	fs := cmd.Flags()
	fs.String("level", d.Level, "significance level (10%, 5% or 1%)")
	fs.Uint32("min", d.A, "lower bound of the reference distribution")
	fs.Uint32("max", d.B, "upper bound of the reference distribution")
	fs.StringVar(&filter, "filter", "*", "test only runs matching `query`, such as 'algorithm:(crc32 crc32c)'")
	fs.BoolVar(&failOnReject, "fail-on-reject", false, "exit with status 1 if any run is not uniform")
	return cmd
}

// readRuns reads the runs matching the filter query from the named
// files, or stdin if there are none. Malformed samples are logged and
// skipped.
func readRuns(root *rootOptions, paths []string, query string) ([]*samplefmt.Run, error) {
	filter, err := samplefmt.NewFilter(query)
	if err != nil {
		return nil, wrapExit(exitError, "parsing --filter", err)
	}
	files := &samplefmt.Files{Paths: paths, AllowStdin: true}
	runs, err := samplefmt.ReadAll(files, func(err error) {
		root.logger.Warn("skipping malformed sample", "err", err)
	})
	if err != nil {
		return nil, wrapExit(exitError, "reading samples", err)
	}
	runs = samplefmt.FilterRuns(filter, runs)
	if len(runs) == 0 {
		root.logger.Warn("no runs to analyze", "filter", filter)
	}
	return runs, nil
}

// runLabel names a run by its algorithm's display label if it is a
// known algorithm.
func runLabel(run *samplefmt.Run) string {
	l := run.Label()
	if alg, err := checksum.Lookup(l); err == nil {
		return alg.Label
	}
	return l
}
