// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report formats analysis results as fixed-width text tables.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jgerrish/tapestry-analysis/experiment"
	"github.com/jgerrish/tapestry-analysis/histogram"
	"github.com/jgerrish/tapestry-analysis/ks"
)

// Row is the KS test result of one named experiment.
type Row struct {
	Name   string
	Result ks.Result
}

// WriteKSTable writes a table of KS results with one line per row,
// answering whether each experiment departs from a uniform
// distribution.
func WriteKSTable(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%8s%15s%18s     reject the null hypothesis?\n", "name", "statistic", "critical value")
	for _, r := range rows {
		res := r.Result
		if !res.HasCritical {
			fmt.Fprintf(bw, "%8s%15.6f%18s     invalid sample size (n=%d)\n", r.Name, res.Statistic, "-", res.N)
			continue
		}
		fmt.Fprintf(bw, "%8s%15.6f%18.6f     %s\n", r.Name, res.Statistic, res.Critical, answer(res.Decision))
	}
	return bw.Flush()
}

func answer(d ks.Decision) string {
	switch d {
	case ks.Reject:
		return "yes, data does not follow a uniform distribution"
	case ks.FailToReject:
		return "no,  data follows a uniform distribution"
	}
	return "inconclusive"
}

// StatsRow holds descriptive statistics and a chi-square test of one
// named experiment. HasChiSquare is false if the test could not be
// run, for example with a single bin.
type StatsRow struct {
	Name         string
	Summary      experiment.Summary
	ChiSquare    histogram.ChiSquareResult
	HasChiSquare bool
}

// WriteStatsTable writes descriptive statistics and chi-square results
// for each row. Rows without a chi-square result print "-" in the
// chi2, df and p columns.
func WriteStatsTable(w io.Writer, rows []StatsRow) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%8s%8s%14s%14s%14s%14s%14s%12s%5s%10s\n",
		"name", "n", "min", "max", "mean", "median", "stddev", "chi2", "df", "p")
	for _, r := range rows {
		s, c := r.Summary, r.ChiSquare
		fmt.Fprintf(bw, "%8s%8d%14.0f%14.0f%14.1f%14.1f%14.1f",
			r.Name, s.N, s.Min, s.Max, s.Mean, s.Median, s.StdDev)
		if !r.HasChiSquare {
			fmt.Fprintf(bw, "%12s%5s%10s\n", "-", "-", "-")
			continue
		}
		fmt.Fprintf(bw, "%12.3f%5d%10.4f\n", c.Statistic, c.DegreesOfFreedom, c.PValue)
	}
	return bw.Flush()
}
