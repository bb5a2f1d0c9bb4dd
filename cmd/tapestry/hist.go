// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgerrish/tapestry-analysis/histogram"
	"github.com/jgerrish/tapestry-analysis/internal/config"
)

func newHistCommand(root *rootOptions) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "hist [inputs...]",
		Short: "Draw histograms of saved outputs",
		Long: "hist reads outputs in the sample format from the input files, or stdin if\n" +
			"there are none, and draws a histogram of each run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := readRuns(root, args, filter)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, run := range runs {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s Histogram\n", runLabel(run))
				if err := histogram.New(run.Experiment(), root.cfg.Bins).Draw(w); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "*", "draw only runs matching `query`")
	cmd.Flags().Int("bins", config.Default().Bins, "number of histogram bins")
	return cmd
}
