// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgerrish/tapestry-analysis/distribution"
	"github.com/jgerrish/tapestry-analysis/internal/config"
	"github.com/jgerrish/tapestry-analysis/ks"
)

// rootOptions holds global flags and the state shared by subcommands
// once flags are parsed.
type rootOptions struct {
	configPath string
	verbose    bool

	clock  distribution.Clock
	cfg    *config.Config
	level  ks.Level
	logger *slog.Logger
}

func newRootCommand(clock distribution.Clock) *cobra.Command {
	opts := &rootOptions{clock: clock}

	cmd := &cobra.Command{
		Use:   "tapestry",
		Short: "Analyze checksum output distributions",
		Long: "tapestry measures how evenly checksum algorithms use their output space,\n" +
			"with histograms and a Kolmogorov–Smirnov test against a uniform distribution.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	d := config.Default()
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "read settings from `file` (.yaml, .yml or .json)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")
	cmd.PersistentFlags().String("log-level", d.LogLevel, "log level (debug, info, warn, error)")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newKSCommand(opts))
	cmd.AddCommand(newHistCommand(opts))

	return cmd
}

// load builds the configuration and logger for cmd.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath, cmd.Flags())
	if err != nil {
		return wrapExit(exitError, "loading configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return wrapExit(exitError, "loading configuration", err)
	}
	o.cfg = cfg
	o.level, _ = cfg.SignificanceLevel()

	lvl, _ := cfg.SlogLevel()
	if o.verbose {
		lvl = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	o.logger.Debug("loaded configuration", "config", o.configPath, "trials", cfg.Trials,
		"message_size", cfg.MessageSize, "generator", cfg.Generator, "algorithms", cfg.Algorithms)
	return nil
}

// offsetClock shifts a clock by a whole number of milliseconds so that
// distributions built at the same instant get distinct seeds.
type offsetClock struct {
	base   distribution.Clock
	offset int
}

func (c offsetClock) Now() time.Time {
	return c.base.Now().Add(time.Duration(c.offset) * time.Millisecond)
}
