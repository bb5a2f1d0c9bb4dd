// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tapestry analyzes how evenly checksum algorithms use their
// output space.
//
// Usage:
//
//	tapestry run [flags]
//	tapestry ks [flags] [inputs...]
//	tapestry hist [flags] [inputs...]
//
// The run command generates random messages, reduces them with each
// configured checksum, draws a histogram of the outputs, and tests the
// outputs against a uniform distribution with a two-sided
// Kolmogorov–Smirnov test. With -o it also saves the outputs in the
// sample format.
//
// The ks and hist commands read saved outputs from the input files,
// or from stdin if no inputs are given, and run the test or draw the
// histogram of each run found.
//
// Settings are read from the file named by --config (YAML or JSON),
// then TAPESTRY_* environment variables, then flags.
package main

import (
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
)

func main() {
	cmd := newRootCommand(clockwork.NewRealClock())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tapestry:", err)
		os.Exit(exitCode(err))
	}
}
