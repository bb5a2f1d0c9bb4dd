// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgerrish/tapestry-analysis/internal/config"
)

var epoch = time.UnixMilli(1700000000123)

// execute runs the tapestry command with args and returns its
// standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(clockwork.NewFakeClockAt(epoch))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if errOut.Len() > 0 {
		t.Logf("stderr:\n%s", errOut.String())
	}
	return out.String(), err
}

func TestCommands(t *testing.T) {
	cmd := newRootCommand(clockwork.NewFakeClockAt(epoch))
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"run", "ks", "hist"})

	for _, f := range []string{"config", "verbose", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(f), f)
	}

	run, _, err := cmd.Find([]string{"run"})
	require.NoError(t, err)
	for name := range config.FlagKeys {
		if name == "log-level" {
			continue
		}
		assert.NotNil(t, run.Flags().Lookup(name), name)
	}
}

func TestKS(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
	out, err := execute(t, "ks", "testdata/outputs.txt")
	require.NoError(t, err)
	g.Assert(t, "ks", []byte(out))
}

func TestKSFailOnReject(t *testing.T) {
	_, err := execute(t, "ks", "--fail-on-reject", "testdata/outputs.txt")
	require.Error(t, err)
	assert.Equal(t, exitReject, exitCode(err))
	assert.Contains(t, err.Error(), "FNV-1a")
	assert.NotContains(t, err.Error(), "Adler32")
}

func TestKSFilter(t *testing.T) {
	out, err := execute(t, "ks", "--filter=-algorithm:fnv1a", "--fail-on-reject", "testdata/outputs.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "Adler32")
	assert.NotContains(t, out, "FNV-1a")

	_, err = execute(t, "ks", "--filter", "algorithm:(", "testdata/outputs.txt")
	require.Error(t, err)
	assert.Equal(t, exitError, exitCode(err))
}

func TestKSMissingFile(t *testing.T) {
	_, err := execute(t, "ks", "testdata/does-not-exist.txt")
	require.Error(t, err)
	assert.Equal(t, exitError, exitCode(err))
}

func TestHist(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))

	out, err := execute(t, "hist", "testdata/outputs.txt")
	require.NoError(t, err)
	g.Assert(t, "hist", []byte(out))

	out, err = execute(t, "hist", "--bins=4", "testdata/outputs.txt")
	require.NoError(t, err)
	g.Assert(t, "hist_4_bins", []byte(out))

	out, err = execute(t, "hist", "--filter", "algorithm:crc32", "testdata/outputs.txt")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Histogram"))
	assert.Contains(t, out, "CRC32 Histogram\n")
}

func TestRun(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.txt")
	out, err := execute(t, "run", "--trials=100", "--message-size=8",
		"--algorithm=adler32,crc32", "--bins=5", "-o", file)
	require.NoError(t, err)

	for _, label := range []string{"Adler32", "CRC32"} {
		assert.Contains(t, out, label+" Histogram\n")
	}
	assert.Equal(t, 2*5, strings.Count(out, " - 0x"))
	assert.Contains(t, out, "reject the null hypothesis?")

	// Testing the saved outputs reproduces the table printed by run.
	saved, err := execute(t, "ks", file)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, saved), "run output:\n%s\nks output:\n%s", out, saved)
}

func TestRunDeterministic(t *testing.T) {
	args := []string{"run", "--trials=50", "--algorithm=crc32c", "--no-histogram"}
	a, err := execute(t, args...)
	require.NoError(t, err)
	b, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotContains(t, a, "Histogram")
}

func TestRunStats(t *testing.T) {
	out, err := execute(t, "run", "--trials=60", "--algorithm=xxhash", "--generator=rand",
		"--no-histogram", "--stats")
	require.NoError(t, err)
	assert.Contains(t, out, "chi2")
	assert.Contains(t, out, "  xxHash      60")
}

func TestRunStatsOneBin(t *testing.T) {
	out, err := execute(t, "run", "--bins=1", "--stats", "--no-histogram", "--trials=100")
	require.NoError(t, err)
	assert.Contains(t, out, "median")
	assert.Contains(t, out, "stddev")
	// One bin leaves no degrees of freedom, so neither row has a
	// chi-square result.
	assert.Equal(t, 2, strings.Count(out, "           -    -         -\n"))
}

func TestRunFailOnReject(t *testing.T) {
	// Messages of zero bytes all reduce to the same checksum.
	_, err := execute(t, "run", "--trials=50", "--message-size=0",
		"--algorithm=crc32", "--no-histogram", "--fail-on-reject")
	require.Error(t, err)
	assert.Equal(t, exitReject, exitCode(err))
}

func TestRunInvalidConfig(t *testing.T) {
	for _, args := range [][]string{
		{"run", "--bins=0"},
		{"run", "--bins=256"},
		{"run", "--algorithm=md5"},
		{"run", "--level=2%"},
		{"run", "--min=10", "--max=9"},
		{"run", "--config=testdata/does-not-exist.yaml"},
	} {
		t.Run(strings.Join(args[1:], " "), func(t *testing.T) {
			_, err := execute(t, args...)
			require.Error(t, err)
			assert.Equal(t, exitError, exitCode(err))
		})
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trials: 45\nalgorithms: [fnv1a]\nbins: 3\n"), 0o666))

	out, err := execute(t, "run", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "FNV-1a Histogram\n")
	assert.NotContains(t, out, "Adler32")
	assert.Equal(t, 3, strings.Count(out, " - 0x"))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitError, exitCode(errors.New("boom")))
	assert.Equal(t, exitReject, exitCode(wrapExit(exitReject, "rejected", nil)))

	inner := errors.New("inner")
	err := fmt.Errorf("outer: %w", wrapExit(exitError, "loading", inner))
	assert.Equal(t, exitError, exitCode(err))
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "outer: loading: inner", err.Error())
}
