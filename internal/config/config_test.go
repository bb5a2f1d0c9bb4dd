// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"math"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgerrish/tapestry-analysis/distribution"
	"github.com/jgerrish/tapestry-analysis/ks"
)

func TestDefault(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, distribution.Parameters{A: 0, B: math.MaxUint32}, cfg.Parameters())
	l, err := cfg.SignificanceLevel()
	require.NoError(t, err)
	assert.Equal(t, ks.FivePercent, l)
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load("testdata/run.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Trials)
	assert.Equal(t, 16, cfg.MessageSize)
	assert.Equal(t, 8, cfg.Bins)
	assert.Equal(t, "1%", cfg.Level)
	assert.Equal(t, "rand", cfg.Generator)
	assert.Equal(t, []string{"crc32c", "xxhash"}, cfg.Algorithms)
	assert.Equal(t, uint32(0), cfg.A)
	assert.Equal(t, uint32(65535), cfg.B)
	assert.NoError(t, cfg.Validate())
}

func TestLoadJSON(t *testing.T) {
	cfg, err := Load("testdata/run.json", nil)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Trials)
	assert.Equal(t, 50, cfg.MessageSize)
	assert.Equal(t, []string{"fnv1a"}, cfg.Algorithms)
	l, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("TAPESTRY_TRIALS", "77")
	t.Setenv("TAPESTRY_ALGORITHMS", "adler32, bzip2")
	t.Setenv("TAPESTRY_MESSAGE_SIZE", "9")
	cfg, err := Load("testdata/run.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.Trials)
	assert.Equal(t, 9, cfg.MessageSize)
	assert.Equal(t, []string{"adler32", "bzip2"}, cfg.Algorithms)
	assert.Equal(t, 8, cfg.Bins)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("TAPESTRY_TRIALS", "77")
	t.Setenv("TAPESTRY_BINS", "12")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	d := Default()
	fs.Int("trials", d.Trials, "")
	fs.Int("bins", d.Bins, "")
	fs.StringSlice("algorithm", d.Algorithms, "")
	fs.Uint32("max", d.B, "")
	fs.Bool("unrelated", false, "")
	require.NoError(t, fs.Parse([]string{"--trials=5", "--algorithm=xxhash,fnv1a", "--max=255", "--unrelated"}))

	cfg, err := Load("testdata/run.yaml", fs)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Trials)
	// Unset flags leave lower layers alone.
	assert.Equal(t, 12, cfg.Bins)
	assert.Equal(t, []string{"xxhash", "fnv1a"}, cfg.Algorithms)
	assert.Equal(t, uint32(255), cfg.B)
	assert.Equal(t, "rand", cfg.Generator)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("testdata/run.toml", nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load("testdata/missing.yaml", nil)
	assert.ErrorIs(t, err, ErrLoad)
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"trials":      func(c *Config) { c.Trials = 0 },
		"messageSize": func(c *Config) { c.MessageSize = -1 },
		"bins":        func(c *Config) { c.Bins = 256 },
		"level":       func(c *Config) { c.Level = "3%" },
		"generator":   func(c *Config) { c.Generator = "mt" },
		"algorithms":  func(c *Config) { c.Algorithms = nil },
		"unknown":     func(c *Config) { c.Algorithms = []string{"md5"} },
		"bounds":      func(c *Config) { c.A, c.B = 10, 9 },
		"concurrency": func(c *Config) { c.Concurrency = -1 },
		"logLevel":    func(c *Config) { c.LogLevel = "loud" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestValidateWrapsCause(t *testing.T) {
	cfg := Default()
	cfg.A, cfg.B = 10, 9
	assert.ErrorIs(t, cfg.Validate(), distribution.ErrInvalidParameters)
}
