// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the run configuration of the tapestry command
// from an optional YAML or JSON file, TAPESTRY_* environment
// variables, and command line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/jgerrish/tapestry-analysis/checksum"
	"github.com/jgerrish/tapestry-analysis/distribution"
	"github.com/jgerrish/tapestry-analysis/histogram"
	"github.com/jgerrish/tapestry-analysis/ks"
)

// EnvPrefix is the prefix of environment variables that override the
// configuration file. TAPESTRY_MESSAGE_SIZE sets message_size.
const EnvPrefix = "TAPESTRY_"

var (
	ErrUnsupportedFormat = errors.New("config: unsupported config format")
	ErrLoad              = errors.New("config: failed to load config")
	ErrInvalid           = errors.New("config: invalid config")
)

// Config is the configuration of an analysis run.
type Config struct {
	Trials      int      `koanf:"trials"`
	MessageSize int      `koanf:"message_size"`
	Bins        int      `koanf:"bins"`
	Level       string   `koanf:"level"`
	Generator   string   `koanf:"generator"`
	Algorithms  []string `koanf:"algorithms"`
	A           uint32   `koanf:"a"`
	B           uint32   `koanf:"b"`
	Concurrency int      `koanf:"concurrency"`
	LogLevel    string   `koanf:"log_level"`
}

// Default returns the configuration of the Adler-32 output space
// demonstration: 1000 trials of 50 byte messages, ten bins, and the
// 5% significance level.
func Default() *Config {
	return &Config{
		Trials:      1000,
		MessageSize: 50,
		Bins:        10,
		Level:       "5%",
		Generator:   "crc",
		Algorithms:  []string{"adler32", "crc32"},
		A:           0,
		B:           math.MaxUint32,
		LogLevel:    "info",
	}
}

// FlagKeys maps command line flag names to configuration keys. Flags
// not listed here are not configuration.
var FlagKeys = map[string]string{
	"trials":       "trials",
	"message-size": "message_size",
	"bins":         "bins",
	"level":        "level",
	"generator":    "generator",
	"algorithm":    "algorithms",
	"min":          "a",
	"max":          "b",
	"concurrency":  "concurrency",
	"log-level":    "log_level",
}

// Load returns the default configuration overlaid with the file at
// path, if path is not empty, then with environment variables, and
// then with any flags in fs that were set explicitly. fs may be nil.
// The format of the file is chosen by its extension.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrLoad, err)
	}
	if fs != nil {
		flags := posflag.ProviderWithFlag(fs, ".", nil, func(f *pflag.Flag) (string, any) {
			key, ok := FlagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(fs, f)
		})
		if err := k.Load(flags, nil); err != nil {
			return nil, fmt.Errorf("%w: flags: %w", ErrLoad, err)
		}
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	cfg.Algorithms = splitList(cfg.Algorithms)
	return cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	return nil
}

// splitList splits comma-separated entries, as given by environment
// variables, and drops empty entries.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, f := range strings.Split(s, ",") {
			if f = strings.TrimSpace(f); f != "" {
				out = append(out, f)
			}
		}
	}
	return out
}

// Validate reports the first invalid setting in c.
func (c *Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalid, c.Trials)
	}
	if c.MessageSize < 0 {
		return fmt.Errorf("%w: message_size must not be negative, got %d", ErrInvalid, c.MessageSize)
	}
	if c.Bins < 1 || c.Bins > histogram.MaxBins {
		return fmt.Errorf("%w: bins must be in [1, %d], got %d", ErrInvalid, histogram.MaxBins, c.Bins)
	}
	if _, err := ks.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Generator != "crc" && c.Generator != "rand" {
		return fmt.Errorf("%w: generator must be crc or rand, got %q", ErrInvalid, c.Generator)
	}
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms", ErrInvalid)
	}
	for _, name := range c.Algorithms {
		if _, err := checksum.Lookup(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if err := c.Parameters().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative, got %d", ErrInvalid, c.Concurrency)
	}
	if _, err := c.SlogLevel(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	return nil
}

// Parameters returns the bounds of the sampled distribution.
func (c *Config) Parameters() distribution.Parameters {
	return distribution.Parameters{A: c.A, B: c.B}
}

// SignificanceLevel returns the parsed Level setting.
func (c *Config) SignificanceLevel() (ks.Level, error) {
	return ks.ParseLevel(c.Level)
}

// SlogLevel returns the parsed LogLevel setting.
func (c *Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))
	return l, err
}
