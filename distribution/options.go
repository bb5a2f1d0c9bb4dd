// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jgerrish/tapestry-analysis/checksum"
)

// A Clock supplies the time used to seed a distribution.
// clockwork.Clock satisfies this interface.
type Clock interface {
	Now() time.Time
}

// An Option configures a distribution at construction.
type Option func(*options)

type options struct {
	clock    Clock
	register func(seed uint32) checksum.Register
	logger   *slog.Logger
}

func buildOptions(opts []Option) options {
	o := options{
		clock:    clockwork.NewRealClock(),
		register: defaultRegister,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func defaultRegister(seed uint32) checksum.Register {
	p := checksum.ISOHDLC
	p.Init = seed
	return checksum.NewCRC32(p)
}

// WithClock sets the clock read once to derive the seed.
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithRegister sets the constructor for the register backing a
// ChecksumDistribution. The register must start in state seed. It is
// ignored by RandDistribution.
func WithRegister(f func(seed uint32) checksum.Register) Option {
	return func(o *options) {
		o.register = f
	}
}

// WithLogger sets the logger for construction diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// seedFrom derives a 32-bit seed from the Unix time in milliseconds,
// reduced modulo 2^32.
func seedFrom(c Clock) uint32 {
	return uint32(c.Now().UnixMilli())
}
