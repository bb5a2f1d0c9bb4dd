// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/jgerrish/tapestry-analysis/sample"
)

// RandDistribution samples U[A, B] with golang.org/x/exp/rand.
type RandDistribution struct {
	params Parameters
	seed   uint32
	rng    *rand.Rand
}

// NewRandDistribution returns a RandDistribution over U[p.A, p.B]
// seeded from the configured clock.
func NewRandDistribution(p Parameters, opts ...Option) (*RandDistribution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	seed := seedFrom(o.clock)
	o.logger.Debug("seeded rand distribution", "params", p, "seed", seed)
	return &RandDistribution{
		params: p,
		seed:   seed,
		rng:    rand.New(rand.NewSource(uint64(seed))),
	}, nil
}

func (d *RandDistribution) Sample() sample.Sample[uint32] {
	return sample.Of(d.params.A + uint32(d.rng.Uint64n(d.params.Span())))
}

func (d *RandDistribution) Parameters() Parameters {
	return d.params
}

func (d *RandDistribution) Seed() uint32 {
	return d.seed
}

// New returns the distribution named by generator: "crc" for
// ChecksumDistribution or "rand" for RandDistribution.
func New(generator string, p Parameters, opts ...Option) (Distribution, error) {
	var (
		d   Distribution
		err error
	)
	switch generator {
	case "crc", "":
		d, err = NewChecksumDistribution(p, opts...)
	case "rand":
		d, err = NewRandDistribution(p, opts...)
	default:
		return nil, fmt.Errorf("distribution: unknown generator %q", generator)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}
