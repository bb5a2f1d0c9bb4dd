// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"github.com/jgerrish/tapestry-analysis/checksum"
	"github.com/jgerrish/tapestry-analysis/sample"
)

// ChecksumDistribution uses a CRC register as a crude pseudo-random
// generator. Each Sample feeds the top byte of the register back into
// the register and returns the new state.
//
// This generator is weak. A CRC register never leaves the zero state
// once it reaches it, and the output is biased away from small values.
// It exists to demonstrate that behavior, not to provide sound
// randomness. Use RandDistribution for
// analysis that needs a good source.
type ChecksumDistribution struct {
	params Parameters
	seed   uint32
	reg    checksum.Register
}

// NewChecksumDistribution returns a ChecksumDistribution over U[p.A, p.B]
// seeded from the configured clock. By default the register is
// CRC-32/ISO-HDLC with its initial value set to the seed.
func NewChecksumDistribution(p Parameters, opts ...Option) (*ChecksumDistribution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	seed := seedFrom(o.clock)
	o.logger.Debug("seeded checksum distribution", "params", p, "seed", seed)
	return &ChecksumDistribution{
		params: p,
		seed:   seed,
		reg:    o.register(seed),
	}, nil
}

func (d *ChecksumDistribution) Sample() sample.Sample[uint32] {
	v := d.reg.Update(byte(d.reg.State() >> 24))
	return sample.Of(fold(v, d.params))
}

func (d *ChecksumDistribution) Parameters() Parameters {
	return d.params
}

// Seed returns the seed the register was initialized with.
func (d *ChecksumDistribution) Seed() uint32 {
	return d.seed
}
