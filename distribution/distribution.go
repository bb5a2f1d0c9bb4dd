// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distribution implements samplers for the discrete uniform
// distribution U[a, b] over 32-bit unsigned integers.
//
// Two samplers are provided. ChecksumDistribution reuses the internal
// register of a CRC as a deliberately weak pseudo-random generator;
// RandDistribution delegates to a general-purpose generator. Both are
// seeded once from an injected clock at construction.
//
// Samplers are stateful and not safe for concurrent use. Parallel
// experiments must each construct their own.
package distribution

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"

	"github.com/jgerrish/tapestry-analysis/sample"
)

// A Distribution produces one sample per call and advances its state.
type Distribution interface {
	Sample() sample.Sample[uint32]
}

// ErrInvalidParameters is returned when a distribution is constructed
// with a lower bound above its upper bound.
var ErrInvalidParameters = errors.New("distribution: invalid parameters")

// Parameters are the inclusive bounds of U[A, B].
type Parameters struct {
	A, B uint32
}

// Full returns the parameters covering every uint32.
func Full() Parameters {
	return Parameters{0, math.MaxUint32}
}

// Validate returns an error wrapping ErrInvalidParameters if A > B.
func (p Parameters) Validate() error {
	if p.A > p.B {
		return fmt.Errorf("%w: a=%d > b=%d", ErrInvalidParameters, p.A, p.B)
	}
	return nil
}

// Span returns the number of values in [A, B]. It is 1<<32 for the
// full domain.
func (p Parameters) Span() uint64 {
	return uint64(p.B) - uint64(p.A) + 1
}

// Scale returns the linear scale mapping [A, B] onto [0, 1].
func (p Parameters) Scale() scale.Linear {
	return scale.Linear{Min: float64(p.A), Max: float64(p.B)}
}

func (p Parameters) String() string {
	return fmt.Sprintf("U[%d, %d]", p.A, p.B)
}

// Normalize maps x linearly from [p.A, p.B] to [0, 1], computing
// (x - A) / (B - A). Values outside [A, B] map outside [0, 1]. If
// A == B every value maps to 0.5.
func Normalize(x float64, p Parameters) float64 {
	return p.Scale().Map(x)
}

// fold maps a uniformly distributed 32-bit value into [p.A, p.B]
// using the high bits of v. It is the identity on the full domain.
func fold(v uint32, p Parameters) uint32 {
	return p.A + uint32((uint64(v)*p.Span())>>32)
}
