// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package experiment runs checksum experiments: repeated trials that
// reduce random messages drawn from a distribution to checksum
// outputs.
package experiment

import (
	"context"
	"fmt"

	"github.com/jgerrish/tapestry-analysis/checksum"
	"github.com/jgerrish/tapestry-analysis/distribution"
	"github.com/jgerrish/tapestry-analysis/sample"
)

// An Experiment is the ordered outputs of a run, one per trial.
type Experiment[T sample.Number] struct {
	Samples sample.Samples[T]
}

// Len returns the number of trials in e.
func (e Experiment[T]) Len() int {
	return len(e.Samples)
}

// Run performs trials independent trials. Each trial draws
// messageSize samples from d, uses the most significant byte of each
// as one message byte, records c.Compute of the message, and then
// resets c.
//
// The result has exactly trials samples in trial order. Run is
// deterministic if d and c are. Trials are only independent if
// c.Reset restores c's exact initial state.
//
// Run panics if messageSize or trials is negative.
func Run(d distribution.Distribution, c checksum.Checksum, messageSize, trials int) Experiment[uint32] {
	e, _ := run(context.Background(), d, c, messageSize, trials)
	return e
}

func run(ctx context.Context, d distribution.Distribution, c checksum.Checksum, messageSize, trials int) (Experiment[uint32], error) {
	if messageSize < 0 {
		panic(fmt.Sprintf("experiment: negative message size %d", messageSize))
	}
	if trials < 0 {
		panic(fmt.Sprintf("experiment: negative trial count %d", trials))
	}

	msg := make([]byte, messageSize)
	out := make(sample.Samples[uint32], trials)
	for i := range out {
		if err := ctx.Err(); err != nil {
			return Experiment[uint32]{}, err
		}
		for j := range msg {
			msg[j] = byte(d.Sample().Value >> 24)
		}
		out[i] = sample.Of(c.Compute(msg))
		c.Reset()
	}
	return Experiment[uint32]{out}, nil
}

// ToFloat32 converts e for use with the KS engine. Values above 2^24
// are rounded to the nearest float32.
func ToFloat32(e Experiment[uint32]) Experiment[float32] {
	return Experiment[float32]{sample.Convert[float32](e.Samples)}
}

// ToFloat64 converts e exactly.
func ToFloat64(e Experiment[uint32]) Experiment[float64] {
	return Experiment[float64]{sample.Convert[float64](e.Samples)}
}
