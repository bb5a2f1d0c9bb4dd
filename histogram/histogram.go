// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package histogram bins experiment outputs over the 32-bit unsigned
// domain and renders them as text bar charts.
package histogram

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"

	"github.com/jgerrish/tapestry-analysis/experiment"
)

// MaxBins is the largest supported number of bins.
const MaxBins = 255

// domain is the size of the uint32 domain, 2^32.
const domain = 1 << 32

// A Histogram counts experiment outputs in equal-width bins spanning
// [0, 2^32).
//
// The sum of Bins is always NumDataPoints.
type Histogram struct {
	NumBins       int
	Bins          []uint
	NumDataPoints int
}

// New bins the samples of e into numBins equal-width bins. Value v
// falls in bin floor(v*numBins/2^32).
//
// New panics if numBins is not in [1, MaxBins].
func New(e experiment.Experiment[uint32], numBins int) *Histogram {
	if numBins < 1 || numBins > MaxBins {
		panic(fmt.Sprintf("histogram: bin count %d out of range [1, %d]", numBins, MaxBins))
	}

	lh := stats.NewLinearHist(0, domain, numBins)
	for _, s := range e.Samples {
		lh.Add(float64(s.Value))
	}
	under, counts, over := lh.Counts()

	bins := make([]uint, numBins)
	copy(bins, counts)
	// Rounding can push values at the domain edges outside the
	// bins. Clamp them so every sample is counted.
	bins[0] += under
	bins[numBins-1] += over

	return &Histogram{
		NumBins:       numBins,
		Bins:          bins,
		NumDataPoints: e.Len(),
	}
}

// BinRange returns the half-open range [start, end) of values that
// fall in bin i. The end of the last bin is 2^32.
func (h *Histogram) BinRange(i int) (start, end uint64) {
	if i < 0 || i >= h.NumBins {
		panic(fmt.Sprintf("histogram: bin %d out of range [0, %d)", i, h.NumBins))
	}
	return binStart(i, h.NumBins), binStart(i+1, h.NumBins)
}

// binStart returns the smallest value v with floor(v*n/2^32) >= i.
func binStart(i, n int) uint64 {
	return (uint64(i)*domain + uint64(n) - 1) / uint64(n)
}

// Expected returns the count each bin would hold if the data were
// exactly uniform.
func (h *Histogram) Expected() float64 {
	return float64(h.NumDataPoints) / float64(h.NumBins)
}
