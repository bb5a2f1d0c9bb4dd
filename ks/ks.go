// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ks implements the two-sided Kolmogorov–Smirnov goodness of
// fit test against a discrete uniform distribution.
//
// The test compares the empirical CDF of a sample to the CDF of
// U[a, b]. Statistic computes the largest deviation between the two;
// CriticalValue gives the asymptotic threshold beyond which the
// uniform hypothesis is rejected at a given significance level.
//
// Critical values are only available for more than 40 samples. For
// smaller samples the asymptotic approximation is unreliable and the
// test is inconclusive.
package ks

import (
	"math"

	"github.com/jgerrish/tapestry-analysis/distribution"
	"github.com/jgerrish/tapestry-analysis/sample"
)

// StepSequences returns the lower and upper envelopes of the
// empirical CDF of n sorted samples: lower[i] = i/n and
// upper[i] = (i+1)/n.
//
// Each element is computed directly from its ratio. Summing a 1/n step
// accumulates rounding error, which is visible by n = 100000.
func StepSequences(n int) (lower, upper []float64) {
	lower = make([]float64, n)
	upper = make([]float64, n)
	fn := float64(n)
	for i := range n {
		lower[i] = float64(i) / fn
		upper[i] = float64(i+1) / fn
	}
	return lower, upper
}

// Statistic returns the two-sided KS statistic of xs against U[p.A, p.B].
//
// Samples are normalized to [0, 1] with distribution.Normalize and
// sorted under the total order of sample.Compare. The result is
// max(D-, D+), where D- is the largest deviation of a normalized
// sample from lower[i] and D+ from upper[i]. It lies in [0, 1] when
// every sample lies in [A, B]. NaN deviations are ignored.
//
// xs is not modified. Statistic returns 0 for empty input.
//
//	// [0.10 0.62 0.89 1.01 1.20 1.30 1.55 1.88] over U[0, 2]
//	Statistic(xs, distribution.Parameters{A: 0, B: 2}) // 0.195
func Statistic[F sample.Float](xs sample.Samples[F], p distribution.Parameters) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	sorted := sample.SortedTotal(xs)
	lower, upper := StepSequences(n)
	scale := p.Scale()

	var dMinus, dPlus float64
	for i, s := range sorted {
		f := scale.Map(float64(s.Value))
		if d := math.Abs(lower[i] - f); d > dMinus {
			dMinus = d
		}
		if d := math.Abs(upper[i] - f); d > dPlus {
			dPlus = d
		}
	}
	return max(dMinus, dPlus)
}
