// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histogram

import (
	"errors"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrNoData     = errors.New("histogram: no data points")
	ErrTooFewBins = errors.New("histogram: chi-square needs at least two bins")
)

// ChiSquareResult is the outcome of Pearson's chi-square goodness of
// fit test against equal expected counts.
type ChiSquareResult struct {
	Statistic        float64
	DegreesOfFreedom int
	// PValue is the probability of a statistic at least this large
	// if the data were uniform.
	PValue float64
}

// ChiSquare tests h against a uniform distribution over its bins.
func (h *Histogram) ChiSquare() (ChiSquareResult, error) {
	if h.NumDataPoints == 0 {
		return ChiSquareResult{}, ErrNoData
	}
	if h.NumBins < 2 {
		return ChiSquareResult{}, ErrTooFewBins
	}
	obs := make([]float64, h.NumBins)
	exp := make([]float64, h.NumBins)
	for i, c := range h.Bins {
		obs[i] = float64(c)
		exp[i] = h.Expected()
	}
	x := stat.ChiSquare(obs, exp)
	df := h.NumBins - 1
	return ChiSquareResult{
		Statistic:        x,
		DegreesOfFreedom: df,
		PValue:           distuv.ChiSquared{K: float64(df)}.Survival(x),
	}, nil
}
