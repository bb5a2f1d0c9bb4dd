// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package experiment

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/jgerrish/tapestry-analysis/sample"
)

// Summary holds descriptive statistics of an experiment.
type Summary struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64 // population standard deviation
}

// Summarize computes descriptive statistics of e. It returns an error
// if e is empty.
func Summarize[T sample.Number](e Experiment[T]) (Summary, error) {
	data := stats.Float64Data(e.Samples.Float64s())
	s := Summary{N: len(data)}
	var err error
	for _, f := range []struct {
		dst *float64
		fn  func() (float64, error)
	}{
		{&s.Min, data.Min},
		{&s.Max, data.Max},
		{&s.Mean, data.Mean},
		{&s.Median, data.Median},
		{&s.StdDev, data.StandardDeviation},
	} {
		if *f.dst, err = f.fn(); err != nil {
			return Summary{}, fmt.Errorf("experiment: summarize: %w", err)
		}
	}
	return s, nil
}
