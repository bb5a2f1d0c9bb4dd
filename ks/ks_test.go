// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ks

import (
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgerrish/tapestry-analysis/distribution"
	"github.com/jgerrish/tapestry-analysis/sample"
)

var zeroToTwo = distribution.Parameters{A: 0, B: 2}

// From PennState STAT 415.
var psu = []float32{1.41, 0.26, 1.97, 0.33, 0.55, 0.77, 1.46, 1.18}

func TestStatisticPSU(t *testing.T) {
	xs := sample.FromValues(psu)
	assert.InDelta(t, 0.145, Statistic(xs, zeroToTwo), 1e-4)
	// The input order is preserved.
	assert.Equal(t, psu, xs.Values())

	xs64 := sample.FromValues([]float64{1.41, 0.26, 1.97, 0.33, 0.55, 0.77, 1.46, 1.18})
	assert.InDelta(t, 0.145, Statistic(xs64, zeroToTwo), 1e-9)
}

func TestStatisticEightSamples(t *testing.T) {
	xs := sample.FromValues([]float32{1.88, 0.10, 1.55, 0.89, 0.62, 1.30, 1.20, 1.01})
	assert.InDelta(t, 0.195, Statistic(xs, zeroToTwo), 1e-4)
}

func TestStatisticEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Statistic(sample.Samples[float64]{}, zeroToTwo))
}

func TestStatisticPermutationInvariant(t *testing.T) {
	perms := [][]float32{
		{1.41, 0.26, 1.97, 0.33, 0.55, 0.77, 1.46, 1.18},
		{0.26, 0.33, 0.55, 0.77, 1.18, 1.41, 1.46, 1.97},
		{1.97, 1.46, 1.41, 1.18, 0.77, 0.55, 0.33, 0.26},
		{0.55, 1.97, 0.26, 1.18, 1.46, 0.33, 1.41, 0.77},
	}
	want := Statistic(sample.FromValues(perms[0]), zeroToTwo)
	for _, p := range perms[1:] {
		assert.Equal(t, want, Statistic(sample.FromValues(p), zeroToTwo), "%v", p)
	}
}

func TestStatisticInUnitInterval(t *testing.T) {
	p := distribution.Parameters{A: 100, B: 5000}
	d, err := distribution.NewRandDistribution(p, distribution.WithClock(clockwork.NewFakeClockAt(time.Unix(42, 0))))
	require.NoError(t, err)
	for _, n := range []int{1, 2, 10, 41, 500} {
		xs := make(sample.Samples[float64], n)
		for i := range xs {
			xs[i] = sample.Of(float64(d.Sample().Value))
		}
		s := Statistic(xs, p)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}

	// Extremes: every sample at one bound.
	assert.Equal(t, 1.0, Statistic(sample.FromValues([]float64{0, 0, 0}), zeroToTwo))
	assert.Equal(t, 1.0, Statistic(sample.FromValues([]float64{2, 2, 2}), zeroToTwo))
}

func TestStatisticIgnoresNaN(t *testing.T) {
	xs := sample.FromValues([]float64{math.NaN(), 1})
	// Sorted: 1 then NaN. Only the first rank contributes:
	// |0 - 0.5| and |0.5 - 0.5|.
	assert.Equal(t, 0.5, Statistic(xs, zeroToTwo))
}

func TestStepSequencesSmall(t *testing.T) {
	lower, upper := StepSequences(5)
	assert.Equal(t, []float64{0, 0.2, 0.4, 0.6, 0.8}, lower)
	assert.Equal(t, []float64{0.2, 0.4, 0.6, 0.8, 1.0}, upper)

	lower, upper = StepSequences(0)
	assert.Empty(t, lower)
	assert.Empty(t, upper)
}

func TestStepSequencesLarge(t *testing.T) {
	const n = 100000
	lower, upper := StepSequences(n)
	assert.Equal(t, 0.99999, lower[n-1])
	assert.Equal(t, 1.0, upper[n-1])

	// Accumulating a fixed step drifts from the exact values.
	step := 1.0 / n
	acc := 0.0
	for i := 0; i < n-1; i++ {
		acc += step
	}
	assert.NotEqual(t, lower[n-1], acc)
}

func TestCriticalValueUndefinedForSmallN(t *testing.T) {
	for n := 0; n <= 40; n++ {
		for _, l := range []Level{TenPercent, FivePercent, OnePercent} {
			_, ok := CriticalValue(l, n)
			assert.False(t, ok, "n=%d level=%v", n, l)
		}
	}
}

func TestCriticalValueKnown(t *testing.T) {
	for _, tc := range []struct {
		l     Level
		n     int
		want  float64
		delta float64
	}{
		{TenPercent, 41, 0.163, 0.03},
		{FivePercent, 41, 0.211, 0.05},
		{FivePercent, 41, 0.187, 0.03},
		{OnePercent, 41, 0.232, 0.03},
		{TenPercent, 1000, 0.0338, 0.01},
		{FivePercent, 1000, 0.0385, 0.01},
		{OnePercent, 1000, 0.0478, 0.01},
	} {
		v, ok := CriticalValue(tc.l, tc.n)
		require.True(t, ok)
		assert.InDelta(t, tc.want, v, tc.delta, "%v n=%d", tc.l, tc.n)
	}
}

func TestCriticalValueDecreasing(t *testing.T) {
	for _, l := range []Level{TenPercent, FivePercent, OnePercent} {
		prev := math.Inf(1)
		for n := 41; n <= 1000000; n += 1 + n/100 {
			v, ok := CriticalValue(l, n)
			require.True(t, ok)
			require.Greater(t, v, 0.0)
			require.Less(t, v, prev, "%v n=%d", l, n)
			prev = v
		}
	}
}

func TestCriticalValueBadLevel(t *testing.T) {
	assert.PanicsWithValue(t, "ks: invalid level 0", func() { CriticalValue(Level(0), 100) })
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"10%": TenPercent, "0.1": TenPercent,
		"5%": FivePercent, "5": FivePercent, "0.05": FivePercent,
		" 1% ": OnePercent, "0.01": OnePercent,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("2.5%")
	assert.ErrorIs(t, err, ErrUnknownLevel)

	assert.Equal(t, "5%", FivePercent.String())
	assert.Equal(t, 0.01, OnePercent.Alpha())
}

func TestDecide(t *testing.T) {
	// n=8 at 5%, from a published table.
	assert.Equal(t, FailToReject, Decide(0.145, 0.410, true))
	assert.Equal(t, Reject, Decide(0.410, 0.410, true))
	assert.Equal(t, Reject, Decide(0.5, 0.410, true))
	assert.Equal(t, Inconclusive, Decide(0.9, 0, false))
	assert.Equal(t, "fail to reject", FailToReject.String())
}

func TestTest(t *testing.T) {
	r := Test(sample.FromValues(psu), zeroToTwo, FivePercent)
	assert.Equal(t, 8, r.N)
	assert.False(t, r.HasCritical)
	assert.Equal(t, Inconclusive, r.Decision)
	assert.InDelta(t, 0.145, r.Statistic, 1e-4)

	// A perfectly spread sample of 100 points.
	xs := make(sample.Samples[float64], 100)
	for i := range xs {
		xs[i] = sample.Of((float64(i) + 0.5) / 50)
	}
	r = Test(xs, zeroToTwo, FivePercent)
	require.True(t, r.HasCritical)
	assert.InDelta(t, 0.1358, r.Critical, 1e-12)
	assert.InDelta(t, 0.005, r.Statistic, 1e-12)
	assert.Equal(t, FailToReject, r.Decision)

	// All mass in one place.
	for i := range xs {
		xs[i] = sample.Of(0.0)
	}
	r = Test(xs, zeroToTwo, OnePercent)
	assert.Equal(t, Reject, r.Decision)
}
