// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ks

import (
	"github.com/jgerrish/tapestry-analysis/distribution"
	"github.com/jgerrish/tapestry-analysis/sample"
)

// A Decision is the outcome of testing the uniform hypothesis.
type Decision int

const (
	// Inconclusive means no critical value was available.
	Inconclusive Decision = iota
	// FailToReject means the data is consistent with a uniform
	// distribution.
	FailToReject
	// Reject means the data does not follow a uniform distribution.
	Reject
)

func (d Decision) String() string {
	switch d {
	case FailToReject:
		return "fail to reject"
	case Reject:
		return "reject"
	}
	return "inconclusive"
}

// Decide applies the decision rule: reject iff statistic >= critical.
// If ok is false there is no critical value and the result is
// Inconclusive.
func Decide(statistic, critical float64, ok bool) Decision {
	if !ok {
		return Inconclusive
	}
	if statistic >= critical {
		return Reject
	}
	return FailToReject
}

// Result is a complete KS test of one sample.
type Result struct {
	N           int
	Statistic   float64
	Critical    float64
	HasCritical bool
	Level       Level
	Decision    Decision
}

// Test computes the statistic and critical value for xs and applies
// the decision rule.
func Test[F sample.Float](xs sample.Samples[F], p distribution.Parameters, l Level) Result {
	stat := Statistic(xs, p)
	cv, ok := CriticalValue(l, len(xs))
	return Result{
		N:           len(xs),
		Statistic:   stat,
		Critical:    cv,
		HasCritical: ok,
		Level:       l,
		Decision:    Decide(stat, cv, ok),
	}
}
