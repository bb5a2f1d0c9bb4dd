// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ks

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// A Level is a significance level of the test.
type Level int

const (
	TenPercent Level = 1 + iota
	FivePercent
	OnePercent
)

// MinSamples is the smallest sample size with a critical value.
const MinSamples = 41

// ErrUnknownLevel is returned by ParseLevel.
var ErrUnknownLevel = errors.New("ks: unknown significance level")

// coefficient returns the constant c of the asymptotic critical value
// c/sqrt(n). These come from regression on tables of the two-sided
// KS distribution.
func (l Level) coefficient() float64 {
	switch l {
	case TenPercent:
		return 1.07
	case FivePercent:
		return 1.358
	case OnePercent:
		return 1.52
	}
	panic(fmt.Sprintf("ks: invalid level %d", int(l)))
}

// Alpha returns l as a probability, such as 0.05.
func (l Level) Alpha() float64 {
	switch l {
	case TenPercent:
		return 0.10
	case FivePercent:
		return 0.05
	case OnePercent:
		return 0.01
	}
	return math.NaN()
}

func (l Level) String() string {
	switch l {
	case TenPercent:
		return "10%"
	case FivePercent:
		return "5%"
	case OnePercent:
		return "1%"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel parses a significance level written as a percentage
// ("5%" or "5") or a probability ("0.05").
func ParseLevel(s string) (Level, error) {
	switch strings.TrimSuffix(strings.TrimSpace(s), "%") {
	case "10", "0.10", "0.1", ".1", ".10":
		return TenPercent, nil
	case "5", "0.05", ".05":
		return FivePercent, nil
	case "1", "0.01", ".01":
		return OnePercent, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownLevel, s)
}

// CriticalValue returns the critical value of the two-sided KS
// statistic for n samples at significance level l. ok is false for
// n < MinSamples, where no value is defined; callers must treat that
// as an inconclusive test rather than substitute a threshold.
//
// For n >= MinSamples the value is c/sqrt(n) with c = 1.07, 1.358 and
// 1.52 at the 10%, 5% and 1% levels.
//
// CriticalValue panics if l is not a defined Level.
func CriticalValue(l Level, n int) (v float64, ok bool) {
	c := l.coefficient()
	if n < MinSamples {
		return 0, false
	}
	return c / math.Sqrt(float64(n)), true
}
