// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sample provides single observations drawn from a
// distribution and a reproducible total order over floating-point
// observations.
//
// Equality and ordering methods on Sample follow ordinary numeric
// comparison, so NaN is unequal to itself and -0 equals +0. The total
// order defined by Compare is used only where a well-defined sort is
// required, such as computing an empirical CDF.
package sample

import (
	"fmt"
	"strings"
)

// Number is the set of scalar types a Sample may hold.
type Number interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~float32 | ~float64
}

// Float is the set of floating-point types that can be totally
// ordered by Compare.
type Float interface {
	~float32 | ~float64
}

// A Sample is a single value drawn from a distribution.
type Sample[T Number] struct {
	Value T
}

// Of returns a Sample holding v.
func Of[T Number](v T) Sample[T] {
	return Sample[T]{Value: v}
}

// Equal reports whether s and o hold numerically equal values.
func (s Sample[T]) Equal(o Sample[T]) bool {
	return s.Value == o.Value
}

// Less reports whether s is numerically less than o. For floating
// point values this is the IEEE partial order: it is false whenever
// either value is NaN.
func (s Sample[T]) Less(o Sample[T]) bool {
	return s.Value < o.Value
}

func (s Sample[T]) String() string {
	return fmt.Sprintf("%3v", s.Value)
}

// Samples is a sequence of samples in generation order.
type Samples[T Number] []Sample[T]

// FromValues wraps each element of vs in a Sample.
func FromValues[T Number](vs []T) Samples[T] {
	out := make(Samples[T], len(vs))
	for i, v := range vs {
		out[i] = Sample[T]{v}
	}
	return out
}

// Values returns the raw values of s.
func (s Samples[T]) Values() []T {
	out := make([]T, len(s))
	for i, x := range s {
		out[i] = x.Value
	}
	return out
}

// Float64s returns the values of s converted to float64.
func (s Samples[T]) Float64s() []float64 {
	out := make([]float64, len(s))
	for i, x := range s {
		out[i] = float64(x.Value)
	}
	return out
}

func (s Samples[T]) String() string {
	var buf strings.Builder
	for i, x := range s {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(x.String())
	}
	return buf.String()
}

// Convert converts every sample in s to type To using Go's numeric
// conversion rules.
func Convert[To, From Number](s Samples[From]) Samples[To] {
	out := make(Samples[To], len(s))
	for i, x := range s {
		out[i] = Sample[To]{To(x.Value)}
	}
	return out
}
