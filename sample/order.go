// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"cmp"
	"math"
	"slices"
	"unsafe"
)

const signBit = 1 << 63

// Compare returns -1, 0, or +1 depending on whether x sorts before,
// with, or after y under the IEEE 754 totalOrder predicate:
//
//	-NaN < -Inf < -finite < -0 < +0 < +finite < +Inf < +NaN
//
// Every pair of values is comparable. Infinities sort strictly beyond
// the largest finite magnitude. NaNs are ordered first by sign and then
// by payload, so NaNs with different bit patterns are distinct. Compare
// returns 0 only for bit-identical values.
//
// This differs from cmp.Compare, which places every NaN below -Inf and
// treats -0 and +0 as equal.
func Compare[F Float](x, y F) int {
	return cmp.Compare(totalKey(x), totalKey(y))
}

// totalKey maps x to an unsigned integer whose natural order is the
// total order on x. Negative values have every bit flipped so that
// larger magnitudes sort lower; non-negative values have the sign bit
// set so they sort above all negative values.
func totalKey[F Float](x F) uint64 {
	var b uint64
	if unsafe.Sizeof(x) == 4 {
		// Place the float32 bits in the high word so the sign
		// lands on bit 63.
		b = uint64(math.Float32bits(float32(x))) << 32
	} else {
		b = math.Float64bits(float64(x))
	}
	if b&signBit != 0 {
		return ^b
	}
	return b | signBit
}

// CompareSamples compares two samples with Compare.
func CompareSamples[F Float](a, b Sample[F]) int {
	return Compare(a.Value, b.Value)
}

// SortTotal sorts s in place in ascending total order.
func SortTotal[F Float](s Samples[F]) {
	slices.SortFunc(s, CompareSamples[F])
}

// SortedTotal returns a sorted copy of s, leaving s unchanged.
func SortedTotal[F Float](s Samples[F]) Samples[F] {
	out := slices.Clone(s)
	SortTotal(out)
	return out
}
