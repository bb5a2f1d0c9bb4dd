// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package checksum provides the checksum and hash algorithms whose
// output distributions are analyzed, behind a small common interface.
//
// A Checksum accumulates across calls to Compute until Reset is
// called. Reset must restore the exact initial state; experiment
// runners depend on this to keep trials independent.
package checksum

import (
	"errors"
	"fmt"
	"slices"
)

// A Checksum reduces a message to a 32-bit value.
type Checksum interface {
	// Compute feeds data into the checksum and returns the
	// finalized value of everything fed since the last Reset.
	Compute(data []byte) uint32
	// Reset restores the checksum to its initial state.
	Reset()
}

// A Register is a Checksum whose internal accumulator is exposed and
// can be advanced one byte at a time.
type Register interface {
	Checksum
	// Update feeds one byte and returns the new register state.
	Update(b byte) uint32
	// State returns the current register state, before any output
	// transformation.
	State() uint32
}

// ErrUnknownAlgorithm is returned by Lookup for an unregistered name.
var ErrUnknownAlgorithm = errors.New("checksum: unknown algorithm")

// An Algorithm describes a registered checksum.
type Algorithm struct {
	// Name is the identifier used in configuration and on the
	// command line, such as "crc32".
	Name string
	// Label is the display name used in reports, such as "CRC32".
	Label string
	// New returns a fresh instance in its initial state.
	New func() Checksum
}

var algorithms = map[string]Algorithm{
	"adler32": {"adler32", "Adler32", func() Checksum { return NewAdler32() }},
	"crc32":   {"crc32", "CRC32", func() Checksum { return NewCRC32(ISOHDLC) }},
	"crc32c":  {"crc32c", "CRC32C", func() Checksum { return NewCRC32(Castagnoli) }},
	"bzip2":   {"bzip2", "BZIP2", func() Checksum { return NewCRC32(BZIP2) }},
	"fnv1a":   {"fnv1a", "FNV-1a", func() Checksum { return NewFNV1a() }},
	"xxhash":  {"xxhash", "xxHash", func() Checksum { return NewXXHash() }},
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, error) {
	a, ok := algorithms[name]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w %q", ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
