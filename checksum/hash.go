// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checksum

import (
	"hash"
	"hash/adler32"
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
)

// Hash32 adapts a standard library hash.Hash32 to Checksum.
type Hash32 struct {
	h hash.Hash32
}

// NewAdler32 returns an Adler-32 checksum.
func NewAdler32() *Hash32 {
	return &Hash32{adler32.New()}
}

// NewFNV1a returns a 32-bit FNV-1a hash.
func NewFNV1a() *Hash32 {
	return &Hash32{fnv.New32a()}
}

func (h *Hash32) Compute(data []byte) uint32 {
	h.h.Write(data)
	return h.h.Sum32()
}

func (h *Hash32) Reset() {
	h.h.Reset()
}

// XXHash is 64-bit xxHash truncated to its low 32 bits.
type XXHash struct {
	d *xxhash.Digest
}

// NewXXHash returns an xxHash checksum with seed zero.
func NewXXHash() *XXHash {
	return &XXHash{xxhash.New()}
}

func (x *XXHash) Compute(data []byte) uint32 {
	x.d.Write(data)
	return uint32(x.d.Sum64())
}

func (x *XXHash) Reset() {
	x.d.Reset()
}
