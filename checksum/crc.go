// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checksum

import (
	"hash/crc32"
	"math/bits"
)

// CRC32Params describes a 32-bit CRC in the Rocksoft model. Poly is
// always given in normal (MSB-first) form; Reflected selects
// LSB-first processing of input bytes and the output.
type CRC32Params struct {
	Name      string
	Poly      uint32
	Reflected bool
	Init      uint32
	XorOut    uint32
}

var (
	// ISOHDLC is the CRC-32 used by Ethernet, gzip and PNG.
	ISOHDLC = CRC32Params{"CRC-32/ISO-HDLC", 0x04C11DB7, true, 0xFFFFFFFF, 0xFFFFFFFF}
	// Castagnoli is CRC-32C as used by iSCSI.
	Castagnoli = CRC32Params{"CRC-32/ISCSI", 0x1EDC6F41, true, 0xFFFFFFFF, 0xFFFFFFFF}
	// BZIP2 is the unreflected variant of ISOHDLC.
	BZIP2 = CRC32Params{"CRC-32/BZIP2", 0x04C11DB7, false, 0xFFFFFFFF, 0xFFFFFFFF}
)

// CRC32 is a table-driven 32-bit CRC register.
type CRC32 struct {
	params CRC32Params
	table  *[256]uint32
	reg    uint32
}

// NewCRC32 returns a CRC register in its initial state.
func NewCRC32(p CRC32Params) *CRC32 {
	c := &CRC32{params: p, reg: p.Init}
	if p.Reflected {
		// hash/crc32 builds LSB-first tables from the reversed
		// polynomial.
		c.table = (*[256]uint32)(crc32.MakeTable(bits.Reverse32(p.Poly)))
	} else {
		c.table = msbTable(p.Poly)
	}
	return c
}

func msbTable(poly uint32) *[256]uint32 {
	t := new([256]uint32)
	for i := range t {
		crc := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if crc&(1<<31) != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Params returns the parameters c was built with.
func (c *CRC32) Params() CRC32Params {
	return c.params
}

func (c *CRC32) Update(b byte) uint32 {
	if c.params.Reflected {
		c.reg = c.table[byte(c.reg)^b] ^ c.reg>>8
	} else {
		c.reg = c.table[byte(c.reg>>24)^b] ^ c.reg<<8
	}
	return c.reg
}

func (c *CRC32) State() uint32 {
	return c.reg
}

func (c *CRC32) Compute(data []byte) uint32 {
	for _, b := range data {
		c.Update(b)
	}
	return c.reg ^ c.params.XorOut
}

func (c *CRC32) Reset() {
	c.reg = c.params.Init
}
