// Copyright 2026 The fast-qr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// MaxDataBits is the largest data-bit budget of any version and
// level combination (version 40, level L).
const MaxDataBits = 23648

// Bits is an append-only bit buffer with a fixed capacity of
// MaxDataBits bits.  Bits are packed most significant bit first.
// Appending past capacity indicates a capacity-arithmetic or table
// defect and panics.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns an empty Bits with the full MaxDataBits capacity.
func NewBits() *Bits {
	return &Bits{b: make([]byte, 0, MaxDataBits/8)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written to b.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the contents of b, which must be whole bytes.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the low nbit bits of v, most significant bit first.
func (b *Bits) Write(v uint32, nbit int) {
	if b.nbit+nbit > MaxDataBits {
		panic("qr: bit buffer overflow")
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// WriteBit appends a single bit.
func (b *Bits) WriteBit(bit bool) {
	var v uint32
	if bit {
		v = 1
	}
	b.Write(v, 1)
}

// WriteBits appends bits in order.
func (b *Bits) WriteBits(bits []bool) {
	for _, bit := range bits {
		b.WriteBit(bit)
	}
}

// WriteBytes appends each byte of p, most significant bit first.
func (b *Bits) WriteBytes(p []byte) {
	if b.nbit+len(p)*8 > MaxDataBits {
		panic("qr: bit buffer overflow")
	}
	if b.nbit&7 == 0 {
		b.b = append(b.b, p...)
		b.nbit += len(p) * 8
		return
	}
	for _, c := range p {
		b.Write(uint32(c), 8)
	}
}

// Bit returns bit i of b as 0 or 1.
func (b *Bits) Bit(i int) byte {
	if i < 0 || i >= b.nbit {
		panic("qr: bit index out of range")
	}
	return b.b[i>>3] >> (7 &^ i) & 1
}

// Pad codewords, applied alternately starting with the first.
var padWords = [2]byte{0xec, 0x11}

// Finalize appends the terminator, aligns b to a byte boundary and
// fills the remaining capacity with alternating pad codewords,
// leaving b exactly n bits long.  n is the data-bit budget of the
// chosen version and level and is always a multiple of 8.  A stream
// longer than n indicates a version-selection defect and panics.
func (b *Bits) Finalize(n int) {
	if n%8 != 0 {
		panic("qr: fractional data budget")
	}
	if b.nbit > n {
		panic("qr: too much data")
	}
	// Terminator: up to 4 zero bits, never past the budget.
	b.Write(0, min(4, n-b.nbit))
	// Byte alignment.
	if rem := -b.nbit & 7; rem != 0 {
		b.Write(0, rem)
	}
	// Fill with whole pad codewords up to the budget.
	for i := 0; b.nbit < n; i++ {
		b.Write(uint32(padWords[i&1]), 8)
	}
}
