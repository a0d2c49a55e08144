// Copyright 2026 The fast-qr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR data encoding: mode
// classification, bit packing, stream finalization and the
// structural tables consumed by the error correction, placement and
// masking stages.
package coding // import "github.com/maxnachlinger/fast-qr/coding"

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrTooLong = errors.New("qr: data too long to encode")
)

// A Version represents a QR version.  The version specifies the size
// of the QR code: a code with version v has 4v+17 modules on a side.
// The larger the version, the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string {
	return strconv.Itoa(int(v))
}

// Size returns the number of modules on a side of a code with
// version v.
func (v Version) Size() int {
	return int(v)*4 + 17
}

// Version size classes.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// A Mode is a QR data encoding scheme.
type Mode int

// Predefined encoding modes, densest packing first.
const (
	Numeric      Mode = iota // digits, 10 bits per 3 characters
	Alphanumeric             // digits, letters, nine symbols, 11 bits per 2
	Byte                     // any data, 8 bits per byte
)

var modeNames = [3]string{"numeric", "alphanumeric", "byte"}

func (m Mode) String() string {
	if Numeric <= m && m <= Byte {
		return modeNames[m]
	}
	return strconv.Itoa(int(m))
}

// Indicator returns the 4 bit mode indicator of m.
func (m Mode) Indicator() uint32 {
	return 1 << m
}

// A ModeError reports data that cannot be represented in the
// requested encoding mode.
type ModeError struct {
	Mode Mode
	Data []byte
}

func (e *ModeError) Error() string {
	if Numeric <= e.Mode && e.Mode <= Byte {
		return fmt.Sprintf("qr: non-%s data %#q", e.Mode, e.Data)
	}
	return fmt.Sprintf("qr: invalid mode %d", int(e.Mode))
}

// Alphanumeric character values plus one, indexed by the ASCII code
// point minus 0x20.  Zero marks characters outside the set.
// Lowercase letters fold to their uppercase values.
// " $%*+-./0123456789:A-Za-z"
var alnum = [96]byte{
	37, 00, 00, 00, 38, 39, 00, 00, 00, 00, 40, 41, 00, 42, 43, 44, // 0x20
	01, 02, 03, 04, 05, 06, 07, 8, 9, 10, 45, 00, 00, 00, 00, 00, // 0x30
	00, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, // 0x40
	26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 00, 00, 00, 00, 00, // 0x50
	00, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, // 0x60
	26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 00, 00, 00, 00, 00, // 0x70
}

// alnumValue returns the alphanumeric value of c plus one, or zero
// for characters outside the set.
func alnumValue(c byte) byte {
	if c -= 0x20; int(c) < len(alnum) {
		return alnum[c]
	}
	return 0
}

func isDigit(c byte) bool {
	return c-'0' < 10
}

// BestEncoding returns the cheapest mode capable of representing
// input losslessly, preferring Numeric over Alphanumeric over Byte.
// Lowercase letters are representable in alphanumeric encoding only
// by folding to uppercase, which is lossy, so they classify as Byte.
// Empty input classifies as Numeric.
func BestEncoding(input []byte) Mode {
	for i, c := range input {
		if !isDigit(c) {
			for _, c := range input[i:] {
				if c-'a' < 26 || alnumValue(c) == 0 {
					return Byte
				}
			}
			return Alphanumeric
		}
	}
	return Numeric
}

// Valid reports whether every byte of input is representable in m.
// Alphanumeric accepts lowercase letters, which a forced encode
// folds to their uppercase values.
func (m Mode) Valid(input []byte) bool {
	switch m {
	case Numeric:
		for _, c := range input {
			if !isDigit(c) {
				return false
			}
		}
	case Alphanumeric:
		for _, c := range input {
			if alnumValue(c) == 0 {
				return false
			}
		}
	case Byte:
	default:
		return false
	}
	return true
}

// EncodedLength returns the encoded length in bits of n characters
// in mode m at the given version size class, including the mode
// indicator and character count field.
func (m Mode) EncodedLength(n, class int) int {
	var p int
	switch m {
	case Numeric:
		p = (10*n + 2) / 3
	case Alphanumeric:
		p = (11*n + 1) / 2
	default:
		p = n * 8
	}
	return 4 + int(cciLen[m][class]) + p
}

// EncodeSegment writes a complete segment to b: the 4 bit mode
// indicator, the input length in a cci bit character count field and
// the packed payload.  cci comes from Version.CCIBits for a version
// the caller resolved beforehand.  Input not representable in m
// fails closed with a ModeError before any bits are written.
func (m Mode) EncodeSegment(b *Bits, input []byte, cci int) error {
	if !m.Valid(input) {
		return &ModeError{m, input}
	}
	if len(input) >= 1<<cci {
		return ErrTooLong
	}
	b.Write(m.Indicator(), 4)
	b.Write(uint32(len(input)), cci)
	switch m {
	case Numeric:
		appendNumeric(b, input)
	case Alphanumeric:
		appendAlphanumeric(b, input)
	default:
		b.WriteBytes(input)
	}
	return nil
}

// appendNumeric packs digits in groups of three as their value in 10
// bits.  A final group of two digits takes 7 bits, a single digit 4;
// the width is fixed by the remaining digit count, not the value.
func appendNumeric(b *Bits, input []byte) {
	for len(input) >= 3 {
		v := uint32(input[0])*100 + uint32(input[1])*10 +
			uint32(input[2]) - '0'*111
		b.Write(v, 10)
		input = input[3:]
	}
	switch len(input) {
	case 2:
		b.Write(uint32(input[0])*10+uint32(input[1])-'0'*11, 7)
	case 1:
		b.Write(uint32(input[0]-'0'), 4)
	}
}

// appendAlphanumeric packs character pairs as first*45+second in 11
// bits, with a trailing single character alone in 6 bits.
func appendAlphanumeric(b *Bits, input []byte) {
	for len(input) >= 2 {
		v := uint32(alnumValue(input[0])-1)*45 +
			uint32(alnumValue(input[1])-1)
		b.Write(v, 11)
		input = input[2:]
	}
	if len(input) != 0 {
		b.Write(uint32(alnumValue(input[0])-1), 6)
	}
}

// ResolveVersion returns the smallest version able to hold n
// characters encoded in mode m at level l.  ok is false if the
// input exceeds version 40's capacity.
func ResolveVersion(m Mode, l Level, n int) (v Version, ok bool) {
	for v = MinVersion; v <= MaxVersion; v++ {
		if m.EncodedLength(n, v.SizeClass()) <= v.DataBits(l) {
			return v, true
		}
	}
	return 0, false
}

// Encode encodes input at the given error correction level and mode,
// returning the finalized data bit stream: segment, terminator,
// byte alignment and pad fill, exactly DataBits(l) bits long for the
// smallest version that fits.  Encode returns ErrTooLong if no
// version fits and a ModeError if input is not representable in m.
func Encode(input []byte, l Level, m Mode) (*Bits, error) {
	if l < L || l > H {
		return nil, ErrLevel
	}
	if m < Numeric || m > Byte {
		return nil, &ModeError{m, input}
	}
	v, ok := ResolveVersion(m, l, len(input))
	if !ok {
		return nil, ErrTooLong
	}
	b := NewBits()
	if err := m.EncodeSegment(b, input, v.CCIBits(m)); err != nil {
		return nil, err
	}
	b.Finalize(v.DataBits(l))
	return b, nil
}
