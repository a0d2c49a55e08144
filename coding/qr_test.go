// Copyright 2026 The fast-qr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maxnachlinger/fast-qr/coding"
)

// readBits reads back n bits from b at *pos, most significant first.
func readBits(b *coding.Bits, pos *int, n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		v = v<<1 | uint32(b.Bit(*pos))
		*pos++
	}
	return v
}

const alphaChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// decodeSegment reads a mode segment back out of b and returns the
// recovered input.
func decodeSegment(t *testing.T, b *coding.Bits, m coding.Mode, cci int) []byte {
	t.Helper()
	pos := 0
	require.Equal(t, m.Indicator(), readBits(b, &pos, 4), "mode indicator")
	n := int(readBits(b, &pos, cci))
	out := make([]byte, 0, n)
	switch m {
	case coding.Numeric:
		for ; n >= 3; n -= 3 {
			v := readBits(b, &pos, 10)
			out = append(out, byte('0'+v/100), byte('0'+v/10%10),
				byte('0'+v%10))
		}
		if n == 2 {
			v := readBits(b, &pos, 7)
			out = append(out, byte('0'+v/10), byte('0'+v%10))
		} else if n == 1 {
			out = append(out, byte('0'+readBits(b, &pos, 4)))
		}
	case coding.Alphanumeric:
		for ; n >= 2; n -= 2 {
			v := readBits(b, &pos, 11)
			out = append(out, alphaChars[v/45], alphaChars[v%45])
		}
		if n == 1 {
			out = append(out, alphaChars[readBits(b, &pos, 6)])
		}
	default:
		for ; n > 0; n-- {
			out = append(out, byte(readBits(b, &pos, 8)))
		}
	}
	return out
}

// requireBitString compares the start of b against a string of '0'
// and '1' runes; spaces are ignored.
func requireBitString(t *testing.T, b *coding.Bits, want string) {
	t.Helper()
	want = strings.Map(func(r rune) rune {
		if r == ' ' {
			return -1
		}
		return r
	}, want)
	require.GreaterOrEqual(t, b.Bits(), len(want))
	got := make([]byte, len(want))
	for i := range got {
		got[i] = '0' + b.Bit(i)
	}
	require.Equal(t, want, string(got))
}

func TestBestEncoding(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want coding.Mode
	}{
		{"", coding.Numeric},
		{"0", coding.Numeric},
		{"0123456789", coding.Numeric},
		{"HELLO WORLD", coding.Alphanumeric},
		{"hello world", coding.Byte},
		{"123A", coding.Alphanumeric},
		{"123a", coding.Byte},
		{"A123", coding.Alphanumeric},
		{"$%*+-./:", coding.Alphanumeric},
		{"Hello, world", coding.Byte},
		{"123\n", coding.Byte},
		{"\x00", coding.Byte},
		{"caf\xe9", coding.Byte},
		{"123 456", coding.Alphanumeric},
	} {
		require.Equal(t, tt.want, coding.BestEncoding([]byte(tt.in)),
			"input %q", tt.in)
	}
}

func TestValid(t *testing.T) {
	require.True(t, coding.Numeric.Valid([]byte("0123456789")))
	require.False(t, coding.Numeric.Valid([]byte("12A")))
	require.True(t, coding.Alphanumeric.Valid([]byte("HELLO WORLD")))
	require.True(t, coding.Alphanumeric.Valid([]byte("hello")))
	require.False(t, coding.Alphanumeric.Valid([]byte("HELLO,")))
	require.True(t, coding.Byte.Valid([]byte{0, 1, 2, 0xff}))
	require.False(t, coding.Mode(7).Valid(nil))
}

// The worked HELLO WORLD example: level Q, alphanumeric, version 1.
// Character pairs pack as first*45+second: (H,E) 779, (L,L) 966,
// (O,space) 1116, (W,O) 1464, (R,L) 1236, then D alone as 13 in 6
// bits, followed by terminator, alignment and pad fill to 104 bits.
func TestEncodeHelloWorld(t *testing.T) {
	b, err := coding.Encode([]byte("HELLO WORLD"), coding.Q, coding.Alphanumeric)
	require.NoError(t, err)

	v, ok := coding.ResolveVersion(coding.Alphanumeric, coding.Q, 11)
	require.True(t, ok)
	require.Equal(t, coding.Version(1), v)
	require.Equal(t, v.DataBits(coding.Q), b.Bits())

	requireBitString(t, b, "0010 000001011"+
		" 01100001011 01111000110 10001011100 10110111000 10011010100"+
		" 001101"+
		" 0000 00"+ // terminator, byte alignment
		" 11101100 00010001 11101100") // pad fill
	require.Equal(t, 104, b.Bits())
}

func TestEncodeNumericGrouping(t *testing.T) {
	// "1234": one full group of three digits in 10 bits, then the
	// single remaining digit in 4 bits, not 7.
	b, err := coding.Encode([]byte("1234"), coding.L, coding.Numeric)
	require.NoError(t, err)
	requireBitString(t, b, "0001 0000000100 0001111011 0100")

	// "12345": the two remaining digits pack as 45 in 7 bits.
	b, err = coding.Encode([]byte("12345"), coding.L, coding.Numeric)
	require.NoError(t, err)
	requireBitString(t, b, "0001 0000000101 0001111011 0101101")
}

func TestEncodeEmptyByte(t *testing.T) {
	for l := coding.L; l <= coding.H; l++ {
		b, err := coding.Encode(nil, l, coding.Byte)
		require.NoError(t, err)
		require.Equal(t, coding.Version(1).DataBits(l), b.Bits())
		// Indicator, zero count, terminator, then alternating pad.
		requireBitString(t, b, "0100 00000000 0000 1110 11000001 0001")
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []struct {
		mode coding.Mode
		in   string
	}{
		{coding.Numeric, ""},
		{coding.Numeric, "1"},
		{coding.Numeric, "12"},
		{coding.Numeric, "123"},
		{coding.Numeric, "1234"},
		{coding.Numeric, "0000000"},
		{coding.Numeric, "8675309867530986753098675309"},
		{coding.Alphanumeric, ""},
		{coding.Alphanumeric, "A"},
		{coding.Alphanumeric, "AB"},
		{coding.Alphanumeric, "HELLO WORLD"},
		{coding.Alphanumeric, "$%*+-./: 0AZ"},
		{coding.Byte, ""},
		{coding.Byte, "\x00\x01\xfe\xff"},
		{coding.Byte, "https://example.com/?q=qr"},
	}
	for _, tt := range inputs {
		for l := coding.L; l <= coding.H; l++ {
			in := []byte(tt.in)
			b, err := coding.Encode(in, l, tt.mode)
			require.NoError(t, err, "%s %q", tt.mode, tt.in)
			v, ok := coding.ResolveVersion(tt.mode, l, len(in))
			require.True(t, ok)
			got := decodeSegment(t, b, tt.mode, v.CCIBits(tt.mode))
			require.True(t, bytes.Equal(in, got),
				"%s %q: decoded %q", tt.mode, tt.in, got)
		}
	}
}

// Lowercase input is not losslessly alphanumeric, so the classifier
// picks byte mode for it and the chosen encoding round-trips exactly.
func TestBestEncodingLowercase(t *testing.T) {
	for _, in := range []string{"hello world", "https://example.com", "Qr"} {
		m := coding.BestEncoding([]byte(in))
		require.Equal(t, coding.Byte, m, "%q", in)
		b, err := coding.Encode([]byte(in), coding.M, m)
		require.NoError(t, err)
		v, ok := coding.ResolveVersion(m, coding.M, len(in))
		require.True(t, ok)
		got := decodeSegment(t, b, m, v.CCIBits(m))
		require.Equal(t, in, string(got))
	}
}

// Forcing alphanumeric mode folds lowercase letters to their
// uppercase values, so decoding yields the canonical uppercase form.
func TestAlphanumericFolding(t *testing.T) {
	b, err := coding.Encode([]byte("hello world"), coding.M, coding.Alphanumeric)
	require.NoError(t, err)
	v, _ := coding.ResolveVersion(coding.Alphanumeric, coding.M, 11)
	got := decodeSegment(t, b, coding.Alphanumeric, v.CCIBits(coding.Alphanumeric))
	require.Equal(t, "HELLO WORLD", string(got))
}

func TestEncodeLength(t *testing.T) {
	// The finalized stream is always exactly the budget of the
	// resolved version and level.
	for _, in := range []string{"", "42", strings.Repeat("7", 100),
		strings.Repeat("X", 500), strings.Repeat("\xff", 1000)} {
		for l := coding.L; l <= coding.H; l++ {
			m := coding.BestEncoding([]byte(in))
			b, err := coding.Encode([]byte(in), l, m)
			require.NoError(t, err)
			v, ok := coding.ResolveVersion(m, l, len(in))
			require.True(t, ok)
			require.Equal(t, v.DataBits(l), b.Bits())
		}
	}
}

// Maximum character capacities at the extremes of the version range,
// per the published capacity tables.
func TestCapacityBoundary(t *testing.T) {
	for _, tt := range []struct {
		mode    coding.Mode
		v1, v40 int
		fill    byte
	}{
		{coding.Numeric, 41, 7089, '7'},
		{coding.Alphanumeric, 25, 4296, 'A'},
		{coding.Byte, 17, 2953, 0xff},
	} {
		// Exactly at the version 1 boundary.
		v, ok := coding.ResolveVersion(tt.mode, coding.L, tt.v1)
		require.True(t, ok)
		require.Equal(t, coding.Version(1), v, "%s", tt.mode)
		// One past it selects version 2, never truncates.
		v, ok = coding.ResolveVersion(tt.mode, coding.L, tt.v1+1)
		require.True(t, ok)
		require.Equal(t, coding.Version(2), v, "%s", tt.mode)

		// Exactly at the version 40 boundary.
		v, ok = coding.ResolveVersion(tt.mode, coding.L, tt.v40)
		require.True(t, ok)
		require.Equal(t, coding.Version(40), v, "%s", tt.mode)
		in := bytes.Repeat([]byte{tt.fill}, tt.v40)
		b, err := coding.Encode(in, coding.L, tt.mode)
		require.NoError(t, err)
		require.Equal(t, coding.MaxDataBits, b.Bits())
		// One past the largest symbol fails.
		_, ok = coding.ResolveVersion(tt.mode, coding.L, tt.v40+1)
		require.False(t, ok)
		_, err = coding.Encode(append(in, tt.fill), coding.L, tt.mode)
		require.ErrorIs(t, err, coding.ErrTooLong)
	}
}

func TestEncodeErrors(t *testing.T) {
	// A forced mode that cannot represent the input fails closed.
	_, err := coding.Encode([]byte("12a"), coding.L, coding.Numeric)
	var me *coding.ModeError
	require.ErrorAs(t, err, &me)
	require.Equal(t, coding.Numeric, me.Mode)

	_, err = coding.Encode([]byte("HELLO,"), coding.L, coding.Alphanumeric)
	require.ErrorAs(t, err, &me)

	_, err = coding.Encode([]byte("x"), coding.Level(4), coding.Byte)
	require.ErrorIs(t, err, coding.ErrLevel)

	_, err = coding.Encode([]byte("x"), coding.L, coding.Mode(9))
	require.ErrorAs(t, err, &me)
}

func TestBitsWrite(t *testing.T) {
	b := coding.NewBits()
	b.Write(0b101, 3)
	b.WriteBit(true)
	b.WriteBits([]bool{false, true})
	b.WriteBytes([]byte{0xa5})
	require.Equal(t, 14, b.Bits())
	requireBitString(t, b, "101101 10100101")

	b.Reset()
	require.Equal(t, 0, b.Bits())
	b.WriteBytes([]byte{0x80, 0x01})
	require.Equal(t, []byte{0x80, 0x01}, b.Bytes())
}

func TestBitsOverflow(t *testing.T) {
	b := coding.NewBits()
	for i := 0; i < coding.MaxDataBits/32; i++ {
		b.Write(0xffffffff, 32)
	}
	require.Equal(t, coding.MaxDataBits, b.Bits())
	require.Panics(t, func() { b.WriteBit(false) })
	require.Panics(t, func() { b.WriteBytes([]byte{0}) })
}

func TestFinalize(t *testing.T) {
	// Overfull stream: an internal consistency fault, not an error.
	b := coding.NewBits()
	b.Write(0, 16)
	require.Panics(t, func() { b.Finalize(8) })

	// No room for the full terminator: saturates at the budget.
	b = coding.NewBits()
	b.Write(0xff, 8)
	b.Write(0x3f, 6)
	b.Finalize(16)
	require.Equal(t, 16, b.Bits())

	// Already exactly at the budget: nothing is appended.
	b = coding.NewBits()
	b.Write(0xffff, 16)
	b.Finalize(16)
	require.Equal(t, 16, b.Bits())
	require.Equal(t, []byte{0xff, 0xff}, b.Bytes())
}
