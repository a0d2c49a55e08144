// Copyright 2026 The fast-qr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr builds QR data bit streams.

The heavy lifting happens in package coding: mode classification,
bit packing, version resolution and stream finalization.  This
package adds a string-oriented entry point that converts UTF-8 text
to ISO 8859-1 where byte mode requires it.
*/
package qr // import "github.com/maxnachlinger/fast-qr"

import (
	"errors"

	"golang.org/x/text/encoding/charmap"

	"github.com/maxnachlinger/fast-qr/coding"
)

// QR error correction levels.
const (
	L = coding.L // 7% redundant
	M = coding.M // 15% redundant
	Q = coding.Q // 25% redundant
	H = coding.H // 30% redundant
)

var ErrEncoding = errors.New("qr: text not encodable as Latin-1")

// A Stream is a finalized QR data bit stream together with the
// symbol parameters it was encoded for.  The downstream error
// correction and placement stages consume Bits along with the
// structural tables for Version and Level.
type Stream struct {
	Version coding.Version
	Level   coding.Level
	Mode    coding.Mode
	Bits    *coding.Bits
}

// Encode encodes text at the given error correction level using the
// cheapest sufficient mode.  Text containing runes beyond ASCII is
// transformed to Latin-1 for byte mode first; text outside Latin-1
// is not encodable and yields ErrEncoding.
func Encode(text string, level coding.Level) (*Stream, error) {
	input := []byte(text)
	if !ascii(input) {
		t, err := charmap.ISO8859_1.NewEncoder().String(text)
		if err != nil {
			return nil, ErrEncoding
		}
		input = []byte(t)
	}
	return EncodeBytes(input, level, coding.BestEncoding(input))
}

// EncodeBytes encodes input verbatim at the given error correction
// level and mode.
func EncodeBytes(input []byte, level coding.Level, mode coding.Mode) (*Stream, error) {
	b, err := coding.Encode(input, level, mode)
	if err != nil {
		return nil, err
	}
	v, _ := coding.ResolveVersion(mode, level, len(input))
	return &Stream{Version: v, Level: level, Mode: mode, Bits: b}, nil
}

func ascii(p []byte) bool {
	for _, c := range p {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
