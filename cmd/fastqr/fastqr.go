// Copyright 2026 The fast-qr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Fastqr encodes a string as a QR data bit stream and prints it.
// The output is the finalized stream of data codewords: mode
// segment, terminator and padding, ready for checksum computation
// and module placement.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	qr "github.com/maxnachlinger/fast-qr"
	"github.com/maxnachlinger/fast-qr/coding"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	lev    coding.Level // error correction level
	mode   coding.Mode  // encoding mode
	force  bool         // mode forced
	binary bool         // binary output
	hex    bool         // hex output
	quiet  bool         // bit stream only, no parameters
}{
	lev:  qr.M,
	mode: -1,
}

type levOpt struct{}

func (levOpt) String() string { return g.lev.String() }

func (levOpt) Set(s string, _ getopt.Option) error {
	if n := strings.Index("LMQH", strings.ToUpper(s)); len(s) == 1 && n != -1 {
		g.lev = coding.Level(n)
		return nil
	}
	return fmt.Errorf("invalid level %q", s)
}

type modeOpt struct{}

func (modeOpt) String() string { return "auto" }

func (modeOpt) Set(s string, _ getopt.Option) error {
	switch s {
	case "num", "numeric":
		g.mode = coding.Numeric
	case "alpha", "alphanumeric":
		g.mode = coding.Alphanumeric
	case "byte":
		g.mode = coding.Byte
	default:
		return fmt.Errorf("invalid mode %q", s)
	}
	g.force = true
	return nil
}

// printBits writes the stream as '0' and '1' runes, eight to a
// group, for eyeballing against worked encoding examples.
func printBits(w io.Writer, b *coding.Bits) {
	var sb strings.Builder
	for i := 0; i < b.Bits(); i++ {
		if i != 0 && i%8 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('0' + b.Bit(i))
	}
	fmt.Fprintln(w, sb.String())
}

func main() {
	log.SetPrefix("fastqr: ")
	log.SetFlags(0)
	getopt.FlagLong(levOpt{}, "level", 'l', "error correction level (L, M, Q or H)")
	getopt.FlagLong(modeOpt{}, "mode", 'm', "encoding mode (numeric, alphanumeric or byte)")
	getopt.FlagLong(&g.binary, "binary", 'b', "print the stream as bits")
	getopt.FlagLong(&g.hex, "hex", 'x', "print the stream as hex codewords")
	getopt.FlagLong(&g.quiet, "quiet", 'q', "print the stream only, no parameters")
	getopt.SetUsage(func() { getopt.CommandLine.PrintUsage(os.Stderr) })
	getopt.SetParameters("[string ...]")
	getopt.Parse()

	text := strings.Join(getopt.Args(), " ")
	if getopt.NArgs() == 0 {
		// Read from standard input, stripping the final newline.
		buf, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalln("read:", err)
		}
		text = strings.TrimSuffix(string(buf), "\n")
	}

	var (
		s   *qr.Stream
		err error
	)
	if g.force {
		s, err = qr.EncodeBytes([]byte(text), g.lev, g.mode)
	} else {
		s, err = qr.Encode(text, g.lev)
	}
	if err != nil {
		log.Fatalln(err)
	}

	w := os.Stdout
	tty := isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd())
	if !g.quiet {
		fmt.Fprintf(w, "version %s, level %s, mode %s, %d modules per side, %d data bits\n",
			s.Version, s.Level, s.Mode, s.Version.Size(), s.Bits.Bits())
	}
	switch {
	case g.binary || tty && !g.hex:
		printBits(w, s.Bits)
	default:
		fmt.Fprintf(w, "%x\n", s.Bits.Bytes())
	}
}
