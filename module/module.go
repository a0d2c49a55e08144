// Copyright 2026 The fast-qr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package module models a single cell of a QR symbol: a packed byte
// carrying the cell's colour and its structural role.  The placement
// stage fixes the role when the matrix is built; masking later
// toggles the colour of Data cells only, which the role tag makes
// enforceable.
package module // import "github.com/maxnachlinger/fast-qr/module"

// A Type tags the structural role of a module.  The role is fixed at
// construction; changing it requires constructing a new Module.
type Type byte

const (
	Data          Type = iota // encoded data or checksum
	FinderPattern             // one of the three large corner boxes
	Alignment                 // small alignment box
	Timing                    // line between finder patterns
	Format                    // format information
	Version                   // version information
	DarkModule                // the single always-dark module
	Empty                     // space between function patterns
)

var typeNames = [8]string{
	"data", "finder", "alignment", "timing",
	"format", "version", "dark", "empty",
}

func (t Type) String() string {
	return typeNames[t&7]
}

// Module colours.
const (
	Dark  = true  // black cell
	Light = false // white cell
)

// A Module is one cell of a QR symbol, packed into a byte: the
// colour in bit 0 and the role tag in the bits above it.  Two
// modules with the same packed value are indistinguishable.
type Module byte

// New returns a module with the given colour and role.
func New(dark bool, t Type) Module {
	m := Module(t) << 1
	if dark {
		m |= 1
	}
	return m
}

// Dark reports whether m is dark.
func (m Module) Dark() bool {
	return m&1 != 0
}

// Type returns the structural role of m.
func (m Module) Type() Type {
	return Type(m >> 1)
}

// Set sets the colour of m.
func (m *Module) Set(dark bool) {
	if dark {
		*m |= 1
	} else {
		*m &^= 1
	}
}

// Toggle flips the colour of m, as mask application does.
func (m *Module) Toggle() {
	*m ^= 1
}

// A Matrix is a square grid of modules.
type Matrix [][]Module

// NewMatrix returns a size by size matrix of light Empty modules.
func NewMatrix(size int) Matrix {
	cells := make([]Module, size*size)
	empty := New(Light, Empty)
	for i := range cells {
		cells[i] = empty
	}
	m := make(Matrix, size)
	for i := range m {
		m[i], cells = cells[:size], cells[size:]
	}
	return m
}

// Size returns the number of modules on a side of m.
func (m Matrix) Size() int {
	return len(m)
}
