// Package tile provides tile names, their classification and the tile record
// handed to renderers.
package tile

import (
	"errors"
	"fmt"
)

// Name identifies one icosahedral surface cell, e.g. "A-0203" or "10-2010".
// Its length and last character encode the subdivision class and major/minor status.
type Name string

// Code selects the topology and interpolation tables for a tile.
type Code int

const (
	Class1Major Code = iota
	Class1Minor
	Class2Major
	Class2Minor
)

// NumCodes is the number of tile codes.
const NumCodes = 4

var ErrMalformedName = errors.New("malformed tile name")

// Validate reports whether the name can be classified and sent on the wire.
func (n Name) Validate() error {
	if len(n) < 3 {
		return fmt.Errorf("%w: %q is shorter than 3 characters", ErrMalformedName, string(n))
	}
	for i := 0; i < len(n); i++ {
		if c := n[i]; c < 0x21 || c > 0x7e {
			return fmt.Errorf("%w: %q has invalid byte 0x%02x at %d", ErrMalformedName, string(n), c, i)
		}
	}
	return nil
}

// IsMajor reports whether the name denotes a major tile (last character '0').
// The name must be valid.
func IsMajor(n Name) bool {
	return n[len(n)-1] == '0'
}

// Class returns the subdivision class (1 or 2) of a valid name.
// It is the parity of the name length, not counting a '-' at position 2.
func Class(n Name) int {
	length := len(n)
	if n[2] == '-' {
		length--
	}
	return 2 - length%2
}

// Classify derives the tile code from the name.
func Classify(n Name) (Code, error) {
	if err := n.Validate(); err != nil {
		return 0, err
	}
	code := Code((Class(n) - 1) * 2)
	if !IsMajor(n) {
		code++
	}
	return code, nil
}

func (c Code) Valid() bool {
	return c >= 0 && c < NumCodes
}

func (c Code) IsMajor() bool {
	return c%2 == 0
}

func (c Code) Class() int {
	return int(c)/2 + 1
}

// TexVariant returns the texture coordinate table index: 0 for major tiles, 1 for minor tiles.
func (c Code) TexVariant() int {
	if c.IsMajor() {
		return 0
	}
	return 1
}

func (c Code) String() string {
	switch c {
	case Class1Major:
		return "class1-major"
	case Class1Minor:
		return "class1-minor"
	case Class2Major:
		return "class2-major"
	case Class2Minor:
		return "class2-minor"
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Vertex is a point on the unit sphere in XYZ coordinates.
type Vertex [3]float64

// TexCoord is an (s, t) texture coordinate.
type TexCoord [2]float32

// Record is an assembled tile ready for rendering: reconstructed vertices,
// static strip topology and the cached texture image.
//
// Static tables are copies; the record is owned by the caller.
type Record struct {
	Name            Name
	Code            Code
	Vertices        []Vertex
	TexCoords       []TexCoord
	CoordIndices    []int
	TexCoordIndices []int
	StripLengths    []int
	TexturePath     string
}

// Writer defines an interface for writing assembled tiles to a tileset.
type Writer interface {
	// WriteRecord writes a single tile record.
	WriteRecord(record *Record) error

	// Finalize completes the writing process: flushes buffers, writes indices.
	// It must be called before closing the Writer.
	Finalize() error
}

type Visitor interface {
	// VisitRecords visits tile records in implementation-defined order, calling the visitor for each.
	VisitRecords(visitor func(*Record) error) error
}
