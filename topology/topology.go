// Package topology holds the static per-tile-code tables: vertex counts,
// triangle strip indices, strip lengths, minor tile interpolation pairs and
// texture coordinates.
//
// The tables are authored data matching the server's vertex order and the
// texture layout; they are never computed or modified at runtime. Accessors
// return copies.
package topology

import (
	"fmt"
	"slices"

	"github.com/eak1mov/go-icostiles/tile"
)

// Pair is an ordered pair of raw vertex indices (a, b) for interpolation.
type Pair [2]int

var rawCoordCount = [tile.NumCodes]int{55, 31, 55, 31}

// coordCount includes the 12 interpolated vertices of minor tiles.
var coordCount = [tile.NumCodes]int{55, 31 + 12, 55, 31 + 12}

// interpPairs is indexed by class less 1.
var interpPairs = [2][6]Pair{
	{{8, 16}, {14, 15}, {10, 22}, {20, 21}, {12, 28}, {26, 27}},
	{{17, 16}, {7, 15}, {23, 22}, {9, 21}, {29, 28}, {11, 27}},
}

// The class 1 minor index table carries nine strips.
var stripIndexCounts = [tile.NumCodes][]int{
	{8, 8, 8, 12, 12, 12, 8, 8, 8, 4, 4, 4, 4, 4, 4},
	{8, 8, 8, 8, 8, 8, 4, 4, 4},
	{8, 8, 8, 12, 12, 12, 8, 8, 8, 4, 4, 4, 4, 4, 4},
	{8, 8, 8, 8, 8, 8, 4, 4, 4, 4, 4, 4, 4, 4, 4},
}

var texCoordIndices [2][]int

func init() {
	for variant := range texCoords {
		texCoordIndices[variant] = make([]int, len(texCoords[variant]))
		for i := range texCoordIndices[variant] {
			texCoordIndices[variant][i] = i
		}
	}
}

// RawCoordCount returns the number of vertices the server sends for the code.
func RawCoordCount(code tile.Code) int {
	return rawCoordCount[code]
}

// CoordCount returns the number of vertices after reconstruction.
func CoordCount(code tile.Code) int {
	return coordCount[code]
}

// CoordIndices returns the vertex indices of all strips of the code, concatenated.
func CoordIndices(code tile.Code) []int {
	return slices.Clone(coordIndices[code])
}

// StripLengths returns the number of indices in each strip of the code.
func StripLengths(code tile.Code) []int {
	return slices.Clone(stripIndexCounts[code])
}

// InterpPairs returns the interpolation pairs of a subdivision class (1 or 2).
func InterpPairs(class int) []Pair {
	return slices.Clone(interpPairs[class-1][:])
}

// TexCoords returns the texture coordinates of a variant (0 major, 1 minor).
func TexCoords(variant int) []tile.TexCoord {
	return slices.Clone(texCoords[variant])
}

// TexCoordIndices returns the identity index table of a texture variant.
func TexCoordIndices(variant int) []int {
	return slices.Clone(texCoordIndices[variant])
}

// Fill attaches copies of the static tables selected by r.Code to the record.
func Fill(r *tile.Record) {
	variant := r.Code.TexVariant()
	r.CoordIndices = CoordIndices(r.Code)
	r.StripLengths = StripLengths(r.Code)
	r.TexCoords = TexCoords(variant)
	r.TexCoordIndices = TexCoordIndices(variant)
}

// Check validates the table invariants.
func Check() error {
	for code := tile.Code(0); code < tile.NumCodes; code++ {
		sum := 0
		for _, n := range stripIndexCounts[code] {
			sum += n
		}
		if sum != len(coordIndices[code]) {
			return fmt.Errorf("topology: %v: strip lengths sum to %d, have %d indices", code, sum, len(coordIndices[code]))
		}
		for i, idx := range coordIndices[code] {
			if idx < 0 || idx >= coordCount[code] {
				return fmt.Errorf("topology: %v: index %d at %d out of range", code, idx, i)
			}
		}
		if variant := code.TexVariant(); len(texCoords[variant]) < len(coordIndices[code]) {
			return fmt.Errorf("topology: %v: %d texture coordinates for %d indices", code, len(texCoords[variant]), len(coordIndices[code]))
		}
		if !code.IsMajor() {
			if got, want := coordCount[code], rawCoordCount[code]+2*len(interpPairs[code.Class()-1]); got != want {
				return fmt.Errorf("topology: %v: coord count %d, want %d", code, got, want)
			}
			for _, p := range interpPairs[code.Class()-1] {
				if p[0] >= rawCoordCount[code] || p[1] >= rawCoordCount[code] {
					return fmt.Errorf("topology: %v: interpolation pair %v out of range", code, p)
				}
			}
		}
	}
	return nil
}
