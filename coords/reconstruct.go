// Package coords expands the raw vertices sent by the server into the full
// vertex set addressed by the topology tables.
package coords

import (
	"errors"
	"fmt"

	"github.com/eak1mov/go-icostiles/tile"
	"github.com/eak1mov/go-icostiles/topology"
)

var ErrVertexCount = errors.New("unexpected raw vertex count")

// Reconstruct returns the full vertex buffer for a tile.
//
// Major tiles are returned unchanged (as a copy). Minor tiles get 12 more
// vertices: for each interpolation pair (a, b) of the tile class, in order,
// raw[a]*2/9 + raw[b]*7/9 followed by raw[a]*1/9 + raw[b]*8/9.
func Reconstruct(code tile.Code, raw []tile.Vertex) ([]tile.Vertex, error) {
	if !code.Valid() {
		return nil, fmt.Errorf("coords: invalid tile code %d", int(code))
	}
	if len(raw) != topology.RawCoordCount(code) {
		return nil, fmt.Errorf("%w: %v has %d, want %d", ErrVertexCount, code, len(raw), topology.RawCoordCount(code))
	}

	full := make([]tile.Vertex, len(raw), topology.CoordCount(code))
	copy(full, raw)
	if code.IsMajor() {
		return full, nil
	}

	// pairs index raw vertices only, so appending never feeds back
	for _, p := range topology.InterpPairs(code.Class()) {
		a, b := &raw[p[0]], &raw[p[1]]
		full = append(full, blend(a, b, 2/9.0, 7/9.0), blend(a, b, 1/9.0, 8/9.0))
	}
	return full, nil
}

// blend rounds each product before the sum; the explicit conversions keep the
// compiler from fusing into FMA, which would change the low bits.
func blend(a, b *tile.Vertex, wa, wb float64) tile.Vertex {
	return tile.Vertex{
		float64(a[0]*wa) + float64(b[0]*wb),
		float64(a[1]*wa) + float64(b[1]*wb),
		float64(a[2]*wa) + float64(b[2]*wb),
	}
}
