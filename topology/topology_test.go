package topology_test

import (
	"testing"

	"github.com/eak1mov/go-icostiles/tile"
	"github.com/eak1mov/go-icostiles/topology"
	"github.com/google/go-cmp/cmp"
)

func TestCheck(t *testing.T) {
	if err := topology.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestStripLengths(t *testing.T) {
	wantIndices := []int{108, 60, 108, 84}
	for code := tile.Code(0); code < tile.NumCodes; code++ {
		sum := 0
		for _, n := range topology.StripLengths(code) {
			sum += n
		}
		indices := topology.CoordIndices(code)
		if sum != len(indices) {
			t.Errorf("%v: sum(StripLengths) = %v, len(CoordIndices) = %v", code, sum, len(indices))
		}
		if len(indices) != wantIndices[code] {
			t.Errorf("%v: len(CoordIndices) = %v, want = %v", code, len(indices), wantIndices[code])
		}
	}
}

func TestCounts(t *testing.T) {
	if got, want := []int{
		topology.RawCoordCount(tile.Class1Major),
		topology.RawCoordCount(tile.Class1Minor),
		topology.RawCoordCount(tile.Class2Major),
		topology.RawCoordCount(tile.Class2Minor),
	}, []int{55, 31, 55, 31}; !cmp.Equal(got, want) {
		t.Errorf("RawCoordCount = %v, want = %v", got, want)
	}
	if got, want := []int{
		topology.CoordCount(tile.Class1Major),
		topology.CoordCount(tile.Class1Minor),
		topology.CoordCount(tile.Class2Major),
		topology.CoordCount(tile.Class2Minor),
	}, []int{55, 43, 55, 43}; !cmp.Equal(got, want) {
		t.Errorf("CoordCount = %v, want = %v", got, want)
	}
}

func TestTexCoords(t *testing.T) {
	for variant, want := range []int{108, 84} {
		coords := topology.TexCoords(variant)
		if len(coords) != want {
			t.Errorf("len(TexCoords(%d)) = %v, want = %v", variant, len(coords), want)
		}
		indices := topology.TexCoordIndices(variant)
		for i, idx := range indices {
			if idx != i {
				t.Fatalf("TexCoordIndices(%d)[%d] = %v", variant, i, idx)
			}
		}
		for i, c := range coords {
			if c[0] < 0 || c[0] > 1 || c[1] < 0 || c[1] > 1 {
				t.Errorf("TexCoords(%d)[%d] = %v out of unit square", variant, i, c)
			}
		}
	}
	if got, want := topology.TexCoords(1)[60], (tile.TexCoord{30.5 / 32, 63.5 / 64}); got != want {
		t.Errorf("TexCoords(1)[60] = %v, want = %v", got, want)
	}
}

func TestInterpPairs(t *testing.T) {
	if diff := cmp.Diff([]topology.Pair{{8, 16}, {14, 15}, {10, 22}, {20, 21}, {12, 28}, {26, 27}}, topology.InterpPairs(1)); diff != "" {
		t.Errorf("InterpPairs(1) mismatch (-want+got):\n%v", diff)
	}
	if diff := cmp.Diff([]topology.Pair{{17, 16}, {7, 15}, {23, 22}, {9, 21}, {29, 28}, {11, 27}}, topology.InterpPairs(2)); diff != "" {
		t.Errorf("InterpPairs(2) mismatch (-want+got):\n%v", diff)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	indices := topology.CoordIndices(tile.Class1Major)
	indices[0] = -1
	if topology.CoordIndices(tile.Class1Major)[0] != 2 {
		t.Errorf("CoordIndices shares storage with the static table")
	}
	coords := topology.TexCoords(0)
	coords[0] = tile.TexCoord{}
	if topology.TexCoords(0)[0] == (tile.TexCoord{}) {
		t.Errorf("TexCoords shares storage with the static table")
	}
}

func TestFill(t *testing.T) {
	record := tile.Record{Name: "A-02", Code: tile.Class2Minor}
	topology.Fill(&record)
	if len(record.CoordIndices) != 84 || len(record.StripLengths) != 15 {
		t.Errorf("Fill(%v): %d indices in %d strips", record.Code, len(record.CoordIndices), len(record.StripLengths))
	}
	if diff := cmp.Diff(topology.TexCoords(1), record.TexCoords); diff != "" {
		t.Errorf("Fill TexCoords mismatch (-want+got):\n%v", diff)
	}
	if len(record.TexCoordIndices) != len(record.TexCoords) {
		t.Errorf("Fill: %d texture indices for %d texture coordinates", len(record.TexCoordIndices), len(record.TexCoords))
	}
}
