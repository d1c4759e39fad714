package tiledb_test

import (
	"maps"
	"os"
	"path/filepath"
	"testing"

	"github.com/eak1mov/go-icostiles/coords"
	"github.com/eak1mov/go-icostiles/internal/nervetest"
	"github.com/eak1mov/go-icostiles/tile"
	"github.com/eak1mov/go-icostiles/tiledb"
	"github.com/eak1mov/go-icostiles/topology"
	"github.com/google/go-cmp/cmp"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func testRecords(t *testing.T) map[tile.Name]*tile.Record {
	dir := t.TempDir()
	records := make(map[tile.Name]*tile.Record)
	for seed, name := range []tile.Name{"A-020", "A-02", "A-0200", "A-021"} {
		code, err := tile.Classify(name)
		require.NoError(t, err)
		vertices, err := coords.Reconstruct(code, nervetest.Coords(code, seed))
		require.NoError(t, err)

		texturePath := filepath.Join(dir, string(name)+".png")
		require.NoError(t, os.WriteFile(texturePath, nervetest.Texture(code), 0644))

		record := &tile.Record{Name: name, Code: code, Vertices: vertices, TexturePath: texturePath}
		topology.Fill(record)
		records[name] = record
	}
	return records
}

func TestWriterReader(t *testing.T) {
	records := testRecords(t)
	filePath := filepath.Join(t.TempDir(), "tiles.db")
	writerMetadata := map[string]string{"server": "localhost:12345", "tiles": "4"}

	writer, err := tiledb.NewWriter(filePath, tiledb.WithMetadata(writerMetadata))
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	defer writer.Close()

	for _, record := range records {
		if err := writer.WriteRecord(record); err != nil {
			t.Fatalf("WriteRecord failed: %v", err)
		}
	}

	if err := writer.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	require.NoError(t, writer.Close())

	reader, err := tiledb.NewReader(filePath)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	readerMetadata, err := reader.ReadMetadata()
	if err != nil {
		t.Fatalf("ReadMetadata failed: %v", err)
	}
	if diff := cmp.Diff(writerMetadata, readerMetadata); diff != "" {
		t.Errorf("ReadMetadata mismatch (-want+got):\n%v", diff)
	}

	stored, err := reader.ReadTile("A-02")
	if err != nil {
		t.Fatalf("ReadTile failed: %v", err)
	}
	require.NotNil(t, stored)
	if got, want := stored.Code, tile.Class2Minor; got != want {
		t.Errorf("ReadTile code = %v, want = %v", got, want)
	}
	texture, err := os.ReadFile(records["A-02"].TexturePath)
	require.NoError(t, err)
	if !cmp.Equal(stored.Texture, texture) {
		t.Errorf("ReadTile texture mismatch")
	}

	missing, err := reader.ReadTile("B-02")
	if err != nil || missing != nil {
		t.Errorf("ReadTile(missing) = %v, %v, want nil, nil", missing, err)
	}

	want := make(map[tile.Name]*tile.Record)
	for name, record := range records {
		r := *record
		r.TexturePath = ""
		want[name] = &r
	}
	if diff := cmp.Diff(want, maps.Collect(tile.IterRecords(reader))); diff != "" {
		t.Errorf("VisitRecords mismatch (-want+got):\n%v", diff)
	}
}

func TestWriterDuplicateName(t *testing.T) {
	records := testRecords(t)
	filePath := filepath.Join(t.TempDir(), "tiles.db")

	writer, err := tiledb.NewWriter(filePath)
	require.NoError(t, err)
	defer writer.Close()

	require.NoError(t, writer.WriteRecord(records["A-020"]))
	require.NoError(t, writer.WriteRecord(records["A-020"]))
	require.Error(t, writer.Finalize())
}

func TestWriterMissingTexture(t *testing.T) {
	records := testRecords(t)
	writer, err := tiledb.NewWriter(filepath.Join(t.TempDir(), "tiles.db"))
	require.NoError(t, err)
	defer writer.Close()

	record := *records["A-021"]
	record.TexturePath = filepath.Join(t.TempDir(), "missing.png")
	require.ErrorIs(t, writer.WriteRecord(&record), os.ErrNotExist)
}
