// Package tiledb stores assembled tiles in a SQLite archive: one row per tile
// with its code, encoded vertices and texture image bytes, plus a key/value
// metadata table.
//
// Note: User must properly initialize the sqlite3 library generic driver
// (e.g. import _ "github.com/mattn/go-sqlite3") before using this package.
package tiledb

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/eak1mov/go-icostiles/tile"
	"github.com/eak1mov/go-icostiles/topology"
	"github.com/eak1mov/go-icostiles/vertexfile"
)

// Stored is a tile row as kept in the archive.
type Stored struct {
	Name     tile.Name
	Code     tile.Code
	Vertices []tile.Vertex
	Texture  []byte
}

// Record rebuilds a tile record from the stored row and the static tables.
// The texture path is left empty; the image bytes stay in Stored.Texture.
func (s *Stored) Record() *tile.Record {
	record := &tile.Record{
		Name:     s.Name,
		Code:     s.Code,
		Vertices: s.Vertices,
	}
	topology.Fill(record)
	return record
}

// Reader implements tile.Visitor interface for the tile archive.
type Reader struct {
	db   *sql.DB
	stmt *sql.Stmt
}

// NewReader creates a new Reader for the given archive file path.
//
// The returned Reader must be closed after use to release database resources.
func NewReader(filePath string) (*Reader, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", filePath))
	if err != nil {
		return nil, err
	}

	stmt, err := db.Prepare("SELECT code, vertices, texture FROM tiles WHERE name = ?")
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Reader{db: db, stmt: stmt}, nil
}

func (r *Reader) Close() error {
	return errors.Join(r.stmt.Close(), r.db.Close())
}

func (r *Reader) ReadMetadata() (map[string]string, error) {
	metadata := make(map[string]string)

	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		metadata[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metadata, nil
}

// ReadTile returns the stored tile, or nil if the archive has no such tile.
func (r *Reader) ReadTile(name tile.Name) (*Stored, error) {
	var code int
	var vertices, texture []byte
	if err := r.stmt.QueryRow(string(name)).Scan(&code, &vertices, &texture); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return decode(name, code, vertices, texture)
}

func (r *Reader) VisitTiles(visitor func(*Stored) error) error {
	rows, err := r.db.Query("SELECT name, code, vertices, texture FROM tiles")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var code int
		var vertices, texture []byte

		if err := rows.Scan(&name, &code, &vertices, &texture); err != nil {
			return err
		}

		stored, err := decode(tile.Name(name), code, vertices, texture)
		if err != nil {
			return err
		}

		if err := visitor(stored); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return err
	}

	return nil
}

func (r *Reader) VisitRecords(visitor func(*tile.Record) error) error {
	return r.VisitTiles(func(stored *Stored) error {
		return visitor(stored.Record())
	})
}

func decode(name tile.Name, code int, vertices, texture []byte) (*Stored, error) {
	c := tile.Code(code)
	if !c.Valid() {
		return nil, fmt.Errorf("tiledb: %s: invalid code %d", name, code)
	}
	v, err := vertexfile.ReadAll(vertices)
	if err != nil {
		return nil, fmt.Errorf("tiledb: %s: %w", name, err)
	}
	return &Stored{Name: name, Code: c, Vertices: v, Texture: texture}, nil
}
