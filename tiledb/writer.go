package tiledb

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/eak1mov/go-icostiles/tile"
	"github.com/eak1mov/go-icostiles/vertexfile"
)

// Writer implements tile.Writer interface for the tile archive.
type Writer struct {
	db     *sql.DB
	stmt   *sql.Stmt
	logger *slog.Logger
}

type writerConfig struct {
	Metadata map[string]string
	Logger   *slog.Logger
}

type WriterOption func(*writerConfig)

func WithMetadata(metadata map[string]string) WriterOption {
	return func(c *writerConfig) { c.Metadata = metadata }
}

func WithLogger(logger *slog.Logger) WriterOption {
	return func(c *writerConfig) { c.Logger = logger }
}

// NewWriter creates a new Writer for writing to an archive file.
// It applies given options and initializes database for writing tiles.
func NewWriter(filePath string, opts ...WriterOption) (*Writer, error) {
	config := writerConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	var err error
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()

	_, err = db.Exec(`
		CREATE TABLE metadata (name TEXT, value TEXT);
		CREATE TABLE tiles (
			name TEXT,
			code INTEGER,
			vertices BLOB,
			texture BLOB
		);
	`)
	if err != nil {
		return nil, err
	}

	for k, v := range config.Metadata {
		_, err = db.Exec("INSERT INTO metadata (name, value) VALUES (?, ?)", k, v)
		if err != nil {
			return nil, err
		}
	}

	stmt, err := db.Prepare("INSERT INTO tiles (name, code, vertices, texture) VALUES (?, ?, ?, ?)")
	if err != nil {
		return nil, err
	}

	return &Writer{db, stmt, config.Logger}, nil
}

func (w *Writer) Close() error {
	return errors.Join(w.stmt.Close(), w.db.Close())
}

// WriteRecord stores the record's vertices and the content of its texture file.
func (w *Writer) WriteRecord(record *tile.Record) error {
	if !record.Code.Valid() {
		return fmt.Errorf("tiledb: %s: invalid code %v", record.Name, record.Code)
	}

	var texture []byte
	if record.TexturePath != "" {
		var err error
		texture, err = os.ReadFile(record.TexturePath)
		if err != nil {
			return err
		}
	}

	_, err := w.stmt.Exec(string(record.Name), int(record.Code), vertexfile.Marshal(record.Vertices), texture)
	return err
}

func (w *Writer) Finalize() error {
	w.logger.Debug("tiledb: creating index")
	_, err := w.db.Exec("CREATE UNIQUE INDEX tile_index ON tiles (name)")
	w.logger.Debug("tiledb: done!")
	return err
}
