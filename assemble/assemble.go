// Package assemble turns tile names into render-ready records: it fetches raw
// coordinates over a protocol session, reconstructs the full vertex buffer,
// resolves the texture through the disk cache and attaches the static strip
// topology.
package assemble

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/eak1mov/go-icostiles/coords"
	"github.com/eak1mov/go-icostiles/proto"
	"github.com/eak1mov/go-icostiles/texcache"
	"github.com/eak1mov/go-icostiles/tile"
	"github.com/eak1mov/go-icostiles/topology"
)

// Client is the part of a protocol session the assembler uses.
// It is satisfied by *proto.Session.
type Client interface {
	TileSet() ([]tile.Name, error)
	TileCoords(name tile.Name) ([]tile.Vertex, error)
	FetchTexture(name tile.Name, w io.Writer) (int64, error)
}

// Skipped is a tile that could not be assembled while the session stayed usable.
type Skipped struct {
	Name tile.Name
	Err  error
}

// Assembler is not safe for concurrent use; it drives a single session.
type Assembler struct {
	client Client
	cache  *texcache.Cache
	logger *slog.Logger
}

type assemblerConfig struct {
	Logger *slog.Logger
}

type Option func(*assemblerConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *assemblerConfig) { c.Logger = logger }
}

func New(client Client, cache *texcache.Cache, opts ...Option) *Assembler {
	config := assemblerConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}
	return &Assembler{client: client, cache: cache, logger: config.Logger}
}

// Assemble builds the record of a single tile. Coordinates are fetched on
// every call; only the texture is cached.
func (a *Assembler) Assemble(name tile.Name) (*tile.Record, error) {
	code, err := tile.Classify(name)
	if err != nil {
		return nil, err
	}

	raw, err := a.client.TileCoords(name)
	if err != nil {
		return nil, err
	}

	vertices, err := coords.Reconstruct(code, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	texturePath, err := a.cache.Resolve(name, a.client)
	if err != nil {
		return nil, err
	}

	record := &tile.Record{
		Name:        name,
		Code:        code,
		Vertices:    vertices,
		TexturePath: texturePath,
	}
	topology.Fill(record)

	a.logger.Debug("tile assembled", "tile", string(name), "code", code, "vertices", len(vertices))
	return record, nil
}

// AssembleAll assembles the tiles in order, passing each record to visit.
//
// Tiles failing with a per-tile error are logged and returned as skipped.
// A fatal session error or a visitor error stops the run and is returned
// together with the tiles skipped so far.
func (a *Assembler) AssembleAll(names []tile.Name, visit func(*tile.Record) error) ([]Skipped, error) {
	var skipped []Skipped
	for _, name := range names {
		record, err := a.Assemble(name)
		if err != nil {
			if proto.IsFatal(err) {
				return skipped, err
			}
			a.logger.Warn("skipping tile", "tile", string(name), "err", err)
			skipped = append(skipped, Skipped{Name: name, Err: err})
			continue
		}
		if err := visit(record); err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}

// Sync requests the server's tile set and assembles every tile in it.
func (a *Assembler) Sync(visit func(*tile.Record) error) ([]Skipped, error) {
	names, err := a.client.TileSet()
	if err != nil {
		return nil, err
	}
	a.logger.Info("tile set received", "tiles", len(names))
	return a.AssembleAll(names, visit)
}
