package proto_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/eak1mov/go-icostiles/internal/nervetest"
	"github.com/eak1mov/go-icostiles/proto"
	"github.com/eak1mov/go-icostiles/tile"
	"github.com/eak1mov/go-icostiles/topology"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testServer() *nervetest.Server {
	tiles := map[tile.Name]nervetest.Tile{
		"A-020":  {Coords: nervetest.SampleMajorCoords, Texture: nervetest.Texture(tile.Class1Major)},
		"A-02":   nervetest.Fixture("A-02", 1),
		"A-0200": nervetest.Fixture("A-0200", 2),
		"A-021":  nervetest.Fixture("A-021", 3),
	}
	return nervetest.New(tiles, "A-020", "A-02", "A-0200", "A-021")
}

func TestTileSet(t *testing.T) {
	session := nervetest.Start(t, testServer())

	names, err := session.TileSet()
	require.NoError(t, err)
	if diff := cmp.Diff([]tile.Name{"A-020", "A-02", "A-0200", "A-021"}, names); diff != "" {
		t.Errorf("TileSet mismatch (-want+got):\n%v", diff)
	}
}

func TestTileCoords(t *testing.T) {
	srv := testServer()
	session := nervetest.Start(t, srv)

	for _, name := range []tile.Name{"A-020", "A-02", "A-0200", "A-021"} {
		code, err := tile.Classify(name)
		require.NoError(t, err)
		vertices, err := session.TileCoords(name)
		require.NoError(t, err, "TileCoords(%q)", name)
		require.Len(t, vertices, topology.RawCoordCount(code))
		if diff := cmp.Diff(srv.Tiles[name].Coords, vertices); diff != "" {
			t.Errorf("TileCoords(%q) mismatch (-want+got):\n%v", name, diff)
		}
	}
	require.Equal(t, 4, srv.Count(proto.OpTileCoord))
}

func TestTileCoordsMalformedName(t *testing.T) {
	srv := testServer()
	session := nervetest.Start(t, srv)

	_, err := session.TileCoords("A\n0")
	require.ErrorIs(t, err, tile.ErrMalformedName)
	require.False(t, proto.IsFatal(err))
	require.Empty(t, srv.Requests())

	_, err = session.TileCoords("A-020")
	require.NoError(t, err)
}

func TestFetchTexture(t *testing.T) {
	srv := testServer()
	session := nervetest.Start(t, srv)

	var b bytesWriter
	n, err := session.FetchTexture("A-02", &b)
	require.NoError(t, err)
	require.Equal(t, int64(len(srv.Tiles["A-02"].Texture)), n)
	require.Equal(t, srv.Tiles["A-02"].Texture, []byte(b))
}

type bytesWriter []byte

func (w *bytesWriter) Write(p []byte) (int, error) {
	*w = append(*w, p...)
	return len(p), nil
}

type failingWriter struct{ limit, written int }

var errDiskFull = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.limit {
		n := w.limit - w.written
		w.written = w.limit
		return n, errDiskFull
	}
	w.written += len(p)
	return len(p), nil
}

func TestFetchTextureWriterError(t *testing.T) {
	srv := testServer()
	srv.Tiles["A-0200"] = nervetest.Tile{
		Coords:  srv.Tiles["A-0200"].Coords,
		Texture: make([]byte, 100_000),
	}
	session := nervetest.Start(t, srv)

	n, err := session.FetchTexture("A-0200", &failingWriter{limit: 20_000})
	require.ErrorIs(t, err, errDiskFull)
	require.False(t, proto.IsFatal(err))
	require.Equal(t, int64(20_000), n)
	require.NoError(t, session.Err())

	// the rest of the payload was drained, the stream is still in sync
	vertices, err := session.TileCoords("A-020")
	require.NoError(t, err)
	if diff := cmp.Diff(nervetest.SampleMajorCoords, vertices); diff != "" {
		t.Errorf("TileCoords mismatch (-want+got):\n%v", diff)
	}
}

func TestFetchTextureTruncated(t *testing.T) {
	srv := testServer()
	srv.TruncateTexture = 10
	session := nervetest.Start(t, srv)

	var b bytesWriter
	_, err := session.FetchTexture("A-02", &b)
	require.ErrorIs(t, err, proto.ErrProtocol)
	require.True(t, proto.IsFatal(err))
	require.Contains(t, err.Error(), "TEXTURE A-02")

	_, err2 := session.TileCoords("A-020")
	require.Equal(t, err, err2)
	require.Equal(t, 0, srv.Count(proto.OpTileCoord))
}

func TestTileSetMissingTerminator(t *testing.T) {
	srv := testServer()
	srv.OmitTerminator = true
	session := nervetest.Start(t, srv)

	_, err := session.TileSet()
	require.ErrorIs(t, err, proto.ErrProtocol)
	require.Contains(t, err.Error(), "TILESET")
}

func TestUnknownTileDropsConnection(t *testing.T) {
	session := nervetest.Start(t, testServer())

	_, err := session.TileCoords("B-020")
	require.True(t, proto.IsFatal(err))
	_, err = session.TileSet()
	require.True(t, proto.IsFatal(err))
}

func TestExit(t *testing.T) {
	srv := testServer()
	client, server := net.Pipe()
	done := make(chan error, 1)
	go func() { done <- srv.Serve(server) }()

	session := proto.NewSession(client)
	_, err := session.TileSet()
	require.NoError(t, err)
	require.NoError(t, session.Exit())
	require.NoError(t, <-done)

	if diff := cmp.Diff([]nervetest.Request{{Op: proto.OpTileSet}, {Op: proto.OpExit}}, srv.Requests()); diff != "" {
		t.Errorf("Requests mismatch (-want+got):\n%v", diff)
	}

	_, err = session.TileSet()
	require.ErrorIs(t, err, proto.ErrClosed)
	require.NoError(t, session.Exit())
}

func TestDial(t *testing.T) {
	srv := testServer()
	addr := nervetest.Listen(t, srv)

	session, err := proto.Dial(context.Background(), addr, proto.WithTimeout(5*time.Second))
	require.NoError(t, err)
	names, err := session.TileSet()
	require.NoError(t, err)
	require.Len(t, names, 4)
	require.NoError(t, session.Exit())
}

func TestDialError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	_, err = proto.Dial(context.Background(), addr)
	require.ErrorIs(t, err, proto.ErrConnection)
}
