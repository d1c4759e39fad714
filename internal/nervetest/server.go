// Package nervetest provides an in-process tile server speaking the wire
// protocol, for tests.
package nervetest

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"net"
	"sync"
	"testing"

	"github.com/eak1mov/go-icostiles/proto"
	"github.com/eak1mov/go-icostiles/tile"
)

type Tile struct {
	Coords  []tile.Vertex
	Texture []byte
}

// Server serves Tiles; Names is the TILESET response in order.
// Requests for unknown tiles make the server drop the connection.
type Server struct {
	Names []tile.Name
	Tiles map[tile.Name]Tile

	// OmitTerminator drops the connection after the tile names instead of
	// sending the terminating empty line.
	OmitTerminator bool
	// TruncateTexture, when positive, sends only that many payload bytes of
	// every texture and drops the connection.
	TruncateTexture int

	mu       sync.Mutex
	requests []Request
}

type Request struct {
	Op   proto.Opcode
	Name tile.Name
}

func New(tiles map[tile.Name]Tile, names ...tile.Name) *Server {
	return &Server{Names: names, Tiles: tiles}
}

// Requests returns the requests served so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns the number of requests served with the opcode.
func (s *Server) Count(op proto.Opcode) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Op == op {
			n++
		}
	}
	return n
}

var errDropped = errors.New("nervetest: connection dropped")

// Serve handles requests until EXIT, EOF or a dropped connection. It closes conn.
func (s *Server) Serve(conn io.ReadWriteCloser) error {
	defer conn.Close()
	reader := bufio.NewReader(conn)
	writer := bufio.NewWriter(conn)
	for {
		op, name, err := proto.ReadRequest(reader)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{op, name})
		s.mu.Unlock()

		if op == proto.OpExit {
			return nil
		}
		if err := s.respond(writer, op, name); err != nil {
			if err == errDropped {
				writer.Flush()
				return nil
			}
			return err
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}
}

func (s *Server) respond(w *bufio.Writer, op proto.Opcode, name tile.Name) error {
	switch op {
	case proto.OpTileSet:
		if s.OmitTerminator {
			for _, n := range s.Names {
				w.WriteString(string(n) + "\n")
			}
			return errDropped
		}
		return proto.WriteTileSet(w, s.Names)
	case proto.OpTileCoord:
		t, ok := s.Tiles[name]
		if !ok {
			return errDropped
		}
		return proto.WriteCoords(w, t.Coords)
	case proto.OpTexture:
		t, ok := s.Tiles[name]
		if !ok {
			return errDropped
		}
		if s.TruncateTexture > 0 && s.TruncateTexture < len(t.Texture) {
			// full length prefix, partial payload
			if err := binary.Write(w, binary.BigEndian, int32(len(t.Texture))); err != nil {
				return err
			}
			w.Write(t.Texture[:s.TruncateTexture])
			return errDropped
		}
		return proto.WriteTexture(w, t.Texture)
	}
	return errDropped
}

// Start serves a new session over an in-memory pipe. The session and the
// server are shut down when the test ends.
func Start(t testing.TB, s *Server, opts ...proto.Option) *proto.Session {
	t.Helper()
	client, server := net.Pipe()
	done := make(chan error, 1)
	go func() { done <- s.Serve(server) }()

	session := proto.NewSession(client, opts...)
	t.Cleanup(func() {
		session.Close()
		<-done
	})
	return session
}

// Listen serves sessions on a loopback TCP listener and returns its address.
func Listen(t testing.TB, s *Server) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			s.Serve(conn)
		}
	}()
	t.Cleanup(func() {
		ln.Close()
		wg.Wait()
	})
	return ln.Addr().String()
}
