// Package proto implements the tile server wire protocol: a single persistent
// stream carrying strictly sequential request/response pairs.
//
// Requests are one opcode byte, optionally followed by an ASCII tile name and
// a newline. Multi-byte response fields are big-endian.
package proto

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/eak1mov/go-icostiles/tile"
)

type Opcode uint8

const (
	OpExit      Opcode = 1
	OpTileSet   Opcode = 10
	OpTileCoord Opcode = 11
	OpTexture   Opcode = 12
)

func (op Opcode) String() string {
	switch op {
	case OpExit:
		return "EXIT"
	case OpTileSet:
		return "TILESET"
	case OpTileCoord:
		return "TILECOORD"
	case OpTexture:
		return "TEXTURE"
	}
	return fmt.Sprintf("Opcode(%d)", uint8(op))
}

// hasName reports whether requests with this opcode carry a tile name.
func (op Opcode) hasName() bool {
	return op == OpTileCoord || op == OpTexture
}

var (
	ErrConnection = errors.New("connection error")
	ErrProtocol   = errors.New("protocol error")
)

var errMalformed = errors.New("malformed response")

// AppendRequest appends the encoded request to dst.
func AppendRequest(dst []byte, op Opcode, name tile.Name) []byte {
	dst = append(dst, byte(op))
	if op.hasName() {
		dst = append(dst, name...)
		dst = append(dst, '\n')
	}
	return dst
}

// ReadRequest decodes one request (server side).
func ReadRequest(r *bufio.Reader) (Opcode, tile.Name, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, "", err
	}
	op := Opcode(b)
	switch op {
	case OpExit, OpTileSet:
		return op, "", nil
	case OpTileCoord, OpTexture:
		line, err := readLine(r)
		if err != nil {
			return op, "", err
		}
		return op, tile.Name(line), nil
	}
	return op, "", fmt.Errorf("%w: unknown opcode %d", ErrProtocol, b)
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF {
		return "", io.ErrUnexpectedEOF
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// ReadTileSet reads newline-terminated tile names up to the empty line.
// A stream ending before the empty line yields io.ErrUnexpectedEOF.
func ReadTileSet(r *bufio.Reader) ([]tile.Name, error) {
	names := make([]tile.Name, 0)
	for {
		line, err := readLine(r)
		if err != nil {
			return nil, err
		}
		if line == "" {
			return names, nil
		}
		names = append(names, tile.Name(line))
	}
}

// WriteTileSet encodes a TILESET response (server side).
func WriteTileSet(w io.Writer, names []tile.Name) error {
	var b strings.Builder
	for _, name := range names {
		b.WriteString(string(name))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// ReadCoords reads exactly count vertices of three big-endian float64 values.
func ReadCoords(r io.Reader, count int) ([]tile.Vertex, error) {
	vertices := make([]tile.Vertex, count)
	if err := binary.Read(r, binary.BigEndian, vertices); err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return vertices, nil
}

// WriteCoords encodes a TILECOORD response (server side).
func WriteCoords(w io.Writer, vertices []tile.Vertex) error {
	return binary.Write(w, binary.BigEndian, vertices)
}

// ReadTextureLength reads the signed 32-bit payload length of a TEXTURE response.
func ReadTextureLength(r io.Reader, maxSize int64) (int64, error) {
	var length int32
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		if err == io.EOF {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, err
	}
	if length < 0 || int64(length) > maxSize {
		return 0, fmt.Errorf("%w: texture length %d", errMalformed, length)
	}
	return int64(length), nil
}

// WriteTexture encodes a TEXTURE response (server side).
func WriteTexture(w io.Writer, data []byte) error {
	if err := binary.Write(w, binary.BigEndian, int32(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}
