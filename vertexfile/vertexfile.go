// Package vertexfile reads and writes vertex buffers as consecutive big-endian
// float64 triples, the layout of the TILECOORD response and of ".xyz" dumps.
package vertexfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/eak1mov/go-icostiles/tile"
)

var ErrInvalidLength = errors.New("vertexfile: length is not a multiple of the vertex size")

// VertexSize is the encoded size of one vertex in bytes.
var VertexSize = binary.Size(tile.Vertex{})

func WriteAll(w io.Writer, vertices []tile.Vertex) error {
	return binary.Write(w, binary.BigEndian, vertices)
}

func ReadAll(data []byte) ([]tile.Vertex, error) {
	if len(data)%VertexSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(data))
	}
	vertices := make([]tile.Vertex, len(data)/VertexSize)

	err := binary.Read(bytes.NewReader(data), binary.BigEndian, vertices)
	if err != nil {
		return nil, err
	}

	return vertices, nil
}

// Marshal encodes vertices into a new byte slice.
func Marshal(vertices []tile.Vertex) []byte {
	var b bytes.Buffer
	b.Grow(len(vertices) * VertexSize)
	WriteAll(&b, vertices) // bytes.Buffer writes do not fail
	return b.Bytes()
}

// WriteFile writes vertices to a file, replacing any existing content.
func WriteFile(filePath string, vertices []tile.Vertex) error {
	return os.WriteFile(filePath, Marshal(vertices), 0644)
}

func ReadFile(filePath string) ([]tile.Vertex, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return ReadAll(data)
}
