package proto_test

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/eak1mov/go-icostiles/proto"
	"github.com/eak1mov/go-icostiles/tile"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestAppendRequest(t *testing.T) {
	for _, tc := range []struct {
		op   proto.Opcode
		name tile.Name
		want []byte
	}{
		{proto.OpExit, "", []byte{0x01}},
		{proto.OpTileSet, "", []byte{0x0a}},
		{proto.OpTileCoord, "A-02", []byte{0x0b, 'A', '-', '0', '2', '\n'}},
		{proto.OpTexture, "10-20", []byte{0x0c, '1', '0', '-', '2', '0', '\n'}},
	} {
		if diff := cmp.Diff(tc.want, proto.AppendRequest(nil, tc.op, tc.name)); diff != "" {
			t.Errorf("AppendRequest(%v, %q) mismatch (-want+got):\n%v", tc.op, tc.name, diff)
		}
	}
}

func TestReadRequest(t *testing.T) {
	r := bufio.NewReader(bytes.NewReader([]byte("\x0a\x0bA-02\n\x0cA-02\r\n\x01")))
	var got []string
	for {
		op, name, err := proto.ReadRequest(r)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, op.String()+" "+string(name))
	}
	want := []string{"TILESET ", "TILECOORD A-02", "TEXTURE A-02", "EXIT "}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadRequest mismatch (-want+got):\n%v", diff)
	}

	_, _, err := proto.ReadRequest(bufio.NewReader(bytes.NewReader([]byte{0x63})))
	require.ErrorIs(t, err, proto.ErrProtocol)
}

func TestReadTileSet(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  []tile.Name
	}{
		{"Two", "a\nb\n\n", []tile.Name{"a", "b"}},
		{"LeadingSpace", "a\n b\n\n", []tile.Name{"a", " b"}},
		{"CRLF", "A-02\r\nA-04\r\n\r\n", []tile.Name{"A-02", "A-04"}},
		{"Empty", "\n", []tile.Name{}},
		{"TrailingData", "a\n\nb\n", []tile.Name{"a"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			names, err := proto.ReadTileSet(bufio.NewReader(strings.NewReader(tc.input)))
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, names); diff != "" {
				t.Errorf("ReadTileSet(%q) mismatch (-want+got):\n%v", tc.input, diff)
			}
		})
	}
	for _, input := range []string{"", "a\nb\n", "a\nb"} {
		_, err := proto.ReadTileSet(bufio.NewReader(strings.NewReader(input)))
		require.ErrorIs(t, err, io.ErrUnexpectedEOF, "input %q", input)
	}
}

func TestWriteTileSet(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, proto.WriteTileSet(&b, []tile.Name{"A-02", "B-04"}))
	require.Equal(t, "A-02\nB-04\n\n", b.String())
}

func TestReadCoords(t *testing.T) {
	var data []byte
	for _, f := range []float64{1, -2, 0.5, 0.0696125, -0.349966, 0.934172} {
		data = binary.BigEndian.AppendUint64(data, math.Float64bits(f))
	}

	vertices, err := proto.ReadCoords(bytes.NewReader(data), 2)
	require.NoError(t, err)
	if diff := cmp.Diff([]tile.Vertex{{1, -2, 0.5}, {0.0696125, -0.349966, 0.934172}}, vertices); diff != "" {
		t.Errorf("ReadCoords mismatch (-want+got):\n%v", diff)
	}

	var b bytes.Buffer
	require.NoError(t, proto.WriteCoords(&b, vertices))
	require.Equal(t, data, b.Bytes())

	_, err = proto.ReadCoords(bytes.NewReader(data[:40]), 2)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	_, err = proto.ReadCoords(bytes.NewReader(nil), 1)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadTextureLength(t *testing.T) {
	length, err := proto.ReadTextureLength(bytes.NewReader([]byte{0, 0, 1, 2}), 1<<20)
	require.NoError(t, err)
	require.Equal(t, int64(258), length)

	_, err = proto.ReadTextureLength(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xfe}), 1<<20)
	require.Error(t, err)
	_, err = proto.ReadTextureLength(bytes.NewReader([]byte{0, 0x20, 0, 0}), 1<<20)
	require.Error(t, err)
	_, err = proto.ReadTextureLength(bytes.NewReader([]byte{0, 0}), 1<<20)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
