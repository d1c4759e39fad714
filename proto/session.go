package proto

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/eak1mov/go-icostiles/tile"
	"github.com/eak1mov/go-icostiles/topology"
)

const (
	ioBufferSize          = 16 << 10
	defaultMaxTextureSize = 64 << 20
)

var ErrClosed = errors.New("session closed")

// Session is a client connection to a tile server.
//
// Requests are issued one at a time and each response is consumed completely
// before the next request; responses are matched to requests only by position.
// A Session is not safe for concurrent use.
//
// Connection and protocol errors are fatal: the stream position can no longer
// be trusted, so every later request returns the same error.
type Session struct {
	conn   io.ReadWriteCloser
	reader *bufio.Reader
	writer *bufio.Writer
	iobuf  []byte

	logger         *slog.Logger
	timeout        time.Duration
	maxTextureSize int64

	err error // sticky
}

type sessionConfig struct {
	Logger         *slog.Logger
	Timeout        time.Duration
	MaxTextureSize int64
}

type Option func(*sessionConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *sessionConfig) { c.Logger = logger }
}

// WithTimeout sets a deadline for each request and for dialing.
// It applies only to streams with a SetDeadline method, such as net.Conn.
func WithTimeout(timeout time.Duration) Option {
	return func(c *sessionConfig) { c.Timeout = timeout }
}

// WithMaxTextureSize limits the accepted TEXTURE payload length.
func WithMaxTextureSize(size int64) Option {
	return func(c *sessionConfig) { c.MaxTextureSize = size }
}

func newConfig(opts []Option) sessionConfig {
	config := sessionConfig{
		Logger:         slog.New(slog.DiscardHandler),
		MaxTextureSize: defaultMaxTextureSize,
	}
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

// Dial connects to a tile server at the TCP address.
func Dial(ctx context.Context, addr string, opts ...Option) (*Session, error) {
	config := newConfig(opts)
	dialer := net.Dialer{Timeout: config.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	config.Logger.Debug("connected", "addr", addr)
	return newSession(conn, config), nil
}

// NewSession creates a Session over an established duplex stream.
// The Session takes ownership of conn.
func NewSession(conn io.ReadWriteCloser, opts ...Option) *Session {
	return newSession(conn, newConfig(opts))
}

func newSession(conn io.ReadWriteCloser, config sessionConfig) *Session {
	return &Session{
		conn:           conn,
		reader:         bufio.NewReaderSize(conn, ioBufferSize),
		writer:         bufio.NewWriter(conn),
		iobuf:          make([]byte, ioBufferSize),
		logger:         config.Logger,
		timeout:        config.Timeout,
		maxTextureSize: config.MaxTextureSize,
	}
}

// IsFatal reports whether err leaves the session unusable.
func IsFatal(err error) bool {
	return errors.Is(err, ErrConnection) || errors.Is(err, ErrProtocol) || errors.Is(err, ErrClosed)
}

// Err returns the error that made the session unusable, if any.
func (s *Session) Err() error {
	return s.err
}

func (s *Session) fail(op Opcode, name tile.Name, err error) error {
	kind := ErrConnection
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, errMalformed) {
		kind = ErrProtocol
	}
	if op.hasName() {
		s.err = fmt.Errorf("%w: %v %s: %w", kind, op, name, err)
	} else {
		s.err = fmt.Errorf("%w: %v: %w", kind, op, err)
	}
	s.logger.Error("session failed", "err", s.err)
	return s.err
}

func (s *Session) request(op Opcode, name tile.Name) error {
	if s.err != nil {
		return s.err
	}
	if s.timeout > 0 {
		if dc, ok := s.conn.(interface{ SetDeadline(time.Time) error }); ok {
			if err := dc.SetDeadline(time.Now().Add(s.timeout)); err != nil {
				return s.fail(op, name, err)
			}
		}
	}
	if op.hasName() {
		s.logger.Debug("request", "cmd", op.String(), "tile", string(name))
	} else {
		s.logger.Debug("request", "cmd", op.String())
	}
	if _, err := s.writer.Write(AppendRequest(s.iobuf[:0], op, name)); err != nil {
		return s.fail(op, name, err)
	}
	if err := s.writer.Flush(); err != nil {
		return s.fail(op, name, err)
	}
	return nil
}

// TileSet requests the list of tile names, in server order.
func (s *Session) TileSet() ([]tile.Name, error) {
	if err := s.request(OpTileSet, ""); err != nil {
		return nil, err
	}
	names, err := ReadTileSet(s.reader)
	if err != nil {
		return nil, s.fail(OpTileSet, "", err)
	}
	s.logger.Debug("tile set", "count", len(names))
	return names, nil
}

// TileCoords requests the raw vertices of a tile. The vertex count is implied
// by the tile code; a malformed name is rejected before anything is sent.
func (s *Session) TileCoords(name tile.Name) ([]tile.Vertex, error) {
	code, err := tile.Classify(name)
	if err != nil {
		return nil, err
	}
	if err := s.request(OpTileCoord, name); err != nil {
		return nil, err
	}
	vertices, err := ReadCoords(s.reader, topology.RawCoordCount(code))
	if err != nil {
		return nil, s.fail(OpTileCoord, name, err)
	}
	return vertices, nil
}

// FetchTexture requests the texture image of a tile and copies it to w.
//
// The payload is always consumed in full. If w fails, the rest of the payload
// is discarded and the write error is returned; the session stays usable.
func (s *Session) FetchTexture(name tile.Name, w io.Writer) (int64, error) {
	if err := name.Validate(); err != nil {
		return 0, err
	}
	if err := s.request(OpTexture, name); err != nil {
		return 0, err
	}
	length, err := ReadTextureLength(s.reader, s.maxTextureSize)
	if err != nil {
		return 0, s.fail(OpTexture, name, err)
	}

	var written int64
	var werr error
	for remaining := length; remaining > 0; {
		chunk := s.iobuf[:min(int64(len(s.iobuf)), remaining)]
		n, rerr := s.reader.Read(chunk)
		remaining -= int64(n)
		if n > 0 && werr == nil {
			nw, err := w.Write(chunk[:n])
			written += int64(nw)
			if err == nil && nw != n {
				err = io.ErrShortWrite
			}
			werr = err
		}
		if rerr != nil && remaining > 0 {
			if rerr == io.EOF {
				rerr = io.ErrUnexpectedEOF
			}
			return written, s.fail(OpTexture, name, fmt.Errorf("read %d of %d bytes: %w", length-remaining, length, rerr))
		}
	}
	s.logger.Debug("texture", "tile", string(name), "size", length)

	if werr != nil {
		return written, fmt.Errorf("%v %s: %w", OpTexture, name, werr)
	}
	return written, nil
}

// Exit tells the server to end the session and closes the stream.
func (s *Session) Exit() error {
	if s.err == ErrClosed {
		return nil
	}
	var err error
	if s.err == nil {
		err = s.request(OpExit, "")
	}
	return errors.Join(err, s.Close())
}

// Close closes the stream without notifying the server.
func (s *Session) Close() error {
	if s.err == ErrClosed {
		return nil
	}
	s.err = ErrClosed
	return s.conn.Close()
}
