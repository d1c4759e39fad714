// Package texcache provides a write-once disk cache of tile textures, where
// each texture is stored as an individual file named after its tile
// (e.g. "tyger_cache/{name}.png").
//
// A file present at the tile's path is trusted permanently: there is no
// eviction, expiry or content check.
package texcache

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/eak1mov/go-icostiles/tile"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrCacheWrite = errors.New("texcache: write failed")

// Fetcher downloads a texture, writing exactly the declared number of bytes to w.
type Fetcher interface {
	FetchTexture(name tile.Name, w io.Writer) (int64, error)
}

// Cache resolves tile names to local texture files.
//
// Resolve is not safe for concurrent use with the same name: two misses
// would download twice and race on the rename.
type Cache struct {
	filePattern string
	rootDir     string
	pathRegexp  *regexp.Regexp
	logger      *slog.Logger
}

type cacheConfig struct {
	Logger *slog.Logger
}

type Option func(*cacheConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *cacheConfig) { c.Logger = logger }
}

// New creates a Cache for the given file pattern (e.g. "/home/user/tyger_cache/{name}.png").
func New(filePattern string, opts ...Option) (*Cache, error) {
	config := cacheConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	filePattern = filepath.Clean(filePattern)
	if err := validatePattern(filePattern); err != nil {
		return nil, err
	}
	pathRegexp, err := compilePattern(filePattern)
	if err != nil {
		return nil, err
	}

	path0 := formatPattern(filePattern, "0")
	path1 := formatPattern(filePattern, "1")
	for path0 != path1 {
		path0 = filepath.Dir(path0)
		path1 = filepath.Dir(path1)
	}

	return &Cache{
		filePattern: filePattern,
		rootDir:     path0,
		pathRegexp:  pathRegexp,
		logger:      config.Logger,
	}, nil
}

// Path returns the cache path of the tile's texture.
func (c *Cache) Path(name tile.Name) string {
	return formatPattern(c.filePattern, name)
}

// Lookup reports whether the tile's texture is cached.
func (c *Cache) Lookup(name tile.Name) (string, bool, error) {
	filePath := c.Path(name)
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return filePath, false, nil
	}
	if err != nil {
		return "", false, err
	}
	return filePath, info.Mode().IsRegular(), nil
}

// Resolve returns the path of the tile's texture, downloading it with f on a miss.
//
// The download goes to a temporary file in the same directory which is renamed
// into place only when complete, so a failed download never leaves a file that
// a later Lookup would accept. Filesystem failures wrap ErrCacheWrite; errors
// from f are returned unchanged.
func (c *Cache) Resolve(name tile.Name, f Fetcher) (string, error) {
	if err := name.Validate(); err != nil {
		return "", err
	}
	if strings.ContainsAny(string(name), `/\`) {
		return "", fmt.Errorf("%w: %q is not a file name", tile.ErrMalformedName, string(name))
	}
	filePath, found, err := c.Lookup(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	if found {
		c.logger.Debug("texture cache hit", "tile", string(name), "path", filePath)
		return filePath, nil
	}

	if err := c.download(name, filePath, f); err != nil {
		return "", err
	}
	c.logger.Debug("texture cached", "tile", string(name), "path", filePath)
	return filePath, nil
}

func (c *Cache) download(name tile.Name, filePath string, f Fetcher) (err error) {
	dirPath := filepath.Dir(filePath)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}

	file, err := os.CreateTemp(dirPath, "."+filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	defer func() {
		if err != nil {
			file.Close()
			os.Remove(file.Name())
		}
	}()

	fw := &fileWriter{file: file}
	n, err := f.FetchTexture(name, fw)
	if fw.err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCacheWrite, name, fw.err)
	}
	if err != nil {
		return err
	}
	if n != fw.written {
		return fmt.Errorf("%w: %s: fetched %d bytes, wrote %d", ErrCacheWrite, name, n, fw.written)
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	if err := os.Chmod(file.Name(), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	if err := os.Rename(file.Name(), filePath); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	return nil
}

// fileWriter records the first write error so that it can be told apart
// from fetch errors.
type fileWriter struct {
	file    *os.File
	written int64
	err     error
}

func (w *fileWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.file.Write(p)
	w.written += int64(n)
	w.err = err
	return n, err
}

// VisitTextures calls the visitor for every cached texture.
func (c *Cache) VisitTextures(visitor func(tile.Name, string) error) error {
	err := filepath.WalkDir(c.rootDir, func(filePath string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		matches := c.pathRegexp.FindStringSubmatch(filePath)
		if matches == nil {
			return nil
		}
		name := tile.Name(matches[c.pathRegexp.SubexpIndex("name")])
		if name.Validate() != nil {
			return nil
		}
		return visitor(name, filePath)
	})
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

var errVisitCancelled = errors.New("visit cancelled")

// Textures returns an iterator over cached textures.
// Iteration panics on filesystem errors.
func (c *Cache) Textures() iter.Seq2[tile.Name, string] {
	return func(yield func(tile.Name, string) bool) {
		err := c.VisitTextures(func(name tile.Name, filePath string) error {
			if !yield(name, filePath) {
				return errVisitCancelled
			}
			return nil
		})
		if err != nil && err != errVisitCancelled {
			panic(err)
		}
	}
}

// DecodeConfig returns the dimensions and format of a cached texture.
func DecodeConfig(filePath string) (image.Config, string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return image.Config{}, "", err
	}
	defer file.Close()
	return image.DecodeConfig(file)
}
