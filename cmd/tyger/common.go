package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"time"

	"github.com/eak1mov/go-icostiles/assemble"
	"github.com/eak1mov/go-icostiles/proto"
	"github.com/eak1mov/go-icostiles/texcache"
)

const (
	defaultAddr         = "localhost:12345"
	defaultCachePattern = "tyger_cache/{name}.png"
)

// commonFlags are shared by every subcommand talking to the server.
type commonFlags struct {
	addr         string
	cachePattern string
	timeout      time.Duration
	verbose      bool
}

func (c *commonFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", defaultAddr, "Server address (host:port)")
	f.StringVar(&c.cachePattern, "cache", defaultCachePattern, "Texture cache path pattern, must contain {name}")
	f.DurationVar(&c.timeout, "timeout", 30*time.Second, "Per-request timeout, 0 to disable")
	f.BoolVar(&c.verbose, "v", false, "Enable debug logging")
}

func (c *commonFlags) logger() *slog.Logger {
	if c.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	return slog.Default()
}

func (c *commonFlags) openCache() (*texcache.Cache, error) {
	return texcache.New(c.cachePattern, texcache.WithLogger(c.logger()))
}

func (c *commonFlags) dial(ctx context.Context) (*proto.Session, error) {
	return proto.Dial(ctx, c.addr, proto.WithLogger(c.logger()), proto.WithTimeout(c.timeout))
}

// connect opens the texture cache and a session and returns an assembler
// driving them. The session must be shut down with exit.
func (c *commonFlags) connect(ctx context.Context) (*proto.Session, *assemble.Assembler, error) {
	cache, err := c.openCache()
	if err != nil {
		return nil, nil, err
	}
	session, err := c.dial(ctx)
	if err != nil {
		return nil, nil, err
	}
	return session, assemble.New(session, cache, assemble.WithLogger(c.logger())), nil
}

// exit sends EXIT on a healthy session and closes it.
func exit(session *proto.Session) {
	if err := session.Exit(); err != nil {
		log.Println(err)
	}
}

func reportSkipped(skipped []assemble.Skipped) {
	for _, s := range skipped {
		log.Printf("skipped %s: %v", s.Name, s.Err)
	}
}
