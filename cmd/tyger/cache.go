package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-icostiles/texcache"
	"github.com/eak1mov/go-icostiles/tile"
	"github.com/google/subcommands"
)

type cacheCmd struct {
	cachePattern string
}

func (c *cacheCmd) Name() string     { return "cache" }
func (c *cacheCmd) Synopsis() string { return "list cached textures with their dimensions" }
func (c *cacheCmd) Usage() string {
	return "tyger cache [-cache <pattern>]\n"
}
func (c *cacheCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cachePattern, "cache", defaultCachePattern, "Texture cache path pattern, must contain {name}")
}

func (c *cacheCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	cache, err := texcache.New(c.cachePattern)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	err = cache.VisitTextures(func(name tile.Name, filePath string) error {
		config, format, err := texcache.DecodeConfig(filePath)
		if err != nil {
			fmt.Printf("%s\t%s\tunreadable: %v\n", name, filePath, err)
			return nil
		}
		fmt.Printf("%s\t%s\t%s %dx%d\n", name, filePath, format, config.Width, config.Height)
		return nil
	})
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
