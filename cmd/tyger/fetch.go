package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-icostiles/tile"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type fetchCmd struct {
	commonFlags
}

func (c *fetchCmd) Name() string     { return "fetch" }
func (c *fetchCmd) Synopsis() string { return "assemble every tile and fill the texture cache" }
func (c *fetchCmd) Usage() string {
	return "tyger fetch [-addr <host:port>] [-cache <pattern>] [tile...]\n"
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	session, assembler, err := c.connect(ctx)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer exit(session)

	names := make([]tile.Name, 0, f.NArg())
	for _, arg := range f.Args() {
		names = append(names, tile.Name(arg))
	}
	if len(names) == 0 {
		names, err = session.TileSet()
		if err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
	}

	bar := progressbar.NewOptions(len(names), progressbar.OptionShowIts(), progressbar.OptionShowCount())
	vertices := 0

	skipped, err := assembler.AssembleAll(names, func(record *tile.Record) error {
		vertices += len(record.Vertices)
		return bar.Add(1)
	})

	bar.Finish()
	fmt.Println()

	reportSkipped(skipped)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%d tiles, %d vertices, %d skipped\n", len(names)-len(skipped), vertices, len(skipped))
	return subcommands.ExitSuccess
}
