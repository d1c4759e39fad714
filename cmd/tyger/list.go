package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-icostiles/tile"
	"github.com/google/subcommands"
)

type listCmd struct {
	commonFlags
	long bool
}

func (c *listCmd) Name() string     { return "list" }
func (c *listCmd) Synopsis() string { return "print the server's tile set" }
func (c *listCmd) Usage() string {
	return "tyger list [-addr <host:port>] [-l]\n"
}
func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.commonFlags.SetFlags(f)
	f.BoolVar(&c.long, "l", false, "Print the tile code next to each name")
}

func (c *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	session, err := c.dial(ctx)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer exit(session)

	names, err := session.TileSet()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	for _, name := range names {
		if !c.long {
			fmt.Println(name)
			continue
		}
		code, err := tile.Classify(name)
		if err != nil {
			fmt.Printf("%s\tmalformed\n", name)
			continue
		}
		fmt.Printf("%s\t%v\n", name, code)
	}

	return subcommands.ExitSuccess
}
