package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/eak1mov/go-icostiles/tile"
	"github.com/eak1mov/go-icostiles/tiledb"
	"github.com/eak1mov/go-icostiles/vertexfile"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type exportCmd struct {
	commonFlags
	outputPath string
	xyzDir     string
}

func (c *exportCmd) Name() string     { return "export" }
func (c *exportCmd) Synopsis() string { return "assemble every tile into a tile archive" }
func (c *exportCmd) Usage() string {
	return "tyger export -o <path> [-xyz <dir>] [-addr <host:port>] [-cache <pattern>]\n"
}
func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.commonFlags.SetFlags(f)
	f.StringVar(&c.outputPath, "o", "tiles.db", "Output archive path")
	f.StringVar(&c.xyzDir, "xyz", "", "Also write each tile's vertices to <dir>/<name>.xyz")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if c.xyzDir != "" {
		if err := os.MkdirAll(c.xyzDir, 0755); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
	}

	session, assembler, err := c.connect(ctx)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer exit(session)

	writer, err := tiledb.NewWriter(c.outputPath,
		tiledb.WithMetadata(map[string]string{"server": c.addr, "cache": c.cachePattern}),
		tiledb.WithLogger(c.logger()),
	)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer writer.Close()

	bar := progressbar.NewOptions(-1, progressbar.OptionShowIts(), progressbar.OptionShowCount())

	skipped, err := assembler.Sync(func(record *tile.Record) error {
		if err := writer.WriteRecord(record); err != nil {
			return err
		}
		if c.xyzDir != "" {
			filePath := filepath.Join(c.xyzDir, string(record.Name)+".xyz")
			if err := vertexfile.WriteFile(filePath, record.Vertices); err != nil {
				return err
			}
		}
		return bar.Add(1)
	})

	bar.Finish()
	fmt.Println()

	reportSkipped(skipped)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	if err := writer.Finalize(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
