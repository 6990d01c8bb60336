package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bossa"
	"github.com/etnz/bossa/quotes"
	"github.com/google/subcommands"
)

type historicCmd struct {
	formatFlag
}

func (*historicCmd) Name() string     { return "historic" }
func (*historicCmd) Synopsis() string { return "download the full intraday history of a stock" }
func (*historicCmd) Usage() string {
	return `bossa historic [-format <format>] <name>

  Downloads the full intraday history of a stock from the public archive.
`
}

func (c *historicCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one stock name is required.")
		return subcommands.ExitUsageError
	}
	if err := c.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	client, cfg, err := openSession(ctx)
	if err != nil {
		return exitStatus("cannot open session", err)
	}
	defer client.Close()

	fetcher := quotes.NewFetcher(client, cfg.Endpoints, bossa.DefaultSymbols())
	table, err := fetcher.HistoricIntraday(ctx, name)
	if err != nil {
		return exitStatus(fmt.Sprintf("cannot download the history of %s", name), err)
	}
	if err := c.print(os.Stdout, table); err != nil {
		return exitStatus("cannot print prices", err)
	}
	return subcommands.ExitSuccess
}
