package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bossa"
	"github.com/etnz/bossa/date"
	"github.com/etnz/bossa/quotes"
	"github.com/google/subcommands"
)

type intradayCmd struct {
	formatFlag
	asOf   date.Date
	recent bool
}

func (*intradayCmd) Name() string     { return "intraday" }
func (*intradayCmd) Synopsis() string { return "download the intraday prices of a stock" }
func (*intradayCmd) Usage() string {
	return `bossa intraday [-asof <date> | -recent] [-format <format>] <name>

  Downloads the intraday prices of a stock. -recent starts at the previous
  business day, at the current time of day.
`
}

func (c *intradayCmd) SetFlags(f *flag.FlagSet) {
	c.formatFlag.SetFlags(f)
	f.Var(&c.asOf, "asof", "First day of the prices (YYYY-MM-DD)")
	f.BoolVar(&c.recent, "recent", false, "Only the prices since the previous business day")
}

func (c *intradayCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one stock name is required.")
		return subcommands.ExitUsageError
	}
	if c.recent && !c.asOf.IsZero() {
		fmt.Fprintln(os.Stderr, "Error: -asof and -recent are mutually exclusive.")
		return subcommands.ExitUsageError
	}
	if c.asOf.After(date.Today()) {
		fmt.Fprintf(os.Stderr, "Error: -asof %s is in the future.\n", c.asOf)
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
	var table *bossa.Table
	if c.recent {
		table, err = fetcher.RecentIntraday(ctx, name)
	} else {
		table, err = fetcher.Intraday(ctx, name, timeOf(c.asOf))
	}
	if err != nil {
		return exitStatus(fmt.Sprintf("cannot download intraday prices of %s", name), err)
	}
	if err := c.print(os.Stdout, table); err != nil {
		return exitStatus("cannot print prices", err)
	}
	return subcommands.ExitSuccess
}
