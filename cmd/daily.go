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

type dailyCmd struct {
	formatFlag
	from, to, asOf date.Date
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "download the daily prices of a stock" }
func (*dailyCmd) Usage() string {
	return `bossa daily [-from <date>] [-to <date>] [-asof <date>] [-format <format>] <name>

  Downloads the daily prices of a stock. Without dates the portal sends its
  default range. Prints nothing when the portal has no data.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	c.formatFlag.SetFlags(f)
	f.Var(&c.from, "from", "First day of the range (YYYY-MM-DD)")
	f.Var(&c.to, "to", "Last day of the range (YYYY-MM-DD)")
	f.Var(&c.asOf, "asof", "Reference day of the request (YYYY-MM-DD)")
}

func (c *dailyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one stock name is required.")
		return subcommands.ExitUsageError
	}
	if !c.from.IsZero() && !c.to.IsZero() && c.to.Before(c.from) {
		fmt.Fprintf(os.Stderr, "Error: -to %s is before -from %s.\n", c.to, c.from)
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
	table, err := fetcher.Daily(ctx, name, quotes.DailyOptions{
		AsOf: timeOf(c.asOf),
		From: timeOf(c.from),
		To:   timeOf(c.to),
	})
	if err != nil {
		return exitStatus(fmt.Sprintf("cannot download daily prices of %s", name), err)
	}
	if table == nil {
		fmt.Fprintf(os.Stderr, "No daily data for %s.\n", name)
		return subcommands.ExitSuccess
	}
	if err := c.print(os.Stdout, table); err != nil {
		return exitStatus("cannot print prices", err)
	}
	return subcommands.ExitSuccess
}
