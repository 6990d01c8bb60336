package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bossa"
	"github.com/etnz/bossa/watchlist"
	"github.com/google/subcommands"
)

type favoritesCmd struct{}

func (*favoritesCmd) Name() string     { return "favorites" }
func (*favoritesCmd) Synopsis() string { return "replace the favorite stocks of the account" }
func (*favoritesCmd) Usage() string {
	return fmt.Sprintf(`bossa favorites <name>...

  Replaces the favorite stocks of the account, at most %d names.
`, bossa.MaxFavorites)
}

func (*favoritesCmd) SetFlags(f *flag.FlagSet) {}

func (*favoritesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one stock name is required.")
		return subcommands.ExitUsageError
	}
	symbols := bossa.DefaultSymbols()
	// fail before logging in.
	if len(names) > bossa.MaxFavorites {
		return exitStatus("invalid favorites", fmt.Errorf("%w: %d symbols, at most %d", bossa.ErrTooManySymbols, len(names), bossa.MaxFavorites))
	}
	if _, err := symbols.Codes(names); err != nil {
		return exitStatus("invalid favorites", err)
	}

	client, cfg, err := openSession(ctx)
	if err != nil {
		return exitStatus("cannot open session", err)
	}
	defer client.Close()

	if err := watchlist.NewSubmitter(client, cfg.Endpoints, symbols).Post(ctx, names); err != nil {
		return exitStatus("cannot post favorites", err)
	}
	fmt.Printf("✅ %d favorites posted.\n", len(names))
	return subcommands.ExitSuccess
}
