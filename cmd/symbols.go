package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/bossa"
	"github.com/etnz/bossa/renderer"
	"github.com/google/subcommands"
)

type symbolsCmd struct{}

func (*symbolsCmd) Name() string     { return "symbols" }
func (*symbolsCmd) Synopsis() string { return "list the known stock names and their codes" }
func (*symbolsCmd) Usage() string {
	return `bossa symbols

  Lists the stock names accepted by the other commands.
`
}

func (*symbolsCmd) SetFlags(f *flag.FlagSet) {}

func (*symbolsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(os.Stdout, renderer.SymbolsMarkdown(bossa.DefaultSymbols()))
	return subcommands.ExitSuccess
}
