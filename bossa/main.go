// Command bossa downloads stock prices from the bossa.pl brokerage portal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/bossa"
	"github.com/etnz/bossa/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
func completion() *complete.Command {
	names := predict.Set(bossa.DefaultSymbols().Names())
	formats := predict.Set{"md", "csv", "json", "amibroker"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"env-file": predict.Files("*"),
			"timeout":  predict.Something,
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"daily": {
				Flags: map[string]complete.Predictor{
					"from":   predict.Something,
					"to":     predict.Something,
					"asof":   predict.Something,
					"format": formats,
				},
				Args: names,
			},
			"intraday": {
				Flags: map[string]complete.Predictor{
					"asof":   predict.Something,
					"recent": predict.Nothing,
					"format": formats,
				},
				Args: names,
			},
			"historic": {
				Flags: map[string]complete.Predictor{"format": formats},
				Args:  names,
			},
			"favorites": {Args: names},
			"symbols":   {},
			"topic":     {Args: predict.Set{"configuration", "login", "quotes", "favorites", "symbols", "*"}},
		},
	}
}

func main() {
	// exits when called by the shell for completion.
	completion().Complete("bossa")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLog()

	if flag.NArg() > 0 && !registered(commander, flag.Arg(0)) {
		if found, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a subcommand of c.
func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		if sub.Name() == name {
			found = true
		}
	})
	return found
}
