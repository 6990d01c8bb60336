// Package cmd implements the bossa command line.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bossa"
	"github.com/etnz/bossa/date"
	"github.com/etnz/bossa/session"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dailyCmd{}, "quotes")
	c.Register(&intradayCmd{}, "quotes")
	c.Register(&historicCmd{}, "quotes")

	c.Register(&favoritesCmd{}, "account")

	c.Register(&symbolsCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var envFile = flag.String("env-file", ".env", "Path to an optional file defining BOSSA_* variables")
var timeout = flag.Duration("timeout", 0, "Timeout of every request to the portal, overrides "+bossa.EnvTimeout)

// Verbose enables the log of every request.
var Verbose = flag.Bool("v", false, "Log every request sent to the portal")

// SetupLog discards the log unless verbose.
func SetupLog() {
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// LoadConfig loads the configuration and applies the global flags.
func LoadConfig() (bossa.Config, error) {
	cfg, err := bossa.LoadConfig(*envFile)
	if err != nil {
		return cfg, err
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}
	return cfg, nil
}

// openSession loads the configuration and logs in.
func openSession(ctx context.Context) (*session.Client, bossa.Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, cfg, err
	}
	client, err := session.Open(ctx, cfg)
	if err != nil {
		return nil, cfg, err
	}
	return client, cfg, nil
}

// printMarkdown renders md for the terminal to w, or writes it raw if it cannot.
func printMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	log.Printf("cannot render markdown: %v", err)
	fmt.Fprint(w, md)
}

// timeOf converts an optional date flag, a zero date is a zero time.
func timeOf(d date.Date) time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	return d.Midnight(time.UTC)
}

// exitStatus prints err and returns the failure status.
func exitStatus(what string, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", what, err)
	return subcommands.ExitFailure
}
