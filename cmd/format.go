package cmd

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/bossa"
	"github.com/etnz/bossa/renderer"
)

// Output formats of the quote commands.
const (
	formatMarkdown  = "md"
	formatCSV       = "csv"
	formatJSON      = "json"
	formatAmibroker = "amibroker"
)

var formats = []string{formatMarkdown, formatCSV, formatJSON, formatAmibroker}

// formatFlag is the -format flag shared by the quote commands.
type formatFlag struct {
	format string
}

func (f *formatFlag) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.format, "format", formatMarkdown, "Output format: "+strings.Join(formats, ", "))
}

// print writes t to w in the selected format.
func (f *formatFlag) print(w io.Writer, t *bossa.Table) error {
	switch f.format {
	case formatMarkdown:
		printMarkdown(w, renderer.TableMarkdown(t))
	case formatCSV:
		return t.WriteCSV(w)
	case formatJSON:
		_, err := fmt.Fprintln(w, t.Quote().JSON(true))
		return err
	case formatAmibroker:
		_, err := io.WriteString(w, t.Quote().Amibroker())
		return err
	default:
		return fmt.Errorf("unknown format %q, want one of %s", f.format, strings.Join(formats, ", "))
	}
	return nil
}

// validate checks the format before any request is sent.
func (f *formatFlag) validate() error {
	for _, v := range formats {
		if f.format == v {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q, want one of %s", f.format, strings.Join(formats, ", "))
}
