// Package quotes downloads price series from the bossa.pl quote services.
//
// Every series comes as a zip archive holding a single comma separated file.
// Daily and intraday files have a header with angle-bracket decorated names
// (<DTYYYYMMDD>, <TIME>, <OPEN>, ..., <VOL>, <OPENINT>), historic intraday
// archives have no header at all.
package quotes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/etnz/bossa"
	"github.com/etnz/bossa/date"
)

const (
	dataPath     = "/notowania/wykresy/data/"
	historicPath = "/pub/intraday/mstock/cgl/"

	// timestampFormat is the format of the timestamp query parameters.
	timestampFormat = "2006-01-02_150405.000"
)

// ArchiveFetcher downloads a zip archive and opens its single entry.
//
// *session.Client implements it.
type ArchiveFetcher interface {
	FetchArchiveMember(ctx context.Context, uri string) (io.ReadCloser, error)
}

// Fetcher retrieves price series through an authenticated session.
type Fetcher struct {
	client    ArchiveFetcher
	endpoints bossa.Endpoints
	symbols   bossa.Symbols
	now       func() time.Time
}

// NewFetcher returns a Fetcher using client to download and symbols to
// resolve stock names.
func NewFetcher(client ArchiveFetcher, endpoints bossa.Endpoints, symbols bossa.Symbols) *Fetcher {
	return &Fetcher{
		client:    client,
		endpoints: endpoints,
		symbols:   symbols,
		now:       time.Now,
	}
}

// DailyOptions bound a daily request, zero values are not sent.
type DailyOptions struct {
	AsOf time.Time
	From time.Time
	To   time.Time
}

// Daily returns the daily series of a stock.
//
// When the provider has no data for the request it sends a header only file,
// Daily then returns a nil table and a nil error.
func (f *Fetcher) Daily(ctx context.Context, name string, opts DailyOptions) (*bossa.Table, error) {
	code, err := f.symbols.Lookup(name)
	if err != nil {
		return nil, err
	}
	q := url.Values{
		"id":         {code},
		"kat_id":     {"x"},
		"timestamp":  {formatTimestamp(opts.AsOf)},
		"timeframe":  {"0"},
		"timestamp1": {formatTimestamp(opts.From)},
		"timestamp2": {formatTimestamp(opts.To)},
	}
	data, err := f.download(ctx, f.endpoints.Data+dataPath+"n.txt?"+q.Encode())
	if err != nil {
		return nil, err
	}
	if headerOnly(data) {
		log.Printf("no daily data for %s", name)
		return nil, nil
	}
	table, err := parseTagged(bytes.NewReader(data), dailyIndex)
	if err != nil {
		return nil, fmt.Errorf("cannot parse daily data for %s: %w", name, err)
	}
	table.Symbol = name
	return table, nil
}

// Intraday returns the intraday series of a stock, starting at asOf if not zero.
func (f *Fetcher) Intraday(ctx context.Context, name string, asOf time.Time) (*bossa.Table, error) {
	code, err := f.symbols.Lookup(name)
	if err != nil {
		return nil, err
	}
	q := url.Values{
		"id":        {code},
		"kat_id":    {"x"},
		"timestamp": {formatTimestamp(asOf)},
		"timeframe": {"0"},
	}
	data, err := f.download(ctx, f.endpoints.Data+dataPath+"n_int.txt?"+q.Encode())
	if err != nil {
		return nil, err
	}
	table, err := parseTagged(bytes.NewReader(data), intradayIndex)
	if err != nil {
		return nil, fmt.Errorf("cannot parse intraday data for %s: %w", name, err)
	}
	table.Symbol = name
	return table, nil
}

// RecentIntraday returns the intraday series since the previous business day,
// at the current time of day.
func (f *Fetcher) RecentIntraday(ctx context.Context, name string) (*bossa.Table, error) {
	now := f.now()
	return f.Intraday(ctx, name, date.Of(now).PrevBusinessDay().At(now))
}

// HistoricIntraday returns the full intraday history of a stock.
//
// The archive is public and addressed by stock name, it is still downloaded
// through the session to reuse its connections.
func (f *Fetcher) HistoricIntraday(ctx context.Context, name string) (*bossa.Table, error) {
	if !f.symbols.Has(name) {
		return nil, fmt.Errorf("%w %q", bossa.ErrUnknownSymbol, name)
	}
	data, err := f.download(ctx, f.endpoints.Archive+historicPath+url.PathEscape(name)+".zip")
	if err != nil {
		return nil, err
	}
	table, err := parseHistoric(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot parse historic intraday data for %s: %w", name, err)
	}
	table.Symbol = name
	return table, nil
}

// download returns the content of the single file of the archive at uri.
func (f *Fetcher) download(ctx context.Context, uri string) ([]byte, error) {
	rc, err := f.client.FetchArchiveMember(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rc); err != nil {
		return nil, fmt.Errorf("cannot read archive content: %w", err)
	}
	return buf.Bytes(), nil
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timestampFormat)
}

// headerOnly reports whether data has at most one non blank line.
func headerOnly(data []byte) bool {
	lines := 0
	for line := range bytes.Lines(data) {
		if len(bytes.TrimSpace(line)) > 0 {
			lines++
		}
		if lines > 1 {
			return false
		}
	}
	return true
}
