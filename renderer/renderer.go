// Package renderer formats price series and symbol tables as markdown.
package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/etnz/bossa"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// Currency of the prices quoted on the Warsaw Stock Exchange.
const Currency = "PLN"

// Price formats a quote in the exchange currency.
func Price(d decimal.Decimal) string {
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, Currency).Currency()
	dec := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// TableMarkdown renders a price series, one row per bar.
//
// Only the columns present in the payload are rendered, prices in PLN and
// volumes as plain numbers.
func TableMarkdown(t *bossa.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(t.Symbol)
	if t.Len() == 0 {
		doc.PlainText("No data.")
		return doc.String()
	}

	layout := time.DateOnly
	if intraday(t) {
		layout = time.DateTime
	}
	doc.PlainText(fmt.Sprintf("%d rows from %s to %s.", t.Len(),
		t.Bars[0].Time.Format(layout), t.Bars[t.Len()-1].Time.Format(layout)))

	type column struct {
		header string
		cell   func(bossa.Bar) string
	}
	known := []struct {
		name string
		column
	}{
		{bossa.ColumnOpen, column{"Open", func(b bossa.Bar) string { return Price(b.Open) }}},
		{bossa.ColumnHigh, column{"High", func(b bossa.Bar) string { return Price(b.High) }}},
		{bossa.ColumnLow, column{"Low", func(b bossa.Bar) string { return Price(b.Low) }}},
		{bossa.ColumnClose, column{"Close", func(b bossa.Bar) string { return Price(b.Close) }}},
		{bossa.ColumnVolume, column{"Volume", func(b bossa.Bar) string { return b.Volume.String() }}},
		{bossa.ColumnOpenInterest, column{"Open Interest", func(b bossa.Bar) string { return b.OpenInterest.String() }}},
		{"oi", column{"Open Interest", func(b bossa.Bar) string { return b.OpenInterest.String() }}},
	}
	columns := []column{{"Time", func(b bossa.Bar) string { return b.Time.Format(layout) }}}
	for _, k := range known {
		if t.Has(k.name) {
			columns = append(columns, k.column)
		}
	}

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.header
	}
	rows := make([][]string, 0, t.Len())
	for _, b := range t.Bars {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = c.cell(b)
		}
		rows = append(rows, row)
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})
	return doc.String()
}

// intraday reports whether any bar is not at midnight.
func intraday(t *bossa.Table) bool {
	for _, b := range t.Bars {
		h, m, s := b.Time.Clock()
		if h != 0 || m != 0 || s != 0 {
			return true
		}
	}
	return false
}

// SymbolsMarkdown renders the stock names and their provider codes.
func SymbolsMarkdown(s bossa.Symbols) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Symbols")
	rows := make([][]string, 0, len(s))
	for _, name := range s.Names() {
		rows = append(rows, []string{name, s[name]})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Code"},
		Rows:   rows,
	})
	return doc.String()
}
