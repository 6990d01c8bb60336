package bossa

import (
	"io"
	"slices"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/markcheno/go-quote"
	"github.com/shopspring/decimal"
)

// Normalized column names.
const (
	ColumnOpen         = "open"
	ColumnHigh         = "high"
	ColumnLow          = "low"
	ColumnClose        = "close"
	ColumnVolume       = "volume"
	ColumnOpenInterest = "openint"
)

// Bar is one time bucket of a price series.
type Bar struct {
	Time         time.Time
	Open         decimal.Decimal
	High         decimal.Decimal
	Low          decimal.Decimal
	Close        decimal.Decimal
	Volume       decimal.Decimal
	OpenInterest decimal.Decimal
}

// Table is a price series indexed by time, in the order the provider sent it.
//
// Columns lists the normalized names of the payload columns that Bar
// carries. Other columns (ticker, period, the index columns) are not kept.
type Table struct {
	Symbol  string
	Columns []string
	Bars    []Bar
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Bars) }

// Has reports whether the payload had the column.
func (t *Table) Has(column string) bool { return slices.Contains(t.Columns, column) }

// Index returns the time index of the table.
func (t *Table) Index() []time.Time {
	index := make([]time.Time, len(t.Bars))
	for i, b := range t.Bars {
		index[i] = b.Time
	}
	return index
}

// Quote converts the table into a go-quote series, to use its CSV, JSON or
// Amibroker writers. Open interest has no equivalent and is dropped.
func (t *Table) Quote() quote.Quote {
	q := quote.NewQuote(t.Symbol, len(t.Bars))
	for i, b := range t.Bars {
		q.Date[i] = b.Time
		q.Open[i] = b.Open.InexactFloat64()
		q.High[i] = b.High.InexactFloat64()
		q.Low[i] = b.Low.InexactFloat64()
		q.Close[i] = b.Close.InexactFloat64()
		q.Volume[i] = b.Volume.InexactFloat64()
	}
	return q
}

// csvBar is a Bar as written by WriteCSV, decimals keep all their digits.
type csvBar struct {
	Time         string `csv:"time"`
	Open         string `csv:"open"`
	High         string `csv:"high"`
	Low          string `csv:"low"`
	Close        string `csv:"close"`
	Volume       string `csv:"volume"`
	OpenInterest string `csv:"openint"`
}

// WriteCSV writes the table as comma separated values, times to the second.
func (t *Table) WriteCSV(w io.Writer) error {
	rows := make([]csvBar, len(t.Bars))
	for i, b := range t.Bars {
		rows[i] = csvBar{
			Time:         b.Time.Format(time.DateTime),
			Open:         b.Open.String(),
			High:         b.High.String(),
			Low:          b.Low.String(),
			Close:        b.Close.String(),
			Volume:       b.Volume.String(),
			OpenInterest: b.OpenInterest.String(),
		}
	}
	return gocsv.Marshal(rows, w)
}
