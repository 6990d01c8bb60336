package quotes

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/etnz/bossa"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Normalized names of the index columns.
const (
	columnDate = "dtyyyymmdd"
	columnTime = "time"
)

// taggedRecord is a row of a file with a header, once the header is normalized.
type taggedRecord struct {
	Date         string `csv:"dtyyyymmdd"`
	Time         string `csv:"time"`
	Open         string `csv:"open"`
	High         string `csv:"high"`
	Low          string `csv:"low"`
	Close        string `csv:"close"`
	Volume       string `csv:"volume"`
	OpenInterest string `csv:"openint"`
}

// historicRecord is a row of a historic intraday file, fields in file order.
type historicRecord struct {
	Symbol       string `csv:"symbol"`
	Unused       string `csv:"unused"`
	Date         string `csv:"date"`
	Time         string `csv:"time"`
	Open         string `csv:"open"`
	High         string `csv:"high"`
	Low          string `csv:"low"`
	Close        string `csv:"close"`
	Volume       string `csv:"volume"`
	OpenInterest string `csv:"oi"`
}

// barColumns are the normalized columns a bossa.Bar carries.
var barColumns = []string{
	bossa.ColumnOpen, bossa.ColumnHigh, bossa.ColumnLow, bossa.ColumnClose,
	bossa.ColumnVolume, bossa.ColumnOpenInterest,
}

// historicColumns are the columns kept from a historic intraday file.
var historicColumns = []string{"open", "high", "low", "close", "volume", "oi"}

// index builds the time index of a row from its date and time cells.
type index struct {
	columns []string // normalized columns consumed by the index
	parse   func(day, clock string) (time.Time, error)
}

var dailyIndex = index{
	columns: []string{columnDate},
	parse: func(day, _ string) (time.Time, error) {
		return time.Parse("20060102", day)
	},
}

var intradayIndex = index{
	columns: []string{columnDate, columnTime},
	parse:   dateTime,
}

// dateTime parses a YYYYMMDD day and a HHMMSS clock, the clock may have lost
// its leading zeros (90000 for 09:00:00).
func dateTime(day, clock string) (time.Time, error) {
	if n := len(clock); n < 6 {
		clock = strings.Repeat("0", 6-n) + clock
	}
	return time.Parse("20060102 150405", day+" "+clock)
}

// normalizeColumn strips the angle brackets, lower cases, and renames vol to volume.
func normalizeColumn(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "\ufeff")
	name = strings.NewReplacer("<", "", ">", "").Replace(name)
	name = strings.ToLower(name)
	if name == "vol" {
		return bossa.ColumnVolume
	}
	return name
}

// headerNormalizer is a csv.Reader that normalizes the first record.
type headerNormalizer struct {
	*csv.Reader
	header []string
}

func (h *headerNormalizer) Read() ([]string, error) {
	record, err := h.Reader.Read()
	if err != nil || h.header != nil {
		return record, err
	}
	h.header = make([]string, len(record))
	for i, name := range record {
		h.header[i] = normalizeColumn(name)
	}
	return h.header, nil
}

func (h *headerNormalizer) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := h.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// parseTagged parses a file with a header.
func parseTagged(r io.Reader, idx index) (*bossa.Table, error) {
	reader := &headerNormalizer{Reader: csv.NewReader(r)}
	reader.TrimLeadingSpace = true

	var records []taggedRecord
	if err := gocsv.UnmarshalCSV(reader, &records); err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	for _, c := range idx.columns {
		if !slices.Contains(reader.header, c) {
			return nil, fmt.Errorf("missing column %q in header %q", c, reader.header)
		}
	}

	table := &bossa.Table{
		Columns: slices.DeleteFunc(slices.Clone(reader.header), func(c string) bool {
			return !slices.Contains(barColumns, c)
		}),
		Bars: make([]bossa.Bar, 0, len(records)),
	}
	for i, rec := range records {
		on, err := idx.parse(rec.Date, rec.Time)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q %q: %w", i+2, rec.Date, rec.Time, err)
		}
		bar, err := newBar(on, rec.Open, rec.High, rec.Low, rec.Close, rec.Volume, rec.OpenInterest)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		table.Bars = append(table.Bars, bar)
	}
	return table, nil
}

// parseHistoric parses a historic intraday file, it has no header.
func parseHistoric(r io.Reader) (*bossa.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 10
	reader.TrimLeadingSpace = true

	var records []historicRecord
	if err := gocsv.UnmarshalCSVWithoutHeaders(reader, &records); err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	table := &bossa.Table{
		Columns: slices.Clone(historicColumns),
		Bars:    make([]bossa.Bar, 0, len(records)),
	}
	for i, rec := range records {
		on, err := dateTime(rec.Date, rec.Time)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q %q: %w", i+1, rec.Date, rec.Time, err)
		}
		bar, err := newBar(on, rec.Open, rec.High, rec.Low, rec.Close, rec.Volume, rec.OpenInterest)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		table.Bars = append(table.Bars, bar)
	}
	return table, nil
}

// newBar converts the cells of a row, an empty cell is a zero value.
func newBar(on time.Time, o, h, l, c, v, oi string) (bossa.Bar, error) {
	bar := bossa.Bar{Time: on}
	fields := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{bossa.ColumnOpen, o, &bar.Open},
		{bossa.ColumnHigh, h, &bar.High},
		{bossa.ColumnLow, l, &bar.Low},
		{bossa.ColumnClose, c, &bar.Close},
		{bossa.ColumnVolume, v, &bar.Volume},
		{bossa.ColumnOpenInterest, oi, &bar.OpenInterest},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		v, err := decimal.NewFromString(f.value)
		if err != nil {
			return bossa.Bar{}, fmt.Errorf("invalid %s %q: %w", f.name, f.value, err)
		}
		*f.dst = v
	}
	return bar, nil
}
