package bossa

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTable_Quote(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	table := &Table{
		Symbol:  "KGHM",
		Columns: []string{ColumnOpen, ColumnHigh, ColumnLow, ColumnClose, ColumnVolume},
		Bars: []Bar{
			{Time: t0, Open: decimal.RequireFromString("120.5"), High: decimal.RequireFromString("121"), Low: decimal.RequireFromString("120"), Close: decimal.RequireFromString("120.75"), Volume: decimal.NewFromInt(1500)},
			{Time: t0.Add(time.Minute), Open: decimal.RequireFromString("120.75"), High: decimal.RequireFromString("122"), Low: decimal.RequireFromString("120.5"), Close: decimal.RequireFromString("121.9"), Volume: decimal.NewFromInt(320)},
		},
	}

	q := table.Quote()
	if q.Symbol != "KGHM" {
		t.Errorf("Quote().Symbol = %q, want %q", q.Symbol, "KGHM")
	}
	if len(q.Close) != 2 {
		t.Fatalf("len(Quote().Close) = %d, want 2", len(q.Close))
	}
	if q.Close[1] != 121.9 {
		t.Errorf("Quote().Close[1] = %v, want 121.9", q.Close[1])
	}
	if q.Volume[0] != 1500 {
		t.Errorf("Quote().Volume[0] = %v, want 1500", q.Volume[0])
	}
	if !q.Date[1].Equal(t0.Add(time.Minute)) {
		t.Errorf("Quote().Date[1] = %v, want %v", q.Date[1], t0.Add(time.Minute))
	}
}

func TestTable_Has(t *testing.T) {
	table := &Table{Columns: []string{ColumnOpen, ColumnVolume}}
	if !table.Has(ColumnVolume) {
		t.Errorf("Has(%q) = false, want true", ColumnVolume)
	}
	if table.Has("vol") {
		t.Errorf("Has(%q) = true, want false", "vol")
	}
}

func TestTable_WriteCSV(t *testing.T) {
	t0 := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	table := &Table{
		Symbol:  "PENNY",
		Columns: []string{ColumnClose, ColumnVolume},
		Bars: []Bar{
			{Time: t0, Close: decimal.RequireFromString("0.0345"), Volume: decimal.NewFromInt(10)},
			{Time: t0.Add(30 * time.Second), Close: decimal.RequireFromString("0.0351"), Volume: decimal.NewFromInt(5)},
		},
	}

	var buf bytes.Buffer
	if err := table.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() unexpected error = %v", err)
	}
	want := []string{
		"time,open,high,low,close,volume,openint",
		"2024-01-05 09:00:00,0,0,0,0.0345,10,0",
		"2024-01-05 09:00:30,0,0,0,0.0351,5,0",
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(got) != len(want) {
		t.Fatalf("WriteCSV() wrote %d lines, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("WriteCSV() line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
