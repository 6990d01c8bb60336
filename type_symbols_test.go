package bossa

import (
	"errors"
	"slices"
	"testing"
)

func TestSymbols_Lookup(t *testing.T) {
	tests := []struct {
		name     string
		stock    string
		wantCode string
		wantErr  error
	}{
		{name: "known stock", stock: "KGHM", wantCode: "KGH"},
		{name: "another known stock", stock: "MONNARI", wantCode: "MON"},
		{name: "unknown stock", stock: "NOTASTOCK", wantErr: ErrUnknownSymbol},
		{name: "code is not a name", stock: "KGH", wantErr: ErrUnknownSymbol},
		{name: "empty name", stock: "", wantErr: ErrUnknownSymbol},
	}
	symbols := DefaultSymbols()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := symbols.Lookup(tt.stock)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Lookup(%q) error = %v, want %v", tt.stock, err, tt.wantErr)
			}
			if code != tt.wantCode {
				t.Errorf("Lookup(%q) = %q, want %q", tt.stock, code, tt.wantCode)
			}
		})
	}
}

func TestSymbols_Codes(t *testing.T) {
	symbols := Symbols{"KGHM": "KGH", "MONNARI": "MON"}

	codes, err := symbols.Codes([]string{"MONNARI", "KGHM"})
	if err != nil {
		t.Fatalf("Codes() unexpected error = %v", err)
	}
	if want := []string{"MON", "KGH"}; !slices.Equal(codes, want) {
		t.Errorf("Codes() = %v, want %v", codes, want)
	}

	codes, err = symbols.Codes([]string{"KGHM", "NOTASTOCK", "MONNARI"})
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Codes() error = %v, want %v", err, ErrUnknownSymbol)
	}
	if codes != nil {
		t.Errorf("Codes() = %v, want no partial result", codes)
	}
}

func TestDefaultSymbols_IsACopy(t *testing.T) {
	a := DefaultSymbols()
	a["KGHM"] = "XXX"
	delete(a, "PKOBP")

	b := DefaultSymbols()
	if code, _ := b.Lookup("KGHM"); code != "KGH" {
		t.Errorf("DefaultSymbols() was modified through a copy: KGHM = %q", code)
	}
	if !b.Has("PKOBP") {
		t.Errorf("DefaultSymbols() was modified through a copy: PKOBP is missing")
	}
}

func TestSymbols_Names(t *testing.T) {
	names := Symbols{"PZU": "PZU", "KGHM": "KGH", "ALIOR": "ALR"}.Names()
	if want := []string{"ALIOR", "KGHM", "PZU"}; !slices.Equal(names, want) {
		t.Errorf("Names() = %v, want %v", names, want)
	}
}
