package bossa

import (
	"fmt"
	"maps"
	"slices"
)

// MaxFavorites is the largest list of favorite stocks accepted by the portal.
const MaxFavorites = 20

// Symbols maps a stock name (as used on the portal, e.g. "KGHM") to the
// provider code used by the quote and watchlist services (e.g. "KGH").
//
// Symbols is read-only once built, use DefaultSymbols or a literal.
type Symbols map[string]string

// Lookup returns the provider code for a stock name.
func (s Symbols) Lookup(name string) (string, error) {
	code, ok := s[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownSymbol, name)
	}
	return code, nil
}

// Has reports whether the stock name is mapped.
func (s Symbols) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Codes resolves all names, in order. It fails on the first unknown name and
// returns no partial result.
func (s Symbols) Codes(names []string) ([]string, error) {
	codes := make([]string, 0, len(names))
	for _, name := range names {
		code, err := s.Lookup(name)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// Names returns the sorted list of stock names.
func (s Symbols) Names() []string { return slices.Sorted(maps.Keys(s)) }

// DefaultSymbols returns a fresh copy of the built-in mapping of Warsaw Stock
// Exchange names to their codes.
func DefaultSymbols() Symbols { return maps.Clone(wseSymbols) }

var wseSymbols = Symbols{
	"AGORA":      "AGO",
	"AGROTON":    "AGT",
	"ALIOR":      "ALR",
	"ALLEGRO":    "ALE",
	"ASBIS":      "ASB",
	"ASSECOPOL":  "ACP",
	"BUDIMEX":    "BDX",
	"CCC":        "CCC",
	"CDPROJEKT":  "CDR",
	"COGNOR":     "COG",
	"CYFRPLSAT":  "CPS",
	"DINOPL":     "DNP",
	"ENEA":       "ENA",
	"GETIN":      "GTN",
	"GRUPAAZOTY": "ATT",
	"JSW":        "JSW",
	"KETY":       "KTY",
	"KGHM":       "KGH",
	"KRUK":       "KRU",
	"KSGAGRO":    "KSG",
	"LOTOS":      "LTS",
	"LPP":        "LPP",
	"MBANK":      "MBK",
	"MILKILAND":  "MLK",
	"MONNARI":    "MON",
	"ORANGEPL":   "OPL",
	"PEKAO":      "PEO",
	"PGE":        "PGE",
	"PKNORLEN":   "PKN",
	"PKOBP":      "PKO",
	"POZBUD":     "POZ",
	"PZU":        "PZU",
	"SANPL":      "SPL",
	"SOLAR":      "SOL",
	"TAURONPE":   "TPE",
	"VIVID":      "VVD",
	"WASKO":      "WAS",
}
