// Package bossa provides the data model shared by the bossa.pl clients: the
// account credentials and portal endpoints, the mapping from stock names to
// the provider's codes, the tabular price series returned by the quote
// services, and the errors reported by every sub package.
//
// The protocol itself is split into small packages:
//   - challenge: the challenge-response arithmetic used by the login form.
//   - session: the authenticated HTTP session (login, logout, archive download).
//   - quotes: daily and intraday price series.
//   - watchlist: the favorite stocks list of the account.
//
// A typical use opens a session, fetches some series and closes it:
//
//	cfg, err := bossa.LoadConfig("")
//	client, err := session.Open(ctx, cfg)
//	defer client.Close()
//	f := quotes.NewFetcher(client, cfg.Endpoints, bossa.DefaultSymbols())
//	table, err := f.RecentIntraday(ctx, "KGHM")
//
// This package serves as the foundational logic for the `bossa` command-line
// tool.
package bossa
