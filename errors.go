package bossa

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedChallenge is returned when the login challenge is not a valid even length hex string.
	ErrMalformedChallenge = errors.New("malformed login challenge")
	// ErrLoginPageFormat is returned when the login page does not carry the challenge field.
	ErrLoginPageFormat = errors.New("login page has no LgnChallengeHex field")
	// ErrLogin wraps any failure of the login sequence.
	ErrLogin = errors.New("login failed")

	// ErrNotAuthenticated is returned by requests sent before the login completed.
	ErrNotAuthenticated = errors.New("session is not authenticated")
	// ErrClosed is returned by requests sent after Close.
	ErrClosed = errors.New("session is closed")

	// ErrEmptyArchive is returned when a downloaded zip archive has no entries.
	ErrEmptyArchive = errors.New("empty zip archive")
	// ErrAmbiguousArchive is returned when a downloaded zip archive has more than one entry.
	ErrAmbiguousArchive = errors.New("zip archive has more than one entry")

	// ErrUnknownSymbol is returned for a stock name missing from the symbol table.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrTooManySymbols is returned when a favorites list exceeds MaxFavorites.
	ErrTooManySymbols = errors.New("too many symbols")
)

// TransportError reports a network failure or an HTTP error status.
type TransportError struct {
	Method string
	URL    string
	Status int // zero when no response was received
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot http %s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("cannot http %s %s: status %d", e.Method, e.URL, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }
