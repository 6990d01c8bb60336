// Package watchlist replaces the list of favorite stocks of a bossa.pl account.
package watchlist

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/etnz/bossa"
)

// favoritesPath is the page receiving the favorites form, query included.
const favoritesPath = "/index.jsp?layout=customerRating&page=1&cl=przebieg&zakladka=notowania_wlasne"

// Poster sends a form through an authenticated session.
//
// *session.Client implements it.
type Poster interface {
	Post(ctx context.Context, uri string, form url.Values) (*http.Response, error)
}

// Submitter posts favorite lists.
type Submitter struct {
	client    Poster
	endpoints bossa.Endpoints
	symbols   bossa.Symbols
}

// NewSubmitter returns a Submitter posting through client.
func NewSubmitter(client Poster, endpoints bossa.Endpoints, symbols bossa.Symbols) *Submitter {
	return &Submitter{client: client, endpoints: endpoints, symbols: symbols}
}

// Post replaces the favorites with the named stocks, in order.
//
// Nothing is sent if there are more than bossa.MaxFavorites names or if a
// name is unknown. The portal answer is not checked.
func (s *Submitter) Post(ctx context.Context, names []string) error {
	if len(names) > bossa.MaxFavorites {
		return fmt.Errorf("%w: %d symbols, at most %d", bossa.ErrTooManySymbols, len(names), bossa.MaxFavorites)
	}
	codes, err := s.symbols.Codes(names)
	if err != nil {
		return err
	}
	form := url.Values{"codes": {strings.Join(codes, ":")}}
	resp, err := s.client.Post(ctx, s.endpoints.Data+favoritesPath, form)
	if err != nil {
		return fmt.Errorf("cannot post favorites: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	log.Printf("posted %d favorites", len(codes))
	return nil
}
