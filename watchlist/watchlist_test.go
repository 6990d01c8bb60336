package watchlist

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/etnz/bossa"
	"github.com/etnz/bossa/internal/portaltest"
	"github.com/etnz/bossa/session"
)

// countingPoster fails the test if it is ever called.
type countingPoster struct {
	t     *testing.T
	calls int
}

func (p *countingPoster) Post(ctx context.Context, uri string, form url.Values) (*http.Response, error) {
	p.calls++
	p.t.Errorf("Post(%q, %v) called, want no request", uri, form)
	return nil, errors.New("unexpected call")
}

func TestSubmitter_Post(t *testing.T) {
	portal := portaltest.New(t)
	portal.Handle("/index.jsp", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>zapisano</body></html>")
	})
	client, err := session.Open(t.Context(), portal.Config())
	if err != nil {
		t.Fatalf("session.Open() unexpected error = %v", err)
	}
	defer client.Close()

	s := NewSubmitter(client, portal.Endpoints(), bossa.DefaultSymbols())
	if err := s.Post(t.Context(), []string{"KGHM", "PKOBP"}); err != nil {
		t.Fatalf("Post() unexpected error = %v", err)
	}

	req, ok := portal.Last(http.MethodPost, "/index.jsp")
	if !ok {
		t.Fatalf("Post() did not post the favorites form")
	}
	if !req.LoggedIn {
		t.Errorf("Post() request was not authenticated")
	}
	if got, want := req.Form.Get("codes"), "KGH:PKO"; got != want {
		t.Errorf("Post() codes = %q, want %q", got, want)
	}
	wantQuery := map[string]string{
		"layout":   "customerRating",
		"page":     "1",
		"cl":       "przebieg",
		"zakladka": "notowania_wlasne",
	}
	for k, v := range wantQuery {
		if got := req.Query.Get(k); got != v {
			t.Errorf("Post() query %s = %q, want %q", k, got, v)
		}
	}
}

func TestSubmitter_Post_Errors(t *testing.T) {
	symbols := bossa.DefaultSymbols()
	names := symbols.Names()

	tests := []struct {
		name  string
		names []string
		want  error
	}{
		{"too many", names[:bossa.MaxFavorites+1], bossa.ErrTooManySymbols},
		{"unknown", []string{names[0], "NOPE", names[1]}, bossa.ErrUnknownSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poster := &countingPoster{t: t}
			s := NewSubmitter(poster, bossa.DefaultEndpoints(), symbols)
			if err := s.Post(t.Context(), tt.names); !errors.Is(err, tt.want) {
				t.Errorf("Post() error = %v, want %v", err, tt.want)
			}
			if poster.calls != 0 {
				t.Errorf("Post() sent %d requests, want none", poster.calls)
			}
		})
	}
}

func TestSubmitter_Post_AtMost(t *testing.T) {
	portal := portaltest.New(t)
	portal.Handle("/index.jsp", func(w http.ResponseWriter, r *http.Request) {})
	client, err := session.Open(t.Context(), portal.Config())
	if err != nil {
		t.Fatalf("session.Open() unexpected error = %v", err)
	}
	defer client.Close()

	names := bossa.DefaultSymbols().Names()[:bossa.MaxFavorites]
	s := NewSubmitter(client, portal.Endpoints(), bossa.DefaultSymbols())
	if err := s.Post(t.Context(), names); err != nil {
		t.Fatalf("Post() with %d symbols unexpected error = %v", len(names), err)
	}
	if got := portal.Count(http.MethodPost, "/index.jsp"); got != 1 {
		t.Errorf("Post() sent %d requests, want 1", got)
	}
}

func TestSubmitter_Post_ClosedSession(t *testing.T) {
	portal := portaltest.New(t)
	client, err := session.Open(t.Context(), portal.Config())
	if err != nil {
		t.Fatalf("session.Open() unexpected error = %v", err)
	}
	client.Close()

	s := NewSubmitter(client, portal.Endpoints(), bossa.DefaultSymbols())
	if err := s.Post(t.Context(), []string{"KGHM"}); !errors.Is(err, bossa.ErrClosed) {
		t.Errorf("Post() error = %v, want %v", err, bossa.ErrClosed)
	}
}
