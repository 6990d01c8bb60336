// Package session maintains an authenticated session with the bossa.pl portal.
//
// Open performs the login handshake, the returned Client then issues
// authenticated requests until Close logs out:
//
//	client, err := session.Open(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// A Client is not safe for concurrent use.
package session

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/etnz/bossa"
	"golang.org/x/net/publicsuffix"
)

// State of a Client.
type State int

const (
	Unauthenticated State = iota
	Authenticating
	Authenticated
	Closed
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Client owns one authenticated HTTP session.
type Client struct {
	cfg   bossa.Config
	http  *http.Client
	state State
}

// Open creates a Client and logs in.
//
// Any failure of the login sequence is reported as bossa.ErrLogin, and no
// Client is returned.
func Open(ctx context.Context, cfg bossa.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	c, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	if err := c.login(ctx); err != nil {
		c.release()
		return nil, err
	}
	return c, nil
}

func newClient(cfg bossa.Config) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cannot create cookie jar: %w", err)
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Jar:       jar,
			Timeout:   cfg.Timeout,
			Transport: &loggingTransport{base: http.DefaultTransport},
		},
	}, nil
}

// State returns the current state of the client.
func (c *Client) State() State { return c.state }

// ready checks that authenticated requests are allowed.
func (c *Client) ready() error {
	switch c.state {
	case Authenticated:
		return nil
	case Closed:
		return bossa.ErrClosed
	default:
		return bossa.ErrNotAuthenticated
	}
}

// Get issues an authenticated GET. The caller must close the response body.
//
// Only transport failures are errors, the response is returned whatever its status.
func (c *Client) Get(ctx context.Context, uri string) (*http.Response, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodGet, uri, nil)
}

// Post issues an authenticated form POST. The caller must close the response body.
func (c *Client) Post(ctx context.Context, uri string, form url.Values) (*http.Response, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, uri, form)
}

// FetchArchiveMember downloads a zip archive and returns a reader on its
// single entry.
//
// It fails with bossa.ErrEmptyArchive if the archive has no entry and with
// bossa.ErrAmbiguousArchive if it has more than one.
func (c *Client) FetchArchiveMember(ctx context.Context, uri string) (io.ReadCloser, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	data, err := c.fetch(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	return openSingleMember(data)
}

// Close logs out and releases idle connections.
//
// Logout is best effort: failures are logged, never returned. Close can be
// called several times.
func (c *Client) Close() error {
	if c.state == Closed {
		return nil
	}
	if c.state == Authenticated {
		ctx, cancel := context.WithTimeout(context.Background(), c.cfg.Timeout)
		defer cancel()
		if _, err := c.fetch(ctx, http.MethodGet, c.cfg.Endpoints.Portal+logoutPath, nil); err != nil {
			log.Printf("logout failed (ignored): %v", err)
		}
	}
	c.release()
	return nil
}

func (c *Client) release() {
	c.state = Closed
	c.http.CloseIdleConnections()
}

// do sends a request, form is sent url encoded when not nil.
func (c *Client) do(ctx context.Context, method, uri string, form url.Values) (*http.Response, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		return nil, fmt.Errorf("cannot create http request %q: %w", uri, err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &bossa.TransportError{Method: method, URL: uri, Err: err}
	}
	return resp, nil
}

// fetch sends a request and reads the whole body, error statuses are transport errors.
func (c *Client) fetch(ctx context.Context, method, uri string, form url.Values) ([]byte, error) {
	resp, err := c.do(ctx, method, uri, form)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		io.Copy(io.Discard, resp.Body)
		return nil, &bossa.TransportError{Method: method, URL: uri, Status: resp.StatusCode}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, &bossa.TransportError{Method: method, URL: uri, Status: resp.StatusCode, Err: fmt.Errorf("cannot read body: %w", err)}
	}
	return buf.Bytes(), nil
}
