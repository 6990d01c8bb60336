package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/etnz/bossa"
	"github.com/etnz/bossa/challenge"
	"golang.org/x/net/html"
)

const (
	loginPath         = "/bossa/login"
	desktopPath       = "/bossa/desktop"
	changeAccountPath = "/bossa/changeaccount?DprID=0"
	logoutPath        = "/bossa/logout"

	challengeField = "LgnChallengeHex"
)

// login runs the handshake: challenge page, proof, then the two pages that
// select the account on the server side.
//
// The portal answers 200 even to a wrong PIN, success is not verified beyond
// the HTTP status.
func (c *Client) login(ctx context.Context) error {
	c.state = Authenticating
	portal := c.cfg.Endpoints.Portal

	page, err := c.fetch(ctx, http.MethodGet, portal+loginPath, nil)
	if err != nil {
		return fmt.Errorf("%w: cannot get login page: %w", bossa.ErrLogin, err)
	}
	hexChallenge, err := scrapeChallenge(bytes.NewReader(page))
	if err != nil {
		return fmt.Errorf("%w: %w", bossa.ErrLogin, err)
	}
	raw, err := challenge.Decode(hexChallenge)
	if err != nil {
		return fmt.Errorf("%w: %w", bossa.ErrLogin, err)
	}

	nik, pin := c.cfg.Credentials.NIK, c.cfg.Credentials.PIN
	form := url.Values{
		"LgnUsrNIK":     {nik},
		"LgnVASCO":      {""},
		"LgnUsrHMACPIN": {challenge.Proof(raw, pin, nik)},
		challengeField:  {hexChallenge},
	}
	if _, err := c.fetch(ctx, http.MethodPost, portal+loginPath, form); err != nil {
		return fmt.Errorf("%w: cannot post credentials: %w", bossa.ErrLogin, err)
	}

	for _, path := range []string{desktopPath, changeAccountPath} {
		if _, err := c.fetch(ctx, http.MethodGet, portal+path, nil); err != nil {
			return fmt.Errorf("%w: cannot get %s: %w", bossa.ErrLogin, path, err)
		}
	}
	c.state = Authenticated
	log.Println("logged in")
	return nil
}

// scrapeChallenge returns the value of the element named LgnChallengeHex.
func scrapeChallenge(r io.Reader) (string, error) {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return "", bossa.ErrLoginPageFormat
			}
			return "", fmt.Errorf("cannot parse login page: %w", z.Err())
		case html.StartTagToken, html.SelfClosingTagToken:
			var name, value string
			hasValue := false
			for _, a := range z.Token().Attr {
				switch a.Key {
				case "name":
					name = a.Val
				case "value":
					value, hasValue = a.Val, true
				}
			}
			if name != challengeField {
				continue
			}
			if !hasValue {
				return "", fmt.Errorf("%w: field has no value", bossa.ErrLoginPageFormat)
			}
			return value, nil
		}
	}
}
