// Package portaltest runs a fake bossa.pl portal for tests.
//
// The fake implements the login handshake (challenge page, proof check,
// session cookie), the context-setting pages, logout, and lets tests
// register the data endpoints they need. Every request is recorded.
package portaltest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/etnz/bossa"
	"github.com/etnz/bossa/challenge"
)

const (
	// NIK and PIN are the credentials accepted by default.
	NIK = "00123456"
	PIN = "1234"
	// Challenge is the default hex challenge of the login page.
	Challenge = "9f86d081884c7d65"

	sessionCookie = "BOSSASESSION"
	sessionValue  = "authenticated"
)

// Request is a recorded request.
type Request struct {
	Method   string
	Path     string
	Query    url.Values
	Form     url.Values
	LoggedIn bool // the request carried the session cookie
}

// Server is a fake portal.
type Server struct {
	*httptest.Server

	// Challenge served in the login page, an empty value removes the field from the page.
	Challenge string
	NIK, PIN  string

	mu       sync.Mutex
	requests []Request
	routes   map[string]http.HandlerFunc
}

// New starts a fake portal closed at the end of the test.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		Challenge: Challenge,
		NIK:       NIK,
		PIN:       PIN,
		routes:    make(map[string]http.HandlerFunc),
	}
	s.routes["/bossa/login"] = s.login
	s.routes["/bossa/desktop"] = s.page("desktop")
	s.routes["/bossa/changeaccount"] = s.page("account")
	s.routes["/bossa/logout"] = s.logout
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Endpoints point the three hosts to this server.
func (s *Server) Endpoints() bossa.Endpoints {
	return bossa.Endpoints{Portal: s.URL, Data: s.URL, Archive: s.URL}
}

// Config returns a config with valid credentials for this server.
func (s *Server) Config() bossa.Config {
	return bossa.Config{
		Credentials: bossa.Credentials{NIK: s.NIK, PIN: s.PIN},
		Endpoints:   s.Endpoints(),
		Timeout:     5 * time.Second,
	}
}

// Handle registers a handler for a path (without query).
func (s *Server) Handle(path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = h
}

// Fail makes path answer with status.
func (s *Server) Fail(path string, status int) {
	s.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(status), status)
	})
}

// ServeZip makes path answer with a zip archive of files.
func (s *Server) ServeZip(t testing.TB, path string, files ...File) {
	data := Zip(t, files...)
	s.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/zip")
		w.Write(data)
	})
}

// Requests returns a copy of the recorded requests.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Count returns the number of recorded requests for method and path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// Last returns the last recorded request for method and path.
func (s *Server) Last(method, path string) (Request, bool) {
	reqs := s.Requests()
	for i := len(reqs) - 1; i >= 0; i-- {
		if reqs[i].Method == method && reqs[i].Path == path {
			return reqs[i], true
		}
	}
	return Request{}, false
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	rec := Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Form:   r.PostForm,
	}
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value == sessionValue {
		rec.LoggedIn = true
	}
	s.mu.Lock()
	s.requests = append(s.requests, rec)
	h, ok := s.routes[r.URL.Path]
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if r.Method == http.MethodGet {
		field := ""
		if s.Challenge != "" {
			field = fmt.Sprintf(`<input type="hidden" name="LgnChallengeHex" value="%s"/>`, s.Challenge)
		}
		fmt.Fprintf(w, `<html><body><form method="post" action="/bossa/login">
<input type="text" name="LgnUsrNIK" value=""/>
<input type="password" name="LgnUsrPIN"/>
%s
</form></body></html>`, field)
		return
	}

	raw, err := challenge.Decode(r.PostForm.Get("LgnChallengeHex"))
	if err != nil || r.PostForm.Get("LgnUsrNIK") != s.NIK ||
		r.PostForm.Get("LgnUsrHMACPIN") != challenge.Proof(raw, s.PIN, s.NIK) {
		// like the real portal: a 200 page with an error message.
		io.WriteString(w, "<html><body>Niepoprawny login lub PIN</body></html>")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: sessionValue, Path: "/"})
	io.WriteString(w, "<html><body>ok</body></html>")
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
	io.WriteString(w, "<html><body>bye</body></html>")
}

func (s *Server) page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "<html><body>%s</body></html>", name)
	}
}

// File is an entry of a zip archive.
type File struct {
	Name string
	Body string
}

// Zip builds a zip archive in memory.
func Zip(t testing.TB, files ...File) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			t.Fatalf("cannot create zip entry %q: %v", f.Name, err)
		}
		if _, err := io.WriteString(w, f.Body); err != nil {
			t.Fatalf("cannot write zip entry %q: %v", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("cannot close zip: %v", err)
	}
	return buf.Bytes()
}
