package session

import (
	"log"
	"net/http"
)

// loggingTransport logs every round trip, without query nor body since they
// may carry credentials.
type loggingTransport struct {
	base http.RoundTripper
}

// RoundTrip implements the http.RoundTripper interface.
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		log.Printf("%v %v%v failed: %v", req.Method, req.URL.Host, req.URL.Path, err)
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	return resp, nil
}
