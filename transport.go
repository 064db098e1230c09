package cachecontrol

import "net/http"

// Transport is an http.RoundTripper that sets Cache-Control headers on
// responses returned by an inner transport. Errors from the inner
// transport pass through untouched and never trigger decoration.
type Transport struct {
	Inner  http.RoundTripper
	Config Config
}

// NewTransport wraps inner with the Config's decoration. A nil inner
// defaults to http.DefaultTransport.
func NewTransport(inner http.RoundTripper, cfg Config) *Transport {
	if inner == nil {
		inner = http.DefaultTransport
	}
	return &Transport{Inner: inner, Config: cfg}
}

// RoundTrip implements the http.RoundTripper interface.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.Inner.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	t.Config.decorate(resp.Header)

	return resp, nil
}

// NewClient returns an http.Client whose responses are decorated per cfg.
func NewClient(cfg Config) *http.Client {
	return &http.Client{
		Transport: NewTransport(nil, cfg),
	}
}
