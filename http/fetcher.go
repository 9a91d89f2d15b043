// Package http provides an HTTP-based implementation of wikiexport.Fetcher
// for downloading wiki pages with a plain GET request.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/wikiexport"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// MinFetchTimeout is the smallest timeout a caller may configure.
const MinFetchTimeout = time.Second

// DefaultUserAgent is sent with every request unless overridden. Wiki
// pages are served to browsers, so the default identifies as one.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements wikiexport.Fetcher at compile time.
var _ wikiexport.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page bytes from URLs using plain HTTP GET requests.
// It does not execute JavaScript; the payloads the extractor needs are
// part of the initial server response.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	headers   map[string]string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithHeaders sets additional request headers. A User-Agent entry here
// takes precedence over WithUserAgent.
func WithHeaders(headers map[string]string) Option {
	return func(f *Fetcher) {
		f.headers = headers
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the raw response body from the given URL. Timeouts
// return ETIMEOUT, transport failures EUNAVAILABLE, HTTP 404 ENOTFOUND,
// and any other non-success status EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, wikiexport.Errorf(wikiexport.EINVALID, "invalid request for %s: %s", url, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, wikiexport.Errorf(wikiexport.ETIMEOUT, "request to %s timed out after %s", url, f.timeout)
		}
		return nil, wikiexport.Errorf(wikiexport.EUNAVAILABLE, "request to %s failed: %s", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusNotFound {
			return nil, wikiexport.Errorf(wikiexport.ENOTFOUND, "HTTP 404 for %s", url)
		}
		return nil, wikiexport.Errorf(wikiexport.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, wikiexport.Errorf(wikiexport.ETIMEOUT, "request to %s timed out after %s", url, f.timeout)
		}
		return nil, wikiexport.Errorf(wikiexport.EUNAVAILABLE, "reading response from %s: %s", url, err)
	}

	return body, nil
}

// isTimeout reports whether err is a deadline or timeout error.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
