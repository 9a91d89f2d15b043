package wikiexport

import "context"

// Fetcher retrieves raw page bytes from URLs.
type Fetcher interface {
	// Fetch downloads the resource at url and returns the response body
	// undecoded. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
