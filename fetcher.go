package vocab

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET of the URL and returns the response
	// body. The context controls timeout and cancellation. Returns
	// EUNAVAILABLE for network failures and non-2xx responses.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
