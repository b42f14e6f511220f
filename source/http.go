package source

import (
	"context"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/chentanran/allschemas"
)

// HTTPFetcher GETs a JSON document of the form {"data": [...]}.
type HTTPFetcher struct {
	url    string
	client *http.Client
	header http.Header
}

// HTTPOption configures an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithClient sets the HTTP client (default http.DefaultClient).
func WithClient(c *http.Client) HTTPOption {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithHeader adds a request header, e.g. an authorization token.
func WithHeader(key, value string) HTTPOption {
	return func(f *HTTPFetcher) { f.header.Add(key, value) }
}

// HTTP returns a Fetcher reading options from url.
func HTTP(url string, opts ...HTTPOption) *HTTPFetcher {
	f := &HTTPFetcher{url: url, client: http.DefaultClient, header: http.Header{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// URL returns the endpoint.
func (f *HTTPFetcher) URL() string { return f.url }

// Fetch implements allschemas.Fetcher. A body without a "data" list yields
// allschemas.ErrNoData.
func (f *HTTPFetcher) Fetch(ctx context.Context) (*allschemas.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range f.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: %d", ErrStatus, f.url, resp.StatusCode)
	}
	var res allschemas.FetchResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("source: decode %s: %w", f.url, err)
	}
	if res.Data == nil {
		return nil, fmt.Errorf("%w: GET %s", allschemas.ErrNoData, f.url)
	}
	return &res, nil
}
