// Package source provides data sources for search option lists: fixed
// lists, functions, HTTP JSON endpoints, and a registry that resolves the
// `api` references of schema documents.
package source

import (
	"context"
	"errors"

	"github.com/chentanran/allschemas"
)

var (
	// ErrStatus reports a non-2xx response from an HTTP source.
	ErrStatus = errors.New("source: unexpected status")
	// ErrUnknown reports a reference that is neither registered nor a URL.
	ErrUnknown = errors.New("source: unknown reference")
)

// Static returns a Fetcher that always answers with options.
func Static(options []allschemas.Option) allschemas.Fetcher {
	return allschemas.FetchFunc(func(context.Context) (*allschemas.FetchResult, error) {
		return &allschemas.FetchResult{Data: options}, nil
	})
}

// Func wraps a function returning options.
func Func(fn func(ctx context.Context) ([]allschemas.Option, error)) allschemas.Fetcher {
	return allschemas.FetchFunc(func(ctx context.Context) (*allschemas.FetchResult, error) {
		opts, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return &allschemas.FetchResult{Data: opts}, nil
	})
}

// Fail returns a Fetcher that always fails with err.
func Fail(err error) allschemas.Fetcher {
	return allschemas.FetchFunc(func(context.Context) (*allschemas.FetchResult, error) {
		return nil, err
	})
}
