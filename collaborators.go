package allschemas

import (
	"context"

	"github.com/chentanran/allschemas/i18n"
)

// Dictionary looks up named option lists.
type Dictionary interface {
	Lookup(name string) ([]Option, bool)
}

// DictionaryFunc adapts a function to Dictionary.
type DictionaryFunc func(name string) ([]Option, bool)

func (f DictionaryFunc) Lookup(name string) ([]Option, bool) { return f(name) }

// MapDictionary is a fixed in-memory Dictionary.
type MapDictionary map[string][]Option

func (m MapDictionary) Lookup(name string) ([]Option, bool) {
	opts, ok := m[name]
	return opts, ok
}

type noDictionary struct{}

func (noDictionary) Lookup(string) ([]Option, bool) { return nil, false }

// Translator is the translation collaborator; see package i18n.
type Translator = i18n.Translator

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(key string) string

func (f TranslatorFunc) Translate(key string) string { return f(key) }

// FetchResult is what a data source returns. Data keeps the source order.
type FetchResult struct {
	Data []Option `json:"data"`
}

// Fetcher is an asynchronous option source attached to a search view.
// Returning an error, a nil result or a result with nil Data means "no
// update".
type Fetcher interface {
	Fetch(ctx context.Context) (*FetchResult, error)
}

// FetchFunc adapts a function to Fetcher.
type FetchFunc func(ctx context.Context) (*FetchResult, error)

func (f FetchFunc) Fetch(ctx context.Context) (*FetchResult, error) { return f(ctx) }

// APIResolver turns the `api` reference of a schema document into a Fetcher.
type APIResolver interface {
	Resolve(ref string) (Fetcher, error)
}

// ResolverFunc adapts a function to APIResolver.
type ResolverFunc func(ref string) (Fetcher, error)

func (f ResolverFunc) Resolve(ref string) (Fetcher, error) { return f(ref) }
