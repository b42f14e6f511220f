package allschemas

import "errors"

var (
	// ErrInvalidSchema reports a schema document whose structure cannot be
	// decoded into nodes (wrong value types for known keys).
	ErrInvalidSchema = errors.New("allschemas: invalid schema")

	// ErrUnresolvedAPI reports an `api` reference in a schema document that no
	// APIResolver could turn into a Fetcher.
	ErrUnresolvedAPI = errors.New("allschemas: unresolved api reference")

	// ErrNoData is what data sources return when a fetch produced no payload.
	// The engine treats it like any other fetch error: no update.
	ErrNoData = errors.New("allschemas: no data")
)
