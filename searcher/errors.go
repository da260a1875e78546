package searcher

import "errors"

var (
	// ErrNotConfigured means no embedding provider was wired in, usually
	// because the API key is unset. Callers should render the feature as
	// unavailable rather than failed.
	ErrNotConfigured = errors.New("semantic search is not configured")

	// ErrEmptyQuery is a caller error, never retried.
	ErrEmptyQuery = errors.New("query is required")

	// ErrUnavailable wraps embedding provider failures.
	ErrUnavailable = errors.New("semantic search is unavailable")
)
