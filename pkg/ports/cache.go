package ports

import "context"

// ResultCache memoizes operation results.
// Operations are pure, so a cached value is always a valid answer for its key.
type ResultCache interface {
	// Get returns the value stored under key.
	// found is false (with a nil error) when the key is absent or expired.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error
}
