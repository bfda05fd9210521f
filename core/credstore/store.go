package credstore

import "context"

// Store defines durable string key-value persistence for session credentials.
// Implementations must survive process restarts (files, platform keychains);
// the Memory implementation exists for tests and ephemeral sessions.
type Store interface {
	// Get returns the stored value for key, or ErrNotFound if absent.
	Get(ctx context.Context, key string) (string, error)

	// Set persists value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// RemoveAll deletes the given keys. Missing keys are not an error.
	RemoveAll(ctx context.Context, keys ...string) error
}
