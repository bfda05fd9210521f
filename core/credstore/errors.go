package credstore

import "errors"

var (
	// ErrNotFound is returned when a key has no stored value.
	ErrNotFound = errors.New("credential not found")
	// ErrStoreClosed is returned when operating on a closed store.
	ErrStoreClosed = errors.New("credential store is closed")
)
