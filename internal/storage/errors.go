package storage

import "errors"

var (
	// ErrTimeout is returned when the adapter did not answer in time
	ErrTimeout = errors.New("storage: timeout")
	// ErrCorrupt is returned when a stored value cannot be decoded
	ErrCorrupt = errors.New("storage: corrupt value")
)
