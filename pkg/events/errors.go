package events

import "errors"

// Common errors returned by the client.
var (
	// ErrRetryExhausted is returned when all retry attempts are exhausted.
	// The underlying transport error is wrapped alongside it.
	ErrRetryExhausted = errors.New("retry attempts exhausted")

	// ErrContextCancelled is returned when the context is cancelled during
	// a retry backoff sleep.
	ErrContextCancelled = errors.New("context cancelled")
)
