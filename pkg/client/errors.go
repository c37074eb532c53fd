package client

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrMissingAuthToken is returned when no bearer token is configured.
	// The token is a precondition: without it no request is ever sent.
	ErrMissingAuthToken = errors.New("authorization token missing")

	// ErrRetryExhausted is returned when a bounded retry budget runs out.
	// The default configuration retries without bound and never returns it.
	ErrRetryExhausted = errors.New("retry attempts exhausted")

	// ErrContextCancelled is returned when the context is cancelled between
	// retry attempts.
	ErrContextCancelled = errors.New("context cancelled")
)

// PlaceError represents a failed exchange with the Place API.
type PlaceError struct {
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *PlaceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("place error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("place error (status %d): %s", e.StatusCode, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *PlaceError) Unwrap() error {
	return e.Err
}
