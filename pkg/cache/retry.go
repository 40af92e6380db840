package cache

import (
	"context"
	"errors"
	"time"
)

// Backoff schedule for RetryWithBackoff: three attempts with the wait
// doubling after each failure.
const (
	retryAttempts = 3
	retryBaseWait = time.Second
)

// RetryableError marks a failure as transient. Backends wrap
// connectivity errors with Retryable so RetryWithBackoff knows the
// operation is worth repeating; anything unmarked fails fast.
type RetryableError struct{ Err error }

// Error returns the message of the wrapped error.
func (e *RetryableError) Error() string { return e.Err.Error() }

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err carries the transient marker.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn, repeating transient failures on the backoff
// schedule. Non-retryable errors return immediately, and a cancelled
// context aborts the wait between attempts.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	wait := retryBaseWait
	var err error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
				wait *= 2
			}
		}
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
	}
	return err
}
