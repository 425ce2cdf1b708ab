package fstree

import "time"

// ErrorClassifier decides whether a failed build is worth repeating.
type ErrorClassifier interface {
	// IsTransient returns true if the error may go away on the next attempt.
	IsTransient(err error) bool
}

// BackoffStrategy calculates the delay before the next attempt.
type BackoffStrategy interface {
	// NextDelay returns the duration to wait before retry number attempt
	// (zero-indexed).
	NextDelay(attempt int) time.Duration

	// MaxAttempts returns the maximum number of retries (0 = none, -1 = unlimited).
	MaxAttempts() int
}
