package pg

import (
	"context"
	"database/sql"
	"time"
)

const maxAttempts = 3

// attemptDelay is swapped out in tests.
var attemptDelay = getAttemptDelay

// getAttemptDelay returns 1s, 3s, 5s, 5s...
func getAttemptDelay(attempt int) time.Duration {
	delay := time.Duration(1+2*attempt) * time.Second
	if delay > 5*time.Second {
		return 5 * time.Second
	}
	return delay
}

// executeWithRetryConnection runs fn again after connection-class failures.
func (r *Repository) executeWithRetryConnection(ctx context.Context, fn func(db *sql.DB) error) error {
	var err error

	for attempt := 0; attempt <= maxAttempts; attempt++ {
		err = fn(r.db)
		if err == nil || r.classifier.Classify(err) != Retriable || attempt == maxAttempts {
			return err
		}

		delay := attemptDelay(attempt)
		r.lg.Warnf("database attempt %d failed, retry in %s: %v", attempt+1, delay, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return err
}
