package commands

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"pizzeria/internal/pkg/errs"
)

const (
	txRetryMaxAttempts  = 3
	txRetryInitialDelay = 10 * time.Millisecond
)

// withTxRetry runs one attempt of a unit of work and retries it when the store
// reports a concurrency conflict (serialization failure or deadlock). Those
// aborts leave no side effects behind, so the whole transaction body can run
// again; every other error is permanent and returned as is.
func withTxRetry[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	operation := func() (T, error) {
		result, err := fn(ctx)
		if err != nil && !errors.Is(err, errs.ErrConcurrencyConflict) {
			return result, backoff.Permanent(err)
		}
		return result, err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = txRetryInitialDelay

	return backoff.RetryWithData(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, txRetryMaxAttempts-1), ctx),
	)
}
