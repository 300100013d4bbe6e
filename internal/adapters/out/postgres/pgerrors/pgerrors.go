// Package pgerrors classifies PostgreSQL driver errors into the domain error
// taxonomy. Serialization failures and deadlocks are the two SQLSTATE classes
// that abort a transaction without leaving side effects, so callers map them to
// errs.ErrConcurrencyConflict and retry the whole unit of work.
package pgerrors

import (
	"errors"

	"github.com/lib/pq"

	"pizzeria/internal/pkg/errs"
)

const (
	serializationFailure = pq.ErrorCode("40001")
	deadlockDetected     = pq.ErrorCode("40P01")
)

// Classify maps retryable PostgreSQL errors to errs.ConcurrencyConflictError,
// tagging them with the failing operation. Every other error passes through
// unchanged, including nil.
func Classify(operation string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case serializationFailure, deadlockDetected:
			return errs.NewConcurrencyConflictError(operation, err)
		}
	}

	return err
}
