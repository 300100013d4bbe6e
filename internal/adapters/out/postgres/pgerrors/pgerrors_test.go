package pgerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"pizzeria/internal/adapters/out/postgres/pgerrors"
	"pizzeria/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_SerializationFailure(t *testing.T) {
	cause := &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}

	err := pgerrors.Classify("commit", cause)

	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)

	var conflictErr *errs.ConcurrencyConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, error(cause), conflictErr.Cause)
}

func TestClassify_DeadlockDetected(t *testing.T) {
	cause := &pq.Error{Code: "40P01", Message: "deadlock detected"}

	err := pgerrors.Classify("ingredient lock", cause)

	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)

	var conflictErr *errs.ConcurrencyConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "ingredient lock", conflictErr.Operation)
}

func TestClassify_WrappedDriverError(t *testing.T) {
	cause := fmt.Errorf("exec failed: %w", &pq.Error{Code: "40001"})

	err := pgerrors.Classify("commit", cause)

	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
}

func TestClassify_OtherErrorsPassThrough(t *testing.T) {
	cause := errors.New("connection refused")

	err := pgerrors.Classify("commit", cause)

	assert.Equal(t, cause, err)
	assert.NotErrorIs(t, err, errs.ErrConcurrencyConflict)
}

func TestClassify_OtherSQLStatePassesThrough(t *testing.T) {
	cause := &pq.Error{Code: "23505", Message: "duplicate key value"}

	err := pgerrors.Classify("insert", cause)

	assert.Equal(t, error(cause), err)
}

func TestClassify_NilIsNil(t *testing.T) {
	assert.NoError(t, pgerrors.Classify("commit", nil))
}
