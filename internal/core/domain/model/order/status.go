package order

import (
	"errors"
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// ErrAlreadyCancelled is returned when cancelling an order that is already
// cancelled. Cancellation is terminal, so the compensating stock and courier
// updates must run at most once.
var ErrAlreadyCancelled = errors.New("order is already cancelled")

// Status represents the lifecycle state of an order.
// The order engine implements a deliberately small state machine:
//
//	Pending ──> Cancelled
//
// Pending is the initial state set when an order is placed; Cancelled is the
// only reachable terminal state. Completed is reserved for the delivery flow
// and is never produced by this engine.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status of a successfully placed order.
	Pending

	// Cancelled is the terminal status after CancelOrder. The compensating
	// stock and courier updates are committed together with this transition.
	Cancelled

	// Completed is reserved for delivered orders. The engine accepts it when
	// restoring persisted orders but never transitions into it.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Pending:       "pending",
		Cancelled:     "cancelled",
		Completed:     "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Cancelled: "cancelled",
		Completed: "completed",
	}
}

// StatusFromString parses the persisted string representation of a Status.
// Returns an error for anything outside the enumerated set.
func StatusFromString(s string) (Status, error) {
	for st, str := range getValidStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Invalid transitions:
//   - Cancelled -> Cancelled (returns ErrAlreadyCancelled)
//   - Completed -> Cancelled
//   - UnknownStatus -> Cancelled
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Pending:
		return Cancelled, nil
	case Cancelled:
		return 0, ErrAlreadyCancelled
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
}
