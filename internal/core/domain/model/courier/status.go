package courier

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents a courier's availability for order assignment.
// It implements a two-state machine:
//
//	Available <──> Busy
//
// Acquire moves an available courier to Busy; Release returns it to Available.
// A courier is Busy exactly while one pending order references it.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Available means the courier can be handed out to the next order.
	Available

	// Busy means the courier is held by exactly one pending order.
	Busy
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Available:     "available",
		Busy:          "busy",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "available",
		Busy:      "busy",
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
		fmt.Errorf("%q is not a valid courier status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid courier status", s),
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

// Acquire transitions the status to Busy.
//
// Valid transitions:
//   - Available -> Busy
//
// Returns (0, error) when the courier is already Busy or the status is invalid.
func (s Status) Acquire() (Status, error) {
	if s != Available {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to acquire", s.String()),
		)
	}
	return Busy, nil
}

// Release transitions the status to Available.
//
// Valid transitions:
//   - Busy -> Available
//   - Available -> Available (releasing an already free courier is a no-op)
//
// Returns (0, error) only for invalid status values.
func (s Status) Release() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Available, nil
}
