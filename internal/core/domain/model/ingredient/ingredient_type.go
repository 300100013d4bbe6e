package ingredient

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Type classifies an ingredient for menu composition and reporting.
// It is a value object persisted by its string representation.
type Type int

const (
	// UnknownType represents an invalid or undefined ingredient type.
	// This value (0) helps catch uninitialized Type values.
	UnknownType Type = iota

	// Cheese covers mozzarella, vegan cheese and similar toppings.
	Cheese

	// Sauce covers pizza base sauces.
	Sauce

	// Topping covers everything layered on top of cheese and sauce.
	Topping

	// Dough covers pizza bases.
	Dough
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "unknown",
		Cheese:      "cheese",
		Sauce:       "sauce",
		Topping:     "topping",
		Dough:       "dough",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[Type]string{
		Cheese:  "cheese",
		Sauce:   "sauce",
		Topping: "topping",
		Dough:   "dough",
	}
}

// TypeFromString parses the persisted string representation of a Type.
// Returns an error for anything outside the enumerated set.
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"ingredient type",
		fmt.Errorf("%q is not a valid ingredient type", s),
	)
}

// Validate checks if the Type value is one of the enumerated ingredient types.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"ingredient type",
			fmt.Errorf("%d is not a valid ingredient type", t),
		)
	}
	return nil
}

// String returns the persisted name of the type.
// Implements fmt.Stringer and is safe to call on any Type value.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
