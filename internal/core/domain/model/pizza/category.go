package pizza

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Category groups menu pizzas for pricing and sales reporting.
// It is a value object persisted by its string representation.
type Category int

const (
	// UnknownCategory represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	UnknownCategory Category = iota

	// Traditional covers the classic menu pizzas.
	Traditional

	// Specialty covers house specials.
	Specialty

	// Vegan covers pizzas without animal products.
	Vegan
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory: "unknown",
		Traditional:     "traditional",
		Specialty:       "specialty",
		Vegan:           "vegan",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // UnknownCategory is intentionally excluded as it's invalid
	return map[Category]string{
		Traditional: "traditional",
		Specialty:   "specialty",
		Vegan:       "vegan",
	}
}

// CategoryFromString parses the persisted string representation of a Category.
// Returns an error for anything outside the enumerated set.
func CategoryFromString(s string) (Category, error) {
	for c, str := range getValidCategoryStrings() {
		if str == s {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q is not a valid pizza category", s),
	)
}

// Validate checks if the Category value is one of the enumerated categories.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("%d is not a valid pizza category", c),
		)
	}
	return nil
}

// String returns the persisted name of the category.
// Implements fmt.Stringer and is safe to call on any Category value.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}
