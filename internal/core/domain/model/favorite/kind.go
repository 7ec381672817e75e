package favorite

import (
	"fmt"

	"foodsewa/internal/pkg/errs"
)

// Kind distinguishes what a favorite points at: a whole restaurant or a
// specific dish on its menu. A customer can hold both kinds for the same
// restaurant independently.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindRestaurant marks the whole restaurant as a favorite.
	KindRestaurant

	// KindDish marks one menu item of a restaurant as a favorite.
	KindDish
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:    "unknown",
		KindRestaurant: "restaurant",
		KindDish:       "dish",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		KindRestaurant: "restaurant",
		KindDish:       "dish",
	}
}

// KindFromString parses a kind from its wire representation
// ("restaurant" or "dish"). Anything else is invalid.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("favorite kind",
		fmt.Errorf("%q is not a valid favorite kind", s))
}

// Validate checks that the kind is one of the valid values.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("favorite kind",
			fmt.Errorf("%d is not a valid favorite kind", k))
	}
	return nil
}

// String returns the wire representation of the kind.
// Implements fmt.Stringer and is safe on any value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
