package favorite

import (
	"fmt"

	"foodsewa/internal/pkg/errs"
)

// State is the lifecycle state of a favorite record. Removal is a soft
// delete: the record flips to Inactive and stays in storage, and marking the
// same key as favorite again reactivates it instead of inserting a new row.
//
// State transitions:
//
//	Active <──> Inactive
//
// Both transitions are explicit; there is no other state.
type State int

const (
	// StateUnknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	StateUnknown State = iota

	// StateActive is a live favorite, visible in listings.
	StateActive

	// StateInactive is a soft-deleted favorite, kept for reactivation
	// and history.
	StateInactive
)

func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown:  "unknown",
		StateActive:   "active",
		StateInactive: "inactive",
	}
}

func getValidStateStrings() map[State]string {
	//nolint:exhaustive // StateUnknown is intentionally excluded as it's invalid
	return map[State]string{
		StateActive:   "active",
		StateInactive: "inactive",
	}
}

// StateFromString parses a state name as stored in persistence.
func StateFromString(s string) (State, error) {
	for state, str := range getValidStateStrings() {
		if str == s {
			return state, nil
		}
	}
	return StateUnknown, errs.NewValueIsInvalidErrorWithCause("favorite state",
		fmt.Errorf("%q is not a valid favorite state", s))
}

// Validate checks that the state is one of the valid values.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("favorite state",
			fmt.Errorf("%d is not a valid favorite state", s))
	}
	return nil
}

// String returns the human-readable name of the state.
// Implements fmt.Stringer and is safe on any value.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Deactivate transitions Active to Inactive.
// Deactivating an already inactive favorite is an error.
func (s State) Deactivate() (State, error) {
	if s != StateActive {
		return 0, errs.NewValueIsInvalidErrorWithCause("favorite state",
			fmt.Errorf("%s is not a valid state to deactivate", s.String()))
	}
	return StateInactive, nil
}

// Reactivate transitions Inactive back to Active.
// Reactivating an already active favorite is an error; callers treat an
// active record with the same key as "already in favorites".
func (s State) Reactivate() (State, error) {
	if s != StateInactive {
		return 0, errs.NewValueIsInvalidErrorWithCause("favorite state",
			fmt.Errorf("%s is not a valid state to reactivate", s.String()))
	}
	return StateActive, nil
}
