package order

import (
	"fmt"

	"foodsewa/internal/pkg/errs"
)

// Status represents the lifecycle state of a placed order.
// It implements a forward-only state machine; once an order moves past a
// state it can never return to it.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Delivered
//	   │             │
//	   └──────┬──────┘
//	          v
//	      Cancelled
//
// Cancellation is only permitted in the early states (Pending, Confirmed);
// once the kitchen starts preparing, the order runs to completion.
// Delivered and Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status after checkout, awaiting
	// restaurant confirmation.
	StatusPending

	// StatusConfirmed indicates the restaurant accepted the order.
	StatusConfirmed

	// StatusPreparing indicates the kitchen is working on the order.
	StatusPreparing

	// StatusReady indicates the order awaits pickup or delivery dispatch.
	StatusReady

	// StatusDelivered indicates the order reached the customer.
	// This is a terminal state.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before preparation
	// started. This is a terminal state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusConfirmed: "confirmed",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusConfirmed: "confirmed",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// Validate checks that the status is one of the valid values.
// StatusUnknown (0) and anything outside the enum are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// StatusFromString parses a status from its wire representation
// ("pending", "confirmed", ...). Anything else is invalid.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("order status",
		fmt.Errorf("%q is not a valid order status", s))
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanCancel reports whether cancellation is still permitted from this status.
func (s Status) CanCancel() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Confirm transitions Pending to Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != StatusPending {
		return 0, s.transitionError("confirm")
	}
	return StatusConfirmed, nil
}

// StartPreparing transitions Confirmed to Preparing.
func (s Status) StartPreparing() (Status, error) {
	if s != StatusConfirmed {
		return 0, s.transitionError("start preparing")
	}
	return StatusPreparing, nil
}

// MarkReady transitions Preparing to Ready.
func (s Status) MarkReady() (Status, error) {
	if s != StatusPreparing {
		return 0, s.transitionError("mark ready")
	}
	return StatusReady, nil
}

// MarkDelivered transitions Ready to Delivered.
func (s Status) MarkDelivered() (Status, error) {
	if s != StatusReady {
		return 0, s.transitionError("mark delivered")
	}
	return StatusDelivered, nil
}

// Cancel transitions Pending or Confirmed to Cancelled.
// Orders already in preparation or beyond cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if !s.CanCancel() {
		return 0, s.transitionError("cancel")
	}
	return StatusCancelled, nil
}

func (s Status) transitionError(action string) error {
	return errs.NewValueIsInvalidErrorWithCause("order status",
		fmt.Errorf("%s is not a valid status to %s", s.String(), action))
}
