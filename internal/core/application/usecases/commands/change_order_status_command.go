package commands

import (
	"errors"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"
	"foodsewa/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// StatusAction names a single order lifecycle step.
type StatusAction string

// Actions accepted by ChangeOrderStatusCommand. Each maps to one transition
// on the order aggregate; the aggregate decides whether it is legal from the
// current status.
const (
	ActionConfirm StatusAction = "confirm"
	ActionPrepare StatusAction = "prepare"
	ActionReady   StatusAction = "ready"
	ActionDeliver StatusAction = "deliver"
	ActionCancel  StatusAction = "cancel"
)

// ChangeOrderStatusCommand represents a request to advance or cancel an order.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	action  StatusAction

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
func NewChangeOrderStatusCommand(orderID kernel.UUID, action StatusAction) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAction(action),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order identifier.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Action returns the requested lifecycle step.
func (c ChangeOrderStatusCommand) Action() StatusAction {
	return c.action
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setAction(action StatusAction) error {
	switch action {
	case ActionConfirm, ActionPrepare, ActionReady, ActionDeliver, ActionCancel:
		c.action = action
		return nil
	default:
		return errs.NewValueIsInvalidError("action")
	}
}
