package commands

import (
	"errors"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/guard"
)

var ErrRemoveCouponCommandIsNotConstructed = errors.New(
	"RemoveCouponCommand must be created via NewRemoveCouponCommand constructor",
)

// RemoveCouponCommand represents a request to clear the coupon from the
// customer's cart.
type RemoveCouponCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCouponCommand creates a command to remove the applied coupon.
func NewRemoveCouponCommand(customerID kernel.UUID) (RemoveCouponCommand, error) {
	cmd := RemoveCouponCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return RemoveCouponCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCouponCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCouponCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c RemoveCouponCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *RemoveCouponCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
