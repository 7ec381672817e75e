package commands

import (
	"errors"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"
	"foodsewa/internal/pkg/guard"
)

var (
	ErrApplyCouponCommandIsNotConstructed = errors.New(
		"ApplyCouponCommand must be created via NewApplyCouponCommand constructor",
	)
	ErrCouponCodeIsRequired = errs.NewValueIsRequiredError("couponCode")
)

// ApplyCouponCommand represents a request to apply a coupon code to the
// customer's cart. Business validation of the code is the handler's
// CouponValidator collaborator, not the command.
type ApplyCouponCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	couponCode string

	guard guard.ConstructorGuard
}

// NewApplyCouponCommand creates a command to apply a coupon.
func NewApplyCouponCommand(customerID kernel.UUID, couponCode string) (ApplyCouponCommand, error) {
	cmd := ApplyCouponCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setCouponCode(couponCode),
	); err != nil {
		return ApplyCouponCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyCouponCommand) Validate() error {
	return c.guard.Validate(ErrApplyCouponCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c ApplyCouponCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CouponCode returns the coupon code to apply.
func (c ApplyCouponCommand) CouponCode() string {
	return c.couponCode
}

func (c *ApplyCouponCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *ApplyCouponCommand) setCouponCode(couponCode string) error {
	if couponCode == "" {
		return ErrCouponCodeIsRequired
	}

	c.couponCode = couponCode
	return nil
}
