package commands

import (
	"errors"

	"foodsewa/internal/core/domain/model/cart"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"
	"foodsewa/internal/pkg/guard"
)

var (
	ErrUpdateCartItemQuantityCommandIsNotConstructed = errors.New(
		"UpdateCartItemQuantityCommand must be created via NewUpdateCartItemQuantityCommand constructor",
	)
	ErrItemIndexIsInvalid = errs.NewValueIsInvalidError("item index")
)

// UpdateCartItemQuantityCommand represents a request to change the quantity
// of a line item already in the customer's cart, addressed by position.
type UpdateCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	itemIndex  int
	quantity   int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemQuantityCommand creates a command to change an item quantity.
// Quantity zero is rejected here; removal is a separate command.
func NewUpdateCartItemQuantityCommand(
	customerID kernel.UUID,
	itemIndex int,
	quantity int,
) (UpdateCartItemQuantityCommand, error) {
	cmd := UpdateCartItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItemIndex(itemIndex),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateCartItemQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemQuantityCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c UpdateCartItemQuantityCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ItemIndex returns the position of the item in the cart.
func (c UpdateCartItemQuantityCommand) ItemIndex() int {
	return c.itemIndex
}

// Quantity returns the new quantity.
func (c UpdateCartItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartItemQuantityCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCartItemQuantityCommand) setItemIndex(itemIndex int) error {
	if itemIndex < 0 {
		return ErrItemIndexIsInvalid
	}

	c.itemIndex = itemIndex
	return nil
}

func (c *UpdateCartItemQuantityCommand) setQuantity(quantity int) error {
	if quantity < cart.MinLineItemQuantity || quantity > cart.MaxLineItemQuantity {
		return errs.NewValueIsOutOfRangeError(
			"quantity", quantity, cart.MinLineItemQuantity, cart.MaxLineItemQuantity)
	}

	c.quantity = quantity
	return nil
}
