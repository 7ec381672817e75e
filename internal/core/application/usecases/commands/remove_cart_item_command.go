package commands

import (
	"errors"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to remove a line item from the
// customer's cart, addressed by position.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	itemIndex  int

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart item.
func NewRemoveCartItemCommand(customerID kernel.UUID, itemIndex int) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItemIndex(itemIndex),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c RemoveCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ItemIndex returns the position of the item in the cart.
func (c RemoveCartItemCommand) ItemIndex() int {
	return c.itemIndex
}

func (c *RemoveCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveCartItemCommand) setItemIndex(itemIndex int) error {
	if itemIndex < 0 {
		return ErrItemIndexIsInvalid
	}

	c.itemIndex = itemIndex
	return nil
}
