package commands

import (
	"errors"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/guard"
)

var ErrRemoveAllFavoritesCommandIsNotConstructed = errors.New(
	"RemoveAllFavoritesCommand must be created via NewRemoveAllFavoritesCommand constructor",
)

// RemoveAllFavoritesCommand represents a request to soft-delete every active
// favorite of a customer.
type RemoveAllFavoritesCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveAllFavoritesCommand creates a command to clear a customer's favorites.
func NewRemoveAllFavoritesCommand(customerID kernel.UUID) (RemoveAllFavoritesCommand, error) {
	cmd := RemoveAllFavoritesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return RemoveAllFavoritesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveAllFavoritesCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAllFavoritesCommandIsNotConstructed)
}

// CustomerID returns the customer's identifier.
func (c RemoveAllFavoritesCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *RemoveAllFavoritesCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
