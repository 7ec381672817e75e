package commands

import (
	"errors"

	"foodsewa/internal/core/domain/model/favorite"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/guard"
)

var ErrRemoveFavoriteCommandIsNotConstructed = errors.New(
	"RemoveFavoriteCommand must be created via NewRemoveFavoriteCommand constructor",
)

// RemoveFavoriteCommand represents a request to soft-delete a favorite,
// addressed by its uniqueness key.
type RemoveFavoriteCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	restaurantID kernel.UUID
	kind         favorite.Kind
	menuItemID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveFavoriteCommand creates a command to remove a favorite.
func NewRemoveFavoriteCommand(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	kind favorite.Kind,
	menuItemID *kernel.UUID,
) (RemoveFavoriteCommand, error) {
	cmd := RemoveFavoriteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setKind(kind),
		cmd.setMenuItemID(menuItemID),
	); err != nil {
		return RemoveFavoriteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFavoriteCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFavoriteCommandIsNotConstructed)
}

// CustomerID returns the favoriting customer's identifier.
func (c RemoveFavoriteCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the target restaurant's identifier.
func (c RemoveFavoriteCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Kind returns the kind of favorite being removed.
func (c RemoveFavoriteCommand) Kind() favorite.Kind {
	return c.kind
}

// MenuItemID returns the dish identifier for dish favorites, nil otherwise.
func (c RemoveFavoriteCommand) MenuItemID() *kernel.UUID {
	if c.menuItemID == nil {
		return nil
	}
	mid := *c.menuItemID
	return &mid
}

func (c *RemoveFavoriteCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveFavoriteCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *RemoveFavoriteCommand) setKind(kind favorite.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *RemoveFavoriteCommand) setMenuItemID(menuItemID *kernel.UUID) error {
	if menuItemID != nil {
		if err := menuItemID.Validate(); err != nil {
			return err
		}
		mid := *menuItemID
		c.menuItemID = &mid
	}
	return nil
}
