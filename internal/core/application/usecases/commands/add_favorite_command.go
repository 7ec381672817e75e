package commands

import (
	"errors"

	"foodsewa/internal/core/domain/model/favorite"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/guard"
)

var ErrAddFavoriteCommandIsNotConstructed = errors.New(
	"AddFavoriteCommand must be created via NewAddFavoriteCommand constructor",
)

// AddFavoriteCommand represents a request to favorite a restaurant or one of
// its dishes. menuItemID is required for dish favorites and must be absent
// for restaurant favorites; the favorite aggregate enforces this.
type AddFavoriteCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	restaurantID kernel.UUID
	kind         favorite.Kind
	menuItemID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddFavoriteCommand creates a command to add a favorite.
func NewAddFavoriteCommand(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	kind favorite.Kind,
	menuItemID *kernel.UUID,
) (AddFavoriteCommand, error) {
	cmd := AddFavoriteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setKind(kind),
		cmd.setMenuItemID(menuItemID),
	); err != nil {
		return AddFavoriteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddFavoriteCommand) Validate() error {
	return c.guard.Validate(ErrAddFavoriteCommandIsNotConstructed)
}

// CustomerID returns the favoriting customer's identifier.
func (c AddFavoriteCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the target restaurant's identifier.
func (c AddFavoriteCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Kind returns whether a restaurant or a dish is being favorited.
func (c AddFavoriteCommand) Kind() favorite.Kind {
	return c.kind
}

// MenuItemID returns the dish identifier for dish favorites, nil otherwise.
func (c AddFavoriteCommand) MenuItemID() *kernel.UUID {
	if c.menuItemID == nil {
		return nil
	}
	mid := *c.menuItemID
	return &mid
}

func (c *AddFavoriteCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddFavoriteCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddFavoriteCommand) setKind(kind favorite.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *AddFavoriteCommand) setMenuItemID(menuItemID *kernel.UUID) error {
	if menuItemID != nil {
		if err := menuItemID.Validate(); err != nil {
			return err
		}
		mid := *menuItemID
		c.menuItemID = &mid
	}
	return nil
}
