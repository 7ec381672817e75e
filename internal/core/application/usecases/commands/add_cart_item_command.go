package commands

import (
	"errors"

	"foodsewa/internal/core/domain/model/cart"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"
	"foodsewa/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
)

// AddCartItemCommand represents a request to add a menu item to the
// customer's cart. The dish detail is resolved from the live menu by the
// handler; the command only carries identifiers and the requested options.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID          kernel.UUID
	restaurantID        kernel.UUID
	menuItemID          kernel.UUID
	quantity            int
	customizations      []string
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add an item to a cart.
// Validates identifiers and that the quantity is within per-item bounds.
func NewAddCartItemCommand(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	customizations []string,
	specialInstructions string,
) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		customizations:      customizations,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setMenuItemID(menuItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c AddCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant the item belongs to.
func (c AddCartItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// MenuItemID returns the menu item to add.
func (c AddCartItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the requested quantity.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

// Customizations returns the selected dish customizations.
func (c AddCartItemCommand) Customizations() []string {
	return c.customizations
}

// SpecialInstructions returns free-form preparation notes.
func (c AddCartItemCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *AddCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddCartItemCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddCartItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity < cart.MinLineItemQuantity || quantity > cart.MaxLineItemQuantity {
		return errs.NewValueIsOutOfRangeError(
			"quantity", quantity, cart.MinLineItemQuantity, cart.MaxLineItemQuantity)
	}

	c.quantity = quantity
	return nil
}
