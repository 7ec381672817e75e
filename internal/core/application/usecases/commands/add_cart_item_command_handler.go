package commands

import (
	"context"
	"errors"

	"foodsewa/internal/core/domain/model/cart"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"
)

var (
	// ErrRestaurantNotAcceptingOrders is returned when the target restaurant
	// is closed or not yet verified.
	ErrRestaurantNotAcceptingOrders = errors.New("restaurant is not accepting orders")

	// ErrMenuItemUnavailable is returned when the requested dish is currently
	// flagged unavailable on the menu.
	ErrMenuItemUnavailable = errors.New("menu item is currently unavailable")
)

// AddCartItemCommandHandler handles adding a menu item to a customer's cart.
// Resolves the dish from the live menu, snapshots its detail into a line item
// and creates the cart lazily on first use.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart item addition.
// Requires a CartUoWFactory for transactional persistence.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add item command. The restaurant must be open and
// verified and the dish must be on the menu and available. A cross-restaurant
// add is rejected by the cart aggregate itself.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()
	r, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if !r.CanAcceptOrders() {
		return ErrRestaurantNotAcceptingOrders
	}

	menuItem, err := r.FindMenuItem(cmd.MenuItemID())
	if err != nil {
		return err
	}

	if !menuItem.IsAvailable() {
		return ErrMenuItemUnavailable
	}

	item, err := cart.NewLineItem(
		menuItem.ID(),
		menuItem.Name(),
		menuItem.Price(),
		menuItem.ImageURL(),
		cmd.Quantity(),
		cmd.Customizations(),
		cmd.SpecialInstructions(),
	)
	if err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	isNewCart := errors.Is(err, errs.ErrObjectNotFound)
	if err != nil && !isNewCart {
		return err
	}

	if isNewCart {
		customerCart, err = cart.NewCart(kernel.NewUUID(), cmd.CustomerID())
		if err != nil {
			return err
		}
	}

	if err = customerCart.AddItem(r.ID(), item, r.DeliveryFee(), r.MinimumOrderAmount()); err != nil {
		return err
	}

	if isNewCart {
		err = cartRepo.Add(ctx, customerCart)
	} else {
		err = cartRepo.Update(ctx, customerCart)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
