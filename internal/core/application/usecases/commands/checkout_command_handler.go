package commands

import (
	"context"
	"errors"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/core/domain/model/order"
	"foodsewa/internal/core/domain/services"
)

var (
	// ErrCartIsEmpty is returned when checking out an empty or absent cart.
	ErrCartIsEmpty = errors.New("cart is empty")

	// ErrCartItemsUnavailable is returned when availability revalidation finds
	// items that can no longer be ordered as priced.
	ErrCartItemsUnavailable = errors.New("cart contains unavailable items")

	// ErrMinimumOrderNotMet is returned when the cart subtotal is below the
	// restaurant's minimum order amount.
	ErrMinimumOrderNotMet = errors.New("cart does not meet the restaurant minimum order amount")
)

// CheckoutCommandHandler turns a cart into a pending order. Availability
// revalidation, order creation, and cart clearing run inside one transaction
// so a failure at any point leaves both aggregates untouched.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	checker    services.AvailabilityChecker
}

// NewCheckoutCommandHandler creates a handler for cart checkout.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		checker:    services.NewAvailabilityChecker(),
	}
}

// Handle processes the checkout and returns the new order's identifier.
// The cart must be non-empty, every item must still be orderable at its
// snapshot price, and the subtotal must meet the restaurant minimum.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if customerCart.IsEmpty() {
		return kernel.UUID{}, ErrCartIsEmpty
	}

	restaurantRepo := uow.RestaurantRepository()
	r, err := restaurantRepo.Get(ctx, *customerCart.RestaurantID())
	if err != nil {
		return kernel.UUID{}, err
	}

	report, err := h.checker.Check(customerCart, r)
	if err != nil {
		return kernel.UUID{}, err
	}
	if !report.IsValid {
		return kernel.UUID{}, ErrCartItemsUnavailable
	}

	if !customerCart.MeetsMinimumOrder() {
		return kernel.UUID{}, ErrMinimumOrderNotMet
	}

	summary := customerCart.Summary()
	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		customerCart.CustomerID(),
		r.ID(),
		customerCart.Items(),
		customerCart.CouponCode(),
		order.Pricing{
			Subtotal:    summary.Subtotal,
			Discount:    summary.Discount,
			DeliveryFee: summary.DeliveryFee,
			Total:       summary.Total,
		},
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	customerCart.Clear()
	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return newOrder.ID(), nil
}
