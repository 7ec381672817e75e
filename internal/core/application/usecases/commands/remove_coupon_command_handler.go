package commands

import (
	"context"
)

// RemoveCouponCommandHandler handles clearing the coupon from a cart.
type RemoveCouponCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCouponCommandHandler creates a handler for coupon removal.
func NewRemoveCouponCommandHandler(uowFactory CartUoWFactory) RemoveCouponCommandHandler {
	return RemoveCouponCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the coupon removal. Removing a coupon from a cart that has
// none is a no-op, not an error.
func (h RemoveCouponCommandHandler) Handle(ctx context.Context, cmd RemoveCouponCommand) error {
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

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	customerCart.RemoveCoupon()

	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
