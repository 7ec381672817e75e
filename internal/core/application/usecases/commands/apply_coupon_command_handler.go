package commands

import (
	"context"

	"foodsewa/internal/core/domain/model/kernel"
)

// CouponValidator resolves a coupon code to a discount for a given cart
// subtotal. Implementations return errs.ErrObjectNotFound for unknown codes
// and errs.ErrValueIsInvalid for codes whose conditions are not met.
type CouponValidator interface {
	Discount(code string, subtotal kernel.Money) (kernel.Money, error)
}

// ApplyCouponCommandHandler handles coupon application on a customer's cart.
// The cart stores only the resolved code and discount amount; validating the
// code is delegated to the CouponValidator collaborator.
type ApplyCouponCommandHandler struct {
	uowFactory CartUoWFactory
	validator  CouponValidator
}

// NewApplyCouponCommandHandler creates a handler for coupon application.
func NewApplyCouponCommandHandler(uowFactory CartUoWFactory, validator CouponValidator) ApplyCouponCommandHandler {
	return ApplyCouponCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

// Handle processes the coupon application. The cart must exist; the discount
// is resolved against the cart's current subtotal.
func (h ApplyCouponCommandHandler) Handle(ctx context.Context, cmd ApplyCouponCommand) error {
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

	discount, err := h.validator.Discount(cmd.CouponCode(), customerCart.Summary().Subtotal)
	if err != nil {
		return err
	}

	if err = customerCart.ApplyCoupon(cmd.CouponCode(), discount); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
