package commands

import (
	"context"
)

// UpdateCartItemQuantityCommandHandler handles quantity changes on cart items.
type UpdateCartItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartItemQuantityCommandHandler creates a handler for quantity updates.
func NewUpdateCartItemQuantityCommandHandler(uowFactory CartUoWFactory) UpdateCartItemQuantityCommandHandler {
	return UpdateCartItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change. The cart must already exist.
func (h UpdateCartItemQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemQuantityCommand) error {
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

	if err = customerCart.UpdateItemQuantity(cmd.ItemIndex(), cmd.Quantity()); err != nil {
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
