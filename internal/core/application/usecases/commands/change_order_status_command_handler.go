package commands

import (
	"context"

	"foodsewa/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies a lifecycle step to an order.
// Transition legality lives in the order aggregate; the handler only loads,
// delegates, and persists.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for order status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.apply(o, cmd.Action()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h ChangeOrderStatusCommandHandler) apply(o *order.Order, action StatusAction) error {
	switch action {
	case ActionConfirm:
		return o.Confirm()
	case ActionPrepare:
		return o.StartPreparing()
	case ActionReady:
		return o.MarkReady()
	case ActionDeliver:
		return o.MarkDelivered()
	case ActionCancel:
		return o.Cancel()
	default:
		return ErrChangeOrderStatusCommandIsNotConstructed
	}
}
