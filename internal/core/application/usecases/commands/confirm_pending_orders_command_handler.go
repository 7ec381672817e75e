package commands

import (
	"context"
	"time"
)

// ConfirmPendingOrdersCommandHandler advances pending orders to confirmed
// once their cancellation grace period has passed.
type ConfirmPendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmPendingOrdersCommandHandler creates a handler for order auto-confirmation.
func NewConfirmPendingOrdersCommandHandler(uowFactory OrderUoWFactory) ConfirmPendingOrdersCommandHandler {
	return ConfirmPendingOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle confirms every order placed before the grace period cutoff and
// returns how many orders were confirmed.
func (h ConfirmPendingOrdersCommandHandler) Handle(ctx context.Context, cmd ConfirmPendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	pending, err := orderRepo.GetAllPendingBefore(ctx, time.Now().UTC().Add(-cmd.GracePeriod()))
	if err != nil {
		return 0, err
	}

	confirmed := 0
	for _, o := range pending {
		if err = o.Confirm(); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		confirmed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return confirmed, nil
}
