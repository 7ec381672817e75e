package commands

import (
	"context"
	"time"
)

// CleanupAbandonedCartsCommandHandler clears carts that have gone stale.
// Clearing keeps the cart row but empties it, so the customer starts fresh
// instead of finding expired prices.
type CleanupAbandonedCartsCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewCleanupAbandonedCartsCommandHandler creates a handler for cart cleanup.
func NewCleanupAbandonedCartsCommandHandler(uowFactory CartUoWFactory) CleanupAbandonedCartsCommandHandler {
	return CleanupAbandonedCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle clears every cart untouched for longer than the command TTL and
// returns how many carts were cleared.
func (h CleanupAbandonedCartsCommandHandler) Handle(ctx context.Context, cmd CleanupAbandonedCartsCommand) (int, error) {
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

	cartRepo := uow.CartRepository()
	stale, err := cartRepo.GetStale(ctx, time.Now().UTC().Add(-cmd.TTL()))
	if err != nil {
		return 0, err
	}

	cleared := 0
	for _, staleCart := range stale {
		if staleCart.IsEmpty() {
			continue
		}

		staleCart.Clear()
		if err = cartRepo.Update(ctx, staleCart); err != nil {
			return 0, err
		}
		cleared++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cleared, nil
}
