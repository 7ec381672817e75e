package commands

import (
	"context"
)

// RemoveAllFavoritesCommandHandler handles the bulk clear of a customer's
// favorites. All active records are marked inactive in one statement; clearing
// an empty list is a success.
type RemoveAllFavoritesCommandHandler struct {
	uowFactory FavoriteUoWFactory
}

// NewRemoveAllFavoritesCommandHandler creates a handler for the bulk clear.
func NewRemoveAllFavoritesCommandHandler(uowFactory FavoriteUoWFactory) RemoveAllFavoritesCommandHandler {
	return RemoveAllFavoritesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk clear.
func (h RemoveAllFavoritesCommandHandler) Handle(ctx context.Context, cmd RemoveAllFavoritesCommand) error {
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

	favoriteRepo := uow.FavoriteRepository()
	if err := favoriteRepo.DeactivateAllByCustomer(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
