package commands

import (
	"context"
	"errors"

	"foodsewa/internal/pkg/errs"
)

// ErrFavoriteNotActive is returned when removing a favorite that is already
// soft-deleted.
var ErrFavoriteNotActive = errors.New("favorite is not active")

// RemoveFavoriteCommandHandler handles soft-deleting a favorite. The record
// stays in storage so a later add can reactivate it instead of inserting a
// duplicate.
type RemoveFavoriteCommandHandler struct {
	uowFactory FavoriteUoWFactory
}

// NewRemoveFavoriteCommandHandler creates a handler for favorite removal.
func NewRemoveFavoriteCommandHandler(uowFactory FavoriteUoWFactory) RemoveFavoriteCommandHandler {
	return RemoveFavoriteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal.
func (h RemoveFavoriteCommandHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
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
	existing, err := favoriteRepo.GetByKey(
		ctx, cmd.CustomerID(), cmd.RestaurantID(), cmd.Kind(), cmd.MenuItemID())
	if err != nil {
		return err
	}

	if !existing.IsActive() {
		return errs.NewObjectNotFoundErrorWithCause("favorite", existing.ID(), ErrFavoriteNotActive)
	}

	if err = existing.Deactivate(); err != nil {
		return err
	}

	if err = favoriteRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
