package commands

import (
	"context"
	"errors"

	"foodsewa/internal/core/domain/model/favorite"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"
)

// AddFavoriteCommandHandler handles favoriting a restaurant or dish.
//
// Uniqueness is per (customer, restaurant, kind, menu item) among active
// favorites: an active duplicate is rejected, an inactive one is reactivated
// with a fresh dish snapshot, and a missing one is inserted.
type AddFavoriteCommandHandler struct {
	uowFactory FavoriteUoWFactory
}

// NewAddFavoriteCommandHandler creates a handler for favorite addition.
func NewAddFavoriteCommandHandler(uowFactory FavoriteUoWFactory) AddFavoriteCommandHandler {
	return AddFavoriteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the favorite addition. Returns errs.ErrObjectAlreadyExists
// when an active favorite already covers the same key.
func (h AddFavoriteCommandHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) error {
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

	dish, err := h.resolveDish(ctx, uow, cmd)
	if err != nil {
		return err
	}

	favoriteRepo := uow.FavoriteRepository()
	existing, err := favoriteRepo.GetByKey(
		ctx, cmd.CustomerID(), cmd.RestaurantID(), cmd.Kind(), cmd.MenuItemID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		newFavorite, favErr := favorite.NewFavorite(
			kernel.NewUUID(), cmd.CustomerID(), cmd.RestaurantID(),
			cmd.Kind(), cmd.MenuItemID(), dish)
		if favErr != nil {
			return favErr
		}
		if favErr = favoriteRepo.Add(ctx, newFavorite); favErr != nil {
			return favErr
		}
	case err != nil:
		return err
	case existing.IsActive():
		return errs.NewObjectAlreadyExistsError("favorite", existing.ID())
	default:
		if err = existing.Reactivate(dish); err != nil {
			return err
		}
		if err = favoriteRepo.Update(ctx, existing); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// resolveDish snapshots current menu data for dish favorites. Restaurant
// favorites carry no snapshot but the restaurant must still exist.
func (h AddFavoriteCommandHandler) resolveDish(
	ctx context.Context,
	uow FavoriteUoW,
	cmd AddFavoriteCommand,
) (favorite.DishSnapshot, error) {
	restaurantRepo := uow.RestaurantRepository()
	r, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return favorite.DishSnapshot{}, err
	}

	if cmd.Kind() != favorite.KindDish {
		return favorite.DishSnapshot{}, nil
	}

	menuItemID := cmd.MenuItemID()
	if menuItemID == nil {
		return favorite.DishSnapshot{}, favorite.ErrMenuItemIsRequiredForDish
	}

	menuItem, err := r.FindMenuItem(*menuItemID)
	if err != nil {
		return favorite.DishSnapshot{}, err
	}

	return favorite.DishSnapshot{
		Name:     menuItem.Name(),
		Price:    menuItem.Price(),
		ImageURL: menuItem.ImageURL(),
	}, nil
}
