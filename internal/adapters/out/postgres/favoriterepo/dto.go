// Package favoriterepo provides data transfer objects and mapping functions for favorite persistence.
// This package implements the repository pattern for the favorite domain aggregate, handling
// the conversion between domain entities and database representations.
package favoriterepo

import (
	"time"

	"foodsewa/internal/core/domain/model/favorite"
	"foodsewa/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FavoriteDTO represents the database structure for persisting favorite aggregates.
// The composite unique index enforces one record per uniqueness key across
// both states; soft-deleted rows are kept for reactivation.
type FavoriteDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_favorites_key;index"`
	RestaurantID   uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_favorites_key"`
	Kind           string     `gorm:"uniqueIndex:idx_favorites_key"`
	MenuItemID     *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favorites_key"`
	DishName       string
	DishPriceCents int64
	DishImageURL   string
	State          string    `gorm:"index"`
	AddedAt        time.Time `gorm:"index"`
}

// TableName specifies the database table name for favorite entities.
func (FavoriteDTO) TableName() string {
	return "favorites"
}

// fromDomain converts a favorite domain aggregate to its database representation.
func fromDomain(aggregate *favorite.Favorite) FavoriteDTO {
	var menuItemID *uuid.UUID
	if mid := aggregate.MenuItemID(); mid != nil {
		raw := mid.Bytes()
		menuItemID = &raw
	}

	return FavoriteDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		RestaurantID:   aggregate.RestaurantID().Bytes(),
		Kind:           aggregate.Kind().String(),
		MenuItemID:     menuItemID,
		DishName:       aggregate.Dish().Name,
		DishPriceCents: aggregate.Dish().Price.Cents(),
		DishImageURL:   aggregate.Dish().ImageURL,
		State:          aggregate.State().String(),
		AddedAt:        aggregate.AddedAt(),
	}
}

// toDomain converts a database DTO to a favorite domain aggregate.
func toDomain(dto FavoriteDTO) (*favorite.Favorite, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var menuItemID *kernel.UUID
	if dto.MenuItemID != nil {
		mid, midErr := kernel.UUIDFromBytes((*dto.MenuItemID)[:])
		if midErr != nil {
			return nil, midErr
		}
		menuItemID = &mid
	}

	kind, err := favorite.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	state, err := favorite.StateFromString(dto.State)
	if err != nil {
		return nil, err
	}

	dishPrice, err := kernel.NewMoneyFromCents(dto.DishPriceCents)
	if err != nil {
		return nil, err
	}

	return favorite.RestoreFavorite(
		id, customerID, restaurantID, kind, menuItemID,
		favorite.DishSnapshot{
			Name:     dto.DishName,
			Price:    dishPrice,
			ImageURL: dto.DishImageURL,
		},
		state, dto.AddedAt)
}
