// Package restaurantrepo provides data transfer objects and mapping functions for restaurant persistence.
// This package implements the repository pattern for the restaurant domain aggregate, handling
// the conversion between domain entities and database representations.
package restaurantrepo

import (
	"encoding/json"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurant aggregates.
// The menu is stored as a JSONB document; it is always loaded together with
// the restaurant and never queried on its own.
type RestaurantDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string
	Open              bool
	Verified          bool
	DeliveryFeeCents  int64
	MinimumOrderCents int64
	Menu              []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// menuItemDTO is the JSONB layout of a single menu item.
type menuItemDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	ImageURL   string    `json:"image_url"`
	Available  bool      `json:"available"`
}

// fromDomain converts a restaurant domain aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) (RestaurantDTO, error) {
	menu := make([]menuItemDTO, 0, len(aggregate.Menu()))
	for _, item := range aggregate.Menu() {
		menu = append(menu, menuItemDTO{
			ID:         item.ID().Bytes(),
			Name:       item.Name(),
			PriceCents: item.Price().Cents(),
			ImageURL:   item.ImageURL(),
			Available:  item.IsAvailable(),
		})
	}

	menuJSON, err := json.Marshal(menu)
	if err != nil {
		return RestaurantDTO{}, err
	}

	return RestaurantDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		Open:              aggregate.IsOpen(),
		Verified:          aggregate.IsVerified(),
		DeliveryFeeCents:  aggregate.DeliveryFee().Cents(),
		MinimumOrderCents: aggregate.MinimumOrderAmount().Cents(),
		Menu:              menuJSON,
	}, nil
}

// toDomain converts a database DTO to a restaurant domain aggregate.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var menuDTOs []menuItemDTO
	if len(dto.Menu) > 0 {
		if err = json.Unmarshal(dto.Menu, &menuDTOs); err != nil {
			return nil, err
		}
	}

	menu := make([]restaurant.MenuItem, 0, len(menuDTOs))
	for _, itemDTO := range menuDTOs {
		item, itemErr := toMenuItem(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		menu = append(menu, item)
	}

	deliveryFee, err := kernel.NewMoneyFromCents(dto.DeliveryFeeCents)
	if err != nil {
		return nil, err
	}

	minimumOrder, err := kernel.NewMoneyFromCents(dto.MinimumOrderCents)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(
		id, dto.Name, dto.Open, dto.Verified, deliveryFee, minimumOrder, menu)
}

func toMenuItem(dto menuItemDTO) (restaurant.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return restaurant.MenuItem{}, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return restaurant.MenuItem{}, err
	}

	return restaurant.NewMenuItem(id, dto.Name, price, dto.ImageURL, dto.Available)
}
