package ports

import (
	"context"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates and their menus.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate to storage.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate with its full menu.
	// Returns errs.ErrObjectNotFound when the restaurant does not exist.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
