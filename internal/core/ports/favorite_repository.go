package ports

import (
	"context"

	"foodsewa/internal/core/domain/model/favorite"
	"foodsewa/internal/core/domain/model/kernel"
)

// FavoriteRepository defines the persistence contract for favorite aggregates.
// Uniqueness is enforced on (customer, restaurant, kind, menu item), so the
// key lookup returns favorites in any state including inactive ones.
type FavoriteRepository interface {
	// Add persists a new favorite aggregate to storage.
	// Returns errs.ErrObjectAlreadyExists when the uniqueness key is taken.
	Add(ctx context.Context, aggregate *favorite.Favorite) error

	// Update persists changes to an existing favorite aggregate.
	Update(ctx context.Context, aggregate *favorite.Favorite) error

	// GetByKey retrieves a favorite by its uniqueness key regardless of state.
	// menuItemID must be nil for restaurant favorites and set for dish favorites.
	// Returns errs.ErrObjectNotFound when no favorite matches the key.
	GetByKey(
		ctx context.Context,
		customerID kernel.UUID,
		restaurantID kernel.UUID,
		kind favorite.Kind,
		menuItemID *kernel.UUID,
	) (*favorite.Favorite, error)

	// DeactivateAllByCustomer marks every active favorite of a customer inactive.
	// Used by the clear-all operation; records are kept for reactivation.
	DeactivateAllByCustomer(ctx context.Context, customerID kernel.UUID) error
}
