// Package ports defines repository interfaces for the domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"foodsewa/internal/core/domain/model/cart"
	"foodsewa/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Every customer has at most one cart, so lookups are keyed by customer.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByCustomer retrieves the cart belonging to a customer.
	// Returns errs.ErrObjectNotFound when the customer has no cart.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// GetStale retrieves all carts last touched before the given time.
	// Used by the abandoned cart cleanup job.
	GetStale(ctx context.Context, olderThan time.Time) ([]*cart.Cart, error)
}
