package ports

import (
	"context"
	"time"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingBefore retrieves all pending orders placed before the given
	// time. Used by the auto-confirm job to pick up orders past the grace period.
	GetAllPendingBefore(ctx context.Context, placedBefore time.Time) ([]*order.Order, error)
}
