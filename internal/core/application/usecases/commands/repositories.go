// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodsewa/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CartRepoFactory provides access to cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// FavoriteRepoFactory provides access to favorite repository within a transaction.
	FavoriteRepoFactory interface {
		FavoriteRepository() ports.FavoriteRepository
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RestaurantRepoFactory provides access to restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// CartUoW manages transactions for cart operations. Cart commands read the
	// restaurant for menu snapshots and delivery terms, so the restaurant
	// repository is part of the same transaction.
	CartUoW interface {
		TxManager
		CartRepoFactory
		RestaurantRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// FavoriteUoW manages transactions for favorite operations. Dish favorites
	// snapshot menu data, so the restaurant repository is included.
	FavoriteUoW interface {
		TxManager
		FavoriteRepoFactory
		RestaurantRepoFactory
	}

	// FavoriteUoWFactory creates new favorite unit of work instances.
	FavoriteUoWFactory interface {
		Create() FavoriteUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages the cart-to-order handoff. Revalidating the cart,
	// creating the order, and clearing the cart happen in one transaction so a
	// failure never leaves an order without a consumed cart or vice versa.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
		RestaurantRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
