// Package kernel provides the shared value objects used across all domain
// aggregates of the FoodSewa marketplace.
//
// The package includes:
//   - UUID: An immutable identifier value object wrapping github.com/google/uuid
//   - Money: A non-negative monetary amount stored in minor units (cents)
//
// Both types are immutable, validated at construction, and safe for
// concurrent use. Zero values are invalid where noted and fail validation,
// which prevents half-initialized identifiers or amounts from leaking into
// aggregates.
package kernel
