// Package order provides the order aggregate of the FoodSewa marketplace.
// An order is created from a cart snapshot at checkout and manages its own
// lifecycle from placement through fulfillment.
//
// The package includes:
//   - Order: The aggregate root holding the frozen cart snapshot and pricing
//   - Status: The forward-only state machine driving fulfillment
//
// Key business rules:
//   - Orders are immutable snapshots: the items and pricing recorded at
//     checkout never change afterwards
//   - Status follows pending -> confirmed -> preparing -> ready -> delivered
//   - Cancellation is permitted only while pending or confirmed
//   - Delivered and cancelled are terminal states
package order
