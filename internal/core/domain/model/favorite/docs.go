// Package favorite provides the favorite aggregate: a customer's saved
// reference to a restaurant or to a specific dish for quick re-access.
//
// The package includes:
//   - Favorite: The aggregate with its identity key and dish detail snapshot
//   - Kind: restaurant-level versus dish-level favorites
//   - State: the explicit Active/Inactive soft-delete state machine
//
// Key business rules:
//   - At most one Active favorite exists per identity key; an attempt to add
//     a duplicate is rejected as "already in favorites"
//   - Removal is a soft delete (Active -> Inactive); the record is kept
//   - Adding a previously removed favorite reactivates the Inactive record
//     instead of inserting a new one, so soft deletes never accumulate
//   - Restaurant-level and dish-level favorites for the same restaurant are
//     independent of each other
package favorite
