// Package services contains stateless domain services that coordinate logic
// spanning more than one aggregate.
//
// AvailabilityChecker compares a cart's line item snapshots against the live
// restaurant menu before checkout. It produces a Report instead of mutating
// the cart so callers can either surface the problems to the customer or
// abort the order.
package services
