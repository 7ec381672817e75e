// Package restaurant contains the Restaurant aggregate and its MenuItem
// entity.
//
// The restaurant is the reference side of cart and order flows: line items
// are snapshots of menu items, and carts are revalidated against the live
// menu before checkout. A restaurant only accepts orders while it is both
// open and verified.
package restaurant
