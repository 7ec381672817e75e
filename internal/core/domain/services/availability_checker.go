package services

import (
	"foodsewa/internal/core/domain/model/cart"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/core/domain/model/restaurant"
	"foodsewa/internal/pkg/errs"
)

// Unavailability reasons reported for individual cart items.
const (
	ReasonRemoved     = "removed"
	ReasonUnavailable = "unavailable"
	ReasonRepriced    = "repriced"
)

// UnavailableItem describes a single cart line item that can no longer be
// ordered as priced. CurrentPrice is only set for repriced items.
type UnavailableItem struct {
	MenuItemID   kernel.UUID
	Name         string
	Reason       string
	CurrentPrice kernel.Money
}

// Report is the outcome of checking a cart against the live restaurant menu.
type Report struct {
	IsValid     bool
	Unavailable []UnavailableItem
}

// AvailabilityChecker is a domain service that revalidates a cart against the
// restaurant it was built from. Cart line items carry menu snapshots taken at
// add time; between then and checkout the restaurant may close, delist a dish,
// mark it unavailable, or change its price.
//
// The checker is pure: it never mutates the cart. Callers decide whether to
// surface the report to the customer or abort checkout.
//
// Business rules:
//   - A cart bound to a different restaurant than the one supplied is invalid
//   - A closed or unverified restaurant invalidates every item
//   - A dish missing from the menu is reported as removed
//   - A dish flagged unavailable is reported as unavailable
//   - A dish whose price changed is reported as repriced with the live price
type AvailabilityChecker struct{}

// NewAvailabilityChecker creates a new AvailabilityChecker instance.
func NewAvailabilityChecker() AvailabilityChecker {
	return AvailabilityChecker{}
}

// Check revalidates every cart item against the restaurant menu and returns a
// report. An empty cart is trivially valid.
func (a AvailabilityChecker) Check(c *cart.Cart, r *restaurant.Restaurant) (Report, error) {
	if err := c.Validate(); err != nil {
		return Report{}, err
	}
	if err := r.Validate(); err != nil {
		return Report{}, err
	}

	if c.IsEmpty() {
		return Report{IsValid: true}, nil
	}

	if c.RestaurantID() == nil || !c.RestaurantID().IsEqual(r.ID()) {
		return Report{}, errs.NewValueIsInvalidError("cart restaurant does not match the supplied restaurant")
	}

	if !r.CanAcceptOrders() {
		return Report{Unavailable: a.allUnavailable(c)}, nil
	}

	var unavailable []UnavailableItem
	for _, item := range c.Items() {
		if flagged, ok := a.checkItem(item, r); ok {
			unavailable = append(unavailable, flagged)
		}
	}

	return Report{
		IsValid:     len(unavailable) == 0,
		Unavailable: unavailable,
	}, nil
}

func (a AvailabilityChecker) checkItem(item cart.LineItem, r *restaurant.Restaurant) (UnavailableItem, bool) {
	menuItem, err := r.FindMenuItem(item.MenuItemID())
	if err != nil {
		return UnavailableItem{
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Reason:     ReasonRemoved,
		}, true
	}

	if !menuItem.IsAvailable() {
		return UnavailableItem{
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Reason:     ReasonUnavailable,
		}, true
	}

	if !menuItem.Price().IsEqual(item.UnitPrice()) {
		return UnavailableItem{
			MenuItemID:   item.MenuItemID(),
			Name:         item.Name(),
			Reason:       ReasonRepriced,
			CurrentPrice: menuItem.Price(),
		}, true
	}

	return UnavailableItem{}, false
}

func (a AvailabilityChecker) allUnavailable(c *cart.Cart) []UnavailableItem {
	items := c.Items()
	unavailable := make([]UnavailableItem, 0, len(items))
	for _, item := range items {
		unavailable = append(unavailable, UnavailableItem{
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Reason:     ReasonUnavailable,
		})
	}
	return unavailable
}
