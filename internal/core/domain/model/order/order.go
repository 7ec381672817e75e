package order

import (
	"errors"
	"time"

	"foodsewa/internal/core/domain/model/cart"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"
	"foodsewa/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when creating an order without line items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")

	// ErrOrderTotalMismatch is returned when the supplied total does not
	// equal subtotal - discount + delivery fee.
	ErrOrderTotalMismatch = errs.NewValueIsInvalidError("order total does not match its components")
)

// Pricing is the monetary breakdown frozen onto an order at checkout.
// It mirrors the cart summary at the moment the order was placed.
type Pricing struct {
	Subtotal    kernel.Money
	Discount    kernel.Money
	DeliveryFee kernel.Money
	Total       kernel.Money
}

// Order is the aggregate root for a placed order. It is created from a cart
// snapshot at checkout and from then on owns its own lifecycle; later menu or
// cart changes never affect it.
//
// Invariants:
//   - Must reference a customer and a restaurant
//   - Must contain at least one line item
//   - Total equals subtotal minus discount (floored at zero) plus delivery fee
//   - Status transitions are forward-only per the Status state machine
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	items        []cart.LineItem
	couponCode   string
	pricing      Pricing
	status       Status
	placedAt     time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order from a cart snapshot.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the customer who placed the order
//   - restaurantID: the restaurant the cart was bound to
//   - items: the cart's line items at checkout time
//   - couponCode: the applied coupon, "" when none
//   - pricing: the cart summary at checkout time
//
// The order starts in StatusPending. The pricing consistency check guards
// against callers assembling totals by hand instead of from a cart summary.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []cart.LineItem,
	couponCode string,
	pricing Pricing,
) (*Order, error) {
	o := &Order{
		couponCode: couponCode,
		status:     StatusPending,
		placedAt:   time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setPricing(pricing),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistent storage with its
// persisted status and timestamp.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []cart.LineItem,
	couponCode string,
	pricing Pricing,
	status Status,
	placedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, items, couponCode, pricing)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.placedAt = placedAt
	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the restaurant fulfilling the order.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Items returns a copy of the order's line item snapshot.
func (o *Order) Items() []cart.LineItem {
	return append([]cart.LineItem(nil), o.items...)
}

// CouponCode returns the coupon applied at checkout, "" when none.
func (o *Order) CouponCode() string {
	return o.couponCode
}

// Pricing returns the monetary breakdown frozen at checkout.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PlacedAt returns when the order was placed.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Confirm marks the order as accepted by the restaurant.
func (o *Order) Confirm() error {
	return o.transition(Status.Confirm)
}

// StartPreparing marks the order as being prepared by the kitchen.
func (o *Order) StartPreparing() error {
	return o.transition(Status.StartPreparing)
}

// MarkReady marks the order as ready for pickup or delivery.
func (o *Order) MarkReady() error {
	return o.transition(Status.MarkReady)
}

// MarkDelivered marks the order as delivered to the customer.
func (o *Order) MarkDelivered() error {
	return o.transition(Status.MarkDelivered)
}

// Cancel cancels the order. Only permitted while the order is still
// pending or confirmed.
func (o *Order) Cancel() error {
	return o.transition(Status.Cancel)
}

func (o *Order) transition(step func(Status) (Status, error)) error {
	newStatus, err := step(o.status)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setItems(items []cart.LineItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = append([]cart.LineItem(nil), items...)
	return nil
}

func (o *Order) setPricing(pricing Pricing) error {
	expected := pricing.Subtotal.SubFloor(pricing.Discount).Add(pricing.DeliveryFee)
	if !pricing.Total.IsEqual(expected) {
		return ErrOrderTotalMismatch
	}

	o.pricing = pricing
	return nil
}
