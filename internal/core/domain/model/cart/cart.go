package cart

import (
	"errors"
	"time"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"
	"foodsewa/internal/pkg/guard"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through NewCart or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrCartRestaurantConflict is returned when adding an item from a
	// restaurant other than the one the cart is already bound to.
	ErrCartRestaurantConflict = errors.New("cart already contains items from another restaurant")

	// ErrCouponCodeIsRequired is returned when applying a coupon with an empty code.
	ErrCouponCodeIsRequired = errs.NewValueIsRequiredError("coupon code")
)

// Summary is the derived monetary breakdown of a cart. The total is computed
// on every read; the cart never stores it, so it can never go stale.
type Summary struct {
	Subtotal    kernel.Money
	Discount    kernel.Money
	DeliveryFee kernel.Money
	Total       kernel.Money
}

// Cart is the aggregate root for a customer's shopping basket.
//
// A cart belongs to exactly one customer and, while it holds items, to
// exactly one restaurant. The restaurant binding is established by the first
// item added and released when the last item is removed or the cart is
// cleared.
//
// Invariants:
//   - All line items reference the same restaurant
//   - Every line item quantity lies within [MinLineItemQuantity, MaxLineItemQuantity]
//   - DeliveryFee and MinimumOrderAmount mirror the bound restaurant and are
//     zero while the cart is empty
//
// All mutation failures are local validation errors: a rejected operation
// leaves the cart exactly as it was.
type Cart struct {
	id                 kernel.UUID
	customerID         kernel.UUID
	restaurantID       *kernel.UUID
	items              []LineItem
	deliveryFee        kernel.Money
	minimumOrderAmount kernel.Money
	couponCode         string
	discount           kernel.Money
	updatedAt          time.Time

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for a customer. Carts are created lazily on
// the customer's first cart interaction; one active cart exists per customer.
func NewCart(id kernel.UUID, customerID kernel.UUID) (*Cart, error) {
	c := &Cart{
		updatedAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCart reconstructs a cart aggregate from persistent storage with its
// full state: restaurant binding, items, fees, and coupon.
func RestoreCart(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID *kernel.UUID,
	items []LineItem,
	deliveryFee kernel.Money,
	minimumOrderAmount kernel.Money,
	couponCode string,
	discount kernel.Money,
	updatedAt time.Time,
) (*Cart, error) {
	c, err := NewCart(id, customerID)
	if err != nil {
		return nil, err
	}

	if restaurantID != nil {
		if err = restaurantID.Validate(); err != nil {
			return nil, err
		}
		rid := *restaurantID
		c.restaurantID = &rid
	}

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}

	c.items = append([]LineItem(nil), items...)
	c.deliveryFee = deliveryFee
	c.minimumOrderAmount = minimumOrderAmount
	c.couponCode = couponCode
	c.discount = discount
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the cart was built through a constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// CustomerID returns the identifier of the customer owning this cart.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant the cart is bound to,
// or nil while the cart is empty.
func (c *Cart) RestaurantID() *kernel.UUID {
	if c.restaurantID == nil {
		return nil
	}
	rid := *c.restaurantID
	return &rid
}

// Items returns a copy of the cart's line items in insertion order.
func (c *Cart) Items() []LineItem {
	return append([]LineItem(nil), c.items...)
}

// DeliveryFee returns the delivery fee of the bound restaurant.
func (c *Cart) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// MinimumOrderAmount returns the minimum order amount of the bound restaurant.
func (c *Cart) MinimumOrderAmount() kernel.Money {
	return c.minimumOrderAmount
}

// CouponCode returns the applied coupon code, or "" when none is applied.
func (c *Cart) CouponCode() string {
	return c.couponCode
}

// Discount returns the discount amount of the applied coupon.
func (c *Cart) Discount() kernel.Money {
	return c.discount
}

// UpdatedAt returns the time of the last successful mutation.
func (c *Cart) UpdatedAt() time.Time {
	return c.updatedAt
}

// IsEmpty reports whether the cart holds no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// IsEqual compares two carts by their unique identifiers.
func (c *Cart) IsEqual(other *Cart) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// AddItem adds a line item from the given restaurant to the cart.
//
// Business rules:
//   - If the cart already holds items from a different restaurant, the call
//     fails with ErrCartRestaurantConflict and the cart is unchanged
//   - If the cart is empty, it becomes bound to the restaurant and records
//     its delivery fee and minimum order amount
//   - If a line for the same menu item already exists, the quantities are
//     merged; a merge that would exceed MaxLineItemQuantity fails and leaves
//     the cart unchanged
func (c *Cart) AddItem(
	restaurantID kernel.UUID,
	item LineItem,
	deliveryFee kernel.Money,
	minimumOrderAmount kernel.Money,
) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	if c.restaurantID != nil && !c.restaurantID.IsEqual(restaurantID) {
		return ErrCartRestaurantConflict
	}

	for i := range c.items {
		if !c.items[i].menuItemID.IsEqual(item.menuItemID) {
			continue
		}

		merged := c.items[i].quantity + item.quantity
		if merged > MaxLineItemQuantity {
			return errs.NewValueIsOutOfRangeError("quantity", merged, MinLineItemQuantity, MaxLineItemQuantity)
		}

		c.items[i].quantity = merged
		c.touch()
		return nil
	}

	if c.restaurantID == nil {
		rid := restaurantID
		c.restaurantID = &rid
		c.deliveryFee = deliveryFee
		c.minimumOrderAmount = minimumOrderAmount
	}

	c.items = append(c.items, item)
	c.touch()
	return nil
}

// UpdateItemQuantity sets the quantity of the line item at the given index.
// Quantity zero is not removal at this layer; removal is the explicit
// RemoveItem operation. A failed update leaves the cart unchanged.
func (c *Cart) UpdateItemQuantity(index int, quantity int) error {
	if err := c.validateIndex(index); err != nil {
		return err
	}
	if quantity < MinLineItemQuantity || quantity > MaxLineItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinLineItemQuantity, MaxLineItemQuantity)
	}

	c.items[index].quantity = quantity
	c.touch()
	return nil
}

// RemoveItem removes the line item at the given index. Removing the last
// item releases the restaurant binding along with its fees and any coupon,
// so the next order can start from any restaurant.
func (c *Cart) RemoveItem(index int) error {
	if err := c.validateIndex(index); err != nil {
		return err
	}

	c.items = append(c.items[:index], c.items[index+1:]...)
	if len(c.items) == 0 {
		c.resetRestaurantContext()
	}

	c.touch()
	return nil
}

// ApplyCoupon records a coupon code and its discount amount on the cart.
// Whether the code is valid and what it is worth is decided by the coupon
// collaborator before this call; the aggregate only stores the outcome.
func (c *Cart) ApplyCoupon(code string, discount kernel.Money) error {
	if code == "" {
		return ErrCouponCodeIsRequired
	}

	c.couponCode = code
	c.discount = discount
	c.touch()
	return nil
}

// RemoveCoupon clears the coupon code and resets the discount to zero.
func (c *Cart) RemoveCoupon() {
	c.couponCode = ""
	c.discount = kernel.MoneyZero()
	c.touch()
}

// Clear empties the cart entirely: items, restaurant binding, fees, and
// coupon. Clearing an already empty cart is a no-op, not an error.
func (c *Cart) Clear() {
	c.items = nil
	c.resetRestaurantContext()
	c.touch()
}

// Summary computes the derived monetary breakdown of the cart.
// The discount is floored against the subtotal so an oversized coupon can
// zero the subtotal but never push the total below the delivery fee.
func (c *Cart) Summary() Summary {
	subtotal := kernel.MoneyZero()
	for _, item := range c.items {
		subtotal = subtotal.Add(item.Total())
	}

	return Summary{
		Subtotal:    subtotal,
		Discount:    c.discount,
		DeliveryFee: c.deliveryFee,
		Total:       subtotal.SubFloor(c.discount).Add(c.deliveryFee),
	}
}

// MeetsMinimumOrder reports whether the cart subtotal reaches the bound
// restaurant's minimum order amount. An empty cart trivially meets a zero
// minimum and fails any positive one.
func (c *Cart) MeetsMinimumOrder() bool {
	return !c.Summary().Subtotal.LessThan(c.minimumOrderAmount)
}

func (c *Cart) validateIndex(index int) error {
	if index < 0 || index >= len(c.items) {
		return errs.NewValueIsOutOfRangeError("line item index", index, 0, len(c.items)-1)
	}
	return nil
}

func (c *Cart) resetRestaurantContext() {
	c.restaurantID = nil
	c.deliveryFee = kernel.MoneyZero()
	c.minimumOrderAmount = kernel.MoneyZero()
	c.couponCode = ""
	c.discount = kernel.MoneyZero()
}

func (c *Cart) touch() {
	c.updatedAt = time.Now().UTC()
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
