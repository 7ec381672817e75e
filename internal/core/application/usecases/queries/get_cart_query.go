// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's cart with its derived summary.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for a customer's cart.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	q := GetCartQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	q.customerID = customerID

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCartItemResponse is one cart line item in the read model.
// Monetary amounts are integer cents.
type GetCartItemResponse struct {
	MenuItemID          kernel.UUID
	Name                string
	UnitPriceCents      int64
	ImageURL            string
	Quantity            int
	Customizations      []string
	SpecialInstructions string
	TotalCents          int64
}

// GetCartQueryResponse is a customer's cart in the read model. An absent cart
// is represented as an empty response rather than an error, so the storefront
// can always render a basket.
type GetCartQueryResponse struct {
	CartID            *kernel.UUID
	RestaurantID      *kernel.UUID
	Items             []GetCartItemResponse
	CouponCode        string
	SubtotalCents     int64
	DiscountCents     int64
	DeliveryFeeCents  int64
	TotalCents        int64
	MeetsMinimumOrder bool
}
