package queries

import (
	"errors"
	"time"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/core/domain/model/order"
	"foodsewa/internal/pkg/guard"
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

// ListCustomerOrdersQuery retrieves a customer's order history, optionally
// restricted to a set of statuses.
type ListCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	statuses   []order.Status

	guard guard.ConstructorGuard
}

// NewListCustomerOrdersQuery creates an order history query. statuses may be
// empty to list orders in every state.
func NewListCustomerOrdersQuery(
	customerID kernel.UUID,
	statuses []order.Status,
) (ListCustomerOrdersQuery, error) {
	q := ListCustomerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setCustomerID(customerID),
		q.setStatuses(statuses),
	); err != nil {
		return ListCustomerOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer's identifier.
func (q ListCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Statuses returns the status filter, empty when unfiltered.
func (q ListCustomerOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

func (q *ListCustomerOrdersQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	q.customerID = customerID
	return nil
}

func (q *ListCustomerOrdersQuery) setStatuses(statuses []order.Status) error {
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	q.statuses = statuses
	return nil
}

// ListCustomerOrdersItemResponse is one order in the history read model.
type ListCustomerOrdersItemResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Status       string
	ItemCount    int
	TotalCents   int64
	PlacedAt     time.Time
}
