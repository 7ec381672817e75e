package queries

import (
	"context"
	"time"

	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListCustomerOrdersQueryHandler retrieves a customer's order history from
// the database, newest first.
type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomerOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

// Handle executes the order history query.
func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]ListCustomerOrdersItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListCustomerOrdersItemResponse, 0)

	sql := `
		SELECT
			id,
			restaurant_id,
			status,
			jsonb_array_length(items),
			total_cents,
			placed_at
		FROM orders
		WHERE customer_id = ?`
	args := []interface{}{query.CustomerID().String()}

	if statuses := query.Statuses(); len(statuses) > 0 {
		values := make([]int64, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, int64(status))
		}
		sql += ` AND status = ANY(?)`
		args = append(args, pq.Array(values))
	}

	sql += ` ORDER BY placed_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item         ListCustomerOrdersItemResponse
			id           uuid.UUID
			restaurantID uuid.UUID
			status       int
			placedAt     time.Time
		)

		err = rows.Scan(
			&id,
			&restaurantID,
			&status,
			&item.ItemCount,
			&item.TotalCents,
			&placedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = orderID

		rid, ridErr := kernel.UUIDFromBytes(restaurantID[:])
		if ridErr != nil {
			return nil, ridErr
		}
		item.RestaurantID = rid

		item.Status = order.Status(status).String()
		item.PlacedAt = placedAt
		orders = append(orders, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
