package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"foodsewa/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves a customer's cart from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// cartItemRow mirrors the JSONB line item layout used by the cart storage.
type cartItemRow struct {
	MenuItemID          uuid.UUID `json:"menu_item_id"`
	Name                string    `json:"name"`
	UnitPriceCents      int64     `json:"unit_price_cents"`
	ImageURL            string    `json:"image_url"`
	Quantity            int       `json:"quantity"`
	Customizations      []string  `json:"customizations"`
	SpecialInstructions string    `json:"special_instructions"`
	Available           bool      `json:"available"`
}

// Handle executes the cart query. A customer without a cart gets an empty
// response with zeroed totals, not an error.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			items,
			delivery_fee_cents,
			minimum_order_cents,
			coupon_code,
			discount_cents
		FROM carts
		WHERE customer_id = ?
	`, query.CustomerID().String()).Row()

	var (
		id               uuid.UUID
		restaurantID     sql.NullString
		itemsJSON        []byte
		deliveryFeeCents int64
		minimumCents     int64
		couponCode       string
		discountCents    int64
	)

	err := row.Scan(
		&id,
		&restaurantID,
		&itemsJSON,
		&deliveryFeeCents,
		&minimumCents,
		&couponCode,
		&discountCents,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCartQueryResponse{}, nil
	}
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	cartID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	resp := GetCartQueryResponse{
		CartID:           &cartID,
		CouponCode:       couponCode,
		DiscountCents:    discountCents,
		DeliveryFeeCents: deliveryFeeCents,
	}

	if restaurantID.Valid {
		rid, ridErr := kernel.UUIDFromString(restaurantID.String)
		if ridErr != nil {
			return GetCartQueryResponse{}, ridErr
		}
		resp.RestaurantID = &rid
	}

	var rows []cartItemRow
	if len(itemsJSON) > 0 {
		if err = json.Unmarshal(itemsJSON, &rows); err != nil {
			return GetCartQueryResponse{}, err
		}
	}

	var subtotal int64
	for _, r := range rows {
		itemID, idErr := kernel.UUIDFromBytes(r.MenuItemID[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}

		total := r.UnitPriceCents * int64(r.Quantity)
		subtotal += total
		resp.Items = append(resp.Items, GetCartItemResponse{
			MenuItemID:          itemID,
			Name:                r.Name,
			UnitPriceCents:      r.UnitPriceCents,
			ImageURL:            r.ImageURL,
			Quantity:            r.Quantity,
			Customizations:      r.Customizations,
			SpecialInstructions: r.SpecialInstructions,
			TotalCents:          total,
		})
	}

	discounted := subtotal - discountCents
	if discounted < 0 {
		discounted = 0
	}

	resp.SubtotalCents = subtotal
	resp.TotalCents = discounted + deliveryFeeCents
	resp.MeetsMinimumOrder = subtotal >= minimumCents

	return resp, nil
}
