// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// This package implements the repository pattern for the cart domain aggregate, handling
// the conversion between domain entities and database representations.
package cartrepo

import (
	"encoding/json"
	"time"

	"foodsewa/internal/core/domain/model/cart"
	"foodsewa/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// Each customer has at most one cart, enforced by a unique index. Line items
// are stored as a JSONB document since they are only read through the cart.
type CartDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	RestaurantID      *uuid.UUID `gorm:"type:uuid"`
	Items             []byte     `gorm:"type:jsonb"`
	DeliveryFeeCents  int64
	MinimumOrderCents int64
	CouponCode        string
	DiscountCents     int64
	UpdatedAt         time.Time `gorm:"index"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// lineItemDTO is the JSONB layout of a single cart line item.
type lineItemDTO struct {
	MenuItemID          uuid.UUID `json:"menu_item_id"`
	Name                string    `json:"name"`
	UnitPriceCents      int64     `json:"unit_price_cents"`
	ImageURL            string    `json:"image_url"`
	Quantity            int       `json:"quantity"`
	Customizations      []string  `json:"customizations"`
	SpecialInstructions string    `json:"special_instructions"`
	Available           bool      `json:"available"`
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) (CartDTO, error) {
	items := make([]lineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, lineItemDTO{
			MenuItemID:          item.MenuItemID().Bytes(),
			Name:                item.Name(),
			UnitPriceCents:      item.UnitPrice().Cents(),
			ImageURL:            item.ImageURL(),
			Quantity:            item.Quantity(),
			Customizations:      item.Customizations(),
			SpecialInstructions: item.SpecialInstructions(),
			Available:           item.IsAvailable(),
		})
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return CartDTO{}, err
	}

	var restaurantID *uuid.UUID
	if rid := aggregate.RestaurantID(); rid != nil {
		raw := rid.Bytes()
		restaurantID = &raw
	}

	return CartDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		RestaurantID:      restaurantID,
		Items:             itemsJSON,
		DeliveryFeeCents:  aggregate.DeliveryFee().Cents(),
		MinimumOrderCents: aggregate.MinimumOrderAmount().Cents(),
		CouponCode:        aggregate.CouponCode(),
		DiscountCents:     aggregate.Discount().Cents(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to a cart domain aggregate.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var restaurantID *kernel.UUID
	if dto.RestaurantID != nil {
		rid, ridErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if ridErr != nil {
			return nil, ridErr
		}
		restaurantID = &rid
	}

	var itemDTOs []lineItemDTO
	if len(dto.Items) > 0 {
		if err = json.Unmarshal(dto.Items, &itemDTOs); err != nil {
			return nil, err
		}
	}

	items := make([]cart.LineItem, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := toLineItem(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	deliveryFee, err := kernel.NewMoneyFromCents(dto.DeliveryFeeCents)
	if err != nil {
		return nil, err
	}

	minimumOrder, err := kernel.NewMoneyFromCents(dto.MinimumOrderCents)
	if err != nil {
		return nil, err
	}

	discount, err := kernel.NewMoneyFromCents(dto.DiscountCents)
	if err != nil {
		return nil, err
	}

	return cart.RestoreCart(
		id, customerID, restaurantID, items,
		deliveryFee, minimumOrder, dto.CouponCode, discount, dto.UpdatedAt)
}

func toLineItem(dto lineItemDTO) (cart.LineItem, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return cart.LineItem{}, err
	}

	unitPrice, err := kernel.NewMoneyFromCents(dto.UnitPriceCents)
	if err != nil {
		return cart.LineItem{}, err
	}

	return cart.RestoreLineItem(
		menuItemID, dto.Name, unitPrice, dto.ImageURL,
		dto.Quantity, dto.Customizations, dto.SpecialInstructions, dto.Available)
}
