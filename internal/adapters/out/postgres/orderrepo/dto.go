// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"foodsewa/internal/core/domain/model/cart"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items are an immutable snapshot taken at checkout, stored as JSONB.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID     uuid.UUID `gorm:"type:uuid;index"`
	Items            []byte    `gorm:"type:jsonb"`
	CouponCode       string
	SubtotalCents    int64
	DiscountCents    int64
	DeliveryFeeCents int64
	TotalCents       int64
	Status           int       `gorm:"index"`
	PlacedAt         time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// orderItemDTO is the JSONB layout of a single order line item.
type orderItemDTO struct {
	MenuItemID          uuid.UUID `json:"menu_item_id"`
	Name                string    `json:"name"`
	UnitPriceCents      int64     `json:"unit_price_cents"`
	ImageURL            string    `json:"image_url"`
	Quantity            int       `json:"quantity"`
	Customizations      []string  `json:"customizations"`
	SpecialInstructions string    `json:"special_instructions"`
	Available           bool      `json:"available"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]orderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, orderItemDTO{
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
		return OrderDTO{}, err
	}

	pricing := aggregate.Pricing()
	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		RestaurantID:     aggregate.RestaurantID().Bytes(),
		Items:            itemsJSON,
		CouponCode:       aggregate.CouponCode(),
		SubtotalCents:    pricing.Subtotal.Cents(),
		DiscountCents:    pricing.Discount.Cents(),
		DeliveryFeeCents: pricing.DeliveryFee.Cents(),
		TotalCents:       pricing.Total.Cents(),
		Status:           int(aggregate.Status()),
		PlacedAt:         aggregate.PlacedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var itemDTOs []orderItemDTO
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

	pricing, err := toPricing(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, restaurantID, items, dto.CouponCode,
		pricing, order.Status(dto.Status), dto.PlacedAt)
}

func toLineItem(dto orderItemDTO) (cart.LineItem, error) {
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

func toPricing(dto OrderDTO) (order.Pricing, error) {
	subtotal, err := kernel.NewMoneyFromCents(dto.SubtotalCents)
	if err != nil {
		return order.Pricing{}, err
	}

	discount, err := kernel.NewMoneyFromCents(dto.DiscountCents)
	if err != nil {
		return order.Pricing{}, err
	}

	deliveryFee, err := kernel.NewMoneyFromCents(dto.DeliveryFeeCents)
	if err != nil {
		return order.Pricing{}, err
	}

	total, err := kernel.NewMoneyFromCents(dto.TotalCents)
	if err != nil {
		return order.Pricing{}, err
	}

	return order.Pricing{
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: deliveryFee,
		Total:       total,
	}, nil
}
