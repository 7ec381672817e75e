package http

import (
	"time"

	"foodsewa/internal/core/application/usecases/queries"
)

// Request bodies.

type addCartItemRequest struct {
	RestaurantID        string   `json:"restaurant_id"`
	MenuItemID          string   `json:"menu_item_id"`
	Quantity            int      `json:"quantity"`
	Customizations      []string `json:"customizations"`
	SpecialInstructions string   `json:"special_instructions"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type applyCouponRequest struct {
	Code string `json:"code"`
}

type addFavoriteRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Kind         string `json:"kind"`
	MenuItemID   string `json:"menu_item_id,omitempty"`
}

// removeFavoriteRequest either names a single favorite by its key or asks
// for all of the customer's favorites to be removed.
type removeFavoriteRequest struct {
	All          bool   `json:"all,omitempty"`
	RestaurantID string `json:"restaurant_id,omitempty"`
	Kind         string `json:"kind,omitempty"`
	MenuItemID   string `json:"menu_item_id,omitempty"`
}

type changeOrderStatusRequest struct {
	Action string `json:"action"`
}

// Response bodies.

type cartItemResponse struct {
	MenuItemID          string   `json:"menu_item_id"`
	Name                string   `json:"name"`
	UnitPriceCents      int64    `json:"unit_price_cents"`
	ImageURL            string   `json:"image_url,omitempty"`
	Quantity            int      `json:"quantity"`
	Customizations      []string `json:"customizations,omitempty"`
	SpecialInstructions string   `json:"special_instructions,omitempty"`
	TotalCents          int64    `json:"total_cents"`
}

type cartResponse struct {
	CartID            string             `json:"cart_id,omitempty"`
	RestaurantID      string             `json:"restaurant_id,omitempty"`
	Items             []cartItemResponse `json:"items"`
	CouponCode        string             `json:"coupon_code,omitempty"`
	SubtotalCents     int64              `json:"subtotal_cents"`
	DiscountCents     int64              `json:"discount_cents"`
	DeliveryFeeCents  int64              `json:"delivery_fee_cents"`
	TotalCents        int64              `json:"total_cents"`
	MeetsMinimumOrder bool               `json:"meets_minimum_order"`
}

type checkoutResponse struct {
	OrderID string `json:"order_id"`
}

type favoriteResponse struct {
	ID             string    `json:"id"`
	RestaurantID   string    `json:"restaurant_id"`
	Kind           string    `json:"kind"`
	MenuItemID     string    `json:"menu_item_id,omitempty"`
	DishName       string    `json:"dish_name,omitempty"`
	DishPriceCents int64     `json:"dish_price_cents,omitempty"`
	DishImageURL   string    `json:"dish_image_url,omitempty"`
	AddedAt        time.Time `json:"added_at"`
}

type favoritesPageResponse struct {
	Favorites []favoriteResponse `json:"favorites"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

type orderSummaryResponse struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Status       string    `json:"status"`
	ItemCount    int       `json:"item_count"`
	TotalCents   int64     `json:"total_cents"`
	PlacedAt     time.Time `json:"placed_at"`
}

func toCartResponse(result queries.GetCartQueryResponse) cartResponse {
	items := make([]cartItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = cartItemResponse{
			MenuItemID:          item.MenuItemID.String(),
			Name:                item.Name,
			UnitPriceCents:      item.UnitPriceCents,
			ImageURL:            item.ImageURL,
			Quantity:            item.Quantity,
			Customizations:      item.Customizations,
			SpecialInstructions: item.SpecialInstructions,
			TotalCents:          item.TotalCents,
		}
	}

	response := cartResponse{
		Items:             items,
		CouponCode:        result.CouponCode,
		SubtotalCents:     result.SubtotalCents,
		DiscountCents:     result.DiscountCents,
		DeliveryFeeCents:  result.DeliveryFeeCents,
		TotalCents:        result.TotalCents,
		MeetsMinimumOrder: result.MeetsMinimumOrder,
	}
	if result.CartID != nil {
		response.CartID = result.CartID.String()
	}
	if result.RestaurantID != nil {
		response.RestaurantID = result.RestaurantID.String()
	}
	return response
}

func toFavoritesPageResponse(result queries.ListFavoritesQueryResponse) favoritesPageResponse {
	favorites := make([]favoriteResponse, len(result.Favorites))
	for i, item := range result.Favorites {
		favorites[i] = favoriteResponse{
			ID:             item.ID.String(),
			RestaurantID:   item.RestaurantID.String(),
			Kind:           item.Kind.String(),
			DishName:       item.DishName,
			DishPriceCents: item.DishPriceCents,
			DishImageURL:   item.DishImageURL,
			AddedAt:        item.AddedAt,
		}
		if item.MenuItemID != nil {
			favorites[i].MenuItemID = item.MenuItemID.String()
		}
	}

	return favoritesPageResponse{
		Favorites: favorites,
		Total:     result.Total,
		Page:      result.Page,
		PageSize:  result.PageSize,
	}
}

func toOrderSummaryResponses(results []queries.ListCustomerOrdersItemResponse) []orderSummaryResponse {
	orders := make([]orderSummaryResponse, len(results))
	for i, item := range results {
		orders[i] = orderSummaryResponse{
			ID:           item.ID.String(),
			RestaurantID: item.RestaurantID.String(),
			Status:       item.Status,
			ItemCount:    item.ItemCount,
			TotalCents:   item.TotalCents,
			PlacedAt:     item.PlacedAt,
		}
	}
	return orders
}
