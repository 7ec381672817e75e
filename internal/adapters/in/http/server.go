package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"foodsewa/internal/core/application/usecases/commands"
	"foodsewa/internal/core/application/usecases/queries"
	"foodsewa/internal/core/domain/model/favorite"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	AddCartItem        commands.AddCartItemCommandHandler
	UpdateCartItem     commands.UpdateCartItemQuantityCommandHandler
	RemoveCartItem     commands.RemoveCartItemCommandHandler
	ApplyCoupon        commands.ApplyCouponCommandHandler
	RemoveCoupon       commands.RemoveCouponCommandHandler
	ClearCart          commands.ClearCartCommandHandler
	Checkout           commands.CheckoutCommandHandler
	AddFavorite        commands.AddFavoriteCommandHandler
	RemoveFavorite     commands.RemoveFavoriteCommandHandler
	RemoveAllFavorites commands.RemoveAllFavoritesCommandHandler
	ChangeOrderStatus  commands.ChangeOrderStatusCommandHandler

	GetCart    queries.GetCartQueryHandler
	ListFavs   queries.ListFavoritesQueryHandler
	ListOrders queries.ListCustomerOrdersQueryHandler
}

// Server handles HTTP requests for the storefront API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server over the given use case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API under /api/v1. Everything except the health
// probe requires an authenticated customer.
func (s *Server) RegisterRoutes(e *echo.Echo, authenticate echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", authenticate)

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PUT("/cart/items/:index", s.UpdateCartItem)
	api.DELETE("/cart/items/:index", s.RemoveCartItem)
	api.POST("/cart/coupon", s.ApplyCoupon)
	api.DELETE("/cart/coupon", s.RemoveCoupon)
	api.DELETE("/cart", s.ClearCart)
	api.POST("/cart/checkout", s.Checkout)

	api.GET("/favorites", s.ListFavorites)
	api.POST("/favorites", s.AddFavorite)
	api.DELETE("/favorites", s.RemoveFavorites)

	api.GET("/orders", s.ListOrders)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetCart handles GET /api/v1/cart - returns the customer's cart.
// A customer without a cart gets an empty one rather than an error.
func (s *Server) GetCart(ctx echo.Context) error {
	customerID, err := customerIDFromContext(ctx)
	if err != nil {
		return respondFailure(ctx, http.StatusUnauthorized, err.Error())
	}

	query, err := queries.NewGetCartQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, toCartResponse(result))
}

// AddCartItem handles POST /api/v1/cart/items - adds a menu item to the cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	customerID, err := customerIDFromContext(ctx)
	if err != nil {
		return respondFailure(ctx, http.StatusUnauthorized, err.Error())
	}

	var request addCartItemRequest
	if err = ctx.Bind(&request); err != nil {
		return respondFailure(ctx, http.StatusBadRequest, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, "invalid restaurant_id")
	}

	menuItemID, err := kernel.UUIDFromString(request.MenuItemID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, "invalid menu_item_id")
	}

	cmd, err := commands.NewAddCartItemCommand(
		customerID, restaurantID, menuItemID,
		request.Quantity, request.Customizations, request.SpecialInstructions)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondCreated(ctx, nil)
}

// UpdateCartItem handles PUT /api/v1/cart/items/:index - changes a line quantity.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	customerID, err := customerIDFromContext(ctx)
	if err != nil {
		return respondFailure(ctx, http.StatusUnauthorized, err.Error())
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, "invalid item index")
	}

	var request updateCartItemRequest
	if err = ctx.Bind(&request); err != nil {
		return respondFailure(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateCartItemQuantityCommand(customerID, index, request.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, nil)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:index - removes a line item.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	customerID, err := customerIDFromContext(ctx)
	if err != nil {
		return respondFailure(ctx, http.StatusUnauthorized, err.Error())
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, "invalid item index")
	}

	cmd, err := commands.NewRemoveCartItemCommand(customerID, index)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, nil)
}

// ApplyCoupon handles POST /api/v1/cart/coupon - applies a coupon to the cart.
func (s *Server) ApplyCoupon(ctx echo.Context) error {
	customerID, err := customerIDFromContext(ctx)
	if err != nil {
		return respondFailure(ctx, http.StatusUnauthorized, err.Error())
	}

	var request applyCouponRequest
	if err = ctx.Bind(&request); err != nil {
		return respondFailure(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewApplyCouponCommand(customerID, request.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ApplyCoupon.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, nil)
}

// RemoveCoupon handles DELETE /api/v1/cart/coupon - removes the applied coupon.
func (s *Server) RemoveCoupon(ctx echo.Context) error {
	customerID, err := customerIDFromContext(ctx)
	if err != nil {
		return respondFailure(ctx, http.StatusUnauthorized, err.Error())
	}

	cmd, err := commands.NewRemoveCouponCommand(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveCoupon.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, nil)
}

// ClearCart handles DELETE /api/v1/cart - empties the customer's cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	customerID, err := customerIDFromContext(ctx)
	if err != nil {
		return respondFailure(ctx, http.StatusUnauthorized, err.Error())
	}

	cmd, err := commands.NewClearCartCommand(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, nil)
}

// Checkout handles POST /api/v1/cart/checkout - places an order from the cart.
func (s *Server) Checkout(ctx echo.Context) error {
	customerID, err := customerIDFromContext(ctx)
	if err != nil {
		return respondFailure(ctx, http.StatusUnauthorized, err.Error())
	}

	cmd, err := commands.NewCheckoutCommand(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.handlers.Checkout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondCreated(ctx, checkoutResponse{OrderID: orderID.String()})
}

// ListFavorites handles GET /api/v1/favorites - lists active favorites with
// optional kind filter, pagination, and sort direction.
func (s *Server) ListFavorites(ctx echo.Context) error {
	customerID, err := customerIDFromContext(ctx)
	if err != nil {
		return respondFailure(ctx, http.StatusUnauthorized, err.Error())
	}

	kind := favorite.KindUnknown
	if kindParam := ctx.QueryParam("kind"); kindParam != "" {
		kind, err = favorite.KindFromString(kindParam)
		if err != nil {
			return respondFailure(ctx, http.StatusBadRequest, "invalid kind")
		}
	}

	page, err := queryParamInt(ctx, "page", 1)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, "invalid page")
	}

	pageSize, err := queryParamInt(ctx, "page_size", 0)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, "invalid page_size")
	}

	query, err := queries.NewListFavoritesQuery(customerID, kind, page, pageSize, ctx.QueryParam("sort"))
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.ListFavs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, toFavoritesPageResponse(result))
}

// AddFavorite handles POST /api/v1/favorites - favorites a restaurant or dish.
func (s *Server) AddFavorite(ctx echo.Context) error {
	customerID, err := customerIDFromContext(ctx)
	if err != nil {
		return respondFailure(ctx, http.StatusUnauthorized, err.Error())
	}

	var request addFavoriteRequest
	if err = ctx.Bind(&request); err != nil {
		return respondFailure(ctx, http.StatusBadRequest, "invalid request body")
	}

	restaurantID, kind, menuItemID, err := parseFavoriteKey(
		request.RestaurantID, request.Kind, request.MenuItemID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewAddFavoriteCommand(customerID, restaurantID, kind, menuItemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AddFavorite.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondCreated(ctx, nil)
}

// RemoveFavorites handles DELETE /api/v1/favorites - removes one favorite by
// its key, or all of the customer's favorites when the body says {"all":true}.
func (s *Server) RemoveFavorites(ctx echo.Context) error {
	customerID, err := customerIDFromContext(ctx)
	if err != nil {
		return respondFailure(ctx, http.StatusUnauthorized, err.Error())
	}

	var request removeFavoriteRequest
	if err = ctx.Bind(&request); err != nil {
		return respondFailure(ctx, http.StatusBadRequest, "invalid request body")
	}

	if request.All {
		cmd, cmdErr := commands.NewRemoveAllFavoritesCommand(customerID)
		if cmdErr != nil {
			return respondError(ctx, cmdErr)
		}
		if err = s.handlers.RemoveAllFavorites.Handle(ctx.Request().Context(), cmd); err != nil {
			return respondError(ctx, err)
		}
		return respondOK(ctx, nil)
	}

	restaurantID, kind, menuItemID, err := parseFavoriteKey(
		request.RestaurantID, request.Kind, request.MenuItemID)
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewRemoveFavoriteCommand(customerID, restaurantID, kind, menuItemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveFavorite.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, nil)
}

// ListOrders handles GET /api/v1/orders - lists the customer's order history.
func (s *Server) ListOrders(ctx echo.Context) error {
	customerID, err := customerIDFromContext(ctx)
	if err != nil {
		return respondFailure(ctx, http.StatusUnauthorized, err.Error())
	}

	var statuses []order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		for _, value := range strings.Split(raw, ",") {
			status, parseErr := order.StatusFromString(strings.TrimSpace(value))
			if parseErr != nil {
				return respondError(ctx, parseErr)
			}
			statuses = append(statuses, status)
		}
	}

	query, err := queries.NewListCustomerOrdersQuery(customerID, statuses)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, toOrderSummaryResponses(result))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - advances or
// cancels an order.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	if _, err := customerIDFromContext(ctx); err != nil {
		return respondFailure(ctx, http.StatusUnauthorized, err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondFailure(ctx, http.StatusBadRequest, "invalid order id")
	}

	var request changeOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return respondFailure(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, commands.StatusAction(request.Action))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, nil)
}

// parseFavoriteKey converts the wire form of a favorite key into domain values.
func parseFavoriteKey(
	restaurantIDParam string, kindParam string, menuItemIDParam string,
) (kernel.UUID, favorite.Kind, *kernel.UUID, error) {
	restaurantID, err := kernel.UUIDFromString(restaurantIDParam)
	if err != nil {
		return kernel.UUID{}, favorite.KindUnknown, nil, fmt.Errorf("invalid restaurant_id")
	}

	kind, err := favorite.KindFromString(kindParam)
	if err != nil {
		return kernel.UUID{}, favorite.KindUnknown, nil, fmt.Errorf("invalid kind")
	}

	var menuItemID *kernel.UUID
	if menuItemIDParam != "" {
		parsed, parseErr := kernel.UUIDFromString(menuItemIDParam)
		if parseErr != nil {
			return kernel.UUID{}, favorite.KindUnknown, nil, fmt.Errorf("invalid menu_item_id")
		}
		menuItemID = &parsed
	}

	return restaurantID, kind, menuItemID, nil
}

// queryParamInt parses an optional integer query parameter.
func queryParamInt(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
