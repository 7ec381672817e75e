package http

import (
	"errors"
	"net/http"

	"foodsewa/internal/core/application/usecases/commands"
	"foodsewa/internal/core/domain/model/cart"
	"foodsewa/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform JSON response body. Successful responses carry
// data, failed ones carry a message.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respondOK(ctx echo.Context, data any) error {
	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondCreated(ctx echo.Context, data any) error {
	return ctx.JSON(http.StatusCreated, envelope{Success: true, Data: data})
}

func respondFailure(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, envelope{Success: false, Message: message})
}

// respondError maps an application error onto an HTTP status. Validation and
// business rule violations are client errors; anything unrecognized is a 500
// with a generic message so internals do not leak.
func respondError(ctx echo.Context, err error) error {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		return respondFailure(ctx, status, "internal server error")
	}
	return respondFailure(ctx, status, err.Error())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case isBusinessRuleViolation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func isBusinessRuleViolation(err error) bool {
	for _, rule := range []error{
		cart.ErrCartRestaurantConflict,
		commands.ErrRestaurantNotAcceptingOrders,
		commands.ErrMenuItemUnavailable,
		commands.ErrCartIsEmpty,
		commands.ErrCartItemsUnavailable,
		commands.ErrMinimumOrderNotMet,
		commands.ErrFavoriteNotActive,
	} {
		if errors.Is(err, rule) {
			return true
		}
	}
	return false
}
