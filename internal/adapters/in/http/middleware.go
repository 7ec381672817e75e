package http

import (
	"fmt"
	"net/http"
	"strings"

	"foodsewa/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// customerIDKey is the echo context key holding the authenticated customer's ID.
const customerIDKey = "customerID"

// RequireCustomer returns middleware that authenticates requests with an
// HS256 bearer token. The token's sub claim must be the customer's UUID; it
// is stored in the request context for handlers to pick up.
func RequireCustomer(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return respondFailure(ctx, http.StatusUnauthorized, "missing bearer token")
			}

			token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				return respondFailure(ctx, http.StatusUnauthorized, "invalid token")
			}

			subject, err := token.Claims.GetSubject()
			if err != nil {
				return respondFailure(ctx, http.StatusUnauthorized, "invalid token")
			}

			customerID, err := kernel.UUIDFromString(subject)
			if err != nil {
				return respondFailure(ctx, http.StatusUnauthorized, "invalid token subject")
			}

			ctx.Set(customerIDKey, customerID)
			return next(ctx)
		}
	}
}

// customerIDFromContext retrieves the customer ID stored by RequireCustomer.
func customerIDFromContext(ctx echo.Context) (kernel.UUID, error) {
	customerID, ok := ctx.Get(customerIDKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, fmt.Errorf("no authenticated customer in request context")
	}
	return customerID, nil
}
