package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/devconnector/devconnector-api/internal/core/ports"
)

const (
	// TokenHeader carries the bearer token issued at login or registration.
	TokenHeader = "x-auth-token"
	// UserIDKey is the echo context key holding the authenticated user's ID.
	UserIDKey = "user_id"
)

// Auth verifies the x-auth-token header and injects the user ID into context.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := strings.TrimSpace(c.Request().Header.Get(TokenHeader))
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token, authorization denied")
			}

			userID, err := verifier.VerifyToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user's ID, or "" outside the Auth middleware.
func UserID(c echo.Context) string {
	id, _ := c.Get(UserIDKey).(string)
	return id
}
