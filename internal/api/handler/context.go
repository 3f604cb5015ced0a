package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnector/devconnector-api/internal/api/middleware"
)

// currentUserID returns the ID injected by the Auth middleware. An empty value
// means the route was mounted without the guard, which is rejected with 401.
func currentUserID(c echo.Context) (string, error) {
	id := middleware.UserID(c)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "No token, authorization denied")
	}
	return id, nil
}

// bindAndValidate decodes the request body into req and runs the registered
// validator over it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	return c.Validate(req)
}
