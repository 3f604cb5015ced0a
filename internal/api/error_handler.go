package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devconnector/devconnector-api/internal/api/metrics"
	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// msgResponse is the single-message error envelope: {"msg": "..."}.
type msgResponse struct {
	Msg string `json:"msg"`
}

// errorsResponse is the field-error envelope: {"errors": [{"msg", "param"}]}.
type errorsResponse struct {
	Errors []domain.FieldError `json:"errors"`
}

// notFoundErrors all render as 404 with their own message.
var notFoundErrors = []error{
	domain.ErrUserNotFound,
	domain.ErrNoProfile,
	domain.ErrProfileNotFound,
	domain.ErrExperienceNotFound,
	domain.ErrEducationNotFound,
	domain.ErrPostNotFound,
	domain.ErrCommentNotFound,
	domain.ErrGitHubProfileNotFound,
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Renders validation and credential failures as {"errors": [...]}.
//   - Renders everything else as {"msg": "..."}.
//   - Logs unexpected errors without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		metrics.ErrorsTotal.WithLabelValues(fmt.Sprintf("%dxx", code/100)).Inc()

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	// Echo's own errors (bind failures, 404 from router, auth guard, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, msgResponse{Msg: fmt.Sprintf("%v", he.Message)}
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, errorsResponse{Errors: verr.Fields}
	}

	switch {
	case errors.Is(err, domain.ErrUserExists), errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, errorsResponse{Errors: []domain.FieldError{{Message: err.Error()}}}
	case errors.Is(err, domain.ErrAlreadyLiked), errors.Is(err, domain.ErrNotLiked):
		return http.StatusBadRequest, msgResponse{Msg: err.Error()}
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, msgResponse{Msg: err.Error()}
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusForbidden, msgResponse{Msg: err.Error()}
	case errors.Is(err, domain.ErrConcurrentUpdate), errors.Is(err, domain.ErrProfileExists),
		errors.Is(err, domain.ErrRequestInFlight):
		return http.StatusConflict, msgResponse{Msg: err.Error()}
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound, msgResponse{Msg: target.Error()}
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, msgResponse{Msg: "Server Error"}
}
