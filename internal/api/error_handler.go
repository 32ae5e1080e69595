package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/priorityparcel/portal-api/internal/api/handler"
	"github.com/priorityparcel/portal-api/internal/core/domain"
	"github.com/priorityparcel/portal-api/pkg/logger"
)

type errorResponse struct {
	Message string               `json:"message"`
	Errors  []handler.FieldError `json:"errors,omitempty"`
}

// ErrorHandler translates errors bubbling out of handlers into JSON
// responses. Domain sentinels map to their HTTP status, validation
// failures render a per-field list, and everything else becomes an
// opaque 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	resp := errorResponse{Message: "internal server error"}

	var httpErr *echo.HTTPError
	var validationErr *handler.ValidationError

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		resp = errorResponse{Message: "Validation error", Errors: validationErr.Fields}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			resp.Message = msg
		} else {
			resp.Message = http.StatusText(status)
		}
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		resp.Message = "invalid credentials"
	case errors.Is(err, domain.ErrUserExists):
		status = http.StatusConflict
		resp.Message = err.Error()
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBerichtNotFound),
		errors.Is(err, domain.ErrOfferteNotFound),
		errors.Is(err, domain.ErrZendingNotFound):
		status = http.StatusNotFound
		resp.Message = err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
		resp.Message = "forbidden"
	case errors.Is(err, domain.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
		resp.Message = err.Error()
	default:
		log := logger.Get()
		log.Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")
	}

	if err := c.JSON(status, resp); err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("failed to write error response")
	}
}
