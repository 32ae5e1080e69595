package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/priorityparcel/portal-api/internal/api/middleware"
	"github.com/priorityparcel/portal-api/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: both values must be present, which
// proves the middleware ran on this route.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	userID, _ := c.Get(middleware.CtxUserID).(int)
	role, _ := c.Get(middleware.CtxRole).(string)
	if userID <= 0 || role == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Identity{UserID: userID, Role: role}, nil
}
