package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/priorityparcel/portal-api/internal/core/ports"
)

// ZendingHandler serves the zending read endpoints: the authenticated
// list/detail views, the public track-and-trace lookup, and the
// dashboard aggregates.
type ZendingHandler struct {
	service ports.ZendingService
}

func NewZendingHandler(service ports.ZendingService) *ZendingHandler {
	return &ZendingHandler{service: service}
}

// List handles GET /api/zendingen. Admins may pass ?userId= to scope the
// list to a single customer; other roles always see their own zendingen.
//
// @Summary      List zendingen for the authenticated user
// @Tags         zendingen
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query     int  false  "Scope to this user id (admin only)"
// @Success      200     {array}   domain.Zending
// @Failure      401     {object}  map[string]string
// @Router       /api/zendingen [get]
func (h *ZendingHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	requestedUserID := 0
	if raw := c.QueryParam("userId"); raw != "" {
		requestedUserID, err = strconv.Atoi(raw)
		if err != nil || requestedUserID <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid userId")
		}
	}

	zendingen, err := h.service.List(c.Request().Context(), ports.ListZendingenInput{
		Identity:        identity,
		RequestedUserID: requestedUserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, zendingen)
}

// Get handles GET /api/zendingen/:id.
//
// @Summary      Get a zending by id
// @Tags         zendingen
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Zending id"
// @Success      200  {object}  domain.Zending
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/zendingen/{id} [get]
func (h *ZendingHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	zending, err := h.service.Get(c.Request().Context(), identity, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, zending)
}

// Track handles GET /api/track/:trackingCode. It is public and returns a
// reduced projection without addresses or pricing.
//
// @Summary      Track a zending by tracking code
// @Tags         zendingen
// @Produce      json
// @Param        trackingCode  path      string  true  "Tracking code"
// @Success      200           {object}  ports.TrackingView
// @Failure      404           {object}  map[string]string
// @Router       /api/track/{trackingCode} [get]
func (h *ZendingHandler) Track(c echo.Context) error {
	code := strings.TrimSpace(c.Param("trackingCode"))
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tracking code")
	}

	view, err := h.service.Track(c.Request().Context(), code)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Stats handles GET /api/dashboard/stats.
//
// @Summary      Dashboard aggregates over all zendingen
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  map[string]string
// @Router       /api/dashboard/stats [get]
func (h *ZendingHandler) Stats(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
