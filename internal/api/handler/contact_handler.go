package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/tomasen/realip"

	"github.com/priorityparcel/portal-api/internal/core/ports"
)

// ContactHandler handles contact-form submission and the admin views on it.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"omitempty,max=30"`
	Location string `json:"location" validate:"omitempty,max=100"`
	Message  string `json:"message"  validate:"required,min=10,max=2000"`
}

type createdResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
//
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact message"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.service.Submit(c.Request().Context(), ports.SubmitContactInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Location:  req.Location,
		Message:   req.Message,
		IPAddress: realip.FromRequest(c.Request()),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdResponse{
		ID:      msg.ID,
		Message: "Contactbericht succesvol verzonden",
	})
}

// List handles GET /api/contact. Messages come back newest first.
//
// @Summary      List contact messages
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ContactMessage
// @Failure      403  {object}  map[string]string
// @Router       /api/contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	messages, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// Get handles GET /api/contact/:id.
//
// @Summary      Get a contact message by id
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Message id"
// @Success      200  {object}  domain.ContactMessage
// @Failure      404  {object}  map[string]string
// @Router       /api/contact/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	msg, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

// MarkBeantwoord handles PATCH /api/contact/:id/beantwoord.
//
// @Summary      Mark a contact message as answered
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Message id"
// @Success      200  {object}  domain.ContactMessage
// @Failure      404  {object}  map[string]string
// @Router       /api/contact/{id}/beantwoord [patch]
func (h *ContactHandler) MarkBeantwoord(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	msg, err := h.service.MarkBeantwoord(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}
