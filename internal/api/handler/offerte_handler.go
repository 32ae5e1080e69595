package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/tomasen/realip"

	"github.com/priorityparcel/portal-api/internal/core/ports"
)

// OfferteHandler handles price-quote submission and the admin views on it.
type OfferteHandler struct {
	service ports.OfferteService
}

func NewOfferteHandler(service ports.OfferteService) *OfferteHandler {
	return &OfferteHandler{service: service}
}

type offerteRequest struct {
	TransportType string `json:"transportType" validate:"required,oneof=nationaal internationaal"`
	Gewicht       string `json:"gewicht"       validate:"required,oneof=0-5 5-10 10-20 20-50 50+"`
	Afmetingen    string `json:"afmetingen"    validate:"required,oneof=klein middel groot extra-groot"`
	Spoed         string `json:"spoed"         validate:"required,oneof=standaard spoed extra-spoed"`
	Naam          string `json:"naam"          validate:"required,min=2,max=100"`
	Bedrijf       string `json:"bedrijf"       validate:"omitempty,max=200"`
	Email         string `json:"email"         validate:"required,email"`
	Telefoon      string `json:"telefoon"      validate:"required,max=30"`
	Ophaladres    string `json:"ophaladres"    validate:"required,max=300"`
	Afleveradres  string `json:"afleveradres"  validate:"required,max=300"`
	Bericht       string `json:"bericht"       validate:"omitempty,max=2000"`
}

type offerteCreatedResponse struct {
	ID             int    `json:"id"`
	PrijsIndicatie string `json:"prijsIndicatie"`
	Message        string `json:"message"`
}

// Submit handles POST /api/prijsofferte.
//
// @Summary      Submit a price-quote request
// @Tags         prijsofferte
// @Accept       json
// @Produce      json
// @Param        body  body      offerteRequest  true  "Quote request"
// @Success      201   {object}  offerteCreatedResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/prijsofferte [post]
func (h *OfferteHandler) Submit(c echo.Context) error {
	var req offerteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	offerte, err := h.service.Submit(c.Request().Context(), ports.SubmitOfferteInput{
		TransportType: req.TransportType,
		Gewicht:       req.Gewicht,
		Afmetingen:    req.Afmetingen,
		Spoed:         req.Spoed,
		Naam:          req.Naam,
		Bedrijf:       req.Bedrijf,
		Email:         req.Email,
		Telefoon:      req.Telefoon,
		Ophaladres:    req.Ophaladres,
		Afleveradres:  req.Afleveradres,
		Bericht:       req.Bericht,
		IPAddress:     realip.FromRequest(c.Request()),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, offerteCreatedResponse{
		ID:             offerte.ID,
		PrijsIndicatie: offerte.PrijsIndicatie,
		Message:        "Offerteaanvraag succesvol verzonden",
	})
}

// List handles GET /api/prijsofferte. Offertes come back newest first.
//
// @Summary      List price-quote requests
// @Tags         prijsofferte
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.PrijsOfferte
// @Failure      403  {object}  map[string]string
// @Router       /api/prijsofferte [get]
func (h *OfferteHandler) List(c echo.Context) error {
	offertes, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offertes)
}

// Get handles GET /api/prijsofferte/:id.
//
// @Summary      Get a price-quote request by id
// @Tags         prijsofferte
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Offerte id"
// @Success      200  {object}  domain.PrijsOfferte
// @Failure      404  {object}  map[string]string
// @Router       /api/prijsofferte/{id} [get]
func (h *OfferteHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	offerte, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offerte)
}

// MarkVerwerkt handles PATCH /api/prijsofferte/:id/verwerkt.
//
// @Summary      Mark a price-quote request as processed
// @Tags         prijsofferte
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Offerte id"
// @Success      200  {object}  domain.PrijsOfferte
// @Failure      404  {object}  map[string]string
// @Router       /api/prijsofferte/{id}/verwerkt [patch]
func (h *OfferteHandler) MarkVerwerkt(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	offerte, err := h.service.MarkVerwerkt(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offerte)
}
