package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/priorityparcel/portal-api/internal/core/ports"
)

// Enqueuer hands an update off to the background pipeline.
type Enqueuer interface {
	Enqueue(update ports.ZendingUpdateInput)
}

// UpdateHandler accepts zending status updates and queues them for
// asynchronous processing.
type UpdateHandler struct {
	queue Enqueuer
}

func NewUpdateHandler(queue Enqueuer) *UpdateHandler {
	return &UpdateHandler{queue: queue}
}

type updateRequest struct {
	TrackingCode string `json:"trackingCode" validate:"required,min=5,max=30"`
	Status       string `json:"status"       validate:"required,oneof=gepland opgehaald onderweg afgeleverd vertraagd geannuleerd"`
	Locatie      string `json:"locatie"      validate:"required,max=200"`
	Opmerking    string `json:"opmerking"    validate:"omitempty,max=500"`
	Tijdstip     string `json:"tijdstip"     validate:"omitempty"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}

// Submit handles POST /api/zendingen/updates. The update is validated
// syntactically, queued, and processed asynchronously; domain checks such
// as status transitions happen in the pipeline.
//
// @Summary      Submit a zending status update
// @Tags         zendingen
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateRequest  true  "Status update"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/zendingen/updates [post]
func (h *UpdateHandler) Submit(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tijdstip := time.Now().UTC()
	if req.Tijdstip != "" {
		parsed, err := time.Parse(time.RFC3339, req.Tijdstip)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "tijdstip must be RFC 3339")
		}
		tijdstip = parsed.UTC()
	}

	h.queue.Enqueue(ports.ZendingUpdateInput{
		TrackingCode: req.TrackingCode,
		Status:       req.Status,
		Locatie:      req.Locatie,
		Opmerking:    req.Opmerking,
		DoorUserID:   identity.UserID,
		Tijdstip:     tijdstip,
	})

	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "Update geaccepteerd voor verwerking"})
}
