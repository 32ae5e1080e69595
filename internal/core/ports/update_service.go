package ports

import (
	"context"
	"time"
)

// ZendingUpdateInput is the DTO passed from the transport layer to the
// update pipeline.
type ZendingUpdateInput struct {
	TrackingCode string
	Status       string
	Locatie      string
	Opmerking    string
	DoorUserID   int
	Tijdstip     time.Time
}

// UpdateService processes zending status updates.
type UpdateService interface {
	Process(ctx context.Context, input ZendingUpdateInput) error
}
