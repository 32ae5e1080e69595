package ports

import (
	"context"

	"github.com/priorityparcel/portal-api/internal/core/domain"
)

// SubmitContactInput carries a validated contact-form submission.
type SubmitContactInput struct {
	Name      string
	Email     string
	Phone     string
	Location  string
	Message   string
	IPAddress string
}

// ContactService handles contact-form intake and the admin views on it.
type ContactService interface {
	Submit(ctx context.Context, input SubmitContactInput) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]*domain.ContactMessage, error)
	Get(ctx context.Context, id int) (*domain.ContactMessage, error)
	MarkBeantwoord(ctx context.Context, id int) (*domain.ContactMessage, error)
}
