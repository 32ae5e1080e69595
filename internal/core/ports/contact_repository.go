package ports

import (
	"context"

	"github.com/priorityparcel/portal-api/internal/core/domain"
)

// ContactRepository defines persistence operations for contact messages.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	FindByID(ctx context.Context, id int) (*domain.ContactMessage, error)
	// List returns all messages ordered newest-first by createdAt.
	List(ctx context.Context) ([]*domain.ContactMessage, error)
	// MarkBeantwoord sets the answered flag. Idempotent.
	MarkBeantwoord(ctx context.Context, id int) (*domain.ContactMessage, error)
}
