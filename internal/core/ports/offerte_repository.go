package ports

import (
	"context"

	"github.com/priorityparcel/portal-api/internal/core/domain"
)

// OfferteRepository defines persistence operations for price-quote requests.
type OfferteRepository interface {
	Create(ctx context.Context, offerte *domain.PrijsOfferte) (*domain.PrijsOfferte, error)
	FindByID(ctx context.Context, id int) (*domain.PrijsOfferte, error)
	// List returns all offertes ordered newest-first by createdAt.
	List(ctx context.Context) ([]*domain.PrijsOfferte, error)
	// MarkVerwerkt sets the processed flag. Idempotent.
	MarkVerwerkt(ctx context.Context, id int) (*domain.PrijsOfferte, error)
}
