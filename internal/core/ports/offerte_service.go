package ports

import (
	"context"

	"github.com/priorityparcel/portal-api/internal/core/domain"
)

// SubmitOfferteInput carries a validated price-quote request.
type SubmitOfferteInput struct {
	TransportType string
	Gewicht       string
	Afmetingen    string
	Spoed         string
	Naam          string
	Bedrijf       string
	Email         string
	Telefoon      string
	Ophaladres    string
	Afleveradres  string
	Bericht       string
	IPAddress     string
}

// OfferteService handles quote intake (computing the price indication) and
// the admin views on stored offertes.
type OfferteService interface {
	Submit(ctx context.Context, input SubmitOfferteInput) (*domain.PrijsOfferte, error)
	List(ctx context.Context) ([]*domain.PrijsOfferte, error)
	Get(ctx context.Context, id int) (*domain.PrijsOfferte, error)
	MarkVerwerkt(ctx context.Context, id int) (*domain.PrijsOfferte, error)
}
