package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/priorityparcel/portal-api/internal/api/metrics"
	"github.com/priorityparcel/portal-api/internal/core/domain"
	"github.com/priorityparcel/portal-api/internal/core/ports"
)

// OfferteService handles quote intake and the admin views on stored offertes.
type OfferteService struct {
	repo   ports.OfferteRepository
	logger zerolog.Logger
}

func NewOfferteService(repo ports.OfferteRepository, logger zerolog.Logger) *OfferteService {
	return &OfferteService{repo: repo, logger: logger}
}

// Submit stores the quote request with a price indication computed from the
// transport, weight, dimension, and urgency bands.
func (s *OfferteService) Submit(ctx context.Context, input ports.SubmitOfferteInput) (*domain.PrijsOfferte, error) {
	offerte := &domain.PrijsOfferte{
		TransportType:  input.TransportType,
		Gewicht:        input.Gewicht,
		Afmetingen:     input.Afmetingen,
		Spoed:          input.Spoed,
		Naam:           input.Naam,
		Bedrijf:        input.Bedrijf,
		Email:          input.Email,
		Telefoon:       input.Telefoon,
		Ophaladres:     input.Ophaladres,
		Afleveradres:   input.Afleveradres,
		Bericht:        input.Bericht,
		PrijsIndicatie: berekenPrijsIndicatie(input.TransportType, input.Gewicht, input.Afmetingen, input.Spoed),
		IPAddress:      input.IPAddress,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, offerte)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to store prijsofferte")
		return nil, err
	}

	metrics.OffertesTotal.WithLabelValues(input.TransportType).Inc()
	s.logger.Info().
		Int("offerte_id", created.ID).
		Str("transport_type", created.TransportType).
		Str("prijs_indicatie", created.PrijsIndicatie).
		Msg("prijsofferte stored")

	return created, nil
}

func (s *OfferteService) List(ctx context.Context) ([]*domain.PrijsOfferte, error) {
	return s.repo.List(ctx)
}

func (s *OfferteService) Get(ctx context.Context, id int) (*domain.PrijsOfferte, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OfferteService) MarkVerwerkt(ctx context.Context, id int) (*domain.PrijsOfferte, error) {
	offerte, err := s.repo.MarkVerwerkt(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("offerte_id", id).Msg("prijsofferte marked processed")
	return offerte, nil
}
