package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/priorityparcel/portal-api/internal/api/metrics"
	"github.com/priorityparcel/portal-api/internal/core/domain"
	"github.com/priorityparcel/portal-api/internal/core/ports"
)

// ContactService handles contact-form intake and the admin views on it.
type ContactService struct {
	repo   ports.ContactRepository
	logger zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

func (s *ContactService) Submit(ctx context.Context, input ports.SubmitContactInput) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Location:  input.Location,
		Message:   input.Message,
		IPAddress: input.IPAddress,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to store contact message")
		return nil, err
	}

	metrics.ContactMessagesTotal.Inc()
	s.logger.Info().Int("contact_id", created.ID).Msg("contact message stored")
	return created, nil
}

func (s *ContactService) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *ContactService) Get(ctx context.Context, id int) (*domain.ContactMessage, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ContactService) MarkBeantwoord(ctx context.Context, id int) (*domain.ContactMessage, error) {
	msg, err := s.repo.MarkBeantwoord(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("contact_id", id).Msg("contact message marked answered")
	return msg, nil
}
