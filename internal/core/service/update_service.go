package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/priorityparcel/portal-api/internal/api/metrics"
	"github.com/priorityparcel/portal-api/internal/core/domain"
	"github.com/priorityparcel/portal-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) for zending updates.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, trackingCode, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, trackingCode, status string, ts time.Time) error
}

type updateService struct {
	repo  ports.ZendingRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewUpdateService returns an UpdateService implementation.
func NewUpdateService(repo ports.ZendingRepository, dedup DedupChecker, log zerolog.Logger) ports.UpdateService {
	return &updateService{repo: repo, dedup: dedup, log: log}
}

// Process validates, deduplicates, and persists a single zending update.
func (s *updateService) Process(ctx context.Context, in ports.ZendingUpdateInput) error {
	start := time.Now()
	newStatus := domain.ZendingStatus(in.Status)

	// 1. Idempotency check: silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.TrackingCode, in.Status, in.Tijdstip)
	if err != nil {
		s.log.Warn().Err(err).Str("tracking_code", in.TrackingCode).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.UpdatesDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("tracking_code", in.TrackingCode).Str("status", in.Status).Msg("duplicate update skipped")
		return nil
	}
	metrics.UpdatesDedupTotal.WithLabelValues("miss").Inc()

	// 2. Find the zending.
	zending, err := s.repo.FindByTrackingCode(ctx, in.TrackingCode)
	if err != nil {
		metrics.UpdatesErrorsTotal.WithLabelValues("zending_not_found").Inc()
		return fmt.Errorf("process update: %w", err)
	}

	// 3. Validate the state machine transition.
	if !zending.Status.CanTransitionTo(newStatus) {
		metrics.UpdatesErrorsTotal.WithLabelValues("invalid_transition").Inc()
		return fmt.Errorf("process update: %w (from %s to %s)", domain.ErrInvalidTransition, zending.Status, newStatus)
	}

	// 4. Mark as processed before writing (prevents duplicate processing on retry).
	if markErr := s.dedup.Mark(ctx, in.TrackingCode, in.Status, in.Tijdstip); markErr != nil {
		s.log.Warn().Err(markErr).Str("tracking_code", in.TrackingCode).Msg("failed to set dedup key")
	}

	// 5. Atomically apply status + laatste_update.
	if err := s.repo.ApplyUpdate(ctx, in.TrackingCode, newStatus, in.Locatie, in.Tijdstip); err != nil {
		metrics.UpdatesErrorsTotal.WithLabelValues("apply_failed").Inc()
		return fmt.Errorf("process update: apply status: %w", err)
	}

	// 6. Append to the audit trail (non-fatal on failure).
	audit := &domain.ZendingUpdate{
		ZendingID:    zending.ID,
		TrackingCode: in.TrackingCode,
		Status:       newStatus,
		Locatie:      in.Locatie,
		Opmerking:    in.Opmerking,
		DoorUserID:   in.DoorUserID,
		Tijdstip:     in.Tijdstip,
	}
	if _, err := s.repo.InsertUpdate(ctx, audit); err != nil {
		s.log.Warn().Err(err).Str("tracking_code", in.TrackingCode).Msg("failed to insert audit update")
	}

	metrics.UpdatesProcessedTotal.WithLabelValues(in.Status).Inc()
	metrics.UpdateProcessingDuration.WithLabelValues(in.Status).Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("tracking_code", in.TrackingCode).
		Str("status", in.Status).
		Str("locatie", in.Locatie).
		Msg("zending update processed")

	return nil
}
