package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/priorityparcel/portal-api/internal/core/domain"
	"github.com/priorityparcel/portal-api/internal/core/ports"
)

// klanttevredenheid is a static demo figure; there is no review pipeline.
const klanttevredenheid = "4.8 / 5"

// StatsCache abstracts the dashboard-stats cache (Redis). A nil cache
// disables caching.
type StatsCache interface {
	Get(ctx context.Context) (*ports.DashboardStats, bool)
	Set(ctx context.Context, stats *ports.DashboardStats)
}

// ZendingService implements the read operations over zendingen.
type ZendingService struct {
	repo   ports.ZendingRepository
	cache  StatsCache
	logger zerolog.Logger
}

func NewZendingService(repo ports.ZendingRepository, cache StatsCache, logger zerolog.Logger) *ZendingService {
	return &ZendingService{repo: repo, cache: cache, logger: logger}
}

// List returns zendingen scoped to the caller's identity. Non-admin callers
// always see their own zendingen, regardless of the requested user id.
func (s *ZendingService) List(ctx context.Context, input ports.ListZendingenInput) ([]*domain.Zending, error) {
	if input.Identity.Role != domain.RoleAdmin {
		return s.repo.ListByUser(ctx, input.Identity.UserID)
	}
	if input.RequestedUserID > 0 {
		return s.repo.ListByUser(ctx, input.RequestedUserID)
	}
	return s.repo.List(ctx)
}

// Get returns one zending. A klant may only access their own.
func (s *ZendingService) Get(ctx context.Context, identity ports.Identity, id int) (*domain.Zending, error) {
	z, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if identity.Role == domain.RoleKlant && z.UserID != identity.UserID {
		return nil, domain.ErrForbidden
	}
	return z, nil
}

// Track returns the public tracking projection for a tracking code.
func (s *ZendingService) Track(ctx context.Context, trackingCode string) (*ports.TrackingView, error) {
	z, err := s.repo.FindByTrackingCode(ctx, trackingCode)
	if err != nil {
		return nil, err
	}
	return &ports.TrackingView{
		TrackingCode:         z.TrackingCode,
		Status:               z.Status,
		GeplandeAfleverDatum: z.GeplandeAfleverDatum,
		LaatsteUpdate:        z.LaatsteUpdate,
	}, nil
}

// Stats computes the dashboard aggregates, serving from the cache when one
// is configured and fresh.
func (s *ZendingService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	raw, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.DashboardStats{
		TotaalZendingen:         raw.Totaal,
		ActieveZendingen:        raw.Actief,
		Afgeleverd:              raw.Afgeleverd,
		GemiddeldeLeveringstijd: fmt.Sprintf("%.1f dagen", raw.GemiddeldeLeverDays),
		Klanttevredenheid:       klanttevredenheid,
	}

	if s.cache != nil {
		s.cache.Set(ctx, stats)
	}
	return stats, nil
}
