package ports

import (
	"context"
	"time"

	"github.com/priorityparcel/portal-api/internal/core/domain"
)

// Identity is the verified caller identity extracted from the bearer token.
type Identity struct {
	UserID int
	Role   string
}

// ListZendingenInput carries the parameters for the list endpoint.
// RequestedUserID is honored for admins only; other roles are always
// scoped to their own user id.
type ListZendingenInput struct {
	Identity        Identity
	RequestedUserID int // 0 = caller's own (admin: all users)
}

// TrackingView is the public track-and-trace projection of a zending.
// It deliberately omits addresses, price, and the owning user.
type TrackingView struct {
	TrackingCode         string               `json:"trackingCode"`
	Status               domain.ZendingStatus `json:"status"`
	GeplandeAfleverDatum time.Time            `json:"geplandeAfleverDatum"`
	LaatsteUpdate        domain.LaatsteUpdate `json:"lastUpdate"`
}

// DashboardStats is the aggregate view backing the dashboard.
type DashboardStats struct {
	TotaalZendingen         int    `json:"totaalZendingen"`
	ActieveZendingen        int    `json:"actieveZendingen"`
	Afgeleverd              int    `json:"afgeleverd"`
	GemiddeldeLeveringstijd string `json:"gemiddeldeLeveringstijd"`
	Klanttevredenheid       string `json:"klanttevredenheid"`
}

// ZendingService defines the read operations over zendingen.
type ZendingService interface {
	List(ctx context.Context, input ListZendingenInput) ([]*domain.Zending, error)
	Get(ctx context.Context, identity Identity, id int) (*domain.Zending, error)
	Track(ctx context.Context, trackingCode string) (*TrackingView, error)
	Stats(ctx context.Context) (*DashboardStats, error)
}
