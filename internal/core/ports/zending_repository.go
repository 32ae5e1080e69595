package ports

import (
	"context"
	"time"

	"github.com/priorityparcel/portal-api/internal/core/domain"
)

// ZendingStats are the storage-level dashboard aggregates, computed by
// scanning the zending collection.
type ZendingStats struct {
	Totaal              int
	Actief              int
	Afgeleverd          int
	GemiddeldeLeverDays float64
}

// ZendingRepository defines persistence operations for zendingen and their
// update audit trail.
type ZendingRepository interface {
	Create(ctx context.Context, z *domain.Zending) (*domain.Zending, error)
	FindByID(ctx context.Context, id int) (*domain.Zending, error)
	FindByTrackingCode(ctx context.Context, code string) (*domain.Zending, error)
	// ListByUser returns the user's zendingen ordered by verzendDatum descending.
	ListByUser(ctx context.Context, userID int) ([]*domain.Zending, error)
	// List returns all zendingen ordered by verzendDatum descending.
	List(ctx context.Context) ([]*domain.Zending, error)
	// ApplyUpdate atomically sets the zending's status and laatste_update,
	// stamping werkelijkeAfleverDatum when the new status is afgeleverd.
	ApplyUpdate(ctx context.Context, trackingCode string, status domain.ZendingStatus, locatie string, ts time.Time) error
	// InsertUpdate appends an entry to the zending update audit trail.
	InsertUpdate(ctx context.Context, update *domain.ZendingUpdate) (*domain.ZendingUpdate, error)
	// ListUpdates returns the audit entries for one zending, oldest first.
	ListUpdates(ctx context.Context, zendingID int) ([]*domain.ZendingUpdate, error)
	// Stats scans the collection and returns the dashboard aggregates.
	Stats(ctx context.Context) (*ZendingStats, error)
}
