package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/priorityparcel/portal-api/internal/core/domain"
	"github.com/priorityparcel/portal-api/internal/core/ports"
)

// ZendingRepository implements ports.ZendingRepository on process-local maps.
type ZendingRepository struct {
	mu           sync.RWMutex
	zendingen    map[int]*domain.Zending
	byTracking   map[string]int
	updates      map[int]*domain.ZendingUpdate
	nextID       int
	nextUpdateID int
}

func NewZendingRepository() *ZendingRepository {
	return &ZendingRepository{
		zendingen:    make(map[int]*domain.Zending),
		byTracking:   make(map[string]int),
		updates:      make(map[int]*domain.ZendingUpdate),
		nextID:       1,
		nextUpdateID: 1,
	}
}

func cloneZending(z *domain.Zending) *domain.Zending {
	clone := *z
	if z.WerkelijkeAfleverDatum != nil {
		t := *z.WerkelijkeAfleverDatum
		clone.WerkelijkeAfleverDatum = &t
	}
	return &clone
}

func (r *ZendingRepository) Create(_ context.Context, z *domain.Zending) (*domain.Zending, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byTracking[z.TrackingCode]; exists {
		return nil, domain.ErrDuplicateZending
	}

	stored := cloneZending(z)
	stored.ID = r.nextID
	r.nextID++

	r.zendingen[stored.ID] = stored
	r.byTracking[stored.TrackingCode] = stored.ID
	return cloneZending(stored), nil
}

func (r *ZendingRepository) FindByID(_ context.Context, id int) (*domain.Zending, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	z, ok := r.zendingen[id]
	if !ok {
		return nil, domain.ErrZendingNotFound
	}
	return cloneZending(z), nil
}

func (r *ZendingRepository) FindByTrackingCode(_ context.Context, code string) (*domain.Zending, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byTracking[code]
	if !ok {
		return nil, domain.ErrZendingNotFound
	}
	return cloneZending(r.zendingen[id]), nil
}

// ListByUser returns the user's zendingen ordered by verzendDatum descending.
func (r *ZendingRepository) ListByUser(_ context.Context, userID int) ([]*domain.Zending, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Zending
	for _, z := range r.zendingen {
		if z.UserID == userID {
			out = append(out, cloneZending(z))
		}
	}
	sortZendingen(out)
	return out, nil
}

func (r *ZendingRepository) List(_ context.Context) ([]*domain.Zending, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Zending, 0, len(r.zendingen))
	for _, z := range r.zendingen {
		out = append(out, cloneZending(z))
	}
	sortZendingen(out)
	return out, nil
}

func sortZendingen(zs []*domain.Zending) {
	sort.Slice(zs, func(i, j int) bool {
		if zs[i].VerzendDatum.Equal(zs[j].VerzendDatum) {
			return zs[i].ID > zs[j].ID
		}
		return zs[i].VerzendDatum.After(zs[j].VerzendDatum)
	})
}

// ApplyUpdate atomically sets status and laatste_update on the zending,
// stamping werkelijkeAfleverDatum when the new status is afgeleverd.
func (r *ZendingRepository) ApplyUpdate(_ context.Context, trackingCode string, status domain.ZendingStatus, locatie string, ts time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byTracking[trackingCode]
	if !ok {
		return domain.ErrZendingNotFound
	}

	updated := cloneZending(r.zendingen[id])
	updated.Status = status
	updated.LaatsteUpdate = domain.LaatsteUpdate{Status: status, Locatie: locatie, Tijdstip: ts}
	if status == domain.StatusAfgeleverd {
		t := ts
		updated.WerkelijkeAfleverDatum = &t
	}

	r.zendingen[id] = updated
	return nil
}

func (r *ZendingRepository) InsertUpdate(_ context.Context, update *domain.ZendingUpdate) (*domain.ZendingUpdate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *update
	stored.ID = r.nextUpdateID
	r.nextUpdateID++
	if stored.Tijdstip.IsZero() {
		stored.Tijdstip = time.Now().UTC()
	}

	r.updates[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

// ListUpdates returns the audit entries for one zending, oldest first.
func (r *ZendingRepository) ListUpdates(_ context.Context, zendingID int) ([]*domain.ZendingUpdate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.ZendingUpdate
	for _, u := range r.updates {
		if u.ZendingID == zendingID {
			clone := *u
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tijdstip.Equal(out[j].Tijdstip) {
			return out[i].ID < out[j].ID
		}
		return out[i].Tijdstip.Before(out[j].Tijdstip)
	})
	return out, nil
}

// Stats scans all zendingen and returns the dashboard aggregates.
func (r *ZendingRepository) Stats(_ context.Context) (*ports.ZendingStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &ports.ZendingStats{Totaal: len(r.zendingen)}

	var totalDays float64
	var delivered int
	for _, z := range r.zendingen {
		if z.Status.IsActive() {
			stats.Actief++
		}
		if z.Status == domain.StatusAfgeleverd {
			stats.Afgeleverd++
			if z.WerkelijkeAfleverDatum != nil {
				delivered++
				totalDays += z.WerkelijkeAfleverDatum.Sub(z.VerzendDatum).Hours() / 24
			}
		}
	}
	if delivered > 0 {
		stats.GemiddeldeLeverDays = totalDays / float64(delivered)
	}
	return stats, nil
}
