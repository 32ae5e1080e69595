package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/priorityparcel/portal-api/internal/core/domain"
)

// OfferteRepository implements ports.OfferteRepository on a process-local map.
type OfferteRepository struct {
	mu       sync.RWMutex
	offertes map[int]*domain.PrijsOfferte
	nextID   int
}

func NewOfferteRepository() *OfferteRepository {
	return &OfferteRepository{offertes: make(map[int]*domain.PrijsOfferte), nextID: 1}
}

func (r *OfferteRepository) Create(_ context.Context, offerte *domain.PrijsOfferte) (*domain.PrijsOfferte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *offerte
	stored.ID = r.nextID
	r.nextID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	r.offertes[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *OfferteRepository) FindByID(_ context.Context, id int) (*domain.PrijsOfferte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.offertes[id]
	if !ok {
		return nil, domain.ErrOfferteNotFound
	}
	clone := *o
	return &clone, nil
}

// List returns all offertes ordered newest-first by createdAt.
func (r *OfferteRepository) List(_ context.Context) ([]*domain.PrijsOfferte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.PrijsOfferte, 0, len(r.offertes))
	for _, o := range r.offertes {
		clone := *o
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *OfferteRepository) MarkVerwerkt(_ context.Context, id int) (*domain.PrijsOfferte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.offertes[id]
	if !ok {
		return nil, domain.ErrOfferteNotFound
	}

	updated := *o
	updated.IsVerwerkt = true
	r.offertes[id] = &updated

	clone := updated
	return &clone, nil
}
