package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/priorityparcel/portal-api/internal/core/domain"
)

// ContactRepository implements ports.ContactRepository on a process-local map.
type ContactRepository struct {
	mu       sync.RWMutex
	messages map[int]*domain.ContactMessage
	nextID   int
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{messages: make(map[int]*domain.ContactMessage), nextID: 1}
}

func (r *ContactRepository) Create(_ context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *msg
	stored.ID = r.nextID
	r.nextID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	r.messages[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *ContactRepository) FindByID(_ context.Context, id int) (*domain.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.messages[id]
	if !ok {
		return nil, domain.ErrBerichtNotFound
	}
	clone := *m
	return &clone, nil
}

// List returns all messages ordered newest-first by createdAt.
func (r *ContactRepository) List(_ context.Context) ([]*domain.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.ContactMessage, 0, len(r.messages))
	for _, m := range r.messages {
		clone := *m
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

func (r *ContactRepository) MarkBeantwoord(_ context.Context, id int) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.messages[id]
	if !ok {
		return nil, domain.ErrBerichtNotFound
	}

	updated := *m
	updated.IsBeantwoord = true
	r.messages[id] = &updated

	clone := updated
	return &clone, nil
}
