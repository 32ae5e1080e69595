// Package memory provides the in-memory backing store: per-entity maps
// guarded by RWMutexes, auto-incrementing integer ids, and copy-on-write
// mutations. State is process-local and lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/priorityparcel/portal-api/internal/core/domain"
)

// UserRepository implements ports.UserRepository on a process-local map.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int]*domain.User
	nextID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	if u.LastLogin != nil {
		t := *u.LastLogin
		clone.LastLogin = &t
	}
	return &clone
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}

	stored := cloneUser(user)
	stored.ID = r.nextID
	r.nextID++

	now := time.Now().UTC()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = now
	}

	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *UserRepository) FindByID(_ context.Context, id int) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

// UpdateLastLogin replaces the stored record with a copy carrying a fresh
// lastLogin and updatedAt.
func (r *UserRepository) UpdateLastLogin(_ context.Context, id int) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now().UTC()
	updated := cloneUser(u)
	updated.LastLogin = &now
	updated.UpdatedAt = now

	r.users[id] = updated
	return cloneUser(updated), nil
}
