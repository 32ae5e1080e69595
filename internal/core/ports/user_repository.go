package ports

import (
	"context"

	"github.com/priorityparcel/portal-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Implementations assign monotonically increasing integer ids and never
// hand out references to stored records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateLastLogin replaces the stored record with a copy carrying a new
	// lastLogin and updatedAt. Returns domain.ErrUserNotFound for unknown ids.
	UpdateLastLogin(ctx context.Context, id int) (*domain.User, error)
}
