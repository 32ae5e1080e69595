package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/priorityparcel/portal-api/internal/core/domain"
)

func TestUserRepository_Create_AssignsMonotonicIDs(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	a, err := repo.Create(ctx, &domain.User{Username: "a", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	b, err := repo.Create(ctx, &domain.User{Username: "b", Email: "b@example.com"})
	if err != nil {
		t.Fatalf("create b: %v", err)
	}
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", a.ID, b.ID)
	}
}

func TestUserRepository_Create_RejectsDuplicates(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &domain.User{Username: "a", Email: "a@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, &domain.User{Username: "a", Email: "other@example.com"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate username, got %v", err)
	}
	if _, err := repo.Create(ctx, &domain.User{Username: "other", Email: "a@example.com"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{Username: "a", Email: "a@example.com", Plaats: "Utrecht"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.Plaats = "Rotterdam"

	stored, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.Plaats != "Utrecht" {
		t.Fatalf("mutation of a returned record leaked into the store: %q", stored.Plaats)
	}
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, &domain.User{Username: "a", Email: "a@example.com"})
	if created.LastLogin != nil {
		t.Fatalf("expected nil lastLogin on a new user")
	}

	updated, err := repo.UpdateLastLogin(ctx, created.ID)
	if err != nil {
		t.Fatalf("update last login: %v", err)
	}
	if updated.LastLogin == nil {
		t.Fatalf("expected lastLogin to be stamped")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected updatedAt to advance")
	}

	if _, err := repo.UpdateLastLogin(ctx, 99999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_FindByEmailAndUsername(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_, _ = repo.Create(ctx, &domain.User{Username: "huso", Email: "huso@example.com"})

	byEmail, err := repo.FindByEmail(ctx, "huso@example.com")
	if err != nil || byEmail.Username != "huso" {
		t.Fatalf("find by email: %v, %+v", err, byEmail)
	}
	byName, err := repo.FindByUsername(ctx, "huso")
	if err != nil || byName.Email != "huso@example.com" {
		t.Fatalf("find by username: %v, %+v", err, byName)
	}
	if _, err := repo.FindByEmail(ctx, "ghost@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
