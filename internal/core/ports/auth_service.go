package ports

import (
	"context"

	"github.com/priorityparcel/portal-api/internal/core/domain"
)

// RegisterInput carries all data accepted on account creation.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Role      string // defaults to klant when empty
	FirstName string
	LastName  string
	Bedrijf   string
	Telefoon  string
	Adres     string
	Postcode  string
	Plaats    string
}

// AuthService implements account creation and credential-based login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the email/password pair and returns a signed token plus
	// the user record with a freshly stamped lastLogin. rememberMe extends
	// the token lifetime.
	Login(ctx context.Context, email, password string, rememberMe bool) (string, *domain.User, error)
	// CurrentUser resolves the user behind a verified token identity.
	CurrentUser(ctx context.Context, userID int) (*domain.User, error)
}
