package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/priorityparcel/portal-api/internal/core/domain"
	"github.com/priorityparcel/portal-api/internal/core/ports"
)

// AuthService implements registration and credential-based login.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := input.Role
	if role == "" {
		role = domain.RoleKlant
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Bedrijf:      input.Bedrijf,
		Telefoon:     input.Telefoon,
		Adres:        input.Adres,
		Postcode:     input.Postcode,
		Plaats:       input.Plaats,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and returns a signed token plus the user
// with a freshly stamped lastLogin. An unknown email and a wrong password
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string, rememberMe bool) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user, rememberMe)
	if err != nil {
		return "", nil, err
	}

	updated, err := s.repo.UpdateLastLogin(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int("user_id", user.ID).Msg("login successful")
	return token, updated, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID int) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthService) generateToken(user *domain.User, rememberMe bool) (string, error) {
	ttl := s.tokenTTL
	if rememberMe {
		ttl *= 2
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
