package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bizportal/portal-api/internal/core/domain"
	"github.com/bizportal/portal-api/internal/core/ports"
)

// AuthService implements login and the CEO bootstrap.
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

// Login fails with domain.ErrInvalidCredentials for an unknown email or a
// wrong password, and domain.ErrAccountInactive for a deactivated account.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if !user.IsActive() {
		s.logger.Info().Str("user_id", user.ID).Msg("login rejected for inactive account")
		return "", nil, domain.ErrAccountInactive
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("login: sign token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")
	return token, user, nil
}

// EnsureCEO creates the CEO account when no ceo-role record exists. An
// existing CEO is left untouched, whatever its email or password, so there is
// never more than one.
func (s *AuthService) EnsureCEO(ctx context.Context, email, password string) error {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return fmt.Errorf("ensure ceo: %w: email and password are required", domain.ErrValidation)
	}

	ceos, err := s.repo.ListByRoles(ctx, domain.RoleCEO)
	if err != nil {
		return fmt.Errorf("ensure ceo: %w", err)
	}
	if len(ceos) > 0 {
		if ceos[0].Email != email {
			s.logger.Warn().Str("user_id", ceos[0].ID).Msg("ceo account exists under another email, bootstrap skipped")
		}
		return nil
	}

	hash, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("ensure ceo: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:         "CEO",
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleCEO,
		Access:       domain.AccessActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// Another instance may have won the race to bootstrap. Otherwise the
		// email belongs to an employee or client and no CEO can be created.
		if errors.Is(err, domain.ErrUserExists) {
			if ceos, lerr := s.repo.ListByRoles(ctx, domain.RoleCEO); lerr == nil && len(ceos) > 0 {
				return nil
			}
			return fmt.Errorf("ensure ceo: email %s is taken by another role: %w", email, err)
		}
		return fmt.Errorf("ensure ceo: %w", err)
	}

	s.logger.Info().Str("user_id", created.ID).Msg("ceo account initialized")
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"role":  string(user.Role),
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
