package ports

import (
	"context"

	"github.com/bizportal/portal-api/internal/core/domain"
)

type AuthService interface {
	// Login verifies credentials and returns a signed token and the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// EnsureCEO creates the administrative account when it does not exist.
	EnsureCEO(ctx context.Context, email, password string) error
}
