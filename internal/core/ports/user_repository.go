package ports

import (
	"context"
	"time"

	"github.com/bizportal/portal-api/internal/core/domain"
)

// UserRepository defines persistence operations for the single user collection.
type UserRepository interface {
	// Create inserts a new user and returns it with its assigned ID.
	// A duplicate email yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs resolves many references at once; unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	// ListByRoles returns users matching any of roles, ordered by name.
	ListByRoles(ctx context.Context, roles ...domain.Role) ([]*domain.User, error)
	// Update persists every mutable field except the password hash.
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// SessionStore records revocations. A revocation rejects every token issued
// up to that moment; tokens issued later are unaffected.
type SessionStore interface {
	Revoke(ctx context.Context, userID string) error
	IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error)
}
