package ports

import (
	"context"

	"github.com/bizportal/portal-api/internal/core/domain"
)

// CreateUserInput carries a new employee or client.
type CreateUserInput struct {
	Name           string
	Email          string
	Password       string
	Contact        string
	Role           domain.Role
	Department     string
	Position       string
	Skills         []string
	CompanyDetails domain.CompanyDetails
}

// UpdateUserInput is a partial update; nil fields are left untouched.
// Fields that do not belong to the user's role are ignored.
type UpdateUserInput struct {
	Name           *string
	Email          *string
	Contact        *string
	Access         *domain.Access
	Department     *string
	Position       *string
	Skills         []string
	CompanyDetails *domain.CompanyDetails
}

// UserProfile is a user together with the projects it is attached to,
// derived from project state at read time.
type UserProfile struct {
	User               *domain.User
	ProjectAssignments []domain.ProjectRef
}

// DirectoryService manages employees and clients. Every operation that takes
// a role is scoped to it: an id belonging to another role is not found.
type DirectoryService interface {
	List(ctx context.Context, role domain.Role) ([]*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, role domain.Role, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string, role domain.Role) error
	Profile(ctx context.Context, caller domain.Identity) (*UserProfile, error)
	// UpdateProfile lets callers edit their own record. Access can not be
	// changed this way.
	UpdateProfile(ctx context.Context, caller domain.Identity, input UpdateUserInput) (*UserProfile, error)
}
