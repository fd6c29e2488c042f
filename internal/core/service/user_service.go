package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bizportal/portal-api/internal/core/domain"
	"github.com/bizportal/portal-api/internal/core/ports"
)

// DirectoryService manages employee and client accounts.
type DirectoryService struct {
	users    ports.UserRepository
	projects ports.ProjectRepository
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewDirectoryService(
	users ports.UserRepository,
	projects ports.ProjectRepository,
	sessions ports.SessionStore,
	logger zerolog.Logger,
) *DirectoryService {
	return &DirectoryService{users: users, projects: projects, sessions: sessions, logger: logger}
}

// List returns every user with the given role. Password hashes stay on the
// domain type and are never serialized by the transport layer.
func (s *DirectoryService) List(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	users, err := s.users.ListByRoles(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create registers a new employee or client with access=active.
func (s *DirectoryService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Role != domain.RoleEmployee && in.Role != domain.RoleClient {
		return nil, fmt.Errorf("%w: role must be employee or client", domain.ErrValidation)
	}

	name := strings.TrimSpace(in.Name)
	email := domain.NormalizeEmail(in.Email)
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	case email == "":
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	case in.Password == "":
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	var profile domain.Profile
	switch in.Role {
	case domain.RoleEmployee:
		profile = domain.EmployeeProfile{
			Department: strings.TrimSpace(in.Department),
			Position:   strings.TrimSpace(in.Position),
			Skills:     domain.NormalizeSkills(in.Skills),
		}
	case domain.RoleClient:
		if err := in.CompanyDetails.Validate(); err != nil {
			return nil, err
		}
		profile = domain.ClientProfile{CompanyDetails: in.CompanyDetails}
	}

	if err := s.ensureEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Contact:      strings.TrimSpace(in.Contact),
		Role:         in.Role,
		Access:       domain.AccessActive,
		Profile:      profile,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

// Update merges the fields present in input into the user with the given id
// and role. The password is never touched.
func (s *DirectoryService) Update(ctx context.Context, id string, role domain.Role, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.findInRole(ctx, id, role)
	if err != nil {
		return nil, err
	}

	prevAccess := user.Access
	if err := s.apply(ctx, user, in); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	if user.Access != prevAccess {
		s.syncSessions(ctx, user)
	}

	s.logger.Info().Str("user_id", user.ID).Str("access", string(user.Access)).Msg("user updated")
	return user, nil
}

// Delete hard-deletes the user. Projects and timesheets that reference it
// are left as they are.
func (s *DirectoryService) Delete(ctx context.Context, id string, role domain.Role) error {
	if _, err := s.findInRole(ctx, id, role); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("delete user: %w", err)
	}

	if err := s.sessions.Revoke(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("failed to revoke sessions of deleted user")
	}

	s.logger.Info().Str("user_id", id).Str("role", string(role)).Msg("user deleted")
	return nil
}

// Profile returns the caller's own record with its project assignments.
func (s *DirectoryService) Profile(ctx context.Context, caller domain.Identity) (*ports.UserProfile, error) {
	user, err := s.findInRole(ctx, caller.ID, caller.Role)
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, user)
}

// UpdateProfile applies a self-service edit. Access changes are dropped.
func (s *DirectoryService) UpdateProfile(ctx context.Context, caller domain.Identity, in ports.UpdateUserInput) (*ports.UserProfile, error) {
	in.Access = nil

	user, err := s.findInRole(ctx, caller.ID, caller.Role)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, user, in); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("profile updated")
	return s.profile(ctx, user)
}

func (s *DirectoryService) profile(ctx context.Context, user *domain.User) (*ports.UserProfile, error) {
	var filter ports.ProjectFilter
	switch user.Role {
	case domain.RoleEmployee:
		filter.EmployeeID = user.ID
	case domain.RoleClient:
		filter.ClientID = user.ID
	default:
		return &ports.UserProfile{User: user, ProjectAssignments: []domain.ProjectRef{}}, nil
	}

	projects, err := s.projects.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("profile: list projects: %w", err)
	}
	refs := make([]domain.ProjectRef, 0, len(projects))
	for _, p := range projects {
		refs = append(refs, domain.ProjectRef{ID: p.ID, Name: p.Name, Status: p.Status})
	}
	return &ports.UserProfile{User: user, ProjectAssignments: refs}, nil
}

// findInRole loads a user and hides it when it belongs to another role.
func (s *DirectoryService) findInRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user.Role != role {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *DirectoryService) ensureEmailFree(ctx context.Context, email, ownerID string) error {
	existing, err := s.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check email: %w", err)
	case existing.ID != ownerID:
		return domain.ErrUserExists
	}
	return nil
}

// apply merges input into user in place, validating as it goes.
func (s *DirectoryService) apply(ctx context.Context, user *domain.User, in ports.UpdateUserInput) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
		}
		user.Name = name
	}
	if in.Email != nil {
		email := domain.NormalizeEmail(*in.Email)
		if email == "" {
			return fmt.Errorf("%w: email must not be empty", domain.ErrValidation)
		}
		if email != user.Email {
			if err := s.ensureEmailFree(ctx, email, user.ID); err != nil {
				return err
			}
			user.Email = email
		}
	}
	if in.Contact != nil {
		user.Contact = strings.TrimSpace(*in.Contact)
	}
	if in.Access != nil {
		if !in.Access.Valid() {
			return fmt.Errorf("%w: access must be active or inactive", domain.ErrValidation)
		}
		user.Access = *in.Access
	}

	switch user.Role {
	case domain.RoleEmployee:
		p, _ := user.Employee()
		if in.Department != nil {
			p.Department = strings.TrimSpace(*in.Department)
		}
		if in.Position != nil {
			p.Position = strings.TrimSpace(*in.Position)
		}
		if in.Skills != nil {
			p.Skills = domain.NormalizeSkills(in.Skills)
		}
		user.Profile = p
	case domain.RoleClient:
		if in.CompanyDetails != nil {
			if err := in.CompanyDetails.Validate(); err != nil {
				return err
			}
			user.Profile = domain.ClientProfile{CompanyDetails: *in.CompanyDetails}
		}
	}

	user.UpdatedAt = time.Now().UTC()
	return nil
}

// syncSessions revokes outstanding tokens when a user is deactivated.
// Reactivation needs nothing: tokens issued before the revocation stay
// rejected and new logins postdate it. Failures are logged; login is still
// gated by the stored access flag.
func (s *DirectoryService) syncSessions(ctx context.Context, user *domain.User) {
	if user.IsActive() {
		return
	}
	if err := s.sessions.Revoke(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to revoke sessions after deactivation")
	}
}
