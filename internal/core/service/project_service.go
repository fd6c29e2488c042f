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

type ProjectService struct {
	repo   ports.ProjectRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, users ports.UserRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, users: users, logger: logger}
}

// List returns every project, newest first, with client and team resolved.
func (s *ProjectService) List(ctx context.Context) ([]ports.ProjectView, error) {
	projects, err := s.repo.List(ctx, ports.ProjectFilter{})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return s.resolve(ctx, projects)
}

// ListForClient returns only the projects owned by clientID.
func (s *ProjectService) ListForClient(ctx context.Context, clientID string) ([]ports.ProjectView, error) {
	projects, err := s.repo.List(ctx, ports.ProjectFilter{ClientID: clientID})
	if err != nil {
		return nil, fmt.Errorf("list client projects: %w", err)
	}
	owned := projects[:0]
	for _, p := range projects {
		if p.ClientID == clientID {
			owned = append(owned, p)
		}
	}
	return s.resolve(ctx, owned)
}

// ListForEmployee returns only the projects whose team includes employeeID.
func (s *ProjectService) ListForEmployee(ctx context.Context, employeeID string) ([]ports.ProjectView, error) {
	projects, err := s.repo.List(ctx, ports.ProjectFilter{EmployeeID: employeeID})
	if err != nil {
		return nil, fmt.Errorf("list employee projects: %w", err)
	}
	assigned := projects[:0]
	for _, p := range projects {
		if p.HasEmployee(employeeID) {
			assigned = append(assigned, p)
		}
	}
	return s.resolve(ctx, assigned)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*ports.ProjectView, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolveOne(ctx, p)
}

// Create stores a new ongoing project. Assignments that do not resolve to an
// existing employee are dropped.
func (s *ProjectService) Create(ctx context.Context, in ports.CreateProjectInput) (*ports.ProjectView, error) {
	if err := s.checkClient(ctx, in.ClientID); err != nil {
		return nil, err
	}

	team, err := s.resolveTeam(ctx, in.AssignedEmployees)
	if err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now().UTC()
	p := &domain.Project{
		Name:              strings.TrimSpace(in.Name),
		Description:       strings.TrimSpace(in.Description),
		ClientID:          in.ClientID,
		AssignedEmployees: team,
		Timeline: domain.Timeline{
			StartDate:  in.StartDate,
			EndDate:    in.EndDate,
			Milestones: toMilestones(in.Milestones),
		},
		Status:    domain.ProjectOngoing,
		Budget:    in.Budget,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.logger.Info().Str("project_id", p.ID).Str("client_id", p.ClientID).Int("team", len(team)).Msg("project created")
	return s.resolveOne(ctx, p)
}

// Update merges the fields present in input. Status may move between any
// two values.
func (s *ProjectService) Update(ctx context.Context, id string, in ports.UpdateProjectInput) (*ports.ProjectView, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.ClientID != nil && *in.ClientID != p.ClientID {
		if err := s.checkClient(ctx, *in.ClientID); err != nil {
			return nil, err
		}
		p.ClientID = *in.ClientID
	}
	if in.AssignedEmployees != nil {
		team, err := s.resolveTeam(ctx, *in.AssignedEmployees)
		if err != nil {
			return nil, err
		}
		p.AssignedEmployees = team
	}
	if in.StartDate != nil {
		p.Timeline.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		p.Timeline.EndDate = *in.EndDate
	}
	if in.Milestones != nil {
		p.Timeline.Milestones = toMilestones(*in.Milestones)
	}
	if in.Budget != nil {
		p.Budget = *in.Budget
	}
	if in.Priority != nil {
		p.Priority = *in.Priority
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.logger.Info().Str("project_id", p.ID).Str("status", string(p.Status)).Msg("project updated")
	return s.resolveOne(ctx, p)
}

// Delete removes the project. Assignments are derived from project state, so
// no user record needs cleanup; timesheets keep their historical reference.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return err
		}
		return fmt.Errorf("delete project: %w", err)
	}
	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

// Stats aggregates the current project set on every call.
func (s *ProjectService) Stats(ctx context.Context) (*domain.ProjectStats, error) {
	counts, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("project stats: %w", err)
	}
	stats := domain.NewProjectStats(counts.ByStatus, counts.ByPriority)
	return &stats, nil
}

func (s *ProjectService) checkClient(ctx context.Context, clientID string) error {
	if clientID == "" {
		return fmt.Errorf("%w: clientId is required", domain.ErrValidation)
	}
	client, err := s.users.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("%w: clientId does not reference a client", domain.ErrValidation)
		}
		return fmt.Errorf("check client: %w", err)
	}
	if client.Role != domain.RoleClient {
		return fmt.Errorf("%w: clientId does not reference a client", domain.ErrValidation)
	}
	return nil
}

// resolveTeam normalizes assignments and keeps those naming an existing employee.
func (s *ProjectService) resolveTeam(ctx context.Context, in []ports.AssignmentInput) ([]domain.Assignment, error) {
	raw := make([]domain.Assignment, 0, len(in))
	for _, a := range in {
		raw = append(raw, domain.Assignment{EmployeeID: a.EmployeeID, Role: a.Role})
	}
	team := domain.NormalizeAssignments(raw)
	if len(team) == 0 {
		return team, nil
	}

	ids := make([]string, 0, len(team))
	for _, a := range team {
		ids = append(ids, a.EmployeeID)
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve team: %w", err)
	}
	employees := make(map[string]struct{}, len(users))
	for _, u := range users {
		if u.Role == domain.RoleEmployee {
			employees[u.ID] = struct{}{}
		}
	}

	resolved := team[:0]
	for _, a := range team {
		if _, ok := employees[a.EmployeeID]; ok {
			resolved = append(resolved, a)
		} else {
			s.logger.Debug().Str("employee_id", a.EmployeeID).Msg("dropping unresolvable assignment")
		}
	}
	return resolved, nil
}

func (s *ProjectService) resolveOne(ctx context.Context, p *domain.Project) (*ports.ProjectView, error) {
	views, err := s.resolve(ctx, []*domain.Project{p})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// resolve loads every referenced user in one query. Dangling references
// resolve to a summary carrying only the id.
func (s *ProjectService) resolve(ctx context.Context, projects []*domain.Project) ([]ports.ProjectView, error) {
	views := make([]ports.ProjectView, 0, len(projects))
	if len(projects) == 0 {
		return views, nil
	}

	var ids []string
	for _, p := range projects {
		ids = append(ids, p.ClientID)
		for _, a := range p.AssignedEmployees {
			ids = append(ids, a.EmployeeID)
		}
	}
	users, err := lookupUsers(ctx, s.users, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve projects: %w", err)
	}

	for _, p := range projects {
		view := ports.ProjectView{
			Project: p,
			Client:  users.summary(p.ClientID),
			Team:    make([]ports.AssignmentView, 0, len(p.AssignedEmployees)),
		}
		for _, a := range p.AssignedEmployees {
			view.Team = append(view.Team, ports.AssignmentView{Employee: users.summary(a.EmployeeID), Role: a.Role})
		}
		views = append(views, view)
	}
	return views, nil
}

func toMilestones(in []ports.MilestoneInput) []domain.Milestone {
	out := make([]domain.Milestone, 0, len(in))
	for _, m := range in {
		status := m.Status
		if status == "" {
			status = domain.MilestonePending
		}
		out = append(out, domain.Milestone{Name: strings.TrimSpace(m.Name), DueDate: m.DueDate, Status: status})
	}
	return out
}
