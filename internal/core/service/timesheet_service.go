package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bizportal/portal-api/internal/core/domain"
	"github.com/bizportal/portal-api/internal/core/ports"
)

type TimesheetService struct {
	repo     ports.TimesheetRepository
	projects ports.ProjectRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewTimesheetService(
	repo ports.TimesheetRepository,
	projects ports.ProjectRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *TimesheetService {
	return &TimesheetService{repo: repo, projects: projects, users: users, logger: logger}
}

// Submit records a new weekly entry with status submitted. Several entries
// for the same employee, project and week are kept as separate records.
func (s *TimesheetService) Submit(ctx context.Context, in ports.SubmitTimesheetInput) (*ports.TimesheetView, error) {
	switch {
	case in.EmployeeID == "":
		return nil, domain.ErrUnauthorized
	case in.ProjectID == "":
		return nil, fmt.Errorf("%w: projectId is required", domain.ErrValidation)
	case in.Week.IsZero():
		return nil, fmt.Errorf("%w: week is required", domain.ErrValidation)
	}
	if err := in.Hours.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.FindByID(ctx, in.ProjectID); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return nil, fmt.Errorf("%w: projectId does not reference a project", domain.ErrValidation)
		}
		return nil, fmt.Errorf("submit timesheet: %w", err)
	}
	if in.ManagerID != "" {
		if _, err := s.users.FindByID(ctx, in.ManagerID); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, fmt.Errorf("%w: managerId does not reference a user", domain.ErrValidation)
			}
			return nil, fmt.Errorf("submit timesheet: %w", err)
		}
	}

	now := time.Now().UTC()
	t := &domain.Timesheet{
		EmployeeID: in.EmployeeID,
		ProjectID:  in.ProjectID,
		ManagerID:  in.ManagerID,
		Week:       truncateToDay(in.Week),
		Hours:      in.Hours,
		Status:     domain.TimesheetSubmitted,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error().Err(err).Str("employee_id", in.EmployeeID).Msg("failed to create timesheet")
		return nil, fmt.Errorf("submit timesheet: %w", err)
	}

	s.logger.Info().
		Str("timesheet_id", t.ID).
		Str("employee_id", t.EmployeeID).
		Str("project_id", t.ProjectID).
		Int("hours", t.Hours.Total()).
		Msg("timesheet submitted")

	return s.resolveOne(ctx, t)
}

// ListForEmployee returns the employee's own timesheets, newest week first.
func (s *TimesheetService) ListForEmployee(ctx context.Context, employeeID string) ([]ports.TimesheetView, error) {
	if employeeID == "" {
		return nil, domain.ErrUnauthorized
	}
	sheets, err := s.repo.List(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list timesheets: %w", err)
	}
	owned := sheets[:0]
	for _, t := range sheets {
		if t.EmployeeID == employeeID {
			owned = append(owned, t)
		}
	}
	return s.resolve(ctx, owned)
}

// ListAll returns every timesheet for review, newest week first.
func (s *TimesheetService) ListAll(ctx context.Context) ([]ports.TimesheetView, error) {
	sheets, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list timesheets: %w", err)
	}
	return s.resolve(ctx, sheets)
}

// Update replaces the hours of one of the employee's own timesheets and
// resets it to submitted. Approved timesheets are immutable.
func (s *TimesheetService) Update(ctx context.Context, id, employeeID string, hours domain.Hours) (*ports.TimesheetView, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.EmployeeID != employeeID {
		return nil, domain.ErrTimesheetNotFound
	}
	if !t.Status.Editable() {
		return nil, fmt.Errorf("%w: cannot update approved timesheet", domain.ErrInvalidState)
	}
	if err := hours.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateHours(ctx, id, employeeID, hours, now); err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			return nil, fmt.Errorf("%w: cannot update approved timesheet", domain.ErrInvalidState)
		}
		if errors.Is(err, domain.ErrTimesheetNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update timesheet: %w", err)
	}

	t.Hours = hours
	t.Status = domain.TimesheetSubmitted
	t.UpdatedAt = now

	s.logger.Info().Str("timesheet_id", t.ID).Str("employee_id", employeeID).Msg("timesheet updated")
	return s.resolveOne(ctx, t)
}

// Review moves a timesheet along the reviewer transitions. Approved
// timesheets can not be moved again.
func (s *TimesheetService) Review(ctx context.Context, id string, status domain.TimesheetStatus) (*ports.TimesheetView, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be one of submitted, inProgress, approved", domain.ErrValidation)
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot move timesheet from %s to %s", domain.ErrInvalidState, t.Status, status)
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, id, t.Status, status, now); err != nil {
		if errors.Is(err, domain.ErrInvalidState) || errors.Is(err, domain.ErrTimesheetNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("review timesheet: %w", err)
	}

	s.logger.Info().Str("timesheet_id", id).Str("from", string(t.Status)).Str("to", string(status)).Msg("timesheet reviewed")
	t.Status = status
	t.UpdatedAt = now
	return s.resolveOne(ctx, t)
}

func (s *TimesheetService) resolveOne(ctx context.Context, t *domain.Timesheet) (*ports.TimesheetView, error) {
	views, err := s.resolve(ctx, []*domain.Timesheet{t})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// resolve attaches project, employee and manager summaries. A deleted project
// resolves to a reference carrying only its id.
func (s *TimesheetService) resolve(ctx context.Context, sheets []*domain.Timesheet) ([]ports.TimesheetView, error) {
	views := make([]ports.TimesheetView, 0, len(sheets))
	if len(sheets) == 0 {
		return views, nil
	}

	var userIDs, projectIDs []string
	for _, t := range sheets {
		userIDs = append(userIDs, t.EmployeeID, t.ManagerID)
		projectIDs = append(projectIDs, t.ProjectID)
	}

	users, err := lookupUsers(ctx, s.users, userIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve timesheets: %w", err)
	}
	projects, err := s.projects.FindByIDs(ctx, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve timesheets: %w", err)
	}
	refs := make(map[string]domain.ProjectRef, len(projects))
	for _, p := range projects {
		refs[p.ID] = domain.ProjectRef{ID: p.ID, Name: p.Name, Status: p.Status}
	}

	for _, t := range sheets {
		ref, ok := refs[t.ProjectID]
		if !ok {
			ref = domain.ProjectRef{ID: t.ProjectID}
		}
		view := ports.TimesheetView{
			Timesheet: t,
			Project:   ref,
			Employee:  users.summary(t.EmployeeID),
		}
		if t.ManagerID != "" {
			m := users.summary(t.ManagerID)
			view.Manager = &m
		}
		views = append(views, view)
	}
	return views, nil
}

// truncateToDay truncates a timestamp to midnight UTC of the same day.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
