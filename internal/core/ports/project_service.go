package ports

import (
	"context"
	"time"

	"github.com/bizportal/portal-api/internal/core/domain"
)

type AssignmentInput struct {
	EmployeeID string
	Role       domain.AssignmentRole
}

type MilestoneInput struct {
	Name    string
	DueDate time.Time
	Status  domain.MilestoneStatus
}

// CreateProjectInput carries a new project. Status is not accepted: every
// project starts ongoing.
type CreateProjectInput struct {
	Name              string
	Description       string
	ClientID          string
	AssignedEmployees []AssignmentInput
	StartDate         time.Time
	EndDate           time.Time
	Milestones        []MilestoneInput
	Budget            float64
	Priority          domain.Priority
}

// UpdateProjectInput is a partial update; nil fields are left untouched.
type UpdateProjectInput struct {
	Name              *string
	Description       *string
	ClientID          *string
	AssignedEmployees *[]AssignmentInput
	StartDate         *time.Time
	EndDate           *time.Time
	Milestones        *[]MilestoneInput
	Budget            *float64
	Priority          *domain.Priority
	Status            *domain.ProjectStatus
}

// AssignmentView is one team entry with the employee resolved.
type AssignmentView struct {
	Employee domain.UserSummary
	Role     domain.AssignmentRole
}

// ProjectView is a project with its client and team resolved.
type ProjectView struct {
	Project *domain.Project
	Client  domain.UserSummary
	Team    []AssignmentView
}

// ProjectService defines the CEO, employee and client project use cases.
type ProjectService interface {
	List(ctx context.Context) ([]ProjectView, error)
	Get(ctx context.Context, id string) (*ProjectView, error)
	Create(ctx context.Context, input CreateProjectInput) (*ProjectView, error)
	Update(ctx context.Context, id string, input UpdateProjectInput) (*ProjectView, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*domain.ProjectStats, error)
	ListForClient(ctx context.Context, clientID string) ([]ProjectView, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]ProjectView, error)
}
