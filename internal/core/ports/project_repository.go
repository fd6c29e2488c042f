package ports

import (
	"context"

	"github.com/bizportal/portal-api/internal/core/domain"
)

// ProjectFilter narrows List. Empty fields do not filter.
type ProjectFilter struct {
	ClientID   string
	EmployeeID string // matches assignedEmployees.employee
}

// ProjectCounts is the raw output of the stats aggregation.
type ProjectCounts struct {
	ByStatus   map[domain.ProjectStatus]int64
	ByPriority map[domain.Priority]int64
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// FindByIDs resolves many references at once; unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Project, error)
	// List returns matching projects, newest created first.
	List(ctx context.Context, filter ProjectFilter) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	// Count groups the full project set by status and by priority.
	Count(ctx context.Context) (*ProjectCounts, error)
}
