package ports

import (
	"context"
	"time"

	"github.com/bizportal/portal-api/internal/core/domain"
)

// TimesheetRepository defines persistence operations for timesheets.
type TimesheetRepository interface {
	Create(ctx context.Context, t *domain.Timesheet) error
	FindByID(ctx context.Context, id string) (*domain.Timesheet, error)
	// List returns timesheets newest week first. An empty employeeID lists all.
	List(ctx context.Context, employeeID string) ([]*domain.Timesheet, error)

	// UpdateHours replaces the hours of the timesheet owned by employeeID and
	// resets it to submitted. It fails with domain.ErrTimesheetNotFound when
	// id and owner do not match, and domain.ErrInvalidState when the stored
	// timesheet is approved at write time.
	UpdateHours(ctx context.Context, id, employeeID string, hours domain.Hours, at time.Time) error

	// UpdateStatus moves the timesheet from one status to another. It fails
	// with domain.ErrInvalidState when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id string, from, to domain.TimesheetStatus, at time.Time) error
}
