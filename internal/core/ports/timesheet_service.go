package ports

import (
	"context"
	"time"

	"github.com/bizportal/portal-api/internal/core/domain"
)

// SubmitTimesheetInput carries a new weekly entry. EmployeeID is always the
// caller's own id.
type SubmitTimesheetInput struct {
	EmployeeID string
	ProjectID  string
	ManagerID  string // optional
	Week       time.Time
	Hours      domain.Hours
}

// TimesheetView is a timesheet with its references resolved for display.
type TimesheetView struct {
	Timesheet *domain.Timesheet
	Project   domain.ProjectRef
	Employee  domain.UserSummary
	Manager   *domain.UserSummary
}

// TimesheetService defines the timesheet use cases.
type TimesheetService interface {
	Submit(ctx context.Context, input SubmitTimesheetInput) (*TimesheetView, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]TimesheetView, error)
	Update(ctx context.Context, id, employeeID string, hours domain.Hours) (*TimesheetView, error)
	ListAll(ctx context.Context) ([]TimesheetView, error)
	// Review is the reviewer-side transition into inProgress or approved.
	Review(ctx context.Context, id string, status domain.TimesheetStatus) (*TimesheetView, error)
}
