package domain

import (
	"fmt"
	"time"
)

// TimesheetStatus represents the review state of a timesheet.
type TimesheetStatus string

const (
	TimesheetSubmitted  TimesheetStatus = "submitted"
	TimesheetInProgress TimesheetStatus = "inProgress"
	TimesheetApproved   TimesheetStatus = "approved"
)

func (s TimesheetStatus) Valid() bool {
	switch s {
	case TimesheetSubmitted, TimesheetInProgress, TimesheetApproved:
		return true
	}
	return false
}

// reviewTransitions defines the moves a reviewer may make. Approved is terminal.
var reviewTransitions = map[TimesheetStatus][]TimesheetStatus{
	TimesheetSubmitted:  {TimesheetInProgress, TimesheetApproved},
	TimesheetInProgress: {TimesheetApproved, TimesheetSubmitted},
}

// CanTransitionTo reports whether a reviewer may move a timesheet from s to next.
func (s TimesheetStatus) CanTransitionTo(next TimesheetStatus) bool {
	for _, allowed := range reviewTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Editable reports whether the owning employee may still change the hours.
func (s TimesheetStatus) Editable() bool {
	return s != TimesheetApproved
}

const maxHoursPerDay = 24

// Hours is the fixed seven-day grid of a reporting week.
type Hours struct {
	Monday    int
	Tuesday   int
	Wednesday int
	Thursday  int
	Friday    int
	Saturday  int
	Sunday    int
}

// Validate requires every day to be within 0..24.
func (h Hours) Validate() error {
	days := []struct {
		name string
		v    int
	}{
		{"monday", h.Monday},
		{"tuesday", h.Tuesday},
		{"wednesday", h.Wednesday},
		{"thursday", h.Thursday},
		{"friday", h.Friday},
		{"saturday", h.Saturday},
		{"sunday", h.Sunday},
	}
	for _, d := range days {
		if d.v < 0 || d.v > maxHoursPerDay {
			return fmt.Errorf("%w: hours.%s must be between 0 and %d", ErrValidation, d.name, maxHoursPerDay)
		}
	}
	return nil
}

// Total sums the week.
func (h Hours) Total() int {
	return h.Monday + h.Tuesday + h.Wednesday + h.Thursday + h.Friday + h.Saturday + h.Sunday
}

// Timesheet is one employee's hours against one project for one week.
// Only the employee referenced by EmployeeID may edit it.
type Timesheet struct {
	ID         string
	EmployeeID string
	ProjectID  string
	ManagerID  string
	Week       time.Time
	Hours      Hours
	Status     TimesheetStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
