package domain

import (
	"fmt"
	"strings"
	"time"
)

// ProjectStatus is set freely by the CEO; no ordering is enforced.
type ProjectStatus string

const (
	ProjectOngoing   ProjectStatus = "ongoing"
	ProjectHold      ProjectStatus = "hold"
	ProjectCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectOngoing, ProjectHold, ProjectCompleted:
		return true
	}
	return false
}

// Priority ranks projects for the CEO dashboard.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// AssignmentRole is the part an employee plays on one project.
type AssignmentRole string

const (
	AssignmentLead      AssignmentRole = "lead"
	AssignmentDeveloper AssignmentRole = "developer"
	AssignmentDesigner  AssignmentRole = "designer"
	AssignmentTester    AssignmentRole = "tester"
)

func (r AssignmentRole) Valid() bool {
	switch r {
	case AssignmentLead, AssignmentDeveloper, AssignmentDesigner, AssignmentTester:
		return true
	}
	return false
}

// Assignment pairs an employee with their role on a project.
type Assignment struct {
	EmployeeID string
	Role       AssignmentRole
}

// NormalizeAssignments drops entries without an employee id, defaults the
// role to developer and keeps only the first entry per employee.
func NormalizeAssignments(in []Assignment) []Assignment {
	seen := make(map[string]struct{}, len(in))
	out := make([]Assignment, 0, len(in))
	for _, a := range in {
		id := strings.TrimSpace(a.EmployeeID)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		role := a.Role
		if !role.Valid() {
			role = AssignmentDeveloper
		}
		out = append(out, Assignment{EmployeeID: id, Role: role})
	}
	return out
}

// MilestoneStatus tracks a single timeline checkpoint.
type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "pending"
	MilestoneCompleted MilestoneStatus = "completed"
	MilestoneDelayed   MilestoneStatus = "delayed"
)

func (s MilestoneStatus) Valid() bool {
	switch s {
	case MilestonePending, MilestoneCompleted, MilestoneDelayed:
		return true
	}
	return false
}

type Milestone struct {
	Name    string
	DueDate time.Time
	Status  MilestoneStatus
}

type Timeline struct {
	StartDate  time.Time
	EndDate    time.Time
	Milestones []Milestone
}

// Validate checks the date window and every milestone.
func (t Timeline) Validate() error {
	if t.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrValidation)
	}
	if t.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrValidation)
	}
	if t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrValidation)
	}
	for i, m := range t.Milestones {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("%w: milestones[%d].name is required", ErrValidation, i)
		}
		if !m.Status.Valid() {
			return fmt.Errorf("%w: milestones[%d].status is invalid", ErrValidation, i)
		}
	}
	return nil
}

// Project is the aggregate the CEO manages. ClientID references a client
// user; AssignedEmployees is the source of truth for employee membership.
type Project struct {
	ID                string
	Name              string
	Description       string
	ClientID          string
	AssignedEmployees []Assignment
	Timeline          Timeline
	Status            ProjectStatus
	Budget            float64
	Priority          Priority
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasEmployee reports whether employeeID appears in the team list.
func (p *Project) HasEmployee(employeeID string) bool {
	for _, a := range p.AssignedEmployees {
		if a.EmployeeID == employeeID {
			return true
		}
	}
	return false
}

// Validate enforces the required fields and enum values of a full record.
func (p *Project) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case strings.TrimSpace(p.Description) == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	case p.ClientID == "":
		return fmt.Errorf("%w: clientId is required", ErrValidation)
	case p.Budget < 0:
		return fmt.Errorf("%w: budget must be non-negative", ErrValidation)
	case !p.Status.Valid():
		return fmt.Errorf("%w: status must be one of ongoing, hold, completed", ErrValidation)
	case !p.Priority.Valid():
		return fmt.Errorf("%w: priority must be one of low, medium, high", ErrValidation)
	}
	return p.Timeline.Validate()
}

// ProjectRef is the minimal project view used inside profiles and timesheets.
type ProjectRef struct {
	ID     string
	Name   string
	Status ProjectStatus
}

// ProjectStats aggregates the current project set. Total is always the sum
// of the three status counts.
type ProjectStats struct {
	Total      int64
	Ongoing    int64
	Completed  int64
	Hold       int64
	ByPriority map[Priority]int64
}

// NewProjectStats builds stats from raw per-status and per-priority counts.
func NewProjectStats(byStatus map[ProjectStatus]int64, byPriority map[Priority]int64) ProjectStats {
	s := ProjectStats{
		Ongoing:    byStatus[ProjectOngoing],
		Completed:  byStatus[ProjectCompleted],
		Hold:       byStatus[ProjectHold],
		ByPriority: map[Priority]int64{PriorityLow: 0, PriorityMedium: 0, PriorityHigh: 0},
	}
	s.Total = s.Ongoing + s.Completed + s.Hold
	for p, n := range byPriority {
		s.ByPriority[p] += n
	}
	return s
}
