package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizportal/portal-api/internal/core/domain"
	"github.com/bizportal/portal-api/internal/core/ports"
)

// portal wires every service to one set of in-memory repositories.
type portal struct {
	users      *memUsers
	sessions   *memSessions
	auth       *AuthService
	directory  *DirectoryService
	projects   *ProjectService
	timesheets *TimesheetService
}

func newPortal(t *testing.T) *portal {
	t.Helper()
	users, projects, sheets, sessions := newMemUsers(), newMemProjects(), newMemTimesheets(), newMemSessions()
	p := &portal{
		users:      users,
		sessions:   sessions,
		auth:       NewAuthService(users, testSecret, time.Hour, zerolog.Nop()),
		directory:  NewDirectoryService(users, projects, sessions, zerolog.Nop()),
		projects:   NewProjectService(projects, users, zerolog.Nop()),
		timesheets: NewTimesheetService(sheets, projects, users, zerolog.Nop()),
	}
	require.NoError(t, p.auth.EnsureCEO(context.Background(), "ceo@company.com", "CEO@123456"))
	return p
}

// staffProject creates client C1, employee E1 and project P1 with E1 on the
// team, returning their ids.
func (p *portal) staffProject(t *testing.T) (clientID, employeeID, projectID string) {
	t.Helper()
	ctx := context.Background()

	c1, err := p.directory.Create(ctx, ports.CreateUserInput{
		Name: "C1", Email: "c1@example.com", Password: "client-pw",
		Role: domain.RoleClient, CompanyDetails: acme(),
	})
	require.NoError(t, err)
	e1, err := p.directory.Create(ctx, ports.CreateUserInput{
		Name: "E1", Email: "e1@example.com", Password: "employee-pw",
		Role: domain.RoleEmployee, Department: "eng",
	})
	require.NoError(t, err)

	view, err := p.projects.Create(ctx, validProject(c1.ID,
		ports.AssignmentInput{EmployeeID: e1.ID, Role: domain.AssignmentDeveloper},
	))
	require.NoError(t, err)
	require.Equal(t, domain.ProjectOngoing, view.Project.Status)
	require.Equal(t, float64(1000), view.Project.Budget)

	return c1.ID, e1.ID, view.Project.ID
}

func TestPortalScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("employee submits a timesheet for an assigned project", func(t *testing.T) {
		p := newPortal(t)
		_, e1, p1 := p.staffProject(t)

		_, err := p.timesheets.Submit(ctx, ports.SubmitTimesheetInput{
			EmployeeID: e1,
			ProjectID:  p1,
			Week:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Hours:      domain.Hours{Monday: 8},
		})
		require.NoError(t, err)

		sheets, err := p.timesheets.ListForEmployee(ctx, e1)
		require.NoError(t, err)
		require.Len(t, sheets, 1)
		assert.Equal(t, domain.TimesheetSubmitted, sheets[0].Timesheet.Status)
		assert.Equal(t, 8, sheets[0].Timesheet.Hours.Monday)
		assert.Equal(t, p1, sheets[0].Project.ID)
	})

	t.Run("deactivation blocks login until reactivated", func(t *testing.T) {
		p := newPortal(t)
		_, e1, _ := p.staffProject(t)

		_, _, err := p.auth.Login(ctx, "e1@example.com", "employee-pw")
		require.NoError(t, err)

		_, err = p.directory.Update(ctx, e1, domain.RoleEmployee, ports.UpdateUserInput{Access: accessPtr(domain.AccessInactive)})
		require.NoError(t, err)
		_, _, err = p.auth.Login(ctx, "e1@example.com", "employee-pw")
		assert.ErrorIs(t, err, domain.ErrAccountInactive)

		_, err = p.directory.Update(ctx, e1, domain.RoleEmployee, ports.UpdateUserInput{Access: accessPtr(domain.AccessActive)})
		require.NoError(t, err)
		_, user, err := p.auth.Login(ctx, "e1@example.com", "employee-pw")
		require.NoError(t, err, "reactivation restores login immediately")
		assert.Equal(t, e1, user.ID)
	})

	t.Run("deleted project leaves the employee and client lists", func(t *testing.T) {
		p := newPortal(t)
		c1, e1, p1 := p.staffProject(t)

		mine, err := p.projects.ListForEmployee(ctx, e1)
		require.NoError(t, err)
		require.Len(t, mine, 1)

		require.NoError(t, p.projects.Delete(ctx, p1))

		mine, err = p.projects.ListForEmployee(ctx, e1)
		require.NoError(t, err)
		assert.Empty(t, mine)
		theirs, err := p.projects.ListForClient(ctx, c1)
		require.NoError(t, err)
		assert.Empty(t, theirs)

		profile, err := p.directory.Profile(ctx, domain.Identity{ID: e1, Role: domain.RoleEmployee})
		require.NoError(t, err)
		assert.Empty(t, profile.ProjectAssignments)
	})

	t.Run("second create with the same email keeps one record", func(t *testing.T) {
		p := newPortal(t)
		p.staffProject(t)

		_, err := p.directory.Create(ctx, ports.CreateUserInput{
			Name: "Other", Email: "E1@example.com", Password: "x", Role: domain.RoleEmployee,
		})
		assert.ErrorIs(t, err, domain.ErrUserExists)

		employees, err := p.directory.List(ctx, domain.RoleEmployee)
		require.NoError(t, err)
		assert.Len(t, employees, 1)
	})

	// Concurrent access toggles are last-write-wins: both writes succeed and
	// the stored flag is whichever landed second.
	t.Run("concurrent access updates settle on one value", func(t *testing.T) {
		p := newPortal(t)
		_, e1, _ := p.staffProject(t)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, access := range []domain.Access{domain.AccessInactive, domain.AccessActive} {
			wg.Add(1)
			go func(i int, access domain.Access) {
				defer wg.Done()
				_, errs[i] = p.directory.Update(ctx, e1, domain.RoleEmployee, ports.UpdateUserInput{Access: accessPtr(access)})
			}(i, access)
		}
		wg.Wait()

		require.NoError(t, errs[0])
		require.NoError(t, errs[1])
		stored, err := p.users.FindByID(ctx, e1)
		require.NoError(t, err)
		assert.Contains(t, []domain.Access{domain.AccessActive, domain.AccessInactive}, stored.Access)
	})
}
