package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizportal/portal-api/internal/core/domain"
	"github.com/bizportal/portal-api/internal/core/ports"
)

type projectFixture struct {
	users    *memUsers
	projects *memProjects
	svc      *ProjectService
}

func newProjectFixture() *projectFixture {
	f := &projectFixture{users: newMemUsers(), projects: newMemProjects()}
	f.svc = NewProjectService(f.projects, f.users, zerolog.Nop())
	f.users.put(&domain.User{ID: "c1", Name: "Acme rep", Role: domain.RoleClient, Profile: domain.ClientProfile{CompanyDetails: acme()}})
	f.users.put(&domain.User{ID: "c2", Name: "Globex rep", Role: domain.RoleClient, Profile: domain.ClientProfile{}})
	f.users.put(&domain.User{ID: "e1", Name: "Eve", Role: domain.RoleEmployee, Profile: domain.EmployeeProfile{Position: "dev"}})
	f.users.put(&domain.User{ID: "e2", Name: "Max", Role: domain.RoleEmployee, Profile: domain.EmployeeProfile{}})
	return f
}

var (
	jan1  = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mar31 = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
)

func validProject(clientID string, team ...ports.AssignmentInput) ports.CreateProjectInput {
	return ports.CreateProjectInput{
		Name:              "Portal",
		Description:       "Client portal",
		ClientID:          clientID,
		AssignedEmployees: team,
		StartDate:         jan1,
		EndDate:           mar31,
		Budget:            1000,
	}
}

func TestProjectService_Create_Defaults(t *testing.T) {
	f := newProjectFixture()

	view, err := f.svc.Create(context.Background(), validProject("c1",
		ports.AssignmentInput{EmployeeID: "e1", Role: domain.AssignmentLead},
		ports.AssignmentInput{EmployeeID: "e1", Role: domain.AssignmentTester},
		ports.AssignmentInput{EmployeeID: "e2"},
		ports.AssignmentInput{EmployeeID: "ghost"},
		ports.AssignmentInput{EmployeeID: "c2"},
	))
	require.NoError(t, err)

	p := view.Project
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.ProjectOngoing, p.Status)
	assert.Equal(t, domain.PriorityMedium, p.Priority)
	assert.Equal(t, []domain.Assignment{
		{EmployeeID: "e1", Role: domain.AssignmentLead},
		{EmployeeID: "e2", Role: domain.AssignmentDeveloper},
	}, p.AssignedEmployees)

	assert.Equal(t, "Acme rep", view.Client.Name)
	require.NotNil(t, view.Client.CompanyDetails)
	require.Len(t, view.Team, 2)
	assert.Equal(t, "dev", view.Team[0].Employee.Position)
}

func TestProjectService_Create_Validation(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(in *ports.CreateProjectInput)
	}{
		{"client is an employee", func(in *ports.CreateProjectInput) { in.ClientID = "e1" }},
		{"unknown client", func(in *ports.CreateProjectInput) { in.ClientID = "nope" }},
		{"missing client", func(in *ports.CreateProjectInput) { in.ClientID = "" }},
		{"blank name", func(in *ports.CreateProjectInput) { in.Name = "  " }},
		{"negative budget", func(in *ports.CreateProjectInput) { in.Budget = -5 }},
		{"end before start", func(in *ports.CreateProjectInput) { in.EndDate = jan1.Add(-24 * time.Hour) }},
		{"missing start", func(in *ports.CreateProjectInput) { in.StartDate = time.Time{} }},
		{"bad priority", func(in *ports.CreateProjectInput) { in.Priority = "urgent" }},
		{"milestone without name", func(in *ports.CreateProjectInput) {
			in.Milestones = []ports.MilestoneInput{{Name: " "}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validProject("c1")
			tt.mutate(&in)
			_, err := f.svc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	all, err := f.projects.List(ctx, ports.ProjectFilter{})
	require.NoError(t, err)
	assert.Empty(t, all, "rejected projects must not be stored")
}

func TestProjectService_Update(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()
	created, err := f.svc.Create(ctx, validProject("c1", ports.AssignmentInput{EmployeeID: "e1"}))
	require.NoError(t, err)
	id := created.Project.ID

	completed := domain.ProjectCompleted
	view, err := f.svc.Update(ctx, id, ports.UpdateProjectInput{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectCompleted, view.Project.Status)
	assert.Equal(t, "Portal", view.Project.Name)

	ongoing := domain.ProjectOngoing
	_, err = f.svc.Update(ctx, id, ports.UpdateProjectInput{Status: &ongoing})
	require.NoError(t, err, "status may move back freely")

	team := []ports.AssignmentInput{{EmployeeID: "e2", Role: domain.AssignmentDesigner}}
	view, err = f.svc.Update(ctx, id, ports.UpdateProjectInput{AssignedEmployees: &team})
	require.NoError(t, err)
	assert.Equal(t, []domain.Assignment{{EmployeeID: "e2", Role: domain.AssignmentDesigner}}, view.Project.AssignedEmployees)

	bogus := domain.ProjectStatus("cancelled")
	_, err = f.svc.Update(ctx, id, ports.UpdateProjectInput{Status: &bogus})
	assert.ErrorIs(t, err, domain.ErrValidation)

	employee := "e1"
	_, err = f.svc.Update(ctx, id, ports.UpdateProjectInput{ClientID: &employee})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.Update(ctx, "p404", ports.UpdateProjectInput{})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectService_Delete(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()
	created, err := f.svc.Create(ctx, validProject("c1", ports.AssignmentInput{EmployeeID: "e1"}))
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, created.Project.ID))
	assert.ErrorIs(t, f.svc.Delete(ctx, created.Project.ID), domain.ErrProjectNotFound)

	_, err = f.svc.Get(ctx, created.Project.ID)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	mine, err := f.svc.ListForEmployee(ctx, "e1")
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestProjectService_ScopedLists(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()
	_, err := f.svc.Create(ctx, validProject("c1", ports.AssignmentInput{EmployeeID: "e1"}))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, validProject("c2", ports.AssignmentInput{EmployeeID: "e2"}))
	require.NoError(t, err)

	forClient, err := f.svc.ListForClient(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, forClient, 1)
	assert.Equal(t, "c1", forClient[0].Project.ClientID)

	forEmployee, err := f.svc.ListForEmployee(ctx, "e2")
	require.NoError(t, err)
	require.Len(t, forEmployee, 1)
	assert.True(t, forEmployee[0].Project.HasEmployee("e2"))

	all, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProjectService_DanglingReferencesResolveToID(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()
	created, err := f.svc.Create(ctx, validProject("c1", ports.AssignmentInput{EmployeeID: "e1"}))
	require.NoError(t, err)

	require.NoError(t, f.users.Delete(ctx, "c1"))
	require.NoError(t, f.users.Delete(ctx, "e1"))

	view, err := f.svc.Get(ctx, created.Project.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserSummary{ID: "c1"}, view.Client)
	require.Len(t, view.Team, 1)
	assert.Equal(t, domain.UserSummary{ID: "e1"}, view.Team[0].Employee)
}

func TestProjectService_Stats(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	stats, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Equal(t, map[domain.Priority]int64{domain.PriorityLow: 0, domain.PriorityMedium: 0, domain.PriorityHigh: 0}, stats.ByPriority)

	hold := domain.ProjectHold
	for _, prio := range []domain.Priority{domain.PriorityHigh, domain.PriorityHigh, domain.PriorityLow} {
		in := validProject("c1")
		in.Priority = prio
		view, err := f.svc.Create(ctx, in)
		require.NoError(t, err)
		if prio == domain.PriorityLow {
			_, err = f.svc.Update(ctx, view.Project.ID, ports.UpdateProjectInput{Status: &hold})
			require.NoError(t, err)
		}
	}

	stats, err = f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Total)
	assert.EqualValues(t, 2, stats.Ongoing)
	assert.EqualValues(t, 1, stats.Hold)
	assert.EqualValues(t, 0, stats.Completed)
	assert.EqualValues(t, 2, stats.ByPriority[domain.PriorityHigh])
	assert.EqualValues(t, 1, stats.ByPriority[domain.PriorityLow])
	assert.Equal(t, stats.Total, stats.Ongoing+stats.Hold+stats.Completed)
}
