package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bizportal/portal-api/internal/core/domain"
	"github.com/bizportal/portal-api/internal/core/ports"
)

// In-memory repositories shared by the service tests. They mirror the
// MongoDB adapters' contracts, including the conditional timesheet writes.

type memUsers struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
	err   error
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func (r *memUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("u%d", r.seq)
	r.users[c.ID] = c
	return cloneUser(c), nil
}

func (r *memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == domain.NormalizeEmail(email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUsers) FindByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *memUsers) ListByRoles(_ context.Context, roles ...domain.Role) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []*domain.User{}
	for _, u := range r.users {
		for _, role := range roles {
			if u.Role == role {
				out = append(out, cloneUser(u))
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memUsers) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	for _, u := range r.users {
		if u.ID != user.ID && u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	c := cloneUser(user)
	c.PasswordHash = stored.PasswordHash
	r.users[user.ID] = c
	return nil
}

func (r *memUsers) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// put stores a user directly, bypassing the service.
func (r *memUsers) put(u *domain.User) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.Access == "" {
		u.Access = domain.AccessActive
	}
	r.users[u.ID] = cloneUser(u)
	return u
}

type memProjects struct {
	mu       sync.Mutex
	seq      int
	projects map[string]*domain.Project
}

func newMemProjects() *memProjects {
	return &memProjects{projects: make(map[string]*domain.Project)}
}

func cloneProject(p *domain.Project) *domain.Project {
	c := *p
	c.AssignedEmployees = append([]domain.Assignment(nil), p.AssignedEmployees...)
	c.Timeline.Milestones = append([]domain.Milestone(nil), p.Timeline.Milestones...)
	return &c
}

func (r *memProjects) Create(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	p.ID = fmt.Sprintf("p%d", r.seq)
	r.projects[p.ID] = cloneProject(p)
	return nil
}

func (r *memProjects) FindByID(_ context.Context, id string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return cloneProject(p), nil
}

func (r *memProjects) FindByIDs(_ context.Context, ids []string) ([]*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Project, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.projects[id]; ok {
			out = append(out, cloneProject(p))
		}
	}
	return out, nil
}

func (r *memProjects) List(_ context.Context, f ports.ProjectFilter) ([]*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Project{}
	for _, p := range r.projects {
		if f.ClientID != "" && p.ClientID != f.ClientID {
			continue
		}
		if f.EmployeeID != "" && !p.HasEmployee(f.EmployeeID) {
			continue
		}
		out = append(out, cloneProject(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memProjects) Update(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	r.projects[p.ID] = cloneProject(p)
	return nil
}

func (r *memProjects) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *memProjects) Count(context.Context) (*ports.ProjectCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := &ports.ProjectCounts{
		ByStatus:   make(map[domain.ProjectStatus]int64),
		ByPriority: make(map[domain.Priority]int64),
	}
	for _, p := range r.projects {
		counts.ByStatus[p.Status]++
		counts.ByPriority[p.Priority]++
	}
	return counts, nil
}

type memTimesheets struct {
	mu     sync.Mutex
	seq    int
	sheets map[string]*domain.Timesheet
	// beforeWrite runs inside UpdateHours and UpdateStatus ahead of the
	// conditional check, to simulate a concurrent writer.
	beforeWrite func(t *domain.Timesheet)
}

func newMemTimesheets() *memTimesheets {
	return &memTimesheets{sheets: make(map[string]*domain.Timesheet)}
}

func (r *memTimesheets) Create(_ context.Context, t *domain.Timesheet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	t.ID = fmt.Sprintf("t%d", r.seq)
	c := *t
	r.sheets[t.ID] = &c
	return nil
}

func (r *memTimesheets) FindByID(_ context.Context, id string) (*domain.Timesheet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.sheets[id]
	if !ok {
		return nil, domain.ErrTimesheetNotFound
	}
	c := *t
	return &c, nil
}

func (r *memTimesheets) List(_ context.Context, employeeID string) ([]*domain.Timesheet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Timesheet{}
	for _, t := range r.sheets {
		if employeeID != "" && t.EmployeeID != employeeID {
			continue
		}
		c := *t
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Week.Equal(out[j].Week) {
			return out[i].Week.After(out[j].Week)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *memTimesheets) UpdateHours(_ context.Context, id, employeeID string, hours domain.Hours, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.sheets[id]
	if !ok || t.EmployeeID != employeeID {
		return domain.ErrTimesheetNotFound
	}
	if r.beforeWrite != nil {
		r.beforeWrite(t)
	}
	if t.Status == domain.TimesheetApproved {
		return domain.ErrInvalidState
	}
	t.Hours = hours
	t.Status = domain.TimesheetSubmitted
	t.UpdatedAt = at
	return nil
}

func (r *memTimesheets) UpdateStatus(_ context.Context, id string, from, to domain.TimesheetStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.sheets[id]
	if !ok {
		return domain.ErrTimesheetNotFound
	}
	if r.beforeWrite != nil {
		r.beforeWrite(t)
	}
	if t.Status != from {
		return domain.ErrInvalidState
	}
	t.Status = to
	t.UpdatedAt = at
	return nil
}

type memSessions struct {
	mu        sync.Mutex
	revokedAt map[string]time.Time
	err       error
}

func newMemSessions() *memSessions {
	return &memSessions{revokedAt: make(map[string]time.Time)}
}

func (s *memSessions) Revoke(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.revokedAt[userID] = time.Now()
	return nil
}

func (s *memSessions) IsRevoked(_ context.Context, userID string, issuedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.revokedAt[userID]
	return ok && !issuedAt.After(at), s.err
}

var errStoreDown = errors.New("store unavailable")
