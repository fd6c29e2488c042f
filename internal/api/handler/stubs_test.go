package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bizportal/portal-api/internal/api/middleware"
	"github.com/bizportal/portal-api/internal/core/domain"
	"github.com/bizportal/portal-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) EnsureCEO(context.Context, string, string) error { return nil }

type stubDirectoryService struct {
	listFn          func(ctx context.Context, role domain.Role) ([]*domain.User, error)
	createFn        func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	updateFn        func(ctx context.Context, id string, role domain.Role, in ports.UpdateUserInput) (*domain.User, error)
	deleteFn        func(ctx context.Context, id string, role domain.Role) error
	profileFn       func(ctx context.Context, caller domain.Identity) (*ports.UserProfile, error)
	updateProfileFn func(ctx context.Context, caller domain.Identity, in ports.UpdateUserInput) (*ports.UserProfile, error)
}

func (s *stubDirectoryService) List(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	return s.listFn(ctx, role)
}

func (s *stubDirectoryService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubDirectoryService) Update(ctx context.Context, id string, role domain.Role, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, role, in)
}

func (s *stubDirectoryService) Delete(ctx context.Context, id string, role domain.Role) error {
	return s.deleteFn(ctx, id, role)
}

func (s *stubDirectoryService) Profile(ctx context.Context, caller domain.Identity) (*ports.UserProfile, error) {
	return s.profileFn(ctx, caller)
}

func (s *stubDirectoryService) UpdateProfile(ctx context.Context, caller domain.Identity, in ports.UpdateUserInput) (*ports.UserProfile, error) {
	return s.updateProfileFn(ctx, caller, in)
}

type stubProjectService struct {
	listFn            func(ctx context.Context) ([]ports.ProjectView, error)
	getFn             func(ctx context.Context, id string) (*ports.ProjectView, error)
	createFn          func(ctx context.Context, in ports.CreateProjectInput) (*ports.ProjectView, error)
	updateFn          func(ctx context.Context, id string, in ports.UpdateProjectInput) (*ports.ProjectView, error)
	deleteFn          func(ctx context.Context, id string) error
	statsFn           func(ctx context.Context) (*domain.ProjectStats, error)
	listForClientFn   func(ctx context.Context, clientID string) ([]ports.ProjectView, error)
	listForEmployeeFn func(ctx context.Context, employeeID string) ([]ports.ProjectView, error)
}

func (s *stubProjectService) List(ctx context.Context) ([]ports.ProjectView, error) {
	return s.listFn(ctx)
}

func (s *stubProjectService) Get(ctx context.Context, id string) (*ports.ProjectView, error) {
	return s.getFn(ctx, id)
}

func (s *stubProjectService) Create(ctx context.Context, in ports.CreateProjectInput) (*ports.ProjectView, error) {
	return s.createFn(ctx, in)
}

func (s *stubProjectService) Update(ctx context.Context, id string, in ports.UpdateProjectInput) (*ports.ProjectView, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubProjectService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubProjectService) Stats(ctx context.Context) (*domain.ProjectStats, error) {
	return s.statsFn(ctx)
}

func (s *stubProjectService) ListForClient(ctx context.Context, clientID string) ([]ports.ProjectView, error) {
	return s.listForClientFn(ctx, clientID)
}

func (s *stubProjectService) ListForEmployee(ctx context.Context, employeeID string) ([]ports.ProjectView, error) {
	return s.listForEmployeeFn(ctx, employeeID)
}

type stubTimesheetService struct {
	submitFn          func(ctx context.Context, in ports.SubmitTimesheetInput) (*ports.TimesheetView, error)
	listForEmployeeFn func(ctx context.Context, employeeID string) ([]ports.TimesheetView, error)
	updateFn          func(ctx context.Context, id, employeeID string, hours domain.Hours) (*ports.TimesheetView, error)
	listAllFn         func(ctx context.Context) ([]ports.TimesheetView, error)
	reviewFn          func(ctx context.Context, id string, status domain.TimesheetStatus) (*ports.TimesheetView, error)
}

func (s *stubTimesheetService) Submit(ctx context.Context, in ports.SubmitTimesheetInput) (*ports.TimesheetView, error) {
	return s.submitFn(ctx, in)
}

func (s *stubTimesheetService) ListForEmployee(ctx context.Context, employeeID string) ([]ports.TimesheetView, error) {
	return s.listForEmployeeFn(ctx, employeeID)
}

func (s *stubTimesheetService) Update(ctx context.Context, id, employeeID string, hours domain.Hours) (*ports.TimesheetView, error) {
	return s.updateFn(ctx, id, employeeID, hours)
}

func (s *stubTimesheetService) ListAll(ctx context.Context) ([]ports.TimesheetView, error) {
	return s.listAllFn(ctx)
}

func (s *stubTimesheetService) Review(ctx context.Context, id string, status domain.TimesheetStatus) (*ports.TimesheetView, error) {
	return s.reviewFn(ctx, id, status)
}

// newContext builds an echo context with the validator installed and, when
// caller is non-nil, the identity the Auth middleware would have set.
func newContext(method, target, body string, caller *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if caller != nil {
		c.Set(middleware.ContextKeyIdentity, *caller)
		c.Set(middleware.ContextKeyRole, string(caller.Role))
	}
	return c, rec
}
