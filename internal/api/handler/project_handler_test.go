package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/bizportal/portal-api/internal/core/domain"
	"github.com/bizportal/portal-api/internal/core/ports"
)

func projectViewFrom(in ports.CreateProjectInput) *ports.ProjectView {
	return &ports.ProjectView{
		Project: &domain.Project{
			ID:          "p1",
			Name:        in.Name,
			Description: in.Description,
			ClientID:    in.ClientID,
			Timeline:    domain.Timeline{StartDate: in.StartDate, EndDate: in.EndDate},
			Status:      domain.ProjectOngoing,
			Budget:      in.Budget,
			Priority:    domain.PriorityHigh,
		},
		Client: domain.UserSummary{ID: in.ClientID, Name: "Acme"},
	}
}

func TestProjectHandler_Create_TimelineDatesFallback(t *testing.T) {
	stub := &stubProjectService{
		createFn: func(_ context.Context, in ports.CreateProjectInput) (*ports.ProjectView, error) {
			wantStart := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
			wantEnd := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
			if !in.StartDate.Equal(wantStart) {
				t.Fatalf("start date: got %v", in.StartDate)
			}
			if !in.EndDate.Equal(wantEnd) {
				t.Fatalf("end date should come from timeline: got %v", in.EndDate)
			}
			if len(in.Milestones) != 1 || in.Milestones[0].Name != "MVP" {
				t.Fatalf("milestones not mapped: %+v", in.Milestones)
			}
			if len(in.AssignedEmployees) != 1 || in.AssignedEmployees[0].Role != domain.AssignmentLead {
				t.Fatalf("team not mapped: %+v", in.AssignedEmployees)
			}
			return projectViewFrom(in), nil
		},
	}
	body := `{
		"name": "Portal",
		"description": "Client portal",
		"clientId": "c1",
		"budget": 5000,
		"priority": "high",
		"status": "completed",
		"startDate": "2025-01-06",
		"assignedEmployees": [{"employee": "e1", "role": "lead"}],
		"timeline": {
			"startDate": "2024-12-01",
			"endDate": "2025-03-31",
			"milestones": [{"name": "MVP", "status": "pending"}]
		}
	}`
	c, rec := newContext(http.MethodPost, "/api/ceo/projects", body, nil)

	if err := NewProjectHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp projectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "p1" || resp.Status != "ongoing" || resp.Client.Name != "Acme" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestProjectHandler_Create_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing budget", `{"name":"P","description":"d","clientId":"c1"}`},
		{"negative budget", `{"name":"P","description":"d","clientId":"c1","budget":-1}`},
		{"unknown priority", `{"name":"P","description":"d","clientId":"c1","budget":1,"priority":"urgent"}`},
		{"missing name", `{"description":"d","clientId":"c1","budget":1}`},
		{"bad date", `{"name":"P","description":"d","clientId":"c1","budget":1,"startDate":"next week"}`},
		{"milestone without name", `{"name":"P","description":"d","clientId":"c1","budget":1,"timeline":{"milestones":[{"status":"pending"}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubProjectService{
				createFn: func(context.Context, ports.CreateProjectInput) (*ports.ProjectView, error) {
					t.Fatalf("service should not be called")
					return nil, nil
				},
			}
			c, _ := newContext(http.MethodPost, "/api/ceo/projects", tt.body, nil)

			err := NewProjectHandler(stub).Create(c)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestProjectHandler_Update_OnlyPresentFields(t *testing.T) {
	stub := &stubProjectService{
		updateFn: func(_ context.Context, id string, in ports.UpdateProjectInput) (*ports.ProjectView, error) {
			if id != "p1" {
				t.Fatalf("unexpected id %q", id)
			}
			if in.Status == nil || *in.Status != domain.ProjectHold {
				t.Fatalf("status not mapped")
			}
			if in.Name != nil || in.Budget != nil || in.AssignedEmployees != nil || in.StartDate != nil || in.Milestones != nil {
				t.Fatalf("absent fields must stay nil: %+v", in)
			}
			return &ports.ProjectView{Project: &domain.Project{ID: id, Status: *in.Status, Priority: domain.PriorityLow}}, nil
		},
	}
	c, rec := newContext(http.MethodPut, "/api/ceo/projects/p1", `{"status":"hold"}`, nil)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := NewProjectHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProjectHandler_Update_RejectsUnknownStatus(t *testing.T) {
	c, _ := newContext(http.MethodPut, "/api/ceo/projects/p1", `{"status":"cancelled"}`, nil)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	err := NewProjectHandler(&stubProjectService{}).Update(c)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProjectHandler_Delete(t *testing.T) {
	stub := &stubProjectService{
		deleteFn: func(_ context.Context, id string) error {
			if id != "p1" {
				return domain.ErrProjectNotFound
			}
			return nil
		},
	}

	c, rec := newContext(http.MethodDelete, "/api/ceo/projects/p1", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	if err := NewProjectHandler(stub).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Project deleted" {
		t.Fatalf("unexpected message %q", resp.Message)
	}

	c, _ = newContext(http.MethodDelete, "/api/ceo/projects/nope", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("nope")
	if err := NewProjectHandler(stub).Delete(c); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProjectHandler_Stats_Shape(t *testing.T) {
	stub := &stubProjectService{
		statsFn: func(context.Context) (*domain.ProjectStats, error) {
			s := domain.NewProjectStats(
				map[domain.ProjectStatus]int64{domain.ProjectOngoing: 2, domain.ProjectHold: 1},
				map[domain.Priority]int64{domain.PriorityHigh: 3},
			)
			return &s, nil
		},
	}
	c, rec := newContext(http.MethodGet, "/api/ceo/projects/stats", "", nil)

	if err := NewProjectHandler(stub).Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := map[string]float64{"totalProjects": 3, "ongoingProjects": 2, "completedProjects": 0, "holdProjects": 1}
	for k, v := range want {
		if resp[k] != v {
			t.Fatalf("%s: want %v, got %v", k, v, resp[k])
		}
	}
	byPriority, ok := resp["byPriority"].(map[string]any)
	if !ok {
		t.Fatalf("byPriority missing")
	}
	if byPriority["low"] != float64(0) || byPriority["medium"] != float64(0) || byPriority["high"] != float64(3) {
		t.Fatalf("unexpected byPriority: %v", byPriority)
	}
}
