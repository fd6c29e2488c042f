package handler

import (
	"github.com/bizportal/portal-api/internal/core/domain"
	"github.com/bizportal/portal-api/internal/core/ports"
)

// --- Request → port inputs ---

func toCompanyDetails(p *companyDetailsPayload) domain.CompanyDetails {
	if p == nil {
		return domain.CompanyDetails{}
	}
	return domain.CompanyDetails{Name: p.Name, Address: p.Address, Phone: p.Phone}
}

func toCreateUserInput(req createUserRequest, role domain.Role) ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Contact:        req.Contact,
		Role:           role,
		Department:     req.Department,
		Position:       req.Position,
		Skills:         req.Skills,
		CompanyDetails: toCompanyDetails(req.CompanyDetails),
	}
}

func toUpdateUserInput(req updateUserRequest) ports.UpdateUserInput {
	in := ports.UpdateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Contact:    req.Contact,
		Department: req.Department,
		Position:   req.Position,
		Skills:     req.Skills,
	}
	if req.Access != nil {
		a := domain.Access(*req.Access)
		in.Access = &a
	}
	if req.CompanyDetails != nil {
		cd := toCompanyDetails(req.CompanyDetails)
		in.CompanyDetails = &cd
	}
	return in
}

func toProfileInput(req updateProfileRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Contact:    req.Contact,
		Department: req.Department,
		Position:   req.Position,
		Skills:     req.Skills,
	}
}

func toAssignmentInputs(reqs []assignmentRequest) []ports.AssignmentInput {
	out := make([]ports.AssignmentInput, 0, len(reqs))
	for _, a := range reqs {
		out = append(out, ports.AssignmentInput{EmployeeID: a.Employee, Role: domain.AssignmentRole(a.Role)})
	}
	return out
}

func toMilestoneInputs(reqs []milestoneRequest) []ports.MilestoneInput {
	out := make([]ports.MilestoneInput, 0, len(reqs))
	for _, m := range reqs {
		out = append(out, ports.MilestoneInput{
			Name:    m.Name,
			DueDate: dateOrZero(m.DueDate),
			Status:  domain.MilestoneStatus(m.Status),
		})
	}
	return out
}

// pickDate prefers the top-level value over the one nested in timeline.
func pickDate(top *jsonDate, tl *timelineRequest, nested func(*timelineRequest) *jsonDate) *jsonDate {
	if top != nil {
		return top
	}
	if tl != nil {
		return nested(tl)
	}
	return nil
}

func startOf(tl *timelineRequest) *jsonDate { return tl.StartDate }
func endOf(tl *timelineRequest) *jsonDate   { return tl.EndDate }

func toCreateProjectInput(req createProjectRequest) ports.CreateProjectInput {
	in := ports.CreateProjectInput{
		Name:              req.Name,
		Description:       req.Description,
		ClientID:          req.ClientID,
		AssignedEmployees: toAssignmentInputs(req.AssignedEmployees),
		StartDate:         dateOrZero(pickDate(req.StartDate, req.Timeline, startOf)),
		EndDate:           dateOrZero(pickDate(req.EndDate, req.Timeline, endOf)),
		Priority:          domain.Priority(req.Priority),
	}
	if req.Budget != nil {
		in.Budget = *req.Budget
	}
	if req.Timeline != nil {
		in.Milestones = toMilestoneInputs(req.Timeline.Milestones)
	}
	return in
}

func toUpdateProjectInput(req updateProjectRequest) ports.UpdateProjectInput {
	in := ports.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		ClientID:    req.ClientID,
		Budget:      req.Budget,
	}
	if req.AssignedEmployees != nil {
		team := toAssignmentInputs(req.AssignedEmployees)
		in.AssignedEmployees = &team
	}
	if d := pickDate(req.StartDate, req.Timeline, startOf); d != nil {
		t := d.Time
		in.StartDate = &t
	}
	if d := pickDate(req.EndDate, req.Timeline, endOf); d != nil {
		t := d.Time
		in.EndDate = &t
	}
	if req.Timeline != nil && req.Timeline.Milestones != nil {
		ms := toMilestoneInputs(req.Timeline.Milestones)
		in.Milestones = &ms
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		in.Priority = &p
	}
	if req.Status != nil {
		s := domain.ProjectStatus(*req.Status)
		in.Status = &s
	}
	return in
}

func toHours(h hoursPayload) domain.Hours {
	return domain.Hours(h)
}

// --- Domain / port views → responses ---

func companyDetailsPayloadOf(cd domain.CompanyDetails) *companyDetailsPayload {
	return &companyDetailsPayload{Name: cd.Name, Address: cd.Address, Phone: cd.Phone}
}

func toSessionUserResponse(u *domain.User) sessionUserResponse {
	resp := sessionUserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   string(u.Role),
		Access: string(u.Access),
	}
	if p, ok := u.Employee(); ok {
		resp.Department = p.Department
		resp.Position = p.Position
		resp.Skills = p.Skills
	}
	if p, ok := u.Client(); ok {
		resp.CompanyDetails = companyDetailsPayloadOf(p.CompanyDetails)
	}
	return resp
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Contact:   u.Contact,
		Role:      string(u.Role),
		Access:    string(u.Access),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if p, ok := u.Employee(); ok {
		resp.Department = p.Department
		resp.Position = p.Position
		resp.Skills = p.Skills
	}
	if p, ok := u.Client(); ok {
		resp.CompanyDetails = companyDetailsPayloadOf(p.CompanyDetails)
	}
	return resp
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toProjectRefResponse(r domain.ProjectRef) projectRefResponse {
	return projectRefResponse{ID: r.ID, Name: r.Name, Status: string(r.Status)}
}

func toProfileResponse(p *ports.UserProfile) profileResponse {
	refs := make([]projectRefResponse, 0, len(p.ProjectAssignments))
	for _, r := range p.ProjectAssignments {
		refs = append(refs, toProjectRefResponse(r))
	}
	return profileResponse{userResponse: toUserResponse(p.User), ProjectAssignments: refs}
}

func toUserSummaryResponse(s domain.UserSummary) userSummaryResponse {
	resp := userSummaryResponse{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		Position:   s.Position,
		Department: s.Department,
	}
	if s.CompanyDetails != nil {
		resp.CompanyDetails = companyDetailsPayloadOf(*s.CompanyDetails)
	}
	return resp
}

func toProjectResponse(v ports.ProjectView) projectResponse {
	p := v.Project
	team := make([]assignmentResponse, 0, len(v.Team))
	for _, a := range v.Team {
		team = append(team, assignmentResponse{Employee: toUserSummaryResponse(a.Employee), Role: string(a.Role)})
	}
	milestones := make([]milestoneResponse, 0, len(p.Timeline.Milestones))
	for _, m := range p.Timeline.Milestones {
		mr := milestoneResponse{Name: m.Name, Status: string(m.Status)}
		if !m.DueDate.IsZero() {
			due := m.DueDate
			mr.DueDate = &due
		}
		milestones = append(milestones, mr)
	}
	return projectResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Client:            toUserSummaryResponse(v.Client),
		AssignedEmployees: team,
		Timeline: timelineResponse{
			StartDate:  p.Timeline.StartDate,
			EndDate:    p.Timeline.EndDate,
			Milestones: milestones,
		},
		Status:    string(p.Status),
		Budget:    p.Budget,
		Priority:  string(p.Priority),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toProjectResponses(views []ports.ProjectView) []projectResponse {
	out := make([]projectResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toProjectResponse(v))
	}
	return out
}

func toProjectStatsResponse(s *domain.ProjectStats) projectStatsResponse {
	return projectStatsResponse{
		TotalProjects:     s.Total,
		OngoingProjects:   s.Ongoing,
		CompletedProjects: s.Completed,
		HoldProjects:      s.Hold,
		ByPriority: priorityStatsResponse{
			Low:    s.ByPriority[domain.PriorityLow],
			Medium: s.ByPriority[domain.PriorityMedium],
			High:   s.ByPriority[domain.PriorityHigh],
		},
	}
}

func toTimesheetResponse(v ports.TimesheetView) timesheetResponse {
	t := v.Timesheet
	resp := timesheetResponse{
		ID:        t.ID,
		Employee:  toUserSummaryResponse(v.Employee),
		Project:   toProjectRefResponse(v.Project),
		Week:      t.Week,
		Hours:     hoursPayload(t.Hours),
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if v.Manager != nil {
		m := toUserSummaryResponse(*v.Manager)
		resp.Manager = &m
	}
	return resp
}

func toTimesheetResponses(views []ports.TimesheetView) []timesheetResponse {
	out := make([]timesheetResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toTimesheetResponse(v))
	}
	return out
}
