package handler

import "time"

type assignmentRequest struct {
	Employee string `json:"employee"`
	Role     string `json:"role"`
}

type milestoneRequest struct {
	Name    string    `json:"name"    validate:"required"`
	DueDate *jsonDate `json:"dueDate" swaggertype:"string"`
	Status  string    `json:"status"  validate:"omitempty,oneof=pending completed delayed"`
}

type timelineRequest struct {
	StartDate  *jsonDate           `json:"startDate"  swaggertype:"string"`
	EndDate    *jsonDate           `json:"endDate"    swaggertype:"string"`
	Milestones []milestoneRequest `json:"milestones" validate:"omitempty,dive"`
}

// createProjectRequest accepts the dates either at the top level or inside
// timeline; the top-level value wins. Status is ignored on creation.
type createProjectRequest struct {
	Name              string              `json:"name"        validate:"required"`
	Description       string              `json:"description" validate:"required"`
	ClientID          string              `json:"clientId"    validate:"required"`
	AssignedEmployees []assignmentRequest `json:"assignedEmployees"`
	StartDate         *jsonDate           `json:"startDate"   swaggertype:"string"`
	EndDate           *jsonDate           `json:"endDate"     swaggertype:"string"`
	Timeline          *timelineRequest    `json:"timeline"`
	Budget            *float64            `json:"budget"      validate:"required,gte=0"`
	Priority          string              `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Status            string              `json:"status"`
}

// updateProjectRequest is a partial update; omitted fields stay unchanged.
type updateProjectRequest struct {
	Name              *string             `json:"name"        validate:"omitempty"`
	Description       *string             `json:"description" validate:"omitempty"`
	ClientID          *string             `json:"clientId"    validate:"omitempty"`
	AssignedEmployees []assignmentRequest `json:"assignedEmployees"`
	StartDate         *jsonDate           `json:"startDate"   swaggertype:"string"`
	EndDate           *jsonDate           `json:"endDate"     swaggertype:"string"`
	Timeline          *timelineRequest    `json:"timeline"`
	Budget            *float64            `json:"budget"      validate:"omitempty,gte=0"`
	Priority          *string             `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Status            *string             `json:"status"      validate:"omitempty,oneof=ongoing hold completed"`
}

type milestoneResponse struct {
	Name    string     `json:"name"`
	DueDate *time.Time `json:"dueDate,omitempty"`
	Status  string     `json:"status"`
}

type timelineResponse struct {
	StartDate  time.Time           `json:"startDate"`
	EndDate    time.Time           `json:"endDate"`
	Milestones []milestoneResponse `json:"milestones"`
}

type assignmentResponse struct {
	Employee userSummaryResponse `json:"employee"`
	Role     string              `json:"role"`
}

type projectResponse struct {
	ID                string               `json:"_id"`
	Name              string               `json:"name"`
	Description       string               `json:"description"`
	Client            userSummaryResponse  `json:"client"`
	AssignedEmployees []assignmentResponse `json:"assignedEmployees"`
	Timeline          timelineResponse     `json:"timeline"`
	Status            string               `json:"status"`
	Budget            float64              `json:"budget"`
	Priority          string               `json:"priority"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

type priorityStatsResponse struct {
	Low    int64 `json:"low"`
	Medium int64 `json:"medium"`
	High   int64 `json:"high"`
}

type projectStatsResponse struct {
	TotalProjects     int64                 `json:"totalProjects"`
	OngoingProjects   int64                 `json:"ongoingProjects"`
	CompletedProjects int64                 `json:"completedProjects"`
	HoldProjects      int64                 `json:"holdProjects"`
	ByPriority        priorityStatsResponse `json:"byPriority"`
}
