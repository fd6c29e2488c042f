package handler

import "time"

// hoursPayload is the seven-day grid; omitted days count as zero.
type hoursPayload struct {
	Monday    int `json:"monday"    validate:"min=0,max=24"`
	Tuesday   int `json:"tuesday"   validate:"min=0,max=24"`
	Wednesday int `json:"wednesday" validate:"min=0,max=24"`
	Thursday  int `json:"thursday"  validate:"min=0,max=24"`
	Friday    int `json:"friday"    validate:"min=0,max=24"`
	Saturday  int `json:"saturday"  validate:"min=0,max=24"`
	Sunday    int `json:"sunday"    validate:"min=0,max=24"`
}

type submitTimesheetRequest struct {
	ProjectID string       `json:"projectId" validate:"required"`
	ManagerID string       `json:"managerId"`
	Week      *jsonDate    `json:"week"      validate:"required" swaggertype:"string"`
	Hours     hoursPayload `json:"hours"`
}

type updateTimesheetRequest struct {
	Hours *hoursPayload `json:"hours" validate:"required"`
}

type reviewTimesheetRequest struct {
	Status string `json:"status" validate:"required,oneof=submitted inProgress approved"`
}

type timesheetResponse struct {
	ID        string               `json:"_id"`
	Employee  userSummaryResponse  `json:"employee"`
	Project   projectRefResponse   `json:"project"`
	Manager   *userSummaryResponse `json:"manager,omitempty"`
	Week      time.Time            `json:"week"`
	Hours     hoursPayload         `json:"hours"`
	Status    string               `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}
