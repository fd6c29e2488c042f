package handler

import "time"

type companyDetailsPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// createUserRequest serves both the employee and the client form; the route
// decides the role and the service ignores the other role's fields.
type createUserRequest struct {
	Name           string                 `json:"name"     validate:"required"`
	Email          string                 `json:"email"    validate:"required,email"`
	Password       string                 `json:"password" validate:"required"`
	Contact        string                 `json:"contact"`
	Department     string                 `json:"department"`
	Position       string                 `json:"position"`
	Skills         []string               `json:"skills"`
	CompanyDetails *companyDetailsPayload `json:"companyDetails"`
}

// updateUserRequest is a partial update; omitted fields stay unchanged.
type updateUserRequest struct {
	Name           *string                `json:"name"       validate:"omitempty"`
	Email          *string                `json:"email"      validate:"omitempty,email"`
	Contact        *string                `json:"contact"`
	Access         *string                `json:"access"     validate:"omitempty,oneof=active inactive"`
	Department     *string                `json:"department"`
	Position       *string                `json:"position"`
	Skills         []string               `json:"skills"`
	CompanyDetails *companyDetailsPayload `json:"companyDetails"`
}

// updateProfileRequest is what employees may change about themselves.
type updateProfileRequest struct {
	Name       *string  `json:"name"       validate:"omitempty"`
	Email      *string  `json:"email"      validate:"omitempty,email"`
	Contact    *string  `json:"contact"`
	Department *string  `json:"department"`
	Position   *string  `json:"position"`
	Skills     []string `json:"skills"`
}

// sessionUserResponse is the role-shaped user returned at login.
type sessionUserResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	Role           string                 `json:"role"`
	Access         string                 `json:"access"`
	Department     string                 `json:"department,omitempty"`
	Position       string                 `json:"position,omitempty"`
	Skills         []string               `json:"skills,omitempty"`
	CompanyDetails *companyDetailsPayload `json:"companyDetails,omitempty"`
}

type loginResponse struct {
	Token string              `json:"token"`
	User  sessionUserResponse `json:"user"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID             string                 `json:"_id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	Contact        string                 `json:"contact,omitempty"`
	Role           string                 `json:"role"`
	Access         string                 `json:"access"`
	Department     string                 `json:"department,omitempty"`
	Position       string                 `json:"position,omitempty"`
	Skills         []string               `json:"skills,omitempty"`
	CompanyDetails *companyDetailsPayload `json:"companyDetails,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

type userMessageResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type projectRefResponse struct {
	ID     string `json:"_id"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status,omitempty"`
}

type profileResponse struct {
	userResponse
	ProjectAssignments []projectRefResponse `json:"projectAssignments"`
}

// userSummaryResponse is a referenced user inside project and timesheet reads.
type userSummaryResponse struct {
	ID             string                 `json:"_id"`
	Name           string                 `json:"name,omitempty"`
	Email          string                 `json:"email,omitempty"`
	Position       string                 `json:"position,omitempty"`
	Department     string                 `json:"department,omitempty"`
	CompanyDetails *companyDetailsPayload `json:"companyDetails,omitempty"`
}
