package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizportal/portal-api/internal/core/ports"
)

// PortalHandler serves the self-service views of employees and clients.
// Every read is scoped to the caller's own identity.
type PortalHandler struct {
	directory ports.DirectoryService
	projects  ports.ProjectService
}

func NewPortalHandler(directory ports.DirectoryService, projects ports.ProjectService) *PortalHandler {
	return &PortalHandler{directory: directory, projects: projects}
}

// Profile handles GET /api/employee/profile and GET /api/client/profile.
//
// @Summary      Own profile
// @Description  The caller's record with the projects it is attached to.
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/employee/profile [get]
// @Router       /api/client/profile [get]
func (h *PortalHandler) Profile(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.directory.Profile(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// UpdateProfile handles PUT /api/employee/profile.
//
// @Summary      Edit own profile
// @Tags         employee
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/employee/profile [put]
func (h *PortalHandler) UpdateProfile(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.directory.UpdateProfile(c.Request().Context(), caller, toProfileInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// EmployeeProjects handles GET /api/employee/projects.
//
// @Summary      Projects the caller is assigned to
// @Tags         employee
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   projectResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/employee/projects [get]
func (h *PortalHandler) EmployeeProjects(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.projects.ListForEmployee(c.Request().Context(), caller.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponses(views))
}

// ClientProjects handles GET /api/client/projects.
//
// @Summary      Projects owned by the caller
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   projectResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/client/projects [get]
func (h *PortalHandler) ClientProjects(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.projects.ListForClient(c.Request().Context(), caller.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponses(views))
}
