package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizportal/portal-api/internal/api/metrics"
	"github.com/bizportal/portal-api/internal/core/ports"
)

// ProjectHandler serves the CEO project management endpoints.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /api/ceo/projects.
//
// @Summary      List projects
// @Description  Every project with client and team resolved, newest first.
// @Tags         ceo
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   projectResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/ceo/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponses(views))
}

// Get handles GET /api/ceo/projects/:id.
//
// @Summary      Get a project
// @Tags         ceo
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  projectResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/ceo/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponse(*view))
}

// Create handles POST /api/ceo/projects.
//
// @Summary      Create a project
// @Description  Status always starts as ongoing. Team entries without a resolvable employee are dropped.
// @Tags         ceo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project"
// @Success      201   {object}  projectResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/ceo/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.service.Create(c.Request().Context(), toCreateProjectInput(req))
	if err != nil {
		return err
	}
	metrics.ProjectsCreatedTotal.WithLabelValues(string(view.Project.Priority)).Inc()

	return c.JSON(http.StatusCreated, toProjectResponse(*view))
}

// Update handles PUT /api/ceo/projects/:id.
//
// @Summary      Update a project
// @Description  Partial update. Status may be moved between ongoing, hold and completed in any direction.
// @Tags         ceo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to change"
// @Success      200   {object}  projectResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/ceo/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateProjectInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponse(*view))
}

// Delete handles DELETE /api/ceo/projects/:id.
//
// @Summary      Delete a project
// @Tags         ceo
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/ceo/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.ProjectsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Project deleted"})
}

// Stats handles GET /api/ceo/projects/stats.
//
// @Summary      Project statistics
// @Description  Counts over the current project set; never cached.
// @Tags         ceo
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  projectStatsResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/ceo/projects/stats [get]
func (h *ProjectHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectStatsResponse(stats))
}
