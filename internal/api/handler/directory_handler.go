package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizportal/portal-api/internal/api/metrics"
	"github.com/bizportal/portal-api/internal/core/domain"
	"github.com/bizportal/portal-api/internal/core/ports"
)

// DirectoryHandler serves the CEO's employee and client management.
type DirectoryHandler struct {
	service ports.DirectoryService
}

func NewDirectoryHandler(service ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// ListEmployees handles GET /api/ceo/employees.
//
// @Summary      List employees
// @Tags         ceo
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/ceo/employees [get]
func (h *DirectoryHandler) ListEmployees(c echo.Context) error {
	return h.list(c, domain.RoleEmployee)
}

// CreateEmployee handles POST /api/ceo/employees.
//
// @Summary      Create an employee
// @Tags         ceo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Employee"
// @Success      201   {object}  userMessageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/ceo/employees [post]
func (h *DirectoryHandler) CreateEmployee(c echo.Context) error {
	return h.create(c, domain.RoleEmployee, "Employee created successfully")
}

// UpdateEmployee handles PUT /api/ceo/employees/:id.
//
// @Summary      Update an employee
// @Description  Partial update; only the fields present are changed. Setting access to inactive revokes the employee's tokens.
// @Tags         ceo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Employee id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userMessageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/ceo/employees/{id} [put]
func (h *DirectoryHandler) UpdateEmployee(c echo.Context) error {
	return h.update(c, domain.RoleEmployee, "Employee updated")
}

// DeleteEmployee handles DELETE /api/ceo/employees/:id.
//
// @Summary      Delete an employee
// @Tags         ceo
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/ceo/employees/{id} [delete]
func (h *DirectoryHandler) DeleteEmployee(c echo.Context) error {
	return h.delete(c, domain.RoleEmployee, "Employee deleted successfully")
}

// ListClients handles GET /api/ceo/clients.
//
// @Summary      List clients
// @Tags         ceo
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/ceo/clients [get]
func (h *DirectoryHandler) ListClients(c echo.Context) error {
	return h.list(c, domain.RoleClient)
}

// CreateClient handles POST /api/ceo/clients.
//
// @Summary      Create a client
// @Description  companyDetails name, address and phone are required.
// @Tags         ceo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Client"
// @Success      201   {object}  userMessageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/ceo/clients [post]
func (h *DirectoryHandler) CreateClient(c echo.Context) error {
	return h.create(c, domain.RoleClient, "Client created successfully")
}

// UpdateClient handles PUT /api/ceo/clients/:id.
//
// @Summary      Update a client
// @Tags         ceo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Client id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userMessageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/ceo/clients/{id} [put]
func (h *DirectoryHandler) UpdateClient(c echo.Context) error {
	return h.update(c, domain.RoleClient, "Client updated")
}

// DeleteClient handles DELETE /api/ceo/clients/:id.
//
// @Summary      Delete a client
// @Tags         ceo
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/ceo/clients/{id} [delete]
func (h *DirectoryHandler) DeleteClient(c echo.Context) error {
	return h.delete(c, domain.RoleClient, "Client deleted successfully")
}

func (h *DirectoryHandler) list(c echo.Context, role domain.Role) error {
	users, err := h.service.List(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

func (h *DirectoryHandler) create(c echo.Context, role domain.Role, msg string) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), toCreateUserInput(req, role))
	if err != nil {
		return err
	}
	metrics.UsersCreatedTotal.WithLabelValues(string(role)).Inc()

	return c.JSON(http.StatusCreated, userMessageResponse{Message: msg, User: toUserResponse(user)})
}

func (h *DirectoryHandler) update(c echo.Context, role domain.Role, msg string) error {
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), role, toUpdateUserInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userMessageResponse{Message: msg, User: toUserResponse(user)})
}

func (h *DirectoryHandler) delete(c echo.Context, role domain.Role, msg string) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), role); err != nil {
		return err
	}
	metrics.UsersDeletedTotal.WithLabelValues(string(role)).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}
