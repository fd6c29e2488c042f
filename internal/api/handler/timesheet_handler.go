package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizportal/portal-api/internal/api/metrics"
	"github.com/bizportal/portal-api/internal/core/domain"
	"github.com/bizportal/portal-api/internal/core/ports"
)

// TimesheetHandler serves the employee timesheet endpoints and the CEO review.
type TimesheetHandler struct {
	service ports.TimesheetService
}

func NewTimesheetHandler(service ports.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{service: service}
}

// Submit handles POST /api/employee/timesheet.
//
// @Summary      Submit a timesheet
// @Description  Records one week of hours for the caller. Several entries for the same week are kept.
// @Tags         employee
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitTimesheetRequest  true  "Timesheet"
// @Success      201   {object}  timesheetResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/employee/timesheet [post]
func (h *TimesheetHandler) Submit(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req submitTimesheetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.service.Submit(c.Request().Context(), ports.SubmitTimesheetInput{
		EmployeeID: caller.ID,
		ProjectID:  req.ProjectID,
		ManagerID:  req.ManagerID,
		Week:       dateOrZero(req.Week),
		Hours:      toHours(req.Hours),
	})
	if err != nil {
		return err
	}
	metrics.TimesheetsSubmittedTotal.Inc()
	metrics.TimesheetWeeklyHours.Observe(float64(view.Timesheet.Hours.Total()))

	return c.JSON(http.StatusCreated, toTimesheetResponse(*view))
}

// ListMine handles GET /api/employee/timesheets.
//
// @Summary      List own timesheets
// @Description  Newest week first, with project and manager resolved.
// @Tags         employee
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   timesheetResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/employee/timesheets [get]
func (h *TimesheetHandler) ListMine(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListForEmployee(c.Request().Context(), caller.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTimesheetResponses(views))
}

// Update handles PUT /api/employee/timesheet/:id.
//
// @Summary      Update own timesheet hours
// @Description  Replaces the hours and resets the status to submitted. Approved timesheets can not be changed.
// @Tags         employee
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Timesheet id"
// @Param        body  body      updateTimesheetRequest  true  "New hours"
// @Success      200   {object}  timesheetResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/employee/timesheet/{id} [put]
func (h *TimesheetHandler) Update(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req updateTimesheetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.service.Update(c.Request().Context(), c.Param("id"), caller.ID, toHours(*req.Hours))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTimesheetResponse(*view))
}

// ListAll handles GET /api/ceo/timesheets.
//
// @Summary      List every timesheet
// @Tags         ceo
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   timesheetResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/ceo/timesheets [get]
func (h *TimesheetHandler) ListAll(c echo.Context) error {
	views, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTimesheetResponses(views))
}

// Review handles PUT /api/ceo/timesheets/:id/status.
//
// @Summary      Review a timesheet
// @Description  submitted → inProgress|approved, inProgress → approved|submitted. Approved is final.
// @Tags         ceo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Timesheet id"
// @Param        body  body      reviewTimesheetRequest  true  "Target status"
// @Success      200   {object}  timesheetResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/ceo/timesheets/{id}/status [put]
func (h *TimesheetHandler) Review(c echo.Context) error {
	var req reviewTimesheetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	status := domain.TimesheetStatus(req.Status)
	view, err := h.service.Review(c.Request().Context(), c.Param("id"), status)
	if err != nil {
		return err
	}
	metrics.TimesheetReviewsTotal.WithLabelValues(string(status)).Inc()

	return c.JSON(http.StatusOK, toTimesheetResponse(*view))
}
