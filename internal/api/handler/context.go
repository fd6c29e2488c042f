package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizportal/portal-api/internal/api/middleware"
	"github.com/bizportal/portal-api/internal/core/domain"
)

// callerIdentity returns the identity injected by the Auth middleware. Its
// absence means the route was mounted without the middleware.
func callerIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := c.Get(middleware.ContextKeyIdentity).(domain.Identity)
	if !ok || id.ID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// bindAndValidate decodes the JSON body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrValidation)
	}
	return c.Validate(req)
}
