package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizportal/portal-api/internal/core/domain"
)

// RBAC enforces role-based access control. A role mismatch is reported as
// 401, the same status as an authentication failure.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "access denied"})
			}
			return next(c)
		}
	}
}
