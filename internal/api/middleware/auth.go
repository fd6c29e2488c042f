package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bizportal/portal-api/internal/core/domain"
)

// Context keys set by Auth.
const (
	ContextKeyIdentity = "identity"
	ContextKeyRole     = "role"
)

// RevocationChecker reports whether a token issued at issuedAt was revoked
// by a later deactivation or deletion of its user.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error)
}

// Auth validates the bearer JWT and injects the caller identity into context.
// Every failure is a 401. When revoked is non-nil, tokens of deactivated or
// deleted users are rejected too; a failing check is logged and ignored.
func Auth(jwtSecret string, revoked RevocationChecker, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token, authorization denied")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			}, jwt.WithExpirationRequired())
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "token is not valid")
			}

			id, _ := claims["id"].(string)
			role, _ := claims["role"].(string)
			email, _ := claims["email"].(string)
			if id == "" || !domain.Role(role).Valid() {
				return echo.NewHTTPError(http.StatusUnauthorized, "token is not valid")
			}

			if revoked != nil {
				// A token without iat predates any revocation.
				var issuedAt time.Time
				if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
					issuedAt = iat.Time
				}
				isRevoked, err := revoked.IsRevoked(c.Request().Context(), id, issuedAt)
				if err != nil {
					log.Warn().Err(err).Str("user_id", id).Msg("revocation check failed, accepting token")
				} else if isRevoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token has been revoked")
				}
			}

			c.Set(ContextKeyIdentity, domain.Identity{ID: id, Role: domain.Role(role), Email: email})
			c.Set(ContextKeyRole, role)

			return next(c)
		}
	}
}
