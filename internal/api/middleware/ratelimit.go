package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/ulule/limiter/v3"
)

// RateLimit throttles requests per client IP with the given limiter. A store
// failure lets the request through.
func RateLimit(l *limiter.Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			lctx, err := l.Get(c.Request().Context(), ip)
			if err != nil {
				log.Warn().Err(err).Str("ip", ip).Msg("rate limit check failed")
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

			if lctx.Reached {
				log.Warn().Str("ip", ip).Int64("limit", lctx.Limit).Msg("rate limit exceeded")
				return c.JSON(http.StatusTooManyRequests, map[string]string{"message": "too many requests, please try again later"})
			}
			return next(c)
		}
	}
}
