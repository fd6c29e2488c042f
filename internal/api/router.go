package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/bizportal/portal-api/internal/api/handler"
	"github.com/bizportal/portal-api/internal/api/middleware"
	"github.com/bizportal/portal-api/internal/core/domain"
	"github.com/bizportal/portal-api/internal/core/ports"
	"github.com/bizportal/portal-api/internal/infrastructure/http/handlers"
)

// Dependencies are the use cases and probes the router exposes.
type Dependencies struct {
	Auth       ports.AuthService
	Directory  ports.DirectoryService
	Projects   ports.ProjectService
	Timesheets ports.TimesheetService

	// Sessions rejects tokens of deactivated or deleted users. Optional.
	Sessions middleware.RevocationChecker
	// LoginLimiter throttles POST /api/auth/login per client IP. Optional.
	LoginLimiter *limiter.Limiter
	// Readiness holds the dependency probes behind /health/ready.
	Readiness map[string]handlers.Check
}

// Options tunes the HTTP surface.
type Options struct {
	JWTSecret   string
	CORSOrigins []string
	// Swagger mounts /swagger/*; disabled in production.
	Swagger bool
	// Registry receives the HTTP metrics and backs /metrics. Nil uses the
	// Prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(prometheusMiddleware(opts.Registry))

	// --- Ops endpoints (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewReadinessHandler(deps.Readiness).Readiness)
	e.GET("/metrics", metricsHandler(opts.Registry))
	if opts.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	directoryHandler := handler.NewDirectoryHandler(deps.Directory)
	projectHandler := handler.NewProjectHandler(deps.Projects)
	timesheetHandler := handler.NewTimesheetHandler(deps.Timesheets)
	portalHandler := handler.NewPortalHandler(deps.Directory, deps.Projects)

	authMiddleware := middleware.Auth(opts.JWTSecret, deps.Sessions, log)

	apiGroup := e.Group("/api")

	// --- Auth ---
	var loginMiddleware []echo.MiddlewareFunc
	if deps.LoginLimiter != nil {
		loginMiddleware = append(loginMiddleware, middleware.RateLimit(deps.LoginLimiter, log))
	}
	apiGroup.POST("/auth/login", authHandler.Login, loginMiddleware...)

	// --- CEO ---
	ceo := apiGroup.Group("/ceo", authMiddleware, middleware.RBAC(domain.RoleCEO))
	ceo.GET("/employees", directoryHandler.ListEmployees)
	ceo.POST("/employees", directoryHandler.CreateEmployee)
	ceo.PUT("/employees/:id", directoryHandler.UpdateEmployee)
	ceo.DELETE("/employees/:id", directoryHandler.DeleteEmployee)

	ceo.GET("/clients", directoryHandler.ListClients)
	ceo.POST("/clients", directoryHandler.CreateClient)
	ceo.PUT("/clients/:id", directoryHandler.UpdateClient)
	ceo.DELETE("/clients/:id", directoryHandler.DeleteClient)

	ceo.GET("/projects", projectHandler.List)
	ceo.POST("/projects", projectHandler.Create)
	ceo.GET("/projects/stats", projectHandler.Stats)
	ceo.GET("/projects/:id", projectHandler.Get)
	ceo.PUT("/projects/:id", projectHandler.Update)
	ceo.DELETE("/projects/:id", projectHandler.Delete)

	ceo.GET("/timesheets", timesheetHandler.ListAll)
	ceo.PUT("/timesheets/:id/status", timesheetHandler.Review)

	// --- Employee ---
	employee := apiGroup.Group("/employee", authMiddleware, middleware.RBAC(domain.RoleEmployee))
	employee.GET("/profile", portalHandler.Profile)
	employee.PUT("/profile", portalHandler.UpdateProfile)
	employee.GET("/projects", portalHandler.EmployeeProjects)
	employee.POST("/timesheet", timesheetHandler.Submit)
	employee.GET("/timesheets", timesheetHandler.ListMine)
	employee.PUT("/timesheet/:id", timesheetHandler.Update)

	// --- Client ---
	client := apiGroup.Group("/client", authMiddleware, middleware.RBAC(domain.RoleClient))
	client.GET("/profile", portalHandler.Profile)
	client.GET("/projects", portalHandler.ClientProjects)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Str("remote_ip", v.RemoteIP).
				Dur("latency", v.Latency.Round(time.Microsecond)).
				Msg("request")
			return nil
		},
	})
}

func skipOpsPaths(c echo.Context) bool {
	switch c.Path() {
	case "/metrics", "/health", "/health/ready":
		return true
	}
	return false
}

func prometheusMiddleware(reg *prometheus.Registry) echo.MiddlewareFunc {
	cfg := echoprometheus.MiddlewareConfig{
		Subsystem: "portal",
		Skipper:   skipOpsPaths,
	}
	if reg != nil {
		cfg.Registerer = reg
	}
	return echoprometheus.NewMiddlewareWithConfig(cfg)
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}
