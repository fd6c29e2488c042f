package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ulule/limiter/v3"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	_ "github.com/bizportal/portal-api/docs"
	"github.com/bizportal/portal-api/internal/api"
	"github.com/bizportal/portal-api/internal/core/service"
	"github.com/bizportal/portal-api/internal/infrastructure/config"
	"github.com/bizportal/portal-api/internal/infrastructure/db/mongo"
	"github.com/bizportal/portal-api/internal/infrastructure/db/redis"
	"github.com/bizportal/portal-api/internal/infrastructure/http/handlers"
	"github.com/bizportal/portal-api/pkg/logger"
)

// @title        Business Portal API
// @version      1.0
// @description  CEO, employee and client portal: directory, projects and timesheets.
// @BasePath     /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: "portal-api"})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "portal-api",
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "portal-api",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
		Timeout:  cfg.Redis.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	// --- Repositories ---
	userRepo := mongo.NewUserRepository(db)
	projectRepo := mongo.NewProjectRepository(db)
	timesheetRepo := mongo.NewTimesheetRepository(db)
	if err := mongo.EnsureIndexes(ctx, userRepo, projectRepo, timesheetRepo); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}
	sessions := redis.NewSessionStore(rdb, cfg.TokenTTL)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, logger.Component("auth_service"))
	directoryService := service.NewDirectoryService(userRepo, projectRepo, sessions, logger.Component("directory_service"))
	projectService := service.NewProjectService(projectRepo, userRepo, logger.Component("project_service"))
	timesheetService := service.NewTimesheetService(timesheetRepo, projectRepo, userRepo, logger.Component("timesheet_service"))

	if err := authService.EnsureCEO(ctx, cfg.CEO.Email, cfg.CEO.Password); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap ceo account")
	}

	// --- Login throttle ---
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		log.Fatal().Err(err).Str("rate", cfg.LoginRateLimit).Msg("invalid LOGIN_RATE_LIMIT")
	}
	limiterStore, err := sredis.NewStoreWithOptions(rdb, limiter.StoreOptions{Prefix: "login_limiter"})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create rate limit store")
	}

	e := api.NewRouter(api.Dependencies{
		Auth:         authService,
		Directory:    directoryService,
		Projects:     projectService,
		Timesheets:   timesheetService,
		Sessions:     sessions,
		LoginLimiter: limiter.New(limiterStore, rate),
		Readiness: map[string]handlers.Check{
			"mongodb": handlers.MongoCheck(db),
			"redis":   handlers.RedisCheck(rdb),
		},
	}, api.Options{
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
		Swagger:     !cfg.IsProduction(),
	}, log)

	// --- Serve until signalled ---
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg.ShutdownTimeout))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func shutdownTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 10 * time.Second
	}
	return d
}
