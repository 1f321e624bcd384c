package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trainboard/docs"

	"github.com/labstack/echo/v4"

	"trainboard/internal/auth"
	"trainboard/internal/cache"
	"trainboard/internal/config"
	"trainboard/internal/db"
	"trainboard/internal/handler"
	"trainboard/internal/logger"
	"trainboard/internal/repository"
	"trainboard/internal/router"
	"trainboard/internal/service"
)

// @title Trainboard API
// @version 1.0
// @description Train schedule board: stations, trains, schedules and profiles with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
	log.Info("server exited")
}

// run serves until ctx is cancelled. Resources opened here are released
// before it returns, on both the error and the shutdown path.
func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseURL, db.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		return fmt.Errorf("database init: %w", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Warn("failed to close database", slog.Any("error", err))
		}
	}()

	if cfg.AutoMigrate {
		if err := db.Migrate(gormDB); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		log.Warn("redis unavailable, running without cache and token revocation", slog.Any("error", err))
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(gormDB)
	stationRepo := repository.NewStationRepository(gormDB)
	trainRepo := repository.NewTrainRepository(gormDB)
	scheduleRepo := repository.NewScheduleRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	profileService := service.NewProfileService(profileRepo)
	stationService := service.NewStationService(stationRepo, cacheClient)
	trainService := service.NewTrainService(trainRepo, cacheClient)
	scheduleService := service.NewScheduleService(scheduleRepo)
	authService := service.NewAuthService(profileService, jwtService, tokenStore)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, log,
		router.Security{JWT: jwtService, Tokens: tokenStore},
		router.Handlers{
			Auth:     handler.NewAuthHandler(authService, log),
			Profile:  handler.NewProfileHandler(profileService, log),
			Station:  handler.NewStationHandler(stationService, log),
			Train:    handler.NewTrainHandler(trainService, log),
			Schedule: handler.NewScheduleHandler(scheduleService, log),
			Seed:     handler.NewSeedHandler(gormDB, log),
		},
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	addr := ":" + cfg.ServerPort
	serveErr := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("addr", addr), slog.String("swagger", "http://localhost"+addr+"/swagger/index.html"))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
