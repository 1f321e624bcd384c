package router

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"trainboard/internal/auth"
	"trainboard/internal/config"
	"trainboard/internal/errors"
	"trainboard/internal/handler"
	"trainboard/internal/model"
	"trainboard/internal/validation"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth     *handler.AuthHandler
	Profile  *handler.ProfileHandler
	Station  *handler.StationHandler
	Train    *handler.TrainHandler
	Schedule *handler.ScheduleHandler
	Seed     *handler.SeedHandler
}

// Security carries what the JWT gate needs.
type Security struct {
	JWT    *auth.JWTService
	Tokens auth.TokenStoreInterface
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, logger *slog.Logger, sec Security, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
	}))

	e.Validator = &CustomValidator{validator: validation.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	requireToken := auth.Middleware(sec.JWT, sec.Tokens)
	adminOnly := auth.RequireRole(model.RoleAdmin)

	// Auth routes
	authGroup := api.Group("/auth", authRateLimiter(cfg))
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.GET("/me", h.Auth.Me, requireToken)
	authGroup.POST("/logout", h.Auth.Logout, requireToken)

	// Profile routes
	profiles := api.Group("/profiles", requireToken)
	profiles.GET("", h.Profile.List, adminOnly)
	profiles.POST("", h.Profile.Create, adminOnly)
	profiles.GET("/:id", h.Profile.Get)
	profiles.PATCH("/:id", h.Profile.Update)
	profiles.DELETE("/:id", h.Profile.Delete, adminOnly)

	// Station routes
	api.GET("/stations", h.Station.List)
	api.GET("/stations/:id", h.Station.Get)
	api.POST("/stations", h.Station.Create, requireToken, adminOnly)
	api.PATCH("/stations/:id", h.Station.Update, requireToken, adminOnly)
	api.DELETE("/stations/:id", h.Station.Delete, requireToken, adminOnly)

	// Train routes
	api.GET("/trains", h.Train.List)
	api.GET("/trains/:id", h.Train.Get)
	api.POST("/trains", h.Train.Create, requireToken, adminOnly)
	api.PATCH("/trains/:id", h.Train.Update, requireToken, adminOnly)
	api.DELETE("/trains/:id", h.Train.Delete, requireToken, adminOnly)

	// Schedule routes
	api.GET("/schedules", h.Schedule.List)
	api.GET("/schedules/:id", h.Schedule.Get)
	api.POST("/schedules", h.Schedule.Create, requireToken, adminOnly)
	api.PATCH("/schedules/:id", h.Schedule.Update, requireToken, adminOnly)
	api.DELETE("/schedules/:id", h.Schedule.Delete, requireToken, adminOnly)

	if h.Seed != nil {
		api.POST("/admin/seed", h.Seed.SeedReference, requireToken, adminOnly)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validation.Validator
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil && v.Status >= http.StatusInternalServerError {
				attrs = append(attrs, slog.Any("error", v.Error))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// authRateLimiter throttles credential endpoints per client IP.
// A non-positive rate disables it.
func authRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	if cfg.RateLimitAuthRPS <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(cfg.RateLimitAuthRPS),
		Burst: cfg.RateLimitAuthBurst,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, errors.ErrorResponse{
				Error: "too many requests",
				Code:  "RATE_LIMITED",
			})
		},
	})
}
