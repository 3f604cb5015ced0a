package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/devconnector/devconnector-api/docs" // Swagger docs
	"github.com/devconnector/devconnector-api/internal/api/handler"
	"github.com/devconnector/devconnector-api/internal/api/middleware"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

// Dependencies are the services the HTTP layer is built on.
type Dependencies struct {
	Auth     ports.AuthService
	Profiles ports.ProfileService
	Posts    ports.PostService
	Tokens   ports.TokenVerifier
	// Readiness maps a dependency name to its check for GET /health/ready.
	Readiness map[string]handler.DependencyCheck
	// Registry receives the HTTP collectors and backs GET /metrics. Nil means
	// the Prometheus default registry, where the domain counters live.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	// The request logger renders errors through the error handler, so the
	// metrics middleware above it sees the final status code. Recover hands
	// panics back up as errors instead of writing the response itself.
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "devconnector",
		Subsystem:  "http",
		Registerer: registerer,
	}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		DisableErrorHandler: true,
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			middleware.TokenHeader,
			"Idempotency-Key",
		},
	}))

	auth := middleware.Auth(deps.Tokens)

	// --- Users & auth ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/api/users", authHandler.Register)
	e.POST("/api/auth", authHandler.Login)
	e.GET("/api/auth", authHandler.Me, auth)

	// --- Profiles ---
	profileHandler := handler.NewProfileHandler(deps.Profiles)
	profile := e.Group("/api/profile")
	profile.GET("", profileHandler.List)
	profile.GET("/user/:user_id", profileHandler.GetByUser)
	profile.GET("/github/:username", profileHandler.GitHubRepos)
	profile.GET("/me", profileHandler.Me, auth)
	profile.POST("", profileHandler.Upsert, auth)
	profile.DELETE("", profileHandler.Delete, auth)
	profile.PUT("/experience", profileHandler.AddExperience, auth)
	profile.DELETE("/experience/:exp_id", profileHandler.RemoveExperience, auth)
	profile.PUT("/education", profileHandler.AddEducation, auth)
	profile.DELETE("/education/:edu_id", profileHandler.RemoveEducation, auth)

	// --- Posts (all private) ---
	postHandler := handler.NewPostHandler(deps.Posts)
	posts := e.Group("/api/posts", auth)
	posts.POST("", postHandler.Create)
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)
	posts.DELETE("/:id", postHandler.Delete)
	posts.PUT("/like/:id", postHandler.Like)
	posts.PUT("/unlike/:id", postHandler.Unlike)
	posts.POST("/comment/:id", postHandler.AddComment)
	posts.DELETE("/comment/:id/:comment_id", postHandler.RemoveComment)

	// --- Operations (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	})

	return e
}
