package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sirbot/sir/internal/adapters/http/handlers"
	"github.com/sirbot/sir/internal/adapters/http/middleware"
	"github.com/sirbot/sir/internal/platform/config"
	"github.com/sirbot/sir/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// JokeHandler handles the joke API endpoints.
	JokeHandler *handlers.JokeHandler

	// PageHandler serves the browser front end.
	PageHandler *handlers.PageHandler

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. OpenTelemetry tracing, then metrics - spans exist before recording
//  4. Logging - request logging (skips health endpoints)
//  5. Timeout - request deadline on the API group
//
// Route groups:
//   - / (front end): the embedded joke page
//   - /-/ (internal): health endpoints
//   - /api/v1/ (public API): joke endpoints
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	if cfg.PageHandler != nil {
		cfg.PageHandler.RegisterPageRoutes(engine)
	}

	// Health endpoints carry no timeout so probes stay cheap
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	if cfg.JokeHandler != nil {
		cfg.JokeHandler.RegisterJokeRoutes(apiV1)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with sensible defaults.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	jokeHandler *handlers.JokeHandler,
	pageHandler *handlers.PageHandler,
	healthHandler *handlers.HealthHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		JokeHandler:   jokeHandler,
		PageHandler:   pageHandler,
		HealthHandler: healthHandler,
		Timeout:       DefaultRequestTimeout,
	}
}
