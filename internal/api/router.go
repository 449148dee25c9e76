package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/valo-rant/community-api/internal/api/handler"
	"github.com/valo-rant/community-api/internal/core/ports"
)

// Dependencies carries everything the router needs. Redis is optional and
// only consulted by the readiness probe. Metrics defaults to the global
// Prometheus registry; tests pass their own to avoid duplicate registration.
type Dependencies struct {
	Logger        zerolog.Logger
	Identity      ports.IdentityService
	Posts         ports.PostStore
	Patches       ports.PatchStore
	Catalog       ports.CatalogService
	CatalogClient ports.CatalogClient
	Redis         *redis.Client
	Metrics       *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	if deps.Metrics != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "valorant",
			Registerer: deps.Metrics,
		}))
	} else {
		e.Use(echoprometheus.NewMiddleware("valorant"))
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Identity)
	postHandler := handler.NewPostHandler(deps.Posts)
	patchHandler := handler.NewPatchHandler(deps.Patches)
	agentHandler := handler.NewAgentHandler(deps.Catalog)

	// --- Agents (read-only catalog proxy) ---
	e.GET("/api/agents", agentHandler.List)

	// --- Auth ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Rant board ---
	e.GET("/api/posts", postHandler.List)
	e.POST("/api/posts", postHandler.Create)
	e.DELETE("/api/posts/:id", postHandler.Delete)
	e.POST("/api/posts/:id/reply", postHandler.Reply)
	e.DELETE("/api/posts/:postId/reply/:replyId", postHandler.DeleteReply)

	// --- Patch notes ---
	e.GET("/api/patches", patchHandler.List)
	e.POST("/api/patches", patchHandler.Create)
	e.PUT("/api/patches/:id", patchHandler.Update)
	e.DELETE("/api/patches/:id", patchHandler.Delete)

	// --- Operational endpoints ---
	if deps.Metrics != nil {
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: deps.Metrics,
		}))
	} else {
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.CatalogClient, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
