// Package api exposes the HTTP surface: clipper summarization, usage and
// quota management, smart routing, plan execution and system status.
package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clipdock/clipd/pkg/agentctx"
	"github.com/clipdock/clipd/pkg/config"
	"github.com/clipdock/clipd/pkg/database"
	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/plan"
	"github.com/clipdock/clipd/pkg/routing"
	"github.com/clipdock/clipd/pkg/services"
	"github.com/clipdock/clipd/pkg/summarize"
)

// Summarizer is the clipper pipeline surface.
type Summarizer interface {
	Summarize(ctx context.Context, req summarize.Request) (*models.SummarizeResult, error)
	ConfirmTags(ctx context.Context, userID string, tags []string) error
}

// Accountant is the quota surface.
type Accountant interface {
	Status(ctx context.Context, userID string) (*models.UsageStatus, error)
	Grant(ctx context.Context, userID string, amount int, purchaseType models.PurchaseType, transactionID *string) (*models.UsageStatus, error)
	History(ctx context.Context, userID string, limit int) ([]models.PurchaseEvent, error)
}

// ModeRouter is the smart-routing surface.
type ModeRouter interface {
	Route(ctx context.Context, req models.RouteRequest) *models.RoutingResult
	Decide(ctx context.Context, req models.RouteRequest) models.ModeDecision
	Stats() models.RoutingStats
	Health(ctx context.Context) routing.HealthReport
}

// ModelCatalog lists the active model catalog.
type ModelCatalog interface {
	ListActive(ctx context.Context) ([]models.ModelEntry, error)
}

// PlanRunner executes multi-stage plans.
type PlanRunner interface {
	Execute(ctx context.Context, p models.ExecutionPlan, sc agentctx.Context, emit plan.EventFunc) (*models.ExecutionResult, error)
}

// SessionScope creates and tears down agent sessions around plan runs.
type SessionScope interface {
	WithContext(ctx context.Context, params agentctx.CreateParams, fn func(ctx context.Context, sc agentctx.Context) error) error
	Count() int
}

// CallLogStats aggregates model call attempts per tier.
type CallLogStats interface {
	StatsSince(ctx context.Context, since time.Time) ([]services.TierStats, error)
}

// CacheStats counts live summary cache entries.
type CacheStats interface {
	Count(ctx context.Context) (int, error)
}

// Deps bundles the server's collaborators.
type Deps struct {
	DB         *database.Client
	Summarizer Summarizer
	Accounts   Accountant
	Router     ModeRouter
	Catalog    ModelCatalog
	Plans      PlanRunner
	Sessions   SessionScope
	CallStats  CallLogStats
	CacheStats CacheStats
}

// Server is the HTTP API server.
type Server struct {
	cfg  *config.Config
	deps Deps
}

// NewServer creates a new API server.
func NewServer(cfg *config.Config, deps Deps) *Server {
	return &Server{cfg: cfg, deps: deps}
}

// Routes builds the gin engine with all endpoints registered.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		clipper := v1.Group("/clipper")
		clipper.POST("/summarize", s.summarizeHandler)
		clipper.POST("/upload", s.uploadHandler)
		clipper.POST("/tags/confirm", s.confirmTagsHandler)

		usage := v1.Group("/usage")
		usage.GET("/:user_id", s.usageStatusHandler)
		usage.GET("/:user_id/purchases", s.purchaseHistoryHandler)
		usage.POST("/:user_id/purchase", s.purchaseHandler)

		v1.GET("/models", s.modelsHandler)

		route := v1.Group("/route")
		route.POST("", s.routeHandler)
		route.POST("/decide", s.decideHandler)
		route.GET("/stats", s.routeStatsHandler)

		v1.POST("/plans/execute", s.executePlanHandler)

		v1.GET("/system/status", s.systemStatusHandler)
	}

	return r
}
