package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/routing"
	"github.com/clipdock/clipd/pkg/services"
)

// callStatsWindow is the lookback for per-tier call statistics.
const callStatsWindow = 24 * time.Hour

// SystemStatusResponse is returned by GET /api/v1/system/status.
type SystemStatusResponse struct {
	Routing       models.RoutingStats   `json:"routing"`
	RouterHealth  routing.HealthReport  `json:"router_health"`
	CallStats     []services.TierStats  `json:"call_stats"`
	ActiveModels  int                   `json:"active_models"`
	CacheEntries  int                   `json:"cache_entries"`
	AgentSessions int                   `json:"agent_sessions"`
	Configuration ConfigurationStats    `json:"configuration"`
}

// ConfigurationStats contains counts of loaded configuration items.
type ConfigurationStats struct {
	SeedModels       int `json:"seed_models"`
	EnabledProviders int `json:"enabled_providers"`
}

// systemStatusHandler handles GET /api/v1/system/status.
func (s *Server) systemStatusHandler(c *gin.Context) {
	ctx := c.Request.Context()

	response := SystemStatusResponse{
		Routing:      s.deps.Router.Stats(),
		RouterHealth: s.deps.Router.Health(ctx),
		CallStats:    []services.TierStats{},
	}
	if s.cfg != nil {
		stats := s.cfg.Stats()
		response.Configuration = ConfigurationStats{
			SeedModels:       stats.SeedModels,
			EnabledProviders: stats.EnabledProviders,
		}
	}

	if entries, err := s.deps.Catalog.ListActive(ctx); err == nil {
		response.ActiveModels = len(entries)
	}
	if stats, err := s.deps.CallStats.StatsSince(ctx, time.Now().Add(-callStatsWindow)); err == nil {
		response.CallStats = stats
	}
	if count, err := s.deps.CacheStats.Count(ctx); err == nil {
		response.CacheEntries = count
	}
	response.AgentSessions = s.deps.Sessions.Count()

	c.JSON(http.StatusOK, response)
}
