package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clipdock/clipd/pkg/database"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthCheck is one component's health inside the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Database *database.PoolHealth   `json:"database,omitempty"`
	Checks   map[string]HealthCheck `json:"checks"`
}

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only clipd's own components (database, router paths) are checked; LLM
// providers are excluded so an upstream outage does not restart the pod.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy
	response := HealthResponse{Checks: checks}

	if s.deps.DB != nil {
		dbHealth, err := s.deps.DB.Health(reqCtx)
		response.Database = dbHealth
		if err != nil {
			status = healthStatusUnhealthy
			checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["database"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	router := s.deps.Router.Health(reqCtx)
	checks["router"] = HealthCheck{Status: router.Status}
	switch router.Status {
	case healthStatusUnhealthy:
		status = healthStatusUnhealthy
	case healthStatusDegraded:
		if status == healthStatusHealthy {
			status = healthStatusDegraded
		}
	}

	response.Status = status
	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, response)
}
