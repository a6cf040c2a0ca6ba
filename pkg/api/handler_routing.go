package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clipdock/clipd/pkg/agentctx"
	"github.com/clipdock/clipd/pkg/billing"
	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/services"
)

// routeHandler handles POST /api/v1/route: full smart-routed processing.
func (s *Server) routeHandler(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" {
		respondError(c, services.NewValidationError("user_id", "is required"))
		return
	}

	result := s.deps.Router.Route(c.Request.Context(), req)
	if result.QuotaExceeded {
		respondError(c, &billing.QuotaExceededError{
			Needed:    result.QuotaNeededWTU,
			Remaining: result.QuotaRemainingWTU,
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// decideHandler handles POST /api/v1/route/decide: mode preview without
// executing anything.
func (s *Server) decideHandler(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" {
		respondError(c, services.NewValidationError("user_id", "is required"))
		return
	}

	c.JSON(http.StatusOK, s.deps.Router.Decide(c.Request.Context(), req))
}

// routeStatsHandler handles GET /api/v1/route/stats.
func (s *Server) routeStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Router.Stats())
}

type planEvent struct {
	Name string
	Data map[string]any
}

// executePlanHandler handles POST /api/v1/plans/execute. With ?stream=true
// progress events are delivered over SSE, ending with a "result" event;
// otherwise the final result is returned as one JSON body.
func (s *Server) executePlanHandler(c *gin.Context) {
	var req ExecutePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Plan.Stages) == 0 {
		respondError(c, services.NewValidationError("plan", "must have at least one stage"))
		return
	}

	params := agentctx.CreateParams{
		UserID:      req.UserID,
		BoardID:     req.BoardID,
		TaskType:    string(req.Plan.RequestType),
		Complexity:  req.Complexity,
		Preferences: req.Prefs,
	}

	if c.Query("stream") != "true" {
		result, err := s.runPlan(c, req, params, nil)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	events := make(chan planEvent, 32)
	go func() {
		defer close(events)
		result, err := s.runPlan(c, req, params, func(event string, data map[string]any) {
			events <- planEvent{Name: event, Data: data}
		})
		if err != nil {
			events <- planEvent{Name: "error", Data: map[string]any{"error": err.Error()}}
			return
		}
		events <- planEvent{Name: "result", Data: map[string]any{"result": result}}
	}()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Stream(func(_ io.Writer) bool {
		ev, ok := <-events
		if !ok {
			return false
		}
		c.SSEvent(ev.Name, ev.Data)
		return true
	})
}

func (s *Server) runPlan(c *gin.Context, req ExecutePlanRequest, params agentctx.CreateParams, emit func(string, map[string]any)) (*models.ExecutionResult, error) {
	var result *models.ExecutionResult
	err := s.deps.Sessions.WithContext(c.Request.Context(), params, func(ctx context.Context, sc agentctx.Context) error {
		var execErr error
		result, execErr = s.deps.Plans.Execute(ctx, req.Plan, sc, emit)
		return execErr
	})
	return result, err
}
