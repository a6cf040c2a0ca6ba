package routing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clipdock/clipd/pkg/agent"
	"github.com/clipdock/clipd/pkg/agentctx"
	"github.com/clipdock/clipd/pkg/models"
)

// LegacyAdapter is the single-shot processing path: one request in, one
// result out, no agent orchestration.
type LegacyAdapter interface {
	Process(ctx context.Context, req models.RouteRequest) (result map[string]any, wtuConsumed int, err error)
	Ping(ctx context.Context) error
}

// HealthReport describes the router's collaborators.
type HealthReport struct {
	Status      string `json:"status"` // healthy, degraded, unhealthy
	Legacy      string `json:"legacy"`
	Coordinator string `json:"coordinator"`
	AgentCount  int    `json:"agent_count"`
}

// AdmissionChecker answers whether a user can afford an estimated spend and
// returns the quota snapshot behind the answer. The actual deduction still
// happens per call inside the chosen path.
type AdmissionChecker interface {
	Affordable(ctx context.Context, userID string, estimatedWTU int) (*models.UsageStatus, bool, error)
}

// Router is the processing entry point: it asks the selector for a mode,
// runs the chosen path, falls back from agent to legacy exactly once on
// hard failure, and keeps routing stats.
type Router struct {
	selector  *Selector
	coord     *agent.Coordinator
	sessions  *agentctx.Manager
	legacy    LegacyAdapter
	stats     *Stats
	admission AdmissionChecker
}

// NewRouter creates a Router. A nil admission checker disables the quota
// pre-check.
func NewRouter(selector *Selector, coord *agent.Coordinator, sessions *agentctx.Manager, legacy LegacyAdapter, stats *Stats, admission AdmissionChecker) *Router {
	return &Router{
		selector:  selector,
		coord:     coord,
		sessions:  sessions,
		legacy:    legacy,
		stats:     stats,
		admission: admission,
	}
}

// Route processes one request.
func (r *Router) Route(ctx context.Context, req models.RouteRequest) *models.RoutingResult {
	start := time.Now()
	decision := r.selector.Select(ctx, req)

	result := &models.RoutingResult{ModeUsed: decision.Mode}
	if refused := r.admit(ctx, req, decision, result); refused {
		result.ExecutionTimeMs = time.Since(start).Milliseconds()
		r.stats.Record(decision.Mode, false, false)
		return result
	}
	switch decision.Mode {
	case models.ModeAgent:
		r.runAgent(ctx, req, decision, result)
		if !result.Success && decision.FallbackAvailable {
			slog.Warn("Agent path failed, falling back to legacy",
				"request_type", req.RequestType, "error", result.ErrorMessage)
			fallbackErr := result.ErrorMessage
			r.runLegacy(ctx, req, result)
			result.ModeUsed = models.ModeLegacy
			result.FallbackUsed = true
			if !result.Success && result.ErrorMessage != "" {
				result.ErrorMessage = fmt.Sprintf("agent: %s; legacy: %s", fallbackErr, result.ErrorMessage)
			}
		}
	default:
		r.runLegacy(ctx, req, result)
	}

	result.ExecutionTimeMs = time.Since(start).Milliseconds()
	r.stats.Record(result.ModeUsed, result.Success, result.FallbackUsed)
	return result
}

// admit runs the pre-admission quota check against the selector's estimate.
// A failing check refuses the request before any LLM work; a failing lookup
// only logs, since every actual charge is still gated by TryConsume.
func (r *Router) admit(ctx context.Context, req models.RouteRequest, decision models.ModeDecision, result *models.RoutingResult) bool {
	if r.admission == nil || decision.EstimatedWTU <= 0 {
		return false
	}
	status, ok, err := r.admission.Affordable(ctx, req.UserID, decision.EstimatedWTU)
	if err != nil {
		slog.Warn("Quota pre-check failed, continuing", "user_id", req.UserID, "error", err)
		return false
	}
	if ok {
		return false
	}
	result.Success = false
	result.QuotaExceeded = true
	result.QuotaNeededWTU = decision.EstimatedWTU
	if status != nil {
		result.QuotaRemainingWTU = status.RemainingWTU
	}
	result.ErrorMessage = fmt.Sprintf("insufficient quota: estimated %d WTU, %d remaining",
		result.QuotaNeededWTU, result.QuotaRemainingWTU)
	return true
}

// Decide exposes the mode decision without executing, for preview endpoints.
func (r *Router) Decide(ctx context.Context, req models.RouteRequest) models.ModeDecision {
	return r.selector.Select(ctx, req)
}

// Stats returns a snapshot of the routing counters.
func (r *Router) Stats() models.RoutingStats {
	return r.stats.Snapshot()
}

// Health reports collaborator status. Degraded when exactly one path is
// down, unhealthy when both are.
func (r *Router) Health(ctx context.Context) HealthReport {
	report := HealthReport{
		Legacy:      "healthy",
		Coordinator: "healthy",
		AgentCount:  r.coord.Registry().Len(),
	}
	legacyDown := false
	if err := r.legacy.Ping(ctx); err != nil {
		report.Legacy = fmt.Sprintf("unhealthy: %v", err)
		legacyDown = true
	}
	coordDown := report.AgentCount == 0
	if coordDown {
		report.Coordinator = "unhealthy: no agents registered"
	}
	switch {
	case legacyDown && coordDown:
		report.Status = "unhealthy"
	case legacyDown || coordDown:
		report.Status = "degraded"
	default:
		report.Status = "healthy"
	}
	return report
}

func (r *Router) runAgent(ctx context.Context, req models.RouteRequest, decision models.ModeDecision, result *models.RoutingResult) {
	err := r.sessions.WithContext(ctx, agentctx.CreateParams{
		UserID:      req.UserID,
		BoardID:     req.BoardID,
		TaskType:    req.RequestType,
		Complexity:  complexityLevel(req.Complexity),
		Preferences: req.Preferences,
	}, func(ctx context.Context, sc agentctx.Context) error {
		chain := agent.BuildChain(r.coord.Registry(), req.RequestType, sc.Complexity, req.Preferences)
		if len(chain) == 0 {
			return errors.New("no agents available for task")
		}
		coordinated := r.coord.ExecuteChain(ctx, chain, req.RequestData, sc)
		result.WTUConsumed = coordinated.TotalWTU
		result.ProcessingResult = coordinated.Outputs
		if !coordinated.Success {
			return errors.New(firstFailure(coordinated))
		}
		return nil
	})
	if err != nil {
		result.Success = false
		result.ErrorMessage = err.Error()
		return
	}
	result.Success = true
}

func (r *Router) runLegacy(ctx context.Context, req models.RouteRequest, result *models.RoutingResult) {
	out, wtu, err := r.legacy.Process(ctx, req)
	result.WTUConsumed += wtu
	if err != nil {
		result.Success = false
		result.ErrorMessage = err.Error()
		return
	}
	result.ProcessingResult = out
	result.Success = true
	result.ErrorMessage = ""
}

func complexityLevel(c models.Complexity) int {
	switch c {
	case models.ComplexityFast:
		return 1
	case models.ComplexityThorough:
		return 5
	default:
		return 3
	}
}

func firstFailure(resp *agent.CoordinatedResponse) string {
	for _, r := range resp.Results {
		if !r.Success && r.ErrorMessage != "" {
			return fmt.Sprintf("agent %s failed: %s", r.AgentType, r.ErrorMessage)
		}
	}
	return "agent chain failed"
}
