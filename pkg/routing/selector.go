// Package routing decides between the fast single-shot legacy path and the
// deeper multi-stage agent path, and routes requests accordingly with
// agent-to-legacy fallback.
package routing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/clipdock/clipd/pkg/billing"
	"github.com/clipdock/clipd/pkg/models"
)

// Selector scores the legacy and agent paths for a request and picks the
// higher one. On any internal failure it returns legacy with a reason; the
// selector never errors.
type Selector struct {
	source    ModelSource
	usage     UsageReader
	history   HistorySource
	estimator *billing.Estimator
}

// ModelSource resolves tiers for model recommendations.
type ModelSource interface {
	ModelsForTier(ctx context.Context, tier models.Tier) ([]models.ModelEntry, error)
}

// UsageReader reads the user's current-month quota snapshot.
type UsageReader interface {
	Status(ctx context.Context, userID string) (*models.UsageStatus, error)
}

// HistorySource supplies routing outcome history. May return zero values
// when no history exists.
type HistorySource interface {
	History(ctx context.Context, userID string) models.RoutingHistory
}

// NewSelector creates a Selector.
func NewSelector(source ModelSource, usage UsageReader, history HistorySource) *Selector {
	return &Selector{
		source:    source,
		usage:     usage,
		history:   history,
		estimator: billing.NewEstimator(),
	}
}

// Select scores both modes and returns the decision. Explicit legacy/agent
// requests bypass scoring but still get estimates filled in. Select never
// fails; any internal problem degrades to legacy with a reason.
func (s *Selector) Select(ctx context.Context, req models.RouteRequest) (decision models.ModeDecision) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Mode selection panicked, defaulting to legacy", "panic", r)
			decision = models.ModeDecision{
				Mode:   models.ModeLegacy,
				Reason: fmt.Sprintf("selector error: %v", r),
			}
		}
	}()
	if req.ProcessingMode == models.ModeLegacy || req.ProcessingMode == models.ModeAgent {
		decision := s.decisionFor(ctx, req, req.ProcessingMode, nil)
		decision.Reason = "explicitly requested"
		return decision
	}

	legacy, agentScore := s.scores(ctx, req)
	scores := map[string]float64{
		"legacy": legacy,
		"agent":  agentScore,
	}
	mode := models.ModeLegacy
	if agentScore > legacy {
		mode = models.ModeAgent
	}
	return s.decisionFor(ctx, req, mode, scores)
}

// scores applies the scoring table to both modes.
func (s *Selector) scores(ctx context.Context, req models.RouteRequest) (legacy, agent float64) {
	legacy, agent = 7.0, 6.0

	switch req.Complexity {
	case models.ComplexityFast:
		legacy += 2.0
		agent += 0.5
	case models.ComplexityThorough:
		legacy += 0.5
		agent += 2.5
	default:
		legacy += 1.0
		agent += 1.5
	}

	switch {
	case req.QualityThreshold >= 0.95:
		legacy += 0.5
		agent += 2.0
	case req.QualityThreshold >= 0.90:
		legacy += 1.0
		agent += 1.5
	default:
		legacy += 1.0
		agent += 0.8
	}

	if status, err := s.usage.Status(ctx, req.UserID); err == nil {
		if status.AllocatedQuota > 0 &&
			float64(status.UsedWTU) > 0.8*float64(status.AllocatedQuota) {
			legacy += 1.5
			agent -= 1.0
		}
	} else {
		slog.Warn("Usage lookup failed during mode selection", "error", err)
	}

	if s.history != nil {
		h := s.history.History(ctx, req.UserID)
		if h.LegacySuccessRate > 0.95 {
			legacy += 1.0
		}
		if h.AgentAvgQuality > 0.90 {
			agent += 1.5
		}
	}

	switch req.Preferences.QualityPreference {
	case models.QualityQuality:
		agent += 1.0
	case models.QualitySpeed:
		legacy += 1.0
	}
	switch req.Preferences.CostSensitivity {
	case models.CostHigh:
		legacy += 1.0
	case models.CostLow:
		agent += 0.5
	}
	return legacy, agent
}

// decisionFor assembles the full decision payload for the chosen mode.
func (s *Selector) decisionFor(ctx context.Context, req models.RouteRequest, mode models.ProcessingMode, scores map[string]float64) models.ModeDecision {
	decision := models.ModeDecision{
		Mode:              mode,
		Scores:            scores,
		FallbackAvailable: mode == models.ModeAgent,
		Preferences:       req.Preferences,
	}

	if mode == models.ModeAgent {
		decision.EstimatedTimeSeconds = 25
		decision.EstimatedWTU = 12
		decision.QualityExpectation = 0.93
		decision.CostEfficiencyScore = 0.6
		decision.RecommendedModels = s.recommend(ctx, models.TierPremium, models.TierStandard)
	} else {
		decision.EstimatedTimeSeconds = 6
		decision.EstimatedWTU = 4
		decision.QualityExpectation = 0.88
		decision.CostEfficiencyScore = 0.9
		decision.RecommendedModels = s.recommend(ctx, models.TierStandard, models.TierLight)
	}
	decision.EstimatedWTU += s.inputWTU(req, mode)
	return decision
}

// inputWTU refines the flat per-mode estimate with a tokenizer count of the
// request's text payload. Each processing pass re-reads the input, so the
// per-1000-token cost is multiplied by the expected pass count.
func (s *Selector) inputWTU(req models.RouteRequest, mode models.ProcessingMode) int {
	var b strings.Builder
	for _, key := range []string{"content", "query", "text", "transcript"} {
		if v, ok := req.RequestData[key].(string); ok {
			b.WriteString(v)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	tokens := s.estimator.CountTokens(b.String())
	passes := 3 // summary, tags, categories
	if mode == models.ModeAgent {
		passes = 2 // typical chain length
	}
	return passes * (tokens / 1000)
}

func (s *Selector) recommend(ctx context.Context, tiers ...models.Tier) []string {
	var aliases []string
	for _, tier := range tiers {
		entries, err := s.source.ModelsForTier(ctx, tier)
		if err != nil {
			continue
		}
		for _, e := range entries {
			aliases = append(aliases, e.Alias)
			if len(aliases) >= 3 {
				return aliases
			}
		}
	}
	return aliases
}
