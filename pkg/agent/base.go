package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/clipdock/clipd/pkg/agentctx"
	"github.com/clipdock/clipd/pkg/models"
)

const tracerName = "github.com/clipdock/clipd/pkg/agent"

// ModelSource resolves tiers and aliases from the catalog.
type ModelSource interface {
	ModelsForTier(ctx context.Context, tier models.Tier) ([]models.ModelEntry, error)
	ByAlias(ctx context.Context, alias string) (models.ModelEntry, error)
}

// Biller charges completed agent calls against the user's quota.
type Biller interface {
	Charge(ctx context.Context, userID string, entry models.ModelEntry, inputTokens, outputTokens int) (int, error)
}

// Base executes agents with the shared run protocol: validate, select a
// model from the user's preferences, execute inside a trace span, charge the
// consumed tokens, and contain every failure in the response.
type Base struct {
	source ModelSource
	biller Biller
	tracer trace.Tracer
}

// NewBase creates a Base.
func NewBase(source ModelSource, biller Biller) *Base {
	return &Base{
		source: source,
		biller: biller,
		tracer: otel.Tracer(tracerName),
	}
}

// ProcessWithWTU runs one agent end to end. Errors never escape; they are
// folded into Response{Success: false}.
func (b *Base) ProcessWithWTU(ctx context.Context, a Agent, input map[string]any, sc agentctx.Context) *Response {
	resp := &Response{AgentType: a.Type()}
	start := time.Now()

	if err := a.ValidateInput(input); err != nil {
		resp.ErrorMessage = fmt.Sprintf("invalid input: %v", err)
		resp.ExecutionTimeMS = int(time.Since(start).Milliseconds())
		return resp
	}

	entry, err := b.selectModel(ctx, a, sc)
	if err != nil {
		resp.ErrorMessage = fmt.Sprintf("model selection failed: %v", err)
		resp.ExecutionTimeMS = int(time.Since(start).Milliseconds())
		return resp
	}
	resp.ModelUsed = entry.Alias

	ctx, span := b.tracer.Start(ctx, "agent.execute", trace.WithAttributes(
		attribute.String("agent.type", a.Type()),
		attribute.String("agent.model", entry.Alias),
		attribute.String("agent.session_id", sc.SessionID),
	))
	defer span.End()

	result, err := a.ExecuteTask(ctx, input, entry, sc)
	resp.ExecutionTimeMS = int(time.Since(start).Milliseconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Warn("Agent task failed", "agent", a.Type(), "model", entry.Alias, "error", err)
		resp.ErrorMessage = err.Error()
		return resp
	}

	resp.Content = result.Content
	resp.Metadata = result.Metadata
	resp.InputTokens = result.InputTokens
	resp.OutputTokens = result.OutputTokens
	resp.CostUSD = costUSD(entry, result.InputTokens, result.OutputTokens)

	wtu, err := b.biller.Charge(ctx, sc.UserID, entry, result.InputTokens, result.OutputTokens)
	if err != nil {
		span.RecordError(err)
		resp.ErrorMessage = err.Error()
		return resp
	}
	resp.WTUConsumed = wtu
	span.SetAttributes(
		attribute.Int("agent.input_tokens", resp.InputTokens),
		attribute.Int("agent.output_tokens", resp.OutputTokens),
		attribute.Int("agent.wtu", wtu),
	)

	resp.Success = true
	return resp
}

// selectModel picks a model for the run:
//
//  1. the user's default model, when set and active
//  2. the preference-derived tier, filtered by preferred providers minus
//     avoided models; cost-sensitive users get the cheapest multiplier pair
//  3. the agent's compiled-in default alias
func (b *Base) selectModel(ctx context.Context, a Agent, sc agentctx.Context) (models.ModelEntry, error) {
	prefs := sc.Preferences

	if prefs.DefaultLLMModel != "" {
		if entry, err := b.source.ByAlias(ctx, prefs.DefaultLLMModel); err == nil {
			return entry, nil
		}
		slog.Debug("Preferred default model unavailable",
			"model", prefs.DefaultLLMModel, "agent", a.Type())
	}

	tier := tierForPreferences(sc.Complexity, prefs)
	if entries, err := b.source.ModelsForTier(ctx, tier); err == nil {
		candidates := make([]models.ModelEntry, 0, len(entries))
		for _, e := range entries {
			if prefs.Avoids(e.Alias) {
				continue
			}
			if !prefs.PrefersProvider(e.Provider) {
				continue
			}
			candidates = append(candidates, e)
		}
		if len(candidates) > 0 {
			if prefs.CostSensitivity == models.CostHigh {
				return cheapest(candidates), nil
			}
			return candidates[0], nil
		}
	}

	return b.source.ByAlias(ctx, a.DefaultModelAlias())
}

func tierForPreferences(complexity int, prefs models.UserModelPreferences) models.Tier {
	switch {
	case complexity >= 4 || prefs.QualityPreference == models.QualityQuality:
		return models.TierPremium
	case complexity <= 2 || prefs.QualityPreference == models.QualitySpeed:
		return models.TierLight
	default:
		return models.TierStandard
	}
}

func cheapest(entries []models.ModelEntry) models.ModelEntry {
	best := entries[0]
	bestCost := best.InputWTUMultiplier + best.OutputWTUMultiplier
	for _, e := range entries[1:] {
		if cost := e.InputWTUMultiplier + e.OutputWTUMultiplier; cost < bestCost {
			best, bestCost = e, cost
		}
	}
	return best
}

func costUSD(entry models.ModelEntry, inputTokens, outputTokens int) float64 {
	cost := 0.0
	if entry.PriceInputPerMillion != nil {
		cost += float64(inputTokens) / 1e6 * *entry.PriceInputPerMillion
	}
	if entry.PriceOutputPerMillion != nil {
		cost += float64(outputTokens) / 1e6 * *entry.PriceOutputPerMillion
	}
	return cost
}
