package routing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clipdock/clipd/pkg/agent"
	"github.com/clipdock/clipd/pkg/agentctx"
	"github.com/clipdock/clipd/pkg/models"
)

type routedAgent struct {
	name    string
	content any
	execErr error
}

func (r *routedAgent) Type() string                      { return r.name }
func (r *routedAgent) Capabilities() []string            { return []string{r.name} }
func (r *routedAgent) DefaultModelAlias() string         { return "gpt" }
func (r *routedAgent) ValidateInput(map[string]any) error { return nil }

func (r *routedAgent) ExecuteTask(_ context.Context, _ map[string]any, _ models.ModelEntry, _ agentctx.Context) (*agent.TaskResult, error) {
	if r.execErr != nil {
		return nil, r.execErr
	}
	content := r.content
	if content == nil {
		content = map[string]any{r.name: "done"}
	}
	return &agent.TaskResult{Content: content, InputTokens: 100, OutputTokens: 50}, nil
}

type agentSource struct{}

func (agentSource) ModelsForTier(_ context.Context, tier models.Tier) ([]models.ModelEntry, error) {
	return []models.ModelEntry{{Alias: "gpt", Provider: models.ProviderOpenAI, Tier: tier}}, nil
}

func (agentSource) ByAlias(_ context.Context, alias string) (models.ModelEntry, error) {
	return models.ModelEntry{Alias: alias, Provider: models.ProviderOpenAI}, nil
}

type agentBiller struct{}

func (agentBiller) Charge(context.Context, string, models.ModelEntry, int, int) (int, error) {
	return 5, nil
}

type stubLegacy struct {
	result  map[string]any
	wtu     int
	err     error
	pingErr error
	calls   int
}

func (s *stubLegacy) Process(context.Context, models.RouteRequest) (map[string]any, int, error) {
	s.calls++
	if s.err != nil {
		return nil, 0, s.err
	}
	result := s.result
	if result == nil {
		result = map[string]any{"summary": "legacy result"}
	}
	return result, s.wtu, nil
}

func (s *stubLegacy) Ping(context.Context) error { return s.pingErr }

type routerFixture struct {
	router *Router
	legacy *stubLegacy
	stats  *Stats
}

func newRouterFixture(agents ...agent.Agent) *routerFixture {
	registry := agent.NewRegistry()
	for _, a := range agents {
		registry.Register(a)
	}
	sessions := agentctx.NewManager(time.Hour)
	base := agent.NewBase(agentSource{}, agentBiller{})
	coord := agent.NewCoordinator(registry, base, sessions)

	stats := NewStats()
	source := &selectorSource{byTier: map[models.Tier][]models.ModelEntry{
		models.TierLight:    {{Alias: "mini"}},
		models.TierStandard: {{Alias: "gpt"}},
		models.TierPremium:  {{Alias: "opus"}},
	}}
	selector := NewSelector(source, &selectorUsage{}, stats)

	legacy := &stubLegacy{wtu: 4}
	return &routerFixture{
		router: NewRouter(selector, coord, sessions, legacy, stats, nil),
		legacy: legacy,
		stats:  stats,
	}
}

type stubAdmission struct {
	affordable bool
	remaining  int
	err        error
	calls      int
}

func (s *stubAdmission) Affordable(_ context.Context, _ string, _ int) (*models.UsageStatus, bool, error) {
	s.calls++
	if s.err != nil {
		return nil, false, s.err
	}
	return &models.UsageStatus{RemainingWTU: s.remaining}, s.affordable, nil
}

func askRequest(mode models.ProcessingMode) models.RouteRequest {
	return models.RouteRequest{
		RequestType:    "ask",
		RequestData:    map[string]any{"query": "what is Go"},
		UserID:         "u1",
		ProcessingMode: mode,
	}
}

func TestRouter_LegacyPath(t *testing.T) {
	f := newRouterFixture()

	result := f.router.Route(context.Background(), askRequest(models.ModeLegacy))

	assert.True(t, result.Success)
	assert.Equal(t, models.ModeLegacy, result.ModeUsed)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, 4, result.WTUConsumed)
	assert.Equal(t, "legacy result", result.ProcessingResult["summary"])
	assert.Equal(t, 1, f.legacy.calls)
}

func TestRouter_AgentPathRunsChain(t *testing.T) {
	f := newRouterFixture(
		&routedAgent{name: agent.TypeResearch},
		&routedAgent{name: agent.TypeWriter, content: map[string]any{"text": "the answer"}},
	)

	result := f.router.Route(context.Background(), askRequest(models.ModeAgent))

	assert.True(t, result.Success)
	assert.Equal(t, models.ModeAgent, result.ModeUsed)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, 10, result.WTUConsumed, "both chain agents charge")
	assert.Contains(t, result.ProcessingResult, agent.TypeWriter)
	assert.Equal(t, 0, f.legacy.calls)
}

func TestRouter_AgentFailureFallsBackToLegacyOnce(t *testing.T) {
	f := newRouterFixture(
		&routedAgent{name: agent.TypeResearch, execErr: errors.New("model down")},
		&routedAgent{name: agent.TypeWriter, execErr: errors.New("model down")},
	)

	result := f.router.Route(context.Background(), askRequest(models.ModeAgent))

	assert.True(t, result.Success)
	assert.Equal(t, models.ModeLegacy, result.ModeUsed)
	assert.True(t, result.FallbackUsed)
	assert.Equal(t, 1, f.legacy.calls)
	assert.Equal(t, "legacy result", result.ProcessingResult["summary"])
}

func TestRouter_BothPathsFailingReportsBoth(t *testing.T) {
	f := newRouterFixture(
		&routedAgent{name: agent.TypeResearch, execErr: errors.New("model down")},
		&routedAgent{name: agent.TypeWriter, execErr: errors.New("model down")},
	)
	f.legacy.err = errors.New("extraction failed")

	result := f.router.Route(context.Background(), askRequest(models.ModeAgent))

	assert.False(t, result.Success)
	assert.True(t, result.FallbackUsed)
	assert.Contains(t, result.ErrorMessage, "agent:")
	assert.Contains(t, result.ErrorMessage, "legacy:")
	assert.Contains(t, result.ErrorMessage, "extraction failed")
}

func TestRouter_NoAgentsRegisteredFallsBack(t *testing.T) {
	f := newRouterFixture()

	result := f.router.Route(context.Background(), askRequest(models.ModeAgent))

	assert.True(t, result.Success)
	assert.Equal(t, models.ModeLegacy, result.ModeUsed)
	assert.True(t, result.FallbackUsed)
}

func TestRouter_StatsRecorded(t *testing.T) {
	f := newRouterFixture(
		&routedAgent{name: agent.TypeResearch},
		&routedAgent{name: agent.TypeWriter},
	)

	f.router.Route(context.Background(), askRequest(models.ModeLegacy))
	f.router.Route(context.Background(), askRequest(models.ModeAgent))

	stats := f.router.Stats()
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Legacy)
	assert.Equal(t, int64(1), stats.Agent)
	assert.Equal(t, int64(0), stats.Fallback)
	assert.Equal(t, int64(1), stats.SuccessByMode["legacy"])
	assert.Equal(t, int64(1), stats.SuccessByMode["agent"])
}

func TestRouter_AdmissionRefusesBeforeAnyWork(t *testing.T) {
	f := newRouterFixture()
	admission := &stubAdmission{affordable: false, remaining: 1}
	f.router.admission = admission

	req := askRequest(models.ModeLegacy)
	result := f.router.Route(context.Background(), req)

	assert.False(t, result.Success)
	assert.True(t, result.QuotaExceeded)
	assert.Contains(t, result.ErrorMessage, "insufficient quota")
	assert.Equal(t, 0, f.legacy.calls, "refusal happens before the pipeline runs")
	assert.Equal(t, 1, admission.calls)
	assert.Equal(t, int64(1), f.router.Stats().Total)

	// The refusal carries the shortfall: the estimate it was checked
	// against and the balance the lookup reported.
	decision := f.router.Decide(context.Background(), req)
	assert.Equal(t, decision.EstimatedWTU, result.QuotaNeededWTU)
	assert.Equal(t, 1, result.QuotaRemainingWTU)
}

func TestRouter_AdmissionLookupFailureDoesNotBlock(t *testing.T) {
	f := newRouterFixture()
	f.router.admission = &stubAdmission{err: errors.New("db down")}

	result := f.router.Route(context.Background(), askRequest(models.ModeLegacy))

	assert.True(t, result.Success, "a broken quota lookup must not refuse traffic")
	assert.Equal(t, 1, f.legacy.calls)
}

func TestRouter_AdmissionPassesAffordableRequests(t *testing.T) {
	f := newRouterFixture()
	f.router.admission = &stubAdmission{affordable: true}

	result := f.router.Route(context.Background(), askRequest(models.ModeLegacy))

	assert.True(t, result.Success)
	assert.False(t, result.QuotaExceeded)
}

func TestRouter_DecideDoesNotExecute(t *testing.T) {
	f := newRouterFixture()

	decision := f.router.Decide(context.Background(), askRequest(models.ModeAuto))
	assert.NotEmpty(t, decision.Mode)
	assert.Equal(t, 0, f.legacy.calls)
	assert.Equal(t, int64(0), f.router.Stats().Total)
}

func TestRouter_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		f := newRouterFixture(&routedAgent{name: agent.TypeWriter})
		report := f.router.Health(context.Background())
		assert.Equal(t, "healthy", report.Status)
		assert.Equal(t, 1, report.AgentCount)
	})

	t.Run("degraded without agents", func(t *testing.T) {
		f := newRouterFixture()
		report := f.router.Health(context.Background())
		assert.Equal(t, "degraded", report.Status)
		assert.Contains(t, report.Coordinator, "no agents")
	})

	t.Run("degraded with broken legacy", func(t *testing.T) {
		f := newRouterFixture(&routedAgent{name: agent.TypeWriter})
		f.legacy.pingErr = errors.New("db unreachable")
		report := f.router.Health(context.Background())
		assert.Equal(t, "degraded", report.Status)
		assert.Contains(t, report.Legacy, "db unreachable")
	})

	t.Run("unhealthy when both are down", func(t *testing.T) {
		f := newRouterFixture()
		f.legacy.pingErr = errors.New("db unreachable")
		report := f.router.Health(context.Background())
		assert.Equal(t, "unhealthy", report.Status)
	})
}
