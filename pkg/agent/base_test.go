package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/agentctx"
	"github.com/clipdock/clipd/pkg/models"
)

type stubAgent struct {
	agentType    string
	defaultAlias string
	validateErr  error
	execErr      error
	result       *TaskResult
	panicOnExec  bool
	lastEntry    models.ModelEntry
}

func (s *stubAgent) Type() string               { return s.agentType }
func (s *stubAgent) Capabilities() []string     { return []string{"test"} }
func (s *stubAgent) DefaultModelAlias() string  { return s.defaultAlias }
func (s *stubAgent) ValidateInput(map[string]any) error {
	return s.validateErr
}

func (s *stubAgent) ExecuteTask(_ context.Context, _ map[string]any, entry models.ModelEntry, _ agentctx.Context) (*TaskResult, error) {
	if s.panicOnExec {
		panic("agent exploded")
	}
	s.lastEntry = entry
	if s.execErr != nil {
		return nil, s.execErr
	}
	if s.result != nil {
		return s.result, nil
	}
	return &TaskResult{Content: "output", InputTokens: 100, OutputTokens: 50}, nil
}

type stubSource struct {
	byTier  map[models.Tier][]models.ModelEntry
	byAlias map[string]models.ModelEntry
}

func (s *stubSource) ModelsForTier(_ context.Context, tier models.Tier) ([]models.ModelEntry, error) {
	entries := s.byTier[tier]
	if len(entries) == 0 {
		return nil, errors.New("no models for tier")
	}
	return entries, nil
}

func (s *stubSource) ByAlias(_ context.Context, alias string) (models.ModelEntry, error) {
	if e, ok := s.byAlias[alias]; ok {
		return e, nil
	}
	return models.ModelEntry{}, errors.New("unknown alias")
}

type stubBiller struct {
	wtu     int
	err     error
	charges int
}

func (s *stubBiller) Charge(_ context.Context, _ string, _ models.ModelEntry, _, _ int) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.charges++
	return s.wtu, nil
}

func testSource() *stubSource {
	light := models.ModelEntry{Alias: "mini", Provider: models.ProviderOpenAI, Tier: models.TierLight, InputWTUMultiplier: 0.5, OutputWTUMultiplier: 1}
	standardA := models.ModelEntry{Alias: "gpt", Provider: models.ProviderOpenAI, Tier: models.TierStandard, InputWTUMultiplier: 1, OutputWTUMultiplier: 2}
	standardB := models.ModelEntry{Alias: "sonnet", Provider: models.ProviderAnthropic, Tier: models.TierStandard, InputWTUMultiplier: 0.8, OutputWTUMultiplier: 1.6}
	premium := models.ModelEntry{Alias: "opus", Provider: models.ProviderAnthropic, Tier: models.TierPremium, InputWTUMultiplier: 2, OutputWTUMultiplier: 4}
	return &stubSource{
		byTier: map[models.Tier][]models.ModelEntry{
			models.TierLight:    {light},
			models.TierStandard: {standardA, standardB},
			models.TierPremium:  {premium},
		},
		byAlias: map[string]models.ModelEntry{
			"mini": light, "gpt": standardA, "sonnet": standardB, "opus": premium,
		},
	}
}

func sessionContext(complexity int, prefs models.UserModelPreferences) agentctx.Context {
	return agentctx.Context{
		SessionID:   "s1",
		UserID:      "u1",
		Complexity:  complexity,
		Preferences: prefs,
	}
}

func TestBase_SuccessfulRunChargesAndAccounts(t *testing.T) {
	biller := &stubBiller{wtu: 7}
	b := NewBase(testSource(), biller)
	a := &stubAgent{agentType: "writer", defaultAlias: "gpt"}

	resp := b.ProcessWithWTU(context.Background(), a, map[string]any{"q": "x"}, sessionContext(3, models.UserModelPreferences{}))

	assert.True(t, resp.Success)
	assert.Equal(t, "writer", resp.AgentType)
	assert.Equal(t, "output", resp.Content)
	assert.Equal(t, 7, resp.WTUConsumed)
	assert.Equal(t, 100, resp.InputTokens)
	assert.Equal(t, 1, biller.charges)
}

func TestBase_ValidationFailureCostsNothing(t *testing.T) {
	biller := &stubBiller{}
	b := NewBase(testSource(), biller)
	a := &stubAgent{agentType: "writer", validateErr: errors.New("query is required")}

	resp := b.ProcessWithWTU(context.Background(), a, nil, sessionContext(3, models.UserModelPreferences{}))

	assert.False(t, resp.Success)
	assert.Contains(t, resp.ErrorMessage, "invalid input")
	assert.Equal(t, 0, biller.charges)
	assert.Empty(t, resp.ModelUsed, "no model is selected for rejected input")
}

func TestBase_ExecutionFailureIsContained(t *testing.T) {
	biller := &stubBiller{}
	b := NewBase(testSource(), biller)
	a := &stubAgent{agentType: "writer", defaultAlias: "gpt", execErr: errors.New("upstream 500")}

	resp := b.ProcessWithWTU(context.Background(), a, nil, sessionContext(3, models.UserModelPreferences{}))

	assert.False(t, resp.Success)
	assert.Equal(t, "upstream 500", resp.ErrorMessage)
	assert.Equal(t, 0, biller.charges)
}

func TestBase_BillingFailureMarksRunFailed(t *testing.T) {
	biller := &stubBiller{err: errors.New("quota exhausted")}
	b := NewBase(testSource(), biller)
	a := &stubAgent{agentType: "writer", defaultAlias: "gpt"}

	resp := b.ProcessWithWTU(context.Background(), a, nil, sessionContext(3, models.UserModelPreferences{}))

	assert.False(t, resp.Success)
	assert.Contains(t, resp.ErrorMessage, "quota exhausted")
	assert.Equal(t, "output", resp.Content, "content is kept even when the charge fails")
}

func TestBase_ModelSelection(t *testing.T) {
	tests := []struct {
		name       string
		complexity int
		prefs      models.UserModelPreferences
		want       string
	}{
		{
			"user default model wins",
			3,
			models.UserModelPreferences{DefaultLLMModel: "opus"},
			"opus",
		},
		{
			"unavailable default falls through to tier",
			3,
			models.UserModelPreferences{DefaultLLMModel: "retired-model"},
			"gpt",
		},
		{
			"high complexity selects premium",
			5,
			models.UserModelPreferences{},
			"opus",
		},
		{
			"low complexity selects light",
			1,
			models.UserModelPreferences{},
			"mini",
		},
		{
			"quality preference forces premium",
			2,
			models.UserModelPreferences{QualityPreference: models.QualityQuality},
			"opus",
		},
		{
			"speed preference forces light",
			3,
			models.UserModelPreferences{QualityPreference: models.QualitySpeed},
			"mini",
		},
		{
			"avoid list skips first candidate",
			3,
			models.UserModelPreferences{AvoidModels: []string{"gpt"}},
			"sonnet",
		},
		{
			"provider preference filters candidates",
			3,
			models.UserModelPreferences{PreferredProviders: []models.Provider{models.ProviderAnthropic}},
			"sonnet",
		},
		{
			"high cost sensitivity picks cheapest multipliers",
			3,
			models.UserModelPreferences{CostSensitivity: models.CostHigh},
			"sonnet",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBase(testSource(), &stubBiller{})
			a := &stubAgent{agentType: "writer", defaultAlias: "gpt"}

			resp := b.ProcessWithWTU(context.Background(), a, nil, sessionContext(tt.complexity, tt.prefs))
			require.True(t, resp.Success)
			assert.Equal(t, tt.want, resp.ModelUsed)
		})
	}
}

func TestBase_FallsBackToAgentDefaultAlias(t *testing.T) {
	// Every standard candidate is avoided, so selection lands on the
	// agent's compiled-in default.
	b := NewBase(testSource(), &stubBiller{})
	a := &stubAgent{agentType: "writer", defaultAlias: "mini"}
	prefs := models.UserModelPreferences{AvoidModels: []string{"gpt", "sonnet"}}

	resp := b.ProcessWithWTU(context.Background(), a, nil, sessionContext(3, prefs))
	require.True(t, resp.Success)
	assert.Equal(t, "mini", resp.ModelUsed)
}

func TestBase_NoModelAnywhereFails(t *testing.T) {
	b := NewBase(&stubSource{}, &stubBiller{})
	a := &stubAgent{agentType: "writer", defaultAlias: "nonexistent"}

	resp := b.ProcessWithWTU(context.Background(), a, nil, sessionContext(3, models.UserModelPreferences{}))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.ErrorMessage, "model selection failed")
}

func TestCostUSD(t *testing.T) {
	in, out := 2.0, 10.0
	entry := models.ModelEntry{PriceInputPerMillion: &in, PriceOutputPerMillion: &out}
	assert.InDelta(t, 2.0+10.0, costUSD(entry, 1_000_000, 1_000_000), 1e-9)
	assert.InDelta(t, 0.0, costUSD(models.ModelEntry{}, 1_000_000, 1_000_000), 1e-9)
}
