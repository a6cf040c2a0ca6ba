package routing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/models"
)

type selectorSource struct {
	byTier map[models.Tier][]models.ModelEntry
}

func (s *selectorSource) ModelsForTier(_ context.Context, tier models.Tier) ([]models.ModelEntry, error) {
	entries := s.byTier[tier]
	if len(entries) == 0 {
		return nil, errors.New("no models")
	}
	return entries, nil
}

type selectorUsage struct {
	status *models.UsageStatus
	err    error
	panics bool
}

func (s *selectorUsage) Status(_ context.Context, userID string) (*models.UsageStatus, error) {
	if s.panics {
		panic("usage store corrupted")
	}
	if s.err != nil {
		return nil, s.err
	}
	if s.status != nil {
		return s.status, nil
	}
	return &models.UsageStatus{UserID: userID, AllocatedQuota: 1000, UsedWTU: 100, RemainingWTU: 900}, nil
}

type selectorHistory struct {
	history models.RoutingHistory
}

func (s *selectorHistory) History(context.Context, string) models.RoutingHistory {
	return s.history
}

func newSelectorFixture() (*Selector, *selectorUsage, *selectorHistory) {
	source := &selectorSource{byTier: map[models.Tier][]models.ModelEntry{
		models.TierLight:    {{Alias: "mini"}},
		models.TierStandard: {{Alias: "gpt"}, {Alias: "sonnet"}},
		models.TierPremium:  {{Alias: "opus"}},
	}}
	usage := &selectorUsage{}
	history := &selectorHistory{}
	return NewSelector(source, usage, history), usage, history
}

func autoRequest() models.RouteRequest {
	return models.RouteRequest{
		RequestType:    "ask",
		UserID:         "u1",
		ProcessingMode: models.ModeAuto,
	}
}

func TestSelector_FastComplexityPicksLegacy(t *testing.T) {
	s, _, _ := newSelectorFixture()
	req := autoRequest()
	req.Complexity = models.ComplexityFast

	decision := s.Select(context.Background(), req)
	assert.Equal(t, models.ModeLegacy, decision.Mode)
	assert.False(t, decision.FallbackAvailable, "legacy has no fallback target")
	require.NotNil(t, decision.Scores)
	assert.Greater(t, decision.Scores["legacy"], decision.Scores["agent"])
}

func TestSelector_ThoroughHighQualityPicksAgent(t *testing.T) {
	s, _, _ := newSelectorFixture()
	req := autoRequest()
	req.Complexity = models.ComplexityThorough
	req.QualityThreshold = 0.97

	decision := s.Select(context.Background(), req)
	assert.Equal(t, models.ModeAgent, decision.Mode)
	assert.True(t, decision.FallbackAvailable)
	assert.Greater(t, decision.Scores["agent"], decision.Scores["legacy"])
}

func TestSelector_BalancedDefaultsToLegacy(t *testing.T) {
	s, _, _ := newSelectorFixture()

	decision := s.Select(context.Background(), autoRequest())
	assert.Equal(t, models.ModeLegacy, decision.Mode)
}

func TestSelector_AgentQualityHistoryTipsTheBalance(t *testing.T) {
	s, _, history := newSelectorFixture()
	history.history = models.RoutingHistory{AgentAvgQuality: 0.95}

	decision := s.Select(context.Background(), autoRequest())
	assert.Equal(t, models.ModeAgent, decision.Mode)
}

func TestSelector_QuotaPressureFavorsLegacy(t *testing.T) {
	s, usage, history := newSelectorFixture()
	history.history = models.RoutingHistory{AgentAvgQuality: 0.95}
	usage.status = &models.UsageStatus{AllocatedQuota: 1000, UsedWTU: 900, RemainingWTU: 100}

	decision := s.Select(context.Background(), autoRequest())
	assert.Equal(t, models.ModeLegacy, decision.Mode,
		"a nearly spent quota outweighs favorable agent history")
}

func TestSelector_PreferencesShiftScores(t *testing.T) {
	s, _, _ := newSelectorFixture()

	req := autoRequest()
	req.Complexity = models.ComplexityThorough
	req.Preferences = models.UserModelPreferences{CostSensitivity: models.CostHigh, QualityPreference: models.QualitySpeed}
	decision := s.Select(context.Background(), req)
	assert.Equal(t, models.ModeLegacy, decision.Mode,
		"speed and cost preferences pull a thorough request back to legacy")

	req.Preferences = models.UserModelPreferences{QualityPreference: models.QualityQuality}
	decision = s.Select(context.Background(), req)
	assert.Equal(t, models.ModeAgent, decision.Mode)
}

func TestSelector_ExplicitModeBypassesScoring(t *testing.T) {
	s, _, _ := newSelectorFixture()

	for _, mode := range []models.ProcessingMode{models.ModeLegacy, models.ModeAgent} {
		req := autoRequest()
		req.ProcessingMode = mode

		decision := s.Select(context.Background(), req)
		assert.Equal(t, mode, decision.Mode)
		assert.Equal(t, "explicitly requested", decision.Reason)
		assert.Nil(t, decision.Scores)
	}
}

func TestSelector_EstimatesFilledPerMode(t *testing.T) {
	s, _, _ := newSelectorFixture()

	req := autoRequest()
	req.ProcessingMode = models.ModeAgent
	agentDecision := s.Select(context.Background(), req)
	assert.Equal(t, 12, agentDecision.EstimatedWTU)
	assert.InDelta(t, 0.93, agentDecision.QualityExpectation, 1e-9)
	assert.Equal(t, []string{"opus", "gpt", "sonnet"}, agentDecision.RecommendedModels)

	req.ProcessingMode = models.ModeLegacy
	legacyDecision := s.Select(context.Background(), req)
	assert.Equal(t, 4, legacyDecision.EstimatedWTU)
	assert.Equal(t, []string{"gpt", "sonnet", "mini"}, legacyDecision.RecommendedModels)
}

func TestSelector_LargeInputRaisesTheEstimate(t *testing.T) {
	s, _, _ := newSelectorFixture()

	req := autoRequest()
	req.ProcessingMode = models.ModeLegacy
	baseline := s.Select(context.Background(), req)
	assert.Equal(t, 4, baseline.EstimatedWTU)

	req.RequestData = map[string]any{"content": strings.Repeat("lorem ipsum dolor ", 2000)}
	estimated := s.Select(context.Background(), req)
	assert.Greater(t, estimated.EstimatedWTU, baseline.EstimatedWTU,
		"a multi-thousand-token payload costs more than the flat floor")
}

func TestSelector_UsageFailureDoesNotBreakSelection(t *testing.T) {
	s, usage, _ := newSelectorFixture()
	usage.err = errors.New("db down")

	decision := s.Select(context.Background(), autoRequest())
	assert.NotEmpty(t, decision.Mode)
}

func TestSelector_PanicDegradesToLegacy(t *testing.T) {
	s, usage, _ := newSelectorFixture()
	usage.panics = true

	decision := s.Select(context.Background(), autoRequest())
	assert.Equal(t, models.ModeLegacy, decision.Mode)
	assert.Contains(t, decision.Reason, "selector error")
}

func TestSelector_RecommendationsCapAtThree(t *testing.T) {
	source := &selectorSource{byTier: map[models.Tier][]models.ModelEntry{
		models.TierStandard: {{Alias: "a"}, {Alias: "b"}, {Alias: "c"}, {Alias: "d"}},
	}}
	s := NewSelector(source, &selectorUsage{}, &selectorHistory{})

	req := autoRequest()
	req.ProcessingMode = models.ModeLegacy
	decision := s.Select(context.Background(), req)
	assert.Len(t, decision.RecommendedModels, 3)
}
