package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clipdock/clipd/pkg/models"
)

func entryWithMultipliers(in, out float64) models.ModelEntry {
	return models.ModelEntry{
		Alias:               "test-model",
		InputWTUMultiplier:  in,
		OutputWTUMultiplier: out,
	}
}

func TestComputeWTU(t *testing.T) {
	tests := []struct {
		name         string
		inputTokens  int
		outputTokens int
		inMult       float64
		outMult      float64
		want         int
	}{
		{"exact thousands", 1000, 1000, 1.0, 2.0, 3},
		{"rounds up", 1500, 500, 1.0, 2.0, 3},       // 1.5 + 1.0 = 2.5 -> 3
		{"light model", 2000, 1000, 0.5, 1.0, 2},    // 1.0 + 1.0
		{"premium model", 1000, 1000, 2.0, 4.0, 6},  // 2.0 + 4.0
		{"tiny call floors at one", 10, 10, 0.5, 1.0, 1},
		{"zero tokens still costs one", 0, 0, 1.0, 1.0, 1},
		{"fractional boundary", 999, 0, 1.0, 1.0, 1}, // 0.999 -> 1
		{"just over boundary", 1001, 0, 1.0, 1.0, 2}, // 1.001 -> 2
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWTU(tt.inputTokens, tt.outputTokens, entryWithMultipliers(tt.inMult, tt.outMult))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanMonth(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"mid month utc",
			time.Date(2026, time.March, 15, 13, 45, 0, 0, time.UTC),
			time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"first instant is identity",
			time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"local time late on last day converts to next utc month",
			time.Date(2026, time.March, 31, 21, 0, 0, 0, loc), // 01:00 UTC April 1
			time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, PlanMonth(tt.in).Equal(tt.want))
		})
	}
}

func TestEstimator_FallbackNeverZeroesLongText(t *testing.T) {
	e := NewEstimator()
	count := e.CountTokens("The quick brown fox jumps over the lazy dog. It keeps running.")
	assert.Greater(t, count, 5)
}

func TestEstimator_EstimateMessagesAddsOverhead(t *testing.T) {
	e := NewEstimator()
	single := e.EstimateMessages([]models.ChatMessage{models.UserMessage("hello")})
	double := e.EstimateMessages([]models.ChatMessage{
		models.UserMessage("hello"),
		models.UserMessage("hello"),
	})
	assert.Equal(t, single*2, double)
	assert.GreaterOrEqual(t, single, 5) // token count plus framing overhead
}

func TestEstimator_EstimateWTUUsesModelMultipliers(t *testing.T) {
	e := NewEstimator()
	light := e.EstimateWTU("short prompt", 100, entryWithMultipliers(0.5, 1.0))
	premium := e.EstimateWTU("short prompt", 100, entryWithMultipliers(2.0, 4.0))
	assert.LessOrEqual(t, light, premium)
}
