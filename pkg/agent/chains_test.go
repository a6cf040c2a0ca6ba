package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clipdock/clipd/pkg/models"
)

func fullRegistry() *Registry {
	r := NewRegistry()
	for _, agentType := range []string{TypeContentAnalysis, TypeSummaryGeneration, TypeValidator, TypeResearch, TypeWriter} {
		r.Register(&stubAgent{agentType: agentType, defaultAlias: "gpt"})
	}
	return r
}

func TestBuildChain(t *testing.T) {
	tests := []struct {
		name       string
		taskType   string
		complexity int
		prefs      models.UserModelPreferences
		want       []string
	}{
		{
			"board analysis",
			"board_analysis", 2, models.UserModelPreferences{},
			[]string{TypeContentAnalysis, TypeSummaryGeneration},
		},
		{
			"draft generation",
			"draft_generation", 2, models.UserModelPreferences{},
			[]string{TypeResearch, TypeContentAnalysis, TypeWriter},
		},
		{
			"ask",
			"ask", 1, models.UserModelPreferences{},
			[]string{TypeResearch, TypeWriter},
		},
		{
			"unknown task degrades to content analysis",
			"interpretive_dance", 2, models.UserModelPreferences{},
			[]string{TypeContentAnalysis},
		},
		{
			"high complexity appends validator",
			"ask", 4, models.UserModelPreferences{},
			[]string{TypeResearch, TypeWriter, TypeValidator},
		},
		{
			"quality preference appends validator",
			"ask", 1, models.UserModelPreferences{QualityPreference: models.QualityQuality},
			[]string{TypeResearch, TypeWriter, TypeValidator},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildChain(fullRegistry(), tt.taskType, tt.complexity, tt.prefs))
		})
	}
}

func TestBuildChain_FiltersUnregisteredAgents(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubAgent{agentType: TypeWriter, defaultAlias: "gpt"})

	chain := BuildChain(r, "ask", 2, models.UserModelPreferences{})
	assert.Equal(t, []string{TypeWriter}, chain)
}

func TestBuildChain_ValidatorNotDuplicated(t *testing.T) {
	r := fullRegistry()
	chain := BuildChain(r, "ask", 5, models.UserModelPreferences{QualityPreference: models.QualityQuality})

	count := 0
	for _, agentType := range chain {
		if agentType == TypeValidator {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 0, r.Len())

	r.Register(&stubAgent{agentType: "writer"})
	r.Register(&stubAgent{agentType: "research"})

	a, ok := r.Get("writer")
	assert.True(t, ok)
	assert.Equal(t, "writer", a.Type())

	_, ok = r.Get("phantom")
	assert.False(t, ok)

	assert.Equal(t, []string{"research", "writer"}, r.Types())

	// Re-registration replaces.
	replacement := &stubAgent{agentType: "writer", defaultAlias: "opus"}
	r.Register(replacement)
	got, _ := r.Get("writer")
	assert.Equal(t, "opus", got.DefaultModelAlias())
	assert.Equal(t, 2, r.Len())
}
