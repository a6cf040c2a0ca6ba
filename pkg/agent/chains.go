package agent

import (
	"github.com/clipdock/clipd/pkg/models"
)

// Agent type names. Chains reference agents by these keys.
const (
	TypeContentAnalysis   = "content_analysis"
	TypeSummaryGeneration = "summary_generation"
	TypeValidator         = "validator"
	TypeResearch          = "research"
	TypeWriter            = "writer"
)

// defaultChains maps task types to their standard agent sequences.
var defaultChains = map[string][]string{
	"board_analysis":   {TypeContentAnalysis, TypeSummaryGeneration},
	"draft_generation": {TypeResearch, TypeContentAnalysis, TypeWriter},
	"ask":              {TypeResearch, TypeWriter},
	"summarize":        {TypeContentAnalysis, TypeSummaryGeneration},
}

// BuildChain returns the agent chain for a task, widened by complexity and
// quality preference, and filtered to agents actually registered. Unknown
// task types degrade to a bare content analysis.
func BuildChain(registry *Registry, taskType string, complexity int, prefs models.UserModelPreferences) []string {
	chain, ok := defaultChains[taskType]
	if !ok {
		chain = []string{TypeContentAnalysis}
	}
	chain = append([]string(nil), chain...)

	if complexity >= 3 || prefs.QualityPreference == models.QualityQuality {
		if !contains(chain, TypeValidator) {
			chain = append(chain, TypeValidator)
		}
	}

	filtered := make([]string, 0, len(chain))
	for _, agentType := range chain {
		if _, ok := registry.Get(agentType); ok {
			filtered = append(filtered, agentType)
		}
	}
	return filtered
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
