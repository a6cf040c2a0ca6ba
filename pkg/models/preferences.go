package models

// QualityPreference expresses a user's speed/quality trade-off.
type QualityPreference string

const (
	QualitySpeed    QualityPreference = "speed"
	QualityBalanced QualityPreference = "balanced"
	QualityQuality  QualityPreference = "quality"
)

// CostSensitivity expresses how aggressively to prefer cheap models.
type CostSensitivity string

const (
	CostLow    CostSensitivity = "low"
	CostMedium CostSensitivity = "medium"
	CostHigh   CostSensitivity = "high"
)

// UserModelPreferences carries per-user model selection hints.
// The zero value means "no preference" everywhere.
type UserModelPreferences struct {
	DefaultLLMModel    string            `json:"default_llm_model,omitempty"`
	QualityPreference  QualityPreference `json:"quality_preference,omitempty"`
	CostSensitivity    CostSensitivity   `json:"cost_sensitivity,omitempty"`
	PreferredProviders []Provider        `json:"preferred_providers,omitempty"`
	AvoidModels        []string          `json:"avoid_models,omitempty"`
	BudgetLimitWTU     *int              `json:"budget_limit_wtu,omitempty"`
}

// Avoids reports whether alias is on the user's avoid list.
func (p UserModelPreferences) Avoids(alias string) bool {
	for _, a := range p.AvoidModels {
		if a == alias {
			return true
		}
	}
	return false
}

// PrefersProvider reports whether provider is acceptable. An empty preferred
// list accepts every provider.
func (p UserModelPreferences) PrefersProvider(provider Provider) bool {
	if len(p.PreferredProviders) == 0 {
		return true
	}
	for _, pp := range p.PreferredProviders {
		if pp == provider {
			return true
		}
	}
	return false
}
