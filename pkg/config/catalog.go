package config

import (
	"fmt"

	"github.com/clipdock/clipd/pkg/models"
)

// CatalogSeedEntry is one model definition from models.yaml. Seeded into the
// catalog table idempotently at startup.
type CatalogSeedEntry struct {
	Alias                 string   `yaml:"alias"`
	Provider              string   `yaml:"provider"`
	ModelName             string   `yaml:"model_name"`
	Tier                  string   `yaml:"tier"`
	InputWTUMultiplier    float64  `yaml:"input_wtu_multiplier,omitempty"`
	OutputWTUMultiplier   float64  `yaml:"output_wtu_multiplier,omitempty"`
	IsActive              *bool    `yaml:"is_active,omitempty"`
	PriceInputPerMillion  *float64 `yaml:"price_input_per_million,omitempty"`
	PriceOutputPerMillion *float64 `yaml:"price_output_per_million,omitempty"`
	SortOrder             int      `yaml:"sort_order,omitempty"`
	EmbeddingDims         *int     `yaml:"embedding_dims,omitempty"`
}

// ToModelEntry converts a seed entry to the shared catalog type, applying
// defaults for omitted fields.
func (e CatalogSeedEntry) ToModelEntry() models.ModelEntry {
	entry := models.ModelEntry{
		Alias:                 e.Alias,
		Provider:              models.Provider(e.Provider),
		ModelName:             e.ModelName,
		Tier:                  models.Tier(e.Tier),
		InputWTUMultiplier:    e.InputWTUMultiplier,
		OutputWTUMultiplier:   e.OutputWTUMultiplier,
		IsActive:              true,
		PriceInputPerMillion:  e.PriceInputPerMillion,
		PriceOutputPerMillion: e.PriceOutputPerMillion,
		SortOrder:             e.SortOrder,
		EmbeddingDims:         e.EmbeddingDims,
	}
	if entry.InputWTUMultiplier == 0 {
		entry.InputWTUMultiplier = 1.0
	}
	if entry.OutputWTUMultiplier == 0 {
		entry.OutputWTUMultiplier = 1.0
	}
	if e.IsActive != nil {
		entry.IsActive = *e.IsActive
	}
	return entry
}

// validateSeed checks catalog seed entries for structural errors.
func validateSeed(entries []CatalogSeedEntry) error {
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.Alias == "" {
			return fmt.Errorf("%w: models[%d] missing alias", ErrInvalidConfig, i)
		}
		if seen[e.Alias] {
			return fmt.Errorf("%w: duplicate model alias %q", ErrInvalidConfig, e.Alias)
		}
		seen[e.Alias] = true
		if e.ModelName == "" {
			return fmt.Errorf("%w: model %q missing model_name", ErrInvalidConfig, e.Alias)
		}
		if !models.Tier(e.Tier).Valid() {
			return fmt.Errorf("%w: model %q has unknown tier %q", ErrInvalidConfig, e.Alias, e.Tier)
		}
		switch models.Provider(e.Provider) {
		case models.ProviderOpenAI, models.ProviderAnthropic, models.ProviderGoogle, models.ProviderPerplexity:
		default:
			return fmt.Errorf("%w: model %q has unknown provider %q", ErrInvalidConfig, e.Alias, e.Provider)
		}
	}
	return nil
}
