package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/models"
)

const minimalModelsYAML = `
models:
  - alias: gpt-5
    provider: openai
    model_name: gpt-5
    tier: standard
  - alias: claude-sonnet
    provider: anthropic
    model_name: claude-sonnet-4-5
    tier: standard
    input_wtu_multiplier: 0.8
    output_wtu_multiplier: 1.6
    sort_order: 1
`

func writeConfigDir(t *testing.T, clipdYAML, modelsYAML string) string {
	t.Helper()
	dir := t.TempDir()
	if clipdYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "clipd.yaml"), []byte(clipdYAML), 0o644))
	}
	if modelsYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "models.yaml"), []byte(modelsYAML), 0o644))
	}
	return dir
}

func TestInitialize_FullConfig(t *testing.T) {
	dir := writeConfigDir(t, `
defaults:
  monthly_quota_wtu: 2500
  cache_ttl: 720h
  tag_count: 8
  janitor_interval: 5m
`, minimalModelsYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2500, cfg.Defaults.MonthlyQuotaWTU)
	assert.Equal(t, 720*time.Hour, cfg.Defaults.CacheTTL)
	assert.Equal(t, 8, cfg.Defaults.TagCount)
	assert.Equal(t, 5*time.Minute, cfg.Defaults.JanitorInterval)
	assert.Equal(t, 60*time.Second, cfg.Defaults.LLMCallTimeout, "omitted values fall back to defaults")
	assert.Len(t, cfg.CatalogSeed, 2)
	assert.Equal(t, dir, cfg.ConfigDir())
}

func TestInitialize_MissingClipdYAMLUsesDefaults(t *testing.T) {
	dir := writeConfigDir(t, "", minimalModelsYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Defaults.MonthlyQuotaWTU)
	assert.Equal(t, 30*24*time.Hour, cfg.Defaults.CacheTTL)
	assert.Equal(t, 5, cfg.Defaults.TagCount)
	assert.Equal(t, 24*time.Hour, cfg.Defaults.SessionMaxAge)
	assert.Equal(t, 15*time.Minute, cfg.Defaults.JanitorInterval)
	assert.Equal(t, time.Minute, cfg.Defaults.CatalogCacheTTL)
	assert.InDelta(t, 0.5, cfg.Defaults.Personalization.Personalization, 1e-9)
}

func TestInitialize_MissingModelsYAMLFails(t *testing.T) {
	dir := writeConfigDir(t, "", "")

	_, err := Initialize(context.Background(), dir)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestInitialize_EmptyModelListFails(t *testing.T) {
	dir := writeConfigDir(t, "", "models: []\n")

	_, err := Initialize(context.Background(), dir)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestInitialize_MalformedYAMLFails(t *testing.T) {
	dir := writeConfigDir(t, "", "models:\n  - alias: [unclosed\n")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
}

func TestValidateSeed(t *testing.T) {
	base := func() []CatalogSeedEntry {
		return []CatalogSeedEntry{
			{Alias: "gpt-5", Provider: "openai", ModelName: "gpt-5", Tier: "standard"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validateSeed(base()))
	})

	t.Run("missing alias", func(t *testing.T) {
		entries := base()
		entries[0].Alias = ""
		assert.ErrorIs(t, validateSeed(entries), ErrInvalidConfig)
	})

	t.Run("duplicate alias", func(t *testing.T) {
		entries := append(base(), base()...)
		assert.ErrorIs(t, validateSeed(entries), ErrInvalidConfig)
	})

	t.Run("missing model name", func(t *testing.T) {
		entries := base()
		entries[0].ModelName = ""
		assert.ErrorIs(t, validateSeed(entries), ErrInvalidConfig)
	})

	t.Run("unknown tier", func(t *testing.T) {
		entries := base()
		entries[0].Tier = "hyperspeed"
		assert.ErrorIs(t, validateSeed(entries), ErrInvalidConfig)
	})

	t.Run("unknown provider", func(t *testing.T) {
		entries := base()
		entries[0].Provider = "acme"
		assert.ErrorIs(t, validateSeed(entries), ErrInvalidConfig)
	})
}

func TestCatalogSeedEntry_ToModelEntry(t *testing.T) {
	inactive := false
	dims := 1536
	entry := CatalogSeedEntry{
		Alias:         "embedder",
		Provider:      "openai",
		ModelName:     "text-embedding-3-small",
		Tier:          "embedding",
		IsActive:      &inactive,
		EmbeddingDims: &dims,
	}

	m := entry.ToModelEntry()
	assert.Equal(t, models.ProviderOpenAI, m.Provider)
	assert.Equal(t, models.TierEmbedding, m.Tier)
	assert.False(t, m.IsActive)
	assert.Equal(t, 1.0, m.InputWTUMultiplier, "omitted multipliers default to 1.0")
	assert.Equal(t, 1.0, m.OutputWTUMultiplier)
	require.NotNil(t, m.EmbeddingDims)
	assert.Equal(t, 1536, *m.EmbeddingDims)

	// IsActive defaults to true when omitted.
	assert.True(t, CatalogSeedEntry{Alias: "a", Provider: "openai", ModelName: "x", Tier: "light"}.ToModelEntry().IsActive)
}

func TestProviderCredentials(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "g-test")
	t.Setenv("PERPLEXITY_API_KEY", "")
	t.Setenv("GOOGLE_BASE_URL", "")
	t.Setenv("PERPLEXITY_BASE_URL", "")

	creds := LoadProviderCredentials()
	assert.True(t, creds.Has(models.ProviderOpenAI))
	assert.False(t, creds.Has(models.ProviderAnthropic))
	assert.True(t, creds.Has(models.ProviderGoogle))
	assert.False(t, creds.Has(models.ProviderPerplexity))

	assert.Equal(t, []models.Provider{models.ProviderOpenAI, models.ProviderGoogle}, creds.Enabled())
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta/openai/", creds.GoogleBaseURL)
	assert.Equal(t, "https://api.perplexity.ai", creds.PerplexityBaseURL)
}

func TestConfig_Stats(t *testing.T) {
	cfg := &Config{
		CatalogSeed: []CatalogSeedEntry{{Alias: "a"}, {Alias: "b"}},
		Providers:   &ProviderCredentials{OpenAIAPIKey: "sk-test"},
	}
	stats := cfg.Stats()
	assert.Equal(t, 2, stats.SeedModels)
	assert.Equal(t, 1, stats.EnabledProviders)
}
