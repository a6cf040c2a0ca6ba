package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/services"
	testdb "github.com/clipdock/clipd/test/database"
)

func seedEntries() []models.ModelEntry {
	return []models.ModelEntry{
		{
			Alias:               "gpt-mini",
			Provider:            models.ProviderOpenAI,
			ModelName:           "gpt-5-mini",
			Tier:                models.TierLight,
			InputWTUMultiplier:  0.3,
			OutputWTUMultiplier: 0.6,
			IsActive:            true,
			SortOrder:           0,
		},
		{
			Alias:               "claude-sonnet",
			Provider:            models.ProviderAnthropic,
			ModelName:           "claude-sonnet-4-5",
			Tier:                models.TierStandard,
			InputWTUMultiplier:  1,
			OutputWTUMultiplier: 2,
			IsActive:            true,
			SortOrder:           1,
		},
		{
			Alias:               "gpt-5",
			Provider:            models.ProviderOpenAI,
			ModelName:           "gpt-5",
			Tier:                models.TierStandard,
			InputWTUMultiplier:  1,
			OutputWTUMultiplier: 2,
			IsActive:            true,
			SortOrder:           0,
		},
		{
			Alias:               "retired",
			Provider:            models.ProviderOpenAI,
			ModelName:           "gpt-4",
			Tier:                models.TierStandard,
			InputWTUMultiplier:  1,
			OutputWTUMultiplier: 2,
			IsActive:            false,
			SortOrder:           9,
		},
	}
}

func TestCatalogService_SeedAndListActive(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCatalogService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx, seedEntries()))

	entries, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3, "inactive rows are excluded")

	aliases := make([]string, 0, len(entries))
	for _, e := range entries {
		aliases = append(aliases, e.Alias)
	}
	// Ordered by tier, then sort order, then alias.
	assert.Equal(t, []string{"gpt-mini", "gpt-5", "claude-sonnet"}, aliases)

	assert.Equal(t, models.ProviderOpenAI, entries[0].Provider)
	assert.InDelta(t, 0.3, entries[0].InputWTUMultiplier, 1e-9)
	assert.InDelta(t, 0.6, entries[0].OutputWTUMultiplier, 1e-9)
}

func TestCatalogService_SeedIsIdempotentUpsert(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCatalogService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx, seedEntries()))
	require.NoError(t, svc.Seed(ctx, seedEntries()))

	entries, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "re-seeding does not duplicate rows")

	// A changed seed updates the existing row in place.
	changed := seedEntries()[:1]
	changed[0].ModelName = "gpt-5-mini-2026"
	changed[0].OutputWTUMultiplier = 0.5
	require.NoError(t, svc.Seed(ctx, changed))

	entries, err = svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gpt-5-mini-2026", entries[0].ModelName)
	assert.InDelta(t, 0.5, entries[0].OutputWTUMultiplier, 1e-9)
}

func TestCatalogService_SetActive(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCatalogService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx, seedEntries()))

	require.NoError(t, svc.SetActive(ctx, "gpt-5", false))
	entries, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, svc.SetActive(ctx, "retired", true))
	entries, err = svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestCatalogService_SetActiveUnknownAlias(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCatalogService(client.Client)

	err := svc.SetActive(context.Background(), "no-such-model", true)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCatalogService_EmbeddingDimsRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCatalogService(client.Client)
	ctx := context.Background()

	dims := 1536
	require.NoError(t, svc.Seed(ctx, []models.ModelEntry{{
		Alias:               "embedder",
		Provider:            models.ProviderOpenAI,
		ModelName:           "text-embedding-3-small",
		Tier:                models.TierEmbedding,
		InputWTUMultiplier:  0.1,
		OutputWTUMultiplier: 0.1,
		IsActive:            true,
		EmbeddingDims:       &dims,
	}}))

	entries, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].EmbeddingDims)
	assert.Equal(t, 1536, *entries[0].EmbeddingDims)
}
