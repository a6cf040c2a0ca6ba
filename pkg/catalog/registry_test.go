package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/models"
)

type fakeStore struct {
	entries   []models.ModelEntry
	listCalls int
	listErr   error
	seeded    []models.ModelEntry
	seedErr   error
}

func (f *fakeStore) ListActive(_ context.Context) ([]models.ModelEntry, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

func (f *fakeStore) Seed(_ context.Context, entries []models.ModelEntry) error {
	if f.seedErr != nil {
		return f.seedErr
	}
	f.seeded = entries
	return nil
}

type fakeCreds map[models.Provider]bool

func (f fakeCreds) Has(p models.Provider) bool { return f[p] }

func allCreds() fakeCreds {
	return fakeCreds{
		models.ProviderOpenAI:     true,
		models.ProviderAnthropic:  true,
		models.ProviderGoogle:     true,
		models.ProviderPerplexity: true,
	}
}

func catalogEntries() []models.ModelEntry {
	return []models.ModelEntry{
		{Alias: "gpt-5-mini", Provider: models.ProviderOpenAI, Tier: models.TierLight, SortOrder: 0},
		{Alias: "gemini-flash", Provider: models.ProviderGoogle, Tier: models.TierLight, SortOrder: 1},
		{Alias: "gpt-5", Provider: models.ProviderOpenAI, Tier: models.TierStandard, SortOrder: 0},
		{Alias: "claude-sonnet", Provider: models.ProviderAnthropic, Tier: models.TierStandard, SortOrder: 1},
		{Alias: "sonar-pro", Provider: models.ProviderPerplexity, Tier: models.TierSearch, SortOrder: 0},
	}
}

func TestRegistry_ModelsForTierPreservesFallbackOrder(t *testing.T) {
	store := &fakeStore{entries: catalogEntries()}
	r := NewRegistry(store, allCreds(), time.Minute)

	entries, err := r.ModelsForTier(context.Background(), models.TierLight)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "gpt-5-mini", entries[0].Alias)
	assert.Equal(t, "gemini-flash", entries[1].Alias)
}

func TestRegistry_SnapshotServedWithinTTL(t *testing.T) {
	store := &fakeStore{entries: catalogEntries()}
	r := NewRegistry(store, allCreds(), time.Minute)

	_, err := r.ModelsForTier(context.Background(), models.TierLight)
	require.NoError(t, err)
	_, err = r.ModelsForTier(context.Background(), models.TierStandard)
	require.NoError(t, err)
	_, err = r.Primary(context.Background(), models.TierSearch)
	require.NoError(t, err)

	assert.Equal(t, 1, store.listCalls, "repeated lookups must reuse the snapshot")
}

func TestRegistry_CredentialFilterDropsProviders(t *testing.T) {
	store := &fakeStore{entries: catalogEntries()}
	creds := allCreds()
	creds[models.ProviderOpenAI] = false
	r := NewRegistry(store, creds, time.Minute)

	entries, err := r.ModelsForTier(context.Background(), models.TierLight)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "gemini-flash", entries[0].Alias)

	// Standard still has claude-sonnet, so it survives as the new primary.
	primary, err := r.Primary(context.Background(), models.TierStandard)
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet", primary.Alias)
}

func TestRegistry_EmptyTierReturnsTypedError(t *testing.T) {
	store := &fakeStore{entries: catalogEntries()}
	r := NewRegistry(store, allCreds(), time.Minute)

	_, err := r.ModelsForTier(context.Background(), models.TierPremium)
	var tierErr *NoModelsForTierError
	require.ErrorAs(t, err, &tierErr)
	assert.Equal(t, models.TierPremium, tierErr.Tier)
}

func TestRegistry_CredentiallessTierReturnsTypedError(t *testing.T) {
	store := &fakeStore{entries: catalogEntries()}
	creds := allCreds()
	creds[models.ProviderPerplexity] = false
	r := NewRegistry(store, creds, time.Minute)

	_, err := r.ModelsForTier(context.Background(), models.TierSearch)
	var tierErr *NoModelsForTierError
	require.ErrorAs(t, err, &tierErr)
}

func TestRegistry_UnknownTierRejected(t *testing.T) {
	store := &fakeStore{entries: catalogEntries()}
	r := NewRegistry(store, allCreds(), time.Minute)

	_, err := r.ModelsForTier(context.Background(), models.Tier("turbo"))
	require.Error(t, err)
	assert.Equal(t, 0, store.listCalls)
}

func TestRegistry_InvalidateDropsStaleFallback(t *testing.T) {
	store := &fakeStore{entries: catalogEntries()}
	r := NewRegistry(store, allCreds(), time.Minute)

	_, err := r.Primary(context.Background(), models.TierLight)
	require.NoError(t, err)

	store.listErr = errors.New("connection refused")
	r.Invalidate()

	_, err = r.Primary(context.Background(), models.TierLight)
	require.Error(t, err, "invalidated snapshot with failing store has nothing to serve")
}

func TestRegistry_ExpiredSnapshotSurvivesRefreshFailure(t *testing.T) {
	store := &fakeStore{entries: catalogEntries()}
	r := NewRegistry(store, allCreds(), time.Nanosecond)

	_, err := r.Primary(context.Background(), models.TierLight)
	require.NoError(t, err)

	store.listErr = errors.New("connection refused")
	time.Sleep(time.Millisecond)

	primary, err := r.Primary(context.Background(), models.TierLight)
	require.NoError(t, err, "expired but present snapshot keeps serving on refresh failure")
	assert.Equal(t, "gpt-5-mini", primary.Alias)
}

func TestRegistry_ByAlias(t *testing.T) {
	store := &fakeStore{entries: catalogEntries()}
	r := NewRegistry(store, allCreds(), time.Minute)

	entry, err := r.ByAlias(context.Background(), "claude-sonnet")
	require.NoError(t, err)
	assert.Equal(t, models.TierStandard, entry.Tier)

	_, err = r.ByAlias(context.Background(), "nonexistent")
	require.Error(t, err)
}

func TestRegistry_SeedUpsertsAndInvalidates(t *testing.T) {
	store := &fakeStore{entries: catalogEntries()[:1]}
	r := NewRegistry(store, allCreds(), time.Minute)

	_, err := r.Primary(context.Background(), models.TierLight)
	require.NoError(t, err)

	store.entries = catalogEntries()
	require.NoError(t, r.Seed(context.Background(), catalogEntries()))
	assert.Len(t, store.seeded, 5)

	entries, err := r.ModelsForTier(context.Background(), models.TierStandard)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "seed must drop the old snapshot")
}

func TestRegistry_SeedErrorPropagates(t *testing.T) {
	store := &fakeStore{seedErr: errors.New("duplicate key")}
	r := NewRegistry(store, allCreds(), time.Minute)
	require.Error(t, r.Seed(context.Background(), catalogEntries()))
}
