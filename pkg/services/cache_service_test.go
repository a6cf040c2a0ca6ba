package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/services"
	testdb "github.com/clipdock/clipd/test/database"
)

func cacheEntry(key string, ttl time.Duration) models.CacheEntry {
	return models.CacheEntry{
		CacheKey:            key,
		CacheType:           models.CacheWebpage,
		ContentHash:         "hash-1",
		ExtractedText:       "the extracted text",
		Summary:             "the summary",
		CandidateTags:       []string{"go", "testing"},
		CandidateCategories: []string{"Tech"},
		WTUCost:             6,
		ExpiresAt:           time.Now().Add(ttl),
	}
}

func TestCacheService_StoreAndLookup(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCacheService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.Store(ctx, cacheEntry("key-1", time.Hour)))

	entry, err := svc.Lookup(ctx, "key-1", models.CacheWebpage)
	require.NoError(t, err)
	assert.Equal(t, "the summary", entry.Summary)
	assert.Equal(t, []string{"go", "testing"}, entry.CandidateTags)
	assert.Equal(t, []string{"Tech"}, entry.CandidateCategories)
	assert.Equal(t, 6, entry.WTUCost)
	assert.NotEmpty(t, entry.EntryID)
}

func TestCacheService_LookupMiss(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCacheService(client.Client)

	_, err := svc.Lookup(context.Background(), "absent", models.CacheWebpage)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCacheService_TypeIsPartOfTheKey(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCacheService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.Store(ctx, cacheEntry("key-1", time.Hour)))

	_, err := svc.Lookup(ctx, "key-1", models.CacheYouTube)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCacheService_StoreUpsertsInPlace(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCacheService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.Store(ctx, cacheEntry("key-1", time.Hour)))

	updated := cacheEntry("key-1", 2*time.Hour)
	updated.Summary = "a fresher summary"
	updated.ContentHash = "hash-2"
	require.NoError(t, svc.Store(ctx, updated))

	entry, err := svc.Lookup(ctx, "key-1", models.CacheWebpage)
	require.NoError(t, err)
	assert.Equal(t, "a fresher summary", entry.Summary)
	assert.Equal(t, "hash-2", entry.ContentHash)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "re-summarizing replaces the row, not adds one")
}

func TestCacheService_ExpiredRowsAreMisses(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCacheService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.Store(ctx, cacheEntry("stale", -time.Minute)))

	_, err := svc.Lookup(ctx, "stale", models.CacheWebpage)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCacheService_DeleteExpired(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCacheService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.Store(ctx, cacheEntry("live", time.Hour)))
	require.NoError(t, svc.Store(ctx, cacheEntry("stale-1", -time.Minute)))
	require.NoError(t, svc.Store(ctx, cacheEntry("stale-2", -time.Hour)))

	n, err := svc.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = svc.Lookup(ctx, "live", models.CacheWebpage)
	assert.NoError(t, err)

	n, err = svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCacheService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCacheService(client.Client)
	ctx := context.Background()

	_, err := svc.Lookup(ctx, "", models.CacheWebpage)
	assert.True(t, services.IsValidationError(err))

	_, err = svc.Lookup(ctx, "key", models.CacheType("carrier-pigeon"))
	assert.True(t, services.IsValidationError(err))

	err = svc.Store(ctx, models.CacheEntry{CacheType: models.CacheWebpage, ExpiresAt: time.Now().Add(time.Hour)})
	assert.True(t, services.IsValidationError(err))

	entry := cacheEntry("key", time.Hour)
	entry.ExpiresAt = time.Time{}
	err = svc.Store(ctx, entry)
	assert.True(t, services.IsValidationError(err))
}
