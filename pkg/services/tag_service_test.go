package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/services"
	testdb "github.com/clipdock/clipd/test/database"
)

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "golang", services.NormalizeTag("  GoLang "))
	assert.Equal(t, "", services.NormalizeTag("   "))
}

func TestTagService_RecordUseUpserts(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTagService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.RecordUse(ctx, "user-1", []string{"Go", "testing"}))
	require.NoError(t, svc.RecordUse(ctx, "user-1", []string{"go"}))
	require.NoError(t, svc.RecordUse(ctx, "user-2", []string{"go"}))

	tags, err := svc.ByNames(ctx, []string{"go", "testing"})
	require.NoError(t, err)
	require.Contains(t, tags, "go")
	require.Contains(t, tags, "testing")
	assert.Equal(t, 3, tags["go"].UseCount, "global counter sums across users")
	assert.Equal(t, 1, tags["testing"].UseCount)

	stats, err := svc.UserStats(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, stats, 2)
	byName := map[string]int{}
	for _, s := range stats {
		byName[s.TagName] = s.UseCount
	}
	assert.Equal(t, 2, byName["go"], "per-user counter only counts this user")
	assert.Equal(t, 1, byName["testing"])
}

func TestTagService_RecordUseSkipsDuplicatesAndBlanks(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTagService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.RecordUse(ctx, "user-1", []string{"go", "GO", " go ", "", "  "}))

	tags, err := svc.ByNames(ctx, []string{"go"})
	require.NoError(t, err)
	assert.Equal(t, 1, tags["go"].UseCount, "one call counts a tag once however it is spelled")
}

func TestTagService_RecordUseValidatesUserID(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTagService(client.Client)

	err := svc.RecordUse(context.Background(), "", []string{"go"})
	assert.True(t, services.IsValidationError(err))
}

func TestTagService_UserStatsOrderedByRecency(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTagService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.RecordUse(ctx, "user-1", []string{"older"}))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, svc.RecordUse(ctx, "user-1", []string{"newer"}))

	stats, err := svc.UserStats(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "newer", stats[0].TagName)
	assert.Equal(t, "older", stats[1].TagName)
	assert.False(t, stats[0].LastUsedAt.Before(stats[1].LastUsedAt))
}

func TestTagService_UserStatsEmpty(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTagService(client.Client)

	stats, err := svc.UserStats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestTagService_ByNamesNormalizesAndSkipsUnknown(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTagService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.RecordUse(ctx, "user-1", []string{"go"}))

	tags, err := svc.ByNames(ctx, []string{" GO ", "never-used", ""})
	require.NoError(t, err)
	assert.Len(t, tags, 1)
	assert.Contains(t, tags, "go")

	tags, err = svc.ByNames(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestTagService_MaxUseCount(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTagService(client.Client)
	ctx := context.Background()

	max, err := svc.MaxUseCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, max, "empty dictionary reports zero")

	require.NoError(t, svc.RecordUse(ctx, "user-1", []string{"rare"}))
	require.NoError(t, svc.RecordUse(ctx, "user-1", []string{"popular"}))
	require.NoError(t, svc.RecordUse(ctx, "user-2", []string{"popular"}))
	require.NoError(t, svc.RecordUse(ctx, "user-3", []string{"popular"}))

	max, err = svc.MaxUseCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, max)
}

func TestTagService_EmbeddingBackfillCycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTagService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.RecordUse(ctx, "user-1", []string{"first"}))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, svc.RecordUse(ctx, "user-1", []string{"second"}))

	pending, err := svc.TagsWithoutEmbedding(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "first", pending[0].TagName, "oldest first")

	require.NoError(t, svc.SetEmbedding(ctx, pending[0].TagID, []float64{0.1, 0.2, 0.3}))

	pending, err = svc.TagsWithoutEmbedding(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "second", pending[0].TagName)

	tags, err := svc.ByNames(ctx, []string{"first"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, tags["first"].Embedding)
}

func TestTagService_TagsWithoutEmbeddingHonorsLimit(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTagService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.RecordUse(ctx, "user-1", []string{"a", "b", "c"}))

	pending, err := svc.TagsWithoutEmbedding(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestTagService_SetEmbeddingErrors(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTagService(client.Client)
	ctx := context.Background()

	err := svc.SetEmbedding(ctx, "no-such-tag", []float64{0.1})
	assert.ErrorIs(t, err, services.ErrNotFound)

	err = svc.SetEmbedding(ctx, "", []float64{0.1})
	assert.True(t, services.IsValidationError(err))

	err = svc.SetEmbedding(ctx, "some-id", nil)
	assert.True(t, services.IsValidationError(err))
}
