package summarize

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/extract"
	"github.com/clipdock/clipd/pkg/llm"
	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/services"
)

type fakeCaller struct {
	responses []string
	tiers     []models.Tier
	err       error
}

func (f *fakeCaller) Complete(_ context.Context, tier models.Tier, _ llm.CompletionRequest) (*models.LLMResult, models.ModelEntry, error) {
	if f.err != nil {
		return nil, models.ModelEntry{}, f.err
	}
	f.tiers = append(f.tiers, tier)
	content := "default"
	if len(f.responses) > 0 {
		content = f.responses[0]
		f.responses = f.responses[1:]
	}
	return &models.LLMResult{
		Content:      content,
		InputTokens:  1200,
		OutputTokens: 300,
	}, models.ModelEntry{Alias: "m1", InputWTUMultiplier: 1, OutputWTUMultiplier: 2}, nil
}

type fakeCacheStore struct {
	entries  map[string]*models.CacheEntry
	stored   []models.CacheEntry
	storeErr error
}

func newFakeCacheStore() *fakeCacheStore {
	return &fakeCacheStore{entries: make(map[string]*models.CacheEntry)}
}

func (f *fakeCacheStore) Lookup(_ context.Context, cacheKey string, cacheType models.CacheType) (*models.CacheEntry, error) {
	if e, ok := f.entries[cacheKey+"/"+string(cacheType)]; ok {
		return e, nil
	}
	return nil, services.ErrNotFound
}

func (f *fakeCacheStore) Store(_ context.Context, entry models.CacheEntry) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	f.stored = append(f.stored, entry)
	f.entries[entry.CacheKey+"/"+string(entry.CacheType)] = &entry
	return nil
}

type fakeBiller struct {
	charges int
	wtu     int
	err     error
}

func (f *fakeBiller) Charge(_ context.Context, _ string, entry models.ModelEntry, in, out int) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.charges++
	wtu := 2
	f.wtu += wtu
	return wtu, nil
}

type fakeRanker struct {
	rankErr  error
	recorded []string
}

func (f *fakeRanker) RankTags(_ context.Context, _ string, candidates []string, k int) ([]string, error) {
	if f.rankErr != nil {
		return nil, f.rankErr
	}
	// Reverse order so personalization is observable.
	out := make([]string, 0, len(candidates))
	for i := len(candidates) - 1; i >= 0; i-- {
		out = append(out, candidates[i])
	}
	if k < len(out) {
		out = out[:k]
	}
	return out, nil
}

func (f *fakeRanker) SelectCategory(_ context.Context, _ string, candidates []string) (string, error) {
	if f.rankErr != nil {
		return "", f.rankErr
	}
	if len(candidates) == 0 {
		return "", nil
	}
	return candidates[len(candidates)-1], nil
}

func (f *fakeRanker) RecordUse(_ context.Context, _ string, tags []string) error {
	f.recorded = append(f.recorded, tags...)
	return nil
}

type pipelineFixture struct {
	pipeline *Pipeline
	caller   *fakeCaller
	cache    *fakeCacheStore
	biller   *fakeBiller
	ranker   *fakeRanker
}

func newPipelineFixture() *pipelineFixture {
	f := &pipelineFixture{
		caller: &fakeCaller{responses: []string{
			"a concise summary",
			`["go", "databases", "testing"]`,
			`["Tech", "Programming"]`,
		}},
		cache:  newFakeCacheStore(),
		biller: &fakeBiller{},
		ranker: &fakeRanker{},
	}
	f.pipeline = NewPipeline(extract.New(), f.caller, f.cache, f.biller, f.ranker, time.Hour, 5)
	return f
}

func youtubeRequest() Request {
	return Request{
		UserID:     "u1",
		Type:       models.CacheYouTube,
		URL:        "https://youtube.com/watch?v=abc",
		Transcript: "hello world this is the transcript",
	}
}

func TestPipeline_MissGeneratesChargesAndStores(t *testing.T) {
	f := newPipelineFixture()

	result, err := f.pipeline.Summarize(context.Background(), youtubeRequest())
	require.NoError(t, err)

	assert.False(t, result.Cached)
	assert.Equal(t, "a concise summary", result.Summary)
	assert.Equal(t, []string{"go", "databases", "testing"}, result.CandidateTags)
	assert.Equal(t, []string{"Tech", "Programming"}, result.CandidateCategories)

	// All three pipeline calls ride the light tier.
	assert.Equal(t, []models.Tier{models.TierLight, models.TierLight, models.TierLight}, f.caller.tiers)
	assert.Equal(t, 3, f.biller.charges)
	assert.Equal(t, 6, result.WTUCost)

	require.Len(t, f.cache.stored, 1)
	assert.Equal(t, CacheKeyForURL("https://youtube.com/watch?v=abc"), f.cache.stored[0].CacheKey)
	assert.Equal(t, ContentHash("hello world this is the transcript"), f.cache.stored[0].ContentHash)
}

func TestPipeline_HitCostsNothingAndPersonalizes(t *testing.T) {
	f := newPipelineFixture()
	req := youtubeRequest()

	_, err := f.pipeline.Summarize(context.Background(), req)
	require.NoError(t, err)
	chargesAfterMiss := f.biller.charges

	result, err := f.pipeline.Summarize(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, result.Cached)
	assert.Equal(t, chargesAfterMiss, f.biller.charges, "cache hit must not charge")
	// The fake ranker reverses candidate order.
	assert.Equal(t, []string{"testing", "databases", "go"}, result.Tags)
	assert.Equal(t, "Programming", result.Category)
}

func TestPipeline_ChangedContentBehindSameKeyRegenerates(t *testing.T) {
	f := newPipelineFixture()

	_, err := f.pipeline.Summarize(context.Background(), youtubeRequest())
	require.NoError(t, err)
	chargesAfterMiss := f.biller.charges

	// Same URL, different transcript: the key hits but the content hash
	// does not, so the pipeline regenerates.
	req := youtubeRequest()
	req.Transcript = "a completely different transcript"
	f.caller.responses = []string{"updated summary", `["x"]`, `["Y"]`}

	result, err := f.pipeline.Summarize(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, result.Cached)
	assert.Equal(t, "updated summary", result.Summary)
	assert.Equal(t, chargesAfterMiss+3, f.biller.charges)
}

func TestPipeline_RefreshBypassesCache(t *testing.T) {
	f := newPipelineFixture()
	req := youtubeRequest()

	_, err := f.pipeline.Summarize(context.Background(), req)
	require.NoError(t, err)

	f.caller.responses = []string{"new summary", `["x"]`, `["Y"]`}
	req.Refresh = true
	result, err := f.pipeline.Summarize(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, result.Cached)
	assert.Equal(t, "new summary", result.Summary)
}

func TestPipeline_StoreFailureDoesNotFailRequest(t *testing.T) {
	f := newPipelineFixture()
	f.cache.storeErr = errors.New("db down")

	result, err := f.pipeline.Summarize(context.Background(), youtubeRequest())
	require.NoError(t, err)
	assert.Equal(t, "a concise summary", result.Summary)
}

func TestPipeline_QuotaRejectionAborts(t *testing.T) {
	f := newPipelineFixture()
	quotaErr := errors.New("quota exceeded")
	f.biller.err = quotaErr

	_, err := f.pipeline.Summarize(context.Background(), youtubeRequest())
	require.ErrorIs(t, err, quotaErr)
	assert.Empty(t, f.cache.stored, "nothing may be cached on an aborted generation")
}

func TestPipeline_RankerFailureDegradesToCandidateOrder(t *testing.T) {
	f := newPipelineFixture()
	f.ranker.rankErr = errors.New("embedder down")

	result, err := f.pipeline.Summarize(context.Background(), youtubeRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "databases", "testing"}, result.Tags)
	assert.Equal(t, "Tech", result.Category)
}

func TestPipeline_Validation(t *testing.T) {
	f := newPipelineFixture()
	ctx := context.Background()

	_, err := f.pipeline.Summarize(ctx, Request{Type: models.CacheWebpage, URL: "https://x"})
	assert.True(t, services.IsValidationError(err), "missing user id")

	_, err = f.pipeline.Summarize(ctx, Request{UserID: "u1", Type: "carrier-pigeon"})
	assert.True(t, services.IsValidationError(err), "unknown content type")

	_, err = f.pipeline.Summarize(ctx, Request{UserID: "u1", Type: models.CacheWebpage})
	assert.True(t, services.IsValidationError(err), "missing url")

	_, err = f.pipeline.Summarize(ctx, Request{UserID: "u1", Type: models.CachePDF})
	assert.True(t, services.IsValidationError(err), "missing pdf data")
}

func TestPipeline_ConfirmTags(t *testing.T) {
	f := newPipelineFixture()

	err := f.pipeline.ConfirmTags(context.Background(), "u1", []string{"go", "testing"})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "testing"}, f.ranker.recorded)

	assert.True(t, services.IsValidationError(f.pipeline.ConfirmTags(context.Background(), "", []string{"x"})))
	assert.True(t, services.IsValidationError(f.pipeline.ConfirmTags(context.Background(), "u1", nil)))
}
