package routing

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/extract"
	"github.com/clipdock/clipd/pkg/llm"
	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/services"
	"github.com/clipdock/clipd/pkg/summarize"
)

type legacyCaller struct {
	responses []string
}

func (l *legacyCaller) Complete(_ context.Context, _ models.Tier, _ llm.CompletionRequest) (*models.LLMResult, models.ModelEntry, error) {
	content := "generated"
	if len(l.responses) > 0 {
		content = l.responses[0]
		l.responses = l.responses[1:]
	}
	return &models.LLMResult{Content: content, InputTokens: 500, OutputTokens: 200},
		models.ModelEntry{Alias: "gpt", InputWTUMultiplier: 1, OutputWTUMultiplier: 2}, nil
}

type legacyCache struct {
	entry *models.CacheEntry
}

func (l *legacyCache) Lookup(_ context.Context, _ string, _ models.CacheType) (*models.CacheEntry, error) {
	if l.entry != nil {
		return l.entry, nil
	}
	return nil, services.ErrNotFound
}

func (l *legacyCache) Store(_ context.Context, entry models.CacheEntry) error {
	l.entry = &entry
	return nil
}

type legacyBiller struct{}

func (legacyBiller) Charge(context.Context, string, models.ModelEntry, int, int) (int, error) {
	return 2, nil
}

type legacyRanker struct{}

func (legacyRanker) RankTags(_ context.Context, _ string, candidates []string, k int) ([]string, error) {
	if k < len(candidates) {
		candidates = candidates[:k]
	}
	return candidates, nil
}

func (legacyRanker) SelectCategory(_ context.Context, _ string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", nil
	}
	return candidates[0], nil
}

func (legacyRanker) RecordUse(context.Context, string, []string) error { return nil }

func newLegacyAdapter(cache *legacyCache) *PipelineLegacy {
	pipeline := summarize.NewPipeline(
		extract.New(),
		&legacyCaller{responses: []string{"a summary", `["go"]`, `["Tech"]`}},
		cache,
		legacyBiller{},
		legacyRanker{},
		time.Hour,
		5,
	)
	return NewPipelineLegacy(pipeline, nil)
}

func legacyRouteRequest(data map[string]any) models.RouteRequest {
	return models.RouteRequest{
		RequestType: "summarize",
		UserID:      "u1",
		RequestData: data,
	}
}

func TestPipelineLegacy_ProcessYouTube(t *testing.T) {
	adapter := newLegacyAdapter(&legacyCache{})

	out, wtu, err := adapter.Process(context.Background(), legacyRouteRequest(map[string]any{
		"content_type": "youtube",
		"url":          "https://youtube.com/watch?v=abc",
		"transcript":   "hello transcript",
	}))
	require.NoError(t, err)

	assert.Equal(t, "a summary", out["summary"])
	assert.Equal(t, []string{"go"}, out["tags"])
	assert.Equal(t, "Tech", out["category"])
	assert.Equal(t, false, out["cached"])
	assert.Equal(t, 6, wtu)
}

func TestPipelineLegacy_CachedHitCostsNothing(t *testing.T) {
	cache := &legacyCache{entry: &models.CacheEntry{
		CacheKey:            summarize.CacheKeyForURL("https://youtube.com/watch?v=abc"),
		CacheType:           models.CacheYouTube,
		ContentHash:         summarize.ContentHash("hello transcript"),
		Summary:             "cached summary",
		CandidateTags:       []string{"go"},
		CandidateCategories: []string{"Tech"},
		WTUCost:             6,
	}}
	adapter := newLegacyAdapter(cache)

	out, wtu, err := adapter.Process(context.Background(), legacyRouteRequest(map[string]any{
		"content_type": "youtube",
		"url":          "https://youtube.com/watch?v=abc",
		"transcript":   "hello transcript",
	}))
	require.NoError(t, err)

	assert.Equal(t, "cached summary", out["summary"])
	assert.Equal(t, true, out["cached"])
	assert.Equal(t, 0, wtu, "cache hits are free regardless of the entry's stored cost")
}

func TestPipelineLegacy_DefaultsToWebpageType(t *testing.T) {
	adapter := newLegacyAdapter(&legacyCache{})

	// No content_type and no url: the webpage default then fails url
	// validation, proving the default was applied.
	_, _, err := adapter.Process(context.Background(), legacyRouteRequest(map[string]any{}))
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
	assert.Contains(t, err.Error(), "url")
}

func TestPipelineLegacy_PDFDataDecoding(t *testing.T) {
	adapter := newLegacyAdapter(&legacyCache{})

	t.Run("invalid base64 rejected", func(t *testing.T) {
		_, _, err := adapter.Process(context.Background(), legacyRouteRequest(map[string]any{
			"content_type": "pdf",
			"pdf_data":     "not-base64!!!",
		}))
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("non-string pdf_data rejected", func(t *testing.T) {
		_, _, err := adapter.Process(context.Background(), legacyRouteRequest(map[string]any{
			"content_type": "pdf",
			"pdf_data":     12345,
		}))
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("valid base64 reaches extraction", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString([]byte("not a real pdf"))
		_, _, err := adapter.Process(context.Background(), legacyRouteRequest(map[string]any{
			"content_type": "pdf",
			"pdf_data":     encoded,
		}))
		// Garbage bytes fail in the PDF parser, past request validation.
		assert.ErrorIs(t, err, extract.ErrExtractionFailed)
	})
}

func TestPipelineLegacy_Ping(t *testing.T) {
	adapter := NewPipelineLegacy(nil, nil)
	assert.NoError(t, adapter.Ping(context.Background()), "nil pinger means nothing to probe")

	wantErr := errors.New("db down")
	adapter = NewPipelineLegacy(nil, pingFunc(func(context.Context) error { return wantErr }))
	assert.ErrorIs(t, adapter.Ping(context.Background()), wantErr)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }
