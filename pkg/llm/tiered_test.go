package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/models"
)

type fakeSource struct {
	byTier map[models.Tier][]models.ModelEntry
}

func (f *fakeSource) ModelsForTier(_ context.Context, tier models.Tier) ([]models.ModelEntry, error) {
	entries := f.byTier[tier]
	if len(entries) == 0 {
		return nil, errors.New("no models")
	}
	return entries, nil
}

func (f *fakeSource) Primary(ctx context.Context, tier models.Tier) (models.ModelEntry, error) {
	entries, err := f.ModelsForTier(ctx, tier)
	if err != nil {
		return models.ModelEntry{}, err
	}
	return entries[0], nil
}

func (f *fakeSource) ByAlias(_ context.Context, alias string) (models.ModelEntry, error) {
	for _, entries := range f.byTier {
		for _, e := range entries {
			if e.Alias == alias {
				return e, nil
			}
		}
	}
	return models.ModelEntry{}, errors.New("unknown alias")
}

// fakeBackend fails Complete for aliases listed in failing and succeeds
// otherwise. Stream behavior is driven per alias by streamScripts.
type fakeBackend struct {
	failing       map[string]error
	streamScripts map[string][]StreamChunk
	streamOpenErr map[string]error
	embedErr      error
	embedCalls    int
}

func (f *fakeBackend) Complete(_ context.Context, entry models.ModelEntry, _ CompletionRequest) (*models.LLMResult, error) {
	if err, ok := f.failing[entry.Alias]; ok {
		return nil, err
	}
	return &models.LLMResult{Content: "from " + entry.Alias, ModelAlias: entry.Alias, InputTokens: 10, OutputTokens: 5}, nil
}

func (f *fakeBackend) Stream(_ context.Context, entry models.ModelEntry, _ CompletionRequest) (<-chan StreamChunk, error) {
	if err, ok := f.streamOpenErr[entry.Alias]; ok {
		return nil, err
	}
	script := f.streamScripts[entry.Alias]
	out := make(chan StreamChunk, len(script))
	for _, chunk := range script {
		out <- chunk
	}
	close(out)
	return out, nil
}

func (f *fakeBackend) Embed(_ context.Context, entry models.ModelEntry, texts []string) ([][]float64, error) {
	f.embedCalls++
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	vectors := make([][]float64, len(texts))
	for i := range texts {
		vectors[i] = []float64{1, 0, 0}
	}
	return vectors, nil
}

type fakeRecorder struct {
	mu       sync.Mutex
	attempts []models.CallAttempt
	err      error
}

func (f *fakeRecorder) Record(_ context.Context, attempt models.CallAttempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.attempts = append(f.attempts, attempt)
	return nil
}

func (f *fakeRecorder) recorded() []models.CallAttempt {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.CallAttempt, len(f.attempts))
	copy(out, f.attempts)
	return out
}

func standardTierSource() *fakeSource {
	return &fakeSource{byTier: map[models.Tier][]models.ModelEntry{
		models.TierStandard: {
			{Alias: "primary", Provider: models.ProviderOpenAI, Tier: models.TierStandard},
			{Alias: "secondary", Provider: models.ProviderAnthropic, Tier: models.TierStandard},
		},
		models.TierEmbedding: {
			{Alias: "embedder", Provider: models.ProviderOpenAI, Tier: models.TierEmbedding},
		},
	}}
}

func TestCaller_CompleteUsesPrimary(t *testing.T) {
	recorder := &fakeRecorder{}
	c := NewCaller(standardTierSource(), &fakeBackend{}, recorder)

	result, entry, err := c.Complete(context.Background(), models.TierStandard, CompletionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "primary", entry.Alias)
	assert.Equal(t, "from primary", result.Content)

	attempts := recorder.recorded()
	require.Len(t, attempts, 1)
	assert.Equal(t, models.CallStatusSuccess, attempts[0].Status)
	assert.NotEmpty(t, attempts[0].RequestID)
}

func TestCaller_CompleteFallsBackOnFailure(t *testing.T) {
	recorder := &fakeRecorder{}
	backend := &fakeBackend{failing: map[string]error{"primary": errors.New("429 rate limited")}}
	c := NewCaller(standardTierSource(), backend, recorder)

	result, entry, err := c.Complete(context.Background(), models.TierStandard, CompletionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "secondary", entry.Alias)
	assert.Equal(t, "from secondary", result.Content)

	attempts := recorder.recorded()
	require.Len(t, attempts, 2)
	assert.Equal(t, models.CallStatusFallback, attempts[0].Status)
	assert.Equal(t, "secondary", attempts[0].FallbackTo)
	assert.Equal(t, models.CallStatusSuccess, attempts[1].Status)
	assert.Equal(t, attempts[0].RequestID, attempts[1].RequestID, "attempts of one call share a request id")
}

func TestCaller_CompleteAllModelsFail(t *testing.T) {
	recorder := &fakeRecorder{}
	backend := &fakeBackend{failing: map[string]error{
		"primary":   errors.New("rate limited"),
		"secondary": errors.New("overloaded"),
	}}
	c := NewCaller(standardTierSource(), backend, recorder)

	_, _, err := c.Complete(context.Background(), models.TierStandard, CompletionRequest{})
	var allFailed *AllProvidersFailedError
	require.ErrorAs(t, err, &allFailed)
	assert.Equal(t, models.TierStandard, allFailed.Tier)
	require.Len(t, allFailed.Attempts, 2)
	assert.Equal(t, "primary", allFailed.Attempts[0].ModelAlias)

	attempts := recorder.recorded()
	require.Len(t, attempts, 2)
	assert.Equal(t, models.CallStatusFallback, attempts[0].Status)
	assert.Equal(t, models.CallStatusFailed, attempts[1].Status, "last attempt has nothing to fall back to")
}

func TestCaller_CompleteStopsWhenContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	backend := &fakeBackend{failing: map[string]error{"primary": context.Canceled}}
	c := NewCaller(standardTierSource(), backend, &fakeRecorder{})

	cancel()
	_, _, err := c.Complete(ctx, models.TierStandard, CompletionRequest{})
	require.Error(t, err)
	var allFailed *AllProvidersFailedError
	assert.False(t, errors.As(err, &allFailed), "canceled context must not drain the fallback chain")
}

func TestCaller_CompleteLoggingFailureIsInvisible(t *testing.T) {
	recorder := &fakeRecorder{err: errors.New("db down")}
	c := NewCaller(standardTierSource(), &fakeBackend{}, recorder)

	_, _, err := c.Complete(context.Background(), models.TierStandard, CompletionRequest{})
	assert.NoError(t, err)
}

func TestCaller_NilRecorderIsAllowed(t *testing.T) {
	c := NewCaller(standardTierSource(), &fakeBackend{}, nil)
	_, _, err := c.Complete(context.Background(), models.TierStandard, CompletionRequest{})
	assert.NoError(t, err)
}

func collect(t *testing.T, ch <-chan StreamChunk) []StreamChunk {
	t.Helper()
	var chunks []StreamChunk
	timeout := time.After(5 * time.Second)
	for {
		select {
		case chunk, ok := <-ch:
			if !ok {
				return chunks
			}
			chunks = append(chunks, chunk)
		case <-timeout:
			t.Fatal("stream did not finish")
		}
	}
}

func TestCaller_StreamHappyPath(t *testing.T) {
	recorder := &fakeRecorder{}
	backend := &fakeBackend{streamScripts: map[string][]StreamChunk{
		"primary": {
			{Delta: "hel"},
			{Delta: "lo"},
			{Done: true, Result: &models.LLMResult{Content: "hello", InputTokens: 4, OutputTokens: 2}},
		},
	}}
	c := NewCaller(standardTierSource(), backend, recorder)

	ch, err := c.Stream(context.Background(), models.TierStandard, CompletionRequest{})
	require.NoError(t, err)
	chunks := collect(t, ch)

	require.Len(t, chunks, 3)
	assert.Equal(t, "hel", chunks[0].Delta)
	assert.True(t, chunks[2].Done)

	attempts := recorder.recorded()
	require.Len(t, attempts, 1)
	assert.Equal(t, models.CallStatusSuccess, attempts[0].Status)
}

func TestCaller_StreamFallsBackWhenOpenFails(t *testing.T) {
	backend := &fakeBackend{
		streamOpenErr: map[string]error{"primary": errors.New("connect refused")},
		streamScripts: map[string][]StreamChunk{
			"secondary": {
				{Delta: "ok"},
				{Done: true, Result: &models.LLMResult{Content: "ok"}},
			},
		},
	}
	c := NewCaller(standardTierSource(), backend, &fakeRecorder{})

	ch, err := c.Stream(context.Background(), models.TierStandard, CompletionRequest{})
	require.NoError(t, err)
	chunks := collect(t, ch)

	require.Len(t, chunks, 2)
	assert.Equal(t, "ok", chunks[0].Delta)
	assert.True(t, chunks[1].Done)
}

func TestCaller_StreamFallsBackBeforeFirstDelta(t *testing.T) {
	recorder := &fakeRecorder{}
	backend := &fakeBackend{
		streamScripts: map[string][]StreamChunk{
			// Fails in-band before emitting anything: still eligible for fallback.
			"primary": {{Err: errors.New("upstream reset")}},
			"secondary": {
				{Delta: "recovered"},
				{Done: true, Result: &models.LLMResult{Content: "recovered"}},
			},
		},
	}
	c := NewCaller(standardTierSource(), backend, recorder)

	ch, err := c.Stream(context.Background(), models.TierStandard, CompletionRequest{})
	require.NoError(t, err)
	chunks := collect(t, ch)

	require.Len(t, chunks, 2)
	assert.Equal(t, "recovered", chunks[0].Delta)

	// The failed attempt is logged with the provider's actual error, not a
	// generic placeholder.
	attempts := recorder.recorded()
	require.Len(t, attempts, 2)
	assert.Equal(t, models.CallStatusFallback, attempts[0].Status)
	assert.Equal(t, "upstream reset", attempts[0].ErrorMessage)
	assert.Equal(t, "secondary", attempts[0].FallbackTo)
	assert.Equal(t, models.CallStatusSuccess, attempts[1].Status)
}

func TestCaller_StreamNoFallbackAfterCommit(t *testing.T) {
	recorder := &fakeRecorder{}
	backend := &fakeBackend{
		streamScripts: map[string][]StreamChunk{
			"primary": {
				{Delta: "par"},
				{Err: errors.New("upstream reset")},
			},
			"secondary": {
				{Delta: "never seen"},
				{Done: true},
			},
		},
	}
	c := NewCaller(standardTierSource(), backend, recorder)

	ch, err := c.Stream(context.Background(), models.TierStandard, CompletionRequest{})
	require.NoError(t, err)
	chunks := collect(t, ch)

	require.Len(t, chunks, 2, "partial output then the terminal error, no restart")
	assert.Equal(t, "par", chunks[0].Delta)
	require.Error(t, chunks[1].Err)
	assert.NotContains(t, chunks[1].Err.Error(), "never seen")

	attempts := recorder.recorded()
	require.Len(t, attempts, 1)
	assert.Equal(t, models.CallStatusFailed, attempts[0].Status)
}

func TestCaller_StreamAllModelsFail(t *testing.T) {
	backend := &fakeBackend{streamOpenErr: map[string]error{
		"primary":   errors.New("down"),
		"secondary": errors.New("also down"),
	}}
	c := NewCaller(standardTierSource(), backend, &fakeRecorder{})

	ch, err := c.Stream(context.Background(), models.TierStandard, CompletionRequest{})
	require.NoError(t, err)
	chunks := collect(t, ch)

	require.Len(t, chunks, 1)
	var allFailed *AllProvidersFailedError
	require.ErrorAs(t, chunks[0].Err, &allFailed)
	assert.Len(t, allFailed.Attempts, 2)
}

func TestCaller_EmbedUsesPrimaryOnly(t *testing.T) {
	recorder := &fakeRecorder{}
	backend := &fakeBackend{}
	c := NewCaller(standardTierSource(), backend, recorder)

	vectors, entry, err := c.Embed(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "embedder", entry.Alias)
	assert.Len(t, vectors, 2)

	attempts := recorder.recorded()
	require.Len(t, attempts, 1)
	assert.Equal(t, models.TierEmbedding, attempts[0].Tier)
}

func TestCaller_EmbedNeverFallsBack(t *testing.T) {
	source := standardTierSource()
	source.byTier[models.TierEmbedding] = append(source.byTier[models.TierEmbedding],
		models.ModelEntry{Alias: "embedder-2", Provider: models.ProviderGoogle, Tier: models.TierEmbedding})
	backend := &fakeBackend{embedErr: errors.New("quota exhausted")}
	c := NewCaller(source, backend, &fakeRecorder{})

	_, _, err := c.Embed(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.Equal(t, 1, backend.embedCalls, "embedding spaces must not mix across models")
}

func TestErrorType(t *testing.T) {
	assert.Equal(t, "timeout", errorType(context.DeadlineExceeded))
	assert.Equal(t, "canceled", errorType(context.Canceled))
	assert.Equal(t, "unknown", errorType(errors.New("boom")))
}
