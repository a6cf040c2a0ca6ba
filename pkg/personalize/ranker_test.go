package personalize

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/config"
	"github.com/clipdock/clipd/pkg/models"
)

type fakeTagStore struct {
	stats    []models.UserTagStat
	globals  map[string]models.Tag
	maxUse   int
	recorded [][]string
	statsErr error
}

func (f *fakeTagStore) UserStats(_ context.Context, _ string) ([]models.UserTagStat, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}

func (f *fakeTagStore) RecordUse(_ context.Context, _ string, tagNames []string) error {
	f.recorded = append(f.recorded, tagNames)
	return nil
}

func (f *fakeTagStore) ByNames(_ context.Context, names []string) (map[string]models.Tag, error) {
	out := make(map[string]models.Tag)
	for _, n := range names {
		key := strings.ToLower(strings.TrimSpace(n))
		if tag, ok := f.globals[key]; ok {
			out[key] = tag
		}
	}
	return out, nil
}

func (f *fakeTagStore) MaxUseCount(_ context.Context) (int, error) {
	return f.maxUse, nil
}

type fakeEmbedder struct {
	vectors map[string][]float64
	err     error
	calls   int
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float64, models.ModelEntry, error) {
	f.calls++
	if f.err != nil {
		return nil, models.ModelEntry{}, f.err
	}
	out := make([][]float64, len(texts))
	for i, text := range texts {
		if v, ok := f.vectors[text]; ok {
			out[i] = v
		} else {
			out[i] = []float64{0, 0, 1}
		}
	}
	return out, models.ModelEntry{Alias: "embedder"}, nil
}

func defaultWeights() config.PersonalizationWeights {
	return config.PersonalizationWeights{
		Personalization: 0.5,
		Recency:         0.2,
		Popularity:      0.1,
		Norm:            0.25,
	}
}

func TestRanker_ColdStartPreservesCandidateOrder(t *testing.T) {
	store := &fakeTagStore{}
	embedder := &fakeEmbedder{}
	r := NewRanker(store, embedder, defaultWeights())

	out, err := r.RankTags(context.Background(), "new-user", []string{"go", "databases", "testing"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "databases", "testing"}, out)
	assert.Equal(t, 0, embedder.calls, "no history means no embedding call")
}

func TestRanker_TruncatesToK(t *testing.T) {
	r := NewRanker(&fakeTagStore{}, &fakeEmbedder{}, defaultWeights())

	out, err := r.RankTags(context.Background(), "u1", []string{"a", "b", "c", "d"}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out)

	all, err := r.RankTags(context.Background(), "u1", []string{"a", "b"}, 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRanker_RecencyLiftsRecentlyUsedTag(t *testing.T) {
	now := time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)
	store := &fakeTagStore{
		stats: []models.UserTagStat{
			{TagName: "testing", UseCount: 4, LastUsedAt: now.Add(-2 * time.Hour)},
		},
	}
	// No embeddings in history, so the personalization term stays zero and
	// only recency separates the candidates.
	r := NewRanker(store, &fakeEmbedder{}, config.PersonalizationWeights{Recency: 5.0, Norm: 0.25})
	r.now = func() time.Time { return now }

	out, err := r.RankTags(context.Background(), "u1", []string{"go", "databases", "testing"}, 3)
	require.NoError(t, err)
	assert.Equal(t, "testing", out[0])
}

func TestRanker_PopularityBreaksNearTies(t *testing.T) {
	store := &fakeTagStore{
		globals: map[string]models.Tag{
			"databases": {TagName: "databases", UseCount: 100},
		},
		maxUse: 100,
	}
	// Popularity weight large enough to beat the 0.45 base gap between
	// adjacent candidates.
	r := NewRanker(store, &fakeEmbedder{}, config.PersonalizationWeights{Popularity: 1.0, Norm: 0.25})

	out, err := r.RankTags(context.Background(), "u1", []string{"go", "databases"}, 2)
	require.NoError(t, err)
	assert.Equal(t, "databases", out[0])
}

func TestRanker_EmbeddingAffinityLiftsSimilarCandidate(t *testing.T) {
	store := &fakeTagStore{
		stats: []models.UserTagStat{
			{TagName: "kubernetes", UseCount: 20, LastUsedAt: time.Now().Add(-300 * 24 * time.Hour), Embedding: []float64{1, 0, 0}},
		},
	}
	embedder := &fakeEmbedder{vectors: map[string][]float64{
		"containers": {1, 0, 0},
		"cooking":    {0, 1, 0},
	}}
	r := NewRanker(store, embedder, config.PersonalizationWeights{Personalization: 3.0, Norm: 1.0})

	out, err := r.RankTags(context.Background(), "u1", []string{"cooking", "containers"}, 2)
	require.NoError(t, err)
	assert.Equal(t, "containers", out[0])
	assert.Equal(t, 1, embedder.calls, "candidates are embedded in one batch")
}

func TestRanker_EmbedFailureDegradesGracefully(t *testing.T) {
	store := &fakeTagStore{
		stats: []models.UserTagStat{
			{TagName: "go", UseCount: 3, LastUsedAt: time.Now(), Embedding: []float64{1, 0, 0}},
		},
	}
	embedder := &fakeEmbedder{err: errors.New("embedding service down")}
	r := NewRanker(store, embedder, defaultWeights())

	out, err := r.RankTags(context.Background(), "u1", []string{"go", "databases"}, 2)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestRanker_StoreErrorPropagates(t *testing.T) {
	store := &fakeTagStore{statsErr: errors.New("connection refused")}
	r := NewRanker(store, &fakeEmbedder{}, defaultWeights())

	_, err := r.RankTags(context.Background(), "u1", []string{"go"}, 1)
	assert.Error(t, err)
}

func TestRanker_SelectCategory(t *testing.T) {
	r := NewRanker(&fakeTagStore{}, &fakeEmbedder{}, defaultWeights())

	got, err := r.SelectCategory(context.Background(), "u1", []string{"Tech", "Cooking"})
	require.NoError(t, err)
	assert.Equal(t, "Tech", got)

	got, err = r.SelectCategory(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestRanker_EmptyCandidates(t *testing.T) {
	r := NewRanker(&fakeTagStore{}, &fakeEmbedder{}, defaultWeights())
	out, err := r.RankTags(context.Background(), "u1", nil, 5)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 0}, []float64{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, Cosine([]float64{1, 0}, []float64{-1, 0}), 1e-9)
	assert.Equal(t, 0.0, Cosine([]float64{1, 0}, []float64{1}), "mismatched lengths")
	assert.Equal(t, 0.0, Cosine(nil, nil), "empty vectors")
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 1}), "zero norm")
}

type fakeBackfillStore struct {
	pending  []models.Tag
	filled   map[string][]float64
	setErr   error
	listErr  error
	listSeen int
}

func (f *fakeBackfillStore) TagsWithoutEmbedding(_ context.Context, limit int) ([]models.Tag, error) {
	f.listSeen = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.pending, nil
}

func (f *fakeBackfillStore) SetEmbedding(_ context.Context, tagID string, embedding []float64) error {
	if f.setErr != nil {
		return f.setErr
	}
	if f.filled == nil {
		f.filled = make(map[string][]float64)
	}
	f.filled[tagID] = embedding
	return nil
}

func TestBackfiller_FillsPendingTags(t *testing.T) {
	store := &fakeBackfillStore{pending: []models.Tag{
		{TagID: "t1", TagName: "go"},
		{TagID: "t2", TagName: "databases"},
	}}
	b := NewBackfiller(store, &fakeEmbedder{})

	filled, err := b.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, filled)
	assert.Len(t, store.filled, 2)
	assert.NotEmpty(t, store.filled["t1"])
}

func TestBackfiller_NothingPending(t *testing.T) {
	embedder := &fakeEmbedder{}
	b := NewBackfiller(&fakeBackfillStore{}, embedder)

	filled, err := b.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, filled)
	assert.Equal(t, 0, embedder.calls)
}

func TestBackfiller_EmbedFailure(t *testing.T) {
	store := &fakeBackfillStore{pending: []models.Tag{{TagID: "t1", TagName: "go"}}}
	b := NewBackfiller(store, &fakeEmbedder{err: errors.New("down")})

	_, err := b.RunOnce(context.Background())
	require.Error(t, err)
	assert.Empty(t, store.filled)
}
