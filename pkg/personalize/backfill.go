package personalize

import (
	"context"
	"fmt"

	"github.com/clipdock/clipd/pkg/models"
)

// backfillBatchSize bounds one embedding call's batch.
const backfillBatchSize = 64

// BackfillStore is the persistence surface of the embedding backfiller.
type BackfillStore interface {
	TagsWithoutEmbedding(ctx context.Context, limit int) ([]models.Tag, error)
	SetEmbedding(ctx context.Context, tagID string, embedding []float64) error
}

// Backfiller computes embeddings for dictionary tags that were created
// without one. Tag rows are written on the user request path without
// embeddings to keep confirms fast; this worker fills them in behind the
// scenes.
type Backfiller struct {
	store    BackfillStore
	embedder Embedder
}

// NewBackfiller creates a Backfiller.
func NewBackfiller(store BackfillStore, embedder Embedder) *Backfiller {
	return &Backfiller{store: store, embedder: embedder}
}

// RunOnce embeds one batch of pending tags and returns how many were filled.
func (b *Backfiller) RunOnce(ctx context.Context) (int, error) {
	tags, err := b.store.TagsWithoutEmbedding(ctx, backfillBatchSize)
	if err != nil {
		return 0, err
	}
	if len(tags) == 0 {
		return 0, nil
	}

	texts := make([]string, len(tags))
	for i, t := range tags {
		texts[i] = t.TagName
	}
	vectors, _, err := b.embedder.Embed(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("failed to embed %d tags: %w", len(tags), err)
	}
	if len(vectors) != len(tags) {
		return 0, fmt.Errorf("expected %d embeddings, got %d", len(tags), len(vectors))
	}

	filled := 0
	for i, t := range tags {
		if err := b.store.SetEmbedding(ctx, t.TagID, vectors[i]); err != nil {
			return filled, err
		}
		filled++
	}
	return filled, nil
}
