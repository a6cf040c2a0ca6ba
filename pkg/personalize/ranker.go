// Package personalize re-ranks LLM-produced candidate tags and categories
// per user, mixing the LLM's order with the user's tagging history, recency
// and global popularity.
package personalize

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/clipdock/clipd/pkg/config"
	"github.com/clipdock/clipd/pkg/models"
)

// recencyHalfLifeDays shapes the recency decay exp(-days/30).
const recencyHalfLifeDays = 30.0

// TagStore is the persistence surface the ranker needs.
type TagStore interface {
	UserStats(ctx context.Context, userID string) ([]models.UserTagStat, error)
	RecordUse(ctx context.Context, userID string, tagNames []string) error
	ByNames(ctx context.Context, names []string) (map[string]models.Tag, error)
	MaxUseCount(ctx context.Context) (int, error)
}

// Embedder produces embedding vectors for candidate texts.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, models.ModelEntry, error)
}

// Ranker scores candidates as
//
//	final = base + w1*personalization + w2*recency + w3*popularity
//
// where base linearly decays with the candidate's position so the LLM's
// ordering stays the prior. With no user history the personalization and
// recency terms are zero and ranking degrades to base + popularity.
type Ranker struct {
	tags     TagStore
	embedder Embedder
	weights  config.PersonalizationWeights
	now      func() time.Time
}

// NewRanker creates a Ranker.
func NewRanker(tags TagStore, embedder Embedder, weights config.PersonalizationWeights) *Ranker {
	return &Ranker{tags: tags, embedder: embedder, weights: weights, now: time.Now}
}

// RankTags returns the top k candidates re-ranked for the user.
func (r *Ranker) RankTags(ctx context.Context, userID string, candidates []string, k int) ([]string, error) {
	scored, err := r.score(ctx, userID, candidates)
	if err != nil {
		return nil, err
	}
	if k <= 0 || k > len(scored) {
		k = len(scored)
	}
	out := make([]string, 0, k)
	for _, s := range scored[:k] {
		out = append(out, s.candidate)
	}
	return out, nil
}

// SelectCategory returns the best-scoring candidate, or "" for an empty set.
func (r *Ranker) SelectCategory(ctx context.Context, userID string, candidates []string) (string, error) {
	scored, err := r.score(ctx, userID, candidates)
	if err != nil {
		return "", err
	}
	if len(scored) == 0 {
		return "", nil
	}
	return scored[0].candidate, nil
}

// RecordUse registers accepted tags into the user's history.
func (r *Ranker) RecordUse(ctx context.Context, userID string, tags []string) error {
	return r.tags.RecordUse(ctx, userID, tags)
}

type scoredCandidate struct {
	candidate string
	score     float64
}

func (r *Ranker) score(ctx context.Context, userID string, candidates []string) ([]scoredCandidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	history, err := r.tags.UserStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	globals, err := r.tags.ByNames(ctx, candidates)
	if err != nil {
		return nil, err
	}
	maxGlobal, err := r.tags.MaxUseCount(ctx)
	if err != nil {
		return nil, err
	}

	// One batch embedding call for all candidates. A failure zeroes the
	// personalization term for the whole set instead of failing the request.
	var embeddings [][]float64
	if len(history) > 0 {
		embeddings, _, err = r.embedder.Embed(ctx, candidates)
		if err != nil {
			slog.Warn("Candidate embedding failed, skipping personalization term", "error", err)
			embeddings = nil
		}
	}

	k := len(candidates)
	scored := make([]scoredCandidate, 0, k)
	for i, candidate := range candidates {
		base := 1.0 - 0.9*float64(i)/float64(max(k-1, 1))

		personalization := 0.0
		if embeddings != nil && i < len(embeddings) {
			personalization = r.personalizationScore(embeddings[i], history)
		}

		recency := r.recencyScore(candidate, history)

		popularity := 0.0
		if maxGlobal > 0 {
			if tag, ok := globals[strings.ToLower(strings.TrimSpace(candidate))]; ok {
				popularity = float64(tag.UseCount) / float64(maxGlobal)
			}
		}

		final := base +
			r.weights.Personalization*personalization +
			r.weights.Recency*recency +
			r.weights.Popularity*popularity
		scored = append(scored, scoredCandidate{candidate: candidate, score: final})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].score > scored[b].score
	})
	return scored, nil
}

// personalizationScore takes the best affinity across the user's tags:
// cosine similarity to the tag embedding weighted by log(1+use_count),
// scaled by the normalizer and clamped to [0,1].
func (r *Ranker) personalizationScore(candidate []float64, history []models.UserTagStat) float64 {
	best := 0.0
	for _, h := range history {
		if len(h.Embedding) == 0 {
			continue
		}
		raw := Cosine(candidate, h.Embedding) * math.Log(1+float64(h.UseCount))
		if raw > best {
			best = raw
		}
	}
	score := best * r.weights.Norm
	return math.Max(0, math.Min(1, score))
}

// recencyScore decays with days since the user last used a tag matching the
// candidate case-insensitively.
func (r *Ranker) recencyScore(candidate string, history []models.UserTagStat) float64 {
	name := strings.ToLower(strings.TrimSpace(candidate))
	for _, h := range history {
		if strings.ToLower(h.TagName) == name {
			days := r.now().Sub(h.LastUsedAt).Hours() / 24
			if days < 0 {
				days = 0
			}
			return math.Exp(-days / recencyHalfLifeDays)
		}
	}
	return 0
}

// Cosine returns the cosine similarity of two vectors, 0 for mismatched or
// zero-length inputs.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
