package services

import (
	"context"
	"fmt"
	"time"

	"github.com/clipdock/clipd/ent"
	"github.com/clipdock/clipd/ent/summarycache"
	"github.com/clipdock/clipd/pkg/models"
	"github.com/google/uuid"
)

// CacheService owns the summary_caches table.
type CacheService struct {
	client *ent.Client
}

// NewCacheService creates a new CacheService.
func NewCacheService(client *ent.Client) *CacheService {
	return &CacheService{client: client}
}

// Lookup returns the unexpired entry for the key, or ErrNotFound. Expired
// rows are treated as misses and left for the sweeper.
func (s *CacheService) Lookup(ctx context.Context, cacheKey string, cacheType models.CacheType) (*models.CacheEntry, error) {
	if cacheKey == "" {
		return nil, NewValidationError("cache_key", "is required")
	}
	if !cacheType.Valid() {
		return nil, NewValidationError("cache_type", fmt.Sprintf("unknown cache type %q", cacheType))
	}
	row, err := s.client.SummaryCache.Query().
		Where(
			summarycache.CacheKey(cacheKey),
			summarycache.CacheTypeEQ(summarycache.CacheType(cacheType)),
			summarycache.ExpiresAtGT(time.Now()),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up cache entry: %w", err)
	}
	return toCacheEntry(row), nil
}

// Store upserts an entry keyed by (cache_key, cache_type). A re-summarized
// source replaces the previous row in place and gets a fresh TTL.
func (s *CacheService) Store(ctx context.Context, entry models.CacheEntry) error {
	if entry.CacheKey == "" {
		return NewValidationError("cache_key", "is required")
	}
	if !entry.CacheType.Valid() {
		return NewValidationError("cache_type", fmt.Sprintf("unknown cache type %q", entry.CacheType))
	}
	if entry.ExpiresAt.IsZero() {
		return NewValidationError("expires_at", "is required")
	}

	err := s.client.SummaryCache.Create().
		SetID(uuid.New().String()).
		SetCacheKey(entry.CacheKey).
		SetCacheType(summarycache.CacheType(entry.CacheType)).
		SetContentHash(entry.ContentHash).
		SetExtractedText(entry.ExtractedText).
		SetSummary(entry.Summary).
		SetCandidateTags(entry.CandidateTags).
		SetCandidateCategories(entry.CandidateCategories).
		SetWtuCost(entry.WTUCost).
		SetExpiresAt(entry.ExpiresAt).
		OnConflictColumns(summarycache.FieldCacheKey, summarycache.FieldCacheType).
		Update(func(u *ent.SummaryCacheUpsert) {
			u.SetContentHash(entry.ContentHash)
			u.SetExtractedText(entry.ExtractedText)
			u.SetSummary(entry.Summary)
			u.SetCandidateTags(entry.CandidateTags)
			u.SetCandidateCategories(entry.CandidateCategories)
			u.SetWtuCost(entry.WTUCost)
			u.SetExpiresAt(entry.ExpiresAt)
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}
	return nil
}

// DeleteExpired removes rows past their TTL and returns the count.
func (s *CacheService) DeleteExpired(ctx context.Context) (int, error) {
	n, err := s.client.SummaryCache.Delete().
		Where(summarycache.ExpiresAtLTE(time.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired cache entries: %w", err)
	}
	return n, nil
}

// Count returns the number of live entries.
func (s *CacheService) Count(ctx context.Context) (int, error) {
	n, err := s.client.SummaryCache.Query().
		Where(summarycache.ExpiresAtGT(time.Now())).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count cache entries: %w", err)
	}
	return n, nil
}

func toCacheEntry(row *ent.SummaryCache) *models.CacheEntry {
	return &models.CacheEntry{
		EntryID:             row.ID,
		CacheKey:            row.CacheKey,
		CacheType:           models.CacheType(row.CacheType),
		ContentHash:         row.ContentHash,
		ExtractedText:       row.ExtractedText,
		Summary:             row.Summary,
		CandidateTags:       row.CandidateTags,
		CandidateCategories: row.CandidateCategories,
		WTUCost:             row.WtuCost,
		ExpiresAt:           row.ExpiresAt,
		CreatedAt:           row.CreatedAt,
	}
}
