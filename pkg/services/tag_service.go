package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clipdock/clipd/ent"
	"github.com/clipdock/clipd/ent/tagmaster"
	"github.com/clipdock/clipd/ent/usertagusage"
	"github.com/clipdock/clipd/pkg/models"
	"github.com/google/uuid"
)

// TagService owns the tag dictionary and per-user tag history.
type TagService struct {
	client *ent.Client
}

// NewTagService creates a new TagService.
func NewTagService(client *ent.Client) *TagService {
	return &TagService{client: client}
}

// NormalizeTag lower-cases and trims a tag for dictionary lookup.
func NormalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// RecordUse registers that the user accepted the given tags: the global
// counters and the user's history rows are both upserted. Duplicate and empty
// names are skipped.
func (s *TagService) RecordUse(ctx context.Context, userID string, tagNames []string) error {
	if userID == "" {
		return NewValidationError("user_id", "is required")
	}

	now := time.Now()
	seen := make(map[string]bool, len(tagNames))
	for _, raw := range tagNames {
		name := NormalizeTag(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		err := s.client.TagMaster.Create().
			SetID(uuid.New().String()).
			SetTagName(name).
			SetUseCount(1).
			OnConflictColumns(tagmaster.FieldTagName).
			Update(func(u *ent.TagMasterUpsert) {
				u.AddUseCount(1)
			}).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert tag %q: %w", name, err)
		}

		tag, err := s.client.TagMaster.Query().
			Where(tagmaster.TagName(name)).
			Only(ctx)
		if err != nil {
			return fmt.Errorf("failed to load tag %q: %w", name, err)
		}

		err = s.client.UserTagUsage.Create().
			SetID(uuid.New().String()).
			SetUserID(userID).
			SetTagID(tag.ID).
			SetUseCount(1).
			SetLastUsedAt(now).
			OnConflictColumns(usertagusage.FieldUserID, usertagusage.FieldTagID).
			Update(func(u *ent.UserTagUsageUpsert) {
				u.AddUseCount(1)
				u.SetLastUsedAt(now)
			}).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert tag usage for %q: %w", name, err)
		}
	}
	return nil
}

// UserStats returns the user's tag history joined with the global dictionary,
// most recently used first.
func (s *TagService) UserStats(ctx context.Context, userID string) ([]models.UserTagStat, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "is required")
	}
	rows, err := s.client.UserTagUsage.Query().
		Where(usertagusage.UserID(userID)).
		WithTag().
		Order(ent.Desc(usertagusage.FieldLastUsedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tag usage: %w", err)
	}

	stats := make([]models.UserTagStat, 0, len(rows))
	for _, row := range rows {
		stat := models.UserTagStat{
			TagID:      row.TagID,
			UseCount:   row.UseCount,
			LastUsedAt: row.LastUsedAt,
		}
		if tag := row.Edges.Tag; tag != nil {
			stat.TagName = tag.TagName
			stat.GlobalUseCount = tag.UseCount
			stat.Embedding = tag.Embedding
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

// ByNames returns dictionary rows for the given normalized names, keyed by
// name. Unknown names are simply absent.
func (s *TagService) ByNames(ctx context.Context, names []string) (map[string]models.Tag, error) {
	if len(names) == 0 {
		return map[string]models.Tag{}, nil
	}
	normalized := make([]string, 0, len(names))
	for _, n := range names {
		if v := NormalizeTag(n); v != "" {
			normalized = append(normalized, v)
		}
	}
	rows, err := s.client.TagMaster.Query().
		Where(tagmaster.TagNameIn(normalized...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up tags: %w", err)
	}
	out := make(map[string]models.Tag, len(rows))
	for _, row := range rows {
		out[row.TagName] = models.Tag{
			TagID:     row.ID,
			TagName:   row.TagName,
			Embedding: row.Embedding,
			UseCount:  row.UseCount,
		}
	}
	return out, nil
}

// MaxUseCount returns the highest global use count across the dictionary.
// Zero when the dictionary is empty.
func (s *TagService) MaxUseCount(ctx context.Context) (int, error) {
	row, err := s.client.TagMaster.Query().
		Order(ent.Desc(tagmaster.FieldUseCount)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query max tag use count: %w", err)
	}
	return row.UseCount, nil
}

// TagsWithoutEmbedding returns dictionary rows awaiting an embedding, oldest
// first, for the backfill worker.
func (s *TagService) TagsWithoutEmbedding(ctx context.Context, limit int) ([]models.Tag, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.client.TagMaster.Query().
		Where(tagmaster.EmbeddingIsNil()).
		Order(ent.Asc(tagmaster.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags without embedding: %w", err)
	}
	tags := make([]models.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, models.Tag{
			TagID:    row.ID,
			TagName:  row.TagName,
			UseCount: row.UseCount,
		})
	}
	return tags, nil
}

// SetEmbedding stores the embedding vector for one tag.
func (s *TagService) SetEmbedding(ctx context.Context, tagID string, embedding []float64) error {
	if tagID == "" {
		return NewValidationError("tag_id", "is required")
	}
	if len(embedding) == 0 {
		return NewValidationError("embedding", "must not be empty")
	}
	err := s.client.TagMaster.UpdateOneID(tagID).
		SetEmbedding(embedding).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set tag embedding: %w", err)
	}
	return nil
}
