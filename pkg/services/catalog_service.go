// Package services contains the database-facing services. Each service owns
// the Ent access for one entity family; domain packages consume them through
// narrow interfaces.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/clipdock/clipd/ent"
	"github.com/clipdock/clipd/ent/modelentry"
	"github.com/clipdock/clipd/pkg/models"
	"github.com/google/uuid"
)

// CatalogService manages the model catalog table.
type CatalogService struct {
	client *ent.Client
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(client *ent.Client) *CatalogService {
	return &CatalogService{client: client}
}

// ListActive returns all active catalog rows ordered by tier, sort order and
// alias. The ordering is stable across calls and defines fallback order.
func (s *CatalogService) ListActive(ctx context.Context) ([]models.ModelEntry, error) {
	rows, err := s.client.ModelEntry.Query().
		Where(modelentry.IsActive(true)).
		Order(
			ent.Asc(modelentry.FieldTier),
			ent.Asc(modelentry.FieldSortOrder),
			ent.Asc(modelentry.FieldAlias),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog models: %w", err)
	}

	entries := make([]models.ModelEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, toModelEntry(row))
	}
	return entries, nil
}

// Seed idempotently upserts the given entries keyed by alias. Used at
// startup to sync models.yaml into the catalog table.
func (s *CatalogService) Seed(ctx context.Context, entries []models.ModelEntry) error {
	for _, e := range entries {
		err := s.client.ModelEntry.Create().
			SetID(uuid.New().String()).
			SetAlias(e.Alias).
			SetProvider(modelentry.Provider(e.Provider)).
			SetModelName(e.ModelName).
			SetTier(modelentry.Tier(e.Tier)).
			SetInputWtuMultiplier(e.InputWTUMultiplier).
			SetOutputWtuMultiplier(e.OutputWTUMultiplier).
			SetIsActive(e.IsActive).
			SetNillablePriceInputPerMillion(e.PriceInputPerMillion).
			SetNillablePriceOutputPerMillion(e.PriceOutputPerMillion).
			SetSortOrder(e.SortOrder).
			SetNillableEmbeddingDims(e.EmbeddingDims).
			OnConflictColumns(modelentry.FieldAlias).
			Update(func(u *ent.ModelEntryUpsert) {
				u.SetProvider(modelentry.Provider(e.Provider))
				u.SetModelName(e.ModelName)
				u.SetTier(modelentry.Tier(e.Tier))
				u.SetInputWtuMultiplier(e.InputWTUMultiplier)
				u.SetOutputWtuMultiplier(e.OutputWTUMultiplier)
				u.SetIsActive(e.IsActive)
				u.SetSortOrder(e.SortOrder)
				u.SetUpdatedAt(time.Now())
			}).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed model %q: %w", e.Alias, err)
		}
	}
	return nil
}

// SetActive flips a model's active flag (admin operation).
func (s *CatalogService) SetActive(ctx context.Context, alias string, active bool) error {
	n, err := s.client.ModelEntry.Update().
		Where(modelentry.Alias(alias)).
		SetIsActive(active).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update model %q: %w", alias, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toModelEntry(row *ent.ModelEntry) models.ModelEntry {
	return models.ModelEntry{
		Alias:                 row.Alias,
		Provider:              models.Provider(row.Provider),
		ModelName:             row.ModelName,
		Tier:                  models.Tier(row.Tier),
		InputWTUMultiplier:    row.InputWtuMultiplier,
		OutputWTUMultiplier:   row.OutputWtuMultiplier,
		IsActive:              row.IsActive,
		PriceInputPerMillion:  row.PriceInputPerMillion,
		PriceOutputPerMillion: row.PriceOutputPerMillion,
		SortOrder:             row.SortOrder,
		EmbeddingDims:         row.EmbeddingDims,
	}
}
