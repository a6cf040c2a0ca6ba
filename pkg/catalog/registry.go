// Package catalog resolves capability tiers to concrete models. It keeps a
// short-lived in-memory snapshot of the catalog table, filtered down to
// providers that have credentials, so the hot path never hits the database.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/clipdock/clipd/pkg/models"
)

// NoModelsForTierError indicates a tier with no usable model: either the
// catalog has no active rows for it or every row's provider lacks
// credentials.
type NoModelsForTierError struct {
	Tier models.Tier
}

func (e *NoModelsForTierError) Error() string {
	return fmt.Sprintf("no usable models for tier %q", e.Tier)
}

// Store is the persistence surface the registry needs.
type Store interface {
	ListActive(ctx context.Context) ([]models.ModelEntry, error)
	Seed(ctx context.Context, entries []models.ModelEntry) error
}

// CredentialChecker reports whether a provider can be called.
type CredentialChecker interface {
	Has(provider models.Provider) bool
}

// Registry serves tier lookups from a cached snapshot of the catalog.
type Registry struct {
	store Store
	creds CredentialChecker
	ttl   time.Duration

	mu        sync.RWMutex
	byTier    map[models.Tier][]models.ModelEntry
	fetchedAt time.Time
}

// NewRegistry creates a Registry refreshing its snapshot at most every ttl.
func NewRegistry(store Store, creds CredentialChecker, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Registry{store: store, creds: creds, ttl: ttl}
}

// Seed upserts the models.yaml entries into the catalog table and invalidates
// the snapshot. Called once at startup.
func (r *Registry) Seed(ctx context.Context, entries []models.ModelEntry) error {
	if err := r.store.Seed(ctx, entries); err != nil {
		return err
	}
	r.Invalidate()
	slog.Info("Seeded model catalog", "models", len(entries))
	return nil
}

// ModelsForTier returns the usable models of a tier in fallback order.
// The returned slice is a copy; callers may not mutate the snapshot.
func (r *Registry) ModelsForTier(ctx context.Context, tier models.Tier) ([]models.ModelEntry, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("unknown tier %q", tier)
	}
	byTier, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	entries := byTier[tier]
	if len(entries) == 0 {
		return nil, &NoModelsForTierError{Tier: tier}
	}
	out := make([]models.ModelEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// Primary returns the first usable model of a tier.
func (r *Registry) Primary(ctx context.Context, tier models.Tier) (models.ModelEntry, error) {
	entries, err := r.ModelsForTier(ctx, tier)
	if err != nil {
		return models.ModelEntry{}, err
	}
	return entries[0], nil
}

// ByAlias finds a usable model by its alias across all tiers.
func (r *Registry) ByAlias(ctx context.Context, alias string) (models.ModelEntry, error) {
	byTier, err := r.snapshot(ctx)
	if err != nil {
		return models.ModelEntry{}, err
	}
	for _, entries := range byTier {
		for _, e := range entries {
			if e.Alias == alias {
				return e, nil
			}
		}
	}
	return models.ModelEntry{}, fmt.Errorf("unknown model alias %q", alias)
}

// Invalidate drops the snapshot so the next lookup refetches.
func (r *Registry) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byTier = nil
	r.fetchedAt = time.Time{}
}

// snapshot returns the current tier map, refreshing from the store when the
// TTL has elapsed. A refresh failure keeps serving the stale snapshot if one
// exists.
func (r *Registry) snapshot(ctx context.Context) (map[models.Tier][]models.ModelEntry, error) {
	r.mu.RLock()
	if r.byTier != nil && time.Since(r.fetchedAt) < r.ttl {
		byTier := r.byTier
		r.mu.RUnlock()
		return byTier, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byTier != nil && time.Since(r.fetchedAt) < r.ttl {
		return r.byTier, nil
	}

	entries, err := r.store.ListActive(ctx)
	if err != nil {
		if r.byTier != nil {
			slog.Warn("Catalog refresh failed, serving stale snapshot", "error", err)
			return r.byTier, nil
		}
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	byTier := make(map[models.Tier][]models.ModelEntry)
	skipped := 0
	for _, e := range entries {
		if !r.creds.Has(e.Provider) {
			skipped++
			continue
		}
		byTier[e.Tier] = append(byTier[e.Tier], e)
	}
	if skipped > 0 {
		slog.Debug("Skipped catalog models without credentials", "count", skipped)
	}

	r.byTier = byTier
	r.fetchedAt = time.Now()
	return byTier, nil
}
