// Package cleanup provides the background janitor for data retention and
// maintenance tasks.
package cleanup

import (
	"context"
	"log/slog"
	"time"
)

// CacheStore removes expired summary cache rows.
type CacheStore interface {
	DeleteExpired(ctx context.Context) (int, error)
}

// SessionSweeper removes idle agent sessions.
type SessionSweeper interface {
	CleanupExpired() int
}

// EmbeddingBackfiller fills embeddings for tags created before the
// embedding model was available, one batch per run.
type EmbeddingBackfiller interface {
	RunOnce(ctx context.Context) (int, error)
}

// Service periodically runs maintenance tasks:
//   - Deletes summary cache entries past their TTL
//   - Sweeps idle agent sessions
//   - Backfills missing tag embeddings
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	interval time.Duration
	cache    CacheStore
	sessions SessionSweeper
	backfill EmbeddingBackfiller

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new janitor service. The backfiller may be nil when
// no embedding model is configured.
func NewService(interval time.Duration, cache CacheStore, sessions SessionSweeper, backfill EmbeddingBackfiller) *Service {
	return &Service{
		interval: interval,
		cache:    cache,
		sessions: sessions,
		backfill: backfill,
	}
}

// Start launches the background maintenance loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Janitor started", "interval", s.interval)
}

// Stop signals the maintenance loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Janitor stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.sweepCache(ctx)
	s.sweepSessions()
	s.backfillEmbeddings(ctx)
}

func (s *Service) sweepCache(_ context.Context) {
	count, err := s.cache.DeleteExpired(context.Background())
	if err != nil {
		slog.Error("Janitor: cache sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Janitor: deleted expired cache entries", "count", count)
	}
}

func (s *Service) sweepSessions() {
	if count := s.sessions.CleanupExpired(); count > 0 {
		slog.Info("Janitor: cleaned up idle agent sessions", "count", count)
	}
}

func (s *Service) backfillEmbeddings(_ context.Context) {
	if s.backfill == nil {
		return
	}
	count, err := s.backfill.RunOnce(context.Background())
	if err != nil {
		slog.Error("Janitor: embedding backfill failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Janitor: backfilled tag embeddings", "count", count)
	}
}
