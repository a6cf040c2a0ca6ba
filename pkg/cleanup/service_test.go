package cleanup

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeCache struct {
	deleted int
	err     error
	calls   atomic.Int64
}

func (f *fakeCache) DeleteExpired(_ context.Context) (int, error) {
	f.calls.Add(1)
	return f.deleted, f.err
}

type fakeSessions struct {
	swept int
	calls atomic.Int64
}

func (f *fakeSessions) CleanupExpired() int {
	f.calls.Add(1)
	return f.swept
}

type fakeBackfill struct {
	filled int
	err    error
	calls  atomic.Int64
}

func (f *fakeBackfill) RunOnce(_ context.Context) (int, error) {
	f.calls.Add(1)
	return f.filled, f.err
}

func TestService_RunAllInvokesEveryTask(t *testing.T) {
	cache := &fakeCache{deleted: 3}
	sessions := &fakeSessions{swept: 2}
	backfill := &fakeBackfill{filled: 5}

	svc := NewService(time.Hour, cache, sessions, backfill)
	svc.runAll(context.Background())

	assert.Equal(t, int64(1), cache.calls.Load())
	assert.Equal(t, int64(1), sessions.calls.Load())
	assert.Equal(t, int64(1), backfill.calls.Load())
}

func TestService_ContinuesPastTaskFailures(t *testing.T) {
	cache := &fakeCache{err: errors.New("db down")}
	sessions := &fakeSessions{}
	backfill := &fakeBackfill{err: errors.New("no embedder")}

	svc := NewService(time.Hour, cache, sessions, backfill)
	svc.runAll(context.Background())

	// A failing task must not keep the others from running.
	assert.Equal(t, int64(1), sessions.calls.Load())
	assert.Equal(t, int64(1), backfill.calls.Load())
}

func TestService_NilBackfillerIsSkipped(t *testing.T) {
	svc := NewService(time.Hour, &fakeCache{}, &fakeSessions{}, nil)
	assert.NotPanics(t, func() { svc.runAll(context.Background()) })
}

func TestService_StartRunsImmediatelyAndStops(t *testing.T) {
	cache := &fakeCache{}
	sessions := &fakeSessions{}

	svc := NewService(time.Hour, cache, sessions, nil)
	svc.Start(context.Background())
	svc.Stop()

	assert.GreaterOrEqual(t, cache.calls.Load(), int64(1))
	assert.GreaterOrEqual(t, sessions.calls.Load(), int64(1))
}

func TestService_StopWithoutStartIsNoop(t *testing.T) {
	svc := NewService(time.Hour, &fakeCache{}, &fakeSessions{}, nil)
	assert.NotPanics(t, svc.Stop)
}
