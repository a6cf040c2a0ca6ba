package agentctx

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs redirects the default logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestManager_CreateAndGet(t *testing.T) {
	m := NewManager(time.Hour)

	sc := m.Create(CreateParams{UserID: "u1", BoardID: "b1", TaskType: "research", Complexity: 3})
	require.NotEmpty(t, sc.SessionID)
	assert.Equal(t, 1, m.Count())

	got, err := m.Get(sc.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "b1", got.BoardID)
	assert.Equal(t, 3, got.Complexity)
}

func TestManager_ComplexityClamped(t *testing.T) {
	m := NewManager(time.Hour)

	assert.Equal(t, 1, m.Create(CreateParams{Complexity: 0}).Complexity)
	assert.Equal(t, 1, m.Create(CreateParams{Complexity: -7}).Complexity)
	assert.Equal(t, 5, m.Create(CreateParams{Complexity: 9}).Complexity)
}

func TestManager_UnknownSession(t *testing.T) {
	m := NewManager(time.Hour)

	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, m.ShareData("nope", "k", 1), ErrSessionNotFound)
	_, err = m.Metrics("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_SharedData(t *testing.T) {
	m := NewManager(time.Hour)
	sc := m.Create(CreateParams{UserID: "u1"})

	require.NoError(t, m.ShareData(sc.SessionID, "outline", []string{"a", "b"}))

	v, err := m.SharedData(sc.SessionID, "outline", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)

	v, err = m.SharedData(sc.SessionID, "missing", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", v)
}

func TestManager_MetricsAggregation(t *testing.T) {
	m := NewManager(time.Hour)
	sc := m.Create(CreateParams{UserID: "u1"})

	require.NoError(t, m.RecordExecution(sc.SessionID, Execution{AgentName: "research", DurationMS: 100, WTU: 4, Success: true}))
	require.NoError(t, m.RecordExecution(sc.SessionID, Execution{AgentName: "research", DurationMS: 300, WTU: 6, Success: true}))
	require.NoError(t, m.RecordExecution(sc.SessionID, Execution{AgentName: "writer", DurationMS: 50, WTU: 2, Success: false}))

	metrics, err := m.Metrics(sc.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 3, metrics.TotalExecutions)
	assert.Equal(t, 12, metrics.TotalWTU)
	assert.Equal(t, 450, metrics.TotalDurationMS)
	assert.InDelta(t, 2.0/3.0, metrics.SuccessRate, 1e-9)

	research := metrics.PerAgent["research"]
	assert.Equal(t, 2, research.Executions)
	assert.InDelta(t, 200.0, research.AvgDurationMS, 1e-9)
	assert.InDelta(t, 5.0, research.AvgWTU, 1e-9)
}

func TestManager_EmptyMetrics(t *testing.T) {
	m := NewManager(time.Hour)
	sc := m.Create(CreateParams{UserID: "u1"})

	metrics, err := m.Metrics(sc.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.TotalExecutions)
	assert.Equal(t, 0.0, metrics.SuccessRate)
}

func TestManager_WithContextCleansUp(t *testing.T) {
	m := NewManager(time.Hour)

	var captured Context
	err := m.WithContext(context.Background(), CreateParams{UserID: "u1"}, func(_ context.Context, sc Context) error {
		captured = sc
		assert.Equal(t, 1, m.Count())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, m.Count())

	_, err = m.Get(captured.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_WithContextCleansUpOnError(t *testing.T) {
	m := NewManager(time.Hour)

	wantErr := errors.New("agent blew up")
	err := m.WithContext(context.Background(), CreateParams{UserID: "u1"}, func(context.Context, Context) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 0, m.Count())
}

func TestManager_WithContextCleansUpOnPanic(t *testing.T) {
	m := NewManager(time.Hour)

	assert.Panics(t, func() {
		_ = m.WithContext(context.Background(), CreateParams{UserID: "u1"}, func(context.Context, Context) error {
			panic("boom")
		})
	})
	assert.Equal(t, 0, m.Count())
}

func TestManager_WithContextRespectsCanceledContext(t *testing.T) {
	m := NewManager(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := m.WithContext(ctx, CreateParams{UserID: "u1"}, func(context.Context, Context) error {
		ran = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
	assert.Equal(t, 0, m.Count())
}

func TestManager_CleanupLogsFinalMetrics(t *testing.T) {
	logs := captureLogs(t)
	m := NewManager(time.Hour)
	sc := m.Create(CreateParams{UserID: "u1"})
	require.NoError(t, m.RecordExecution(sc.SessionID, Execution{AgentName: "writer", WTU: 7, Success: true}))

	m.Cleanup(sc.SessionID)

	out := logs.String()
	assert.Contains(t, out, "Agent session finished")
	assert.Contains(t, out, sc.SessionID)
	assert.Contains(t, out, "wtu=7")
	assert.Contains(t, out, "executions=1")
}

func TestManager_CleanupOfUnknownSessionLogsNothing(t *testing.T) {
	logs := captureLogs(t)
	m := NewManager(time.Hour)

	m.Cleanup("nope")
	assert.Empty(t, logs.String())
}

func TestManager_WithContextLogsMetricsOnCancellation(t *testing.T) {
	logs := captureLogs(t)
	m := NewManager(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.WithContext(ctx, CreateParams{UserID: "u1"}, func(context.Context, Context) error {
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, m.Count())
	assert.Contains(t, logs.String(), "Agent session finished",
		"a cancelled run still reports its final metrics")
}

func TestManager_CleanupExpired(t *testing.T) {
	m := NewManager(50 * time.Millisecond)

	stale := m.Create(CreateParams{UserID: "u1"})
	time.Sleep(80 * time.Millisecond)
	fresh := m.Create(CreateParams{UserID: "u2"})

	removed := m.CleanupExpired()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, m.Count())

	_, err := m.Get(stale.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Get(fresh.SessionID)
	assert.NoError(t, err)
}

func TestManager_ActivityDefersExpiry(t *testing.T) {
	m := NewManager(60 * time.Millisecond)
	sc := m.Create(CreateParams{UserID: "u1"})

	time.Sleep(40 * time.Millisecond)
	require.NoError(t, m.ShareData(sc.SessionID, "k", 1))
	time.Sleep(40 * time.Millisecond)

	assert.Equal(t, 0, m.CleanupExpired(), "recent activity keeps the session alive")
}

func TestManager_ConcurrentSharedAccess(t *testing.T) {
	m := NewManager(time.Hour)
	sc := m.Create(CreateParams{UserID: "u1"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = m.ShareData(sc.SessionID, "key", n)
		}(i)
		go func() {
			defer wg.Done()
			_, _ = m.SharedData(sc.SessionID, "key", nil)
			_ = m.RecordExecution(sc.SessionID, Execution{AgentName: "a", Success: true})
		}()
	}
	wg.Wait()

	metrics, err := m.Metrics(sc.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 20, metrics.TotalExecutions)
}
