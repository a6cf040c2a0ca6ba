// Package agentctx manages per-execution agent sessions: a shared key/value
// bag for inter-agent data, an execution log, and aggregated metrics. A
// session lives for one orchestrated run and is swept if abandoned.
package agentctx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clipdock/clipd/pkg/models"
)

// ErrSessionNotFound indicates an unknown or already cleaned-up session.
var ErrSessionNotFound = errors.New("agent session not found")

// Context carries the request-scoped facts agents need. Immutable after
// creation; mutable cross-agent state goes through the shared-data API.
type Context struct {
	SessionID          string
	UserID             string
	BoardID            string
	TopicID            string
	TaskType           string
	Complexity         int // 1..5
	Preferences        models.UserModelPreferences
	ReferenceMaterials []string
	CreatedAt          time.Time
}

// CreateParams configures a new session context.
type CreateParams struct {
	UserID             string
	BoardID            string
	TopicID            string
	TaskType           string
	Complexity         int
	Preferences        models.UserModelPreferences
	ReferenceMaterials []string
}

// Execution is one completed agent run inside a session.
type Execution struct {
	AgentName  string
	DurationMS int
	WTU        int
	Success    bool
	Summary    string
	At         time.Time
}

// AgentMetrics aggregates one agent's executions within a session.
type AgentMetrics struct {
	Executions    int     `json:"executions"`
	AvgDurationMS float64 `json:"avg_duration_ms"`
	AvgWTU        float64 `json:"avg_wtu"`
}

// Metrics is a point-in-time snapshot of a session's execution log.
type Metrics struct {
	SessionID       string                  `json:"session_id"`
	TotalExecutions int                     `json:"total_executions"`
	TotalWTU        int                     `json:"total_wtu"`
	TotalDurationMS int                     `json:"total_duration_ms"`
	SuccessRate     float64                 `json:"success_rate"`
	PerAgent        map[string]AgentMetrics `json:"per_agent"`
	AgeSeconds      float64                 `json:"age_seconds"`
}

// session bundles a context with its mutable state. All field access goes
// through mu so shared-data operations and metric snapshots serialize.
type session struct {
	mu         sync.Mutex
	ctx        Context
	shared     map[string]any
	executions []Execution
	lastActive time.Time
}

// Manager owns the live sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*session
	maxAge   time.Duration
}

// NewManager creates a Manager sweeping sessions older than maxAge.
func NewManager(maxAge time.Duration) *Manager {
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	return &Manager{
		sessions: make(map[string]*session),
		maxAge:   maxAge,
	}
}

// Create registers a new session and returns its context.
func (m *Manager) Create(params CreateParams) Context {
	now := time.Now()
	ctx := Context{
		SessionID:          uuid.New().String(),
		UserID:             params.UserID,
		BoardID:            params.BoardID,
		TopicID:            params.TopicID,
		TaskType:           params.TaskType,
		Complexity:         clampComplexity(params.Complexity),
		Preferences:        params.Preferences,
		ReferenceMaterials: params.ReferenceMaterials,
		CreatedAt:          now,
	}
	m.mu.Lock()
	m.sessions[ctx.SessionID] = &session{
		ctx:        ctx,
		shared:     make(map[string]any),
		lastActive: now,
	}
	m.mu.Unlock()
	return ctx
}

// Get returns the context of a live session.
func (m *Manager) Get(sessionID string) (Context, error) {
	s, err := m.session(sessionID)
	if err != nil {
		return Context{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx, nil
}

// ShareData stores a value for later agents in the same session.
func (m *Manager) ShareData(sessionID, key string, value any) error {
	s, err := m.session(sessionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.shared[key] = value
	s.lastActive = time.Now()
	s.mu.Unlock()
	return nil
}

// SharedData reads a shared value, returning def when the key is absent.
func (m *Manager) SharedData(sessionID, key string, def any) (any, error) {
	s, err := m.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.shared[key]; ok {
		return v, nil
	}
	return def, nil
}

// RecordExecution appends one agent run to the session log.
func (m *Manager) RecordExecution(sessionID string, exec Execution) error {
	s, err := m.session(sessionID)
	if err != nil {
		return err
	}
	if exec.At.IsZero() {
		exec.At = time.Now()
	}
	s.mu.Lock()
	s.executions = append(s.executions, exec)
	s.lastActive = time.Now()
	s.mu.Unlock()
	return nil
}

// Metrics returns a consistent snapshot of the session's execution log.
func (m *Manager) Metrics(sessionID string) (*Metrics, error) {
	s, err := m.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	metrics := &Metrics{
		SessionID:  sessionID,
		PerAgent:   make(map[string]AgentMetrics),
		AgeSeconds: time.Since(s.ctx.CreatedAt).Seconds(),
	}
	successes := 0
	type agg struct{ n, durationMS, wtu int }
	perAgent := make(map[string]*agg)
	for _, e := range s.executions {
		metrics.TotalExecutions++
		metrics.TotalWTU += e.WTU
		metrics.TotalDurationMS += e.DurationMS
		if e.Success {
			successes++
		}
		a := perAgent[e.AgentName]
		if a == nil {
			a = &agg{}
			perAgent[e.AgentName] = a
		}
		a.n++
		a.durationMS += e.DurationMS
		a.wtu += e.WTU
	}
	if metrics.TotalExecutions > 0 {
		metrics.SuccessRate = float64(successes) / float64(metrics.TotalExecutions)
	}
	for name, a := range perAgent {
		metrics.PerAgent[name] = AgentMetrics{
			Executions:    a.n,
			AvgDurationMS: float64(a.durationMS) / float64(a.n),
			AvgWTU:        float64(a.wtu) / float64(a.n),
		}
	}
	return metrics, nil
}

// Cleanup removes a session, logging its final metrics. Removing an
// unknown session is a no-op.
func (m *Manager) Cleanup(sessionID string) {
	metrics, err := m.Metrics(sessionID)
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
	if err != nil {
		return
	}
	slog.Info("Agent session finished",
		"session_id", sessionID,
		"executions", metrics.TotalExecutions,
		"wtu", metrics.TotalWTU,
		"duration_ms", metrics.TotalDurationMS,
		"success_rate", metrics.SuccessRate,
		"age_seconds", metrics.AgeSeconds)
}

// WithContext creates a session, runs fn, and guarantees cleanup with a
// final metrics log on every exit path including panics and cancellation.
func (m *Manager) WithContext(ctx context.Context, params CreateParams, fn func(ctx context.Context, sc Context) error) error {
	sc := m.Create(params)
	defer m.Cleanup(sc.SessionID)
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, sc)
}

// CleanupExpired removes sessions idle past the max age and returns the
// count. Run periodically by the janitor.
func (m *Manager) CleanupExpired() int {
	cutoff := time.Now().Add(-m.maxAge)

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		s.mu.Lock()
		stale := s.lastActive.Before(cutoff)
		executions := len(s.executions)
		wtu := 0
		for _, e := range s.executions {
			wtu += e.WTU
		}
		age := time.Since(s.ctx.CreatedAt)
		s.mu.Unlock()
		if stale {
			delete(m.sessions, id)
			removed++
			slog.Info("Swept expired agent session",
				"session_id", id, "age", age, "executions", executions, "wtu", wtu)
		}
	}
	return removed
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) session(sessionID string) (*session, error) {
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return s, nil
}

func clampComplexity(c int) int {
	if c < 1 {
		return 1
	}
	if c > 5 {
		return 5
	}
	return c
}
