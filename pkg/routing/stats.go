package routing

import (
	"context"
	"sync"

	"github.com/clipdock/clipd/pkg/models"
)

// Stats tracks per-mode routing counters. Written by the router, read by
// the selector as its history signal and by the health endpoint.
type Stats struct {
	mu            sync.Mutex
	total         int64
	legacy        int64
	agent         int64
	fallback      int64
	successByMode map[models.ProcessingMode]int64
}

// NewStats creates an empty Stats.
func NewStats() *Stats {
	return &Stats{successByMode: make(map[models.ProcessingMode]int64)}
}

// Record registers one routed request's outcome.
func (s *Stats) Record(mode models.ProcessingMode, success, fallbackUsed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	switch mode {
	case models.ModeLegacy:
		s.legacy++
	case models.ModeAgent:
		s.agent++
	}
	if fallbackUsed {
		s.fallback++
	}
	if success {
		s.successByMode[mode]++
	}
}

// Snapshot returns a copy of the counters.
func (s *Stats) Snapshot() models.RoutingStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	byMode := make(map[string]int64, len(s.successByMode))
	for mode, n := range s.successByMode {
		byMode[string(mode)] = n
	}
	return models.RoutingStats{
		Total:         s.total,
		Legacy:        s.legacy,
		Agent:         s.agent,
		Fallback:      s.fallback,
		SuccessByMode: byMode,
	}
}

// History derives the selector's history signal from the counters. Success
// rates double as the quality proxy until real quality scoring lands.
func (s *Stats) History(_ context.Context, _ string) models.RoutingHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := models.RoutingHistory{}
	if s.legacy > 0 {
		h.LegacySuccessRate = float64(s.successByMode[models.ModeLegacy]) / float64(s.legacy)
	}
	if s.agent > 0 {
		h.AgentAvgQuality = float64(s.successByMode[models.ModeAgent]) / float64(s.agent)
	}
	return h
}
