package routing

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clipdock/clipd/pkg/models"
)

func TestStats_RecordAndSnapshot(t *testing.T) {
	s := NewStats()

	s.Record(models.ModeLegacy, true, false)
	s.Record(models.ModeLegacy, false, false)
	s.Record(models.ModeAgent, true, false)
	s.Record(models.ModeLegacy, true, true)

	snap := s.Snapshot()
	assert.Equal(t, int64(4), snap.Total)
	assert.Equal(t, int64(3), snap.Legacy)
	assert.Equal(t, int64(1), snap.Agent)
	assert.Equal(t, int64(1), snap.Fallback)
	assert.Equal(t, int64(2), snap.SuccessByMode["legacy"])
	assert.Equal(t, int64(1), snap.SuccessByMode["agent"])
}

func TestStats_EmptySnapshot(t *testing.T) {
	snap := NewStats().Snapshot()
	assert.Equal(t, int64(0), snap.Total)
	assert.Empty(t, snap.SuccessByMode)
}

func TestStats_HistoryDerivesRates(t *testing.T) {
	s := NewStats()

	h := s.History(context.Background(), "u1")
	assert.Equal(t, 0.0, h.LegacySuccessRate, "no traffic means no rate")
	assert.Equal(t, 0.0, h.AgentAvgQuality)

	s.Record(models.ModeLegacy, true, false)
	s.Record(models.ModeLegacy, true, false)
	s.Record(models.ModeLegacy, false, false)
	s.Record(models.ModeAgent, true, false)

	h = s.History(context.Background(), "u1")
	assert.InDelta(t, 2.0/3.0, h.LegacySuccessRate, 1e-9)
	assert.InDelta(t, 1.0, h.AgentAvgQuality, 1e-9)
}

func TestStats_ConcurrentRecording(t *testing.T) {
	s := NewStats()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			mode := models.ModeLegacy
			if n%2 == 0 {
				mode = models.ModeAgent
			}
			s.Record(mode, true, false)
		}(i)
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Equal(t, int64(50), snap.Total)
	assert.Equal(t, int64(25), snap.Legacy)
	assert.Equal(t, int64(25), snap.Agent)
}
