package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/services"
	testdb "github.com/clipdock/clipd/test/database"
)

func intPtr(n int) *int { return &n }

func TestCallLogService_RecordAndAttempts(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCallLogService(client.Client)
	ctx := context.Background()

	requestID := "req-1"
	require.NoError(t, svc.Record(ctx, models.CallAttempt{
		RequestID:    requestID,
		ModelAlias:   "gpt-5",
		Tier:         models.TierStandard,
		Status:       models.CallStatusFallback,
		ErrorType:    "rate_limit",
		ErrorMessage: "429 too many requests",
		FallbackTo:   "claude-sonnet",
		LatencyMS:    850,
	}))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, svc.Record(ctx, models.CallAttempt{
		RequestID:    requestID,
		ModelAlias:   "claude-sonnet",
		Tier:         models.TierStandard,
		Status:       models.CallStatusSuccess,
		InputTokens:  intPtr(1200),
		OutputTokens: intPtr(340),
		LatencyMS:    2100,
	}))
	require.NoError(t, svc.Record(ctx, models.CallAttempt{
		RequestID:  "req-2",
		ModelAlias: "gpt-5",
		Tier:       models.TierStandard,
		Status:     models.CallStatusSuccess,
	}))

	attempts, err := svc.Attempts(ctx, requestID)
	require.NoError(t, err)
	require.Len(t, attempts, 2, "other requests are excluded")

	first := attempts[0]
	assert.Equal(t, "gpt-5", first.ModelAlias)
	assert.Equal(t, models.CallStatusFallback, first.Status)
	assert.Equal(t, "rate_limit", first.ErrorType)
	assert.Equal(t, "429 too many requests", first.ErrorMessage)
	assert.Equal(t, "claude-sonnet", first.FallbackTo)
	assert.Equal(t, 850, first.LatencyMS)
	assert.Nil(t, first.InputTokens)

	second := attempts[1]
	assert.Equal(t, "claude-sonnet", second.ModelAlias)
	assert.Equal(t, models.CallStatusSuccess, second.Status)
	require.NotNil(t, second.InputTokens)
	assert.Equal(t, 1200, *second.InputTokens)
	require.NotNil(t, second.OutputTokens)
	assert.Equal(t, 340, *second.OutputTokens)
	assert.Empty(t, second.FallbackTo)
}

func TestCallLogService_RecordValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCallLogService(client.Client)
	ctx := context.Background()

	err := svc.Record(ctx, models.CallAttempt{ModelAlias: "gpt-5", Tier: models.TierStandard, Status: models.CallStatusSuccess})
	assert.True(t, services.IsValidationError(err))

	err = svc.Record(ctx, models.CallAttempt{RequestID: "req-1", Tier: models.TierStandard, Status: models.CallStatusSuccess})
	assert.True(t, services.IsValidationError(err))
}

func TestCallLogService_AttemptsValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCallLogService(client.Client)

	_, err := svc.Attempts(context.Background(), "")
	assert.True(t, services.IsValidationError(err))
}

func TestCallLogService_AttemptsEmpty(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCallLogService(client.Client)

	attempts, err := svc.Attempts(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, attempts)
}

func TestCallLogService_StatsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCallLogService(client.Client)
	ctx := context.Background()

	record := func(tier models.Tier, status models.CallStatus) {
		require.NoError(t, svc.Record(ctx, models.CallAttempt{
			RequestID:  "req-1",
			ModelAlias: "m",
			Tier:       tier,
			Status:     status,
		}))
	}
	record(models.TierStandard, models.CallStatusSuccess)
	record(models.TierStandard, models.CallStatusSuccess)
	record(models.TierStandard, models.CallStatusFallback)
	record(models.TierStandard, models.CallStatusFailed)
	record(models.TierLight, models.CallStatusSuccess)

	stats, err := svc.StatsSince(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byTier := make(map[models.Tier]services.TierStats, len(stats))
	for _, st := range stats {
		byTier[st.Tier] = st
	}
	assert.Equal(t, 2, byTier[models.TierStandard].Successes)
	assert.Equal(t, 1, byTier[models.TierStandard].Fallbacks)
	assert.Equal(t, 1, byTier[models.TierStandard].Failures)
	assert.Equal(t, 1, byTier[models.TierLight].Successes)

	stats, err = svc.StatsSince(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Empty(t, stats, "a future cutoff sees nothing")
}
