package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/services"
	testdb "github.com/clipdock/clipd/test/database"
)

func planMonth() time.Time {
	return time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
}

func TestUsageService_StatusCreatesRecordOnFirstTouch(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewUsageService(client.Client)
	ctx := context.Background()

	status, err := svc.Status(ctx, "user-1", planMonth(), 1000)
	require.NoError(t, err)

	assert.Equal(t, "user-1", status.UserID)
	assert.Equal(t, 1000, status.AllocatedQuota)
	assert.Equal(t, 0, status.UsedWTU)
	assert.Equal(t, 1000, status.RemainingWTU)
	assert.Equal(t, 0, status.TotalPurchased)

	// A second touch with a different default must not reset the row.
	status, err = svc.Status(ctx, "user-1", planMonth(), 5000)
	require.NoError(t, err)
	assert.Equal(t, 1000, status.AllocatedQuota)
}

func TestUsageService_StatusValidatesUserID(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewUsageService(client.Client)

	_, err := svc.Status(context.Background(), "", planMonth(), 1000)
	assert.True(t, services.IsValidationError(err))
}

func TestUsageService_TryConsume(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewUsageService(client.Client)
	ctx := context.Background()

	status, err := svc.TryConsume(ctx, "user-1", planMonth(), 30, 100)
	require.NoError(t, err)
	assert.Equal(t, 30, status.UsedWTU)
	assert.Equal(t, 70, status.RemainingWTU)

	status, err = svc.TryConsume(ctx, "user-1", planMonth(), 70, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, status.RemainingWTU)
}

func TestUsageService_TryConsumeShortfall(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewUsageService(client.Client)
	ctx := context.Background()

	status, err := svc.TryConsume(ctx, "user-1", planMonth(), 150, 100)
	require.ErrorIs(t, err, services.ErrInsufficientQuota)
	assert.Contains(t, err.Error(), "need 150, have 100")

	// The current snapshot comes back alongside the error, untouched.
	require.NotNil(t, status)
	assert.Equal(t, 100, status.RemainingWTU)
	assert.Equal(t, 0, status.UsedWTU)

	// And the stored row really was left alone.
	status, err = svc.Status(ctx, "user-1", planMonth(), 100)
	require.NoError(t, err)
	assert.Equal(t, 100, status.RemainingWTU)
}

func TestUsageService_TryConsumeValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewUsageService(client.Client)
	ctx := context.Background()

	_, err := svc.TryConsume(ctx, "", planMonth(), 10, 100)
	assert.True(t, services.IsValidationError(err))

	_, err = svc.TryConsume(ctx, "user-1", planMonth(), 0, 100)
	assert.True(t, services.IsValidationError(err))

	_, err = svc.TryConsume(ctx, "user-1", planMonth(), -5, 100)
	assert.True(t, services.IsValidationError(err))
}

func TestUsageService_ConcurrentConsumesNeverOverspend(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewUsageService(client.Client)
	ctx := context.Background()

	// 20 workers each try to take 10 from a quota of 100. Exactly 10 can win.
	var wg sync.WaitGroup
	results := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.TryConsume(ctx, "user-1", planMonth(), 10, 100)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		switch {
		case err == nil:
			wins++
		default:
			require.ErrorIs(t, err, services.ErrInsufficientQuota)
			losses++
		}
	}
	assert.Equal(t, 10, wins)
	assert.Equal(t, 10, losses)

	status, err := svc.Status(ctx, "user-1", planMonth(), 100)
	require.NoError(t, err)
	assert.Equal(t, 0, status.RemainingWTU)
	assert.Equal(t, 100, status.UsedWTU)
}

func TestUsageService_MonthsAreIndependent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewUsageService(client.Client)
	ctx := context.Background()

	august := planMonth()
	september := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.TryConsume(ctx, "user-1", august, 90, 100)
	require.NoError(t, err)

	status, err := svc.Status(ctx, "user-1", september, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, status.RemainingWTU, "a new month starts with a fresh allocation")
}

func TestUsageService_AddQuota(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewUsageService(client.Client)
	ctx := context.Background()

	txn := "txn-123"
	status, err := svc.AddQuota(ctx, "user-1", planMonth(), 500, models.PurchaseTypePurchase, &txn, 1000)
	require.NoError(t, err)

	assert.Equal(t, 1500, status.AllocatedQuota)
	assert.Equal(t, 1500, status.RemainingWTU)
	assert.Equal(t, 500, status.TotalPurchased)

	events, err := svc.PurchaseHistory(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 500, events[0].TokenAmount)
	assert.Equal(t, models.PurchaseTypePurchase, events[0].PurchaseType)
	assert.Equal(t, models.PurchaseStatusCompleted, events[0].Status)
	require.NotNil(t, events[0].TransactionID)
	assert.Equal(t, "txn-123", *events[0].TransactionID)
}

func TestUsageService_AddQuotaRestoresSpentBalance(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewUsageService(client.Client)
	ctx := context.Background()

	_, err := svc.TryConsume(ctx, "user-1", planMonth(), 100, 100)
	require.NoError(t, err)

	status, err := svc.AddQuota(ctx, "user-1", planMonth(), 50, models.PurchaseTypeBonus, nil, 100)
	require.NoError(t, err)
	assert.Equal(t, 50, status.RemainingWTU)
	assert.Equal(t, 100, status.UsedWTU, "used counter is untouched by a grant")

	_, err = svc.TryConsume(ctx, "user-1", planMonth(), 50, 100)
	assert.NoError(t, err, "granted tokens are spendable")
}

func TestUsageService_PurchaseHistoryOrderAndLimit(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewUsageService(client.Client)
	ctx := context.Background()

	for _, amount := range []int{100, 200, 300} {
		_, err := svc.AddQuota(ctx, "user-1", planMonth(), amount, models.PurchaseTypePurchase, nil, 1000)
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}
	_, err := svc.AddQuota(ctx, "other-user", planMonth(), 999, models.PurchaseTypePurchase, nil, 1000)
	require.NoError(t, err)

	events, err := svc.PurchaseHistory(ctx, "user-1", 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 300, events[0].TokenAmount, "newest first")
	assert.Equal(t, 200, events[1].TokenAmount)
}
