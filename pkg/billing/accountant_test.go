package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/services"
)

type fakeUsageStore struct {
	remaining  int
	consumed   int
	lastMonth  time.Time
	granted    int
	consumeErr error
}

func (f *fakeUsageStore) Status(_ context.Context, userID string, planMonth time.Time, defaultQuota int) (*models.UsageStatus, error) {
	f.lastMonth = planMonth
	return &models.UsageStatus{
		UserID:         userID,
		PlanMonth:      planMonth,
		AllocatedQuota: defaultQuota,
		RemainingWTU:   f.remaining,
	}, nil
}

func (f *fakeUsageStore) TryConsume(_ context.Context, userID string, planMonth time.Time, amount, defaultQuota int) (*models.UsageStatus, error) {
	f.lastMonth = planMonth
	if f.consumeErr != nil {
		return &models.UsageStatus{
			UserID:       userID,
			RemainingWTU: f.remaining,
		}, f.consumeErr
	}
	f.consumed += amount
	f.remaining -= amount
	return &models.UsageStatus{
		UserID:         userID,
		PlanMonth:      planMonth,
		AllocatedQuota: defaultQuota,
		UsedWTU:        f.consumed,
		RemainingWTU:   f.remaining,
	}, nil
}

func (f *fakeUsageStore) AddQuota(_ context.Context, userID string, planMonth time.Time, amount int, _ models.PurchaseType, _ *string, defaultQuota int) (*models.UsageStatus, error) {
	f.granted += amount
	f.remaining += amount
	return &models.UsageStatus{
		UserID:         userID,
		PlanMonth:      planMonth,
		AllocatedQuota: defaultQuota + f.granted,
		RemainingWTU:   f.remaining,
	}, nil
}

func (f *fakeUsageStore) PurchaseHistory(_ context.Context, _ string, _ int) ([]models.PurchaseEvent, error) {
	return nil, nil
}

func TestAccountant_ChargeComputesAndDeducts(t *testing.T) {
	store := &fakeUsageStore{remaining: 100}
	a := NewAccountant(store, nil, 1000)

	wtu, err := a.Charge(context.Background(), "u1", entryWithMultipliers(1.0, 2.0), 1000, 1000)
	require.NoError(t, err)
	assert.Equal(t, 3, wtu)
	assert.Equal(t, 3, store.consumed)
}

func TestAccountant_ChargeUsesCurrentPlanMonth(t *testing.T) {
	store := &fakeUsageStore{remaining: 100}
	a := NewAccountant(store, nil, 1000)
	a.now = func() time.Time { return time.Date(2026, time.August, 24, 10, 0, 0, 0, time.UTC) }

	_, err := a.ChargeWTU(context.Background(), "u1", 1)
	require.NoError(t, err)
	assert.True(t, store.lastMonth.Equal(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)))
}

func TestAccountant_QuotaRejectionCarriesShortfall(t *testing.T) {
	store := &fakeUsageStore{remaining: 2, consumeErr: services.ErrInsufficientQuota}
	a := NewAccountant(store, nil, 1000)

	_, err := a.ChargeWTU(context.Background(), "u1", 10)
	require.Error(t, err)

	quotaErr, ok := IsQuotaExceeded(err)
	require.True(t, ok)
	assert.Equal(t, 10, quotaErr.Needed)
	assert.Equal(t, 2, quotaErr.Remaining)
}

func TestAccountant_OtherStoreErrorsPassThrough(t *testing.T) {
	store := &fakeUsageStore{consumeErr: errors.New("connection refused")}
	a := NewAccountant(store, nil, 1000)

	_, err := a.ChargeWTU(context.Background(), "u1", 5)
	require.Error(t, err)
	_, ok := IsQuotaExceeded(err)
	assert.False(t, ok)
}

func TestAccountant_Affordable(t *testing.T) {
	store := &fakeUsageStore{remaining: 10}
	a := NewAccountant(store, nil, 1000)

	status, ok, err := a.Affordable(context.Background(), "u1", 10)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NotNil(t, status)
	assert.Equal(t, 10, status.RemainingWTU)

	status, ok, err = a.Affordable(context.Background(), "u1", 11)
	require.NoError(t, err)
	assert.False(t, ok, "refusal still carries the snapshot")
	assert.Equal(t, 10, status.RemainingWTU)
}

type stubCatalog struct {
	entries map[string]models.ModelEntry
}

func (s stubCatalog) ByAlias(_ context.Context, alias string) (models.ModelEntry, error) {
	entry, ok := s.entries[alias]
	if !ok {
		return models.ModelEntry{}, errors.New("unknown alias")
	}
	return entry, nil
}

func TestAccountant_ComputeWTUByAlias(t *testing.T) {
	catalog := stubCatalog{entries: map[string]models.ModelEntry{
		"gpt-5": entryWithMultipliers(1.0, 2.0),
	}}
	a := NewAccountant(&fakeUsageStore{}, catalog, 1000)

	assert.Equal(t, 3, a.ComputeWTU(context.Background(), 1000, 1000, "gpt-5"))
}

func TestAccountant_ComputeWTUUnknownAliasIsNeutral(t *testing.T) {
	a := NewAccountant(&fakeUsageStore{}, stubCatalog{}, 1000)

	assert.Equal(t, 2, a.ComputeWTU(context.Background(), 1000, 1000, "retired-model"),
		"unknown aliases price at 1.0 multipliers instead of failing")
}

func TestAccountant_Grant(t *testing.T) {
	store := &fakeUsageStore{remaining: 0}
	a := NewAccountant(store, nil, 1000)

	status, err := a.Grant(context.Background(), "u1", 500, models.PurchaseTypePurchase, nil)
	require.NoError(t, err)
	assert.Equal(t, 500, status.RemainingWTU)
	assert.Equal(t, 500, store.granted)
}
