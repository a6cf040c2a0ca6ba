package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/models"
)

func TestUsageStatus(t *testing.T) {
	server, deps := newTestServer(t)
	deps.accounts.status = &models.UsageStatus{
		UserID:         "u1",
		AllocatedQuota: 1000,
		UsedWTU:        250,
		RemainingWTU:   750,
	}

	rec := doJSON(t, server, http.MethodGet, "/api/v1/usage/u1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(750), body["remaining_tokens"])
}

func TestPurchase_DefaultsToPurchaseType(t *testing.T) {
	server, deps := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/v1/usage/u1/purchase", PurchaseRequest{
		Amount:        500,
		TransactionID: "txn-1",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 500, deps.accounts.grantedAmount)
	assert.Equal(t, models.PurchaseTypePurchase, deps.accounts.grantedType)
	require.NotNil(t, deps.accounts.grantedTxID)
	assert.Equal(t, "txn-1", *deps.accounts.grantedTxID)
}

func TestPurchase_BonusType(t *testing.T) {
	server, deps := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/v1/usage/u1/purchase", PurchaseRequest{
		Amount:       100,
		PurchaseType: "bonus",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.PurchaseTypeBonus, deps.accounts.grantedType)
	assert.Nil(t, deps.accounts.grantedTxID)
}

func TestPurchase_RejectsUnknownType(t *testing.T) {
	server, _ := newTestServer(t)
	rec := doJSON(t, server, http.MethodPost, "/api/v1/usage/u1/purchase", PurchaseRequest{
		Amount:       100,
		PurchaseType: "gift",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPurchase_RejectsNegativeAmount(t *testing.T) {
	server, _ := newTestServer(t)
	rec := doJSON(t, server, http.MethodPost, "/api/v1/usage/u1/purchase", PurchaseRequest{
		Amount: -5,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPurchaseHistory_DefaultLimit(t *testing.T) {
	server, deps := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/api/v1/usage/u1/purchases", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultPurchaseHistoryLimit, deps.accounts.limitPassed)
}

func TestPurchaseHistory_CustomLimit(t *testing.T) {
	server, deps := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/api/v1/usage/u1/purchases?limit=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, deps.accounts.limitPassed)
}

func TestPurchaseHistory_InvalidLimit(t *testing.T) {
	server, _ := newTestServer(t)
	rec := doJSON(t, server, http.MethodGet, "/api/v1/usage/u1/purchases?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
