package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/services"
)

const defaultPurchaseHistoryLimit = 50

// usageStatusHandler handles GET /api/v1/usage/:user_id.
func (s *Server) usageStatusHandler(c *gin.Context) {
	status, err := s.deps.Accounts.Status(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// purchaseHandler handles POST /api/v1/usage/:user_id/purchase. Credits
// tokens to the current plan month and records the purchase event.
func (s *Server) purchaseHandler(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount <= 0 {
		respondError(c, services.NewValidationError("amount", "must be positive"))
		return
	}

	purchaseType := models.PurchaseType(req.PurchaseType)
	if purchaseType == "" {
		purchaseType = models.PurchaseTypePurchase
	}
	switch purchaseType {
	case models.PurchaseTypePurchase, models.PurchaseTypeBonus, models.PurchaseTypeRefund:
	default:
		respondError(c, services.NewValidationError("purchase_type", "must be purchase, bonus or refund"))
		return
	}

	var transactionID *string
	if req.TransactionID != "" {
		transactionID = &req.TransactionID
	}

	status, err := s.deps.Accounts.Grant(c.Request.Context(), c.Param("user_id"), req.Amount, purchaseType, transactionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// purchaseHistoryHandler handles GET /api/v1/usage/:user_id/purchases.
func (s *Server) purchaseHistoryHandler(c *gin.Context) {
	limit := defaultPurchaseHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(c, services.NewValidationError("limit", "must be a positive integer"))
			return
		}
		limit = parsed
	}

	events, err := s.deps.Accounts.History(c.Request.Context(), c.Param("user_id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"purchases": events})
}
