package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clipdock/clipd/pkg/agentctx"
	"github.com/clipdock/clipd/pkg/billing"
	"github.com/clipdock/clipd/pkg/catalog"
	"github.com/clipdock/clipd/pkg/extract"
	"github.com/clipdock/clipd/pkg/llm"
	"github.com/clipdock/clipd/pkg/services"
)

// respondError maps service-layer errors to HTTP error responses.
func respondError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	if quotaErr, ok := billing.IsQuotaExceeded(err); ok {
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":         "quota exceeded",
			"needed_wtu":    quotaErr.Needed,
			"remaining_wtu": quotaErr.Remaining,
		})
		return
	}
	if errors.Is(err, extract.ErrExtractionFailed) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	var allFailed *llm.AllProvidersFailedError
	if errors.As(err, &allFailed) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": allFailed.Error()})
		return
	}
	var noModels *catalog.NoModelsForTierError
	if errors.As(err, &noModels) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": noModels.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, agentctx.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
