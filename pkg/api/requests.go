package api

import "github.com/clipdock/clipd/pkg/models"

// SummarizeRequest is the body of POST /api/v1/clipper/summarize.
// PDFData carries base64-encoded document bytes; small documents only,
// larger ones go through the multipart upload endpoint.
type SummarizeRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	URL         string `json:"url,omitempty"`
	Transcript  string `json:"transcript,omitempty"`
	PDFData     string `json:"pdf_data,omitempty"`
	Refresh     bool   `json:"refresh,omitempty"`
}

// ConfirmTagsRequest is the body of POST /api/v1/clipper/tags/confirm.
type ConfirmTagsRequest struct {
	UserID string   `json:"user_id" binding:"required"`
	Tags   []string `json:"tags" binding:"required"`
}

// PurchaseRequest is the body of POST /api/v1/usage/:user_id/purchase.
type PurchaseRequest struct {
	Amount        int    `json:"amount" binding:"required"`
	PurchaseType  string `json:"purchase_type,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// ExecutePlanRequest is the body of POST /api/v1/plans/execute.
type ExecutePlanRequest struct {
	UserID     string                      `json:"user_id" binding:"required"`
	BoardID    string                      `json:"board_id,omitempty"`
	Complexity int                         `json:"complexity,omitempty"`
	Prefs      models.UserModelPreferences `json:"preferences,omitempty"`
	Plan       models.ExecutionPlan        `json:"plan" binding:"required"`
}
