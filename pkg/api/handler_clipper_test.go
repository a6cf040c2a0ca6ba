package api

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/billing"
	"github.com/clipdock/clipd/pkg/extract"
	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/services"
)

func TestSummarize_Webpage(t *testing.T) {
	server, deps := newTestServer(t)
	deps.summarizer.result = &models.SummarizeResult{
		Summary: "short",
		Tags:    []string{"go", "testing"},
	}

	rec := doJSON(t, server, http.MethodPost, "/api/v1/clipper/summarize", SummarizeRequest{
		UserID:      "u1",
		ContentType: "webpage",
		URL:         "https://example.com/post",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", deps.summarizer.lastRequest.UserID)
	assert.Equal(t, models.CacheWebpage, deps.summarizer.lastRequest.Type)
	assert.Equal(t, "https://example.com/post", deps.summarizer.lastRequest.URL)

	body := decodeBody(t, rec)
	assert.Equal(t, "short", body["summary"])
}

func TestSummarize_PDFDecodesBase64(t *testing.T) {
	server, deps := newTestServer(t)

	raw := []byte("%PDF-1.4 fake")
	rec := doJSON(t, server, http.MethodPost, "/api/v1/clipper/summarize", SummarizeRequest{
		UserID:      "u1",
		ContentType: "pdf",
		PDFData:     base64.StdEncoding.EncodeToString(raw),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, raw, deps.summarizer.lastRequest.PDFData)
}

func TestSummarize_InvalidBase64(t *testing.T) {
	server, _ := newTestServer(t)
	rec := doJSON(t, server, http.MethodPost, "/api/v1/clipper/summarize", SummarizeRequest{
		UserID:      "u1",
		ContentType: "pdf",
		PDFData:     "not base64!!",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummarize_MissingUserID(t *testing.T) {
	server, _ := newTestServer(t)
	rec := doJSON(t, server, http.MethodPost, "/api/v1/clipper/summarize", map[string]any{
		"content_type": "webpage",
		"url":          "https://example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummarize_QuotaExceeded(t *testing.T) {
	server, deps := newTestServer(t)
	deps.summarizer.err = &billing.QuotaExceededError{Needed: 12, Remaining: 3}

	rec := doJSON(t, server, http.MethodPost, "/api/v1/clipper/summarize", SummarizeRequest{
		UserID:      "u1",
		ContentType: "webpage",
		URL:         "https://example.com",
	})

	require.Equal(t, http.StatusPaymentRequired, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(12), body["needed_wtu"])
	assert.Equal(t, float64(3), body["remaining_wtu"])
}

func TestSummarize_ExtractionFailure(t *testing.T) {
	server, deps := newTestServer(t)
	deps.summarizer.err = fmt.Errorf("fetch https://example.com: %w", extract.ErrExtractionFailed)

	rec := doJSON(t, server, http.MethodPost, "/api/v1/clipper/summarize", SummarizeRequest{
		UserID:      "u1",
		ContentType: "webpage",
		URL:         "https://example.com",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSummarize_ValidationErrorFromPipeline(t *testing.T) {
	server, deps := newTestServer(t)
	deps.summarizer.err = services.NewValidationError("url", "is required")

	rec := doJSON(t, server, http.MethodPost, "/api/v1/clipper/summarize", SummarizeRequest{
		UserID:      "u1",
		ContentType: "webpage",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConfirmTags(t *testing.T) {
	server, deps := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/v1/clipper/tags/confirm", ConfirmTagsRequest{
		UserID: "u1",
		Tags:   []string{"go", "databases"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", deps.summarizer.confirmedUser)
	assert.Equal(t, []string{"go", "databases"}, deps.summarizer.confirmedTags)
}

func TestConfirmTags_MissingTags(t *testing.T) {
	server, _ := newTestServer(t)
	rec := doJSON(t, server, http.MethodPost, "/api/v1/clipper/tags/confirm", map[string]any{
		"user_id": "u1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
