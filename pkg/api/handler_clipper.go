package api

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/services"
	"github.com/clipdock/clipd/pkg/summarize"
)

// maxUploadBytes caps multipart PDF uploads.
const maxUploadBytes = 25 << 20

// summarizeHandler handles POST /api/v1/clipper/summarize.
func (s *Server) summarizeHandler(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job := summarize.Request{
		UserID:     req.UserID,
		Type:       models.CacheType(req.ContentType),
		URL:        req.URL,
		Transcript: req.Transcript,
		Refresh:    req.Refresh,
	}
	if req.PDFData != "" {
		data, err := base64.StdEncoding.DecodeString(req.PDFData)
		if err != nil {
			respondError(c, services.NewValidationError("pdf_data", "invalid base64"))
			return
		}
		job.PDFData = data
	}

	result, err := s.deps.Summarizer.Summarize(c.Request.Context(), job)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// uploadHandler handles POST /api/v1/clipper/upload: multipart PDF
// summarization. Form fields: user_id, file, optional refresh.
func (s *Server) uploadHandler(c *gin.Context) {
	userID := c.PostForm("user_id")
	if userID == "" {
		respondError(c, services.NewValidationError("user_id", "is required"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, services.NewValidationError("file", "is required"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respondError(c, services.NewValidationError("file", "exceeds maximum upload size"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer func() { _ = f.Close() }()
	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := s.deps.Summarizer.Summarize(c.Request.Context(), summarize.Request{
		UserID:  userID,
		Type:    models.CachePDF,
		PDFData: data,
		Refresh: c.PostForm("refresh") == "true",
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// confirmTagsHandler handles POST /api/v1/clipper/tags/confirm. The tags the
// user kept feed future personalization.
func (s *Server) confirmTagsHandler(c *gin.Context) {
	var req ConfirmTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.deps.Summarizer.ConfirmTags(c.Request.Context(), req.UserID, req.Tags); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"confirmed": len(req.Tags)})
}
