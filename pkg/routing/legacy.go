package routing

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/services"
	"github.com/clipdock/clipd/pkg/summarize"
)

// Pinger reports whether the legacy path's backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PipelineLegacy adapts the summarize pipeline to the router's single-shot
// legacy path. Request data uses the clipper request shape: content_type,
// url, transcript, pdf_data (base64 or raw bytes), refresh.
type PipelineLegacy struct {
	pipeline *summarize.Pipeline
	pinger   Pinger
}

// NewPipelineLegacy creates the adapter.
func NewPipelineLegacy(pipeline *summarize.Pipeline, pinger Pinger) *PipelineLegacy {
	return &PipelineLegacy{pipeline: pipeline, pinger: pinger}
}

// Process runs one summarization through the pipeline.
func (l *PipelineLegacy) Process(ctx context.Context, req models.RouteRequest) (map[string]any, int, error) {
	job, err := l.buildRequest(req)
	if err != nil {
		return nil, 0, err
	}
	result, err := l.pipeline.Summarize(ctx, job)
	if err != nil {
		return nil, 0, err
	}
	out := map[string]any{
		"summary":      result.Summary,
		"tags":         result.Tags,
		"category":     result.Category,
		"content_hash": result.ContentHash,
		"cached":       result.Cached,
	}
	wtu := result.WTUCost
	if result.Cached {
		wtu = 0
	}
	return out, wtu, nil
}

// Ping probes the backing store so the router can report legacy health.
func (l *PipelineLegacy) Ping(ctx context.Context) error {
	if l.pinger == nil {
		return nil
	}
	return l.pinger.Ping(ctx)
}

func (l *PipelineLegacy) buildRequest(req models.RouteRequest) (summarize.Request, error) {
	data := req.RequestData
	job := summarize.Request{
		UserID:     req.UserID,
		Type:       models.CacheType(stringField(data, "content_type")),
		URL:        stringField(data, "url"),
		Transcript: stringField(data, "transcript"),
	}
	if job.Type == "" {
		job.Type = models.CacheWebpage
	}
	if refresh, ok := data["refresh"].(bool); ok {
		job.Refresh = refresh
	}
	switch raw := data["pdf_data"].(type) {
	case nil:
	case []byte:
		job.PDFData = raw
	case string:
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return summarize.Request{}, services.NewValidationError("pdf_data", fmt.Sprintf("invalid base64: %v", err))
		}
		job.PDFData = decoded
	default:
		return summarize.Request{}, services.NewValidationError("pdf_data", "must be a base64 string")
	}
	return job, nil
}

func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}
