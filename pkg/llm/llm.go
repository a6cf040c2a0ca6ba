// Package llm provides the provider gateway and the tier-based caller with
// automatic fallback. Callers address capability tiers; the concrete model,
// provider dispatch, retry-on-next-model and attempt logging live here.
package llm

import (
	"context"

	"github.com/clipdock/clipd/pkg/models"
)

// CompletionRequest is a provider-neutral chat completion request.
type CompletionRequest struct {
	Messages    []models.ChatMessage
	MaxTokens   int
	Temperature *float64
}

// StreamChunk is one element of a completion stream. Exactly one terminal
// chunk is sent: either Err is set or Done is true with the final Result.
type StreamChunk struct {
	Delta  string
	Done   bool
	Result *models.LLMResult
	Err    error
}

// Provider adapts one upstream SDK to the provider-neutral request shape.
type Provider interface {
	Complete(ctx context.Context, entry models.ModelEntry, req CompletionRequest) (*models.LLMResult, error)

	// Stream opens a streaming completion. An error return means nothing
	// was sent upstream yet; after the first Delta chunk the call is
	// committed and terminal errors arrive in-band.
	Stream(ctx context.Context, entry models.ModelEntry, req CompletionRequest) (<-chan StreamChunk, error)

	Embed(ctx context.Context, entry models.ModelEntry, texts []string) ([][]float64, error)
}

// Temp is a convenience for CompletionRequest.Temperature literals.
func Temp(t float64) *float64 {
	return &t
}
