package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clipdock/clipd/pkg/models"
)

// ModelSource resolves tiers to concrete models in fallback order.
type ModelSource interface {
	ModelsForTier(ctx context.Context, tier models.Tier) ([]models.ModelEntry, error)
	Primary(ctx context.Context, tier models.Tier) (models.ModelEntry, error)
	ByAlias(ctx context.Context, alias string) (models.ModelEntry, error)
}

// Backend executes provider-neutral requests. Satisfied by *Gateway.
type Backend interface {
	Complete(ctx context.Context, entry models.ModelEntry, req CompletionRequest) (*models.LLMResult, error)
	Stream(ctx context.Context, entry models.ModelEntry, req CompletionRequest) (<-chan StreamChunk, error)
	Embed(ctx context.Context, entry models.ModelEntry, texts []string) ([][]float64, error)
}

// AttemptRecorder persists one call-log row per model attempt.
type AttemptRecorder interface {
	Record(ctx context.Context, attempt models.CallAttempt) error
}

// Caller is the tier-based entry point with automatic fallback: models of a
// tier are tried in catalog order until one succeeds. Every attempt is
// logged; a logging failure never affects the call.
type Caller struct {
	source  ModelSource
	backend Backend
	logs    AttemptRecorder
}

// NewCaller creates a tiered Caller.
func NewCaller(source ModelSource, backend Backend, logs AttemptRecorder) *Caller {
	return &Caller{source: source, backend: backend, logs: logs}
}

// Complete runs a completion against the tier, falling back through its
// models on failure. Returns the result and the entry that produced it.
func (c *Caller) Complete(ctx context.Context, tier models.Tier, req CompletionRequest) (*models.LLMResult, models.ModelEntry, error) {
	entries, err := c.source.ModelsForTier(ctx, tier)
	if err != nil {
		return nil, models.ModelEntry{}, err
	}

	requestID := uuid.New().String()
	attempts := make([]AttemptFailure, 0, len(entries))
	for i, entry := range entries {
		start := time.Now()
		result, err := c.backend.Complete(ctx, entry, req)
		latency := int(time.Since(start).Milliseconds())

		if err == nil {
			c.record(ctx, models.CallAttempt{
				RequestID:    requestID,
				ModelAlias:   entry.Alias,
				Tier:         tier,
				Status:       models.CallStatusSuccess,
				InputTokens:  &result.InputTokens,
				OutputTokens: &result.OutputTokens,
				LatencyMS:    latency,
			})
			return result, entry, nil
		}

		attempts = append(attempts, AttemptFailure{ModelAlias: entry.Alias, Err: err})
		c.recordFailure(ctx, requestID, tier, entry, entries, i, err, latency)

		// The caller went away; trying more models is pointless.
		if ctx.Err() != nil {
			return nil, models.ModelEntry{}, err
		}
		slog.Warn("Model attempt failed, falling back",
			"tier", tier, "model", entry.Alias, "error", err)
	}
	return nil, models.ModelEntry{}, &AllProvidersFailedError{Tier: tier, Attempts: attempts}
}

// Stream runs a streaming completion against the tier. Fallback applies only
// while nothing has been emitted: once the first delta reaches the consumer
// the attempt is committed, and a later failure terminates the stream with
// an error instead of restarting on another model. Partial outputs of
// different models are never stitched together.
func (c *Caller) Stream(ctx context.Context, tier models.Tier, req CompletionRequest) (<-chan StreamChunk, error) {
	entries, err := c.source.ModelsForTier(ctx, tier)
	if err != nil {
		return nil, err
	}

	requestID := uuid.New().String()
	out := make(chan StreamChunk, 32)
	go func() {
		defer close(out)

		attempts := make([]AttemptFailure, 0, len(entries))
		for i, entry := range entries {
			start := time.Now()
			upstream, err := c.backend.Stream(ctx, entry, req)
			if err != nil {
				latency := int(time.Since(start).Milliseconds())
				attempts = append(attempts, AttemptFailure{ModelAlias: entry.Alias, Err: err})
				c.recordFailure(ctx, requestID, tier, entry, entries, i, err, latency)
				if ctx.Err() != nil {
					out <- StreamChunk{Err: err}
					return
				}
				slog.Warn("Stream open failed, falling back",
					"tier", tier, "model", entry.Alias, "error", err)
				continue
			}

			committed, done, relayErr := c.relay(ctx, requestID, tier, entry, upstream, out, start)
			if done {
				return
			}
			if committed {
				// Failed mid-stream after emitting output; no fallback.
				return
			}
			latency := int(time.Since(start).Milliseconds())
			if relayErr == nil {
				relayErr = errors.New("stream closed before first chunk")
			}
			attempts = append(attempts, AttemptFailure{ModelAlias: entry.Alias, Err: relayErr})
			c.recordFailure(ctx, requestID, tier, entry, entries, i, relayErr, latency)
			if ctx.Err() != nil {
				out <- StreamChunk{Err: ctx.Err()}
				return
			}
			slog.Warn("Stream failed before first chunk, falling back",
				"tier", tier, "model", entry.Alias, "error", relayErr)
		}
		out <- StreamChunk{Err: &AllProvidersFailedError{Tier: tier, Attempts: attempts}}
	}()
	return out, nil
}

// relay forwards upstream chunks to out. Returns committed=true once a delta
// was forwarded, done=true when the stream finished (successfully or with an
// error that was already delivered downstream), and the upstream error when
// the stream failed before committing, so the fallback log and call record
// carry the provider's failure rather than a generic one.
func (c *Caller) relay(ctx context.Context, requestID string, tier models.Tier, entry models.ModelEntry, upstream <-chan StreamChunk, out chan<- StreamChunk, start time.Time) (committed, done bool, failErr error) {
	for chunk := range upstream {
		switch {
		case chunk.Err != nil:
			if !committed {
				// Nothing reached the consumer; the caller may fall back.
				return false, false, chunk.Err
			}
			latency := int(time.Since(start).Milliseconds())
			c.record(ctx, models.CallAttempt{
				RequestID:    requestID,
				ModelAlias:   entry.Alias,
				Tier:         tier,
				Status:       models.CallStatusFailed,
				ErrorType:    errorType(chunk.Err),
				ErrorMessage: chunk.Err.Error(),
				LatencyMS:    latency,
			})
			out <- chunk
			return true, true, nil
		case chunk.Done:
			latency := int(time.Since(start).Milliseconds())
			attempt := models.CallAttempt{
				RequestID:  requestID,
				ModelAlias: entry.Alias,
				Tier:       tier,
				Status:     models.CallStatusSuccess,
				LatencyMS:  latency,
			}
			if chunk.Result != nil {
				attempt.InputTokens = &chunk.Result.InputTokens
				attempt.OutputTokens = &chunk.Result.OutputTokens
			}
			c.record(ctx, attempt)
			out <- chunk
			return true, true, nil
		default:
			committed = true
			select {
			case out <- chunk:
			case <-ctx.Done():
				return true, true, nil
			}
		}
	}
	// Upstream closed without a terminal chunk; treat as pre-commit failure.
	return committed, committed, nil
}

// Embed resolves the embedding tier's primary model and requests vectors.
// No fallback: mixing embedding spaces across models would corrupt stored
// vectors.
func (c *Caller) Embed(ctx context.Context, texts []string) ([][]float64, models.ModelEntry, error) {
	entry, err := c.source.Primary(ctx, models.TierEmbedding)
	if err != nil {
		return nil, models.ModelEntry{}, err
	}

	requestID := uuid.New().String()
	start := time.Now()
	vectors, err := c.backend.Embed(ctx, entry, texts)
	latency := int(time.Since(start).Milliseconds())
	if err != nil {
		c.record(ctx, models.CallAttempt{
			RequestID:    requestID,
			ModelAlias:   entry.Alias,
			Tier:         models.TierEmbedding,
			Status:       models.CallStatusFailed,
			ErrorType:    errorType(err),
			ErrorMessage: err.Error(),
			LatencyMS:    latency,
		})
		return nil, models.ModelEntry{}, err
	}
	c.record(ctx, models.CallAttempt{
		RequestID:  requestID,
		ModelAlias: entry.Alias,
		Tier:       models.TierEmbedding,
		Status:     models.CallStatusSuccess,
		LatencyMS:  latency,
	})
	return vectors, entry, nil
}

// ByAlias exposes catalog lookup for consumers that need multipliers of the
// model a stream reported.
func (c *Caller) ByAlias(ctx context.Context, alias string) (models.ModelEntry, error) {
	return c.source.ByAlias(ctx, alias)
}

func (c *Caller) recordFailure(ctx context.Context, requestID string, tier models.Tier, entry models.ModelEntry, entries []models.ModelEntry, i int, err error, latency int) {
	status := models.CallStatusFailed
	fallbackTo := ""
	if i+1 < len(entries) && ctx.Err() == nil {
		status = models.CallStatusFallback
		fallbackTo = entries[i+1].Alias
	}
	c.record(ctx, models.CallAttempt{
		RequestID:    requestID,
		ModelAlias:   entry.Alias,
		Tier:         tier,
		Status:       status,
		ErrorType:    errorType(err),
		ErrorMessage: err.Error(),
		FallbackTo:   fallbackTo,
		LatencyMS:    latency,
	})
}

func (c *Caller) record(ctx context.Context, attempt models.CallAttempt) {
	if c.logs == nil {
		return
	}
	// Detached from the request context so cancellation doesn't lose rows.
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := c.logs.Record(logCtx, attempt); err != nil {
		slog.Warn("Failed to record model call", "model", attempt.ModelAlias, "error", err)
	}
}

func errorType(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Type()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	return "unknown"
}
