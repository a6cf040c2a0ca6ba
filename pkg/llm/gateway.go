package llm

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/clipdock/clipd/pkg/config"
	"github.com/clipdock/clipd/pkg/models"
)

const tracerName = "github.com/clipdock/clipd/pkg/llm"

// Gateway dispatches provider-neutral requests to the adapter matching each
// catalog entry's provider. Completions and embeddings run under the
// per-call timeout; streams inherit the caller's context as-is.
type Gateway struct {
	providers map[models.Provider]Provider
	timeout   time.Duration
	tracer    trace.Tracer
}

// NewGateway builds a Gateway with adapters for every provider that has
// credentials.
func NewGateway(creds *config.ProviderCredentials, timeout time.Duration) *Gateway {
	providers := make(map[models.Provider]Provider, 4)
	if creds.OpenAIAPIKey != "" {
		providers[models.ProviderOpenAI] = NewOpenAIProvider(models.ProviderOpenAI, creds.OpenAIAPIKey, creds.OpenAIBaseURL)
	}
	if creds.AnthropicAPIKey != "" {
		providers[models.ProviderAnthropic] = NewAnthropicProvider(creds.AnthropicAPIKey)
	}
	if creds.GoogleAPIKey != "" {
		providers[models.ProviderGoogle] = NewOpenAIProvider(models.ProviderGoogle, creds.GoogleAPIKey, creds.GoogleBaseURL)
	}
	if creds.PerplexityAPIKey != "" {
		providers[models.ProviderPerplexity] = NewOpenAIProvider(models.ProviderPerplexity, creds.PerplexityAPIKey, creds.PerplexityBaseURL)
	}
	return &Gateway{
		providers: providers,
		timeout:   timeout,
		tracer:    otel.Tracer(tracerName),
	}
}

// NewGatewayWithProviders builds a Gateway from explicit adapters. Used by
// tests to inject fakes.
func NewGatewayWithProviders(providers map[models.Provider]Provider, timeout time.Duration) *Gateway {
	return &Gateway{
		providers: providers,
		timeout:   timeout,
		tracer:    otel.Tracer(tracerName),
	}
}

// Complete routes a completion to the entry's provider adapter.
func (g *Gateway) Complete(ctx context.Context, entry models.ModelEntry, req CompletionRequest) (*models.LLMResult, error) {
	provider, err := g.provider(entry)
	if err != nil {
		return nil, err
	}
	ctx, span := g.startSpan(ctx, "llm.complete", entry)
	defer span.End()
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	result, err := provider.Complete(ctx, entry, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("llm.input_tokens", result.InputTokens),
		attribute.Int("llm.output_tokens", result.OutputTokens),
	)
	return result, nil
}

// Stream routes a streaming completion to the entry's provider adapter.
// The span ends when the stream terminates.
func (g *Gateway) Stream(ctx context.Context, entry models.ModelEntry, req CompletionRequest) (<-chan StreamChunk, error) {
	provider, err := g.provider(entry)
	if err != nil {
		return nil, err
	}
	ctx, span := g.startSpan(ctx, "llm.stream", entry)

	upstream, err := provider.Stream(ctx, entry, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return nil, err
	}

	out := make(chan StreamChunk, 32)
	go func() {
		defer close(out)
		defer span.End()
		for chunk := range upstream {
			if chunk.Err != nil {
				span.RecordError(chunk.Err)
				span.SetStatus(codes.Error, chunk.Err.Error())
			}
			out <- chunk
		}
	}()
	return out, nil
}

// Embed routes an embedding request to the entry's provider adapter.
func (g *Gateway) Embed(ctx context.Context, entry models.ModelEntry, texts []string) ([][]float64, error) {
	provider, err := g.provider(entry)
	if err != nil {
		return nil, err
	}
	ctx, span := g.startSpan(ctx, "llm.embed", entry)
	defer span.End()
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	vectors, err := provider.Embed(ctx, entry, texts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return vectors, nil
}

func (g *Gateway) provider(entry models.ModelEntry) (Provider, error) {
	provider, ok := g.providers[entry.Provider]
	if !ok {
		return nil, &ProviderError{
			Provider: entry.Provider,
			Model:    entry.ModelName,
			Err:      fmt.Errorf("no credentials configured for provider %q", entry.Provider),
		}
	}
	return provider, nil
}

func (g *Gateway) startSpan(ctx context.Context, name string, entry models.ModelEntry) (context.Context, trace.Span) {
	return g.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("llm.provider", string(entry.Provider)),
		attribute.String("llm.model", entry.ModelName),
		attribute.String("llm.tier", string(entry.Tier)),
	))
}
