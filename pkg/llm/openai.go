package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/clipdock/clipd/pkg/models"
)

// OpenAIProvider adapts the OpenAI Chat Completions and Embeddings APIs.
// It also serves Google (Gemini OpenAI-compat endpoint) and Perplexity by
// pointing the client at their base URLs; the provider label is kept for
// error reporting and call logs.
type OpenAIProvider struct {
	client   openai.Client
	provider models.Provider
}

// NewOpenAIProvider builds an adapter for one OpenAI-compatible endpoint.
// An empty baseURL uses the SDK default (api.openai.com).
func NewOpenAIProvider(provider models.Provider, apiKey, baseURL string) *OpenAIProvider {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIProvider{
		client:   openai.NewClient(opts...),
		provider: provider,
	}
}

// Complete issues a non-streaming chat completion.
func (p *OpenAIProvider) Complete(ctx context.Context, entry models.ModelEntry, req CompletionRequest) (*models.LLMResult, error) {
	params, err := p.buildParams(entry, req)
	if err != nil {
		return nil, p.wrap(entry, err)
	}
	resp, err := p.client.Chat.Completions.New(ctx, *params)
	if err != nil {
		return nil, p.wrap(entry, err)
	}
	if len(resp.Choices) == 0 {
		return nil, p.wrap(entry, errors.New("response contains no choices"))
	}
	choice := resp.Choices[0]
	return &models.LLMResult{
		Content:      choice.Message.Content,
		ModelAlias:   entry.Alias,
		InputTokens:  int(resp.Usage.PromptTokens),
		OutputTokens: int(resp.Usage.CompletionTokens),
		FinishReason: string(choice.FinishReason),
	}, nil
}

// Stream opens a streaming chat completion and relays text deltas. Usage
// arrives on the final chunk via include_usage.
func (p *OpenAIProvider) Stream(ctx context.Context, entry models.ModelEntry, req CompletionRequest) (<-chan StreamChunk, error) {
	params, err := p.buildParams(entry, req)
	if err != nil {
		return nil, p.wrap(entry, err)
	}
	params.StreamOptions = openai.ChatCompletionStreamOptionsParam{
		IncludeUsage: openai.Bool(true),
	}

	stream := p.client.Chat.Completions.NewStreaming(ctx, *params)
	if err := stream.Err(); err != nil {
		return nil, p.wrap(entry, err)
	}

	out := make(chan StreamChunk, 32)
	go func() {
		defer close(out)
		defer func() { _ = stream.Close() }()

		result := &models.LLMResult{ModelAlias: entry.Alias}
		for stream.Next() {
			chunk := stream.Current()
			if chunk.Usage.TotalTokens > 0 {
				result.InputTokens = int(chunk.Usage.PromptTokens)
				result.OutputTokens = int(chunk.Usage.CompletionTokens)
			}
			if len(chunk.Choices) == 0 {
				continue
			}
			choice := chunk.Choices[0]
			if choice.FinishReason != "" {
				result.FinishReason = string(choice.FinishReason)
			}
			if delta := choice.Delta.Content; delta != "" {
				result.Content += delta
				select {
				case out <- StreamChunk{Delta: delta}:
				case <-ctx.Done():
					out <- StreamChunk{Err: ctx.Err()}
					return
				}
			}
		}
		if err := stream.Err(); err != nil {
			out <- StreamChunk{Err: p.wrap(entry, err)}
			return
		}
		out <- StreamChunk{Done: true, Result: result}
	}()
	return out, nil
}

// Embed requests embeddings for the given texts in one batch.
func (p *OpenAIProvider) Embed(ctx context.Context, entry models.ModelEntry, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	resp, err := p.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(entry.ModelName),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
	})
	if err != nil {
		return nil, p.wrap(entry, err)
	}
	if len(resp.Data) != len(texts) {
		return nil, p.wrap(entry, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data)))
	}
	vectors := make([][]float64, len(texts))
	for _, d := range resp.Data {
		i := int(d.Index)
		if i < 0 || i >= len(vectors) {
			return nil, p.wrap(entry, fmt.Errorf("embedding index %d out of range", i))
		}
		vectors[i] = d.Embedding
	}
	return vectors, nil
}

func (p *OpenAIProvider) buildParams(entry models.ModelEntry, req CompletionRequest) (*openai.ChatCompletionNewParams, error) {
	if len(req.Messages) == 0 {
		return nil, errors.New("messages are required")
	}
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case models.RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case models.RoleUser:
			messages = append(messages, openai.UserMessage(m.Content))
		case models.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			return nil, fmt.Errorf("unsupported message role %q", m.Role)
		}
	}
	params := &openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(entry.ModelName),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	return params, nil
}

func (p *OpenAIProvider) wrap(entry models.ModelEntry, err error) error {
	pe := &ProviderError{Provider: p.provider, Model: entry.ModelName, Err: err}
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		pe.StatusCode = apierr.StatusCode
	}
	return pe
}
