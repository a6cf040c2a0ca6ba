package llm

import (
	"context"
	"errors"
	"fmt"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/clipdock/clipd/pkg/models"
)

// defaultAnthropicMaxTokens caps completions when the request leaves
// MaxTokens unset; the Messages API requires an explicit value.
const defaultAnthropicMaxTokens = 4096

// AnthropicProvider adapts the Anthropic Claude Messages API.
type AnthropicProvider struct {
	client sdk.Client
}

// NewAnthropicProvider builds an adapter from an API key.
func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	return &AnthropicProvider{client: sdk.NewClient(option.WithAPIKey(apiKey))}
}

// Complete issues a non-streaming Messages.New request.
func (p *AnthropicProvider) Complete(ctx context.Context, entry models.ModelEntry, req CompletionRequest) (*models.LLMResult, error) {
	params, err := buildAnthropicParams(entry, req)
	if err != nil {
		return nil, p.wrap(entry, err)
	}
	msg, err := p.client.Messages.New(ctx, *params)
	if err != nil {
		return nil, p.wrap(entry, err)
	}

	content := ""
	for _, block := range msg.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}
	return &models.LLMResult{
		Content:      content,
		ModelAlias:   entry.Alias,
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
		FinishReason: string(msg.StopReason),
	}, nil
}

// Stream opens a Messages streaming call and relays text deltas. Usage is
// taken from the message_delta event near the end of the stream.
func (p *AnthropicProvider) Stream(ctx context.Context, entry models.ModelEntry, req CompletionRequest) (<-chan StreamChunk, error) {
	params, err := buildAnthropicParams(entry, req)
	if err != nil {
		return nil, p.wrap(entry, err)
	}
	stream := p.client.Messages.NewStreaming(ctx, *params)
	if err := stream.Err(); err != nil {
		return nil, p.wrap(entry, err)
	}

	out := make(chan StreamChunk, 32)
	go func() {
		defer close(out)
		defer func() { _ = stream.Close() }()

		result := &models.LLMResult{ModelAlias: entry.Alias}
		for stream.Next() {
			event := stream.Current()
			switch ev := event.AsAny().(type) {
			case sdk.MessageStartEvent:
				result.InputTokens = int(ev.Message.Usage.InputTokens)
			case sdk.ContentBlockDeltaEvent:
				delta, ok := ev.Delta.AsAny().(sdk.TextDelta)
				if !ok || delta.Text == "" {
					continue
				}
				result.Content += delta.Text
				select {
				case out <- StreamChunk{Delta: delta.Text}:
				case <-ctx.Done():
					out <- StreamChunk{Err: ctx.Err()}
					return
				}
			case sdk.MessageDeltaEvent:
				result.OutputTokens = int(ev.Usage.OutputTokens)
				if ev.Delta.StopReason != "" {
					result.FinishReason = string(ev.Delta.StopReason)
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

// Embed is unsupported; Anthropic has no embeddings endpoint. Embedding-tier
// models must belong to another provider.
func (p *AnthropicProvider) Embed(_ context.Context, entry models.ModelEntry, _ []string) ([][]float64, error) {
	return nil, p.wrap(entry, ErrEmbeddingsUnsupported)
}

func buildAnthropicParams(entry models.ModelEntry, req CompletionRequest) (*sdk.MessageNewParams, error) {
	if len(req.Messages) == 0 {
		return nil, errors.New("messages are required")
	}
	conversation := make([]sdk.MessageParam, 0, len(req.Messages))
	system := make([]sdk.TextBlockParam, 0, 1)
	for _, m := range req.Messages {
		switch m.Role {
		case models.RoleSystem:
			if m.Content != "" {
				system = append(system, sdk.TextBlockParam{Text: m.Content})
			}
		case models.RoleUser:
			conversation = append(conversation, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		case models.RoleAssistant:
			conversation = append(conversation, sdk.NewAssistantMessage(sdk.NewTextBlock(m.Content)))
		default:
			return nil, fmt.Errorf("unsupported message role %q", m.Role)
		}
	}
	if len(conversation) == 0 {
		return nil, errors.New("at least one user/assistant message is required")
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}
	params := &sdk.MessageNewParams{
		Model:     sdk.Model(entry.ModelName),
		MaxTokens: int64(maxTokens),
		Messages:  conversation,
	}
	if len(system) > 0 {
		params.System = system
	}
	if req.Temperature != nil {
		params.Temperature = sdk.Float(*req.Temperature)
	}
	return params, nil
}

func (p *AnthropicProvider) wrap(entry models.ModelEntry, err error) error {
	pe := &ProviderError{Provider: models.ProviderAnthropic, Model: entry.ModelName, Err: err}
	var apierr *sdk.Error
	if errors.As(err, &apierr) {
		pe.StatusCode = apierr.StatusCode
	}
	return pe
}
