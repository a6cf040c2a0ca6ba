package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/agentctx"
	"github.com/clipdock/clipd/pkg/llm"
	"github.com/clipdock/clipd/pkg/models"
)

type stubBackend struct {
	content  string
	requests []llm.CompletionRequest
}

func (s *stubBackend) Complete(_ context.Context, _ models.ModelEntry, req llm.CompletionRequest) (*models.LLMResult, error) {
	s.requests = append(s.requests, req)
	content := s.content
	if content == "" {
		content = "llm output"
	}
	return &models.LLMResult{Content: content, InputTokens: 40, OutputTokens: 20, FinishReason: "stop"}, nil
}

func TestRegisterBuiltins(t *testing.T) {
	registry := NewRegistry()
	RegisterBuiltins(registry, &stubBackend{}, "gpt")

	assert.Equal(t, []string{
		TypeContentAnalysis,
		TypeResearch,
		TypeSummaryGeneration,
		TypeValidator,
		TypeWriter,
	}, registry.Types())

	a, _ := registry.Get(TypeWriter)
	assert.Equal(t, "gpt", a.DefaultModelAlias())
	assert.NotEmpty(t, a.Capabilities())
}

func TestBuiltinAgents_ValidateInput(t *testing.T) {
	registry := NewRegistry()
	RegisterBuiltins(registry, &stubBackend{}, "gpt")

	tests := []struct {
		agentType string
		valid     map[string]any
	}{
		{TypeContentAnalysis, map[string]any{"content": "some text"}},
		{TypeSummaryGeneration, map[string]any{"analysis": "themes"}},
		{TypeValidator, map[string]any{"summary": "a summary"}},
		{TypeResearch, map[string]any{"query": "what is Go"}},
		{TypeWriter, map[string]any{"query": "write about Go"}},
	}
	for _, tt := range tests {
		t.Run(tt.agentType, func(t *testing.T) {
			a, ok := registry.Get(tt.agentType)
			require.True(t, ok)
			assert.NoError(t, a.ValidateInput(tt.valid))
			assert.Error(t, a.ValidateInput(map[string]any{}), "empty input must be rejected")
			assert.Error(t, a.ValidateInput(map[string]any{"content": "   "}), "blank input must be rejected")
		})
	}
}

func TestBuiltinAgents_AcceptChainedPreviousOutput(t *testing.T) {
	registry := NewRegistry()
	RegisterBuiltins(registry, &stubBackend{}, "gpt")

	a, _ := registry.Get(TypeSummaryGeneration)
	assert.NoError(t, a.ValidateInput(map[string]any{"previous_output": "earlier prose"}))
}

func TestBuiltinAgents_ShapeStructuredContent(t *testing.T) {
	backend := &stubBackend{content: "the analysis"}
	a := NewContentAnalysisAgent(backend, "gpt")

	result, err := a.ExecuteTask(context.Background(),
		map[string]any{"content": "source"}, models.ModelEntry{Alias: "gpt"}, agentctx.Context{})
	require.NoError(t, err)

	content, ok := result.Content.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "the analysis", content["analysis"])
	assert.Equal(t, 40, result.InputTokens)
	assert.Equal(t, "stop", result.Metadata["finish_reason"])
}

func TestResearchAgent_IncludesReferenceMaterials(t *testing.T) {
	backend := &stubBackend{}
	a := NewResearchAgent(backend, "gpt")

	sc := agentctx.Context{ReferenceMaterials: []string{"paper A", "paper B"}}
	_, err := a.ExecuteTask(context.Background(),
		map[string]any{"query": "topic"}, models.ModelEntry{Alias: "gpt"}, sc)
	require.NoError(t, err)

	require.Len(t, backend.requests, 1)
	prompt := backend.requests[0].Messages[1].Content
	assert.Contains(t, prompt, "paper A")
	assert.Contains(t, prompt, "paper B")
}

func TestWriterAgent_WeavesUpstreamSections(t *testing.T) {
	backend := &stubBackend{}
	a := NewWriterAgent(backend, "gpt")

	input := map[string]any{
		"query":    "write about Go",
		"research": "facts about Go",
		"analysis": "themes of Go",
	}
	_, err := a.ExecuteTask(context.Background(), input, models.ModelEntry{Alias: "gpt"}, agentctx.Context{})
	require.NoError(t, err)

	prompt := backend.requests[0].Messages[1].Content
	assert.Contains(t, prompt, "facts about Go")
	assert.Contains(t, prompt, "themes of Go")
}
