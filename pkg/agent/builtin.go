package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clipdock/clipd/pkg/agentctx"
	"github.com/clipdock/clipd/pkg/llm"
	"github.com/clipdock/clipd/pkg/models"
)

// Backend executes a completion against one concrete model. Satisfied by
// *llm.Gateway; agents receive their model from the base's selection, so
// tier fallback does not apply here.
type Backend interface {
	Complete(ctx context.Context, entry models.ModelEntry, req llm.CompletionRequest) (*models.LLMResult, error)
}

// llmAgent is the shared shape of the built-in single-call agents.
type llmAgent struct {
	agentType    string
	capabilities []string
	defaultAlias string
	system       string
	maxTokens    int
	temperature  float64
	backend      Backend

	// buildPrompt renders the user message from the input bag.
	buildPrompt func(input map[string]any, sc agentctx.Context) (string, error)

	// shape optionally post-processes the raw completion into structured
	// content. Nil keeps the plain string.
	shape func(content string) any
}

func (a *llmAgent) Type() string              { return a.agentType }
func (a *llmAgent) Capabilities() []string    { return a.capabilities }
func (a *llmAgent) DefaultModelAlias() string { return a.defaultAlias }

func (a *llmAgent) ValidateInput(input map[string]any) error {
	if _, err := a.buildPrompt(input, agentctx.Context{}); err != nil {
		return err
	}
	return nil
}

func (a *llmAgent) ExecuteTask(ctx context.Context, input map[string]any, entry models.ModelEntry, sc agentctx.Context) (*TaskResult, error) {
	prompt, err := a.buildPrompt(input, sc)
	if err != nil {
		return nil, err
	}
	result, err := a.backend.Complete(ctx, entry, llm.CompletionRequest{
		Messages: []models.ChatMessage{
			models.SystemMessage(a.system),
			models.UserMessage(prompt),
		},
		MaxTokens:   a.maxTokens,
		Temperature: llm.Temp(a.temperature),
	})
	if err != nil {
		return nil, err
	}

	content := any(result.Content)
	if a.shape != nil {
		content = a.shape(result.Content)
	}
	return &TaskResult{
		Content:      content,
		Metadata:     map[string]any{"finish_reason": result.FinishReason},
		InputTokens:  result.InputTokens,
		OutputTokens: result.OutputTokens,
	}, nil
}

// RegisterBuiltins registers the standard agent set. defaultAlias is the
// compiled-in fallback model for every built-in agent.
func RegisterBuiltins(registry *Registry, backend Backend, defaultAlias string) {
	registry.Register(NewContentAnalysisAgent(backend, defaultAlias))
	registry.Register(NewSummaryGenerationAgent(backend, defaultAlias))
	registry.Register(NewValidatorAgent(backend, defaultAlias))
	registry.Register(NewResearchAgent(backend, defaultAlias))
	registry.Register(NewWriterAgent(backend, defaultAlias))
}

// NewContentAnalysisAgent analyzes source content: themes, entities, tone.
func NewContentAnalysisAgent(backend Backend, defaultAlias string) Agent {
	return &llmAgent{
		agentType:    TypeContentAnalysis,
		capabilities: []string{"content_analysis", "theme_extraction"},
		defaultAlias: defaultAlias,
		backend:      backend,
		system: "You analyze content. Identify the main themes, key entities and " +
			"overall tone. Be concise and factual.",
		maxTokens:   600,
		temperature: 0.2,
		buildPrompt: func(input map[string]any, sc agentctx.Context) (string, error) {
			content, err := stringInput(input, "content", "previous_output")
			if err != nil {
				return "", err
			}
			return "Analyze the following content:\n\n" + content, nil
		},
		shape: func(content string) any {
			return map[string]any{"analysis": content}
		},
	}
}

// NewSummaryGenerationAgent condenses analyzed content into a summary.
func NewSummaryGenerationAgent(backend Backend, defaultAlias string) Agent {
	return &llmAgent{
		agentType:    TypeSummaryGeneration,
		capabilities: []string{"summarization"},
		defaultAlias: defaultAlias,
		backend:      backend,
		system: "You write concise summaries. Capture the essential points in " +
			"2-3 paragraphs without adding information.",
		maxTokens:   500,
		temperature: 0.3,
		buildPrompt: func(input map[string]any, sc agentctx.Context) (string, error) {
			content, err := stringInput(input, "analysis", "content", "previous_output")
			if err != nil {
				return "", err
			}
			return "Summarize:\n\n" + content, nil
		},
		shape: func(content string) any {
			return map[string]any{"summary": content}
		},
	}
}

// NewValidatorAgent reviews upstream output for factual and structural
// problems. Added to chains for high-complexity or quality-first runs.
func NewValidatorAgent(backend Backend, defaultAlias string) Agent {
	return &llmAgent{
		agentType:    TypeValidator,
		capabilities: []string{"validation", "quality_review"},
		defaultAlias: defaultAlias,
		backend:      backend,
		system: "You review generated content. Point out unsupported claims, " +
			"contradictions and structural problems. If the content is sound, say so briefly.",
		maxTokens:   400,
		temperature: 0.1,
		buildPrompt: func(input map[string]any, sc agentctx.Context) (string, error) {
			content, err := stringInput(input, "summary", "text", "analysis", "content", "previous_output")
			if err != nil {
				return "", err
			}
			return "Review the following output:\n\n" + content, nil
		},
		shape: func(content string) any {
			return map[string]any{"review": content}
		},
	}
}

// NewResearchAgent gathers background for a query, grounded in any reference
// materials attached to the session.
func NewResearchAgent(backend Backend, defaultAlias string) Agent {
	return &llmAgent{
		agentType:    TypeResearch,
		capabilities: []string{"research", "context_gathering"},
		defaultAlias: defaultAlias,
		backend:      backend,
		system: "You research a topic. List the relevant facts, background and open " +
			"questions. Prefer the provided reference materials over general knowledge.",
		maxTokens:   800,
		temperature: 0.3,
		buildPrompt: func(input map[string]any, sc agentctx.Context) (string, error) {
			query, err := stringInput(input, "query", "content", "previous_output")
			if err != nil {
				return "", err
			}
			var sb strings.Builder
			sb.WriteString("Research the following:\n\n")
			sb.WriteString(query)
			if len(sc.ReferenceMaterials) > 0 {
				sb.WriteString("\n\nReference materials:\n")
				for _, ref := range sc.ReferenceMaterials {
					sb.WriteString("- ")
					sb.WriteString(ref)
					sb.WriteString("\n")
				}
			}
			return sb.String(), nil
		},
		shape: func(content string) any {
			return map[string]any{"research": content}
		},
	}
}

// NewWriterAgent produces the final prose. Its output becomes the plan's
// final output.
func NewWriterAgent(backend Backend, defaultAlias string) Agent {
	return &llmAgent{
		agentType:    TypeWriter,
		capabilities: []string{"writing", "final_output"},
		defaultAlias: defaultAlias,
		backend:      backend,
		system: "You write polished, well-structured text from the provided research " +
			"and analysis. Write for the end reader; do not mention the inputs.",
		maxTokens:   1200,
		temperature: 0.5,
		buildPrompt: func(input map[string]any, sc agentctx.Context) (string, error) {
			var sb strings.Builder
			task, err := stringInput(input, "query", "content", "previous_output")
			if err != nil {
				return "", err
			}
			sb.WriteString("Write the final text for this task:\n\n")
			sb.WriteString(task)
			for _, key := range []string{"research", "analysis", "summary", "review"} {
				if v, ok := input[key].(string); ok && v != "" {
					sb.WriteString("\n\n")
					sb.WriteString(strings.ToUpper(key[:1]) + key[1:])
					sb.WriteString(":\n")
					sb.WriteString(v)
				}
			}
			return sb.String(), nil
		},
		shape: func(content string) any {
			return map[string]any{"text": content}
		},
	}
}

// stringInput returns the first non-empty string among the given keys.
func stringInput(input map[string]any, keys ...string) (string, error) {
	for _, key := range keys {
		if v, ok := input[key].(string); ok && strings.TrimSpace(v) != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: expected one of %s", errMissingInput, strings.Join(keys, ", "))
}

var errMissingInput = errors.New("missing input")
