// Package agent defines the agent contract and the coordinator that runs
// agent chains. Agents are small task executors over the LLM gateway; model
// selection, quota accounting and error containment live in the shared base
// so individual agents stay declarative.
package agent

import (
	"context"

	"github.com/clipdock/clipd/pkg/agentctx"
	"github.com/clipdock/clipd/pkg/models"
)

// TaskResult is what an agent's task execution produces before the base
// wraps it with accounting and timing.
type TaskResult struct {
	// Content is the agent's output: a string for prose agents, a
	// map[string]any for structured ones.
	Content      any
	Metadata     map[string]any
	InputTokens  int
	OutputTokens int
}

// Response is the accounted outcome of one agent run.
type Response struct {
	AgentType       string         `json:"agent_type"`
	Content         any            `json:"content,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	ModelUsed       string         `json:"model_used,omitempty"`
	InputTokens     int            `json:"input_tokens"`
	OutputTokens    int            `json:"output_tokens"`
	WTUConsumed     int            `json:"wtu_consumed"`
	CostUSD         float64        `json:"cost_usd"`
	ExecutionTimeMS int            `json:"execution_time_ms"`
	Success         bool           `json:"success"`
	ErrorMessage    string         `json:"error_message,omitempty"`
}

// Agent is the capability contract every agent implements.
type Agent interface {
	// Type is the registry key, e.g. "content_analysis".
	Type() string

	// Capabilities names what the agent can do, for health and routing
	// introspection.
	Capabilities() []string

	// DefaultModelAlias is the fallback model when preference-based
	// selection finds nothing usable.
	DefaultModelAlias() string

	// ValidateInput rejects inputs the agent cannot work with. A rejection
	// costs no LLM call and no WTU.
	ValidateInput(input map[string]any) error

	// ExecuteTask runs the agent's work against the chosen model.
	ExecuteTask(ctx context.Context, input map[string]any, entry models.ModelEntry, sc agentctx.Context) (*TaskResult, error)
}
