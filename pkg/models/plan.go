package models

// PlanRequestType distinguishes the two plan-level request shapes.
type PlanRequestType string

const (
	PlanRequestDraft PlanRequestType = "draft"
	PlanRequestAsk   PlanRequestType = "ask"
)

// RetrievalMode controls which retrieval sources a plan may use.
type RetrievalMode string

const (
	RetrievalAuto    RetrievalMode = "auto"
	RetrievalRAGOnly RetrievalMode = "rag_only"
	RetrievalWebOnly RetrievalMode = "web_only"
	RetrievalBoth    RetrievalMode = "both"
)

// AgentSpec names one agent inside a plan stage.
type AgentSpec struct {
	AgentName string         `json:"agent_name"`
	Reason    string         `json:"reason,omitempty"`
	Options   map[string]any `json:"options,omitempty"`
}

// PlanStage is one step of an execution plan. Agents within a parallel stage
// run concurrently; otherwise sequentially in slice order.
type PlanStage struct {
	Index    int         `json:"index"` // 1-based
	Parallel bool        `json:"parallel"`
	Agents   []AgentSpec `json:"agents"`
}

// ExecutionPlan is the declarative unit consumed by the plan executor.
type ExecutionPlan struct {
	PlanID        string          `json:"plan_id"`
	RequestType   PlanRequestType `json:"request_type"`
	RetrievalMode RetrievalMode   `json:"retrieval_mode"`
	Stages        []PlanStage     `json:"stages"`
	Metadata      map[string]any  `json:"metadata,omitempty"`
}

// AgentResultStatus is the lifecycle status of one agent inside a plan run.
type AgentResultStatus string

const (
	AgentStatusPending   AgentResultStatus = "pending"
	AgentStatusRunning   AgentResultStatus = "running"
	AgentStatusCompleted AgentResultStatus = "completed"
	AgentStatusFailed    AgentResultStatus = "failed"
	AgentStatusSkipped   AgentResultStatus = "skipped"
)

// AgentResult is the outcome of one agent inside a plan run.
// The executor treats it as immutable once the agent returns.
type AgentResult struct {
	AgentName    string            `json:"agent_name"`
	Status       AgentResultStatus `json:"status"`
	Success      bool              `json:"success"`
	Skipped      bool              `json:"skipped"`
	Warning      string            `json:"warning,omitempty"`
	Content      string            `json:"content,omitempty"`
	Output       map[string]any    `json:"output,omitempty"`
	Error        string            `json:"error,omitempty"`
	Model        string            `json:"model,omitempty"`
	InputTokens  int               `json:"input_tokens"`
	OutputTokens int               `json:"output_tokens"`
	WTU          int               `json:"wtu"`
}

// AgentUsage is the per-agent slice of a usage summary.
type AgentUsage struct {
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	WTU          int    `json:"wtu"`
}

// UsageSummary aggregates token and WTU consumption across a plan run.
type UsageSummary struct {
	TotalInputTokens  int                   `json:"total_input_tokens"`
	TotalOutputTokens int                   `json:"total_output_tokens"`
	TotalWTU          int                   `json:"total_wtu"`
	Agents            map[string]AgentUsage `json:"agents"`
}

// ExecutionResult is the outcome of a full plan run.
// FinalOutput is the output of the last agent named "writer", else empty.
type ExecutionResult struct {
	PlanID      string         `json:"plan_id"`
	Results     []AgentResult  `json:"results"`
	Usage       UsageSummary   `json:"usage"`
	FinalOutput map[string]any `json:"final_output"`
	Warnings    []string       `json:"warnings,omitempty"`
}
