package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clipdock/clipd/pkg/agentctx"
)

// CoordinatedResponse aggregates an agent chain's outcomes. Success is the
// conjunction of every executed agent's success.
type CoordinatedResponse struct {
	Results         []*Response    `json:"results"`
	Outputs         map[string]any `json:"outputs"`
	Success         bool           `json:"success"`
	Warnings        []string       `json:"warnings,omitempty"`
	TotalWTU        int            `json:"total_wtu"`
	ExecutionTimeMS int            `json:"execution_time_ms"`
}

// ParallelTask pairs an agent type with its input for fan-out execution.
type ParallelTask struct {
	AgentType string
	Input     map[string]any
}

// Coordinator runs agent chains against the registry.
type Coordinator struct {
	registry *Registry
	base     *Base
	sessions *agentctx.Manager
}

// NewCoordinator creates a Coordinator.
func NewCoordinator(registry *Registry, base *Base, sessions *agentctx.Manager) *Coordinator {
	return &Coordinator{registry: registry, base: base, sessions: sessions}
}

// Registry exposes the agent registry for health and chain building.
func (c *Coordinator) Registry() *Registry {
	return c.registry
}

// ExecuteChain runs agents in order, feeding each agent's output forward.
// A structured (map) output merges into the next input; anything else is
// passed under "previous_output". Missing agents are skipped with a warning
// and individual failures do not stop the chain.
func (c *Coordinator) ExecuteChain(ctx context.Context, chain []string, initialInput map[string]any, sc agentctx.Context) *CoordinatedResponse {
	start := time.Now()
	resp := &CoordinatedResponse{
		Outputs: make(map[string]any),
		Success: true,
	}

	input := cloneInput(initialInput)
	for _, agentType := range chain {
		a, ok := c.registry.Get(agentType)
		if !ok {
			warning := fmt.Sprintf("agent %q not registered, skipping", agentType)
			slog.Warn("Skipping unregistered agent", "agent", agentType, "session_id", sc.SessionID)
			resp.Warnings = append(resp.Warnings, warning)
			continue
		}

		result := c.run(ctx, a, input, sc)
		resp.Results = append(resp.Results, result)
		resp.TotalWTU += result.WTUConsumed
		if !result.Success {
			resp.Success = false
			continue
		}

		resp.Outputs[agentType] = result.Content
		if m, ok := result.Content.(map[string]any); ok {
			for k, v := range m {
				input[k] = v
			}
		} else {
			input["previous_output"] = result.Content
		}
	}

	resp.ExecutionTimeMS = int(time.Since(start).Milliseconds())
	return resp
}

// ExecuteParallel fans tasks out concurrently and collects every result.
// Results arrive on a buffered channel sized to the task count so no
// goroutine blocks on delivery; output order follows task order.
func (c *Coordinator) ExecuteParallel(ctx context.Context, tasks []ParallelTask, sc agentctx.Context) *CoordinatedResponse {
	start := time.Now()
	resp := &CoordinatedResponse{
		Outputs: make(map[string]any),
		Success: true,
	}
	if len(tasks) == 0 {
		return resp
	}

	type indexed struct {
		i      int
		result *Response
	}
	resultsCh := make(chan indexed, len(tasks))
	for i, task := range tasks {
		a, ok := c.registry.Get(task.AgentType)
		if !ok {
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("agent %q not registered, skipping", task.AgentType))
			resultsCh <- indexed{i: i, result: nil}
			continue
		}
		go func(i int, a Agent, input map[string]any) {
			resultsCh <- indexed{i: i, result: c.run(ctx, a, input, sc)}
		}(i, a, cloneInput(task.Input))
	}

	results := make([]*Response, len(tasks))
	for range tasks {
		r := <-resultsCh
		results[r.i] = r.result
	}

	for i, result := range results {
		if result == nil {
			continue
		}
		resp.Results = append(resp.Results, result)
		resp.TotalWTU += result.WTUConsumed
		if result.Success {
			resp.Outputs[tasks[i].AgentType] = result.Content
		} else {
			resp.Success = false
		}
	}

	resp.ExecutionTimeMS = int(time.Since(start).Milliseconds())
	return resp
}

// run executes one agent and records it in the session log. A panicking
// agent is contained as a failed response, and a cancelled context fails
// the agent up front instead of issuing new LLM work.
func (c *Coordinator) run(ctx context.Context, a Agent, input map[string]any, sc agentctx.Context) (resp *Response) {
	if ctx.Err() != nil {
		resp = &Response{
			AgentType:    a.Type(),
			ErrorMessage: "cancelled",
		}
		c.recordExecution(sc.SessionID, resp)
		return resp
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Agent panicked", "agent", a.Type(), "panic", r)
			resp = &Response{
				AgentType:       a.Type(),
				ErrorMessage:    fmt.Sprintf("agent panicked: %v", r),
				ExecutionTimeMS: int(time.Since(start).Milliseconds()),
			}
			c.recordExecution(sc.SessionID, resp)
		}
	}()

	resp = c.base.ProcessWithWTU(ctx, a, input, sc)
	c.recordExecution(sc.SessionID, resp)
	return resp
}

func (c *Coordinator) recordExecution(sessionID string, resp *Response) {
	if c.sessions == nil {
		return
	}
	err := c.sessions.RecordExecution(sessionID, agentctx.Execution{
		AgentName:  resp.AgentType,
		DurationMS: resp.ExecutionTimeMS,
		WTU:        resp.WTUConsumed,
		Success:    resp.Success,
		Summary:    resp.ErrorMessage,
	})
	if err != nil {
		slog.Debug("Failed to record agent execution", "agent", resp.AgentType, "error", err)
	}
}

func cloneInput(input map[string]any) map[string]any {
	out := make(map[string]any, len(input))
	for k, v := range input {
		out[k] = v
	}
	return out
}
