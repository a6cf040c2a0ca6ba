// Package plan executes declarative multi-stage execution plans: ordered
// stages of agents, parallel fan-out within a stage, output propagation
// between stages and usage aggregation.
package plan

import (
	"context"
	"sort"

	"github.com/clipdock/clipd/pkg/agent"
	"github.com/clipdock/clipd/pkg/agentctx"
	"github.com/clipdock/clipd/pkg/models"
)

// EventFunc receives execution progress events. Optional; a nil callback
// changes nothing about execution semantics.
type EventFunc func(event string, data map[string]any)

// Executor runs ExecutionPlans over the agent registry.
type Executor struct {
	registry *agent.Registry
	base     *agent.Base
}

// NewExecutor creates an Executor.
func NewExecutor(registry *agent.Registry, base *agent.Base) *Executor {
	return &Executor{registry: registry, base: base}
}

// Execute runs the plan's stages in ascending index order. Within a stage,
// agents run concurrently when the stage is parallel, sequentially
// otherwise. Each agent receives a copy of the outputs accumulated before
// its stage under "previous_outputs"; structured outputs are additionally
// flattened into the input bag. A later stage starts only after every agent
// of the previous stage finished.
func (e *Executor) Execute(ctx context.Context, p models.ExecutionPlan, sc agentctx.Context, emit EventFunc) (*models.ExecutionResult, error) {
	stages := append([]models.PlanStage(nil), p.Stages...)
	sort.SliceStable(stages, func(a, b int) bool { return stages[a].Index < stages[b].Index })

	e.emit(emit, "plan", map[string]any{
		"plan_id":        p.PlanID,
		"request_type":   string(p.RequestType),
		"retrieval_mode": string(p.RetrievalMode),
		"stages":         describeStages(stages),
	})

	result := &models.ExecutionResult{
		PlanID:      p.PlanID,
		FinalOutput: map[string]any{},
		Usage: models.UsageSummary{
			Agents: make(map[string]models.AgentUsage),
		},
	}
	accumulated := make(map[string]any)

	for _, stage := range stages {
		e.emit(emit, "status", map[string]any{
			"stage":    stage.Index,
			"parallel": stage.Parallel,
			"agents":   agentNames(stage.Agents),
		})

		var stageResults []models.AgentResult
		if stage.Parallel {
			stageResults = e.runParallel(ctx, stage, accumulated, p.Metadata, sc, emit)
		} else {
			stageResults = e.runSequential(ctx, stage, accumulated, p.Metadata, sc, emit)
		}

		// Outputs land in deterministic slice order regardless of the
		// completion order of parallel agents.
		for _, r := range stageResults {
			result.Results = append(result.Results, r)
			if r.Warning != "" {
				result.Warnings = append(result.Warnings, r.Warning)
			}
			if r.Status == models.AgentStatusCompleted {
				if r.Output != nil {
					accumulated[r.AgentName] = r.Output
				} else {
					accumulated[r.AgentName] = r.Content
				}
			}
		}
	}

	e.aggregate(result)
	return result, nil
}

func (e *Executor) runSequential(ctx context.Context, stage models.PlanStage, accumulated map[string]any, metadata map[string]any, sc agentctx.Context, emit EventFunc) []models.AgentResult {
	results := make([]models.AgentResult, 0, len(stage.Agents))
	for _, spec := range stage.Agents {
		results = append(results, e.runAgent(ctx, stage.Index, spec, accumulated, metadata, sc, emit))
	}
	return results
}

func (e *Executor) runParallel(ctx context.Context, stage models.PlanStage, accumulated map[string]any, metadata map[string]any, sc agentctx.Context, emit EventFunc) []models.AgentResult {
	type indexed struct {
		i      int
		result models.AgentResult
	}
	resultsCh := make(chan indexed, len(stage.Agents))
	for i, spec := range stage.Agents {
		go func(i int, spec models.AgentSpec) {
			resultsCh <- indexed{i: i, result: e.runAgent(ctx, stage.Index, spec, accumulated, metadata, sc, emit)}
		}(i, spec)
	}
	results := make([]models.AgentResult, len(stage.Agents))
	for range stage.Agents {
		r := <-resultsCh
		results[r.i] = r.result
	}
	return results
}

func (e *Executor) runAgent(ctx context.Context, stageIndex int, spec models.AgentSpec, accumulated map[string]any, metadata map[string]any, sc agentctx.Context, emit EventFunc) models.AgentResult {
	// A cancelled plan stops issuing new LLM work; agents not yet started
	// are marked failed rather than left dangling.
	if ctx.Err() != nil {
		return models.AgentResult{
			AgentName: spec.AgentName,
			Status:    models.AgentStatusFailed,
			Error:     "cancelled",
		}
	}

	e.emit(emit, "agent_start", map[string]any{"agent": spec.AgentName, "stage": stageIndex})

	a, ok := e.registry.Get(spec.AgentName)
	if !ok {
		e.emit(emit, "agent_done", map[string]any{
			"agent": spec.AgentName, "stage": stageIndex, "success": false, "skipped": true,
		})
		return models.AgentResult{
			AgentName: spec.AgentName,
			Status:    models.AgentStatusSkipped,
			Skipped:   true,
			Warning:   "Agent not registered",
		}
	}

	input := buildInput(accumulated, metadata, spec.Options)
	resp := e.base.ProcessWithWTU(ctx, a, input, sc)

	result := models.AgentResult{
		AgentName:    spec.AgentName,
		Success:      resp.Success,
		Model:        resp.ModelUsed,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
		WTU:          resp.WTUConsumed,
		Error:        resp.ErrorMessage,
	}
	if resp.Success {
		result.Status = models.AgentStatusCompleted
	} else {
		result.Status = models.AgentStatusFailed
	}
	switch content := resp.Content.(type) {
	case string:
		result.Content = content
	case map[string]any:
		result.Output = content
	case nil:
	default:
		result.Output = map[string]any{"value": content}
	}

	e.emit(emit, "agent_done", map[string]any{
		"agent": spec.AgentName, "stage": stageIndex,
		"success": resp.Success, "skipped": false,
	})
	return result
}

// aggregate fills usage totals and the final output. The final output is
// the last writer agent's structured output, or empty when no writer ran
// successfully.
func (e *Executor) aggregate(result *models.ExecutionResult) {
	for _, r := range result.Results {
		if r.Skipped || !r.Success {
			continue
		}
		usage := result.Usage.Agents[r.AgentName]
		usage.Model = r.Model
		usage.InputTokens += r.InputTokens
		usage.OutputTokens += r.OutputTokens
		usage.WTU += r.WTU
		result.Usage.Agents[r.AgentName] = usage

		result.Usage.TotalInputTokens += r.InputTokens
		result.Usage.TotalOutputTokens += r.OutputTokens
		result.Usage.TotalWTU += r.WTU

		if r.AgentName == agent.TypeWriter {
			if r.Output != nil {
				result.FinalOutput = r.Output
			} else if r.Content != "" {
				result.FinalOutput = map[string]any{"text": r.Content}
			}
		}
	}
}

// buildInput assembles one agent's input bag: plan metadata first, then a
// snapshot of accumulated outputs (both flattened and under
// "previous_outputs"), then the stage entry's own options.
func buildInput(accumulated map[string]any, metadata map[string]any, options map[string]any) map[string]any {
	input := make(map[string]any, len(metadata)+len(accumulated)+len(options)+1)
	for k, v := range metadata {
		input[k] = v
	}
	snapshot := make(map[string]any, len(accumulated))
	for name, output := range accumulated {
		snapshot[name] = output
		if m, ok := output.(map[string]any); ok {
			for k, v := range m {
				input[k] = v
			}
		}
	}
	input["previous_outputs"] = snapshot
	for k, v := range options {
		input[k] = v
	}
	return input
}

func (e *Executor) emit(emit EventFunc, event string, data map[string]any) {
	if emit == nil {
		return
	}
	emit(event, data)
}

func describeStages(stages []models.PlanStage) []map[string]any {
	out := make([]map[string]any, 0, len(stages))
	for _, s := range stages {
		out = append(out, map[string]any{
			"index":    s.Index,
			"parallel": s.Parallel,
			"agents":   agentNames(s.Agents),
		})
	}
	return out
}

func agentNames(specs []models.AgentSpec) []string {
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.AgentName)
	}
	return names
}
