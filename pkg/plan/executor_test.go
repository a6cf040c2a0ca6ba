package plan

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/agent"
	"github.com/clipdock/clipd/pkg/agentctx"
	"github.com/clipdock/clipd/pkg/models"
)

type planAgent struct {
	name    string
	content any
	execErr error
	delay   time.Duration

	mu     sync.Mutex
	inputs []map[string]any
}

func (p *planAgent) Type() string              { return p.name }
func (p *planAgent) Capabilities() []string    { return []string{p.name} }
func (p *planAgent) DefaultModelAlias() string { return "gpt" }
func (p *planAgent) ValidateInput(map[string]any) error {
	return nil
}

func (p *planAgent) ExecuteTask(_ context.Context, input map[string]any, _ models.ModelEntry, _ agentctx.Context) (*agent.TaskResult, error) {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	p.mu.Lock()
	p.inputs = append(p.inputs, input)
	p.mu.Unlock()
	if p.execErr != nil {
		return nil, p.execErr
	}
	content := p.content
	if content == nil {
		content = "output of " + p.name
	}
	return &agent.TaskResult{Content: content, InputTokens: 100, OutputTokens: 50}, nil
}

func (p *planAgent) lastInput() map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.inputs) == 0 {
		return nil
	}
	return p.inputs[len(p.inputs)-1]
}

type planSource struct{}

func (planSource) ModelsForTier(_ context.Context, tier models.Tier) ([]models.ModelEntry, error) {
	return []models.ModelEntry{{Alias: "gpt", Provider: models.ProviderOpenAI, Tier: tier}}, nil
}

func (planSource) ByAlias(_ context.Context, alias string) (models.ModelEntry, error) {
	return models.ModelEntry{Alias: alias, Provider: models.ProviderOpenAI}, nil
}

type planBiller struct{}

func (planBiller) Charge(context.Context, string, models.ModelEntry, int, int) (int, error) {
	return 4, nil
}

func newExecutor(agents ...agent.Agent) *Executor {
	registry := agent.NewRegistry()
	for _, a := range agents {
		registry.Register(a)
	}
	return NewExecutor(registry, agent.NewBase(planSource{}, planBiller{}))
}

func planSession() agentctx.Context {
	return agentctx.Context{SessionID: "s1", UserID: "u1", Complexity: 3}
}

type recordedEvent struct {
	name string
	data map[string]any
}

type eventLog struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (l *eventLog) record(event string, data map[string]any) {
	l.mu.Lock()
	l.events = append(l.events, recordedEvent{name: event, data: data})
	l.mu.Unlock()
}

func (l *eventLog) names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.events))
	for _, e := range l.events {
		out = append(out, e.name)
	}
	return out
}

func TestExecutor_StagesRunInIndexOrder(t *testing.T) {
	research := &planAgent{name: "research", content: map[string]any{"research": "facts"}}
	writer := &planAgent{name: "writer", content: map[string]any{"text": "final prose"}}
	e := newExecutor(research, writer)

	// Stages deliberately out of order in the slice.
	p := models.ExecutionPlan{
		PlanID:      "p1",
		RequestType: models.PlanRequestDraft,
		Stages: []models.PlanStage{
			{Index: 2, Agents: []models.AgentSpec{{AgentName: "writer"}}},
			{Index: 1, Agents: []models.AgentSpec{{AgentName: "research"}}},
		},
		Metadata: map[string]any{"query": "the topic"},
	}

	result, err := e.Execute(context.Background(), p, planSession(), nil)
	require.NoError(t, err)

	require.Len(t, result.Results, 2)
	assert.Equal(t, "research", result.Results[0].AgentName)
	assert.Equal(t, "writer", result.Results[1].AgentName)

	// The writer sees the research stage's output.
	writerInput := writer.lastInput()
	assert.Equal(t, "facts", writerInput["research"])
	assert.Equal(t, "the topic", writerInput["query"])
	previous, ok := writerInput["previous_outputs"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, previous, "research")
}

func TestExecutor_FinalOutputComesFromWriter(t *testing.T) {
	research := &planAgent{name: "research", content: map[string]any{"research": "facts"}}
	writer := &planAgent{name: "writer", content: map[string]any{"text": "final prose"}}
	e := newExecutor(research, writer)

	p := models.ExecutionPlan{
		PlanID: "p1",
		Stages: []models.PlanStage{
			{Index: 1, Agents: []models.AgentSpec{{AgentName: "research"}}},
			{Index: 2, Agents: []models.AgentSpec{{AgentName: "writer"}}},
		},
	}

	result, err := e.Execute(context.Background(), p, planSession(), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"text": "final prose"}, result.FinalOutput)
}

func TestExecutor_WriterProseWrappedAsText(t *testing.T) {
	writer := &planAgent{name: "writer", content: "plain prose"}
	e := newExecutor(writer)

	p := models.ExecutionPlan{Stages: []models.PlanStage{
		{Index: 1, Agents: []models.AgentSpec{{AgentName: "writer"}}},
	}}

	result, err := e.Execute(context.Background(), p, planSession(), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"text": "plain prose"}, result.FinalOutput)
}

func TestExecutor_NoWriterMeansEmptyFinalOutput(t *testing.T) {
	research := &planAgent{name: "research"}
	e := newExecutor(research)

	p := models.ExecutionPlan{Stages: []models.PlanStage{
		{Index: 1, Agents: []models.AgentSpec{{AgentName: "research"}}},
	}}

	result, err := e.Execute(context.Background(), p, planSession(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.FinalOutput)
}

func TestExecutor_ParallelStageResultsAreDeterministic(t *testing.T) {
	slow := &planAgent{name: "research", delay: 40 * time.Millisecond, content: map[string]any{"research": "slow facts"}}
	fast := &planAgent{name: "content_analysis", content: map[string]any{"analysis": "fast themes"}}
	e := newExecutor(slow, fast)

	p := models.ExecutionPlan{Stages: []models.PlanStage{
		{Index: 1, Parallel: true, Agents: []models.AgentSpec{
			{AgentName: "research"},
			{AgentName: "content_analysis"},
		}},
	}}

	result, err := e.Execute(context.Background(), p, planSession(), nil)
	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	assert.Equal(t, "research", result.Results[0].AgentName, "slice order wins over completion order")
	assert.Equal(t, "content_analysis", result.Results[1].AgentName)
}

func TestExecutor_ParallelAgentsShareTheSamePriorOutputs(t *testing.T) {
	seed := &planAgent{name: "content_analysis", content: map[string]any{"analysis": "themes"}}
	a := &planAgent{name: "research"}
	b := &planAgent{name: "writer"}
	e := newExecutor(seed, a, b)

	p := models.ExecutionPlan{Stages: []models.PlanStage{
		{Index: 1, Agents: []models.AgentSpec{{AgentName: "content_analysis"}}},
		{Index: 2, Parallel: true, Agents: []models.AgentSpec{
			{AgentName: "research"},
			{AgentName: "writer"},
		}},
	}}

	_, err := e.Execute(context.Background(), p, planSession(), nil)
	require.NoError(t, err)
	assert.Equal(t, "themes", a.lastInput()["analysis"])
	assert.Equal(t, "themes", b.lastInput()["analysis"])
}

func TestExecutor_UnknownAgentIsSkippedWithWarning(t *testing.T) {
	writer := &planAgent{name: "writer", content: map[string]any{"text": "done"}}
	e := newExecutor(writer)

	p := models.ExecutionPlan{Stages: []models.PlanStage{
		{Index: 1, Agents: []models.AgentSpec{{AgentName: "phantom"}}},
		{Index: 2, Agents: []models.AgentSpec{{AgentName: "writer"}}},
	}}

	result, err := e.Execute(context.Background(), p, planSession(), nil)
	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	assert.Equal(t, models.AgentStatusSkipped, result.Results[0].Status)
	assert.True(t, result.Results[0].Skipped)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, map[string]any{"text": "done"}, result.FinalOutput)
}

func TestExecutor_FailedAgentDoesNotStopThePlan(t *testing.T) {
	failing := &planAgent{name: "research", execErr: errors.New("upstream down")}
	writer := &planAgent{name: "writer", content: map[string]any{"text": "still done"}}
	e := newExecutor(failing, writer)

	p := models.ExecutionPlan{Stages: []models.PlanStage{
		{Index: 1, Agents: []models.AgentSpec{{AgentName: "research"}}},
		{Index: 2, Agents: []models.AgentSpec{{AgentName: "writer"}}},
	}}

	result, err := e.Execute(context.Background(), p, planSession(), nil)
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusFailed, result.Results[0].Status)
	assert.Equal(t, models.AgentStatusCompleted, result.Results[1].Status)

	// Failed outputs do not propagate forward.
	assert.NotContains(t, writer.lastInput(), "research")
}

func TestExecutor_UsageAggregation(t *testing.T) {
	research := &planAgent{name: "research", content: map[string]any{"research": "facts"}}
	writer := &planAgent{name: "writer", content: map[string]any{"text": "done"}}
	e := newExecutor(research, writer)

	p := models.ExecutionPlan{Stages: []models.PlanStage{
		{Index: 1, Agents: []models.AgentSpec{{AgentName: "research"}}},
		{Index: 2, Agents: []models.AgentSpec{{AgentName: "writer"}}},
	}}

	result, err := e.Execute(context.Background(), p, planSession(), nil)
	require.NoError(t, err)
	assert.Equal(t, 200, result.Usage.TotalInputTokens)
	assert.Equal(t, 100, result.Usage.TotalOutputTokens)
	assert.Equal(t, 8, result.Usage.TotalWTU)
	assert.Equal(t, 4, result.Usage.Agents["writer"].WTU)
	assert.Equal(t, "gpt", result.Usage.Agents["writer"].Model)
}

func TestExecutor_SpecOptionsOverrideAccumulated(t *testing.T) {
	seed := &planAgent{name: "research", content: map[string]any{"style": "terse"}}
	writer := &planAgent{name: "writer"}
	e := newExecutor(seed, writer)

	p := models.ExecutionPlan{Stages: []models.PlanStage{
		{Index: 1, Agents: []models.AgentSpec{{AgentName: "research"}}},
		{Index: 2, Agents: []models.AgentSpec{{AgentName: "writer", Options: map[string]any{"style": "flowery"}}}},
	}}

	_, err := e.Execute(context.Background(), p, planSession(), nil)
	require.NoError(t, err)
	assert.Equal(t, "flowery", writer.lastInput()["style"])
}

func TestExecutor_EmitsLifecycleEvents(t *testing.T) {
	writer := &planAgent{name: "writer", content: map[string]any{"text": "done"}}
	e := newExecutor(writer)

	p := models.ExecutionPlan{
		PlanID: "p1",
		Stages: []models.PlanStage{
			{Index: 1, Agents: []models.AgentSpec{{AgentName: "writer"}}},
		},
	}

	log := &eventLog{}
	_, err := e.Execute(context.Background(), p, planSession(), log.record)
	require.NoError(t, err)

	assert.Equal(t, []string{"plan", "status", "agent_start", "agent_done"}, log.names())
}

func TestExecutor_NilEventCallback(t *testing.T) {
	writer := &planAgent{name: "writer"}
	e := newExecutor(writer)

	p := models.ExecutionPlan{Stages: []models.PlanStage{
		{Index: 1, Agents: []models.AgentSpec{{AgentName: "writer"}}},
	}}

	_, err := e.Execute(context.Background(), p, planSession(), nil)
	assert.NoError(t, err)
}

func TestExecutor_CancelledContextFailsAgentsWithoutRunningThem(t *testing.T) {
	research := &planAgent{name: "research"}
	writer := &planAgent{name: "writer"}
	e := newExecutor(research, writer)

	p := models.ExecutionPlan{Stages: []models.PlanStage{
		{Index: 1, Agents: []models.AgentSpec{{AgentName: "research"}}},
		{Index: 2, Agents: []models.AgentSpec{{AgentName: "writer"}}},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := e.Execute(ctx, p, planSession(), nil)
	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	for _, r := range result.Results {
		assert.Equal(t, models.AgentStatusFailed, r.Status)
		assert.Equal(t, "cancelled", r.Error)
	}
	assert.Nil(t, research.lastInput(), "cancelled agents never execute")
	assert.Nil(t, writer.lastInput())
}

func TestExecutor_MidPlanCancellationFailsRemainingStages(t *testing.T) {
	research := &planAgent{name: "research", delay: 40 * time.Millisecond, content: map[string]any{"research": "facts"}}
	writer := &planAgent{name: "writer"}
	e := newExecutor(research, writer)

	p := models.ExecutionPlan{Stages: []models.PlanStage{
		{Index: 1, Agents: []models.AgentSpec{{AgentName: "research"}}},
		{Index: 2, Agents: []models.AgentSpec{{AgentName: "writer"}}},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// Cancel while the first agent is still working.
	time.AfterFunc(10*time.Millisecond, cancel)

	result, err := e.Execute(ctx, p, planSession(), nil)
	require.NoError(t, err)
	require.Len(t, result.Results, 2)

	// The in-flight agent runs to completion; only later stages are cut off.
	assert.Equal(t, models.AgentStatusCompleted, result.Results[0].Status)
	assert.Equal(t, models.AgentStatusFailed, result.Results[1].Status)
	assert.Equal(t, "cancelled", result.Results[1].Error)
	assert.Nil(t, writer.lastInput())
}

func TestExecutor_EmptyPlan(t *testing.T) {
	e := newExecutor()
	result, err := e.Execute(context.Background(), models.ExecutionPlan{PlanID: "empty"}, planSession(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Results)
	assert.Equal(t, 0, result.Usage.TotalWTU)
}
