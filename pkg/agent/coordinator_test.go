package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/agentctx"
	"github.com/clipdock/clipd/pkg/models"
)

func newTestCoordinator(sessions *agentctx.Manager, agents ...Agent) *Coordinator {
	registry := NewRegistry()
	for _, a := range agents {
		registry.Register(a)
	}
	base := NewBase(testSource(), &stubBiller{wtu: 3})
	return NewCoordinator(registry, base, sessions)
}

func TestCoordinator_ChainFeedsOutputForward(t *testing.T) {
	research := &stubAgent{
		agentType:    "research",
		defaultAlias: "gpt",
		result:       &TaskResult{Content: map[string]any{"findings": "A, B"}, InputTokens: 10, OutputTokens: 5},
	}
	var writerInput map[string]any
	writer := &capturingAgent{
		stubAgent: stubAgent{agentType: "writer", defaultAlias: "gpt"},
		capture:   func(input map[string]any) { writerInput = input },
	}
	c := newTestCoordinator(nil, research, writer)

	resp := c.ExecuteChain(context.Background(), []string{"research", "writer"},
		map[string]any{"query": "topic"}, sessionContext(3, models.UserModelPreferences{}))

	assert.True(t, resp.Success)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 6, resp.TotalWTU)
	assert.Equal(t, "A, B", writerInput["findings"], "structured output merges into the next input")
	assert.Equal(t, "topic", writerInput["query"], "initial input survives the merge")
	assert.Contains(t, resp.Outputs, "research")
	assert.Contains(t, resp.Outputs, "writer")
}

func TestCoordinator_ChainPassesProseUnderPreviousOutput(t *testing.T) {
	research := &stubAgent{
		agentType:    "research",
		defaultAlias: "gpt",
		result:       &TaskResult{Content: "prose findings"},
	}
	var writerInput map[string]any
	writer := &capturingAgent{
		stubAgent: stubAgent{agentType: "writer", defaultAlias: "gpt"},
		capture:   func(input map[string]any) { writerInput = input },
	}
	c := newTestCoordinator(nil, research, writer)

	c.ExecuteChain(context.Background(), []string{"research", "writer"},
		nil, sessionContext(3, models.UserModelPreferences{}))

	assert.Equal(t, "prose findings", writerInput["previous_output"])
}

func TestCoordinator_ChainSkipsUnregisteredAgents(t *testing.T) {
	writer := &stubAgent{agentType: "writer", defaultAlias: "gpt"}
	c := newTestCoordinator(nil, writer)

	resp := c.ExecuteChain(context.Background(), []string{"phantom", "writer"},
		nil, sessionContext(3, models.UserModelPreferences{}))

	assert.True(t, resp.Success)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "phantom")
	assert.Len(t, resp.Results, 1)
}

func TestCoordinator_ChainFailsAgentsAfterCancellation(t *testing.T) {
	research := &stubAgent{agentType: "research", defaultAlias: "gpt"}
	writer := &stubAgent{agentType: "writer", defaultAlias: "gpt"}
	c := newTestCoordinator(nil, research, writer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := c.ExecuteChain(ctx, []string{"research", "writer"},
		nil, sessionContext(3, models.UserModelPreferences{}))

	assert.False(t, resp.Success)
	require.Len(t, resp.Results, 2)
	for _, r := range resp.Results {
		assert.False(t, r.Success)
		assert.Equal(t, "cancelled", r.ErrorMessage)
		assert.Empty(t, r.ModelUsed, "no model selection happens after cancellation")
	}
}

func TestCoordinator_ChainContinuesPastFailures(t *testing.T) {
	failing := &stubAgent{agentType: "research", defaultAlias: "gpt", execErr: assertErr("boom")}
	writer := &stubAgent{agentType: "writer", defaultAlias: "gpt"}
	c := newTestCoordinator(nil, failing, writer)

	resp := c.ExecuteChain(context.Background(), []string{"research", "writer"},
		nil, sessionContext(3, models.UserModelPreferences{}))

	assert.False(t, resp.Success, "one failed agent fails the chain result")
	require.Len(t, resp.Results, 2, "the chain still runs to completion")
	assert.False(t, resp.Results[0].Success)
	assert.True(t, resp.Results[1].Success)
	assert.NotContains(t, resp.Outputs, "research")
	assert.Contains(t, resp.Outputs, "writer")
}

func TestCoordinator_PanickingAgentIsContained(t *testing.T) {
	exploding := &stubAgent{agentType: "research", defaultAlias: "gpt", panicOnExec: true}
	c := newTestCoordinator(nil, exploding)

	resp := c.ExecuteChain(context.Background(), []string{"research"},
		nil, sessionContext(3, models.UserModelPreferences{}))

	assert.False(t, resp.Success)
	require.Len(t, resp.Results, 1)
	assert.Contains(t, resp.Results[0].ErrorMessage, "agent panicked")
}

func TestCoordinator_ParallelCollectsAllResultsInTaskOrder(t *testing.T) {
	slow := &sleepingAgent{stubAgent: stubAgent{agentType: "research", defaultAlias: "gpt"}, delay: 30 * time.Millisecond}
	fast := &stubAgent{agentType: "writer", defaultAlias: "gpt"}
	c := newTestCoordinator(nil, slow, fast)

	resp := c.ExecuteParallel(context.Background(), []ParallelTask{
		{AgentType: "research", Input: map[string]any{"q": "a"}},
		{AgentType: "writer", Input: map[string]any{"q": "b"}},
	}, sessionContext(3, models.UserModelPreferences{}))

	assert.True(t, resp.Success)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "research", resp.Results[0].AgentType, "result order follows task order, not finish order")
	assert.Equal(t, "writer", resp.Results[1].AgentType)
	assert.Equal(t, 6, resp.TotalWTU)
}

func TestCoordinator_ParallelSkipsUnknownAndReportsFailures(t *testing.T) {
	failing := &stubAgent{agentType: "writer", defaultAlias: "gpt", execErr: assertErr("down")}
	c := newTestCoordinator(nil, failing)

	resp := c.ExecuteParallel(context.Background(), []ParallelTask{
		{AgentType: "phantom"},
		{AgentType: "writer"},
	}, sessionContext(3, models.UserModelPreferences{}))

	assert.False(t, resp.Success)
	assert.Len(t, resp.Warnings, 1)
	assert.Len(t, resp.Results, 1)
}

func TestCoordinator_ParallelEmptyTaskList(t *testing.T) {
	c := newTestCoordinator(nil)
	resp := c.ExecuteParallel(context.Background(), nil, sessionContext(3, models.UserModelPreferences{}))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Results)
}

func TestCoordinator_RecordsExecutionsInSession(t *testing.T) {
	sessions := agentctx.NewManager(time.Hour)
	sc := sessions.Create(agentctx.CreateParams{UserID: "u1", Complexity: 3})

	writer := &stubAgent{agentType: "writer", defaultAlias: "gpt"}
	c := newTestCoordinator(sessions, writer)

	c.ExecuteChain(context.Background(), []string{"writer"}, nil, sc)

	metrics, err := sessions.Metrics(sc.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.TotalExecutions)
	assert.Equal(t, 3, metrics.TotalWTU)
}

// capturingAgent records the input it was executed with.
type capturingAgent struct {
	stubAgent
	capture func(map[string]any)
}

func (c *capturingAgent) ExecuteTask(ctx context.Context, input map[string]any, entry models.ModelEntry, sc agentctx.Context) (*TaskResult, error) {
	// Snapshot the input: the coordinator keeps mutating the same map
	// after this agent runs, so capturing the live reference would record
	// later chain state rather than what this agent was called with.
	snapshot := make(map[string]any, len(input))
	for k, v := range input {
		snapshot[k] = v
	}
	c.capture(snapshot)
	return c.stubAgent.ExecuteTask(ctx, input, entry, sc)
}

// sleepingAgent delays execution to exercise ordering under concurrency.
type sleepingAgent struct {
	stubAgent
	delay time.Duration
}

func (s *sleepingAgent) ExecuteTask(ctx context.Context, input map[string]any, entry models.ModelEntry, sc agentctx.Context) (*TaskResult, error) {
	time.Sleep(s.delay)
	return s.stubAgent.ExecuteTask(ctx, input, entry, sc)
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
