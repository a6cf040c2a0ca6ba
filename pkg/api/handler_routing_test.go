package api

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/models"
)

func TestRoute_OK(t *testing.T) {
	server, deps := newTestServer(t)
	deps.router.result = &models.RoutingResult{
		ModeUsed:    models.ModeAgent,
		Success:     true,
		WTUConsumed: 9,
	}

	rec := doJSON(t, server, http.MethodPost, "/api/v1/route", models.RouteRequest{
		RequestType: "summarize",
		UserID:      "u1",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "agent", body["mode_used"])
	assert.Equal(t, float64(9), body["wtu_consumed"])
}

func TestRoute_QuotaExceededIsPaymentRequired(t *testing.T) {
	server, deps := newTestServer(t)
	deps.router.result = &models.RoutingResult{
		ModeUsed:          models.ModeLegacy,
		Success:           false,
		QuotaExceeded:     true,
		QuotaNeededWTU:    12,
		QuotaRemainingWTU: 3,
		ErrorMessage:      "insufficient quota: estimated 12 WTU, 3 remaining",
	}

	rec := doJSON(t, server, http.MethodPost, "/api/v1/route", models.RouteRequest{
		RequestType: "summarize",
		UserID:      "u1",
	})

	require.Equal(t, http.StatusPaymentRequired, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "quota exceeded", body["error"])
	assert.Equal(t, float64(12), body["needed_wtu"])
	assert.Equal(t, float64(3), body["remaining_wtu"])
}

func TestRoute_MissingUserID(t *testing.T) {
	server, _ := newTestServer(t)
	rec := doJSON(t, server, http.MethodPost, "/api/v1/route", models.RouteRequest{
		RequestType: "summarize",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecide_OK(t *testing.T) {
	server, deps := newTestServer(t)
	deps.router.decision = models.ModeDecision{
		Mode:   models.ModeLegacy,
		Reason: "explicitly requested",
	}

	rec := doJSON(t, server, http.MethodPost, "/api/v1/route/decide", models.RouteRequest{
		UserID:         "u1",
		ProcessingMode: models.ModeLegacy,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "legacy", body["mode"])
}

func TestRouteStats(t *testing.T) {
	server, deps := newTestServer(t)
	deps.router.stats = models.RoutingStats{Total: 7, Legacy: 5, Agent: 2}

	rec := doJSON(t, server, http.MethodGet, "/api/v1/route/stats", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(7), body["total"])
}

func validPlanRequest() ExecutePlanRequest {
	return ExecutePlanRequest{
		UserID: "u1",
		Plan: models.ExecutionPlan{
			PlanID:      "p1",
			RequestType: models.PlanRequestAsk,
			Stages: []models.PlanStage{
				{Index: 1, Agents: []models.AgentSpec{{AgentName: "research"}}},
			},
		},
	}
}

func TestExecutePlan_JSON(t *testing.T) {
	server, deps := newTestServer(t)
	deps.plans.result = &models.ExecutionResult{
		PlanID:      "p1",
		FinalOutput: map[string]any{"text": "answer"},
	}

	rec := doJSON(t, server, http.MethodPost, "/api/v1/plans/execute", validPlanRequest())

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "p1", body["plan_id"])
}

func TestExecutePlan_EmptyStages(t *testing.T) {
	server, _ := newTestServer(t)
	req := validPlanRequest()
	req.Plan.Stages = nil
	rec := doJSON(t, server, http.MethodPost, "/api/v1/plans/execute", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExecutePlan_StreamEmitsEventsAndResult(t *testing.T) {
	server, deps := newTestServer(t)
	deps.plans.events = []string{"plan", "status", "agent_start", "agent_done"}

	rec := doJSON(t, server, http.MethodPost, "/api/v1/plans/execute?stream=true", validPlanRequest())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

	body := rec.Body.String()
	assert.Contains(t, body, "event:plan")
	assert.Contains(t, body, "event:agent_done")
	assert.Contains(t, body, "event:result")
	// Result arrives after the progress events.
	assert.Greater(t, strings.Index(body, "event:result"), strings.Index(body, "event:plan"))
}

func TestExecutePlan_StreamErrorEvent(t *testing.T) {
	server, deps := newTestServer(t)
	deps.plans.err = errors.New("no agents available")

	rec := doJSON(t, server, http.MethodPost, "/api/v1/plans/execute?stream=true", validPlanRequest())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "event:error")
}
