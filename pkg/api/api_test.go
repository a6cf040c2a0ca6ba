package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/clipdock/clipd/pkg/agentctx"
	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/plan"
	"github.com/clipdock/clipd/pkg/routing"
	"github.com/clipdock/clipd/pkg/services"
	"github.com/clipdock/clipd/pkg/summarize"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSummarizer struct {
	lastRequest summarize.Request
	result      *models.SummarizeResult
	err         error

	confirmedUser string
	confirmedTags []string
	confirmErr    error
}

func (f *fakeSummarizer) Summarize(_ context.Context, req summarize.Request) (*models.SummarizeResult, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &models.SummarizeResult{Summary: "a summary"}, nil
}

func (f *fakeSummarizer) ConfirmTags(_ context.Context, userID string, tags []string) error {
	f.confirmedUser = userID
	f.confirmedTags = tags
	return f.confirmErr
}

type fakeAccountant struct {
	status    *models.UsageStatus
	statusErr error

	grantedAmount int
	grantedType   models.PurchaseType
	grantedTxID   *string
	grantErr      error

	history     []models.PurchaseEvent
	historyErr  error
	limitPassed int
}

func (f *fakeAccountant) Status(_ context.Context, userID string) (*models.UsageStatus, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	if f.status != nil {
		return f.status, nil
	}
	return &models.UsageStatus{UserID: userID, AllocatedQuota: 1000, RemainingWTU: 1000}, nil
}

func (f *fakeAccountant) Grant(_ context.Context, userID string, amount int, purchaseType models.PurchaseType, transactionID *string) (*models.UsageStatus, error) {
	f.grantedAmount = amount
	f.grantedType = purchaseType
	f.grantedTxID = transactionID
	if f.grantErr != nil {
		return nil, f.grantErr
	}
	return &models.UsageStatus{UserID: userID, AllocatedQuota: 1000 + amount}, nil
}

func (f *fakeAccountant) History(_ context.Context, _ string, limit int) ([]models.PurchaseEvent, error) {
	f.limitPassed = limit
	return f.history, f.historyErr
}

type fakeRouter struct {
	result   *models.RoutingResult
	decision models.ModeDecision
	stats    models.RoutingStats
	health   routing.HealthReport
}

func (f *fakeRouter) Route(_ context.Context, _ models.RouteRequest) *models.RoutingResult {
	if f.result != nil {
		return f.result
	}
	return &models.RoutingResult{ModeUsed: models.ModeLegacy, Success: true}
}

func (f *fakeRouter) Decide(_ context.Context, _ models.RouteRequest) models.ModeDecision {
	return f.decision
}

func (f *fakeRouter) Stats() models.RoutingStats { return f.stats }

func (f *fakeRouter) Health(_ context.Context) routing.HealthReport {
	if f.health.Status == "" {
		return routing.HealthReport{Status: "healthy", Legacy: "healthy", Coordinator: "healthy"}
	}
	return f.health
}

type fakeCatalog struct {
	entries []models.ModelEntry
	err     error
}

func (f *fakeCatalog) ListActive(_ context.Context) ([]models.ModelEntry, error) {
	return f.entries, f.err
}

type fakePlans struct {
	result *models.ExecutionResult
	err    error
	events []string
}

func (f *fakePlans) Execute(_ context.Context, p models.ExecutionPlan, _ agentctx.Context, emit plan.EventFunc) (*models.ExecutionResult, error) {
	for _, name := range f.events {
		if emit != nil {
			emit(name, map[string]any{"plan_id": p.PlanID})
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &models.ExecutionResult{PlanID: p.PlanID, FinalOutput: map[string]any{}}, nil
}

type fakeSessions struct {
	count int
}

func (f *fakeSessions) WithContext(ctx context.Context, params agentctx.CreateParams, fn func(ctx context.Context, sc agentctx.Context) error) error {
	return fn(ctx, agentctx.Context{
		SessionID:  "test-session",
		UserID:     params.UserID,
		BoardID:    params.BoardID,
		TaskType:   params.TaskType,
		Complexity: params.Complexity,
		CreatedAt:  time.Now(),
	})
}

func (f *fakeSessions) Count() int { return f.count }

type fakeCallStats struct {
	stats []services.TierStats
	err   error
}

func (f *fakeCallStats) StatsSince(_ context.Context, _ time.Time) ([]services.TierStats, error) {
	return f.stats, f.err
}

type fakeCacheStats struct {
	count int
	err   error
}

func (f *fakeCacheStats) Count(_ context.Context) (int, error) { return f.count, f.err }

type testDeps struct {
	summarizer *fakeSummarizer
	accounts   *fakeAccountant
	router     *fakeRouter
	catalog    *fakeCatalog
	plans      *fakePlans
	sessions   *fakeSessions
	callStats  *fakeCallStats
	cacheStats *fakeCacheStats
}

func newTestServer(t *testing.T) (*Server, *testDeps) {
	t.Helper()
	deps := &testDeps{
		summarizer: &fakeSummarizer{},
		accounts:   &fakeAccountant{},
		router:     &fakeRouter{},
		catalog:    &fakeCatalog{},
		plans:      &fakePlans{},
		sessions:   &fakeSessions{},
		callStats:  &fakeCallStats{},
		cacheStats: &fakeCacheStats{},
	}
	server := NewServer(nil, Deps{
		Summarizer: deps.summarizer,
		Accounts:   deps.accounts,
		Router:     deps.router,
		Catalog:    deps.catalog,
		Plans:      deps.plans,
		Sessions:   deps.sessions,
		CallStats:  deps.callStats,
		CacheStats: deps.cacheStats,
	})
	return server, deps
}

// closeNotifyRecorder adds the http.CloseNotifier method gin's Stream
// requires, which httptest.ResponseRecorder lacks.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (c *closeNotifyRecorder) CloseNotify() <-chan bool { return c.closed }

func doJSON(t *testing.T, server *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Routes().ServeHTTP(&closeNotifyRecorder{ResponseRecorder: rec, closed: make(chan bool)}, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth_OK(t *testing.T) {
	server, _ := newTestServer(t)
	rec := doJSON(t, server, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "healthy", body["status"])
}

func TestHealth_UnhealthyRouter(t *testing.T) {
	server, deps := newTestServer(t)
	deps.router.health = routing.HealthReport{Status: "unhealthy"}
	rec := doJSON(t, server, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
