package models

// ProcessingMode selects the execution strategy for a routed request.
type ProcessingMode string

const (
	ModeAuto   ProcessingMode = "auto"
	ModeLegacy ProcessingMode = "legacy"
	ModeAgent  ProcessingMode = "agent"
)

// Complexity is a coarse request complexity hint mapped onto the selector's
// fast/balanced/thorough scale.
type Complexity string

const (
	ComplexityFast     Complexity = "fast"
	ComplexityBalanced Complexity = "balanced"
	ComplexityThorough Complexity = "thorough"
)

// RoutingHistory summarizes past routing outcomes used as a scoring signal.
type RoutingHistory struct {
	LegacySuccessRate float64 `json:"legacy_success_rate"`
	AgentAvgQuality   float64 `json:"agent_avg_quality"`
}

// ModeDecision is the mode selector's output. It never carries an error;
// selector failures degrade to legacy with a reason.
type ModeDecision struct {
	Mode                 ProcessingMode       `json:"mode"`
	Reason               string               `json:"reason,omitempty"`
	EstimatedTimeSeconds float64              `json:"estimated_time_seconds"`
	EstimatedWTU         int                  `json:"estimated_wtu"`
	QualityExpectation   float64              `json:"quality_expectation"`
	CostEfficiencyScore  float64              `json:"cost_efficiency_score"`
	RecommendedModels    []string             `json:"recommended_models,omitempty"`
	FallbackAvailable    bool                 `json:"fallback_available"`
	Scores               map[string]float64   `json:"scores,omitempty"`
	Preferences          UserModelPreferences `json:"-"`
}

// RouteRequest is the smart router's input.
type RouteRequest struct {
	RequestType      string               `json:"request_type"`
	RequestData      map[string]any       `json:"request_data"`
	UserID           string               `json:"user_id"`
	BoardID          string               `json:"board_id,omitempty"`
	ProcessingMode   ProcessingMode       `json:"processing_mode"`
	Complexity       Complexity           `json:"complexity,omitempty"`
	QualityThreshold float64              `json:"quality_threshold,omitempty"`
	Preferences      UserModelPreferences `json:"preferences,omitempty"`
}

// RoutingResult is the smart router's output.
type RoutingResult struct {
	ModeUsed         ProcessingMode `json:"mode_used"`
	ProcessingResult map[string]any `json:"processing_result,omitempty"`
	ExecutionTimeMs  int64          `json:"execution_time_ms"`
	WTUConsumed      int            `json:"wtu_consumed"`
	Success          bool           `json:"success"`
	FallbackUsed     bool           `json:"fallback_used"`
	QuotaExceeded    bool           `json:"quota_exceeded,omitempty"`
	// Shortfall details, set only when QuotaExceeded.
	QuotaNeededWTU    int    `json:"quota_needed_wtu,omitempty"`
	QuotaRemainingWTU int    `json:"quota_remaining_wtu,omitempty"`
	ErrorMessage      string `json:"error_message,omitempty"`
}

// RoutingStats is a snapshot of per-mode routing counters.
type RoutingStats struct {
	Total         int64            `json:"total"`
	Legacy        int64            `json:"legacy"`
	Agent         int64            `json:"agent"`
	Fallback      int64            `json:"fallback"`
	SuccessByMode map[string]int64 `json:"success_by_mode"`
}
