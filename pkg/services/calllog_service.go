package services

import (
	"context"
	"fmt"
	"time"

	"github.com/clipdock/clipd/ent"
	"github.com/clipdock/clipd/ent/modelcalllog"
	"github.com/clipdock/clipd/pkg/models"
	"github.com/google/uuid"
)

// CallLogService records tiered-caller attempts. Writes are fire-and-forget
// from the caller's perspective; a logging failure never fails the LLM call.
type CallLogService struct {
	client *ent.Client
}

// NewCallLogService creates a new CallLogService.
func NewCallLogService(client *ent.Client) *CallLogService {
	return &CallLogService{client: client}
}

// Record persists one attempt row.
func (s *CallLogService) Record(ctx context.Context, attempt models.CallAttempt) error {
	if attempt.RequestID == "" {
		return NewValidationError("request_id", "is required")
	}
	if attempt.ModelAlias == "" {
		return NewValidationError("model_alias", "is required")
	}

	create := s.client.ModelCallLog.Create().
		SetID(uuid.New().String()).
		SetRequestID(attempt.RequestID).
		SetModelAlias(attempt.ModelAlias).
		SetTier(modelcalllog.Tier(attempt.Tier)).
		SetStatus(modelcalllog.Status(attempt.Status)).
		SetNillableInputTokens(attempt.InputTokens).
		SetNillableOutputTokens(attempt.OutputTokens).
		SetLatencyMs(attempt.LatencyMS)
	if attempt.ErrorType != "" {
		create.SetErrorType(attempt.ErrorType)
	}
	if attempt.ErrorMessage != "" {
		create.SetErrorMessage(attempt.ErrorMessage)
	}
	if attempt.FallbackTo != "" {
		create.SetFallbackTo(attempt.FallbackTo)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record model call: %w", err)
	}
	return nil
}

// Attempts returns the rows of one tiered call in attempt order.
func (s *CallLogService) Attempts(ctx context.Context, requestID string) ([]models.CallAttempt, error) {
	if requestID == "" {
		return nil, NewValidationError("request_id", "is required")
	}
	rows, err := s.client.ModelCallLog.Query().
		Where(modelcalllog.RequestID(requestID)).
		Order(ent.Asc(modelcalllog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list call attempts: %w", err)
	}
	attempts := make([]models.CallAttempt, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, toCallAttempt(row))
	}
	return attempts, nil
}

// TierStats aggregates attempt outcomes per tier since the given time.
// Feeds the routing health report.
type TierStats struct {
	Tier      models.Tier `json:"tier"`
	Successes int         `json:"successes"`
	Fallbacks int         `json:"fallbacks"`
	Failures  int         `json:"failures"`
}

// StatsSince counts attempt outcomes grouped by tier.
func (s *CallLogService) StatsSince(ctx context.Context, since time.Time) ([]TierStats, error) {
	rows, err := s.client.ModelCallLog.Query().
		Where(modelcalllog.CreatedAtGTE(since)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query call logs: %w", err)
	}

	byTier := make(map[models.Tier]*TierStats)
	order := make([]models.Tier, 0, 5)
	for _, row := range rows {
		tier := models.Tier(row.Tier)
		st, ok := byTier[tier]
		if !ok {
			st = &TierStats{Tier: tier}
			byTier[tier] = st
			order = append(order, tier)
		}
		switch models.CallStatus(row.Status) {
		case models.CallStatusSuccess:
			st.Successes++
		case models.CallStatusFallback:
			st.Fallbacks++
		case models.CallStatusFailed:
			st.Failures++
		}
	}

	stats := make([]TierStats, 0, len(order))
	for _, tier := range order {
		stats = append(stats, *byTier[tier])
	}
	return stats, nil
}

func toCallAttempt(row *ent.ModelCallLog) models.CallAttempt {
	attempt := models.CallAttempt{
		RequestID:    row.RequestID,
		ModelAlias:   row.ModelAlias,
		Tier:         models.Tier(row.Tier),
		Status:       models.CallStatus(row.Status),
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMS:    row.LatencyMs,
	}
	if row.ErrorType != nil {
		attempt.ErrorType = *row.ErrorType
	}
	if row.ErrorMessage != nil {
		attempt.ErrorMessage = *row.ErrorMessage
	}
	if row.FallbackTo != nil {
		attempt.FallbackTo = *row.FallbackTo
	}
	return attempt
}
