package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clipdock/clipd/ent"
	"github.com/clipdock/clipd/ent/purchaseevent"
	"github.com/clipdock/clipd/ent/usagerecord"
	"github.com/clipdock/clipd/pkg/models"
	"github.com/google/uuid"
)

// ErrInsufficientQuota indicates a consume attempt exceeding the remaining
// monthly balance. The returned status carries the remaining amount.
var ErrInsufficientQuota = errors.New("insufficient quota")

// UsageService owns the usage_records and purchase_events tables.
//
// All balance mutations run inside a transaction with a SELECT ... FOR UPDATE
// row lock, so concurrent consumes against the same user-month serialize and
// remaining_tokens never goes negative.
type UsageService struct {
	client *ent.Client
}

// NewUsageService creates a new UsageService.
func NewUsageService(client *ent.Client) *UsageService {
	return &UsageService{client: client}
}

// Status returns the user's quota snapshot for the given month, creating the
// row with the default allocation on first touch.
func (s *UsageService) Status(ctx context.Context, userID string, planMonth time.Time, defaultQuota int) (*models.UsageStatus, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "is required")
	}
	if err := s.ensureRecord(ctx, userID, planMonth, defaultQuota); err != nil {
		return nil, err
	}
	row, err := s.client.UsageRecord.Query().
		Where(usagerecord.UserID(userID), usagerecord.PlanMonth(planMonth)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load usage record: %w", err)
	}
	return toUsageStatus(row), nil
}

// TryConsume atomically deducts amount WTU from the user's remaining balance.
// On success the updated snapshot is returned. If the balance is short no
// mutation happens and the error wraps ErrInsufficientQuota, with the current
// snapshot returned alongside so callers can report the shortfall.
func (s *UsageService) TryConsume(ctx context.Context, userID string, planMonth time.Time, amount, defaultQuota int) (*models.UsageStatus, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "is required")
	}
	if amount <= 0 {
		return nil, NewValidationError("amount", "must be positive")
	}
	if err := s.ensureRecord(ctx, userID, planMonth, defaultQuota); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.UsageRecord.Query().
		Where(usagerecord.UserID(userID), usagerecord.PlanMonth(planMonth)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock usage record: %w", err)
	}

	if row.RemainingTokens < amount {
		return toUsageStatus(row), fmt.Errorf("%w: need %d, have %d", ErrInsufficientQuota, amount, row.RemainingTokens)
	}

	updated, err := row.Update().
		SetUsedTokensWtu(row.UsedTokensWtu + amount).
		SetRemainingTokens(row.RemainingTokens - amount).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update usage record: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit usage update: %w", err)
	}
	return toUsageStatus(updated), nil
}

// AddQuota credits tokens to the user's month and records the grant in the
// purchase audit log, in one transaction.
func (s *UsageService) AddQuota(ctx context.Context, userID string, planMonth time.Time, amount int, purchaseType models.PurchaseType, transactionID *string, defaultQuota int) (*models.UsageStatus, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "is required")
	}
	if amount <= 0 {
		return nil, NewValidationError("amount", "must be positive")
	}
	if err := s.ensureRecord(ctx, userID, planMonth, defaultQuota); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.UsageRecord.Query().
		Where(usagerecord.UserID(userID), usagerecord.PlanMonth(planMonth)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock usage record: %w", err)
	}

	updated, err := row.Update().
		SetAllocatedQuota(row.AllocatedQuota + amount).
		SetRemainingTokens(row.RemainingTokens + amount).
		SetTotalPurchased(row.TotalPurchased + amount).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update usage record: %w", err)
	}

	err = tx.PurchaseEvent.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetPlanMonth(planMonth).
		SetTokenAmount(amount).
		SetPurchaseType(purchaseevent.PurchaseType(purchaseType)).
		SetStatus(purchaseevent.StatusCompleted).
		SetNillableTransactionID(transactionID).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record purchase event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit quota grant: %w", err)
	}
	return toUsageStatus(updated), nil
}

// PurchaseHistory returns the user's quota grants, newest first.
func (s *UsageService) PurchaseHistory(ctx context.Context, userID string, limit int) ([]models.PurchaseEvent, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "is required")
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.client.PurchaseEvent.Query().
		Where(purchaseevent.UserID(userID)).
		Order(ent.Desc(purchaseevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase events: %w", err)
	}
	events := make([]models.PurchaseEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, models.PurchaseEvent{
			PurchaseID:    row.ID,
			UserID:        row.UserID,
			PlanMonth:     row.PlanMonth,
			TokenAmount:   row.TokenAmount,
			PurchaseType:  models.PurchaseType(row.PurchaseType),
			Status:        models.PurchaseStatus(row.Status),
			Currency:      row.Currency,
			TransactionID: row.TransactionID,
			CreatedAt:     row.CreatedAt,
		})
	}
	return events, nil
}

// ensureRecord creates the month's row with the default allocation if it does
// not exist yet. The conflict target makes concurrent first touches converge
// on a single row.
func (s *UsageService) ensureRecord(ctx context.Context, userID string, planMonth time.Time, defaultQuota int) error {
	err := s.client.UsageRecord.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetPlanMonth(planMonth).
		SetAllocatedQuota(defaultQuota).
		SetRemainingTokens(defaultQuota).
		OnConflictColumns(usagerecord.FieldUserID, usagerecord.FieldPlanMonth).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure usage record: %w", err)
	}
	return nil
}

func toUsageStatus(row *ent.UsageRecord) *models.UsageStatus {
	return &models.UsageStatus{
		UserID:         row.UserID,
		PlanMonth:      row.PlanMonth,
		AllocatedQuota: row.AllocatedQuota,
		UsedWTU:        row.UsedTokensWtu,
		RemainingWTU:   row.RemainingTokens,
		TotalPurchased: row.TotalPurchased,
	}
}
