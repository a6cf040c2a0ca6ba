package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/services"
)

// QuotaExceededError reports a charge that the remaining balance cannot
// cover. Carries the shortfall for API responses.
type QuotaExceededError struct {
	Needed    int
	Remaining int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded: need %d WTU, %d remaining", e.Needed, e.Remaining)
}

// IsQuotaExceeded reports whether err is a quota rejection and returns it.
func IsQuotaExceeded(err error) (*QuotaExceededError, bool) {
	var qe *QuotaExceededError
	if errors.As(err, &qe) {
		return qe, true
	}
	return nil, false
}

// UsageStore is the persistence surface the accountant needs.
type UsageStore interface {
	Status(ctx context.Context, userID string, planMonth time.Time, defaultQuota int) (*models.UsageStatus, error)
	TryConsume(ctx context.Context, userID string, planMonth time.Time, amount, defaultQuota int) (*models.UsageStatus, error)
	AddQuota(ctx context.Context, userID string, planMonth time.Time, amount int, purchaseType models.PurchaseType, transactionID *string, defaultQuota int) (*models.UsageStatus, error)
	PurchaseHistory(ctx context.Context, userID string, limit int) ([]models.PurchaseEvent, error)
}

// AliasResolver resolves model aliases to catalog entries for pricing.
type AliasResolver interface {
	ByAlias(ctx context.Context, alias string) (models.ModelEntry, error)
}

// Accountant is the single WTU debit/credit path. Every metered LLM call
// charges through it after the provider responds with real token counts.
type Accountant struct {
	store        UsageStore
	catalog      AliasResolver
	defaultQuota int
	now          func() time.Time
}

// NewAccountant creates an Accountant granting defaultQuota WTU per month.
// catalog may be nil; alias-keyed pricing then uses neutral multipliers.
func NewAccountant(store UsageStore, catalog AliasResolver, defaultQuota int) *Accountant {
	return &Accountant{
		store:        store,
		catalog:      catalog,
		defaultQuota: defaultQuota,
		now:          time.Now,
	}
}

// ComputeWTU prices a completed call identified by model alias. An alias
// missing from the catalog is priced at neutral 1.0 multipliers with a
// warning so a stale alias never blocks billing.
func (a *Accountant) ComputeWTU(ctx context.Context, inputTokens, outputTokens int, alias string) int {
	neutral := models.ModelEntry{InputWTUMultiplier: 1.0, OutputWTUMultiplier: 1.0}
	if a.catalog == nil {
		return ComputeWTU(inputTokens, outputTokens, neutral)
	}
	entry, err := a.catalog.ByAlias(ctx, alias)
	if err != nil {
		slog.Warn("Unknown model alias, charging neutral multipliers", "alias", alias, "error", err)
		return ComputeWTU(inputTokens, outputTokens, neutral)
	}
	return ComputeWTU(inputTokens, outputTokens, entry)
}

// Charge computes the WTU cost of a completed call and deducts it from the
// user's current month. Returns the amount charged.
func (a *Accountant) Charge(ctx context.Context, userID string, entry models.ModelEntry, inputTokens, outputTokens int) (int, error) {
	wtu := ComputeWTU(inputTokens, outputTokens, entry)
	if _, err := a.ChargeWTU(ctx, userID, wtu); err != nil {
		return 0, err
	}
	return wtu, nil
}

// ChargeWTU deducts a pre-computed WTU amount.
func (a *Accountant) ChargeWTU(ctx context.Context, userID string, wtu int) (*models.UsageStatus, error) {
	month := PlanMonth(a.now())
	status, err := a.store.TryConsume(ctx, userID, month, wtu, a.defaultQuota)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientQuota) {
			remaining := 0
			if status != nil {
				remaining = status.RemainingWTU
			}
			return nil, &QuotaExceededError{Needed: wtu, Remaining: remaining}
		}
		return nil, fmt.Errorf("failed to charge %d WTU: %w", wtu, err)
	}
	slog.Debug("Charged WTU", "user_id", userID, "wtu", wtu, "remaining", status.RemainingWTU)
	return status, nil
}

// Affordable reports whether the user's remaining balance covers the
// estimate, alongside the quota snapshot behind the answer. Advisory only;
// Charge remains the authority.
func (a *Accountant) Affordable(ctx context.Context, userID string, estimatedWTU int) (*models.UsageStatus, bool, error) {
	status, err := a.Status(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return status, status.RemainingWTU >= estimatedWTU, nil
}

// Status returns the user's current-month quota snapshot.
func (a *Accountant) Status(ctx context.Context, userID string) (*models.UsageStatus, error) {
	return a.store.Status(ctx, userID, PlanMonth(a.now()), a.defaultQuota)
}

// Grant credits tokens to the user's current month and records the purchase.
func (a *Accountant) Grant(ctx context.Context, userID string, amount int, purchaseType models.PurchaseType, transactionID *string) (*models.UsageStatus, error) {
	return a.store.AddQuota(ctx, userID, PlanMonth(a.now()), amount, purchaseType, transactionID, a.defaultQuota)
}

// History returns the user's purchase audit log, newest first.
func (a *Accountant) History(ctx context.Context, userID string, limit int) ([]models.PurchaseEvent, error) {
	return a.store.PurchaseHistory(ctx, userID, limit)
}
