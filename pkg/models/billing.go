package models

import "time"

// UsageStatus is the point-in-time quota snapshot for one user-month.
type UsageStatus struct {
	UserID         string    `json:"user_id"`
	PlanMonth      time.Time `json:"plan_month"`
	AllocatedQuota int       `json:"allocated_quota"`
	UsedWTU        int       `json:"used_tokens_wtu"`
	RemainingWTU   int       `json:"remaining_tokens"`
	TotalPurchased int       `json:"total_purchased"`
}

// PurchaseType classifies a quota grant.
type PurchaseType string

const (
	PurchaseTypePurchase PurchaseType = "purchase"
	PurchaseTypeBonus    PurchaseType = "bonus"
	PurchaseTypeRefund   PurchaseType = "refund"
)

// PurchaseStatus is the lifecycle state of a purchase event.
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusCompleted PurchaseStatus = "completed"
	PurchaseStatusFailed    PurchaseStatus = "failed"
	PurchaseStatusRefunded  PurchaseStatus = "refunded"
)

// PurchaseEvent is one quota grant in the audit log.
type PurchaseEvent struct {
	PurchaseID    string         `json:"purchase_id"`
	UserID        string         `json:"user_id"`
	PlanMonth     time.Time      `json:"plan_month"`
	TokenAmount   int            `json:"token_amount"`
	PurchaseType  PurchaseType   `json:"purchase_type"`
	Status        PurchaseStatus `json:"status"`
	Currency      string         `json:"currency"`
	TransactionID *string        `json:"transaction_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// CallStatus is the outcome of one model attempt inside a tiered call.
type CallStatus string

const (
	CallStatusSuccess  CallStatus = "success"
	CallStatusFallback CallStatus = "fallback"
	CallStatusFailed   CallStatus = "failed"
)

// CallAttempt is one model attempt recorded by the tiered caller.
type CallAttempt struct {
	RequestID    string     `json:"request_id"`
	ModelAlias   string     `json:"model_alias"`
	Tier         Tier       `json:"tier"`
	Status       CallStatus `json:"status"`
	ErrorType    string     `json:"error_type,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	FallbackTo   string     `json:"fallback_to,omitempty"`
	InputTokens  *int       `json:"input_tokens,omitempty"`
	OutputTokens *int       `json:"output_tokens,omitempty"`
	LatencyMS    int        `json:"latency_ms"`
}
