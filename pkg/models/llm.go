// Package models contains shared data transfer types used across the
// service layers: LLM wire types, catalog entries, execution plans and
// routing results.
package models

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is a single message in an LLM conversation.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleSystem, Content: content}
}

// UserMessage builds a user-role message.
func UserMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content}
}

// LLMResult is the outcome of a single completion call.
type LLMResult struct {
	Content      string `json:"content"`
	ModelAlias   string `json:"model_alias"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	FinishReason string `json:"finish_reason,omitempty"`
}

// Tier is a capability class used by callers in place of model names.
type Tier string

const (
	TierLight     Tier = "light"
	TierStandard  Tier = "standard"
	TierPremium   Tier = "premium"
	TierSearch    Tier = "search"
	TierEmbedding Tier = "embedding"
)

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	switch t {
	case TierLight, TierStandard, TierPremium, TierSearch, TierEmbedding:
		return true
	}
	return false
}

// Provider identifies an upstream LLM vendor.
type Provider string

const (
	ProviderOpenAI     Provider = "openai"
	ProviderAnthropic  Provider = "anthropic"
	ProviderGoogle     Provider = "google"
	ProviderPerplexity Provider = "perplexity"
)

// ModelEntry is a catalog row resolved into memory. Iteration order within a
// tier (SortOrder, then Alias) defines the fallback sequence.
type ModelEntry struct {
	Alias                 string   `json:"alias"`
	Provider              Provider `json:"provider"`
	ModelName             string   `json:"model_name"`
	Tier                  Tier     `json:"tier"`
	InputWTUMultiplier    float64  `json:"input_wtu_multiplier"`
	OutputWTUMultiplier   float64  `json:"output_wtu_multiplier"`
	IsActive              bool     `json:"is_active"`
	PriceInputPerMillion  *float64 `json:"price_input_per_million,omitempty"`
	PriceOutputPerMillion *float64 `json:"price_output_per_million,omitempty"`
	SortOrder             int      `json:"sort_order"`
	EmbeddingDims         *int     `json:"embedding_dims,omitempty"`
}
