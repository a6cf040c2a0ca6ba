package billing

import (
	"sync"

	"github.com/clipdock/clipd/pkg/models"
	"github.com/pkoukk/tiktoken-go"
)

// Estimator predicts token counts before a call is made, for budget checks
// and mode-selection cost estimates. Uses the cl100k_base encoding as a
// provider-neutral approximation.
type Estimator struct {
	once sync.Once
	enc  *tiktoken.Tiktoken
	err  error
}

// NewEstimator creates an Estimator. The encoding is loaded lazily on first
// use because it pulls in the BPE ranks.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// CountTokens returns the token count of text. Falls back to a bytes/4
// heuristic if the encoding cannot be loaded.
func (e *Estimator) CountTokens(text string) int {
	e.once.Do(func() {
		e.enc, e.err = tiktoken.GetEncoding("cl100k_base")
	})
	if e.err != nil || e.enc == nil {
		return len(text) / 4
	}
	return len(e.enc.Encode(text, nil, nil))
}

// EstimateWTU predicts the WTU cost of a call from its prompt text and an
// expected output budget.
func (e *Estimator) EstimateWTU(prompt string, expectedOutputTokens int, entry models.ModelEntry) int {
	return ComputeWTU(e.CountTokens(prompt), expectedOutputTokens, entry)
}

// EstimateMessages sums token counts across chat messages with a small
// per-message framing overhead.
func (e *Estimator) EstimateMessages(messages []models.ChatMessage) int {
	total := 0
	for _, m := range messages {
		total += e.CountTokens(m.Content) + 4
	}
	return total
}
