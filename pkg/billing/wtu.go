// Package billing implements weighted token unit (WTU) accounting: the cost
// formula, pre-call estimation and the quota accountant over usage records.
package billing

import (
	"math"
	"time"

	"github.com/clipdock/clipd/pkg/models"
)

// ComputeWTU converts raw token counts into weighted token units using the
// model's per-1000-token multipliers. Any call that touched a model costs at
// least 1 WTU.
func ComputeWTU(inputTokens, outputTokens int, entry models.ModelEntry) int {
	raw := float64(inputTokens)/1000.0*entry.InputWTUMultiplier +
		float64(outputTokens)/1000.0*entry.OutputWTUMultiplier
	wtu := int(math.Ceil(raw))
	if wtu < 1 {
		wtu = 1
	}
	return wtu
}

// PlanMonth truncates t to the first instant of its UTC month. All quota
// rows are keyed by this value.
func PlanMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
