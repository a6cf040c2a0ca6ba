package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/clipdock/clipd/pkg/models"
)

// ErrStreamingUnsupported marks providers without a streaming surface.
var ErrStreamingUnsupported = errors.New("streaming is not supported by this provider")

// ErrEmbeddingsUnsupported marks providers without an embeddings surface.
var ErrEmbeddingsUnsupported = errors.New("embeddings are not supported by this provider")

// ProviderError wraps an upstream SDK failure with enough context for
// fallback decisions and call logging.
type ProviderError struct {
	Provider   models.Provider
	Model      string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s/%s: status %d: %v", e.Provider, e.Model, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s/%s: %v", e.Provider, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Type returns a coarse classification string for the call log.
func (e *ProviderError) Type() string {
	switch {
	case e.StatusCode == 429:
		return "rate_limited"
	case e.StatusCode == 401 || e.StatusCode == 403:
		return "auth"
	case e.StatusCode >= 500:
		return "upstream"
	case e.StatusCode >= 400:
		return "bad_request"
	case errors.Is(e.Err, ErrStreamingUnsupported), errors.Is(e.Err, ErrEmbeddingsUnsupported):
		return "unsupported"
	default:
		return "transport"
	}
}

// AttemptFailure summarizes one failed model inside an exhausted tier.
type AttemptFailure struct {
	ModelAlias string
	Err        error
}

// AllProvidersFailedError indicates every model of a tier was tried and all
// failed. The zero-attempt case cannot occur; the catalog rejects empty
// tiers earlier.
type AllProvidersFailedError struct {
	Tier     models.Tier
	Attempts []AttemptFailure
}

func (e *AllProvidersFailedError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.ModelAlias, a.Err))
	}
	return fmt.Sprintf("all models of tier %q failed: %s", e.Tier, strings.Join(parts, "; "))
}
