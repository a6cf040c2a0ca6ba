package config

import (
	"os"

	"github.com/clipdock/clipd/pkg/models"
)

// ProviderCredentials holds per-provider API access resolved from the
// environment at startup. A provider with an empty key is disabled and its
// catalog models are skipped during fallback iteration.
type ProviderCredentials struct {
	OpenAIAPIKey     string
	AnthropicAPIKey  string
	GoogleAPIKey     string
	PerplexityAPIKey string

	// Optional endpoint overrides (OpenAI-compatible gateways, proxies)
	OpenAIBaseURL     string
	GoogleBaseURL     string
	PerplexityBaseURL string
}

// LoadProviderCredentials reads provider API keys and endpoint overrides
// from the environment.
func LoadProviderCredentials() *ProviderCredentials {
	return &ProviderCredentials{
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		GoogleAPIKey:      os.Getenv("GOOGLE_API_KEY"),
		PerplexityAPIKey:  os.Getenv("PERPLEXITY_API_KEY"),
		OpenAIBaseURL:     os.Getenv("OPENAI_BASE_URL"),
		GoogleBaseURL:     getEnvOrDefault("GOOGLE_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		PerplexityBaseURL: getEnvOrDefault("PERPLEXITY_BASE_URL", "https://api.perplexity.ai"),
	}
}

// Has reports whether credentials exist for the given provider.
func (p *ProviderCredentials) Has(provider models.Provider) bool {
	switch provider {
	case models.ProviderOpenAI:
		return p.OpenAIAPIKey != ""
	case models.ProviderAnthropic:
		return p.AnthropicAPIKey != ""
	case models.ProviderGoogle:
		return p.GoogleAPIKey != ""
	case models.ProviderPerplexity:
		return p.PerplexityAPIKey != ""
	}
	return false
}

// Enabled returns the providers that have credentials.
func (p *ProviderCredentials) Enabled() []models.Provider {
	all := []models.Provider{
		models.ProviderOpenAI,
		models.ProviderAnthropic,
		models.ProviderGoogle,
		models.ProviderPerplexity,
	}
	enabled := make([]models.Provider, 0, len(all))
	for _, prov := range all {
		if p.Has(prov) {
			enabled = append(enabled, prov)
		}
	}
	return enabled
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
