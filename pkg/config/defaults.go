package config

import "time"

// Defaults contains system-wide default configurations.
// Values are used when requests don't specify their own.
type Defaults struct {
	// Monthly WTU allocation granted to a user on first use in a month
	MonthlyQuotaWTU int `yaml:"monthly_quota_wtu,omitempty"`

	// Summary cache entry lifetime
	CacheTTL time.Duration `yaml:"cache_ttl,omitempty"`

	// Per-LLM-call timeout enforced in the gateway
	LLMCallTimeout time.Duration `yaml:"llm_call_timeout,omitempty"`

	// Number of personalized tags returned by default
	TagCount int `yaml:"tag_count,omitempty"`

	// Personalization scoring weights
	Personalization PersonalizationWeights `yaml:"personalization,omitempty"`

	// Agent session expiry
	SessionMaxAge time.Duration `yaml:"session_max_age,omitempty"`

	// Background janitor cadence (cache sweep, session sweep, embedding
	// backfill)
	JanitorInterval time.Duration `yaml:"janitor_interval,omitempty"`

	// Catalog in-memory snapshot TTL
	CatalogCacheTTL time.Duration `yaml:"catalog_cache_ttl,omitempty"`
}

// PersonalizationWeights are the mixing weights of the candidate re-ranker.
// Norm calibrates the personalization normalizer: log(1+50)*1.0*Norm ≈ 1.
type PersonalizationWeights struct {
	Personalization float64 `yaml:"personalization"`
	Recency         float64 `yaml:"recency"`
	Popularity      float64 `yaml:"popularity"`
	Norm            float64 `yaml:"norm"`
}

// applyDefaults fills zero values with production defaults.
func applyDefaults(d *Defaults) {
	if d.MonthlyQuotaWTU <= 0 {
		d.MonthlyQuotaWTU = 1000
	}
	if d.CacheTTL <= 0 {
		d.CacheTTL = 30 * 24 * time.Hour
	}
	if d.LLMCallTimeout <= 0 {
		d.LLMCallTimeout = 60 * time.Second
	}
	if d.TagCount <= 0 {
		d.TagCount = 5
	}
	if d.Personalization == (PersonalizationWeights{}) {
		d.Personalization = PersonalizationWeights{
			Personalization: 0.5,
			Recency:         0.2,
			Popularity:      0.1,
			Norm:            0.25,
		}
	}
	if d.SessionMaxAge <= 0 {
		d.SessionMaxAge = 24 * time.Hour
	}
	if d.JanitorInterval <= 0 {
		d.JanitorInterval = 15 * time.Minute
	}
	if d.CatalogCacheTTL <= 0 {
		d.CatalogCacheTTL = time.Minute
	}
}
