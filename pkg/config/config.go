// Package config loads and validates service configuration: system defaults
// from clipd.yaml, the model catalog seed from models.yaml, and provider
// credentials from the environment.
package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string

	// System-wide defaults and tunables
	Defaults *Defaults

	// Catalog seed entries from models.yaml
	CatalogSeed []CatalogSeedEntry

	// Provider credentials resolved from the environment.
	// Providers without credentials are disabled.
	Providers *ProviderCredentials
}

// Stats contains statistics about loaded configuration
type Stats struct {
	SeedModels       int
	EnabledProviders int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	return Stats{
		SeedModels:       len(c.CatalogSeed),
		EnabledProviders: len(c.Providers.Enabled()),
	}
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
