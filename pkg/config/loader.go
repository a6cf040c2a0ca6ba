package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// clipdYAMLConfig represents the clipd.yaml file structure.
type clipdYAMLConfig struct {
	Defaults *Defaults `yaml:"defaults"`
}

// modelsYAMLConfig represents the models.yaml file structure.
type modelsYAMLConfig struct {
	Models []CatalogSeedEntry `yaml:"models"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load clipd.yaml (system defaults) and models.yaml (catalog seed)
//  2. Parse YAML into structs
//  3. Apply default values
//  4. Resolve provider credentials from the environment
//  5. Validate the catalog seed
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	var sysCfg clipdYAMLConfig
	if err := loadYAMLInto(filepath.Join(configDir, "clipd.yaml"), &sysCfg); err != nil {
		return nil, fmt.Errorf("failed to load clipd.yaml: %w", err)
	}
	defaults := sysCfg.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	applyDefaults(defaults)

	var modelsCfg modelsYAMLConfig
	if err := loadYAMLInto(filepath.Join(configDir, "models.yaml"), &modelsCfg); err != nil {
		return nil, fmt.Errorf("failed to load models.yaml: %w", err)
	}
	if len(modelsCfg.Models) == 0 {
		return nil, fmt.Errorf("%w: models.yaml defines no models", ErrInvalidConfig)
	}
	if err := validateSeed(modelsCfg.Models); err != nil {
		return nil, err
	}

	creds := LoadProviderCredentials()

	cfg := &Config{
		configDir:   configDir,
		Defaults:    defaults,
		CatalogSeed: modelsCfg.Models,
		Providers:   creds,
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized",
		"seed_models", stats.SeedModels,
		"enabled_providers", stats.EnabledProviders)
	return cfg, nil
}

// loadYAMLInto reads and decodes a YAML file. A missing clipd.yaml is
// tolerated (defaults apply); a missing models.yaml is not, which surfaces
// as the zero-models validation error above.
func loadYAMLInto(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("Config file not found, using defaults", "path", path)
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
