// Package config holds the explicit runtime configuration: where the data
// and output directories live and how chatty logging is. Paths are always
// passed in from here — no component keeps process-wide path globals.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces the environment variables, e.g. CHEMIST_DATA_DIR.
const EnvPrefix = "chemist"

// Config is the full runtime configuration.
type Config struct {
	DataDir   string `envconfig:"DATA_DIR" default:"data"`
	OutputDir string `envconfig:"OUTPUT_DIR" default:"output"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// CatalogPath is the medicine catalog CSV.
func (c *Config) CatalogPath() string {
	return filepath.Join(c.DataDir, "store.csv")
}

// CartPath is the cart CSV.
func (c *Config) CartPath() string {
	return filepath.Join(c.DataDir, "cart.csv")
}

// InstructionsPath is the user help text.
func (c *Config) InstructionsPath() string {
	return filepath.Join(c.DataDir, "instructions.txt")
}
