// FILE: internal/config/config.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config carries the shell settings, sourced from ATAXX_* environment
// variables. Command-line flags may override individual fields after Load.
type Config struct {
	Theme       string `env:"ATAXX_THEME" envDefault:"off" validate:"oneof=off brown green gray"`
	Verbose     bool   `env:"ATAXX_VERBOSE" envDefault:"false"`
	LogLevel    string `env:"ATAXX_LOG_LEVEL" envDefault:"warn" validate:"oneof=trace debug info warn error"`
	HistoryFile string `env:"ATAXX_HISTORY_FILE" envDefault:".ataxx_history"`
}

var validate = validator.New()

// Load reads and validates configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate re-checks the config after flag overrides.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
