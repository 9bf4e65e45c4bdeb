package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Flywheel holds the remote client settings, read from the environment.
type Flywheel struct {
	// APIKey authenticates against the Flywheel API. Required for live
	// runs; dry-run works without it.
	APIKey string `env:"FW_API_KEY"`

	// APIURL selects the Flywheel instance.
	APIURL string `env:"FW_API_URL" envDefault:"https://api.flywheel.io"`

	// DryRun disables all remote mutations for the whole run. The apply
	// command's --dry-run flag is OR-ed with this.
	DryRun bool `env:"FW_DRY_RUN" envDefault:"false"`

	// Timeout bounds each API call.
	Timeout time.Duration `env:"FW_TIMEOUT" envDefault:"30s"`
}

// FromEnv loads Flywheel settings from environment variables.
func FromEnv() (*Flywheel, error) {
	var cfg Flywheel
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the settings can support a run. dryRun is the
// effective mode after combining the CLI flag with the env setting.
func (c *Flywheel) Validate(dryRun bool) error {
	if !dryRun && c.APIKey == "" {
		return fmt.Errorf("FW_API_KEY is required unless running with --dry-run")
	}
	if c.APIURL == "" {
		return fmt.Errorf("FW_API_URL must not be empty")
	}
	return nil
}
