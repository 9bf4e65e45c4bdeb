package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("FW_API_KEY", "")
	t.Setenv("FW_API_URL", "")
	t.Setenv("FW_DRY_RUN", "")
	t.Setenv("FW_TIMEOUT", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "https://api.flywheel.io", cfg.APIURL)
	assert.False(t, cfg.DryRun)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("FW_API_KEY", "secret")
	t.Setenv("FW_API_URL", "https://nacc.flywheel.io")
	t.Setenv("FW_DRY_RUN", "true")
	t.Setenv("FW_TIMEOUT", "5s")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "https://nacc.flywheel.io", cfg.APIURL)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Flywheel
		dryRun  bool
		wantErr string
	}{
		{
			name:   "live run with key",
			cfg:    Flywheel{APIKey: "secret", APIURL: "https://api.flywheel.io"},
			dryRun: false,
		},
		{
			name:    "live run without key",
			cfg:     Flywheel{APIURL: "https://api.flywheel.io"},
			dryRun:  false,
			wantErr: "FW_API_KEY",
		},
		{
			name:   "dry run without key",
			cfg:    Flywheel{APIURL: "https://api.flywheel.io"},
			dryRun: true,
		},
		{
			name:    "empty URL",
			cfg:     Flywheel{APIKey: "secret"},
			dryRun:  false,
			wantErr: "FW_API_URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate(tt.dryRun)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
