//go:build unit

package config_test

import (
	"testing"
	"time"

	"coffee-verifier/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "test defaults", mutate: func(*config.Config) {}},
		{
			name: "sweep enabled with defaults",
			mutate: func(c *config.Config) {
				c.Sweep.Enabled = true
			},
		},
		{
			name: "disabled sweep ignores its settings",
			mutate: func(c *config.Config) {
				c.Sweep.BatchSize = 0
				c.Sweep.Schedule = "whenever"
			},
		},
		{
			name: "zero sweep batch size",
			mutate: func(c *config.Config) {
				c.Sweep.Enabled = true
				c.Sweep.BatchSize = 0
			},
			wantErr: "SWEEP_BATCH_SIZE",
		},
		{
			name: "negative sweep batch size",
			mutate: func(c *config.Config) {
				c.Sweep.Enabled = true
				c.Sweep.BatchSize = -5
			},
			wantErr: "SWEEP_BATCH_SIZE",
		},
		{
			name: "unparsable sweep schedule",
			mutate: func(c *config.Config) {
				c.Sweep.Enabled = true
				c.Sweep.Schedule = "every minute"
			},
			wantErr: "SWEEP_SCHEDULE",
		},
		{
			name: "http oracle without gateway",
			mutate: func(c *config.Config) {
				c.Oracle.Mode = config.OracleModeHTTP
			},
			wantErr: "ORACLE_GATEWAY_URL",
		},
		{
			name: "unknown oracle mode",
			mutate: func(c *config.Config) {
				c.Oracle.Mode = "chainlink"
			},
			wantErr: "ORACLE_MODE",
		},
		{
			name: "pending window not shorter than force window",
			mutate: func(c *config.Config) {
				c.Verification.PendingWindow = 90 * time.Second
			},
			wantErr: "VERIFICATION_PENDING_WINDOW",
		},
		{
			name: "failure probability above one",
			mutate: func(c *config.Config) {
				c.Verification.FailureProbability = 1.5
			},
			wantErr: "VERIFICATION_FAILURE_PROBABILITY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_RejectsNonPositiveSweepBatchSize(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "coffee")
	t.Setenv("DB_PASSWORD", "coffee")
	t.Setenv("DB_NAME", "coffee")
	t.Setenv("SYNC_TOKEN_SECRET", "secret")
	t.Setenv("SWEEP_ENABLED", "true")
	t.Setenv("SWEEP_BATCH_SIZE", "0")

	_, err := config.LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SWEEP_BATCH_SIZE")
}
