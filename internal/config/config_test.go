package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HOST", "PORT", "ENV", "LOG_LEVEL", "MAX_LENGTH",
		"COPIED_RESET_DELAY", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, crypto.MaxLength, cfg.MaxLength)
	assert.Equal(t, 2*time.Second, cfg.CopiedResetDelay)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_LENGTH", "256")
	t.Setenv("COPIED_RESET_DELAY", "500ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 256, cfg.MaxLength)
	assert.Equal(t, 500*time.Millisecond, cfg.CopiedResetDelay)
	assert.NotNil(t, cfg.NewLogger())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric max length", "MAX_LENGTH", "lots"},
		{"max length above ceiling", "MAX_LENGTH", "5000"},
		{"zero max length", "MAX_LENGTH", "0"},
		{"bad duration", "COPIED_RESET_DELAY", "soon"},
		{"unknown env", "ENV", "staging"},
		{"bad log level", "LOG_LEVEL", "loud"},
		{"non-numeric port", "PORT", "http"},
		{"zero rps", "RATE_LIMIT_RPS", "0"},
		{"bad burst", "RATE_LIMIT_BURST", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
