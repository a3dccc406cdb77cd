package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/meal-board/internal/config"
)

// clearEnv blanks every variable Load reads so tests start from defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "LOG_LEVEL", "CORS_ORIGINS", "NOTICE_LOCALE", "MAX_BODY_BYTES", "NOTICE_HISTORY"} {
		t.Setenv(key, "")
	}
}

// TestLoad_defaults verifies that every value falls back to its default.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Equal(t, "en", cfg.NoticeLocale)
	require.EqualValues(t, 1<<20, cfg.MaxBodyBytes)
	require.Equal(t, 50, cfg.NoticeHistory)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("NOTICE_LOCALE", "fr")
	t.Setenv("MAX_BODY_BYTES", "4096")
	t.Setenv("NOTICE_HISTORY", "10")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "fr", cfg.NoticeLocale)
	require.EqualValues(t, 4096, cfg.MaxBodyBytes)
	require.Equal(t, 10, cfg.NoticeHistory)
}

// TestLoad_invalidValues verifies that the error names each bad variable.
func TestLoad_invalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "http")
	t.Setenv("MAX_BODY_BYTES", "-1")
	t.Setenv("NOTICE_HISTORY", "lots")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "PORT")
	require.ErrorContains(t, err, "MAX_BODY_BYTES")
	require.ErrorContains(t, err, "NOTICE_HISTORY")
}
