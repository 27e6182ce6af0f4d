package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokpee/internal/errors"
)

var configKeys = []string{
	"PORT", "GIN_MODE", "MAX_UPLOAD_BYTES", "ADMIN_PORT", "ADMIN_ENABLED",
	"GEMINI_API_KEY", "INSIGHT_MODEL", "ASSISTANT_MODEL", "AI_TIMEOUT", "AI_MAX_CONCURRENT",
	"PROMPTS_DIR", "CATALOG_FILE", "LOG_LEVEL", "LOG_DEVELOPMENT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, int64(50<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, "6060", cfg.Admin.Port)
	assert.True(t, cfg.Admin.Enabled)
	assert.Equal(t, "gemini-3-flash-preview", cfg.AI.InsightModel)
	assert.Equal(t, "gemini-3-pro-preview", cfg.AI.AssistantModel)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 4, cfg.AI.MaxConcurrent)
	assert.False(t, cfg.GenerationEnabled())
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GEMINI_API_KEY", " secret ")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("AI_MAX_CONCURRENT", "2")
	t.Setenv("ADMIN_ENABLED", "false")
	t.Setenv("CATALOG_FILE", "catalog.yaml")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "secret", cfg.AI.GeminiAPIKey)
	assert.True(t, cfg.GenerationEnabled())
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 2, cfg.AI.MaxConcurrent)
	assert.False(t, cfg.Admin.Enabled)
	assert.Equal(t, "catalog.yaml", cfg.Data.CatalogFile)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"MAX_UPLOAD_BYTES", "0"},
		{"AI_MAX_CONCURRENT", "-1"},
		{"AI_TIMEOUT", "-3s"},
		{"LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
