package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simone-trubian/audience-proxy/internal/config"
)

// isolate points the loader at an empty directory and clears every variable it reads.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", dir)
	for _, key := range []string{
		"GEMINI_API_KEY", "GEMINI_BASE_URL", "GEMINI_MODEL", "GEMINI_TIMEOUT", "GEMINI_MOCK",
		"SERVER_PORT", "PORT", "LOG_LEVEL", "LOG_FORMAT", "LOG_DEVELOPMENT",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.Gemini.APIKey)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.Gemini.BaseURL)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.False(t, cfg.Gemini.Mock)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("GEMINI_API_KEY", "  from-env  ")
	t.Setenv("GEMINI_TIMEOUT", "15s")
	t.Setenv("PORT", "3000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Gemini.APIKey)
	assert.Equal(t, 15*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	dir := isolate(t)
	yaml := []byte(`
gemini:
  api_key: from-file
  model: gemini-2.0-flash
log:
  format: console
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ServiceName+".yaml"), yaml, 0o600))
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_RejectsNonPositiveTimeout(t *testing.T) {
	isolate(t)
	t.Setenv("GEMINI_TIMEOUT", "0s")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ServiceName+".yaml"), []byte("gemini: [unclosed"), 0o600))

	_, err := config.Load()
	assert.Error(t, err)
}
