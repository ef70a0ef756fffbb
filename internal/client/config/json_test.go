package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portal.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	full := writeTempJSON(t, map[string]any{
		"api_base_url":            "http://example:5000/api",
		"listen_addr":             ":9999",
		"database_path":           "state.db",
		"request_timeout":         "10s",
		"register_redirect_delay": "2s",
		"fallback_redirect_delay": 500000000,
		"strict_offline_login":    true,
		"log_level":               "debug",
		"log_format":              "json",
	})

	t.Run("loads every field", func(t *testing.T) {
		cfg := &Config{}
		parseJson(cfg, []string{"-config", full})

		assert.Equal(t, "http://example:5000/api", cfg.APIBaseURL)
		assert.Equal(t, ":9999", cfg.ListenAddr)
		assert.Equal(t, "state.db", cfg.DatabasePath)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 2*time.Second, cfg.RegisterRedirectDelay)
		assert.Equal(t, 500*time.Millisecond, cfg.FallbackRedirectDelay)
		assert.True(t, cfg.StrictOfflineLogin)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, map[string]any{"listen_addr": ":1234"})
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-c", partial})

		assert.Equal(t, ":1234", cfg.ListenAddr)
		assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
		assert.Equal(t, 1500*time.Millisecond, cfg.RegisterRedirectDelay)
	})

	t.Run("no flag no changes", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "keep"}
		parseJson(cfg, nil)
		assert.Equal(t, "keep", cfg.APIBaseURL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", "/nonexistent/portal.json"}) })
	})
}
