package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5148/api", c.APIBaseURL)
	assert.Equal(t, ":8080", c.ListenAddr)
	assert.Equal(t, "portal.db", c.DatabasePath)
	assert.Zero(t, c.RequestTimeout)
	assert.Equal(t, 1500*time.Millisecond, c.RegisterRedirectDelay)
	assert.Equal(t, 1200*time.Millisecond, c.FallbackRedirectDelay)
	assert.False(t, c.StrictOfflineLogin)
	assert.Equal(t, 30*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
}

func TestLoad_NoSourcesKeepsDefaults(t *testing.T) {
	cfg := load(nil)

	require.NotNil(t, cfg)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"api_base_url": "http://from-json/api",
		"listen_addr":  ":7000",
	})

	t.Run("json over defaults", func(t *testing.T) {
		cfg := load([]string{"-c", path})
		assert.Equal(t, "http://from-json/api", cfg.APIBaseURL)
		assert.Equal(t, ":7000", cfg.ListenAddr)
	})

	t.Run("flags over json", func(t *testing.T) {
		cfg := load([]string{"-c", path, "-a", "http://from-flag/api"})
		assert.Equal(t, "http://from-flag/api", cfg.APIBaseURL)
		assert.Equal(t, ":7000", cfg.ListenAddr)
	})

	t.Run("env over flags", func(t *testing.T) {
		t.Setenv("PORTAL_API_BASE", "http://from-env/api")
		cfg := load([]string{"-c", path, "-a", "http://from-flag/api"})
		assert.Equal(t, "http://from-env/api", cfg.APIBaseURL)
		assert.Equal(t, ":7000", cfg.ListenAddr)
	})
}
