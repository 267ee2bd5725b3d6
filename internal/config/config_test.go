package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "petbuddy", cfg.AppName)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "petbuddy_session", cfg.Session.CookieName)
	assert.Equal(t, "", cfg.Content.ReferenceDataPath)
	assert.Equal(t, "json", cfg.Logger.Encoding)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL", "90")
	t.Setenv("SESSION_SWEEP_INTERVAL", "5s")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("REFERENCE_DATA_PATH", "/etc/petbuddy/data.yaml")
	t.Setenv("SERVER_MAX_CONN", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 90*time.Second, cfg.Session.TTL)
	assert.Equal(t, 5*time.Second, cfg.Session.SweepInterval)
	assert.True(t, cfg.Session.CookieSecure)
	assert.Equal(t, "/etc/petbuddy/data.yaml", cfg.Content.ReferenceDataPath)
	assert.Zero(t, cfg.HTTP.MaxConn, "unparsable values fall back")
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "-1s")

	_, err := Load()
	assert.Error(t, err)
}
