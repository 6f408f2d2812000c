package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 15, cfg.ReadTimeout)
	assert.Equal(t, 15, cfg.WriteTimeout)
	assert.Equal(t, "Slack Notification", cfg.SlackTitle)
	assert.Empty(t, cfg.GotifyURL)
	assert.Empty(t, cfg.GotifyToken)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PANOPTIKAUTH_SERVER_PORT", "9090")
	t.Setenv("PANOPTIKAUTH_GOTIFY_URL", "http://gotify.local:8080")
	t.Setenv("PANOPTIKAUTH_GOTIFY_TOKEN", "app-token")
	t.Setenv("PANOPTIKAUTH_SLACK_TOKEN", "slack-token")
	t.Setenv("PANOPTIKAUTH_SLACK_TITLE", "Team Chat")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "http://gotify.local:8080", cfg.GotifyURL)
	assert.Equal(t, "app-token", cfg.GotifyToken)
	assert.Equal(t, "slack-token", cfg.SlackToken)
	assert.Equal(t, "Team Chat", cfg.SlackTitle)
}

func TestLoadRejectsInvalidURL(t *testing.T) {
	t.Setenv("PANOPTIKAUTH_GOTIFY_URL", "not a url")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}
