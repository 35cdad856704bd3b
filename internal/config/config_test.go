package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets the minimum environment LoadConfig accepts and points
// the working directory at an empty temp dir so no stray .env or redpen.yml
// leaks into the test.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("GITHUB_APP_ID", "12345")
	t.Setenv("GITHUB_WEBHOOK_SECRET", "hunter2")
	t.Setenv("TRIGGER_PHRASES", "")
	t.Setenv("DEFAULT_LANGUAGE", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("REDPEN_CONFIG_PATH", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, int64(12345), cfg.GitHub.AppID)
	assert.Equal(t, "hunter2", cfg.GitHub.WebhookSecret)
	assert.Equal(t, "[bot]", cfg.GitHub.BotSuffix)
	assert.Equal(t, "redpen-review", cfg.GitHub.DispatchEventType)
	assert.Equal(t, "rocket", cfg.GitHub.ReactionContent)
	assert.Equal(t, DefaultTriggerPhrases, cfg.Review.TriggerPhrases)
	assert.Equal(t, "en", cfg.Review.DefaultLanguage)
	assert.False(t, cfg.Database.Enabled())
}

func TestLoadConfigMissingAppID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GITHUB_APP_ID", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "GITHUB_APP_ID")
}

func TestLoadConfigMissingWebhookSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GITHUB_WEBHOOK_SECRET", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "GITHUB_WEBHOOK_SECRET")
}

func TestLoadConfigPhrasesFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TRIGGER_PHRASES", "@bot review, @bot check ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"@bot review", "@bot check"}, cfg.Review.TriggerPhrases)
}

func TestLoadConfigUnsupportedDefaultLanguage(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DEFAULT_LANGUAGE", "xx")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "unsupported default language")
}

func TestLoadConfigReviewFileOverlay(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "redpen.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"trigger_phrases:\n  - \"@custom review\"\ndefault_language: ko\n"), 0600))
	t.Setenv("REDPEN_CONFIG_PATH", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"@custom review"}, cfg.Review.TriggerPhrases)
	assert.Equal(t, "ko", cfg.Review.DefaultLanguage)
}

func TestLoadConfigReviewFileUnparsable(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "redpen.yml")
	require.NoError(t, os.WriteFile(path, []byte("trigger_phrases: ["), 0600))
	t.Setenv("REDPEN_CONFIG_PATH", path)

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "failed to parse")
}

func TestLoadConfigDatabase(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "redpen")
	t.Setenv("DB_NAME", "redpen")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.Database.Enabled())
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "redpen", cfg.Database.Username)
}
