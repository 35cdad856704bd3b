// Package config loads and validates the process-wide configuration. The
// configuration is built once at startup and treated as immutable afterwards;
// handlers receive it explicitly instead of reading ambient globals.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/chkwon/redpen-app/internal/core"
	"github.com/chkwon/redpen-app/internal/logger"
)

// DefaultTriggerPhrases is the built-in ordered phrase list. Earlier entries
// win when more than one phrase could match; the legacy "@redpen check" alias
// stays last.
var DefaultTriggerPhrases = []string{
	"@redpenapp review",
	"@redpen review",
	"@redpen check",
}

// GitHubConfig holds the GitHub App identity and webhook credentials.
type GitHubConfig struct {
	AppID          int64
	WebhookSecret  string
	PrivateKeyPath string
	// BotSuffix marks comment authors that must never trigger a review,
	// which keeps the app from ever reacting to its own comments.
	BotSuffix         string
	DispatchEventType string
	ReactionContent   string
}

// DBConfig holds the optional Postgres settings for the delivery audit log.
type DBConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Enabled reports whether a delivery database has been configured at all.
func (c *DBConfig) Enabled() bool {
	return c != nil && c.Host != ""
}

// Config holds the application's configuration values.
type Config struct {
	ServerPort      string
	Logging         logger.Config
	GitHub          GitHubConfig
	Review          ReviewConfig
	RecorderWorkers int
	Database        *DBConfig
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates required fields. It uses the Viper
// library to handle configuration loading and precedence. An optional
// redpen.yml file may override the trigger vocabulary and default language.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("GITHUB_PRIVATE_KEY_PATH", "keys/redpen-app.private-key.pem")
	v.SetDefault("BOT_LOGIN_SUFFIX", "[bot]")
	v.SetDefault("DISPATCH_EVENT_TYPE", "redpen-review")
	v.SetDefault("REACTION_CONTENT", "rocket")
	v.SetDefault("DEFAULT_LANGUAGE", core.DefaultLanguage)
	v.SetDefault("RECORDER_WORKERS", 2)
	v.SetDefault("REDPEN_CONFIG_PATH", "redpen.yml")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", "5m")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("failed to read .env file, relying on environment only", "error", err)
		}
	}

	if v.GetInt64("GITHUB_APP_ID") == 0 {
		return nil, fmt.Errorf("GITHUB_APP_ID must be set")
	}
	if v.GetString("GITHUB_WEBHOOK_SECRET") == "" {
		return nil, fmt.Errorf("GITHUB_WEBHOOK_SECRET must be set")
	}
	if v.GetString("GITHUB_PRIVATE_KEY_PATH") == "" {
		return nil, fmt.Errorf("GITHUB_PRIVATE_KEY_PATH must be set")
	}

	review := ReviewConfig{
		TriggerPhrases:  DefaultTriggerPhrases,
		DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),
	}
	if phrases := splitPhrases(v.GetString("TRIGGER_PHRASES")); len(phrases) > 0 {
		review.TriggerPhrases = phrases
	}
	if err := applyReviewFile(v.GetString("REDPEN_CONFIG_PATH"), &review); err != nil {
		return nil, err
	}
	if !core.IsSupportedLanguage(review.DefaultLanguage) {
		return nil, fmt.Errorf("unsupported default language %q", review.DefaultLanguage)
	}

	cfg := &Config{
		ServerPort: v.GetString("SERVER_PORT"),
		Logging: logger.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
		GitHub: GitHubConfig{
			AppID:             v.GetInt64("GITHUB_APP_ID"),
			WebhookSecret:     v.GetString("GITHUB_WEBHOOK_SECRET"),
			PrivateKeyPath:    v.GetString("GITHUB_PRIVATE_KEY_PATH"),
			BotSuffix:         v.GetString("BOT_LOGIN_SUFFIX"),
			DispatchEventType: v.GetString("DISPATCH_EVENT_TYPE"),
			ReactionContent:   v.GetString("REACTION_CONTENT"),
		},
		Review:          review,
		RecorderWorkers: v.GetInt("RECORDER_WORKERS"),
	}

	if host := v.GetString("DB_HOST"); host != "" {
		cfg.Database = &DBConfig{
			Host:            host,
			Port:            v.GetInt("DB_PORT"),
			Username:        v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Database:        v.GetString("DB_NAME"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: v.GetDuration("DB_CONN_MAX_IDLE_TIME"),
		}
	}

	return cfg, nil
}

// splitPhrases parses a comma-separated phrase list from the environment,
// dropping empty entries so a trailing comma is harmless.
func splitPhrases(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var phrases []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			phrases = append(phrases, p)
		}
	}
	return phrases
}
