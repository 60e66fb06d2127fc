package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	BotModePolling = "polling"
	BotModeWebhook = "webhook"

	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// bot
	BotMode              string `toml:"bot_mode"`
	WebhookPublicURL     string `toml:"webhook_public_url"`
	SessionStore         string `toml:"session_store"`
	SessionTTLMinutes    int    `toml:"session_ttl_minutes"`
	SessionCacheSizeMB   int    `toml:"session_cache_size_mb"`
	LeaderboardSize      int    `toml:"leaderboard_size"`
	HistorySize          int    `toml:"history_size"`
	UserUpdatesPerMin    int    `toml:"user_updates_per_min"`
	MaxConcurrentUpdates int    `toml:"max_concurrent_updates"`

	// weekly digest
	DigestPaceMillis     int `toml:"digest_pace_ms"`
	DigestTimeoutMinutes int `toml:"digest_timeout_minutes"`
	CronRateLimitPerMin  int `toml:"cron_rate_limit_per_min"`
	AdminRateLimitPerMin int `toml:"admin_rate_limit_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config for env %s: %w", env, err)
	}

	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func (c *Config) DigestPace() time.Duration {
	return time.Duration(c.DigestPaceMillis) * time.Millisecond
}

func (c *Config) DigestTimeout() time.Duration {
	return time.Duration(c.DigestTimeoutMinutes) * time.Minute
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9100
	}
	if c.BotMode == "" {
		c.BotMode = BotModePolling
	}
	if c.SessionStore == "" {
		c.SessionStore = SessionStoreRedis
	}
	if c.SessionTTLMinutes == 0 {
		c.SessionTTLMinutes = 30
	}
	if c.SessionCacheSizeMB == 0 {
		c.SessionCacheSizeMB = 8
	}
	if c.LeaderboardSize == 0 {
		c.LeaderboardSize = 5
	}
	if c.HistorySize == 0 {
		c.HistorySize = 5
	}
	if c.UserUpdatesPerMin == 0 {
		c.UserUpdatesPerMin = 30
	}
	if c.MaxConcurrentUpdates == 0 {
		c.MaxConcurrentUpdates = 16
	}
	if c.DigestPaceMillis == 0 {
		c.DigestPaceMillis = 100
	}
	if c.DigestTimeoutMinutes == 0 {
		c.DigestTimeoutMinutes = 30
	}
	if c.CronRateLimitPerMin == 0 {
		c.CronRateLimitPerMin = 2
	}
	if c.AdminRateLimitPerMin == 0 {
		c.AdminRateLimitPerMin = 30
	}
}

func (c *Config) validate() error {
	switch c.BotMode {
	case BotModePolling:
	case BotModeWebhook:
		if c.WebhookPublicURL == "" {
			return fmt.Errorf("webhook_public_url must be set in %s mode", BotModeWebhook)
		}
	default:
		return fmt.Errorf("unknown bot_mode: %s", c.BotMode)
	}

	switch c.SessionStore {
	case SessionStoreRedis, SessionStoreMemory:
	default:
		return fmt.Errorf("unknown session_store: %s", c.SessionStore)
	}

	return nil
}

// ParseIDList parses a comma separated list of telegram ids, e.g. "123,456".
func ParseIDList(s string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
