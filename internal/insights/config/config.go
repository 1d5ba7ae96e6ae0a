package config

import (
	"time"

	"golang-trading-insights/pkg/common"
	"golang-trading-insights/pkg/config"
)

// HTTPClient holds the per-backend HTTP client policy.
type HTTPClient struct {
	ConnectTimeout      time.Duration `mapstructure:"connect_timeout"`
	ReadTimeout         time.Duration `mapstructure:"read_timeout"`
	WriteTimeout        time.Duration `mapstructure:"write_timeout"`
	Debug               bool          `mapstructure:"debug"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

// TradingAPI configures the general trading/news backend. DefaultBaseURL is
// used whenever no override is persisted.
type TradingAPI struct {
	DefaultBaseURL string     `mapstructure:"default_base_url"`
	Client         HTTPClient `mapstructure:"client"`
}

// BotAPI configures the bot-telemetry backend. Its URL is never overridden at
// runtime.
type BotAPI struct {
	BaseURL string     `mapstructure:"base_url"`
	Client  HTTPClient `mapstructure:"client"`
}

// Settings selects where the endpoint override is persisted: "database" or
// "redis".
type Settings struct {
	Store     string `mapstructure:"store"`
	Namespace string `mapstructure:"namespace"`
}

// Bot holds bot insight defaults.
type Bot struct {
	SnapshotTTL       time.Duration `mapstructure:"snapshot_ttl"`
	RecentTradesLimit int           `mapstructure:"recent_trades_limit"`
	EquityInterval    string        `mapstructure:"equity_interval"`
	IsPaper           bool          `mapstructure:"is_paper"`
}

// Poller schedules background refreshes of the screen states. Empty cron
// expressions disable the corresponding refresh.
type Poller struct {
	DashboardCron   string        `mapstructure:"dashboard_cron"`
	BotInsightsCron string        `mapstructure:"bot_insights_cron"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// Alerts configures Telegram notifications about bot state transitions. An
// empty bot token or cron expression disables them.
type Alerts struct {
	TelegramBotToken string `mapstructure:"telegram_bot_token"`
	TelegramChatID   int64  `mapstructure:"telegram_chat_id"`
	Cron             string `mapstructure:"cron"`
}

// Config holds the full configuration for the insights service.
type Config struct {
	App        config.App      `mapstructure:"app"`
	Logger     config.Logger   `mapstructure:"logger"`
	Database   config.Database `mapstructure:"database"`
	Redis      config.Redis    `mapstructure:"redis"`
	API        config.API      `mapstructure:"api"`
	Settings   Settings        `mapstructure:"settings"`
	TradingAPI TradingAPI      `mapstructure:"trading_api"`
	BotAPI     BotAPI          `mapstructure:"bot_api"`
	Bot        Bot             `mapstructure:"bot"`
	Poller     Poller          `mapstructure:"poller"`
	Alerts     Alerts          `mapstructure:"alerts"`
}

// Defaults returns the compiled defaults of the current build variant.
func Defaults() map[string]interface{} {
	timeout := time.Duration(common.DefaultTimeoutSeconds) * time.Second
	return map[string]interface{}{
		"app.name":                           "trading-insights",
		"app.env":                            common.BuildVariant,
		"logger.level":                       "info",
		"logger.encoding":                    "json",
		"database.driver":                    "sqlite",
		"database.path":                      "insights.db",
		"redis.host":                         "localhost",
		"redis.port":                         6379,
		"api.port":                           8080,
		"settings.store":                     "database",
		"settings.namespace":                 common.PreferenceNamespaceSettings,
		"trading_api.default_base_url":       common.DefaultAPIBaseURL,
		"trading_api.client.connect_timeout": timeout,
		"trading_api.client.read_timeout":    timeout,
		"trading_api.client.write_timeout":   timeout,
		"trading_api.client.debug":           common.DebugLogging,
		"bot_api.base_url":                   common.DefaultBotAPIURL,
		"bot_api.client.connect_timeout":     timeout,
		"bot_api.client.read_timeout":        timeout,
		"bot_api.client.write_timeout":       timeout,
		"bot_api.client.debug":               common.DebugLogging,
		"bot.recent_trades_limit":            common.DefaultRecentTradesSize,
		"bot.equity_interval":                common.DefaultEquityInterval,
		"bot.is_paper":                       true,
		"poller.timeout":                     timeout,
		"alerts.cron":                        "@every 1m",
	}
}

// Load loads the insights configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, Defaults()); err != nil {
		return nil, err
	}
	return &cfg, nil
}
