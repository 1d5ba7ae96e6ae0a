package main

import (
	"fmt"

	"golang-trading-insights/internal/insights/config"
	"golang-trading-insights/internal/insights/repository"
	"golang-trading-insights/internal/insights/service"
	"golang-trading-insights/pkg/database"
	"golang-trading-insights/pkg/logger"
	"golang-trading-insights/pkg/redis"
	"golang-trading-insights/pkg/restclient"
)

// app holds the wired services shared by every command.
type app struct {
	cfg      *config.Config
	logger   *logger.Logger
	settings service.SettingsService
	trading  service.TradingService
	bots     service.BotService
	closers  []func()
}

func newApp(path string) (*app, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{cfg: cfg, logger: appLogger}
	a.closers = append(a.closers, func() { _ = appLogger.Sync() })

	prefs, err := a.preferenceRepository()
	if err != nil {
		a.Close()
		return nil, err
	}

	a.settings = service.NewSettingsService(prefs, cfg.Settings.Namespace, cfg.TradingAPI.DefaultBaseURL, appLogger)

	tradingClient := restclient.New(clientConfig("trading-api", cfg.TradingAPI.Client), appLogger)
	botClient := restclient.New(clientConfig("bot-api", cfg.BotAPI.Client), appLogger)

	a.trading = service.NewTradingService(repository.NewTradingAPIRepository(tradingClient, a.settings), appLogger)
	a.bots = service.NewBotService(repository.NewBotAPIRepository(botClient, cfg.BotAPI.BaseURL), service.BotServiceConfig{
		SnapshotTTL:       cfg.Bot.SnapshotTTL,
		RecentTradesLimit: cfg.Bot.RecentTradesLimit,
		EquityInterval:    cfg.Bot.EquityInterval,
		IsPaper:           cfg.Bot.IsPaper,
	}, appLogger)

	return a, nil
}

// preferenceRepository opens the store selected by settings.store.
func (a *app) preferenceRepository() (repository.PreferenceRepository, error) {
	switch a.cfg.Settings.Store {
	case "redis":
		redisClient, err := redis.NewClient(redis.Config{
			Host:     a.cfg.Redis.Host,
			Port:     a.cfg.Redis.Port,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
			PoolSize: a.cfg.Redis.PoolSize,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = redisClient.Close() })
		return repository.NewRedisPreferenceRepository(redisClient.Client), nil
	case "", "database":
		db, err := database.NewDB(database.Config{
			Driver:          a.cfg.Database.Driver,
			Path:            a.cfg.Database.Path,
			Host:            a.cfg.Database.Host,
			Port:            a.cfg.Database.Port,
			User:            a.cfg.Database.User,
			Password:        a.cfg.Database.Password,
			DBName:          a.cfg.Database.DBName,
			SSLMode:         a.cfg.Database.SSLMode,
			TimeZone:        a.cfg.Database.TimeZone,
			MaxIdleConns:    a.cfg.Database.MaxIdleConns,
			MaxOpenConns:    a.cfg.Database.MaxOpenConns,
			ConnMaxLifetime: a.cfg.Database.ConnMaxLifetime,
			LogLevel:        a.cfg.Database.LogLevel,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.closers = append(a.closers, func() { _ = db.Close() })
		return repository.NewPreferenceRepository(db.DB)
	default:
		return nil, fmt.Errorf("unsupported settings store %q", a.cfg.Settings.Store)
	}
}

func clientConfig(name string, c config.HTTPClient) restclient.Config {
	return restclient.Config{
		Name:                name,
		ConnectTimeout:      c.ConnectTimeout,
		ReadTimeout:         c.ReadTimeout,
		WriteTimeout:        c.WriteTimeout,
		Debug:               c.Debug,
		MaxRequestPerMinute: c.MaxRequestPerMinute,
	}
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
