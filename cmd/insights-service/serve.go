package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	delivery "golang-trading-insights/internal/insights/delivery/http"
	"golang-trading-insights/internal/insights/delivery/poller"
	"golang-trading-insights/internal/insights/presenter"
	"golang-trading-insights/internal/insights/service"
	"golang-trading-insights/pkg/logger"
	"golang-trading-insights/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the insights HTTP service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(configPath)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.Close()
	appLogger := a.logger
	cfg := a.cfg

	appLogger.Info("Starting Insights Service",
		logger.Field("name", cfg.App.Name),
		logger.Field("variant", cfg.App.Env),
		logger.Field("trading_api", a.settings.EffectiveURL(ctx)),
		logger.Field("bot_api", cfg.BotAPI.BaseURL))

	// Long-lived screens, refreshed in the background
	dashboard := presenter.NewDashboardPresenter(ctx, a.trading, appLogger)
	defer dashboard.Close()
	botInsights := presenter.NewBotInsightsPresenter(ctx, a.bots, appLogger)
	defer botInsights.Close()
	dashboard.LoadTickers()
	botInsights.Load()

	screenPoller := poller.NewPoller(appLogger)
	if err := screenPoller.RegisterCronHandler(ctx, dashboard.LoadTickersContext, cfg.Poller.DashboardCron, cfg.Poller.Timeout, "dashboard"); err != nil {
		appLogger.Fatal("Failed to schedule dashboard refresh", logger.ErrorField(err))
	}
	if err := screenPoller.RegisterCronHandler(ctx, botInsights.RefreshContext, cfg.Poller.BotInsightsCron, cfg.Poller.Timeout, "bot_insights"); err != nil {
		appLogger.Fatal("Failed to schedule bot insights refresh", logger.ErrorField(err))
	}
	registerAlerts(ctx, a, screenPoller)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")
	tickerHandler := delivery.NewTickerHandler(a.trading, appLogger)
	tickerHandler.RegisterRoutes(apiV1.Group("/tickers"))
	tickerHandler.RegisterStatusRoutes(apiV1.Group("/status"))

	botHandler := delivery.NewBotHandler(a.bots, appLogger)
	botHandler.RegisterRoutes(apiV1.Group("/bots"))

	settingsHandler := delivery.NewSettingsHandler(a.settings, appLogger)
	settingsHandler.RegisterRoutes(apiV1.Group("/settings"))

	screenHandler := delivery.NewScreenHandler(dashboard, botInsights, appLogger)
	screenHandler.RegisterRoutes(apiV1.Group("/screens"))

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")
	screenPoller.Stop()

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// registerAlerts schedules Telegram bot alerts when a bot token is configured.
func registerAlerts(ctx context.Context, a *app, p *poller.Poller) {
	cfg := a.cfg.Alerts
	if cfg.TelegramBotToken == "" {
		a.logger.Info("Bot alerts disabled, no telegram bot token configured")
		return
	}

	notifier, err := telegram.NewClient(telegram.Config{BotToken: cfg.TelegramBotToken, ChatID: cfg.TelegramChatID})
	if err != nil {
		a.logger.Error("Failed to initialize telegram notifier, bot alerts disabled", logger.ErrorField(err))
		return
	}

	alerts := service.NewAlertService(a.bots, notifier, a.logger)
	check := func(ctx context.Context) {
		if _, err := alerts.Check(ctx); err != nil {
			a.logger.WarnContext(ctx, "Bot alert check failed", logger.ErrorField(err))
		}
	}
	if err := p.RegisterCronHandler(ctx, check, cfg.Cron, a.cfg.Poller.Timeout, "bot_alerts"); err != nil {
		a.logger.Fatal("Failed to schedule bot alerts", logger.ErrorField(err))
	}
}
