package http

import (
	"net/http"

	"golang-trading-insights/internal/insights/presenter"
	"golang-trading-insights/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ScreenHandler exposes the long-lived screen states kept fresh by the poller.
type ScreenHandler struct {
	dashboard   *presenter.DashboardPresenter
	botInsights *presenter.BotInsightsPresenter
	logger      *logger.Logger
}

// NewScreenHandler creates a new ScreenHandler.
func NewScreenHandler(dashboard *presenter.DashboardPresenter, botInsights *presenter.BotInsightsPresenter, logger *logger.Logger) *ScreenHandler {
	return &ScreenHandler{dashboard: dashboard, botInsights: botInsights, logger: logger}
}

// RegisterRoutes registers the screen routes to the Echo group.
func (h *ScreenHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard", h.GetDashboard)
	g.POST("/dashboard/reload", h.ReloadDashboard)
	g.GET("/bot-insights", h.GetBotInsights)
	g.POST("/bot-insights/refresh", h.RefreshBotInsights)
	g.PUT("/bot-insights/selection/:session_id", h.SelectBot)
}

func (h *ScreenHandler) GetDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.State().Value())
}

func (h *ScreenHandler) ReloadDashboard(c echo.Context) error {
	h.dashboard.LoadTickersContext(c.Request().Context())
	return c.JSON(http.StatusOK, h.dashboard.State().Value())
}

func (h *ScreenHandler) GetBotInsights(c echo.Context) error {
	return c.JSON(http.StatusOK, h.botInsights.State().Value())
}

func (h *ScreenHandler) RefreshBotInsights(c echo.Context) error {
	h.botInsights.RefreshContext(c.Request().Context())
	return c.JSON(http.StatusOK, h.botInsights.State().Value())
}

// SelectBot switches the selected bot within the current snapshot.
func (h *ScreenHandler) SelectBot(c echo.Context) error {
	if err := h.botInsights.SelectBot(c.Param("session_id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.botInsights.State().Value())
}
