package http

import (
	"net/http"
	"strconv"

	"golang-trading-insights/internal/insights/dto"
	"golang-trading-insights/internal/insights/service"
	"golang-trading-insights/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TickerHandler handles HTTP requests for tickers and their news.
type TickerHandler struct {
	tradingService service.TradingService
	logger         *logger.Logger
}

// NewTickerHandler creates a new TickerHandler.
func NewTickerHandler(tradingService service.TradingService, logger *logger.Logger) *TickerHandler {
	return &TickerHandler{tradingService: tradingService, logger: logger}
}

// RegisterRoutes registers the ticker routes to the Echo group.
func (h *TickerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListTickers)
	g.POST("", h.AddTicker)
	g.GET("/:symbol", h.GetTicker)
	g.DELETE("/:symbol", h.RemoveTicker)
	g.GET("/:symbol/news", h.GetTickerNews)
	g.GET("/:symbol/sentiment", h.GetTickerSentiment)
	g.POST("/:symbol/fetch", h.FetchNews)
	g.POST("/:symbol/analyze", h.AnalyzeNews)
}

// RegisterStatusRoutes registers the upstream API status route.
func (h *TickerHandler) RegisterStatusRoutes(g *echo.Group) {
	g.GET("", h.GetAPIStatus)
}

func (h *TickerHandler) ListTickers(c echo.Context) error {
	return respond(c, http.StatusOK, h.tradingService.ListTickers(c.Request().Context()))
}

// AddTicker tracks a new ticker. The symbol is upper-cased before it is sent.
func (h *TickerHandler) AddTicker(c echo.Context) error {
	var req dto.TickerCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	var name string
	if req.Name != nil {
		name = *req.Name
	}
	return respond(c, http.StatusCreated, h.tradingService.AddTicker(c.Request().Context(), req.Ticker, name))
}

func (h *TickerHandler) GetTicker(c echo.Context) error {
	return respond(c, http.StatusOK, h.tradingService.GetTicker(c.Request().Context(), c.Param("symbol")))
}

func (h *TickerHandler) RemoveTicker(c echo.Context) error {
	result := h.tradingService.RemoveTicker(c.Request().Context(), c.Param("symbol"))
	if result.IsError() {
		return respond(c, http.StatusOK, result)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetTickerNews accepts optional status and limit query parameters.
func (h *TickerHandler) GetTickerNews(c echo.Context) error {
	params := dto.NewsParams{Status: c.QueryParam("status")}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid limit"})
		}
		params.Limit = limit
	}
	return respond(c, http.StatusOK, h.tradingService.GetTickerNews(c.Request().Context(), c.Param("symbol"), params))
}

func (h *TickerHandler) GetTickerSentiment(c echo.Context) error {
	return respond(c, http.StatusOK, h.tradingService.GetTickerSentiment(c.Request().Context(), c.Param("symbol")))
}

// FetchNews triggers a news fetch for the optional hours window.
func (h *TickerHandler) FetchNews(c echo.Context) error {
	var hours int
	if raw := c.QueryParam("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid hours"})
		}
		hours = parsed
	}
	result := h.tradingService.RefreshTicker(c.Request().Context(), c.Param("symbol"), hours)
	if result.IsError() {
		return respond(c, http.StatusAccepted, result)
	}
	return c.JSON(http.StatusAccepted, dto.ActionResponse{Message: result.Data})
}

func (h *TickerHandler) AnalyzeNews(c echo.Context) error {
	result := h.tradingService.AnalyzeTicker(c.Request().Context(), c.Param("symbol"))
	if result.IsError() {
		return respond(c, http.StatusAccepted, result)
	}
	return c.JSON(http.StatusAccepted, dto.ActionResponse{Message: result.Data})
}

func (h *TickerHandler) GetAPIStatus(c echo.Context) error {
	return respond(c, http.StatusOK, h.tradingService.GetAPIStatus(c.Request().Context()))
}
