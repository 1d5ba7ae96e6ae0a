package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"golang-trading-insights/internal/insights/dto"
	"golang-trading-insights/internal/insights/service"
	"golang-trading-insights/pkg/logger"

	"github.com/labstack/echo/v4"
)

// BotHandler handles HTTP requests for bot telemetry.
type BotHandler struct {
	botService service.BotService
	logger     *logger.Logger
}

// NewBotHandler creates a new BotHandler.
func NewBotHandler(botService service.BotService, logger *logger.Logger) *BotHandler {
	return &BotHandler{botService: botService, logger: logger}
}

// RegisterRoutes registers the bot routes to the Echo group.
func (h *BotHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/status", h.GetAllBotStatus)
	g.GET("/status/first", h.GetFirstBotStatus)
	g.GET("/status/symbol/:symbol", h.GetBotStatusBySymbol)
	g.GET("/trades", h.GetTrades)
	g.GET("/performance", h.GetPerformance)
	g.GET("/equity", h.GetEquityCurve)
	g.GET("/config", h.GetConfig)
}

func (h *BotHandler) GetAllBotStatus(c echo.Context) error {
	return respond(c, http.StatusOK, h.botService.AllBotStatus(c.Request().Context()))
}

func (h *BotHandler) GetFirstBotStatus(c echo.Context) error {
	return respond(c, http.StatusOK, h.botService.FirstBotStatus(c.Request().Context()))
}

func (h *BotHandler) GetBotStatusBySymbol(c echo.Context) error {
	return respond(c, http.StatusOK, h.botService.BotStatusBySymbol(c.Request().Context(), c.Param("symbol")))
}

// GetTrades accepts limit, offset, symbol, from, to and is_paper.
func (h *BotHandler) GetTrades(c echo.Context) error {
	var params dto.TradesParams
	var err error
	if params.Limit, err = intParam(c, "limit"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid limit"})
	}
	if params.Offset, err = intParam(c, "offset"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid offset"})
	}
	params.Symbol = c.QueryParam("symbol")
	if params.From, params.To, err = dateRange(c); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if params.IsPaper, err = paperParam(c); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid is_paper"})
	}
	return respond(c, http.StatusOK, h.botService.Trades(c.Request().Context(), params))
}

// GetPerformance returns null when the bot has no trading history yet.
func (h *BotHandler) GetPerformance(c echo.Context) error {
	var params dto.PerformanceParams
	var err error
	if params.From, params.To, err = dateRange(c); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if params.IsPaper, err = paperParam(c); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid is_paper"})
	}
	return respond(c, http.StatusOK, h.botService.Performance(c.Request().Context(), params))
}

func (h *BotHandler) GetEquityCurve(c echo.Context) error {
	params := dto.EquityParams{Interval: c.QueryParam("interval")}
	var err error
	if params.From, params.To, err = dateRange(c); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if params.IsPaper, err = paperParam(c); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid is_paper"})
	}
	return respond(c, http.StatusOK, h.botService.EquityCurve(c.Request().Context(), params))
}

func (h *BotHandler) GetConfig(c echo.Context) error {
	return respond(c, http.StatusOK, h.botService.Config(c.Request().Context()))
}

func intParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func paperParam(c echo.Context) (*bool, error) {
	raw := c.QueryParam("is_paper")
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func dateRange(c echo.Context) (from, to time.Time, err error) {
	if raw := c.QueryParam("from"); raw != "" {
		if from, err = time.Parse("2006-01-02", raw); err != nil {
			return from, to, errors.New("Invalid from date")
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		if to, err = time.Parse("2006-01-02", raw); err != nil {
			return from, to, errors.New("Invalid to date")
		}
	}
	return from, to, nil
}
