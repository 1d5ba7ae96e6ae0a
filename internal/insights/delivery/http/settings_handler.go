package http

import (
	"net/http"

	"golang-trading-insights/internal/insights/dto"
	"golang-trading-insights/internal/insights/service"
	"golang-trading-insights/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SettingsHandler handles HTTP requests for the endpoint configuration.
type SettingsHandler struct {
	settingsService service.SettingsService
	logger          *logger.Logger
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, logger: logger}
}

// RegisterRoutes registers the settings routes to the Echo group.
func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/api-url", h.GetAPIURL)
	g.PUT("/api-url", h.SetAPIURL)
	g.DELETE("/api-url", h.ResetAPIURL)
}

func (h *SettingsHandler) current(c echo.Context) dto.APIURLResponse {
	ctx := c.Request().Context()
	return dto.APIURLResponse{
		EffectiveURL:   h.settingsService.EffectiveURL(ctx),
		DefaultURL:     h.settingsService.DefaultURL(),
		OverrideActive: h.settingsService.IsOverrideActive(ctx),
	}
}

func (h *SettingsHandler) GetAPIURL(c echo.Context) error {
	return c.JSON(http.StatusOK, h.current(c))
}

// SetAPIURL overrides the trading API base URL.
func (h *SettingsHandler) SetAPIURL(c echo.Context) error {
	var req dto.SetAPIURLRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if err := h.settingsService.SetOverride(c.Request().Context(), req.URL); err != nil {
		if service.IsValidation(err) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": service.UserMessage(err)})
		}
		h.logger.Error("Failed to save endpoint override", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to save: " + err.Error()})
	}
	return c.JSON(http.StatusOK, h.current(c))
}

// ResetAPIURL reverts to the compiled default.
func (h *SettingsHandler) ResetAPIURL(c echo.Context) error {
	if err := h.settingsService.ClearOverride(c.Request().Context()); err != nil {
		h.logger.Error("Failed to reset endpoint override", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to reset: " + err.Error()})
	}
	return c.JSON(http.StatusOK, h.current(c))
}
