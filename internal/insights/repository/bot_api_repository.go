package repository

import (
	"context"
	"net/http"
	"net/url"

	"golang-trading-insights/internal/entity"
	"golang-trading-insights/internal/insights/dto"
	"golang-trading-insights/pkg/restclient"
)

// BotAPIRepository is the typed client of the bot-telemetry backend.
type BotAPIRepository interface {
	GetBotStatus(ctx context.Context) (*dto.MultiBotStatusResponse, error)
	GetBotConfig(ctx context.Context) (*entity.BotConfig, error)
	GetTrades(ctx context.Context, params dto.TradesParams) (*dto.BotTradesResponse, error)
	GetPerformance(ctx context.Context, params dto.PerformanceParams) (*entity.BotPerformance, error)
	GetEquityCurve(ctx context.Context, params dto.EquityParams) (*dto.BotEquityResponse, error)
}

// NewBotAPIRepository creates a BotAPIRepository bound to a fixed base URL.
func NewBotAPIRepository(client *restclient.Client, baseURL string) BotAPIRepository {
	return &botAPIRepository{client: client, baseURL: baseURL}
}

type botAPIRepository struct {
	client  *restclient.Client
	baseURL string
}

func (r *botAPIRepository) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return r.client.Do(ctx, restclient.Request{
		Method:  http.MethodGet,
		BaseURL: r.baseURL,
		Path:    path,
		Query:   query,
	}, out)
}

func (r *botAPIRepository) GetBotStatus(ctx context.Context) (*dto.MultiBotStatusResponse, error) {
	var out dto.MultiBotStatusResponse
	if err := r.get(ctx, "api/bot/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *botAPIRepository) GetBotConfig(ctx context.Context) (*entity.BotConfig, error) {
	var out entity.BotConfig
	if err := r.get(ctx, "api/bot/config", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *botAPIRepository) GetTrades(ctx context.Context, params dto.TradesParams) (*dto.BotTradesResponse, error) {
	var out dto.BotTradesResponse
	if err := r.get(ctx, "api/bot/trades", params.Query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *botAPIRepository) GetPerformance(ctx context.Context, params dto.PerformanceParams) (*entity.BotPerformance, error) {
	var out entity.BotPerformance
	if err := r.get(ctx, "api/bot/performance", params.Query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *botAPIRepository) GetEquityCurve(ctx context.Context, params dto.EquityParams) (*dto.BotEquityResponse, error) {
	var out dto.BotEquityResponse
	if err := r.get(ctx, "api/bot/equity", params.Query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
