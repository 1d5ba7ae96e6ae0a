package repository

import (
	"context"
	"net/http"
	"net/url"

	"golang-trading-insights/internal/entity"
	"golang-trading-insights/internal/insights/dto"
	"golang-trading-insights/pkg/restclient"
)

// BaseURLResolver yields the base URL to use for the next request.
type BaseURLResolver interface {
	EffectiveURL(ctx context.Context) string
}

// StaticURL is a BaseURLResolver that never changes.
type StaticURL string

// EffectiveURL returns the fixed URL.
func (u StaticURL) EffectiveURL(context.Context) string { return string(u) }

// TradingAPIRepository is the typed client of the trading/news backend.
type TradingAPIRepository interface {
	ListTickers(ctx context.Context) (*dto.TickerListResponse, error)
	AddTicker(ctx context.Context, req dto.TickerCreateRequest) (*entity.Ticker, error)
	RemoveTicker(ctx context.Context, symbol string) error
	GetTicker(ctx context.Context, symbol string) (*entity.Ticker, error)
	GetTickerNews(ctx context.Context, symbol string, params dto.NewsParams) (*dto.NewsListResponse, error)
	GetTickerSentiment(ctx context.Context, symbol string) (*entity.TickerSentiment, error)
	TriggerFetch(ctx context.Context, symbol string, params dto.FetchParams) (*dto.ActionResponse, error)
	TriggerAnalysis(ctx context.Context, symbol string) (*dto.ActionResponse, error)
	GetAPIStatus(ctx context.Context) (*entity.APIStatus, error)
}

// NewTradingAPIRepository creates a TradingAPIRepository. The base URL is
// resolved again for every request so an override applies without a restart.
func NewTradingAPIRepository(client *restclient.Client, baseURL BaseURLResolver) TradingAPIRepository {
	return &tradingAPIRepository{client: client, baseURL: baseURL}
}

type tradingAPIRepository struct {
	client  *restclient.Client
	baseURL BaseURLResolver
}

func (r *tradingAPIRepository) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	return r.client.Do(ctx, restclient.Request{
		Method:  method,
		BaseURL: r.baseURL.EffectiveURL(ctx),
		Path:    path,
		Query:   query,
		Body:    body,
	}, out)
}

func tickerPath(symbol string, suffix ...string) string {
	p := "api/tickers/" + url.PathEscape(symbol)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

func (r *tradingAPIRepository) ListTickers(ctx context.Context) (*dto.TickerListResponse, error) {
	var out dto.TickerListResponse
	if err := r.do(ctx, http.MethodGet, "api/tickers", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *tradingAPIRepository) AddTicker(ctx context.Context, req dto.TickerCreateRequest) (*entity.Ticker, error) {
	var out entity.Ticker
	if err := r.do(ctx, http.MethodPost, "api/tickers", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *tradingAPIRepository) RemoveTicker(ctx context.Context, symbol string) error {
	return r.do(ctx, http.MethodDelete, tickerPath(symbol), nil, nil, nil)
}

func (r *tradingAPIRepository) GetTicker(ctx context.Context, symbol string) (*entity.Ticker, error) {
	var out entity.Ticker
	if err := r.do(ctx, http.MethodGet, tickerPath(symbol), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *tradingAPIRepository) GetTickerNews(ctx context.Context, symbol string, params dto.NewsParams) (*dto.NewsListResponse, error) {
	var out dto.NewsListResponse
	if err := r.do(ctx, http.MethodGet, tickerPath(symbol, "news"), params.Query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *tradingAPIRepository) GetTickerSentiment(ctx context.Context, symbol string) (*entity.TickerSentiment, error) {
	var out entity.TickerSentiment
	if err := r.do(ctx, http.MethodGet, tickerPath(symbol, "sentiment"), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *tradingAPIRepository) TriggerFetch(ctx context.Context, symbol string, params dto.FetchParams) (*dto.ActionResponse, error) {
	var out dto.ActionResponse
	if err := r.do(ctx, http.MethodPost, tickerPath(symbol, "fetch"), params.Query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *tradingAPIRepository) TriggerAnalysis(ctx context.Context, symbol string) (*dto.ActionResponse, error) {
	var out dto.ActionResponse
	if err := r.do(ctx, http.MethodPost, tickerPath(symbol, "analyze"), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *tradingAPIRepository) GetAPIStatus(ctx context.Context) (*entity.APIStatus, error) {
	var out entity.APIStatus
	if err := r.do(ctx, http.MethodGet, "api/status", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
