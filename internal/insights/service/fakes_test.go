package service

import (
	"context"
	"errors"
	"sync"

	"golang-trading-insights/internal/entity"
	"golang-trading-insights/internal/insights/dto"
)

type memoryPreferences struct {
	mu     sync.Mutex
	values map[string]string
	getErr error
}

func newMemoryPreferences() *memoryPreferences {
	return &memoryPreferences{values: map[string]string{}}
}

func (m *memoryPreferences) Get(_ context.Context, namespace, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[namespace+"/"+key]
	return v, ok, nil
}

func (m *memoryPreferences) Set(_ context.Context, namespace, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[namespace+"/"+key] = value
	return nil
}

func (m *memoryPreferences) Delete(_ context.Context, namespace, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, namespace+"/"+key)
	return nil
}

type fakeTradingRepo struct {
	mu          sync.Mutex
	added       []dto.TickerCreateRequest
	calls       int
	addErr      error
	fetchParams dto.FetchParams
}

func (f *fakeTradingRepo) call() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeTradingRepo) ListTickers(context.Context) (*dto.TickerListResponse, error) {
	f.call()
	return &dto.TickerListResponse{Tickers: []entity.Ticker{{ID: 1, Ticker: "AAPL"}}, Count: 1}, nil
}

func (f *fakeTradingRepo) AddTicker(_ context.Context, req dto.TickerCreateRequest) (*entity.Ticker, error) {
	f.call()
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.added = append(f.added, req)
	return &entity.Ticker{ID: 2, Ticker: req.Ticker, Name: req.Name, IsActive: true}, nil
}

func (f *fakeTradingRepo) RemoveTicker(context.Context, string) error {
	f.call()
	return nil
}

func (f *fakeTradingRepo) GetTicker(_ context.Context, symbol string) (*entity.Ticker, error) {
	f.call()
	return &entity.Ticker{ID: 1, Ticker: symbol}, nil
}

func (f *fakeTradingRepo) GetTickerNews(_ context.Context, symbol string, _ dto.NewsParams) (*dto.NewsListResponse, error) {
	f.call()
	return &dto.NewsListResponse{}, nil
}

func (f *fakeTradingRepo) GetTickerSentiment(_ context.Context, symbol string) (*entity.TickerSentiment, error) {
	f.call()
	return &entity.TickerSentiment{Ticker: symbol}, nil
}

func (f *fakeTradingRepo) TriggerFetch(_ context.Context, _ string, params dto.FetchParams) (*dto.ActionResponse, error) {
	f.call()
	f.fetchParams = params
	return &dto.ActionResponse{}, nil
}

func (f *fakeTradingRepo) TriggerAnalysis(context.Context, string) (*dto.ActionResponse, error) {
	f.call()
	return &dto.ActionResponse{Message: "Analyzing 3 items"}, nil
}

func (f *fakeTradingRepo) GetAPIStatus(context.Context) (*entity.APIStatus, error) {
	f.call()
	return nil, errors.New("unavailable")
}

type fakeBotRepo struct {
	mu          sync.Mutex
	statusCalls int
	bots        []entity.BotStatusDetail
	statusErr   error
	perf        *entity.BotPerformance
	perfErr     error
	trades      []entity.BotTrade
	tradesErr   error
	equity      []entity.EquityDataPoint
	equityErr   error
	tradeParams dto.TradesParams
}

func (f *fakeBotRepo) GetBotStatus(context.Context) (*dto.MultiBotStatusResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls++
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &dto.MultiBotStatusResponse{Bots: f.bots, Count: len(f.bots)}, nil
}

func (f *fakeBotRepo) GetBotConfig(context.Context) (*entity.BotConfig, error) {
	return &entity.BotConfig{}, nil
}

func (f *fakeBotRepo) GetTrades(_ context.Context, params dto.TradesParams) (*dto.BotTradesResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tradeParams = params
	if f.tradesErr != nil {
		return nil, f.tradesErr
	}
	return &dto.BotTradesResponse{Trades: f.trades, Total: len(f.trades)}, nil
}

func (f *fakeBotRepo) GetPerformance(context.Context, dto.PerformanceParams) (*entity.BotPerformance, error) {
	if f.perfErr != nil {
		return nil, f.perfErr
	}
	return f.perf, nil
}

func (f *fakeBotRepo) GetEquityCurve(context.Context, dto.EquityParams) (*dto.BotEquityResponse, error) {
	if f.equityErr != nil {
		return nil, f.equityErr
	}
	return &dto.BotEquityResponse{DataPoints: f.equity, Interval: "daily"}, nil
}

func bot(session, symbol string) entity.BotStatusDetail {
	return entity.BotStatusDetail{SessionID: session, Symbol: &symbol, IsRunning: true}
}
