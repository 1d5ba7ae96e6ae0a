package presenter

import (
	"context"
	"errors"
	"sync"

	"golang-trading-insights/internal/entity"
	"golang-trading-insights/internal/insights/dto"
	"golang-trading-insights/internal/insights/service"
	"golang-trading-insights/pkg/restclient"
)

var errNetwork = &restclient.TransportError{Method: "GET", URL: "http://api", Err: errors.New("connection refused")}

type fakeTrading struct {
	mu          sync.Mutex
	tickers     []entity.Ticker
	listErr     error
	removeErr   error
	tickerErr   error
	newsErr     error
	added       []string
	listCalls   int
	detailCalls int
	block       chan struct{}
}

func (f *fakeTrading) ListTickers(ctx context.Context) service.Result[[]entity.Ticker] {
	f.mu.Lock()
	f.listCalls++
	f.mu.Unlock()
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return service.FromError[[]entity.Ticker](ctx.Err())
		}
	}
	if f.listErr != nil {
		return service.FromError[[]entity.Ticker](f.listErr)
	}
	return service.Success(f.tickers)
}

func (f *fakeTrading) AddTicker(ctx context.Context, symbol, name string) service.Result[*entity.Ticker] {
	f.mu.Lock()
	f.added = append(f.added, symbol)
	f.mu.Unlock()
	return service.Success(&entity.Ticker{ID: 9, Ticker: symbol})
}

func (f *fakeTrading) RemoveTicker(ctx context.Context, symbol string) service.Result[struct{}] {
	if f.removeErr != nil {
		return service.FromError[struct{}](f.removeErr)
	}
	return service.Success(struct{}{})
}

func (f *fakeTrading) GetTicker(ctx context.Context, symbol string) service.Result[*entity.Ticker] {
	f.mu.Lock()
	f.detailCalls++
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return service.FromError[*entity.Ticker](err)
	}
	if f.tickerErr != nil {
		return service.FromError[*entity.Ticker](f.tickerErr)
	}
	return service.Success(&entity.Ticker{ID: 1, Ticker: symbol})
}

func (f *fakeTrading) GetTickerNews(ctx context.Context, symbol string, params dto.NewsParams) service.Result[*dto.NewsListResponse] {
	if f.newsErr != nil {
		return service.FromError[*dto.NewsListResponse](f.newsErr)
	}
	return service.Success(&dto.NewsListResponse{
		News:          []entity.NewsItem{{ID: 1, Ticker: symbol, Title: "Earnings beat", Status: "pending"}},
		Count:         1,
		PendingCount:  1,
		AnalyzedCount: 0,
	})
}

func (f *fakeTrading) GetTickerSentiment(ctx context.Context, symbol string) service.Result[*entity.TickerSentiment] {
	return service.Success(&entity.TickerSentiment{Ticker: symbol})
}

func (f *fakeTrading) RefreshTicker(ctx context.Context, symbol string, hours int) service.Result[string] {
	return service.Success("Fetched 4 articles")
}

func (f *fakeTrading) AnalyzeTicker(ctx context.Context, symbol string) service.Result[string] {
	return service.FromError[string](&restclient.HTTPStatusError{StatusCode: 429, Message: "Gemini cooldown"})
}

func (f *fakeTrading) GetAPIStatus(ctx context.Context) service.Result[*entity.APIStatus] {
	return service.FromError[*entity.APIStatus](errNetwork)
}

type fakeBots struct {
	mu       sync.Mutex
	results  []service.Result[*service.BotInsights]
	sessions []string
	release  chan struct{}
}

func (f *fakeBots) Insights(ctx context.Context, params service.InsightsParams) service.Result[*service.BotInsights] {
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
		}
	}
	if err := ctx.Err(); err != nil {
		return service.FromError[*service.BotInsights](&restclient.TransportError{Method: "GET", URL: "http://bot/api/bot/status", Err: err})
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, params.SessionID)
	next := f.results[0]
	if len(f.results) > 1 {
		f.results = f.results[1:]
	}
	return next
}

func (f *fakeBots) AllBotStatus(context.Context) service.Result[*dto.MultiBotStatusResponse] {
	return service.Loading[*dto.MultiBotStatusResponse]()
}

func (f *fakeBots) Trades(context.Context, dto.TradesParams) service.Result[*dto.BotTradesResponse] {
	return service.Loading[*dto.BotTradesResponse]()
}

func (f *fakeBots) Performance(context.Context, dto.PerformanceParams) service.Result[*entity.BotPerformance] {
	return service.Loading[*entity.BotPerformance]()
}

func (f *fakeBots) EquityCurve(context.Context, dto.EquityParams) service.Result[*dto.BotEquityResponse] {
	return service.Loading[*dto.BotEquityResponse]()
}

func (f *fakeBots) Config(context.Context) service.Result[*entity.BotConfig] {
	return service.Loading[*entity.BotConfig]()
}

func (f *fakeBots) FirstBotStatus(context.Context) service.Result[*entity.BotStatusDetail] {
	return service.Loading[*entity.BotStatusDetail]()
}

func (f *fakeBots) BotStatusBySymbol(context.Context, string) service.Result[*entity.BotStatusDetail] {
	return service.Loading[*entity.BotStatusDetail]()
}

func (f *fakeBots) Select(bots []entity.BotStatusDetail, sessionID string) *entity.BotStatusDetail {
	return service.FirstBotPolicy(bots)
}

type memoryPreferences struct {
	mu     sync.Mutex
	values map[string]string
	setErr error
}

func (m *memoryPreferences) Get(_ context.Context, namespace, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[namespace+"/"+key]
	return v, ok, nil
}

func (m *memoryPreferences) Set(_ context.Context, namespace, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.values[namespace+"/"+key] = value
	return nil
}

func (m *memoryPreferences) Delete(_ context.Context, namespace, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, namespace+"/"+key)
	return nil
}

func botNamed(session, symbol string) entity.BotStatusDetail {
	return entity.BotStatusDetail{SessionID: session, Symbol: &symbol, IsRunning: true}
}
