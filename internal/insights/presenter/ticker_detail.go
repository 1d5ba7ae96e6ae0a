package presenter

import (
	"context"

	"golang-trading-insights/internal/entity"
	"golang-trading-insights/internal/insights/dto"
	"golang-trading-insights/internal/insights/service"
	"golang-trading-insights/pkg/logger"
)

const (
	slotTicker    = "ticker"
	slotNews      = "news"
	slotAPIStatus = "api_status"
)

// TickerDetailState is the ticker detail screen.
type TickerDetailState struct {
	IsLoading     bool              `json:"is_loading"`
	Ticker        *entity.Ticker    `json:"ticker"`
	News          []entity.NewsItem `json:"news"`
	PendingCount  int               `json:"pending_count"`
	AnalyzedCount int               `json:"analyzed_count"`
	Error         string            `json:"error,omitempty"`
	IsFetching    bool              `json:"is_fetching"`
	IsAnalyzing   bool              `json:"is_analyzing"`
	APIStatus     *entity.APIStatus `json:"api_status"`
	ActionMessage string            `json:"action_message,omitempty"`
}

// TickerDetailPresenter drives the detail screen of one ticker. The ticker is
// the primary resource; news and API status degrade silently.
type TickerDetailPresenter struct {
	trading service.TradingService
	state   *State[TickerDetailState]
	scope   *Scope
	logger  *logger.Logger
}

// NewTickerDetailPresenter creates a TickerDetailPresenter.
func NewTickerDetailPresenter(ctx context.Context, trading service.TradingService, log *logger.Logger) *TickerDetailPresenter {
	return &TickerDetailPresenter{
		trading: trading,
		state:   NewState(TickerDetailState{IsLoading: true, News: []entity.NewsItem{}}),
		scope:   NewScope(ctx, log),
		logger:  log,
	}
}

// State exposes the published state.
func (p *TickerDetailPresenter) State() *State[TickerDetailState] { return p.state }

// Load fetches the ticker, its news and the API status concurrently.
func (p *TickerDetailPresenter) Load(symbol string) {
	p.scope.Go("load_ticker", func(ctx context.Context) { p.load(ctx, symbol) })
}

func (p *TickerDetailPresenter) load(ctx context.Context, symbol string) {
	p.state.Update(func(s TickerDetailState) TickerDetailState {
		s.IsLoading = true
		s.Error = ""
		return s
	})

	var (
		ticker    *entity.Ticker
		news      *dto.NewsListResponse
		apiStatus *entity.APIStatus
	)
	outcomes := service.FetchAll(ctx, p.logger,
		service.Fetcher{Slot: slotTicker, Primary: true, Run: service.Into(&ticker, func(ctx context.Context) (*entity.Ticker, error) {
			return p.trading.GetTicker(ctx, symbol).Unwrap()
		})},
		service.Fetcher{Slot: slotNews, Run: service.Into(&news, func(ctx context.Context) (*dto.NewsListResponse, error) {
			return p.trading.GetTickerNews(ctx, symbol, dto.NewsParams{}).Unwrap()
		})},
		service.Fetcher{Slot: slotAPIStatus, Run: service.Into(&apiStatus, func(ctx context.Context) (*entity.APIStatus, error) {
			return p.trading.GetAPIStatus(ctx).Unwrap()
		})},
	)
	if p.scope.Closed() {
		return
	}

	p.state.Update(func(s TickerDetailState) TickerDetailState {
		s.IsLoading = false
		if failure := outcomes.PrimaryFailure(); failure != nil {
			s.Error = service.UserMessage(failure.Err)
			return s
		}
		s.Ticker = ticker
		s.APIStatus = apiStatus
		if news != nil {
			s.News = news.News
			s.PendingCount = news.PendingCount
			s.AnalyzedCount = news.AnalyzedCount
		}
		return s
	})
}

// FetchNews asks the backend to fetch fresh news, then reloads.
func (p *TickerDetailPresenter) FetchNews(symbol string) {
	p.scope.Go("fetch_news", func(ctx context.Context) {
		p.runAction(ctx, symbol,
			func(s *TickerDetailState, busy bool) { s.IsFetching = busy },
			func(ctx context.Context) service.Result[string] { return p.trading.RefreshTicker(ctx, symbol, 0) })
	})
}

// AnalyzeNews asks the backend to analyze pending news, then reloads.
func (p *TickerDetailPresenter) AnalyzeNews(symbol string) {
	p.scope.Go("analyze_news", func(ctx context.Context) {
		p.runAction(ctx, symbol,
			func(s *TickerDetailState, busy bool) { s.IsAnalyzing = busy },
			func(ctx context.Context) service.Result[string] { return p.trading.AnalyzeTicker(ctx, symbol) })
	})
}

func (p *TickerDetailPresenter) runAction(ctx context.Context, symbol string, flag func(*TickerDetailState, bool), action func(context.Context) service.Result[string]) {
	p.state.Update(func(s TickerDetailState) TickerDetailState {
		flag(&s, true)
		s.ActionMessage = ""
		return s
	})

	result := action(ctx)
	if p.scope.Closed() {
		return
	}

	p.state.Update(func(s TickerDetailState) TickerDetailState {
		flag(&s, false)
		if result.IsSuccess() {
			s.ActionMessage = result.Data
		} else {
			s.ActionMessage = result.Message
		}
		return s
	})
	if result.IsSuccess() {
		p.load(ctx, symbol)
	}
}

// ClearActionMessage dismisses the last action message.
func (p *TickerDetailPresenter) ClearActionMessage() {
	p.state.Update(func(s TickerDetailState) TickerDetailState {
		s.ActionMessage = ""
		return s
	})
}

// Wait blocks until pending actions finish.
func (p *TickerDetailPresenter) Wait() { p.scope.Wait() }

// Close cancels pending actions.
func (p *TickerDetailPresenter) Close() { p.scope.Close() }
