package presenter

import (
	"context"

	"golang-trading-insights/internal/entity"
	"golang-trading-insights/internal/insights/service"
	"golang-trading-insights/pkg/logger"
)

// DashboardState is the ticker list screen.
type DashboardState struct {
	IsLoading     bool            `json:"is_loading"`
	Tickers       []entity.Ticker `json:"tickers"`
	Error         string          `json:"error,omitempty"`
	ActionMessage string          `json:"action_message,omitempty"`
}

// DashboardPresenter drives the ticker list.
type DashboardPresenter struct {
	trading service.TradingService
	state   *State[DashboardState]
	scope   *Scope
	logger  *logger.Logger
}

// NewDashboardPresenter creates a DashboardPresenter. Call LoadTickers to
// populate it.
func NewDashboardPresenter(ctx context.Context, trading service.TradingService, log *logger.Logger) *DashboardPresenter {
	return &DashboardPresenter{
		trading: trading,
		state:   NewState(DashboardState{IsLoading: true, Tickers: []entity.Ticker{}}),
		scope:   NewScope(ctx, log),
		logger:  log,
	}
}

// State exposes the published state.
func (p *DashboardPresenter) State() *State[DashboardState] { return p.state }

// LoadTickers reloads the ticker list.
func (p *DashboardPresenter) LoadTickers() {
	p.scope.Go("load_tickers", p.LoadTickersContext)
}

// LoadTickersContext is the synchronous form of LoadTickers used by
// background pollers.
func (p *DashboardPresenter) LoadTickersContext(ctx context.Context) {
	p.state.Update(func(s DashboardState) DashboardState {
		s.IsLoading = true
		s.Error = ""
		return s
	})

	result := p.trading.ListTickers(ctx)
	if p.scope.Closed() {
		return
	}
	p.state.Update(func(s DashboardState) DashboardState {
		s.IsLoading = false
		if result.IsSuccess() {
			s.Tickers = result.Data
			s.Error = ""
		} else {
			s.Error = result.Message
		}
		return s
	})
}

// RemoveTicker stops tracking symbol and reloads the list on success.
func (p *DashboardPresenter) RemoveTicker(symbol string) {
	p.scope.Go("remove_ticker", func(ctx context.Context) {
		result := p.trading.RemoveTicker(ctx, symbol)
		if p.scope.Closed() {
			return
		}
		if result.IsError() {
			p.state.Update(func(s DashboardState) DashboardState {
				s.ActionMessage = result.Message
				return s
			})
			return
		}
		p.LoadTickersContext(ctx)
	})
}

// ClearActionMessage dismisses the last action message.
func (p *DashboardPresenter) ClearActionMessage() {
	p.state.Update(func(s DashboardState) DashboardState {
		s.ActionMessage = ""
		return s
	})
}

// Wait blocks until pending actions finish.
func (p *DashboardPresenter) Wait() { p.scope.Wait() }

// Close cancels pending actions.
func (p *DashboardPresenter) Close() { p.scope.Close() }
