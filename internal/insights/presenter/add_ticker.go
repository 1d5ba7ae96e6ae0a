package presenter

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang-trading-insights/internal/entity"
	"golang-trading-insights/internal/insights/service"
	"golang-trading-insights/pkg/logger"
)

// AddTickerState is the add-ticker form.
type AddTickerState struct {
	Ticker    string         `json:"ticker"`
	Name      string         `json:"name"`
	IsLoading bool           `json:"is_loading"`
	Error     string         `json:"error,omitempty"`
	IsSuccess bool           `json:"is_success"`
	Added     *entity.Ticker `json:"added,omitempty"`
}

// AddTickerPresenter drives the add-ticker form.
type AddTickerPresenter struct {
	trading service.TradingService
	state   *State[AddTickerState]
	scope   *Scope
}

// NewAddTickerPresenter creates an AddTickerPresenter with an empty form.
func NewAddTickerPresenter(ctx context.Context, trading service.TradingService, log *logger.Logger) *AddTickerPresenter {
	return &AddTickerPresenter{
		trading: trading,
		state:   NewState(AddTickerState{}),
		scope:   NewScope(ctx, log),
	}
}

// State exposes the published state.
func (p *AddTickerPresenter) State() *State[AddTickerState] { return p.state }

// UpdateTicker upper-cases the input and keeps only letters and digits.
func (p *AddTickerPresenter) UpdateTicker(ticker string) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, strings.ToUpper(ticker))

	p.state.Update(func(s AddTickerState) AddTickerState {
		s.Ticker = cleaned
		s.Error = ""
		return s
	})
}

func (p *AddTickerPresenter) UpdateName(name string) {
	p.state.Update(func(s AddTickerState) AddTickerState {
		s.Name = name
		return s
	})
}

// AddTicker validates the form and submits it. It returns false when the
// form was rejected locally.
func (p *AddTickerPresenter) AddTicker() bool {
	current := p.state.Value()
	ticker := strings.TrimSpace(current.Ticker)

	var invalid string
	switch n := utf8.RuneCountInString(ticker); {
	case n == 0:
		invalid = "Ticker symbol is required"
	case n > 10:
		invalid = "Ticker must be 1-10 characters"
	}
	if invalid != "" {
		p.state.Update(func(s AddTickerState) AddTickerState {
			s.Error = invalid
			return s
		})
		return false
	}

	return p.scope.Go("add_ticker", func(ctx context.Context) {
		p.state.Update(func(s AddTickerState) AddTickerState {
			s.IsLoading = true
			s.Error = ""
			return s
		})

		result := p.trading.AddTicker(ctx, ticker, current.Name)
		if p.scope.Closed() {
			return
		}
		p.state.Update(func(s AddTickerState) AddTickerState {
			s.IsLoading = false
			if result.IsSuccess() {
				s.IsSuccess = true
				s.Added = result.Data
			} else {
				s.Error = result.Message
			}
			return s
		})
	})
}

// Wait blocks until pending actions finish.
func (p *AddTickerPresenter) Wait() { p.scope.Wait() }

// Close cancels pending actions.
func (p *AddTickerPresenter) Close() { p.scope.Close() }
