package dto

import (
	"net/url"
	"strconv"
	"time"

	"golang-trading-insights/internal/entity"
	"golang-trading-insights/pkg/common"
	"golang-trading-insights/pkg/utils"
)

// MultiBotStatusResponse is one status snapshot of every running bot.
type MultiBotStatusResponse struct {
	Bots  []entity.BotStatusDetail `json:"bots" validate:"dive"`
	Count int                      `json:"count"`
}

// BotTradesResponse is one page of trade history.
type BotTradesResponse struct {
	Trades []entity.BotTrade `json:"trades" validate:"dive"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// BotEquityResponse is the equity curve for a date range.
type BotEquityResponse struct {
	DataPoints []entity.EquityDataPoint `json:"data_points" validate:"dive"`
	Interval   string                   `json:"interval"`
}

// TradesParams filters the trade history call. Zero values fall back to
// limit=50, offset=0 and paper trading.
type TradesParams struct {
	Limit   int
	Offset  int
	Symbol  string
	From    time.Time
	To      time.Time
	IsPaper *bool
}

// Query encodes the parameters with their defaults applied.
func (p TradesParams) Query() url.Values {
	limit := p.Limit
	if limit <= 0 {
		limit = common.DefaultTradesLimit
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	if p.Symbol != "" {
		q.Set("symbol", p.Symbol)
	}
	setRange(q, p.From, p.To)
	q.Set("is_paper", strconv.FormatBool(paper(p.IsPaper)))
	return q
}

// PerformanceParams filters the performance call.
type PerformanceParams struct {
	From    time.Time
	To      time.Time
	IsPaper *bool
}

// Query encodes the parameters with their defaults applied.
func (p PerformanceParams) Query() url.Values {
	q := url.Values{}
	setRange(q, p.From, p.To)
	q.Set("is_paper", strconv.FormatBool(paper(p.IsPaper)))
	return q
}

// EquityParams filters the equity curve call. Interval defaults to "daily".
type EquityParams struct {
	From     time.Time
	To       time.Time
	Interval string
	IsPaper  *bool
}

// Query encodes the parameters with their defaults applied.
func (p EquityParams) Query() url.Values {
	interval := p.Interval
	if interval == "" {
		interval = common.DefaultEquityInterval
	}

	q := url.Values{}
	setRange(q, p.From, p.To)
	q.Set("interval", interval)
	q.Set("is_paper", strconv.FormatBool(paper(p.IsPaper)))
	return q
}

func setRange(q url.Values, from, to time.Time) {
	if s := utils.FormatDate(from); s != "" {
		q.Set("from", s)
	}
	if s := utils.FormatDate(to); s != "" {
		q.Set("to", s)
	}
}

func paper(isPaper *bool) bool {
	if isPaper == nil {
		return true
	}
	return *isPaper
}
