package dto

import (
	"net/url"
	"strconv"

	"golang-trading-insights/internal/entity"
	"golang-trading-insights/pkg/common"
)

// TickerCreateRequest is the body of the add-ticker call. Name is sent as null
// when absent.
type TickerCreateRequest struct {
	Ticker string  `json:"ticker"`
	Name   *string `json:"name"`
}

// TickerListResponse is the payload of the list-tickers call.
type TickerListResponse struct {
	Tickers []entity.Ticker `json:"tickers" validate:"dive"`
	Count   int             `json:"count"`
}

// NewsListResponse is the payload of the ticker-news call.
type NewsListResponse struct {
	News          []entity.NewsItem `json:"news" validate:"dive"`
	Count         int               `json:"count"`
	PendingCount  int               `json:"pending_count"`
	AnalyzedCount int               `json:"analyzed_count"`
}

// NewsParams filters the ticker-news call. An empty Status returns every item.
type NewsParams struct {
	Status string
	Limit  int
}

// Query encodes the parameters, applying the default limit.
func (p NewsParams) Query() url.Values {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	limit := p.Limit
	if limit <= 0 {
		limit = common.DefaultNewsLimit
	}
	q.Set("limit", strconv.Itoa(limit))
	return q
}

// FetchParams configures the trigger-fetch call.
type FetchParams struct {
	Hours int
}

// Query encodes the parameters, applying the default window.
func (p FetchParams) Query() url.Values {
	hours := p.Hours
	if hours <= 0 {
		hours = common.DefaultFetchHours
	}
	return url.Values{"hours": []string{strconv.Itoa(hours)}}
}

// ActionResponse is the acknowledgement returned by fetch and analyze triggers.
type ActionResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
