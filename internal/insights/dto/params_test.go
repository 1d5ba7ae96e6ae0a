package dto

import (
	"testing"
	"time"

	"golang-trading-insights/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestTradesParams_Defaults(t *testing.T) {
	q := TradesParams{}.Query()

	assert.Equal(t, "50", q.Get("limit"))
	assert.Equal(t, "0", q.Get("offset"))
	assert.Equal(t, "true", q.Get("is_paper"))
	assert.False(t, q.Has("symbol"))
	assert.False(t, q.Has("from"))
	assert.False(t, q.Has("to"))
}

func TestTradesParams_Explicit(t *testing.T) {
	q := TradesParams{
		Limit:   20,
		Offset:  40,
		Symbol:  "AAPL",
		From:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:      time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		IsPaper: utils.ToPointer(false),
	}.Query()

	assert.Equal(t, "20", q.Get("limit"))
	assert.Equal(t, "40", q.Get("offset"))
	assert.Equal(t, "AAPL", q.Get("symbol"))
	assert.Equal(t, "2026-01-01", q.Get("from"))
	assert.Equal(t, "2026-01-31", q.Get("to"))
	assert.Equal(t, "false", q.Get("is_paper"))
}

func TestEquityAndPerformanceParams_Defaults(t *testing.T) {
	eq := EquityParams{}.Query()
	assert.Equal(t, "daily", eq.Get("interval"))
	assert.Equal(t, "true", eq.Get("is_paper"))

	perf := PerformanceParams{}.Query()
	assert.Equal(t, "true", perf.Get("is_paper"))
	assert.False(t, perf.Has("interval"))
}

func TestNewsAndFetchParams_Defaults(t *testing.T) {
	news := NewsParams{}.Query()
	assert.Equal(t, "50", news.Get("limit"))
	assert.False(t, news.Has("status"))

	assert.Equal(t, "pending", NewsParams{Status: "pending", Limit: 5}.Query().Get("status"))
	assert.Equal(t, "24", FetchParams{}.Query().Get("hours"))
	assert.Equal(t, "6", FetchParams{Hours: 6}.Query().Get("hours"))
}
