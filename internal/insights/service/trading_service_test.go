package service

import (
	"context"
	"strings"
	"testing"

	"golang-trading-insights/pkg/logger"
	"golang-trading-insights/pkg/restclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantMsg string
	}{
		{name: "lower case", input: "aapl", want: "AAPL"},
		{name: "padded", input: "  msft ", want: "MSFT"},
		{name: "ten characters", input: strings.Repeat("a", 10), want: strings.Repeat("A", 10)},
		{name: "digits", input: "brk1", want: "BRK1"},
		{name: "empty", input: "   ", wantMsg: "Ticker symbol is required"},
		{name: "too long", input: strings.Repeat("a", 11), wantMsg: "Ticker must be 1-10 characters"},
		{name: "punctuation", input: "BRK.B", wantMsg: "Ticker must contain only letters and digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeSymbol(tt.input)
			if tt.wantMsg != "" {
				var validation *ValidationError
				require.ErrorAs(t, err, &validation)
				assert.Equal(t, tt.wantMsg, validation.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTradingService_AddTickerUpperCasesAndSendsNullName(t *testing.T) {
	repo := &fakeTradingRepo{}
	svc := NewTradingService(repo, logger.NewNop())

	result := svc.AddTicker(context.Background(), "aapl", "  ")

	require.True(t, result.IsSuccess())
	require.Len(t, repo.added, 1)
	assert.Equal(t, "AAPL", repo.added[0].Ticker)
	assert.Nil(t, repo.added[0].Name)
	assert.Equal(t, "AAPL", result.Data.Ticker)
}

func TestTradingService_AddTickerKeepsName(t *testing.T) {
	repo := &fakeTradingRepo{}
	svc := NewTradingService(repo, logger.NewNop())

	result := svc.AddTicker(context.Background(), "msft", " Microsoft ")

	require.True(t, result.IsSuccess())
	require.NotNil(t, repo.added[0].Name)
	assert.Equal(t, "Microsoft", *repo.added[0].Name)
}

func TestTradingService_ValidationNeverReachesNetwork(t *testing.T) {
	repo := &fakeTradingRepo{}
	svc := NewTradingService(repo, logger.NewNop())
	ctx := context.Background()

	assert.True(t, svc.AddTicker(ctx, "", "").IsError())
	assert.True(t, svc.AddTicker(ctx, "TOOLONGSYMBOL", "").IsError())
	assert.True(t, svc.GetTicker(ctx, "a-b").IsError())
	assert.True(t, svc.RemoveTicker(ctx, " ").IsError())

	assert.Equal(t, 0, repo.calls)
	assert.Equal(t, "Ticker symbol is required", svc.AddTicker(ctx, "", "").Message)
}

func TestTradingService_ServerErrorBecomesResult(t *testing.T) {
	repo := &fakeTradingRepo{addErr: &restclient.HTTPStatusError{StatusCode: 409, Message: "Ticker already exists"}}
	svc := NewTradingService(repo, logger.NewNop())

	result := svc.AddTicker(context.Background(), "AAPL", "")

	assert.True(t, result.IsError())
	assert.Equal(t, "Error: 409 - Ticker already exists", result.Message)
	assert.Equal(t, 409, restclient.StatusCode(result.Err))
}

func TestTradingService_ActionMessages(t *testing.T) {
	repo := &fakeTradingRepo{}
	svc := NewTradingService(repo, logger.NewNop())
	ctx := context.Background()

	refresh := svc.RefreshTicker(ctx, "aapl", 0)
	require.True(t, refresh.IsSuccess())
	assert.Equal(t, "Refresh triggered", refresh.Data)
	assert.Equal(t, 0, repo.fetchParams.Hours)

	analyze := svc.AnalyzeTicker(ctx, "aapl")
	require.True(t, analyze.IsSuccess())
	assert.Equal(t, "Analyzing 3 items", analyze.Data)

	assert.True(t, svc.GetAPIStatus(ctx).IsError())
}
